package position

import (
	"testing"

	"github.com/matryer/is"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
)

func TestAmbiguityType(t *testing.T) {
	is := is.New(t)

	// lone candidates need nothing
	p := Initial()
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Knight, board.B1, board.C3)), move.AmbiguityNone)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Pawn, board.E2, board.E4)), move.AmbiguityNone)

	// knights on b1 and f3 both reach d2: files differ
	p, err := ParseFEN("4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1")
	is.NoErr(err)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Knight, board.F3, board.D2)), move.AmbiguityFile)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Knight, board.B1, board.D2)), move.AmbiguityFile)
	// only b1 reaches c3
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Knight, board.B1, board.C3)), move.AmbiguityNone)

	// rooks sharing the a-file need the full square
	p, err = ParseFEN("4k3/8/R7/8/8/8/R7/4K3 w - - 0 1")
	is.NoErr(err)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Rook, board.A2, board.A4)), move.AmbiguitySquare)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Rook, board.A6, board.A4)), move.AmbiguitySquare)
	// along the rank only one rook reaches h2
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Rook, board.A2, board.H2)), move.AmbiguityNone)

	// a blocker on the file removes the far candidate
	p, err = ParseFEN("4k3/8/R7/n7/8/8/R7/4K3 w - - 0 1")
	is.NoErr(err)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Rook, board.A2, board.A4)), move.AmbiguityNone)

	// so does a piece standing on the candidate's path
	p, err = ParseFEN("r3k3/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	is.NoErr(err)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Rook, board.A1, board.B1)), move.AmbiguityNone)

	// pawn captures carry their file, kings never disambiguate
	p, err = ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	is.NoErr(err)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Pawn, board.E4, board.D5)), move.AmbiguityFile)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.Pawn, board.E4, board.E5)), move.AmbiguityNone)
	is.Equal(p.AmbiguityType(move.NewPieceMove(board.King, board.E1, board.D1)), move.AmbiguityNone)
	is.Equal(p.AmbiguityType(move.NewKingSideCastle()), move.AmbiguityNone)
}

func TestAnnotate(t *testing.T) {
	is := is.New(t)

	// a quiet opening move
	p := Initial()
	m := move.NewPieceMove(board.Pawn, board.E2, board.E4)
	after, err := p.MakeMove(m)
	is.NoErr(err)
	a := p.Annotate(m, after)
	is.Equal(a.String(), "e4")
	is.True(!a.Capture)
	is.True(!a.Check)

	// the mating capture at the end of the scholar sequence
	for _, text := range []string{"e7e5", "Qd1h5", "Ke8e7"} {
		mm, perr := move.Parse(text)
		is.NoErr(perr)
		after, perr = after.MakeMove(mm)
		is.NoErr(perr)
	}
	p = after
	m = move.NewPieceMove(board.Queen, board.H5, board.E5)
	after, err = p.MakeMove(m)
	is.NoErr(err)
	a = p.Annotate(m, after)
	is.True(a.Capture)
	is.True(a.Check)
	is.True(a.Checkmate)
	is.Equal(a.String(), "Qxe5#")

	// an en-passant capture counts as a capture of the empty target square
	p, err = ParseFEN("rnbqkbnr/ppppppp1/8/4P2p/8/8/PPPP1PPP/PNBQKBNR b - - 0 1")
	is.NoErr(err)
	p, err = p.MakeMove(move.NewPieceMove(board.Pawn, board.D7, board.D5))
	is.NoErr(err)
	m = move.NewPieceMove(board.Pawn, board.E5, board.D6)
	after, err = p.MakeMove(m)
	is.NoErr(err)
	a = p.Annotate(m, after)
	is.True(a.Capture)
	is.Equal(a.String(), "exd6")
}

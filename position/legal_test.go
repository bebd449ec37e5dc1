package position

import (
	"testing"

	"github.com/matryer/is"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	is := is.New(t)
	moves := Initial().LegalMoves()
	is.Equal(len(moves), 20)

	set := make(map[move.Move]bool, len(moves))
	for _, m := range moves {
		set[m] = true
	}
	is.Equal(len(set), 20) // no duplicates
	is.True(set[move.NewPieceMove(board.Pawn, board.E2, board.E4)])
	is.True(set[move.NewPieceMove(board.Pawn, board.E2, board.E3)])
	is.True(set[move.NewPieceMove(board.Knight, board.B1, board.C3)])
	is.True(!set[move.NewPieceMove(board.Pawn, board.E2, board.E5)])
	is.True(!set[move.NewPieceMove(board.King, board.E1, board.E2)])
}

func TestLegalMovesAgreeWithIsLegalMove(t *testing.T) {
	is := is.New(t)
	fens := []string{
		StartingFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		is.NoErr(err)
		for _, m := range p.LegalMoves() {
			is.True(p.IsLegalMove(m)) // every generated move passes the check
		}
	}
}

func TestIsLegalMoveRejections(t *testing.T) {
	is := is.New(t)
	p := Initial()

	// no knight on e2, wrong side, occupied path, unreachable square
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Knight, board.E2, board.E4)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E7, board.E5)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Bishop, board.F1, board.C4)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Rook, board.A1, board.A5)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E2, board.D3)))
	is.True(!p.IsLegalMove(move.NewKingSideCastle()))
}

func TestPinnedPieceMayNotExposeKing(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	is.NoErr(err)
	is.True(p.Pinned().Has(board.E2))
	is.True(!p.InCheck())

	is.True(!p.IsLegalMove(move.NewPieceMove(board.Knight, board.E2, board.C3)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Knight, board.E2, board.D4)))
	is.True(p.IsLegalMove(move.NewPieceMove(board.King, board.E1, board.D1)))

	for _, m := range p.LegalMoves() {
		is.Equal(m.Piece(), board.King) // only the king can move here
	}
}

func TestCheckMustBeResolved(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K2B w - - 0 1")
	is.NoErr(err)
	is.True(p.InCheck())
	is.Equal(p.Checkers(), board.E2.Mask())

	// capturing the checker and stepping aside are legal, idling is not
	is.True(p.IsLegalMove(move.NewPieceMove(board.King, board.E1, board.E2)))
	is.True(p.IsLegalMove(move.NewPieceMove(board.King, board.E1, board.D1)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Bishop, board.H1, board.G2)))
}

func TestEnPassantCapture(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("rnbqkbnr/ppppppp1/8/4P2p/8/8/PPPP1PPP/PNBQKBNR b - - 0 1")
	is.NoErr(err)

	p, err = p.MakeMove(move.NewPieceMove(board.Pawn, board.D7, board.D5))
	is.NoErr(err)
	target, ok := p.EnPassant()
	is.True(ok)
	is.Equal(target, board.D6)

	capture := move.NewPieceMove(board.Pawn, board.E5, board.D6)
	is.True(p.IsLegalMove(capture))
	found := false
	for _, m := range p.LegalMoves() {
		if m == capture {
			found = true
		}
	}
	is.True(found)
}

func TestCastlingLegality(t *testing.T) {
	is := is.New(t)

	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	is.NoErr(err)
	is.True(p.IsLegalMove(move.NewKingSideCastle()))
	is.True(p.IsLegalMove(move.NewQueenSideCastle()))

	// a rook eyeing f1 forbids king-side castling only
	p, err = ParseFEN("r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1")
	is.NoErr(err)
	is.True(!p.IsLegalMove(move.NewKingSideCastle()))
	is.True(p.IsLegalMove(move.NewQueenSideCastle()))

	// an attacked b1 does not matter, the king never crosses it
	p, err = ParseFEN("r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1")
	is.NoErr(err)
	is.True(p.IsLegalMove(move.NewQueenSideCastle()))

	// no castling out of check
	p, err = ParseFEN("r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1")
	is.NoErr(err)
	is.True(p.InCheck())
	is.True(!p.IsLegalMove(move.NewKingSideCastle()))
	is.True(!p.IsLegalMove(move.NewQueenSideCastle()))

	// missing right
	p, err = ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1")
	is.NoErr(err)
	is.True(!p.IsLegalMove(move.NewKingSideCastle()))
	is.True(p.IsLegalMove(move.NewQueenSideCastle()))

	// occupied squares between king and rook
	is.True(!Initial().IsLegalMove(move.NewKingSideCastle()))
	is.True(!Initial().IsLegalMove(move.NewQueenSideCastle()))
}

func TestPromotionMoves(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	is.NoErr(err)

	moves := p.LegalMoves()
	is.Equal(len(moves), 11) // 4 pushes, 4 captures, 3 king steps

	promotions := 0
	for _, m := range moves {
		if _, ok := m.Promotion(); ok {
			promotions++
		}
	}
	is.Equal(promotions, 8)

	is.True(p.IsLegalMove(move.NewPromotion(board.A7, board.A8, board.Queen)))
	is.True(p.IsLegalMove(move.NewPromotion(board.A7, board.B8, board.Knight)))

	// a pawn reaching the far rank must promote, and never to a king or pawn
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.A7, board.A8)))
	is.True(!p.IsLegalMove(move.NewPromotion(board.A7, board.A8, board.King)))
	is.True(!p.IsLegalMove(move.NewPromotion(board.A7, board.A8, board.Pawn)))
}

func TestDoubleStepBlocked(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	is.NoErr(err)

	// the knight on e3 blocks both the single and the double step
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E2, board.E3)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E2, board.E4)))

	p, err = ParseFEN("4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	is.NoErr(err)

	// moved to e4 it blocks only the double step
	is.True(p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E2, board.E3)))
	is.True(!p.IsLegalMove(move.NewPieceMove(board.Pawn, board.E2, board.E4)))
}

func BenchmarkLegalMovesInitial(b *testing.B) {
	p := Initial()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.LegalMoves()
	}
}

func BenchmarkLegalMovesMidgame(b *testing.B) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.LegalMoves()
	}
}

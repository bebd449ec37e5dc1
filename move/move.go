package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caissa-chess/caissa/board"
)

// Errors returned when parsing move text.
var (
	ErrInvalidMove      = errors.New("move: invalid move text")
	ErrInvalidPromotion = errors.New("move: invalid promotion")
)

// MoveType classifies a move.
type MoveType uint8

const (
	// MoveTypePiece relocates one piece from a source square to a
	// destination square, possibly promoting a pawn on arrival.
	MoveTypePiece MoveType = iota
	// MoveTypeKingSideCastle and MoveTypeQueenSideCastle move the king two
	// squares toward a rook and tuck the rook in behind it.
	MoveTypeKingSideCastle
	MoveTypeQueenSideCastle
)

// Move is a single board action: a piece move or a castle. Moves carry no
// board-dependent metadata, so two Moves compare equal exactly when they
// describe the same action; Annotated adds the metadata computed against a
// concrete position.
type Move struct {
	moveType  MoveType
	piece     board.PieceType
	src       board.Square
	dst       board.Square
	promotion board.PieceType
	promotes  bool
}

// NewPieceMove builds a plain piece move.
func NewPieceMove(piece board.PieceType, src, dst board.Square) Move {
	return Move{moveType: MoveTypePiece, piece: piece, src: src, dst: dst}
}

// NewPromotion builds a pawn move that promotes on arrival.
func NewPromotion(src, dst board.Square, promotion board.PieceType) Move {
	return Move{
		moveType:  MoveTypePiece,
		piece:     board.Pawn,
		src:       src,
		dst:       dst,
		promotion: promotion,
		promotes:  true,
	}
}

// NewKingSideCastle builds a king-side castle.
func NewKingSideCastle() Move { return Move{moveType: MoveTypeKingSideCastle} }

// NewQueenSideCastle builds a queen-side castle.
func NewQueenSideCastle() Move { return Move{moveType: MoveTypeQueenSideCastle} }

func (m Move) Type() MoveType { return m.moveType }

// Piece returns the piece type a piece move claims to relocate.
func (m Move) Piece() board.PieceType { return m.piece }

func (m Move) Source() board.Square { return m.src }

func (m Move) Destination() board.Square { return m.dst }

// Promotion returns the promotion piece, if one is attached.
func (m Move) Promotion() (board.PieceType, bool) { return m.promotion, m.promotes }

// String renders the move in long text: the piece letter (pawns have none),
// the source and destination squares, and an "=X" suffix for promotions.
// Castles render as O-O and O-O-O.
func (m Move) String() string {
	switch m.moveType {
	case MoveTypeKingSideCastle:
		return "O-O"
	case MoveTypeQueenSideCastle:
		return "O-O-O"
	}
	var sb strings.Builder
	sb.WriteString(m.piece.Letter())
	sb.WriteString(m.src.String())
	sb.WriteString(m.dst.String())
	if m.promotes {
		sb.WriteString("=")
		sb.WriteString(m.promotion.Letter())
	}
	return sb.String()
}

// Parse converts long move text back into a Move: an optional piece letter
// (absent for pawns), a source and destination square, and an optional
// promotion suffix, or the literal castles O-O and O-O-O. Promotions to
// pawns or kings are rejected here; all other legality is the position's
// concern.
func Parse(s string) (Move, error) {
	switch s {
	case "O-O":
		return NewKingSideCastle(), nil
	case "O-O-O":
		return NewQueenSideCastle(), nil
	}

	rest := s
	piece := board.Pawn
	if len(rest) > 0 {
		if pt, ok := pieceFromLetter(rest[0]); ok {
			piece = pt
			rest = rest[1:]
		}
	}

	var promotion board.PieceType
	promotes := false
	if i := strings.IndexByte(rest, '='); i >= 0 {
		suffix := rest[i:]
		rest = rest[:i]
		if len(suffix) != 2 {
			return Move{}, fmt.Errorf("%w %q", ErrInvalidMove, s)
		}
		pt, ok := pieceFromLetter(suffix[1])
		if !ok || pt == board.King {
			return Move{}, fmt.Errorf("%w %q", ErrInvalidPromotion, s)
		}
		promotion = pt
		promotes = true
	}

	if len(rest) != 4 {
		return Move{}, fmt.Errorf("%w %q", ErrInvalidMove, s)
	}
	src, err := board.ParseSquare(rest[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q", ErrInvalidMove, s)
	}
	dst, err := board.ParseSquare(rest[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q", ErrInvalidMove, s)
	}

	return Move{
		moveType:  MoveTypePiece,
		piece:     piece,
		src:       src,
		dst:       dst,
		promotion: promotion,
		promotes:  promotes,
	}, nil
}

func pieceFromLetter(c byte) (board.PieceType, bool) {
	switch c {
	case 'N':
		return board.Knight, true
	case 'B':
		return board.Bishop, true
	case 'R':
		return board.Rook, true
	case 'Q':
		return board.Queen, true
	case 'K':
		return board.King, true
	}
	return 0, false
}

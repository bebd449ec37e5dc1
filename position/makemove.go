package position

import (
	"fmt"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
)

// MakeMove applies a legal move and returns the resulting position, leaving
// the receiver untouched. The new position's side to move, castling rights,
// en-passant target, counters, pins/checks and terminal flag are all
// brought up to date, with the hash maintained incrementally through every
// mutation.
func (p *Position) MakeMove(m move.Move) (*Position, error) {
	if !p.IsLegalMove(m) {
		return nil, fmt.Errorf("%w %q", ErrIllegalMove, m.String())
	}

	mover := p.sideToMove

	// capture and pawn facts are read off the board before it changes
	resetClock := false
	epTarget := board.NoSquare
	if m.Type() == move.MoveTypePiece {
		src, dst := m.Source(), m.Destination()
		capture := p.colors[mover.Other()].Has(dst) ||
			(m.Piece() == board.Pawn && dst == p.enPassant)
		resetClock = capture || m.Piece() == board.Pawn
		if m.Piece() == board.Pawn {
			switch {
			case src.Rank() == board.Rank2 && dst.Rank() == board.Rank4:
				epTarget = src + 8
			case src.Rank() == board.Rank7 && dst.Rank() == board.Rank5:
				epTarget = src - 8
			}
		}
	}

	next := p.clone()
	next.movePiece(m)
	next.setCastlingRights(mover, moverRightsAfter(p.castling[mover], mover, m))
	if m.Type() == move.MoveTypePiece {
		enemy := mover.Other()
		next.setCastlingRights(enemy, rookHomeRightsAfter(p.castling[enemy], enemy, m.Destination()))
	}
	next.setEnPassant(epTarget)
	next.setSideToMove(mover.Other())
	if resetClock {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}
	if mover == board.Black {
		next.fullmoveNumber++
	}
	next.updatePinsAndChecks()
	next.terminal = !next.anyLegalMove()
	return next, nil
}

// moverRightsAfter strips the mover's own rights: any king move, castles
// included, forfeits both, and a rook leaving its home square forfeits that
// side.
func moverRightsAfter(cr board.CastlingRights, c board.Color, m move.Move) board.CastlingRights {
	if m.Type() != move.MoveTypePiece {
		return board.CastleNeither
	}
	switch m.Piece() {
	case board.King:
		return board.CastleNeither
	case board.Rook:
		home := homeRank(c)
		switch m.Source() {
		case board.NewSquare(board.FileH, home):
			return cr.Without(board.CastleKingSide)
		case board.NewSquare(board.FileA, home):
			return cr.Without(board.CastleQueenSide)
		}
	}
	return cr
}

// rookHomeRightsAfter drops an opponent right when a move lands on the
// matching rook home square. While the opponent holds a right their rook
// occupies that square, so any arrival there captured it.
func rookHomeRightsAfter(cr board.CastlingRights, enemy board.Color, dst board.Square) board.CastlingRights {
	home := homeRank(enemy)
	switch dst {
	case board.NewSquare(board.FileH, home):
		return cr.Without(board.CastleKingSide)
	case board.NewSquare(board.FileA, home):
		return cr.Without(board.CastleQueenSide)
	}
	return cr
}

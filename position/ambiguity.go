package position

import (
	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
)

// AmbiguityType classifies how much of m's source square must be written
// to single it out among same-type pieces that could also reach its
// destination: nothing, the file, or the full square when candidates share
// a file. Pawns disambiguate by file exactly when the move changes file;
// kings and castles are never ambiguous.
func (p *Position) AmbiguityType(m move.Move) move.Ambiguity {
	if m.Type() != move.MoveTypePiece {
		return move.AmbiguityNone
	}
	src, dst := m.Source(), m.Destination()
	switch m.Piece() {
	case board.Pawn:
		if src.File() != dst.File() {
			return move.AmbiguityFile
		}
		return move.AmbiguityNone
	case board.King:
		return move.AmbiguityNone
	}

	candidates := p.reachingCandidates(m.Piece(), p.sideToMove, dst)
	if candidates.PopCount() <= 1 {
		return move.AmbiguityNone
	}
	if (candidates & board.FileMask(src.File())).PopCount() > 1 {
		return move.AmbiguitySquare
	}
	return move.AmbiguityFile
}

// reachingCandidates finds the pieces of the given type and color whose
// attack pattern covers dst with nothing in the way. King safety is not
// consulted; this classifies notation, not legality.
func (p *Position) reachingCandidates(pt board.PieceType, c board.Color, dst board.Square) board.BitBoard {
	var candidates board.BitBoard
	for rest := p.pieces[pt] & p.colors[c]; rest != 0; {
		sq := rest.PopLSB()
		var reach board.BitBoard
		switch pt {
		case board.Knight:
			reach = p.tables.Knight(sq)
		case board.Bishop:
			reach = p.tables.Bishop(sq)
		case board.Rook:
			reach = p.tables.Rook(sq)
		case board.Queen:
			reach = p.tables.Queen(sq)
		}
		if !reach.Has(dst) {
			continue
		}
		between, _ := p.tables.Between(sq, dst)
		if between&p.combined == 0 {
			candidates |= sq.Mask()
		}
	}
	return candidates
}

// Annotate computes the display metadata for a move played from this
// position: the ambiguity class, whether it captures, and whether the
// position it produced gives check or mate.
func (p *Position) Annotate(m move.Move, after *Position) move.Annotated {
	a := move.Annotated{Move: m, Ambiguity: p.AmbiguityType(m)}
	if m.Type() == move.MoveTypePiece {
		dst := m.Destination()
		a.Capture = p.colors[p.sideToMove.Other()].Has(dst) ||
			(m.Piece() == board.Pawn && p.enPassant == dst)
	}
	a.Check = after.InCheck()
	a.Checkmate = after.InCheckmate()
	return a
}

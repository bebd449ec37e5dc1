package position

import (
	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
)

var promotionPieces = [...]board.PieceType{
	board.Knight, board.Bishop, board.Rook, board.Queen,
}

// IsLegalMove reports whether m is legal for the side to move. A piece move
// is legal when the named piece of the moving side sits on the source
// square, the destination is pseudo-legally reachable under current
// occupancy, a promotion is attached exactly when a pawn reaches the far
// rank, and the mover's king is safe afterwards. Castles have their own
// predicate.
func (p *Position) IsLegalMove(m move.Move) bool {
	switch m.Type() {
	case move.MoveTypeKingSideCastle:
		return p.canCastle(p.sideToMove, board.CastleKingSide)
	case move.MoveTypeQueenSideCastle:
		return p.canCastle(p.sideToMove, board.CastleQueenSide)
	}

	src := m.Source()
	pc := board.Piece{Type: m.Piece(), Color: p.sideToMove}
	if !(p.pieces[pc.Type] & p.colors[pc.Color]).Has(src) {
		return false
	}
	if !p.pieceDestinations(pc, src).Has(m.Destination()) {
		return false
	}
	if !p.validPromotion(m) {
		return false
	}
	return p.kingSafeAfter(m)
}

// LegalMoves generates every legal move for the side to move. The result is
// a set: unique moves in no guaranteed order. Pawn moves reaching the far
// rank expand into the four promotions.
func (p *Position) LegalMoves() []move.Move {
	c := p.sideToMove
	far := farRank(c)
	moves := make([]move.Move, 0, 48)
	for rest := p.colors[c]; rest != 0; {
		src := rest.PopLSB()
		pc, _ := p.PieceAt(src)
		for dsts := p.pieceDestinations(pc, src); dsts != 0; {
			dst := dsts.PopLSB()
			if pc.Type == board.Pawn && dst.Rank() == far {
				for _, promo := range promotionPieces {
					m := move.NewPromotion(src, dst, promo)
					if p.kingSafeAfter(m) {
						moves = append(moves, m)
					}
				}
				continue
			}
			m := move.NewPieceMove(pc.Type, src, dst)
			if p.kingSafeAfter(m) {
				moves = append(moves, m)
			}
		}
	}
	if p.canCastle(c, board.CastleKingSide) {
		moves = append(moves, move.NewKingSideCastle())
	}
	if p.canCastle(c, board.CastleQueenSide) {
		moves = append(moves, move.NewQueenSideCastle())
	}
	return moves
}

// anyLegalMove is the terminal-status scan: the same generation path as
// LegalMoves, cut short at the first legal move. Pinned pieces stay in the
// scan; a pinned slider may still slide along its pin line.
func (p *Position) anyLegalMove() bool {
	c := p.sideToMove
	far := farRank(c)
	for rest := p.colors[c]; rest != 0; {
		src := rest.PopLSB()
		pc, _ := p.PieceAt(src)
		for dsts := p.pieceDestinations(pc, src); dsts != 0; {
			dst := dsts.PopLSB()
			m := move.NewPieceMove(pc.Type, src, dst)
			if pc.Type == board.Pawn && dst.Rank() == far {
				m = move.NewPromotion(src, dst, board.Queen)
			}
			if p.kingSafeAfter(m) {
				return true
			}
		}
	}
	return p.canCastle(c, board.CastleKingSide) || p.canCastle(c, board.CastleQueenSide)
}

// pieceDestinations returns every square the piece on src could move to
// before king safety is considered: leaper patterns and slider reaches with
// the path-clearance test applied, pawn pushes onto empty squares and pawn
// captures onto enemies or the en-passant target. Own pieces are never
// targets.
func (p *Position) pieceDestinations(pc board.Piece, src board.Square) board.BitBoard {
	own := p.colors[pc.Color]
	var reach board.BitBoard
	switch pc.Type {
	case board.Pawn:
		return p.pawnDestinations(pc.Color, src)
	case board.Knight:
		return p.tables.Knight(src) &^ own
	case board.King:
		return p.tables.King(src) &^ own
	case board.Bishop:
		reach = p.tables.Bishop(src)
	case board.Rook:
		reach = p.tables.Rook(src)
	case board.Queen:
		reach = p.tables.Queen(src)
	}

	enemy := p.colors[pc.Color.Other()]
	var dsts board.BitBoard
	for rest := reach &^ own; rest != 0; {
		dst := rest.PopLSB()
		if p.pathClear(src, dst, enemy) {
			dsts |= dst.Mask()
		}
	}
	return dsts
}

// pathClear applies the slider occupancy test: the squares strictly between
// src and dst plus the destination itself may hold at most one piece, and
// only an enemy piece on the destination.
func (p *Position) pathClear(src, dst board.Square, enemy board.BitBoard) bool {
	between, _ := p.tables.Between(src, dst)
	occupants := (between | dst.Mask()) & p.combined
	switch occupants.PopCount() {
	case 0:
		return true
	case 1:
		return occupants&enemy&dst.Mask() != 0
	}
	return false
}

// pawnDestinations merges quiet advances with captures. An advance needs
// the destination and everything between empty, which blocks the double
// step when the skipped square is occupied. Captures need an enemy piece
// or the en-passant target on the destination.
func (p *Position) pawnDestinations(c board.Color, src board.Square) board.BitBoard {
	var dsts board.BitBoard
	for rest := p.tables.PawnMoves(c, src); rest != 0; {
		dst := rest.PopLSB()
		between, _ := p.tables.Between(src, dst)
		if (between|dst.Mask())&p.combined == 0 {
			dsts |= dst.Mask()
		}
	}

	targets := p.colors[c.Other()]
	if p.enPassant != board.NoSquare {
		targets |= p.enPassant.Mask()
	}
	return dsts | p.tables.PawnCaptures(c, src)&targets
}

// validPromotion: a promotion is attached exactly when a pawn reaches the
// far rank, and the promoted piece is neither a pawn nor a king.
func (p *Position) validPromotion(m move.Move) bool {
	mustPromote := m.Piece() == board.Pawn && m.Destination().Rank() == farRank(p.sideToMove)
	pt, promotes := m.Promotion()
	if promotes != mustPromote {
		return false
	}
	return !promotes || (pt != board.Pawn && pt != board.King)
}

// kingSafeAfter simulates the move on a scratch copy and reports whether
// the mover's king is left unattacked. This single test covers moving into
// check, illegal pinned-piece moves and unresolved checks.
func (p *Position) kingSafeAfter(m move.Move) bool {
	scratch := p.clone()
	scratch.movePiece(m)
	_, checks := scratch.pinsAndChecks(p.sideToMove, scratch.KingSquare(p.sideToMove))
	return checks == 0
}

// canCastle vets one castle for the side to move: the right is still held,
// the king is not in check, every square strictly between king and rook is
// empty, and the king's transit and destination squares are not attacked.
func (p *Position) canCastle(c board.Color, side board.CastlingRights) bool {
	if side == board.CastleKingSide && !p.castling[c].HasKingSide() {
		return false
	}
	if side == board.CastleQueenSide && !p.castling[c].HasQueenSide() {
		return false
	}
	if p.checkers != 0 {
		return false
	}

	home := homeRank(c)
	kingSq := board.NewSquare(board.FileE, home)
	var rookSq, transit, dest board.Square
	if side == board.CastleKingSide {
		rookSq = board.NewSquare(board.FileH, home)
		transit = board.NewSquare(board.FileF, home)
		dest = board.NewSquare(board.FileG, home)
	} else {
		rookSq = board.NewSquare(board.FileA, home)
		transit = board.NewSquare(board.FileD, home)
		dest = board.NewSquare(board.FileC, home)
	}
	between, _ := p.tables.Between(kingSq, rookSq)
	if between&p.combined != 0 {
		return false
	}
	return !p.underAttack(c, transit) && !p.underAttack(c, dest)
}

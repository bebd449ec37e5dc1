// Package position implements the validated chess position: bit-set piece
// placement, full move legality and generation, incremental Zobrist hashing,
// and the terminal-status scan. Positions are created by a Builder (or
// ParseFEN) and thereafter only by applying legal moves; both paths keep
// every derived field consistent.
package position

import (
	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
	"github.com/caissa-chess/caissa/zobrist"
)

// Position is one full board state. A Position is never mutated once it has
// been returned to a caller; MakeMove builds a new one, and the only mutable
// copies are the scratch clones inside the legality simulation.
type Position struct {
	pieces   [board.NumPieceTypes]board.BitBoard
	colors   [board.NumColors]board.BitBoard
	combined board.BitBoard

	sideToMove board.Color
	castling   [board.NumColors]board.CastlingRights
	enPassant  board.Square // NoSquare when absent

	pinned   board.BitBoard
	checkers board.BitBoard
	terminal bool

	hash uint64

	halfmoveClock  int
	fullmoveNumber int

	flipped bool

	tables *board.Tables
	hasher *zobrist.Zobrist
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() board.Color { return p.sideToMove }

// PieceMask returns the squares holding pieces of the given type, both
// colors combined.
func (p *Position) PieceMask(pt board.PieceType) board.BitBoard { return p.pieces[pt] }

// ColorMask returns the squares holding pieces of the given color.
func (p *Position) ColorMask(c board.Color) board.BitBoard { return p.colors[c] }

// Combined returns the full occupancy.
func (p *Position) Combined() board.BitBoard { return p.combined }

// CastlingRights returns the remaining rights for one side.
func (p *Position) CastlingRights(c board.Color) board.CastlingRights { return p.castling[c] }

// EnPassant returns the en-passant target square, if one is set.
func (p *Position) EnPassant() (board.Square, bool) {
	return p.enPassant, p.enPassant != board.NoSquare
}

// Hash returns the incrementally maintained Zobrist hash.
func (p *Position) Hash() uint64 { return p.hash }

// Checkers returns the enemy pieces attacking the moving side's king.
func (p *Position) Checkers() board.BitBoard { return p.checkers }

// Pinned returns the moving side's pieces that shield their king from an
// enemy slider.
func (p *Position) Pinned() board.BitBoard { return p.pinned }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.checkers != 0 }

// IsTerminal reports whether the side to move has no legal moves.
func (p *Position) IsTerminal() bool { return p.terminal }

// HalfmoveClock returns the half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the one-based move counter, advanced after Black.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Flipped reports whether renderings show Black's perspective.
func (p *Position) Flipped() bool { return p.flipped }

// SetFlipped flips renderings to Black's perspective. Display only; no
// game-state field depends on it.
func (p *Position) SetFlipped(f bool) { p.flipped = f }

// PieceAt returns the piece on sq.
func (p *Position) PieceAt(sq board.Square) (board.Piece, bool) {
	m := sq.Mask()
	if p.combined&m == 0 {
		return board.Piece{}, false
	}
	c := board.White
	if p.colors[board.Black]&m != 0 {
		c = board.Black
	}
	for pt := board.PieceType(0); pt < board.NumPieceTypes; pt++ {
		if p.pieces[pt]&m != 0 {
			return board.Piece{Type: pt, Color: c}, true
		}
	}
	return board.Piece{}, false
}

// KingSquare returns the king square for c.
func (p *Position) KingSquare(c board.Color) board.Square {
	return (p.pieces[board.King] & p.colors[c]).LSB()
}

// Equal reports whether two positions describe the same game state. The
// display flag is ignored.
func (p *Position) Equal(other *Position) bool {
	return p.pieces == other.pieces &&
		p.colors == other.colors &&
		p.sideToMove == other.sideToMove &&
		p.castling == other.castling &&
		p.enPassant == other.enPassant &&
		p.halfmoveClock == other.halfmoveClock &&
		p.fullmoveNumber == other.fullmoveNumber
}

func (p *Position) clone() *Position {
	c := *p
	return &c
}

// put places a piece on an empty square, maintaining occupancy and hash.
func (p *Position) put(pc board.Piece, sq board.Square) {
	m := sq.Mask()
	p.pieces[pc.Type] |= m
	p.colors[pc.Color] |= m
	p.combined |= m
	p.hash ^= p.hasher.Piece(pc.Color, pc.Type, sq)
}

// clear removes the piece on sq, if any, maintaining occupancy and hash.
func (p *Position) clear(sq board.Square) {
	pc, ok := p.PieceAt(sq)
	if !ok {
		return
	}
	m := sq.Mask()
	p.pieces[pc.Type] &^= m
	p.colors[pc.Color] &^= m
	p.combined &^= m
	p.hash ^= p.hasher.Piece(pc.Color, pc.Type, sq)
}

func (p *Position) setSideToMove(c board.Color) {
	if p.sideToMove != c {
		p.hash ^= p.hasher.BlackToMove()
		p.sideToMove = c
	}
}

func (p *Position) setCastlingRights(c board.Color, cr board.CastlingRights) {
	if p.castling[c] != cr {
		p.hash ^= p.hasher.Castling(c, p.castling[c])
		p.hash ^= p.hasher.Castling(c, cr)
		p.castling[c] = cr
	}
}

func (p *Position) setEnPassant(sq board.Square) {
	if p.enPassant != board.NoSquare {
		p.hash ^= p.hasher.EnPassantFile(p.enPassant.File())
	}
	p.enPassant = sq
	if sq != board.NoSquare {
		p.hash ^= p.hasher.EnPassantFile(sq.File())
	}
}

// ComputeHash recomputes the Zobrist hash from scratch. Hash returns the
// incrementally maintained value; the two always agree.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	if p.sideToMove == board.Black {
		h ^= p.hasher.BlackToMove()
	}
	for c := board.Color(0); c < board.NumColors; c++ {
		for pt := board.PieceType(0); pt < board.NumPieceTypes; pt++ {
			for rest := p.pieces[pt] & p.colors[c]; rest != 0; {
				h ^= p.hasher.Piece(c, pt, rest.PopLSB())
			}
		}
		h ^= p.hasher.Castling(c, p.castling[c])
	}
	if p.enPassant != board.NoSquare {
		h ^= p.hasher.EnPassantFile(p.enPassant.File())
	}
	return h
}

// pinsAndChecks computes, for a king of color c standing on sq, the pieces
// of c pinned to it and the enemy pieces checking it. A slider whose
// empty-board reach covers sq checks when nothing stands between, and pins
// the blocker when exactly one of c's pieces does. Knights, pawns and the
// enemy king contribute checks only.
func (p *Position) pinsAndChecks(c board.Color, sq board.Square) (pinned, checkers board.BitBoard) {
	enemy := p.colors[c.Other()]
	diagonal := p.pieces[board.Bishop] | p.pieces[board.Queen]
	orthogonal := p.pieces[board.Rook] | p.pieces[board.Queen]

	sliders := enemy & (p.tables.Bishop(sq)&diagonal | p.tables.Rook(sq)&orthogonal)
	for rest := sliders; rest != 0; {
		attacker := rest.PopLSB()
		between, _ := p.tables.Between(sq, attacker)
		blockers := between & p.combined
		switch blockers.PopCount() {
		case 0:
			checkers |= attacker.Mask()
		case 1:
			pinned |= blockers & p.colors[c]
		}
	}

	checkers |= p.tables.Knight(sq) & enemy & p.pieces[board.Knight]
	// the squares c's own pawn would attack from sq are exactly the squares
	// enemy pawns check sq from
	checkers |= p.tables.PawnCaptures(c, sq) & enemy & p.pieces[board.Pawn]
	checkers |= p.tables.King(sq) & enemy & p.pieces[board.King]
	return pinned, checkers
}

func (p *Position) updatePinsAndChecks() {
	p.pinned, p.checkers = p.pinsAndChecks(p.sideToMove, p.KingSquare(p.sideToMove))
}

// underAttack reports whether sq is attacked by the enemies of c, as when
// vetting castling transit squares.
func (p *Position) underAttack(c board.Color, sq board.Square) bool {
	_, checkers := p.pinsAndChecks(c, sq)
	return checkers != 0
}

func homeRank(c board.Color) board.Rank {
	if c == board.White {
		return board.Rank1
	}
	return board.Rank8
}

func farRank(c board.Color) board.Rank {
	if c == board.White {
		return board.Rank8
	}
	return board.Rank1
}

// movePiece relocates the moved pieces, maintaining occupancy and hash but
// leaving flags, counters and derived state to the caller. Captures clear
// the destination first; a pawn arriving on the en-passant target clears
// the bypassed pawn; promotions place the promotion piece; castles move
// king and rook atomically.
func (p *Position) movePiece(m move.Move) {
	c := p.sideToMove
	if m.Type() != move.MoveTypePiece {
		home := homeRank(c)
		kingFrom := board.NewSquare(board.FileE, home)
		var rookFrom, kingTo, rookTo board.Square
		if m.Type() == move.MoveTypeKingSideCastle {
			rookFrom = board.NewSquare(board.FileH, home)
			kingTo = board.NewSquare(board.FileG, home)
			rookTo = board.NewSquare(board.FileF, home)
		} else {
			rookFrom = board.NewSquare(board.FileA, home)
			kingTo = board.NewSquare(board.FileC, home)
			rookTo = board.NewSquare(board.FileD, home)
		}
		p.clear(kingFrom)
		p.clear(rookFrom)
		p.put(board.Piece{Type: board.King, Color: c}, kingTo)
		p.put(board.Piece{Type: board.Rook, Color: c}, rookTo)
		return
	}

	src, dst := m.Source(), m.Destination()
	if m.Piece() == board.Pawn && dst == p.enPassant {
		if c == board.White {
			p.clear(dst - 8)
		} else {
			p.clear(dst + 8)
		}
	}
	p.clear(dst)
	p.clear(src)
	placed := board.Piece{Type: m.Piece(), Color: c}
	if pt, ok := m.Promotion(); ok {
		placed.Type = pt
	}
	p.put(placed, dst)
}

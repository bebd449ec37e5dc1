package board

import "sync"

// Direction indexes the eight compass rays used by sliding pieces.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 4) % NumDirections }

// Index steps per direction; horizontal wrap is caught by the file delta.
var directionSteps = [NumDirections]int{8, 9, 1, -7, -8, -9, -1, 7}

// Tables holds every precomputed attack and geometry table the move engine
// consults: leaper patterns, occupancy-blind slider reaches, per-color pawn
// advance and capture patterns, edge-bounded rays, and the strictly-between
// table. Build one with NewTables, or share DefaultTables. A built Tables is
// read-only and safe for concurrent readers.
type Tables struct {
	knight [NumSquares]BitBoard
	king   [NumSquares]BitBoard
	bishop [NumSquares]BitBoard
	rook   [NumSquares]BitBoard
	queen  [NumSquares]BitBoard

	pawnMoves    [NumColors][NumSquares]BitBoard
	pawnCaptures [NumColors][NumSquares]BitBoard

	rays    [NumSquares][NumDirections]BitBoard
	between [NumSquares][NumSquares]BitBoard
	aligned [NumSquares][NumSquares]bool
}

// NewTables computes all tables from scratch.
func NewTables() *Tables {
	t := &Tables{}
	t.initRays()
	t.initSliders()
	t.initLeapers()
	t.initPawns()
	t.initBetween()
	return t
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the shared process-wide table set, built on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}

func (t *Tables) initRays() {
	for sq := 0; sq < NumSquares; sq++ {
		for d := Direction(0); d < NumDirections; d++ {
			step := directionSteps[d]
			ray := EmptyBitBoard
			for cur := sq; ; {
				next := cur + step
				if next < 0 || next >= NumSquares {
					break
				}
				df := int(Square(next).File()) - int(Square(cur).File())
				if df < -1 || df > 1 {
					// wrapped around a board edge
					break
				}
				ray |= Square(next).Mask()
				cur = next
			}
			t.rays[sq][d] = ray
		}
	}
}

func (t *Tables) initSliders() {
	for sq := 0; sq < NumSquares; sq++ {
		diag := t.rays[sq][NorthEast] | t.rays[sq][SouthEast] |
			t.rays[sq][SouthWest] | t.rays[sq][NorthWest]
		orth := t.rays[sq][North] | t.rays[sq][East] |
			t.rays[sq][South] | t.rays[sq][West]
		t.bishop[sq] = diag
		t.rook[sq] = orth
		t.queen[sq] = diag | orth
	}
}

func (t *Tables) initLeapers() {
	for sq := Square(0); sq < NumSquares; sq++ {
		m := sq.Mask()
		t.knight[sq] = (m<<17)&notAFile | (m<<15)&notHFile |
			(m<<10)&notABFile | (m<<6)&notGHFile |
			(m>>6)&notABFile | (m>>10)&notGHFile |
			(m>>15)&notAFile | (m>>17)&notHFile
		t.king[sq] = (m<<9)&notAFile | m<<8 | (m<<7)&notHFile |
			(m<<1)&notAFile | (m>>1)&notHFile |
			(m>>7)&notAFile | m>>8 | (m>>9)&notHFile
	}
}

func (t *Tables) initPawns() {
	for sq := Square(0); sq < NumSquares; sq++ {
		m := sq.Mask()
		r := sq.Rank()

		white := EmptyBitBoard
		if r < Rank8 {
			white = m << 8
			if r == Rank2 {
				white |= m << 16
			}
		}
		t.pawnMoves[White][sq] = white

		black := EmptyBitBoard
		if r > Rank1 {
			black = m >> 8
			if r == Rank7 {
				black |= m >> 16
			}
		}
		t.pawnMoves[Black][sq] = black

		t.pawnCaptures[White][sq] = (m<<7)&notHFile | (m<<9)&notAFile
		t.pawnCaptures[Black][sq] = (m>>9)&notHFile | (m>>7)&notAFile
	}
}

func (t *Tables) initBetween() {
	for a := Square(0); a < NumSquares; a++ {
		for b := Square(0); b < NumSquares; b++ {
			if a == b {
				t.aligned[a][b] = true
				continue
			}
			d, ok := directionBetween(a, b)
			if !ok {
				continue
			}
			t.aligned[a][b] = true
			t.between[a][b] = t.rays[a][d] & t.rays[b][d.Opposite()]
		}
	}
}

// directionBetween classifies the line from a to b, if the two squares share
// a rank, file or diagonal.
func directionBetween(a, b Square) (Direction, bool) {
	df := int(b.File()) - int(a.File())
	dr := int(b.Rank()) - int(a.Rank())
	switch {
	case df == 0 && dr > 0:
		return North, true
	case df == 0 && dr < 0:
		return South, true
	case dr == 0 && df > 0:
		return East, true
	case dr == 0 && df < 0:
		return West, true
	case df == dr && df > 0:
		return NorthEast, true
	case df == dr && df < 0:
		return SouthWest, true
	case df == -dr && df > 0:
		return SouthEast, true
	case df == -dr && df < 0:
		return NorthWest, true
	}
	return 0, false
}

// Knight returns the knight attack set from sq.
func (t *Tables) Knight(sq Square) BitBoard { return t.knight[sq] }

// King returns the king attack set from sq.
func (t *Tables) King(sq Square) BitBoard { return t.king[sq] }

// Bishop returns the occupancy-blind diagonal reach from sq.
func (t *Tables) Bishop(sq Square) BitBoard { return t.bishop[sq] }

// Rook returns the occupancy-blind orthogonal reach from sq.
func (t *Tables) Rook(sq Square) BitBoard { return t.rook[sq] }

// Queen returns the occupancy-blind queen reach from sq.
func (t *Tables) Queen(sq Square) BitBoard { return t.queen[sq] }

// PawnMoves returns the quiet advances for a pawn of color c on sq, including
// the double step from the start rank. Blockers are the caller's concern.
func (t *Tables) PawnMoves(c Color, sq Square) BitBoard { return t.pawnMoves[c][sq] }

// PawnCaptures returns the squares a pawn of color c on sq attacks.
func (t *Tables) PawnCaptures(c Color, sq Square) BitBoard { return t.pawnCaptures[c][sq] }

// Ray returns the edge-bounded ray from sq in direction d, excluding sq.
func (t *Tables) Ray(sq Square, d Direction) BitBoard { return t.rays[sq][d] }

// Between returns the squares strictly between a and b. The second result is
// false when the pair shares no rank, file or diagonal; aligned pairs that
// are adjacent or identical yield an empty set and true.
func (t *Tables) Between(a, b Square) (BitBoard, bool) {
	return t.between[a][b], t.aligned[a][b]
}

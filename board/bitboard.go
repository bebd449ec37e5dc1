package board

import (
	"math/bits"
	"strings"
)

// BitBoard is a set of squares packed into a uint64, bit i standing for
// square i. Set algebra is plain bit arithmetic on the underlying integer.
type BitBoard uint64

const (
	EmptyBitBoard BitBoard = 0
	FullBitBoard  BitBoard = ^EmptyBitBoard
)

const (
	FileABB BitBoard = 0x0101010101010101
	FileHBB BitBoard = FileABB << 7

	Rank1BB BitBoard = 0xFF
	Rank8BB BitBoard = Rank1BB << 56
)

// Edge guards for shift-generated attack patterns.
const (
	notAFile  = ^FileABB
	notHFile  = ^FileHBB
	notABFile = ^(FileABB | FileABB<<1)
	notGHFile = ^(FileHBB | FileHBB>>1)
)

// FileMask returns the mask of all squares on file f.
func FileMask(f File) BitBoard { return FileABB << f }

// RankMask returns the mask of all squares on rank r.
func RankMask(r Rank) BitBoard { return Rank1BB << (8 * uint(r)) }

// Has reports whether sq is a member of the set.
func (b BitBoard) Has(sq Square) bool { return b&sq.Mask() != 0 }

// PopCount returns the number of squares in the set.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest member. Undefined for the empty set.
func (b BitBoard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// MSB returns the highest member. Undefined for the empty set.
func (b BitBoard) MSB() Square { return Square(63 - bits.LeadingZeros64(uint64(b))) }

// PopLSB removes and returns the lowest member. b must not be empty.
func (b *BitBoard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending square order.
func (b BitBoard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for rest := b; rest != 0; {
		out = append(out, rest.PopLSB())
	}
	return out
}

// String draws the set as an 8x8 grid with rank 8 at the top, for debugging.
func (b BitBoard) String() string {
	var sb strings.Builder
	for r := NumRanks - 1; r >= 0; r-- {
		for f := 0; f < NumFiles; f++ {
			if f > 0 {
				sb.WriteByte(' ')
			}
			if b.Has(NewSquare(File(f), Rank(r))) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

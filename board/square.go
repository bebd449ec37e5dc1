package board

import (
	"errors"
	"fmt"
)

// Errors returned when parsing coordinates from text.
var (
	ErrInvalidFile   = errors.New("board: invalid file")
	ErrInvalidRank   = errors.New("board: invalid rank")
	ErrInvalidSquare = errors.New("board: invalid square")
)

// File is a board column, a through h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// NumFiles and NumRanks are always 8; named for readability in loops.
const (
	NumFiles = 8
	NumRanks = 8
)

// ParseFile converts a file letter (a through h) into a File.
func ParseFile(c byte) (File, error) {
	if c < 'a' || c > 'h' {
		return 0, fmt.Errorf("%w %q", ErrInvalidFile, string(c))
	}
	return File(c - 'a'), nil
}

func (f File) String() string {
	return string('a' + rune(f))
}

// Rank is a board row, 1 through 8. Rank1 is White's back rank.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// ParseRank converts a rank digit (1 through 8) into a Rank.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return 0, fmt.Errorf("%w %q", ErrInvalidRank, string(c))
	}
	return Rank(c - '1'), nil
}

func (r Rank) String() string {
	return string('1' + rune(r))
}

// Square is a single board cell. Squares are numbered rank-major from
// 0 (a1) to 63 (h8), so index = rank*8 + file.
type Square uint8

// NumSquares is the board size.
const NumSquares = 64

// NoSquare is the sentinel for optional squares, one past h8.
const NoSquare Square = NumSquares

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from its file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// ParseSquare converts algebraic text such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w %q", ErrInvalidSquare, s)
	}
	f, err := ParseFile(s[0])
	if err != nil {
		return NoSquare, fmt.Errorf("%w %q", ErrInvalidSquare, s)
	}
	r, err := ParseRank(s[1])
	if err != nil {
		return NoSquare, fmt.Errorf("%w %q", ErrInvalidSquare, s)
	}
	return NewSquare(f, r), nil
}

func (s Square) File() File { return File(s & 7) }

func (s Square) Rank() Rank { return Rank(s >> 3) }

// Mask returns the bit-set containing only this square.
func (s Square) Mask() BitBoard { return 1 << s }

// IsLight reports whether the square is light-colored. a1 is dark.
func (s Square) IsLight() bool {
	return (uint8(s.Rank())+uint8(s.File()))%2 == 1
}

func (s Square) String() string {
	return s.File().String() + s.Rank().String()
}

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitBoardMembers(t *testing.T) {
	b := E4.Mask() | A1.Mask() | H8.Mask()
	assert.Equal(t, 3, b.PopCount())
	assert.True(t, b.Has(E4))
	assert.False(t, b.Has(E5))
	assert.Equal(t, A1, b.LSB())
	assert.Equal(t, H8, b.MSB())
	assert.Equal(t, []Square{A1, E4, H8}, b.Squares())
}

func TestBitBoardPopLSB(t *testing.T) {
	b := C3.Mask() | F7.Mask()
	assert.Equal(t, C3, b.PopLSB())
	assert.Equal(t, F7.Mask(), b)
	assert.Equal(t, F7, b.PopLSB())
	assert.Equal(t, EmptyBitBoard, b)
}

func TestFileRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileMask(FileC).PopCount())
	assert.True(t, FileMask(FileC).Has(C5))
	assert.False(t, FileMask(FileC).Has(D5))
	assert.Equal(t, 8, RankMask(Rank6).PopCount())
	assert.True(t, RankMask(Rank6).Has(A6))
	assert.Equal(t, Rank1BB, RankMask(Rank1))
	assert.Equal(t, Rank8BB, RankMask(Rank8))
	assert.Equal(t, FullBitBoard, FileMask(FileA)|FileMask(FileB)|FileMask(FileC)|
		FileMask(FileD)|FileMask(FileE)|FileMask(FileF)|FileMask(FileG)|FileMask(FileH))
}

func TestBitBoardString(t *testing.T) {
	b := A8.Mask()
	s := b.String()
	assert.Equal(t, byte('X'), s[0])
	assert.Equal(t, 8*16, len(s))
}

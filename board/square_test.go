package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	testcases := []struct {
		text string
		sq   Square
	}{
		{"a1", A1},
		{"h1", H1},
		{"e2", E2},
		{"d5", D5},
		{"h8", H8},
	}
	for _, tc := range testcases {
		sq, err := ParseSquare(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.sq, sq)
		assert.Equal(t, tc.text, sq.String())
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, text := range []string{"", "e", "e22", "i3", "a9", "E2", "4e"} {
		_, err := ParseSquare(text)
		assert.ErrorIs(t, err, ErrInvalidSquare, text)
	}
}

func TestParseFileRank(t *testing.T) {
	f, err := ParseFile('c')
	require.NoError(t, err)
	assert.Equal(t, FileC, f)
	assert.Equal(t, "c", f.String())

	r, err := ParseRank('6')
	require.NoError(t, err)
	assert.Equal(t, Rank6, r)
	assert.Equal(t, "6", r.String())

	_, err = ParseFile('j')
	assert.ErrorIs(t, err, ErrInvalidFile)
	_, err = ParseRank('0')
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = ParseRank('9')
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestSquareGeometry(t *testing.T) {
	assert.Equal(t, FileE, E4.File())
	assert.Equal(t, Rank4, E4.Rank())
	assert.Equal(t, E4, NewSquare(FileE, Rank4))
	assert.Equal(t, Square(0), A1)
	assert.Equal(t, Square(28), E4)
	assert.Equal(t, Square(63), H8)
}

func TestSquareShade(t *testing.T) {
	assert.False(t, A1.IsLight())
	assert.True(t, H1.IsLight())
	assert.True(t, E4.IsLight())
	assert.False(t, D4.IsLight())
	assert.False(t, H8.IsLight())
}

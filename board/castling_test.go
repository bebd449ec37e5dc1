package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRightsLattice(t *testing.T) {
	assert.Equal(t, CastleBoth, CastleKingSide.With(CastleQueenSide))
	assert.Equal(t, CastleKingSide, CastleBoth.Without(CastleQueenSide))
	assert.Equal(t, CastleNeither, CastleBoth.Without(CastleBoth))
	assert.Equal(t, CastleQueenSide, CastleNeither.With(CastleQueenSide))
	assert.Equal(t, CastleBoth, CastleBoth.With(CastleKingSide))
	assert.Equal(t, CastleKingSide, CastleKingSide.Without(CastleNeither))
}

func TestCastlingRightsQueries(t *testing.T) {
	assert.True(t, CastleBoth.HasKingSide())
	assert.True(t, CastleBoth.HasQueenSide())
	assert.True(t, CastleKingSide.HasKingSide())
	assert.False(t, CastleKingSide.HasQueenSide())
	assert.False(t, CastleNeither.HasKingSide())
	assert.False(t, CastleNeither.HasQueenSide())
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "kq", CastleBoth.String())
	assert.Equal(t, "k", CastleKingSide.String())
	assert.Equal(t, "q", CastleQueenSide.String())
	assert.Equal(t, "", CastleNeither.String())
}

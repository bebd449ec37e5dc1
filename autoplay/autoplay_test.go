package autoplay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaysRequestedGames(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Games:       4,
		Concurrency: 2,
		Seed:        1,
		MaxPlies:    120,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Games)
	assert.Equal(t, uint64(1), res.Seed)
	assert.Equal(t, 4, res.WhiteWins+res.BlackWins+res.Draws+res.Abandoned)
	assert.Greater(t, res.Plies, 0)
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	// Outcomes depend only on (seed, game index), not on worker scheduling.
	a, err := Run(context.Background(), Options{Games: 3, Concurrency: 3, Seed: 7, MaxPlies: 90})
	require.NoError(t, err)
	b, err := Run(context.Background(), Options{Games: 3, Concurrency: 1, Seed: 7, MaxPlies: 90})
	require.NoError(t, err)

	assert.Equal(t, a.Plies, b.Plies)
	assert.Equal(t, a.WhiteWins, b.WhiteWins)
	assert.Equal(t, a.BlackWins, b.BlackWins)
	assert.Equal(t, a.Draws, b.Draws)
	assert.Equal(t, a.Abandoned, b.Abandoned)
}

func TestRunHonorsPlyCap(t *testing.T) {
	res, err := Run(context.Background(), Options{Games: 1, Concurrency: 1, Seed: 5, MaxPlies: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Games)
	assert.LessOrEqual(t, res.Plies, 4)
}

func TestRunStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Games: 100, Concurrency: 2, Seed: 3, MaxPlies: 40})
	require.ErrorIs(t, err, context.Canceled)
}

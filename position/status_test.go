package position

import (
	"testing"

	"github.com/matryer/is"
)

func TestCheckmateStatus(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("R3k3/8/4K3/8/8/8/8/8 b - - 0 1")
	is.NoErr(err)

	is.True(p.IsTerminal())
	is.True(p.InCheck())
	is.True(p.InCheckmate())
	is.True(!p.InStalemate())
}

func TestStalemateStatus(t *testing.T) {
	is := is.New(t)
	p, err := ParseFEN("3k4/3P4/3K4/8/8/8/8/8 b - - 0 1")
	is.NoErr(err)

	is.True(p.IsTerminal())
	is.True(!p.InCheck())
	is.True(p.InStalemate())
	is.True(!p.InCheckmate())
}

func TestOngoingStatus(t *testing.T) {
	is := is.New(t)
	p := Initial()
	is.True(!p.IsTerminal())
	is.True(!p.InCheckmate())
	is.True(!p.InStalemate())
}

func TestInsufficientMaterial(t *testing.T) {
	is := is.New(t)
	drawn := []string{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4KN2 w - - 0 1",
		"4k1b1/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k1b1/8/8/8/8/8/8/4KN2 w - - 0 1",
	}
	for _, fen := range drawn {
		p, err := ParseFEN(fen)
		is.NoErr(err)
		is.True(p.InsufficientMaterial())
	}

	live := []string{
		StartingFEN,
		"4k3/8/8/8/8/8/8/4KR2 w - - 0 1",
		"4k3/7p/8/8/8/8/8/4KN2 w - - 0 1",
		"4k3/8/8/8/8/8/8/3NKN2 w - - 0 1",
		"4k3/8/8/8/8/8/8/3QK3 w - - 0 1",
	}
	for _, fen := range live {
		p, err := ParseFEN(fen)
		is.NoErr(err)
		is.True(!p.InsufficientMaterial())
	}
}

func TestFiftyMoveReady(t *testing.T) {
	is := is.New(t)

	p, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 99 80")
	is.NoErr(err)
	is.True(!p.FiftyMoveReady())

	p, err = ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 80")
	is.NoErr(err)
	is.True(p.FiftyMoveReady())
}

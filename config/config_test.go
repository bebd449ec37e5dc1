package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.GetString("log-level"), "info")
	is.Equal(c.GetString("prompt"), "caissa")
	is.Equal(c.GetInt("autoplay-games"), 10)
	is.Equal(c.GetUint64("autoplay-seed"), uint64(0))
	is.Equal(c.ZerologLevel(), zerolog.InfoLevel)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--log-level", "debug", "--autoplay-games", "3", "moves"})
	is.NoErr(err)
	is.Equal(c.GetString("log-level"), "debug")
	is.Equal(c.GetInt("autoplay-games"), 3)
	is.Equal(c.Args(), []string{"moves"}) // positionals survive flag parsing
	is.Equal(c.ZerologLevel(), zerolog.DebugLevel)
}

func TestLoadEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("CAISSA_PROMPT", "white-to-move")
	t.Setenv("CAISSA_AUTOPLAY_SEED", "99")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString("prompt"), "white-to-move")
	is.Equal(c.GetUint64("autoplay-seed"), uint64(99))
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "caissa.yaml")
	err := os.WriteFile(path, []byte("log-level: warn\nautoplay-concurrency: 2\n"), 0o644)
	is.NoErr(err)
	c := &Config{}
	is.NoErr(c.Load([]string{"--config-file", path}))
	is.Equal(c.GetString("log-level"), "warn")
	is.Equal(c.GetInt("autoplay-concurrency"), 2)
	is.Equal(c.ZerologLevel(), zerolog.WarnLevel)
}

func TestSetOverrides(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	c.Set("prompt", "endgame")
	is.Equal(c.GetString("prompt"), "endgame")
}

func TestBadLogLevelFallsBack(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--log-level", "shouting"}))
	is.Equal(c.ZerologLevel(), zerolog.InfoLevel)
}

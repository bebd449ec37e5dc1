// Package config loads runtime settings for the caissa binaries from
// command-line flags, CAISSA_ environment variables, and an optional config
// file. Library packages never read configuration directly; they take what
// they need as arguments.
package config

import (
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance. A setting resolves in the usual order:
// explicit flag, then environment variable, then config file, then default.
type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses args and populates c. Flag names are kebab-case; the matching
// environment variables are upper snake-case with a CAISSA_ prefix, so
// for example --log-level is CAISSA_LOG_LEVEL.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("caissa", pflag.ContinueOnError)
	fs.String("config-file", "", "path to an optional YAML config file")
	fs.String("log-level", "info", "zerolog level: debug, info, warn, error")
	fs.String("prompt", "caissa", "shell prompt text")
	fs.String("history-file", "/tmp/readline-caissa.tmp", "readline history file")
	fs.String("cpu-profile", "", "if set, write a CPU profile to this path")
	fs.String("mem-profile", "", "if set, write a memory profile to this path")
	fs.Int("autoplay-games", 10, "number of games an autoplay run plays")
	fs.Int("autoplay-concurrency", runtime.NumCPU(), "number of concurrent autoplay workers")
	fs.Uint64("autoplay-seed", 0, "seed for autoplay move selection; 0 draws one from system entropy")
	fs.Int("autoplay-max-plies", 600, "abandon an autoplay game after this many plies")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.v.SetEnvPrefix("caissa")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if cf := c.v.GetString("config-file"); cf != "" {
		c.v.SetConfigFile(cf)
		if err := c.v.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments left over after flag parsing. The
// shell joins them into a one-shot command.
func (c *Config) Args() []string { return c.args }

func (c *Config) GetString(key string) string { return c.v.GetString(key) }

func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

func (c *Config) GetUint64(key string) uint64 { return c.v.GetUint64(key) }

// Set overrides a single setting. The shell uses this for its setconfig
// command.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// AllSettings returns every resolved setting, for logging at startup.
func (c *Config) AllSettings() map[string]any { return c.v.AllSettings() }

// ZerologLevel translates the log-level setting, falling back to info when
// it does not name a zerolog level.
func (c *Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.GetString("log-level")))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

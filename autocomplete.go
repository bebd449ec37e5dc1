package main

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/caissa-chess/caissa/move"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-games")
	Args    []string // Possible argument values
}

var commandMetadata = map[string]CommandMetadata{
	"autoplay": {
		Options: []string{"-games", "-concurrency", "-seed", "-max-plies"},
	},
	"setconfig": {
		Args: []string{
			"log-level", "prompt", "history-file", "autoplay-games",
			"autoplay-concurrency", "autoplay-seed", "autoplay-max-plies",
		},
	},
	"help": {
		Args: []string{
			"move", "fen", "autoplay", "perft", "svg", "draw", "setconfig",
		},
	},
}

// Common command names for command completion
var commandNames = []string{
	"new", "fen", "move", "moves", "show", "flip", "offer", "accept",
	"decline", "resign", "history", "status", "perft", "svg", "autoplay",
	"setconfig", "help", "exit", "bye",
}

// Do implements the readline.AutoCompleter interface. The move command
// completes from the legal moves of the current position; everything else
// completes from static metadata.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		// Completing a command name
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		if cmdName == "move" {
			completions = lo.Map(c.sc.curGame.Position().LegalMoves(),
				func(m move.Move, _ int) string { return m.String() })
		} else if metadata, exists := commandMetadata[cmdName]; exists {
			if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
				completions = metadata.Options
			} else {
				completions = metadata.Args
			}
		}
	}

	// Filter completions based on prefix
	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}

package game

import (
	"fmt"

	"github.com/caissa-chess/caissa/board"
)

// StatusKind enumerates the ways a game can stand or end.
type StatusKind uint8

const (
	StatusOngoing StatusKind = iota
	StatusCheckMated
	StatusResigned
	StatusRepetitionDraw
	StatusDrawAccepted
	StatusStalemate
)

func (k StatusKind) String() string {
	switch k {
	case StatusOngoing:
		return "ongoing"
	case StatusCheckMated:
		return "checkmate"
	case StatusResigned:
		return "resigned"
	case StatusRepetitionDraw:
		return "draw by repetition"
	case StatusDrawAccepted:
		return "draw agreed"
	case StatusStalemate:
		return "stalemate"
	}
	return fmt.Sprintf("status(%d)", uint8(k))
}

// Status is the game's current standing. Loser is meaningful only for the
// kinds that name a losing side, checkmate and resignation.
type Status struct {
	Kind  StatusKind
	Loser board.Color
}

// Finished reports whether the game has left the ongoing state.
func (s Status) Finished() bool { return s.Kind != StatusOngoing }

// Draw reports whether the game ended level.
func (s Status) Draw() bool {
	switch s.Kind {
	case StatusRepetitionDraw, StatusDrawAccepted, StatusStalemate:
		return true
	}
	return false
}

// Winner returns the winning side for decisive results.
func (s Status) Winner() (board.Color, bool) {
	switch s.Kind {
	case StatusCheckMated, StatusResigned:
		return s.Loser.Other(), true
	}
	return 0, false
}

func (s Status) String() string {
	switch s.Kind {
	case StatusCheckMated:
		return fmt.Sprintf("%s is checkmated", s.Loser)
	case StatusResigned:
		return fmt.Sprintf("%s resigned", s.Loser)
	}
	return s.Kind.String()
}

package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/move"
	"github.com/caissa-chess/caissa/position"
)

// History is the annotated move record of one game, kept alongside the raw
// action log so moves can be displayed in standard notation.
type History struct {
	startColor  board.Color
	startNumber int
	entries     []move.Annotated
}

func newHistory(start *position.Position) *History {
	return &History{
		startColor:  start.SideToMove(),
		startNumber: start.FullmoveNumber(),
	}
}

func (h *History) record(a move.Annotated) {
	h.entries = append(h.entries, a)
}

// Len returns the number of recorded plies.
func (h *History) Len() int { return len(h.entries) }

// Moves returns the annotated moves in play order.
func (h *History) Moves() []move.Annotated {
	return append([]move.Annotated(nil), h.entries...)
}

// Movetext renders the history as numbered move pairs, for example
// "1.e4 e5 2.Qh5". A game starting from a position with Black to move
// opens with an ellipsis in White's slot: "3. ... Nf6 4.d4".
func (h *History) Movetext() string {
	if len(h.entries) == 0 {
		return ""
	}
	texts := lo.Map(h.entries, func(a move.Annotated, _ int) string {
		return a.String()
	})

	var sb strings.Builder
	num := h.startNumber
	i := 0
	if h.startColor == board.Black {
		fmt.Fprintf(&sb, "%d. ... %s", num, texts[0])
		num++
		i = 1
	}
	for ; i < len(texts); i += 2 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d.%s", num, texts[i])
		if i+1 < len(texts) {
			sb.WriteByte(' ')
			sb.WriteString(texts[i+1])
		}
		num++
	}
	return sb.String()
}

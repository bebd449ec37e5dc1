package position

import (
	"fmt"
	"strings"

	"github.com/caissa-chess/caissa/board"
)

// String draws the board as a bordered text grid with rank and file labels
// and a header naming the side to move and the remaining castling rights.
// The flipped flag shows the board from Black's perspective.
func (p *Position) String() string {
	rights := strings.ToUpper(p.castling[board.White].String()) + p.castling[board.Black].String()
	if rights == "" {
		rights = "-"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "   %s  %s\n", p.sideToMove, rights)
	sb.WriteString("  ╔════════════════════════╗\n")
	for i := 0; i < board.NumRanks; i++ {
		r := board.Rank(board.NumRanks - 1 - i)
		if p.flipped {
			r = board.Rank(i)
		}
		fmt.Fprintf(&sb, "%s ║", r)
		for j := 0; j < board.NumFiles; j++ {
			f := board.File(j)
			if p.flipped {
				f = board.File(board.NumFiles - 1 - j)
			}
			if pc, ok := p.PieceAt(board.NewSquare(f, r)); ok {
				fmt.Fprintf(&sb, " %c ", pc.FEN())
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("  ╚════════════════════════╝\n")
	sb.WriteString("  ")
	for j := 0; j < board.NumFiles; j++ {
		f := board.File(j)
		if p.flipped {
			f = board.File(board.NumFiles - 1 - j)
		}
		fmt.Fprintf(&sb, "  %s", f)
	}
	sb.WriteString("\n")
	return sb.String()
}

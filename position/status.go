package position

import "github.com/caissa-chess/caissa/board"

// InCheckmate reports a terminal position with the king under attack.
func (p *Position) InCheckmate() bool { return p.terminal && p.checkers != 0 }

// InStalemate reports a terminal position with the king safe.
func (p *Position) InStalemate() bool { return p.terminal && p.checkers == 0 }

// FiftyMoveReady reports whether the half-move clock has reached the fifty
// full moves without a capture or pawn move that let either player claim a
// draw.
func (p *Position) FiftyMoveReady() bool { return p.halfmoveClock >= 100 }

// InsufficientMaterial applies the narrow theoretical-draw test: both sides
// reduced to a bare king or king plus a single minor piece. Other drawn
// material configurations are not detected.
func (p *Position) InsufficientMaterial() bool {
	minors := p.pieces[board.Knight] | p.pieces[board.Bishop]
	for c := board.Color(0); c < board.NumColors; c++ {
		side := p.colors[c]
		switch side.PopCount() {
		case 1:
		case 2:
			if side&^(p.pieces[board.King]|minors) != 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

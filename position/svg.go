package position

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/caissa-chess/caissa/board"
)

const (
	svgSquare    = 45
	svgLight     = "#f0d9b5"
	svgDark      = "#b58863"
	svgWhiteText = "fill:#ffffff;stroke:#000000;stroke-width:1px"
	svgBlackText = "fill:#000000"
)

// WriteSVG draws the position as an SVG board: shaded squares with the FEN
// letters as glyphs, from Black's perspective when the display flag is
// flipped.
func (p *Position) WriteSVG(w io.Writer) {
	size := svgSquare * board.NumFiles
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:"+svgDark)
	for i := 0; i < board.NumRanks; i++ {
		for j := 0; j < board.NumFiles; j++ {
			r := board.Rank(board.NumRanks - 1 - i)
			f := board.File(j)
			if p.flipped {
				r = board.Rank(i)
				f = board.File(board.NumFiles - 1 - j)
			}
			sq := board.NewSquare(f, r)
			if sq.IsLight() {
				canvas.Rect(j*svgSquare, i*svgSquare, svgSquare, svgSquare, "fill:"+svgLight)
			}
			pc, ok := p.PieceAt(sq)
			if !ok {
				continue
			}
			style := svgBlackText
			if pc.Color == board.White {
				style = svgWhiteText
			}
			canvas.Text(j*svgSquare+svgSquare/2, i*svgSquare+svgSquare*2/3,
				string(pc.FEN()),
				fmt.Sprintf("font-size:%dpx;font-family:sans-serif;text-anchor:middle;%s", svgSquare*2/3, style))
		}
	}
	canvas.End()
}

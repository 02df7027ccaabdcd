package board

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/magicgen/position"
)

const (
	svgCell   = 48
	svgMargin = 24
)

// DrawSVG renders bm as a board diagram. Squares in marks, typically the
// slider itself, are outlined.
func (bm Bitboard) DrawSVG(w io.Writer, marks ...position.Pos) {
	size := svgMargin*2 + svgCell*int(Width)
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	marked := Empty
	for _, p := range marks {
		marked.Set(p)
	}

	for row := position.Pos(0); row < Height; row++ {
		for col := position.Pos(0); col < Width; col++ {
			pos := row*Width + col
			x := svgMargin + int(col)*svgCell
			y := svgMargin + int(Height-1-row)*svgCell
			fill := "#f0d9b5"
			if (row+col)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, svgCell, svgCell, "fill:"+fill)
			if bm.Has(pos) {
				canvas.Circle(x+svgCell/2, y+svgCell/2, svgCell/4, "fill:#c0392b;fill-opacity:0.85")
			}
			if marked.Has(pos) {
				canvas.Rect(x+2, y+2, svgCell-4, svgCell-4, "fill:none;stroke:#2c3e50;stroke-width:4")
			}
		}
	}

	label := "font-family:monospace;font-size:14px;text-anchor:middle;fill:#333333"
	for i := position.Pos(0); i < Width; i++ {
		canvas.Text(svgMargin+int(i)*svgCell+svgCell/2, size-svgMargin/3, i.NotationComponentCol(), label)
		canvas.Text(svgMargin/2, svgMargin+int(Height-1-i)*svgCell+svgCell/2+5, i.NotationComponentRow(), label)
	}
	canvas.Text(size/2, svgMargin*2/3, fmt.Sprintf("%s (%d)", bm, bm.BitCount()), label)
	canvas.End()
}

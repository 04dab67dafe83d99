package ui

import (
	"strings"

	"gridui/internal/grid"
	"gridui/internal/ui/textutil"
	"gridui/internal/view"
)

// Board geometry inside the rendered frame: one title line, then the
// board's top border; one border column and one padding column on the left.
const (
	boardTop  = 2
	boardLeft = 2
)

// RenderPane draws p as a grid of cellWidth-wide cells. The cell at cursor
// is highlighted; pass a point outside the pane to draw no cursor.
func RenderPane(p *view.Pane, cursor grid.Point, cellWidth int) string {
	b := p.Bounds()
	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.Cols; col++ {
			pt := grid.At(row, col)
			sb.WriteString(renderCell(p, pt, pt == cursor, cellWidth))
		}
	}
	return sb.String()
}

func renderCell(p *view.Pane, pt grid.Point, selected bool, width int) string {
	content := Styles.Empty.Render(EmptyGlyph)
	if el, ok := p.Get(pt); ok && el.Drawable != nil {
		content = el.Drawable.Render()
	}
	content = textutil.Fit(content, width)
	if selected {
		return Styles.Cursor.Render(content)
	}
	return Styles.Cell.Render(content)
}

// pointAt maps a terminal position to the grid point drawn there.
func pointAt(x, y, cellWidth int, b grid.Bounds) (grid.Point, bool) {
	if x < boardLeft || y < boardTop || cellWidth <= 0 {
		return grid.Point{}, false
	}
	pt := grid.At(y-boardTop, (x-boardLeft)/cellWidth)
	return pt, b.Contains(pt)
}

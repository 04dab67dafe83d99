// Package grid provides the coordinate space interfaces are drawn on:
// points, surface bounds and generators that enumerate subsets of points.
package grid

import "fmt"

// Point is a cell address on a grid. Points are plain values and can be
// used as map keys; whether a point is on the surface is decided by Bounds.
type Point struct {
	Row int
	Col int
}

// At creates a Point at the given row and column.
func At(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns the point as "row,col".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Bounds is the size of a display surface in rows and columns.
type Bounds struct {
	Rows int
	Cols int
}

// Contains reports whether p lies on the surface.
func (b Bounds) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// Size returns the number of cells on the surface.
func (b Bounds) Size() int {
	if b.Rows <= 0 || b.Cols <= 0 {
		return 0
	}
	return b.Rows * b.Cols
}

// Points returns every point on the surface in row-major order.
func (b Bounds) Points() []Point {
	out := make([]Point, 0, b.Size())
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			out = append(out, Point{Row: r, Col: c})
		}
	}
	return out
}

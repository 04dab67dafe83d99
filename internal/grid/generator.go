package grid

// PositionGenerator produces an ordered sequence of points. Generators must
// be pure: calling one twice without a change in the state it reads yields
// the same sequence. Callers evaluate a generator each time they paint
// rather than caching its result.
type PositionGenerator func() []Point

// Points evaluates the generator. A nil generator yields no points.
func (g PositionGenerator) Points() []Point {
	if g == nil {
		return nil
	}
	return g()
}

// Single returns a generator for exactly one point.
func Single(p Point) PositionGenerator {
	return func() []Point { return []Point{p} }
}

// List returns a generator for a fixed list of points.
func List(points ...Point) PositionGenerator {
	fixed := append([]Point(nil), points...)
	return func() []Point {
		return append([]Point(nil), fixed...)
	}
}

// Row returns a generator for columns [0, cols) of row.
func Row(row, cols int) PositionGenerator {
	if cols <= 0 {
		return List()
	}
	return Box(At(row, 0), At(row, cols-1))
}

// Column returns a generator for rows [0, rows) of col.
func Column(col, rows int) PositionGenerator {
	if rows <= 0 {
		return List()
	}
	return Box(At(0, col), At(rows-1, col))
}

// Box returns a generator for the rectangle spanned by two corners,
// inclusive, in row-major order. The corners may be given in any order.
func Box(a, b Point) PositionGenerator {
	top, bottom := minmax(a.Row, b.Row)
	left, right := minmax(a.Col, b.Col)
	return func() []Point {
		out := make([]Point, 0, (bottom-top+1)*(right-left+1))
		for r := top; r <= bottom; r++ {
			for c := left; c <= right; c++ {
				out = append(out, Point{Row: r, Col: c})
			}
		}
		return out
	}
}

// Slots returns a generator for the first n points of area, e.g. the content
// cells of one page. n is capped at the number of points area produces.
func Slots(area PositionGenerator, n int) PositionGenerator {
	if n < 0 {
		n = 0
	}
	return func() []Point {
		points := area.Points()
		if n < len(points) {
			points = points[:n]
		}
		return points
	}
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

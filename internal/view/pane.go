package view

import (
	"cmp"
	"slices"

	"gridui/internal/grid"
)

// Pane maps grid points to elements. A later write to a point replaces the
// earlier one.
type Pane struct {
	bounds grid.Bounds
	cells  map[grid.Point]Element
}

// NewPane creates an empty pane for a surface of the given size.
func NewPane(b grid.Bounds) *Pane {
	return &Pane{bounds: b, cells: make(map[grid.Point]Element)}
}

// Bounds returns the size of the surface the pane targets.
func (p *Pane) Bounds() grid.Bounds {
	return p.bounds
}

// Set places e at pt.
func (p *Pane) Set(pt grid.Point, e Element) {
	p.cells[pt] = e
}

// SetAll places e at every point gen produces.
func (p *Pane) SetAll(gen grid.PositionGenerator, e Element) {
	for _, pt := range gen.Points() {
		p.cells[pt] = e
	}
}

// Get returns the element at pt.
func (p *Pane) Get(pt grid.Point) (Element, bool) {
	e, ok := p.cells[pt]
	return e, ok
}

// Delete clears pt.
func (p *Pane) Delete(pt grid.Point) {
	delete(p.cells, pt)
}

// Len returns the number of occupied points.
func (p *Pane) Len() int {
	return len(p.cells)
}

// Points returns the occupied points in row-major order.
func (p *Pane) Points() []grid.Point {
	out := make([]grid.Point, 0, len(p.cells))
	for pt := range p.cells {
		out = append(out, pt)
	}
	slices.SortFunc(out, func(a, b grid.Point) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// Clone returns an independent copy of the pane.
func (p *Pane) Clone() *Pane {
	out := NewPane(p.bounds)
	for pt, e := range p.cells {
		out.cells[pt] = e
	}
	return out
}

// overlay copies every in-bounds cell of layer over p and returns the number
// of cells dropped for lying outside the surface.
func (p *Pane) overlay(layer *Pane) (dropped int) {
	if layer == nil {
		return 0
	}
	for pt, e := range layer.cells {
		if !p.bounds.Contains(pt) {
			dropped++
			continue
		}
		p.cells[pt] = e
	}
	return dropped
}

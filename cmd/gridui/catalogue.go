package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gridui/internal/drawable"
	"gridui/internal/grid"
	"gridui/internal/paging"
	"gridui/internal/property"
	"gridui/internal/view"
)

// catalogue is the demo interface: a paged list of numbered items above a
// control row. Left click selects an item, right click removes it.
type catalogue struct {
	*paging.List[int]

	bounds   grid.Bounds
	selected *property.Property[int]
}

// Ensure catalogue is stateful.
var _ view.Stateful = (*catalogue)(nil)

// newCatalogue creates the catalogue for one View, holding items 1..n.
func newCatalogue(b grid.Bounds, n int) *catalogue {
	c := &catalogue{bounds: b, selected: property.New(-1)}

	last := b.Rows - 1
	back := paging.ButtonAt(grid.At(last, 0), drawable.Button("<"), map[view.ClickKind]int{
		view.ClickLeft:      -1,
		view.ClickShiftLeft: -5,
	})
	forward := paging.ButtonAt(grid.At(last, b.Cols-1), drawable.Button(">"), map[view.ClickKind]int{
		view.ClickLeft:      1,
		view.ClickShiftLeft: 5,
	})

	slots := grid.List()
	if b.Rows > 1 {
		slots = grid.Box(grid.At(0, 0), grid.At(last-1, b.Cols-1))
	}

	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	c.List = paging.NewList(&back, &forward, slots, items, c.drawItem)
	return c
}

// Triggers adds the selection to the list's triggers.
func (c *catalogue) Triggers() []property.Trigger {
	return append(c.List.Triggers(), c.selected)
}

// Apply paints the list, then the control row.
func (c *catalogue) Apply(ctx context.Context, p *view.Pane, v *view.View) {
	c.List.Apply(ctx, p, v)

	last := c.bounds.Rows - 1
	p.Set(grid.At(last, c.bounds.Cols/2), view.StaticElement(drawable.Muted(fmt.Sprint(c.Page()+1)), nil))
	if c.bounds.Cols < 5 {
		return
	}
	p.Set(grid.At(last, 1), view.StaticElement(drawable.Button("~"), c.shuffle))
	p.Set(grid.At(last, c.bounds.Cols-2), view.StaticElement(drawable.Danger("x"), closeView))
}

func (c *catalogue) drawItem(item int) view.Element {
	d := drawable.Text(fmt.Sprintf("%02d", item%100))
	if item == c.selected.Get() {
		d = drawable.Colored(d.Glyph, drawable.ColorHighlight)
	}
	return view.StaticElement(d, func(_ context.Context, cl view.Click) error {
		switch {
		case cl.Kind.IsRight():
			c.remove(item)
		case cl.Kind.IsLeft():
			c.selected.Set(item)
		}
		return nil
	})
}

func (c *catalogue) remove(item int) {
	items := c.Items()
	kept := items[:0]
	for _, it := range items {
		if it != item {
			kept = append(kept, it)
		}
	}
	c.SetItems(kept)
}

func (c *catalogue) shuffle(context.Context, view.Click) error {
	items := c.Items()
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	c.SetItems(items)
	return nil
}

func closeView(ctx context.Context, cl view.Click) error {
	return cl.View.Close(ctx, view.ReasonPlugin)
}

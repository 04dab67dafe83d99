// Package paging provides a stateful transform that splits content into
// pages and paints back/forward buttons to move between them.
package paging

import (
	"context"
	"math"

	"gridui/internal/grid"
	"gridui/internal/property"
	"gridui/internal/view"
)

// Button is a pagination button.
type Button struct {
	// Positions is evaluated on every paint, so a button may move with state.
	Positions grid.PositionGenerator
	Drawable  view.Drawable
	// Increments maps a click kind to the page delta it applies. Kinds that
	// are missing leave the page alone.
	Increments map[view.ClickKind]int
	// OnClick runs after every click on the button, whether or not the page
	// moved.
	OnClick func(ctx context.Context, u view.User)
}

// NewButton creates a button painted at every point positions produces.
func NewButton(positions grid.PositionGenerator, d view.Drawable, increments map[view.ClickKind]int) Button {
	return Button{Positions: positions, Drawable: d, Increments: increments}
}

// ButtonAt creates a button painted at a single point.
func ButtonAt(pt grid.Point, d view.Drawable, increments map[view.ClickKind]int) Button {
	return NewButton(grid.Single(pt), d, increments)
}

// WithHandler returns a copy of b that runs fn after each click.
func (b Button) WithHandler(fn func(ctx context.Context, u view.User)) Button {
	b.OnClick = fn
	return b
}

// Transform owns the current page and paints the pagination buttons. Embed
// it and paint page content after calling its Apply.
type Transform struct {
	back    *Button
	forward *Button
	refresh *property.DelegateTrigger
	page    *property.BoundInteger
}

// Ensure Transform is stateful.
var _ view.Stateful = (*Transform)(nil)

// New creates a paged transform starting at page 0 with no upper limit.
// Either button may be nil.
func New(back, forward *Button) *Transform {
	return &Transform{
		back:    back,
		forward: forward,
		refresh: property.NewDelegateTrigger(),
		page:    property.NewBoundInteger(0, 0, math.MaxInt),
	}
}

// Property implements view.Stateful. The page survives every re-render for
// the life of the View.
func (t *Transform) Property() property.Trigger { return t.page }

// Triggers implements view.Stateful.
func (t *Transform) Triggers() []property.Trigger {
	return []property.Trigger{t.refresh}
}

// Apply implements view.Transform.
func (t *Transform) Apply(_ context.Context, p *view.Pane, _ *view.View) {
	if t.back != nil && t.page.HasPreceding() {
		t.ApplyButton(p, *t.back)
	}
	if t.forward != nil && t.page.HasSucceeding() {
		t.ApplyButton(p, *t.forward)
	}
}

// ApplyButton paints b into p.
func (t *Transform) ApplyButton(p *view.Pane, b Button) {
	el := view.StaticElement(b.Drawable, func(ctx context.Context, c view.Click) error {
		if inc, ok := b.Increments[c.Kind]; ok {
			t.page.Add(inc)
		}
		if b.OnClick != nil {
			b.OnClick(ctx, c.User)
		}
		return nil
	})
	p.SetAll(b.Positions, el)
}

// Page returns the current page.
func (t *Transform) Page() int { return t.page.Get() }

// SetPage moves to page n, clamped to the valid range.
func (t *Transform) SetPage(n int) { t.page.Set(n) }

// Bound returns the page property so other transforms can depend on it.
func (t *Transform) Bound() *property.BoundInteger { return t.page }

// SetPageCount limits the page to [0, n-1]. A count below one leaves only
// page 0.
func (t *Transform) SetPageCount(n int) {
	t.page.SetBounds(0, max(n-1, 0))
}

// Refresh re-applies the transform on the next render without changing the
// page.
func (t *Transform) Refresh() { t.refresh.Fire() }

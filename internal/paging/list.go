package paging

import (
	"context"
	"sync"

	"gridui/internal/grid"
	"gridui/internal/view"
)

// List pages through a slice of items, painting one page into a set of
// content slots. The number of slots decides the page size.
type List[T any] struct {
	*Transform

	slots grid.PositionGenerator
	draw  func(item T) view.Element

	mu    sync.Mutex
	items []T
}

// NewList creates a paged list. draw turns one item into the element shown
// in its slot.
func NewList[T any](back, forward *Button, slots grid.PositionGenerator, items []T, draw func(item T) view.Element) *List[T] {
	l := &List[T]{
		Transform: New(back, forward),
		slots:     slots,
		draw:      draw,
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the items, re-bounds the page and refreshes.
func (l *List[T]) SetItems(items []T) {
	l.mu.Lock()
	l.items = append([]T(nil), items...)
	n := len(l.items)
	l.mu.Unlock()

	l.SetPageCount(pageCount(n, len(l.slots.Points())))
	l.Refresh()
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Apply paints the buttons, then the current page of items.
func (l *List[T]) Apply(ctx context.Context, p *view.Pane, v *view.View) {
	l.Transform.Apply(ctx, p, v)

	items := l.Items()
	slots := l.slots.Points()
	start := l.Page() * len(slots)
	for i, pt := range slots {
		idx := start + i
		if idx >= len(items) {
			break
		}
		p.Set(pt, l.draw(items[idx]))
	}
}

func pageCount(items, perPage int) int {
	if perPage <= 0 || items == 0 {
		return 1
	}
	return (items + perPage - 1) / perPage
}

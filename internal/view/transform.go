package view

import (
	"context"

	"gridui/internal/property"
)

// Transform paints elements into a pane. The pane it receives is the
// transform's own layer for this pass; the View composes all layers in
// registration order, so a later transform wins a contested cell.
type Transform interface {
	Apply(ctx context.Context, p *Pane, v *View)
}

// TransformFunc adapts a function to a stateless Transform. Stateless
// transforms are re-applied on every render pass.
type TransformFunc func(ctx context.Context, p *Pane, v *View)

// Apply implements Transform.
func (f TransformFunc) Apply(ctx context.Context, p *Pane, v *View) {
	f(ctx, p, v)
}

// Stateful is a transform that owns one property and is only re-applied
// when that property or one of its extra triggers fires.
type Stateful interface {
	Transform
	// Property returns the transform's own state. It is created with the
	// transform and lives as long as the View does. May be nil for a
	// transform that only depends on outside triggers.
	Property() property.Trigger
	// Triggers returns additional triggers that mark the transform dirty.
	Triggers() []property.Trigger
}

// Bind turns fn into a Stateful transform that owns state and also depends
// on triggers.
func Bind(state property.Trigger, fn TransformFunc, triggers ...property.Trigger) Stateful {
	return &bound{state: state, fn: fn, triggers: triggers}
}

type bound struct {
	state    property.Trigger
	fn       TransformFunc
	triggers []property.Trigger
}

func (b *bound) Apply(ctx context.Context, p *Pane, v *View) { b.fn(ctx, p, v) }
func (b *bound) Property() property.Trigger                  { return b.state }
func (b *bound) Triggers() []property.Trigger                { return b.triggers }

// slot is a registered transform plus its render bookkeeping. Slots are only
// touched from the View's timeline.
type slot struct {
	index    int
	t        Transform
	stateful bool
	layer    *Pane
	dirty    bool
	invoked  bool
	unsubs   []func()
}

// due reports whether the slot must be applied in the next pass.
func (s *slot) due() bool {
	return !s.stateful || !s.invoked || s.dirty
}

// dependencies returns every trigger the slot listens to.
func (s *slot) dependencies() []property.Trigger {
	st, ok := s.t.(Stateful)
	if !ok {
		return nil
	}
	var deps []property.Trigger
	if p := st.Property(); p != nil {
		deps = append(deps, p)
	}
	for _, tr := range st.Triggers() {
		if tr != nil {
			deps = append(deps, tr)
		}
	}
	return deps
}

func (s *slot) release() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}

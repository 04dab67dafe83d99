package view

import "context"

// Drawable is the inert content of one grid cell. The engine never looks
// inside it; Render is for the host that presents the pane.
type Drawable interface {
	Render() string
}

// Reaction handles a click on an element. It runs on the View's timeline,
// so it may mutate properties directly.
type Reaction func(ctx context.Context, c Click) error

// Element pairs a drawable with an optional reaction.
type Element struct {
	Drawable Drawable
	Reaction Reaction
}

// StaticElement creates an element from a drawable and an optional reaction.
func StaticElement(d Drawable, r Reaction) Element {
	return Element{Drawable: d, Reaction: r}
}

// Interactive reports whether the element reacts to clicks.
func (e Element) Interactive() bool {
	return e.Reaction != nil
}

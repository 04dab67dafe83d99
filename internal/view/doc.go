// Package view is the reactive rendering engine behind grid interfaces.
//
// Core abstractions:
//   - Pane: a grid of Elements produced by one render pass
//   - Element: a Drawable plus an optional click Reaction
//   - Transform: paints into a pane; Stateful transforms own a property and
//     declare the triggers that make them dirty
//   - Interface: an immutable template that opens Views
//   - View: one live instance bound to one user, running on its own actor
//   - Scheduler: decides when a dirty View renders (Manual, Immediate, Ticker)
//
// A View moves between Idle, Dirty and Rendering. Every dirty mark, render,
// click and close for one View is a task on the View's timeline, so render
// passes never interleave and triggers fired mid-pass are picked up by the
// next pass.
package view

// Package ui hosts a grid View in a terminal with Bubble Tea.
//
// Core pieces:
//   - Flusher: a view.Flusher that forwards composed panes to a running program
//   - Model: the tea.Model drawing the latest pane and turning mouse and
//     keyboard input into clicks
//   - KeyMap: key bindings for moving the cursor and clicking
//
// Clicks are delivered from tea.Cmds, never from Update, so a reaction that
// re-renders its View can flush back into the program without blocking it.
package ui

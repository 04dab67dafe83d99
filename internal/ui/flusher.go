package ui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"gridui/internal/view"
)

// ErrNoProgram is returned by Flush before a program is attached.
var ErrNoProgram = errors.New("ui: no program attached")

// Sender delivers messages to a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// PaneMsg carries a freshly composed pane to the Model showing user's View.
type PaneMsg struct {
	User view.User
	Pane *view.Pane
}

// Flusher is a view.Flusher that forwards panes to a Bubble Tea program.
// The program is usually created after the View it displays, so it is
// attached later with Attach.
type Flusher struct {
	mu     sync.RWMutex
	sender Sender
}

// Ensure Flusher implements view.Flusher.
var _ view.Flusher = (*Flusher)(nil)

// NewFlusher creates a Flusher, optionally already attached to s.
func NewFlusher(s Sender) *Flusher {
	return &Flusher{sender: s}
}

// Attach sets the program panes are sent to.
func (f *Flusher) Attach(s Sender) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sender = s
}

// Flush implements view.Flusher. It fails with ErrNoProgram until a program
// is attached; the View then flushes again on its next render.
func (f *Flusher) Flush(ctx context.Context, p *view.Pane, u view.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.RLock()
	s := f.sender
	f.mu.RUnlock()
	if s == nil {
		return ErrNoProgram
	}
	s.Send(PaneMsg{User: u, Pane: p})
	return nil
}

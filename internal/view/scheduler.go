package view

import (
	"context"
	"sync"
	"time"
)

// Scheduler decides when a dirty View renders. Schedule is called on the
// View's timeline each time the View goes from Idle to Dirty; the scheduler
// later calls RequestRender (or the host calls Render directly).
type Scheduler interface {
	Schedule(v *View)
}

// Manual never renders on its own. The host drives passes with View.Render.
type Manual struct{}

// Schedule implements Scheduler.
func (Manual) Schedule(*View) {}

// Immediate queues a render as soon as a View becomes dirty.
type Immediate struct{}

// Schedule implements Scheduler.
func (Immediate) Schedule(v *View) { v.RequestRender() }

// Ticker batches dirty Views and renders them once per tick, the way a game
// server renders on its tick loop.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	pending map[*View]struct{}
}

// Ensure Ticker implements Scheduler.
var _ Scheduler = (*Ticker)(nil)

// NewTicker creates a scheduler that renders every interval. Run must be
// started for any render to happen.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Ticker{
		interval: interval,
		pending:  make(map[*View]struct{}),
	}
}

// Schedule implements Scheduler.
func (t *Ticker) Schedule(v *View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[v] = struct{}{}
}

// Pending returns the number of Views waiting for the next tick.
func (t *Ticker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Tick requests a render for every View scheduled since the last tick.
func (t *Ticker) Tick() {
	t.mu.Lock()
	due := t.pending
	t.pending = make(map[*View]struct{}, len(due))
	t.mu.Unlock()

	for v := range due {
		v.RequestRender()
	}
}

// Run ticks until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.Tick()
		}
	}
}

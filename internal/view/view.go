package view

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gridui/internal/grid"
)

// State is the render state of a View.
type State int32

const (
	// Idle means the pane reflects the last render.
	Idle State = iota
	// Dirty means a trigger fired since the last render.
	Dirty
	// Rendering means a pass is in progress.
	Rendering
	// Closed means the View was torn down and will never render again.
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dirty:
		return "dirty"
	case Rendering:
		return "rendering"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Flusher reflects a composed pane onto a user's display, replacing what was
// shown before. The pane passed in is a snapshot the flusher may keep.
type Flusher interface {
	Flush(ctx context.Context, p *Pane, u User) error
}

// FlusherFunc adapts a function to a Flusher.
type FlusherFunc func(ctx context.Context, p *Pane, u User) error

// Flush implements Flusher.
func (f FlusherFunc) Flush(ctx context.Context, p *Pane, u User) error {
	return f(ctx, p, u)
}

// timelineKey marks contexts of tasks running on a View's actor.
type timelineKey struct{}

// View is one live instance of an Interface bound to one user. All of its
// work runs on a single actor goroutine; the exported methods are safe to
// call from any goroutine.
type View struct {
	id      uuid.UUID
	user    User
	bounds  grid.Bounds
	flusher Flusher
	sched   Scheduler
	tracer  trace.Tracer
	logger  *log.Logger
	onError func(error)
	onClose []CloseHandler

	// Owned by the actor goroutine.
	slots     []*slot
	pane      *Pane
	unflushed bool

	state  atomic.Int32
	passes atomic.Int64
	box    *mailbox
	done   chan struct{}
}

// ID returns the View's unique identifier.
func (v *View) ID() uuid.UUID { return v.id }

// User returns the user the View is shown to.
func (v *View) User() User { return v.user }

// Bounds returns the size of the View's surface.
func (v *View) Bounds() grid.Bounds { return v.bounds }

// State returns the current render state.
func (v *View) State() State { return State(v.state.Load()) }

// Passes returns the number of completed render passes.
func (v *View) Passes() int64 { return v.passes.Load() }

// Done is closed once the View has closed and its actor has stopped.
func (v *View) Done() <-chan struct{} { return v.done }

// Render runs a render pass if the View is dirty and waits for it. An idle
// View whose last flush failed is flushed again. Called from the View's own
// timeline (a reaction or transform), the pass is queued instead.
func (v *View) Render(ctx context.Context) error {
	return v.do(ctx, v.render)
}

// RequestRender queues a render pass without waiting. Errors go to the
// View's error handler.
func (v *View) RequestRender() {
	v.post(context.Background(), func(ctx context.Context) error {
		if err := v.render(ctx); err != nil {
			v.onError(err)
		}
		return nil
	})
}

// Click delivers a click at pt. A click on an empty point, or on a closed
// View, does nothing. Errors returned by the element's reaction are passed
// back to the caller. If ctx is done before the click reaches the front of
// the View's queue, Click returns ctx.Err() and the reaction never runs.
func (v *View) Click(ctx context.Context, u User, pt grid.Point, kind ClickKind) error {
	return v.do(ctx, func(ctx context.Context) error {
		return v.click(ctx, u, pt, kind)
	})
}

// Close tears the View down and runs its close handlers. Only the first call
// has an effect. Like Click, a Close whose ctx is done before it is dequeued
// returns ctx.Err() and leaves the View open.
func (v *View) Close(ctx context.Context, reason CloseReason) error {
	return v.do(ctx, func(ctx context.Context) error {
		return v.close(ctx, reason)
	})
}

// Snapshot returns a copy of the pane produced by the last render pass.
func (v *View) Snapshot(ctx context.Context) (*Pane, error) {
	var out *Pane
	err := v.do(ctx, func(context.Context) error {
		out = v.pane.Clone()
		return nil
	})
	return out, err
}

// Pending returns the transforms the next render pass will apply.
func (v *View) Pending(ctx context.Context) ([]Transform, error) {
	var out []Transform
	err := v.do(ctx, func(context.Context) error {
		if v.State() == Closed {
			return nil
		}
		for _, s := range v.slots {
			if s.due() {
				out = append(out, s.t)
			}
		}
		return nil
	})
	return out, err
}

func (v *View) onTimeline(ctx context.Context) bool {
	owner, _ := ctx.Value(timelineKey{}).(*View)
	return owner == v
}

// do runs fn on the timeline and waits for its result. From the timeline
// itself it only queues fn. A closed View accepts nothing and returns nil.
func (v *View) do(ctx context.Context, fn func(context.Context) error) error {
	if v.onTimeline(ctx) {
		v.post(context.WithoutCancel(ctx), fn)
		return nil
	}
	done := make(chan error, 1)
	if !v.box.post(task{ctx: ctx, fn: fn, done: done}) {
		return nil
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *View) post(ctx context.Context, fn func(context.Context) error) {
	v.box.post(task{ctx: ctx, fn: fn})
}

// run is the View's actor loop.
func (v *View) run() {
	defer close(v.done)
	for range v.box.wake {
		for _, t := range v.box.take() {
			var err error
			switch {
			case v.State() == Closed:
			case t.ctx.Err() != nil:
				// The caller gave up waiting; do not act on its behalf.
				err = t.ctx.Err()
			default:
				err = t.fn(context.WithValue(t.ctx, timelineKey{}, v))
			}
			if t.done != nil {
				t.done <- err
			}
		}
		if v.State() == Closed {
			for _, t := range v.box.close() {
				if t.done != nil {
					t.done <- nil
				}
			}
			return
		}
	}
}

// markDirty records that one of s's triggers fired.
func (v *View) markDirty(s *slot) {
	s.dirty = true
	v.touch()
}

// touch moves an idle View to Dirty and tells the scheduler.
func (v *View) touch() {
	if v.state.CompareAndSwap(int32(Idle), int32(Dirty)) {
		v.sched.Schedule(v)
	}
}

func (v *View) render(ctx context.Context) error {
	switch v.State() {
	case Closed:
		return nil
	case Idle:
		if !v.unflushed {
			return nil
		}
		return v.flush(ctx)
	}

	v.state.Store(int32(Rendering))
	ctx, span := v.tracer.Start(ctx, "view.render", trace.WithAttributes(
		attribute.String("view.id", v.id.String()),
		attribute.String("user.id", v.user.ID),
	))
	defer span.End()

	composed := NewPane(v.bounds)
	applied, dropped := 0, 0
	for _, s := range v.slots {
		if s.due() {
			s.layer = NewPane(v.bounds)
			v.apply(ctx, s)
			s.dirty = false
			s.invoked = true
			applied++
		}
		dropped += composed.overlay(s.layer)
	}
	if dropped > 0 {
		v.logger.Printf("view.render: %s dropped %d cells outside %dx%d", v.id, dropped, v.bounds.Rows, v.bounds.Cols)
	}

	v.pane = composed
	v.unflushed = true
	v.passes.Add(1)
	v.state.Store(int32(Idle))
	span.SetAttributes(
		attribute.Int("render.applied", applied),
		attribute.Int("render.cells", composed.Len()),
	)

	if err := v.flush(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "flush failed")
		return err
	}
	return nil
}

func (v *View) apply(ctx context.Context, s *slot) {
	ctx, span := v.tracer.Start(ctx, "transform.apply", trace.WithAttributes(
		attribute.Int("transform.index", s.index),
		attribute.Bool("transform.stateful", s.stateful),
		attribute.String("transform.type", fmt.Sprintf("%T", s.t)),
	))
	defer span.End()
	s.t.Apply(ctx, s.layer, v)
}

func (v *View) flush(ctx context.Context) error {
	if v.flusher == nil {
		v.unflushed = false
		return nil
	}
	if err := v.flusher.Flush(ctx, v.pane.Clone(), v.user); err != nil {
		v.logger.Printf("view.flush: %s for user %q: %v", v.id, v.user.ID, err)
		return fmt.Errorf("flush view %s: %w", v.id, err)
	}
	v.unflushed = false
	return nil
}

func (v *View) click(ctx context.Context, u User, pt grid.Point, kind ClickKind) error {
	el, ok := v.pane.Get(pt)
	if !ok || !el.Interactive() {
		return nil
	}
	ctx, span := v.tracer.Start(ctx, "view.click", trace.WithAttributes(
		attribute.String("view.id", v.id.String()),
		attribute.String("click.kind", kind.String()),
		attribute.String("click.point", pt.String()),
	))
	defer span.End()

	err := el.Reaction(ctx, Click{User: u, View: v, Kind: kind, Point: pt})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reaction failed")
		return fmt.Errorf("%s click at %s: %w", kind, pt, err)
	}
	return nil
}

func (v *View) close(ctx context.Context, reason CloseReason) error {
	if v.State() == Closed {
		return nil
	}
	v.state.Store(int32(Closed))
	for _, s := range v.slots {
		s.release()
		s.dirty = false
	}

	ctx, span := v.tracer.Start(ctx, "view.close", trace.WithAttributes(
		attribute.String("view.id", v.id.String()),
		attribute.String("close.reason", reason.String()),
	))
	defer span.End()

	var errs []error
	for _, h := range v.onClose {
		if err := h(ctx, reason, v); err != nil {
			v.logger.Printf("view.close: %s handler failed: %v", v.id, err)
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		return fmt.Errorf("close view %s: %w", v.id, err)
	}
	return nil
}

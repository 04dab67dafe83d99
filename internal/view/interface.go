package view

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"gridui/internal/grid"
)

// Interface is an immutable template for Views. Transforms are registered as
// factories so every View gets its own transform state.
type Interface struct {
	bounds     grid.Bounds
	transforms []func() Transform
	onClose    []CloseHandler
	flusher    Flusher
	sched      Scheduler
	tracer     trace.Tracer
	logger     *log.Logger
	onError    func(error)
}

// Builder assembles an Interface.
type Builder struct {
	i Interface
}

// NewBuilder starts an Interface for a surface of the given size.
func NewBuilder(b grid.Bounds) *Builder {
	return &Builder{i: Interface{bounds: b}}
}

// Transform registers a transform factory. Factories run once per opened
// View, in registration order.
func (b *Builder) Transform(factory func() Transform) *Builder {
	b.i.transforms = append(b.i.transforms, factory)
	return b
}

// Stateless registers a stateless transform shared by every View.
func (b *Builder) Stateless(fn TransformFunc) *Builder {
	return b.Transform(func() Transform { return fn })
}

// OnClose adds a handler run when a View of this Interface closes.
func (b *Builder) OnClose(h CloseHandler) *Builder {
	b.i.onClose = append(b.i.onClose, h)
	return b
}

// Flusher sets where composed panes are sent.
func (b *Builder) Flusher(f Flusher) *Builder {
	b.i.flusher = f
	return b
}

// Scheduler sets the render scheduling policy. Defaults to Manual.
func (b *Builder) Scheduler(s Scheduler) *Builder {
	b.i.sched = s
	return b
}

// Tracer sets the tracer for render, click and close spans. Defaults to the
// global otel tracer provider.
func (b *Builder) Tracer(t trace.Tracer) *Builder {
	b.i.tracer = t
	return b
}

// Logger sets the logger. Defaults to discarding output.
func (b *Builder) Logger(l *log.Logger) *Builder {
	b.i.logger = l
	return b
}

// OnError sets the handler for errors from passes nobody waits on, such as
// those requested by a scheduler. Defaults to logging them.
func (b *Builder) OnError(fn func(error)) *Builder {
	b.i.onError = fn
	return b
}

// Build returns the finished Interface.
func (b *Builder) Build() *Interface {
	i := b.i
	i.transforms = append([]func() Transform(nil), b.i.transforms...)
	i.onClose = append([]CloseHandler(nil), b.i.onClose...)
	if i.sched == nil {
		i.sched = Manual{}
	}
	if i.tracer == nil {
		i.tracer = otel.Tracer("gridui/view")
	}
	if i.logger == nil {
		i.logger = log.New(io.Discard, "", 0)
	}
	if i.onError == nil {
		logger := i.logger
		i.onError = func(err error) { logger.Printf("view: %v", err) }
	}
	return &i
}

// Bounds returns the surface size of Views opened from the Interface.
func (i *Interface) Bounds() grid.Bounds {
	return i.bounds
}

// Open creates a View for u, starts its actor and marks it dirty so the
// scheduler renders it for the first time.
func (i *Interface) Open(u User) *View {
	v := &View{
		id:      uuid.New(),
		user:    u,
		bounds:  i.bounds,
		flusher: i.flusher,
		sched:   i.sched,
		tracer:  i.tracer,
		logger:  i.logger,
		onError: i.onError,
		onClose: i.onClose,
		pane:    NewPane(i.bounds),
		box:     newMailbox(),
		done:    make(chan struct{}),
	}

	for idx, factory := range i.transforms {
		t := factory()
		_, stateful := t.(Stateful)
		s := &slot{index: idx, t: t, stateful: stateful}
		for _, dep := range s.dependencies() {
			s.unsubs = append(s.unsubs, dep.Subscribe(func() {
				v.post(context.Background(), func(context.Context) error {
					v.markDirty(s)
					return nil
				})
			}))
		}
		v.slots = append(v.slots, s)
	}

	go v.run()
	v.post(context.Background(), func(context.Context) error {
		v.touch()
		return nil
	})
	v.logger.Printf("view.open: %s for user %q with %d transforms", v.id, u.ID, len(v.slots))
	return v
}

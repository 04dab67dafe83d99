package view

import (
	"context"
	"sync"
)

// task is one unit of work on a View's timeline. done is nil for tasks
// nobody waits on.
type task struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// mailbox is an unbounded FIFO queue feeding a View's actor goroutine.
// Posting never blocks, so listeners running on the timeline can queue
// follow-up work without deadlocking.
type mailbox struct {
	mu     sync.Mutex
	queue  []task
	closed bool
	wake   chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{wake: make(chan struct{}, 1)}
}

// post enqueues t. It returns false once the mailbox is closed.
func (m *mailbox) post(t task) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, t)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
	return true
}

// take removes and returns everything queued so far.
func (m *mailbox) take() []task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.queue
	m.queue = nil
	return out
}

// close rejects future posts and returns the tasks still queued.
func (m *mailbox) close() []task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	out := m.queue
	m.queue = nil
	return out
}

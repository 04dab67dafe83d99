// Package session tracks the open View of every connected user. Opening a
// new View for a user closes the previous one, liveness pruning closes Views
// whose users went away, and Shutdown closes everything.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"gridui/internal/view"
)

// ErrShutdown is returned by Open after Shutdown.
var ErrShutdown = errors.New("session: tracker is shut down")

// TrackedView holds metadata about one open View.
type TrackedView struct {
	View     *view.View
	User     view.User
	OpenedAt time.Time
}

// LivenessChecker returns the set of currently connected user IDs.
// In production the host supplies it; tests can inject a stub.
type LivenessChecker func() (map[string]bool, error)

// Tracker manages the mapping from users to their open View.
// Safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	views    map[string]TrackedView // user ID -> view
	liveness LivenessChecker
	closed   bool
}

// New creates a Tracker with the given liveness checker.
// If liveness is nil, Prune becomes a no-op.
func New(liveness LivenessChecker) *Tracker {
	return &Tracker{
		views:    make(map[string]TrackedView),
		liveness: liveness,
	}
}

// Open opens iface for u and tracks the new View. A View the user already
// had is closed with view.ReasonOpenNew; an error from closing it is
// returned alongside the new View.
func (t *Tracker) Open(ctx context.Context, iface *view.Interface, u view.User) (*view.View, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrShutdown
	}
	prev, hadPrev := t.views[u.ID]
	v := iface.Open(u)
	t.views[u.ID] = TrackedView{View: v, User: u, OpenedAt: time.Now()}
	t.mu.Unlock()

	go t.forgetOnClose(u.ID, v)

	if hadPrev {
		if err := prev.View.Close(ctx, view.ReasonOpenNew); err != nil {
			return v, fmt.Errorf("close previous view for %q: %w", u.ID, err)
		}
	}
	return v, nil
}

// forgetOnClose drops v from the tracker once it closes, unless it was
// already replaced.
func (t *Tracker) forgetOnClose(userID string, v *view.View) {
	<-v.Done()
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.views[userID]; ok && cur.View == v {
		delete(t.views, userID)
	}
}

// Get returns the open View for a user.
func (t *Tracker) Get(userID string) (*view.View, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tv, ok := t.views[userID]
	if !ok {
		return nil, false
	}
	return tv.View, true
}

// Close closes and forgets the user's View. Returns false if the user had
// none.
func (t *Tracker) Close(ctx context.Context, userID string, reason view.CloseReason) (bool, error) {
	t.mu.Lock()
	tv, ok := t.views[userID]
	delete(t.views, userID)
	t.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, tv.View.Close(ctx, reason)
}

// Views returns every tracked View, oldest first.
func (t *Tracker) Views() []TrackedView {
	t.mu.RLock()
	out := make([]TrackedView, 0, len(t.views))
	for _, tv := range t.views {
		out = append(out, tv)
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].OpenedAt.Before(out[j].OpenedAt)
	})
	return out
}

// Count returns the number of tracked Views.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.views)
}

// Prune closes the Views of users the liveness checker no longer reports,
// with view.ReasonDisconnect. Returns the number of Views pruned.
func (t *Tracker) Prune(ctx context.Context) (int, error) {
	if t.liveness == nil {
		return 0, nil
	}
	live, err := t.liveness()
	if err != nil {
		return 0, fmt.Errorf("check liveness: %w", err)
	}

	t.mu.Lock()
	var dead []TrackedView
	for id, tv := range t.views {
		if !live[id] {
			dead = append(dead, tv)
			delete(t.views, id)
		}
	}
	t.mu.Unlock()

	return len(dead), closeAll(ctx, dead, view.ReasonDisconnect)
}

// Shutdown closes every View with view.ReasonShutdown and rejects further
// Opens.
func (t *Tracker) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	t.closed = true
	all := make([]TrackedView, 0, len(t.views))
	for _, tv := range t.views {
		all = append(all, tv)
	}
	t.views = make(map[string]TrackedView)
	t.mu.Unlock()

	return closeAll(ctx, all, view.ReasonShutdown)
}

func closeAll(ctx context.Context, views []TrackedView, reason view.CloseReason) error {
	var errs []error
	for _, tv := range views {
		if err := tv.View.Close(ctx, reason); err != nil {
			errs = append(errs, fmt.Errorf("user %q: %w", tv.User.ID, err))
		}
	}
	return errors.Join(errs...)
}

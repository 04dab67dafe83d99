// Package property holds the reactive state primitives of an interface:
// triggers that signal "something changed" and properties that hold a
// value and fire their trigger when it changes.
package property

import "sync"

// Listener is notified each time a trigger fires.
type Listener func()

// Trigger is a signal source. Subscribing returns a function that removes
// the listener again.
type Trigger interface {
	Subscribe(fn Listener) (unsubscribe func())
}

// listeners is a subscriber list shared by every trigger implementation.
// Listeners are invoked outside the lock so a listener may subscribe,
// unsubscribe or fire again without deadlocking.
type listeners struct {
	mu    sync.Mutex
	next  int
	funcs map[int]Listener
	order []int
}

func (l *listeners) subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.funcs == nil {
		l.funcs = make(map[int]Listener)
	}
	id := l.next
	l.next++
	l.funcs[id] = fn
	l.order = append(l.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listeners) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.funcs, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// notify calls every listener once, in subscription order.
func (l *listeners) notify() {
	l.mu.Lock()
	snapshot := make([]Listener, 0, len(l.order))
	for _, id := range l.order {
		snapshot = append(snapshot, l.funcs[id])
	}
	l.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// DelegateTrigger is a trigger with no value behind it. Transforms use it to
// force a refresh that is not tied to any single property.
type DelegateTrigger struct {
	subs listeners
}

// Ensure DelegateTrigger implements Trigger.
var _ Trigger = (*DelegateTrigger)(nil)

// NewDelegateTrigger creates a trigger with no listeners.
func NewDelegateTrigger() *DelegateTrigger {
	return &DelegateTrigger{}
}

// Subscribe implements Trigger.
func (t *DelegateTrigger) Subscribe(fn Listener) func() {
	return t.subs.subscribe(fn)
}

// Fire notifies every listener.
func (t *DelegateTrigger) Fire() {
	t.subs.notify()
}

// Listeners returns the number of active subscriptions.
func (t *DelegateTrigger) Listeners() int {
	return t.subs.len()
}

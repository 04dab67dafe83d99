package property

import "sync"

// Property is an observable single-value cell. Writing a value that differs
// from the current one stores it and fires the property's trigger exactly
// once; writing an equal value does nothing.
type Property[T any] struct {
	mu      sync.Mutex
	value   T
	equal   func(a, b T) bool
	changed bool
	subs    listeners
}

// Ensure Property implements Trigger.
var _ Trigger = (*Property[int])(nil)

// New creates a property compared with ==.
func New[T comparable](initial T) *Property[T] {
	return NewFunc(initial, func(a, b T) bool { return a == b })
}

// NewFunc creates a property that uses equal to decide whether a write is a
// change. Use it for values that are not comparable with ==, or whose domain
// equality is looser than identity.
func NewFunc[T any](initial T, equal func(a, b T) bool) *Property[T] {
	return &Property[T]{value: initial, equal: equal}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Set stores v and fires the trigger if v differs from the current value.
// It reports whether the value changed.
func (p *Property[T]) Set(v T) bool {
	return p.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) as one atomic step. The trigger
// fires after the lock is released, so listeners may read the property.
func (p *Property[T]) Update(fn func(current T) T) bool {
	p.mu.Lock()
	next := fn(p.value)
	if p.equal(p.value, next) {
		p.mu.Unlock()
		return false
	}
	p.value = next
	p.changed = true
	p.mu.Unlock()

	p.subs.notify()
	return true
}

// Changed reports whether the value changed since the previous call to
// Changed (or since construction) and resets the flag. There is one flag per
// property, so it suits a single poller; other consumers should Subscribe.
func (p *Property[T]) Changed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.changed
	p.changed = false
	return c
}

// Subscribe implements Trigger. The listener runs after every effective write.
func (p *Property[T]) Subscribe(fn Listener) func() {
	return p.subs.subscribe(fn)
}

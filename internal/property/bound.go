package property

import (
	"math"
	"sync"
)

// BoundInteger is an integer property whose value always lies in [min, max].
// Writes outside the range clamp to the nearest bound instead of failing.
type BoundInteger struct {
	prop *Property[int]

	mu  sync.Mutex
	min int
	max int
}

// NewBoundInteger creates a bounded integer. Use math.MaxInt as hi for a
// range with no real upper limit. If hi < lo, hi is raised to lo.
func NewBoundInteger(initial, lo, hi int) *BoundInteger {
	if hi < lo {
		hi = lo
	}
	return &BoundInteger{
		prop: New(clamp(initial, lo, hi)),
		min:  lo,
		max:  hi,
	}
}

// Ensure BoundInteger implements Trigger.
var _ Trigger = (*BoundInteger)(nil)

// NewUnbounded creates a bounded integer in [lo, math.MaxInt].
func NewUnbounded(initial, lo int) *BoundInteger {
	return NewBoundInteger(initial, lo, math.MaxInt)
}

// Bounds returns the current range.
func (b *BoundInteger) Bounds() (lo, hi int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.min, b.max
}

// SetBounds replaces the range and clamps the current value into it. The
// trigger fires if clamping moved the value.
func (b *BoundInteger) SetBounds(lo, hi int) {
	if hi < lo {
		hi = lo
	}
	b.mu.Lock()
	b.min, b.max = lo, hi
	b.mu.Unlock()
	b.Update(func(v int) int { return v })
}

// Set stores v clamped into range. It reports whether the value changed.
func (b *BoundInteger) Set(v int) bool {
	return b.Update(func(int) int { return v })
}

// Add adds delta to the value, clamping the result. The addition saturates
// instead of overflowing.
func (b *BoundInteger) Add(delta int) bool {
	return b.Update(func(v int) int { return saturatingAdd(v, delta) })
}

// Update replaces the value with fn(current), clamped into range.
func (b *BoundInteger) Update(fn func(current int) int) bool {
	return b.prop.Update(func(v int) int {
		lo, hi := b.Bounds()
		return clamp(fn(v), lo, hi)
	})
}

// Get returns the current value.
func (b *BoundInteger) Get() int { return b.prop.Get() }

// Changed reports whether the value changed since the previous call to
// Changed and resets the flag. See Property.Changed.
func (b *BoundInteger) Changed() bool { return b.prop.Changed() }

// Subscribe implements Trigger.
func (b *BoundInteger) Subscribe(fn Listener) func() { return b.prop.Subscribe(fn) }

// HasPreceding reports whether the value is above the minimum.
func (b *BoundInteger) HasPreceding() bool {
	lo, _ := b.Bounds()
	return b.Get() > lo
}

// HasSucceeding reports whether the value is below the maximum.
func (b *BoundInteger) HasSucceeding() bool {
	_, hi := b.Bounds()
	return b.Get() < hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

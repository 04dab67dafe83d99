package property

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundIntegerBackAtMinimum(t *testing.T) {
	page := NewUnbounded(0, 0)
	fired, _ := counter(page)

	assert.False(t, page.Add(-1))
	assert.Equal(t, 0, page.Get())
	assert.False(t, page.HasPreceding())
	assert.True(t, page.HasSucceeding())
	assert.Equal(t, 0, *fired)
}

func TestBoundIntegerClamps(t *testing.T) {
	tests := []struct {
		name string
		op   func(b *BoundInteger)
		want int
	}{
		{"set below", func(b *BoundInteger) { b.Set(-10) }, 0},
		{"set above", func(b *BoundInteger) { b.Set(99) }, 5},
		{"add past max", func(b *BoundInteger) { b.Add(4) }, 5},
		{"add past min", func(b *BoundInteger) { b.Add(-4) }, 0},
		{"in range", func(b *BoundInteger) { b.Add(1) }, 3},
		{"update", func(b *BoundInteger) { b.Update(func(v int) int { return v * 10 }) }, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoundInteger(2, 0, 5)
			tt.op(b)
			assert.Equal(t, tt.want, b.Get())
		})
	}
}

func TestBoundIntegerInvariantOverSequence(t *testing.T) {
	b := NewBoundInteger(0, -3, 4)
	deltas := []int{1, 5, -2, -20, 3, math.MaxInt, math.MinInt, 2, -1}
	for _, d := range deltas {
		b.Add(d)
		v := b.Get()
		lo, hi := b.Bounds()
		assert.GreaterOrEqual(t, v, lo)
		assert.LessOrEqual(t, v, hi)
		assert.Equal(t, v > lo, b.HasPreceding(), "HasPreceding at %d", v)
		assert.Equal(t, v < hi, b.HasSucceeding(), "HasSucceeding at %d", v)
	}
}

func TestBoundIntegerSaturates(t *testing.T) {
	b := NewUnbounded(math.MaxInt-1, 0)
	b.Add(10)
	assert.Equal(t, math.MaxInt, b.Get())
	assert.False(t, b.HasSucceeding())
}

func TestBoundIntegerSetBounds(t *testing.T) {
	b := NewUnbounded(7, 0)
	fired, _ := counter(b)

	b.SetBounds(0, 3)
	assert.Equal(t, 3, b.Get())
	assert.Equal(t, 1, *fired)
	assert.False(t, b.HasSucceeding())

	b.SetBounds(0, 10)
	assert.Equal(t, 3, b.Get())
	assert.Equal(t, 1, *fired, "widening the range does not move the value")

	b.SetBounds(4, 2)
	lo, hi := b.Bounds()
	assert.Equal(t, 4, lo)
	assert.Equal(t, 4, hi)
	assert.Equal(t, 4, b.Get())
}

func TestNewBoundIntegerClampsInitial(t *testing.T) {
	assert.Equal(t, 10, NewBoundInteger(50, 0, 10).Get())
	assert.Equal(t, 0, NewBoundInteger(-5, 0, 10).Get())
}

func TestBoundIntegerWritersAlwaysClamp(t *testing.T) {
	b := NewBoundInteger(2, 0, 5)

	typ := reflect.TypeOf(b).Elem()
	for i := 0; i < typ.NumField(); i++ {
		assert.False(t, typ.Field(i).IsExported(), "field %s is writable from outside", typ.Field(i).Name)
	}

	writes := []func(){
		func() { b.Set(99) },
		func() { b.Add(math.MaxInt) },
		func() { b.Update(func(int) int { return -7 }) },
		func() { b.Add(math.MinInt) },
		func() { b.SetBounds(1, 3) },
		func() { b.Set(42) },
	}
	for i, w := range writes {
		w()
		lo, hi := b.Bounds()
		v := b.Get()
		assert.True(t, lo <= v && v <= hi, "write %d left %d outside [%d,%d]", i, v, lo, hi)
	}
	assert.Equal(t, 3, b.Get())
	assert.False(t, b.HasSucceeding())
}

func TestBoundIntegerForwardsTrigger(t *testing.T) {
	b := NewBoundInteger(0, 0, 5)
	fired, _ := counter(b)

	assert.True(t, b.Set(3))
	assert.True(t, b.Changed())
	assert.False(t, b.Changed())
	assert.False(t, b.Set(3))
	assert.Equal(t, 1, *fired)
}

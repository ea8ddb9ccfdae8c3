package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScratch(t *testing.T) {
	// mark and reset reclaim the arena
	{
		sp := NewScratch(16, 3)
		assert.Equal(t, 3, sp.ThreadID())

		mark := sp.Mark()
		a := sp.Float64s(8)
		assert.Equal(t, 8, len(a))
		assert.Equal(t, 8, sp.Mark())
		sp.Reset(mark)
		assert.Equal(t, mark, sp.Mark())
	}
	// slices come back zeroed even after reuse
	{
		sp := NewScratch(8, 0)
		mark := sp.Mark()
		a := sp.Float64s(4)
		for i := range a {
			a[i] = 42
		}
		sp.Reset(mark)
		b := sp.Float64s(4)
		assert.Equal(t, []float64{0, 0, 0, 0}, b)
	}
	// exhaustion spills to the heap instead of failing
	{
		sp := NewScratch(4, 0)
		_ = sp.Float64s(4)
		b := sp.Float64s(8)
		assert.Equal(t, 8, len(b))
		assert.Equal(t, 4, sp.Mark()) // heap spill does not advance the arena
	}
	// typed views share the arena
	{
		sp := NewScratch(32, 0)
		mark := sp.Mark()
		v := sp.Vector(4)
		m := sp.Matrix(2, 2)
		assert.Equal(t, 4, v.Len())
		nr, nc := m.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, mark+8, sp.Mark())
	}
	// invalid marks are rejected
	{
		sp := NewScratch(8, 0)
		assert.Panics(t, func() { sp.Reset(-1) })
		assert.Panics(t, func() { sp.Reset(4) })
	}
}

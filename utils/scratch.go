package utils

/*
Scratch is a bump allocator for per-call temporaries in element assembly.

Each worker owns one Scratch; a call takes a Mark, carves zeroed slices off
the arena and Resets to the mark when its scope ends, so no per-call
allocation survives the call. A Scratch must never be shared between
concurrently running calls.
*/
type Scratch struct {
	buf []float64
	off int
	tid int
}

// NewScratch allocates an arena of size float64 slots owned by worker tid.
func NewScratch(size, tid int) (sp *Scratch) {
	sp = &Scratch{
		buf: make([]float64, size),
		tid: tid,
	}
	return
}

// ThreadID returns the identity of the worker owning this scratch space,
// used to attribute timer regions.
func (sp *Scratch) ThreadID() int { return sp.tid }

// Mark returns the current arena position for a later Reset.
func (sp *Scratch) Mark() int { return sp.off }

// Reset returns the arena to a previous Mark, reclaiming everything carved
// off since then.
func (sp *Scratch) Reset(mark int) {
	if mark < 0 || mark > sp.off {
		panic("invalid scratch mark")
	}
	sp.off = mark
}

// Float64s returns a zeroed slice of n values from the arena. If the arena
// is exhausted the slice spills to the heap rather than failing, keeping
// the arena size a tuning knob instead of a correctness constraint.
func (sp *Scratch) Float64s(n int) (b []float64) {
	if sp.off+n > len(sp.buf) {
		return make([]float64, n)
	}
	b = sp.buf[sp.off : sp.off+n]
	sp.off += n
	for i := range b {
		b[i] = 0
	}
	return
}

func (sp *Scratch) Vector(n int) Vector {
	return NewVector(n, sp.Float64s(n))
}

func (sp *Scratch) Matrix(nr, nc int) Matrix {
	return NewMatrix(nr, nc, sp.Float64s(nr*nc))
}

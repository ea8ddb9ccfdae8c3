package FEM2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitSquareMesh(t *testing.T) {
	msh := NewUnitSquareMesh()
	assert.Equal(t, 4, msh.NumVertices())
	assert.Equal(t, 2, msh.NumElements())
	assert.Equal(t, 4, msh.NumBoundary())
	// 4 hull edges plus the shared diagonal
	assert.Equal(t, 5, msh.NumEdges())

	// edges are numbered in first-seen element order
	assert.Equal(t, [2]int{0, 1}, msh.Edges[0])
	assert.Equal(t, [2]int{0, 2}, msh.Edges[1])
	assert.Equal(t, [2]int{1, 2}, msh.Edges[2])
	assert.Equal(t, [2]int{0, 3}, msh.Edges[3])
	assert.Equal(t, [2]int{2, 3}, msh.Edges[4])

	// the diagonal edge is shared between the two elements
	assert.Equal(t, [3]int{0, 1, 2}, msh.EToEd[0])
	assert.Equal(t, [3]int{1, 3, 4}, msh.EToEd[1])

	// boundary segments resolve to hull edges
	assert.Equal(t, []int{0, 2, 4, 3}, msh.BToEd)

	// both element maps carry positive area 1/2
	for k := 0; k < msh.NumElements(); k++ {
		at := msh.ElementTransformation(k)
		var mp MappedPoint
		at.Apply(IntegrationPoint{R: 1. / 3, S: 1. / 3}, &mp)
		assert.InDelta(t, 1.0, mp.Measure, 1.e-15)
	}
}

func TestMeshValidation(t *testing.T) {
	// vertex index out of range
	assert.Panics(t, func() {
		NewMesh([]float64{0, 1, 0}, []float64{0, 0, 1},
			[][3]int{{0, 1, 3}}, nil)
	})
	// coordinate length mismatch
	assert.Panics(t, func() {
		NewMesh([]float64{0, 1, 0}, []float64{0, 0},
			[][3]int{{0, 1, 2}}, nil)
	})
	// boundary segment that is not an element edge
	assert.Panics(t, func() {
		NewMesh([]float64{0, 1, 0, 2}, []float64{0, 0, 1, 2},
			[][3]int{{0, 1, 2}}, [][2]int{{1, 3}})
	})
}

package FEM2D

import (
	"fmt"

	"github.com/pdekit/poisson2d/utils"
)

// Mesh is a minimal triangle mesh: vertex coordinates, element and
// boundary connectivity, and a consistent edge numbering. It exists to
// connect reference elements to concrete geometry; mesh generation is out
// of scope here.
type Mesh struct {
	VX, VY utils.Vector
	EToV   [][3]int // element -> vertex numbers
	BToV   [][2]int // boundary segment -> vertex numbers
	Edges  [][2]int // unique edges in first-seen element order
	EToEd  [][3]int // element -> edge numbers, TrigEdges local order
	BToEd  []int    // boundary segment -> edge number
}

func NewMesh(vx, vy []float64, etov [][3]int, btov [][2]int) (msh *Mesh) {
	if len(vx) != len(vy) {
		panic("vertex coordinate lengths mismatch")
	}
	msh = &Mesh{
		VX:   utils.NewVector(len(vx), vx),
		VY:   utils.NewVector(len(vy), vy),
		EToV: etov,
		BToV: btov,
	}
	msh.numberEdges()
	return
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// numberEdges assigns each unique vertex pair an edge number in the order
// edges are first seen while walking elements, which keeps the numbering
// deterministic for a given connectivity.
func (msh *Mesh) numberEdges() {
	var (
		nv    = msh.VX.Len()
		index = make(map[[2]int]int)
	)
	msh.EToEd = make([][3]int, len(msh.EToV))
	for k, tri := range msh.EToV {
		for _, v := range tri {
			if v < 0 || v >= nv {
				panic(fmt.Errorf("element %d references vertex %d, mesh has %d", k, v, nv))
			}
		}
		for le, e := range TrigEdges {
			key := edgeKey(tri[e[0]], tri[e[1]])
			ed, exists := index[key]
			if !exists {
				ed = len(msh.Edges)
				index[key] = ed
				msh.Edges = append(msh.Edges, key)
			}
			msh.EToEd[k][le] = ed
		}
	}
	msh.BToEd = make([]int, len(msh.BToV))
	for b, seg := range msh.BToV {
		ed, exists := index[edgeKey(seg[0], seg[1])]
		if !exists {
			panic(fmt.Errorf("boundary segment %d is not an edge of any element", b))
		}
		msh.BToEd[b] = ed
	}
}

func (msh *Mesh) NumVertices() int { return msh.VX.Len() }
func (msh *Mesh) NumEdges() int    { return len(msh.Edges) }
func (msh *Mesh) NumElements() int { return len(msh.EToV) }
func (msh *Mesh) NumBoundary() int { return len(msh.BToV) }

// ElementTransformation builds the affine map of element k from its
// vertices.
func (msh *Mesh) ElementTransformation(k int) *AffineTrigTransform {
	var (
		tri = msh.EToV[k]
		v   [3][2]float64
	)
	for i, vn := range tri {
		v[i] = [2]float64{msh.VX.AtVec(vn), msh.VY.AtVec(vn)}
	}
	return NewAffineTrigTransform(v[0], v[1], v[2])
}

// NewUnitSquareMesh is the two-triangle unit square used by demos and
// tests.
func NewUnitSquareMesh() *Mesh {
	return NewMesh(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	)
}

package FEM2D

import (
	"fmt"

	"github.com/pdekit/poisson2d/utils"
)

// GeometryType tags the reference geometry of a finite element.
type GeometryType uint8

const (
	Point GeometryType = iota
	Segm
	Trig
	Quad
)

func (gt GeometryType) String() string {
	switch gt {
	case Point:
		return "Point"
	case Segm:
		return "Segm"
	case Trig:
		return "Trig"
	case Quad:
		return "Quad"
	}
	return "Unknown"
}

/*
Reference geometries:

	Trig: vertices (1,0), (0,1), (0,0); barycentric coordinates
	      lambda = (r, s, 1-r-s)
	Segm: vertices r=1, r=0; lambda = (r, 1-r)

Shape function i belongs to vertex i; higher order dofs follow the vertex
dofs in the local edge order TrigEdges.
*/
var TrigEdges = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// FiniteElement describes a reference-domain shape. Implementations are
// immutable values; all queries are pure.
type FiniteElement interface {
	ElementType() GeometryType
	Order() int
	NDof() int
}

// ScalarElement is the scalar nodal element family the integrators in this
// package understand. CalcShape fills a length-NDof vector of shape
// function values, CalcDShape an NDof x 2 matrix whose i-th row is the
// reference-coordinate gradient of shape function i.
type ScalarElement interface {
	FiniteElement
	CalcShape(ip IntegrationPoint, shape utils.Vector)
	CalcDShape(ip IntegrationPoint, dshape utils.Matrix)
}

func checkShapeDims(fel FiniteElement, shape utils.Vector) {
	if shape.Len() != fel.NDof() {
		panic(fmt.Errorf("shape buffer has %d entries, element has %d dofs",
			shape.Len(), fel.NDof()))
	}
}

func checkDShapeDims(fel FiniteElement, dshape utils.Matrix) {
	if nr, nc := dshape.Dims(); nr != fel.NDof() || nc != 2 {
		panic(fmt.Errorf("dshape buffer is %dx%d, element needs %dx2",
			nr, nc, fel.NDof()))
	}
}

// LinearTrig is the P1 triangle: one dof per vertex.
type LinearTrig struct{}

func (LinearTrig) ElementType() GeometryType { return Trig }
func (LinearTrig) Order() int                { return 1 }
func (LinearTrig) NDof() int                 { return 3 }

func (el LinearTrig) CalcShape(ip IntegrationPoint, shape utils.Vector) {
	checkShapeDims(el, shape)
	var (
		s = shape.DataP
	)
	s[0] = ip.R
	s[1] = ip.S
	s[2] = 1 - ip.R - ip.S
}

func (el LinearTrig) CalcDShape(ip IntegrationPoint, dshape utils.Matrix) {
	checkDShapeDims(el, dshape)
	var (
		d = dshape.Data()
	)
	d[0], d[1] = 1, 0
	d[2], d[3] = 0, 1
	d[4], d[5] = -1, -1
}

// QuadraticTrig is the P2 triangle: vertex dofs 0..2, edge dofs 3..5 in
// TrigEdges order.
type QuadraticTrig struct{}

func (QuadraticTrig) ElementType() GeometryType { return Trig }
func (QuadraticTrig) Order() int                { return 2 }
func (QuadraticTrig) NDof() int                 { return 6 }

func (el QuadraticTrig) CalcShape(ip IntegrationPoint, shape utils.Vector) {
	checkShapeDims(el, shape)
	var (
		s   = shape.DataP
		lam = [3]float64{ip.R, ip.S, 1 - ip.R - ip.S}
	)
	for i := 0; i < 3; i++ {
		s[i] = lam[i] * (2*lam[i] - 1)
	}
	for k, e := range TrigEdges {
		s[3+k] = 4 * lam[e[0]] * lam[e[1]]
	}
}

func (el QuadraticTrig) CalcDShape(ip IntegrationPoint, dshape utils.Matrix) {
	checkDShapeDims(el, dshape)
	var (
		d    = dshape.Data()
		lam  = [3]float64{ip.R, ip.S, 1 - ip.R - ip.S}
		dlam = [3][2]float64{{1, 0}, {0, 1}, {-1, -1}}
	)
	for i := 0; i < 3; i++ {
		d[2*i] = (4*lam[i] - 1) * dlam[i][0]
		d[2*i+1] = (4*lam[i] - 1) * dlam[i][1]
	}
	for k, e := range TrigEdges {
		a, b := e[0], e[1]
		d[2*(3+k)] = 4 * (lam[a]*dlam[b][0] + lam[b]*dlam[a][0])
		d[2*(3+k)+1] = 4 * (lam[a]*dlam[b][1] + lam[b]*dlam[a][1])
	}
}

// LinearSegm is the P1 boundary segment.
type LinearSegm struct{}

func (LinearSegm) ElementType() GeometryType { return Segm }
func (LinearSegm) Order() int                { return 1 }
func (LinearSegm) NDof() int                 { return 2 }

func (el LinearSegm) CalcShape(ip IntegrationPoint, shape utils.Vector) {
	checkShapeDims(el, shape)
	var (
		s = shape.DataP
	)
	s[0] = ip.R
	s[1] = 1 - ip.R
}

func (el LinearSegm) CalcDShape(ip IntegrationPoint, dshape utils.Matrix) {
	checkDShapeDims(el, dshape)
	var (
		d = dshape.Data()
	)
	d[0], d[1] = 1, 0
	d[2], d[3] = -1, 0
}

// QuadraticSegm is the P2 boundary segment: vertex dofs then the edge dof.
type QuadraticSegm struct{}

func (QuadraticSegm) ElementType() GeometryType { return Segm }
func (QuadraticSegm) Order() int                { return 2 }
func (QuadraticSegm) NDof() int                 { return 3 }

func (el QuadraticSegm) CalcShape(ip IntegrationPoint, shape utils.Vector) {
	checkShapeDims(el, shape)
	var (
		s = shape.DataP
		r = ip.R
	)
	s[0] = r * (2*r - 1)
	s[1] = (1 - r) * (1 - 2*r)
	s[2] = 4 * r * (1 - r)
}

func (el QuadraticSegm) CalcDShape(ip IntegrationPoint, dshape utils.Matrix) {
	checkDShapeDims(el, dshape)
	var (
		d = dshape.Data()
		r = ip.R
	)
	d[0], d[1] = 4*r-1, 0
	d[2], d[3] = 4*r-3, 0
	d[4], d[5] = 4-8*r, 0
}

package FEM2D

import (
	"errors"
	"fmt"

	"github.com/pdekit/poisson2d/utils"
)

// ErrInvalidElementKind reports that a supplied finite element does not
// belong to the scalar family these integrators understand. It signals a
// wiring bug in the calling framework, not a transient condition.
var ErrInvalidElementKind = errors.New("finite element is not a scalar element")

// LaplaceIntegrator computes the local stiffness matrix of the bilinear
// form
//
//	int lambda(x) grad(u) . grad(v) dx
//
// over one element. It holds no per-call state; one integrator may be
// shared by concurrent element assemblies.
type LaplaceIntegrator struct {
	Lambda Coefficient
	timer  *utils.Timer
}

func NewLaplaceIntegrator(lambda Coefficient) (li *LaplaceIntegrator) {
	li = &LaplaceIntegrator{Lambda: lambda}
	if utils.TimersInitialized() {
		li.timer = utils.NewTimer("CalcElementMatrix")
	}
	return
}

// CalcElementMatrix fills the caller-allocated ndof x ndof matrix elmat
// with the local stiffness matrix for the element described by fel and
// mapped by trans. All temporaries come from sp and are reclaimed before
// return. On ErrInvalidElementKind the output buffer is untouched.
func (li *LaplaceIntegrator) CalcElementMatrix(fel FiniteElement,
	trans ElementTransformation, elmat utils.Matrix, sp *utils.Scratch) error {
	if li.timer != nil {
		defer li.timer.Region(sp.ThreadID())()
	}

	scal, ok := fel.(ScalarElement)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidElementKind, fel)
	}
	ndof := scal.NDof()
	if nr, nc := elmat.Dims(); nr != ndof || nc != ndof {
		panic(fmt.Errorf("element matrix is %dx%d, element has %d dofs", nr, nc, ndof))
	}

	mark := sp.Mark()
	defer sp.Reset(mark)

	elmat.Zero()

	var (
		dshapeRef = sp.Matrix(ndof, 2) // gradients on the reference element
		dshape    = sp.Matrix(ndof, 2) // gradients on the mapped element
		dr        = dshapeRef.Data()
		dp        = dshape.Data()
		em        = elmat.Data()
		mp        MappedPoint
	)

	// integration order is 2 times element order
	ir := NewIntegrationRule(scal.ElementType(), 2*scal.Order())

	for _, ip := range ir.Points {
		trans.Apply(ip, &mp)

		lam := li.Lambda.Evaluate(&mp)

		// the i-th row of dshapeRef is the reference gradient of the
		// i-th shape function
		scal.CalcDShape(ip, dshapeRef)

		// transform it for the mapped element: dshape = dshapeRef * JInv
		for i := 0; i < ndof; i++ {
			gr, gs := dr[2*i], dr[2*i+1]
			dp[2*i] = gr*mp.JInv[0] + gs*mp.JInv[2]
			dp[2*i+1] = gr*mp.JInv[1] + gs*mp.JInv[3]
		}

		// integration weight and Jacobi determinant
		fac := ip.W * mp.Measure

		// elmat_{i,j} += (fac*lam) * InnerProduct(grad shape_i, grad shape_j)
		c := fac * lam
		for i := 0; i < ndof; i++ {
			gi1, gi2 := dp[2*i], dp[2*i+1]
			for j := 0; j < ndof; j++ {
				em[i*ndof+j] += c * (gi1*dp[2*j] + gi2*dp[2*j+1])
			}
		}
	}
	return nil
}

// SourceIntegrator computes the local load vector of the linear form
//
//	int f(x) v dx
//
// over one element.
type SourceIntegrator struct {
	F Coefficient
}

func NewSourceIntegrator(f Coefficient) (si *SourceIntegrator) {
	si = &SourceIntegrator{F: f}
	return
}

// CalcElementVector fills the caller-allocated length-ndof vector elvec
// with the local load vector. Same contract as CalcElementMatrix.
func (si *SourceIntegrator) CalcElementVector(fel FiniteElement,
	trans ElementTransformation, elvec utils.Vector, sp *utils.Scratch) error {
	scal, ok := fel.(ScalarElement)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidElementKind, fel)
	}
	ndof := scal.NDof()
	if elvec.Len() != ndof {
		panic(fmt.Errorf("element vector has %d entries, element has %d dofs", elvec.Len(), ndof))
	}

	mark := sp.Mark()
	defer sp.Reset(mark)

	elvec.Zero()

	var (
		shape = sp.Vector(ndof)
		s     = shape.DataP
		ev    = elvec.DataP
		mp    MappedPoint
	)

	ir := NewIntegrationRule(scal.ElementType(), 2*scal.Order())

	for _, ip := range ir.Points {
		trans.Apply(ip, &mp)

		f := si.F.Evaluate(&mp)

		scal.CalcShape(ip, shape)

		fac := ip.W * mp.Measure

		// elvec_{i} += (fac*f) shape_i
		c := fac * f
		for i := 0; i < ndof; i++ {
			ev[i] += c * s[i]
		}
	}
	return nil
}

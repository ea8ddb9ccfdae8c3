package FEM2D

import (
	"fmt"
	"math"

	"github.com/pdekit/poisson2d/utils"
	"gonum.org/v1/gonum/mat"
)

// IntegrationPoint is one quadrature point on the reference geometry. S is
// unused for Segm rules.
type IntegrationPoint struct {
	R, S float64
	W    float64
}

// IntegrationRule is an ordered set of quadrature points exact for
// polynomials up to total degree Order on the reference geometry. Rules
// are cheap to construct and built fresh per assembly call; the point
// order is fixed so repeated calls reproduce rounding bit for bit.
type IntegrationRule struct {
	Geom   GeometryType
	Order  int
	Points []IntegrationPoint
}

func NewIntegrationRule(geom GeometryType, order int) (ir *IntegrationRule) {
	if order < 0 {
		order = 0
	}
	ir = &IntegrationRule{
		Geom:  geom,
		Order: order,
	}
	n := order/2 + 1 // Gauss points per direction
	switch geom {
	case Segm:
		// Gauss-Legendre on [-1,1] mapped to the reference segment [0,1]
		XA, WA := JacobiGQ(0, 0, n-1)
		ir.Points = make([]IntegrationPoint, n)
		for i := 0; i < n; i++ {
			ir.Points[i] = IntegrationPoint{
				R: 0.5 * (1 + XA.AtVec(i)),
				W: 0.5 * WA.AtVec(i),
			}
		}
	case Trig:
		/*
			Collapsed (Duffy) product rule on the reference triangle:
			    r = (1+a)(1-b)/4, s = (1+b)/2
			with a Gauss-Legendre in a and Gauss-Jacobi(1,0) in b so the
			(1-b) metric factor of the collapse is absorbed into the b
			weights. Weights sum to the triangle area 1/2.
		*/
		XA, WA := JacobiGQ(0, 0, n-1)
		XB, WB := JacobiGQ(1, 0, n-1)
		ir.Points = make([]IntegrationPoint, 0, n*n)
		for j := 0; j < n; j++ {
			b, wb := XB.AtVec(j), WB.AtVec(j)
			for i := 0; i < n; i++ {
				a, wa := XA.AtVec(i), WA.AtVec(i)
				ir.Points = append(ir.Points, IntegrationPoint{
					R: 0.25 * (1 + a) * (1 - b),
					S: 0.5 * (1 + b),
					W: 0.125 * wa * wb,
				})
			}
		}
	default:
		panic(fmt.Errorf("no integration rule for geometry %v", geom))
	}
	return
}

// GetNIP returns the number of integration points in the rule.
func (ir *IntegrationRule) GetNIP() int { return len(ir.Points) }

// JacobiGQ computes the N+1 Gauss quadrature points and weights for the
// Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1], via the eigenvalue
// decomposition of the symmetric tridiagonal Jacobi matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{gamma0(alpha, beta)}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-(alpha^2-beta^2)./(h1+2)./h1). Note the full
	// factor: the matrix is built directly as a symmetric tridiagonal, not
	// as an upper triangle later symmetrized by J + J'.
	d0 = make([]float64, N+1)
	fac = -(alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal: diag(2./(h1(1:N)+2).*sqrt((1:N).*((1:N)+alpha+beta) .* ((1:N)+alpha).*((1:N)+beta)./(h1(1:N)+1)./(h1(1:N)+3)),1)
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

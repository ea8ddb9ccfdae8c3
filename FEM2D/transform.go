package FEM2D

import "math"

// MappedPoint is an integration point mapped to a physical element: the
// physical coordinates, the inverse Jacobian of the reference-to-physical
// map at that point, and the measure (|det J|) scaling the quadrature
// weight.
type MappedPoint struct {
	IP      IntegrationPoint
	X, Y    float64
	JInv    [4]float64 // inverse Jacobian, row-major 2x2
	Measure float64
}

// ElementTransformation maps reference coordinates to physical coordinates
// for one concrete mesh element. Implementations must be safe for
// concurrent read-only use.
type ElementTransformation interface {
	Apply(ip IntegrationPoint, mp *MappedPoint)
}

// AffineTrigTransform is the affine map of the reference triangle onto a
// physical triangle with vertices v0, v1, v2 matching reference vertices
// (1,0), (0,1), (0,0). The Jacobian is constant, so it is factored once at
// construction.
type AffineTrigTransform struct {
	V    [3][2]float64
	j    [4]float64 // Jacobian [xr, xs; yr, ys]
	jInv [4]float64
	det  float64
}

func NewAffineTrigTransform(v0, v1, v2 [2]float64) (at *AffineTrigTransform) {
	var (
		xr, yr = v0[0] - v2[0], v0[1] - v2[1]
		xs, ys = v1[0] - v2[0], v1[1] - v2[1]
	)
	at = &AffineTrigTransform{
		V:   [3][2]float64{v0, v1, v2},
		j:   [4]float64{xr, xs, yr, ys},
		det: xr*ys - xs*yr,
	}
	if at.det == 0 {
		panic("degenerate element: zero Jacobian determinant")
	}
	// Inverse Jacobian is:
	// (1/(xr*ys-xs*yr)) *
	//             [ ys,-xs]
	//             [-yr, xr]
	oodet := 1. / at.det
	at.jInv = [4]float64{ys * oodet, -xs * oodet, -yr * oodet, xr * oodet}
	return
}

func (at *AffineTrigTransform) Apply(ip IntegrationPoint, mp *MappedPoint) {
	mp.IP = ip
	mp.X = at.V[2][0] + ip.R*at.j[0] + ip.S*at.j[1]
	mp.Y = at.V[2][1] + ip.R*at.j[2] + ip.S*at.j[3]
	mp.JInv = at.jInv
	mp.Measure = math.Abs(at.det)
}

// Det returns the signed Jacobian determinant (twice the signed area).
func (at *AffineTrigTransform) Det() float64 { return at.det }

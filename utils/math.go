package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	NODETOL = 1.e-12
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and the first super/sub diagonal d1.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymBandDense) {
	var (
		n    = len(d0)
		data = make([]float64, 2*n)
	)
	if len(d1) != n-1 {
		panic("diagonal lengths mismatch in NewSymTriDiagonal")
	}
	for i := 0; i < n; i++ {
		data[2*i] = d0[i]
		if i != n-1 {
			data[2*i+1] = d1[i]
		}
	}
	J = mat.NewSymBandDense(n, 1, data)
	return
}

//go:build cgo
// +build cgo

package utils

// Swaps the pure Go BLAS for OpenBLAS in cgo builds. The dense element
// kernels and the quadrature eigenproblems route through blas64, so this is
// a link-time switch with no call-site changes.

/*
#cgo CFLAGS: -march=native -mavx -mavx2
#cgo LDFLAGS: -lopenblas -llapacke -lgfortran -lm -lpthread
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}

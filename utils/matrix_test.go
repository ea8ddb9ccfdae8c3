package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// transpose
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		At := A.Transpose()
		assert.Equal(t, []float64{
			1, 4,
			2, 5,
			3, 6,
		}, At.Data())
	}
	// multiply
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		C := A.Mul(B)
		assert.Equal(t, []float64{
			2, 1,
			4, 3,
		}, C.Data())
	}
	// in-place ops
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 2, ConstArray(4, 1))
		A.Add(B).Scale(2)
		assert.Equal(t, []float64{4, 6, 8, 10}, A.Data())
		A.Zero()
		assert.Equal(t, []float64{0, 0, 0, 0}, A.Data())
	}
	// copy does not alias the source
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := A.Copy()
		B.Set(0, 0, 99)
		assert.Equal(t, 1.0, A.At(0, 0))
	}
	// read only protection
	{
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		assert.Panics(t, func() { A.Zero() })
		A.SetWritable()
		A.Set(0, 0, 1)
		assert.Equal(t, 1.0, A.At(0, 0))
	}
	// allocation size mismatch
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVector(3, []float64{1, 2, 3})
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 6.0, v.Sum())
		assert.Equal(t, 1.0, v.Min())
		assert.Equal(t, 3.0, v.Max())
	}
	{
		v := NewVector(3, []float64{1, 2, 3})
		v.Scale(2).Add(NewVector(3, ConstArray(3, 1)))
		assert.Equal(t, []float64{3, 5, 7}, v.DataP)
		v.POW(2)
		assert.Equal(t, []float64{9, 25, 49}, v.DataP)
		v.Zero()
		assert.Equal(t, []float64{0, 0, 0}, v.DataP)
	}
	{
		v := NewVector(3, []float64{1, 2, 3})
		w := v.Copy()
		w.DataP[0] = 99
		assert.Equal(t, 1.0, v.AtVec(0))
	}
	{
		assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
	}
}

func TestNewSymTriDiagonal(t *testing.T) {
	var (
		d0 = []float64{2, 2, 2}
		d1 = []float64{-1, -1}
	)
	J := NewSymTriDiagonal(d0, d1)
	n, _ := J.Dims()
	assert.Equal(t, 3, n)
	assert.Equal(t, 2.0, J.At(1, 1))
	assert.Equal(t, -1.0, J.At(0, 1))
	assert.Equal(t, -1.0, J.At(1, 0))
	assert.Equal(t, 0.0, J.At(0, 2))
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{
		A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		assert.True(t, near(A.At(1, 2), 6))
		assert.True(t, near(A.Max(), 6))
		assert.True(t, near(A.Min(), 1))
		B := A.Copy().Scale(2)
		assert.True(t, near(B.At(0, 0), 2))
		assert.True(t, near(A.At(0, 0), 1)) // Copy detaches storage
		B.Subtract(A)
		assert.True(t, near(B.At(1, 1), 5))
		B.Add(A).Apply(math.Sqrt)
		assert.True(t, near(B.At(0, 0), math.Sqrt(2)))
	}
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		v := NewVector(2, []float64{1, 1})
		Av := A.MulVec(v)
		assert.True(t, near(Av.AtVec(0), 3))
		assert.True(t, near(Av.AtVec(1), 7))
		AA := A.Mul(A)
		assert.True(t, near(AA.At(0, 0), 7))
		assert.True(t, near(AA.At(1, 1), 22))
	}
	{
		// CopyFrom takes the sparse fast path for DOK sources
		d := NewDOK(2, 2)
		d.AddAt(0, 1, 3)
		A := NewMatrix(2, 2, []float64{9, 9, 9, 9})
		A.CopyFrom(d)
		assert.True(t, near(A.At(0, 1), 3))
		assert.True(t, near(A.At(1, 1), 0))
		A.AddAt(1, 1, 2).AddAt(1, 1, 2)
		assert.True(t, near(A.At(1, 1), 4))
	}
}

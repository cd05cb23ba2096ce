package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemSolver(t *testing.T) {
	{
		// known 3x3 system
		A := NewMatrix(3, 3, []float64{
			4, 1, 0,
			1, 4, 1,
			0, 1, 4,
		})
		x := NewVector(3, []float64{1, -2, 3})
		b := A.MulVec(x)
		s := NewSystemSolver(3)
		f, err := s.Factorize(A)
		assert.NoError(t, err)
		got := f.Solve(b)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, x.AtVec(i), got.AtVec(i), 1.e-12)
		}
		// rhs unchanged by Solve
		assert.True(t, near(b.AtVec(0), 2))
	}
	{
		// repeated factorizations reuse the workspace and stay correct
		s := NewSystemSolver(2)
		A := NewMatrix(2, 2, []float64{2, 0, 0, 5})
		B := NewMatrix(2, 2, []float64{1, 1, 0, 1})
		f, err := s.Factorize(A)
		assert.NoError(t, err)
		_ = f
		f, err = s.Factorize(B)
		assert.NoError(t, err)
		got := f.Solve(NewVector(2, []float64{3, 1}))
		assert.InDelta(t, 2, got.AtVec(0), 1.e-14)
		assert.InDelta(t, 1, got.AtVec(1), 1.e-14)
	}
	{
		// structurally singular
		A := NewMatrix(2, 2, []float64{1, 2, 2, 4})
		s := NewSystemSolver(2)
		_, err := s.Factorize(A)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrSingularMatrix))
	}
	{
		// all-zero matrix
		s := NewSystemSolver(3)
		_, err := s.Factorize(NewMatrix(3, 3))
		assert.True(t, errors.Is(err, ErrSingularMatrix))
	}
	{
		// vanishing pivots are flagged, not silently inverted
		A := NewMatrix(2, 2, []float64{1.e-32, 0, 0, 1.e-32})
		s := NewSystemSolver(2)
		_, err := s.Factorize(A)
		assert.True(t, errors.Is(err, ErrSingularMatrix))
	}
	{
		// dimension guard
		s := NewSystemSolver(3)
		_, err := s.Factorize(NewMatrix(2, 2))
		assert.Error(t, err)
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1) {
		l = true
	}
	return
}

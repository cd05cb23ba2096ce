package Burgers1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolabs/goburgers/utils"
)

func TestNewtonSolve(t *testing.T) {
	sp, bt := testSpace(t, 16)
	a := NewAssembler(sp, bt, 1.0)
	ns := NewNewtonSolver(a, 1.e-10, 30)
	assert.Equal(t, Initialized, ns.Status())

	u0 := smoothState(sp)
	u0Ref := u0.Copy()
	u1, err := ns.Solve(u0, u0, 0.01, 0.01)
	require.NoError(t, err)
	assert.Equal(t, Converged, ns.Status())
	assert.GreaterOrEqual(t, ns.Iterations(), 1)
	// the seed is not mutated
	assert.Equal(t, u0Ref.Data(), u0.Data())

	// determinism: same inputs, bitwise identical result
	u1b, err := ns.Solve(u0, u0, 0.01, 0.01)
	require.NoError(t, err)
	assert.Equal(t, u1.Data(), u1b.Data())

	// a converged state re-solved against itself with a vanishing time
	// step stays put: the residual stalls at the (u-up)/dt roundoff
	// floor, so convergence comes from the update criterion
	u2, err := ns.Solve(u1, u1, 1.e-12, 0.01)
	require.NoError(t, err)
	assert.Equal(t, Converged, ns.Status())
	var maxDiff float64
	for i := 0; i < u1.Len(); i++ {
		if d := math.Abs(u2.AtVec(i) - u1.AtVec(i)); d > maxDiff {
			maxDiff = d
		}
	}
	assert.Less(t, maxDiff, 1.e-08)
}

func TestNewtonDivergence(t *testing.T) {
	sp, bt := testSpace(t, 8)
	a := NewAssembler(sp, bt, 1.0)
	// unreachable tolerance: the iteration budget runs out
	ns := NewNewtonSolver(a, 1.e-300, 2)
	u0 := smoothState(sp)
	uLast, err := ns.Solve(u0, u0, 0.01, 0.01)
	assert.Error(t, err)
	assert.Equal(t, Diverged, ns.Status())
	var nde *NewtonDivergenceError
	assert.True(t, errors.As(err, &nde))
	assert.Equal(t, 2, nde.Iterations)
	assert.Greater(t, nde.LastResidual, 0.0)
	// the last iterate comes back usable, not a nil vector
	assert.Equal(t, sp.DofCount(), uLast.Len())
	for i := 0; i < uLast.Len(); i++ {
		assert.False(t, math.IsNaN(uLast.AtVec(i)))
	}
}

func TestSingularJacobian(t *testing.T) {
	// nu = 0 with a zero state and the time term suppressed leaves a
	// degenerate Jacobian; factorization must flag it rather than
	// return garbage
	sp, bt := testSpace(t, 8)
	a := NewAssembler(sp, bt, 1.0)
	n := sp.DofCount()
	zero := utils.NewVector(n)
	_, jac := a.Assemble(zero, zero, 1.e30, 0)
	s := utils.NewSystemSolver(n)
	_, err := s.Factorize(jac)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSingularMatrix))
}

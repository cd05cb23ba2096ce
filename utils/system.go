package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularMatrix is reported when LU factorization meets a zero or
// near-zero pivot.
var ErrSingularMatrix = errors.New("singular matrix")

// SystemSolver factors square systems with dense LU (lapack64.Getrf) and
// back-solves with Getrs. The factorization workspace and pivot array are
// owned by the solver and reused across Factorize calls, so repeated
// factorizations of same-sized matrices do not allocate.
type SystemSolver struct {
	n        int
	work     Matrix
	ipiv     []int
	PivotTol float64
}

func NewSystemSolver(n int) (s *SystemSolver) {
	s = &SystemSolver{
		n:        n,
		work:     NewMatrix(n, n),
		ipiv:     make([]int, n),
		PivotTol: 1.e-13,
	}
	return
}

// Factorization holds an LU decomposition produced by Factorize. It
// aliases the solver's workspace: a subsequent Factorize invalidates it.
type Factorization struct {
	lu   Matrix
	ipiv []int
}

func (s *SystemSolver) Factorize(A mat.Matrix) (f *Factorization, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != s.n || nc != s.n {
		err = fmt.Errorf("cannot factorize a %dx%d matrix with a solver sized for n = %d", nr, nc, s.n)
		return
	}
	s.work.CopyFrom(A)
	if ok := lapack64.Getrf(s.work.RawMatrix(), s.ipiv); !ok {
		err = fmt.Errorf("%w: exact zero pivot in LU factorization", ErrSingularMatrix)
		return
	}
	// Getrf succeeds on nearly singular matrices; check the pivots too.
	var maxPiv float64
	for i := 0; i < s.n; i++ {
		if p := math.Abs(s.work.At(i, i)); p > maxPiv {
			maxPiv = p
		}
	}
	for i := 0; i < s.n; i++ {
		if math.Abs(s.work.At(i, i)) <= s.PivotTol*math.Max(1, maxPiv) {
			err = fmt.Errorf("%w: pivot %d below threshold %v", ErrSingularMatrix, i, s.PivotTol)
			return
		}
	}
	f = &Factorization{lu: s.work, ipiv: s.ipiv}
	return
}

// Solve back-substitutes rhs through the factorization, returning a fresh
// solution vector. rhs is not modified.
func (f *Factorization) Solve(rhs Vector) (x Vector) {
	var (
		n = rhs.Len()
	)
	x = rhs.Copy()
	b := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: x.Data()}
	lapack64.Getrs(blas.NoTrans, f.lu.RawMatrix(), b, f.ipiv)
	return
}

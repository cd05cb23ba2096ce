package Burgers1D

import (
	"fmt"

	"github.com/scigolabs/goburgers/utils"
)

type SolverStatus uint8

const (
	Initialized SolverStatus = iota
	Iterating
	Converged
	Diverged
)

var statusNames = []string{"Initialized", "Iterating", "Converged", "Diverged"}

func (s SolverStatus) String() string { return statusNames[s] }

// NewtonDivergenceError is reported when the iteration count exceeds
// MaxIterations without meeting the tolerance.
type NewtonDivergenceError struct {
	Iterations   int
	LastResidual float64
}

func (e *NewtonDivergenceError) Error() string {
	return fmt.Sprintf("newton iteration diverged: %d iterations, last residual norm = %v",
		e.Iterations, e.LastResidual)
}

// NewtonSolver drives Newton's method to convergence for one implicit
// time step. The linear solver workspace is allocated once and reused
// across iterations and time steps.
type NewtonSolver struct {
	Tol           float64
	MaxIterations int
	assembler     *Assembler
	linsol        *utils.SystemSolver
	status        SolverStatus
	iterations    int
	lastResidual  float64
}

func NewNewtonSolver(a *Assembler, tol float64, maxIterations int) (ns *NewtonSolver) {
	ns = &NewtonSolver{
		Tol:           tol,
		MaxIterations: maxIterations,
		assembler:     a,
		linsol:        utils.NewSystemSolver(a.Space.DofCount()),
	}
	return
}

func (ns *NewtonSolver) Status() SolverStatus { return ns.status }
func (ns *NewtonSolver) Iterations() int      { return ns.iterations }

// Solve returns the root of the implicit step residual, seeded with
// guess. Convergence is declared on the residual, ||r|| < Tol*(1+||r0||),
// or on the update, ||du|| < Tol*(1+||u||). The update criterion matters
// for very small dt, where the (u-up)/dt term pins the residual to a
// roundoff floor the corrections can no longer move. Neither
// guess nor uPrev is mutated. On failure the last iterate is returned
// alongside the error.
func (ns *NewtonSolver) Solve(guess, uPrev utils.Vector, dt, nu float64) (u utils.Vector, err error) {
	var (
		a     = ns.assembler
		norm0 float64
	)
	u = guess.Copy()
	ns.status = Iterating
	for it := 0; ; it++ {
		res, jac := a.Assemble(u, uPrev, dt, nu)
		norm := res.Norm()
		if it == 0 {
			norm0 = norm
		}
		ns.iterations = it
		ns.lastResidual = norm
		if norm < ns.Tol*(1+norm0) {
			ns.status = Converged
			return
		}
		if it >= ns.MaxIterations {
			ns.status = Diverged
			err = &NewtonDivergenceError{Iterations: it, LastResidual: norm}
			return
		}
		var f *utils.Factorization
		if f, err = ns.linsol.Factorize(jac); err != nil {
			ns.status = Diverged
			err = fmt.Errorf("newton iteration %d: %w", it, err)
			return
		}
		du := f.Solve(res)
		u.Subtract(du)
		if du.Norm() < ns.Tol*(1+u.Norm()) {
			ns.iterations = it + 1
			ns.status = Converged
			return
		}
	}
}

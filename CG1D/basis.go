package CG1D

import (
	"math"

	"github.com/scigolabs/goburgers/utils"
)

// BasisTable holds the quadratic Lagrange shape functions on the
// reference element [-1,1] tabulated at the Gauss quadrature points.
// Local node ordering is (left vertex, midpoint, right vertex).
// The 3 point rule is exact through degree 5, which covers the cubic
// advection term of the weak form with margin.
type BasisTable struct {
	Np, Nq int // local dofs, quadrature points
	R, W   utils.Vector
	// Phi and DPhi are Nq x Np: row q holds the shape values and
	// reference derivatives at quadrature point q.
	Phi, DPhi utils.Matrix
}

func NewBasisTable() (bt *BasisTable) {
	bt = &BasisTable{
		Np: 3,
		Nq: 3,
	}
	gp := math.Sqrt(3. / 5.)
	bt.R = utils.NewVector(bt.Nq, []float64{-gp, 0, gp})
	bt.W = utils.NewVector(bt.Nq, []float64{5. / 9., 8. / 9., 5. / 9.})
	bt.Phi = utils.NewMatrix(bt.Nq, bt.Np)
	bt.DPhi = utils.NewMatrix(bt.Nq, bt.Np)
	for q := 0; q < bt.Nq; q++ {
		phi, dphi := Lagrange2(bt.R.AtVec(q))
		for i := 0; i < bt.Np; i++ {
			bt.Phi.Set(q, i, phi[i])
			bt.DPhi.Set(q, i, dphi[i])
		}
	}
	return
}

// Lagrange2 evaluates the three quadratic Lagrange shape functions and
// their derivatives with respect to r at a reference coordinate.
func Lagrange2(r float64) (phi, dphi [3]float64) {
	phi[0] = 0.5 * r * (r - 1)
	phi[1] = 1 - r*r
	phi[2] = 0.5 * r * (r + 1)
	dphi[0] = r - 0.5
	dphi[1] = -2 * r
	dphi[2] = r + 0.5
	return
}

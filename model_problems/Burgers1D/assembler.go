package Burgers1D

import (
	"github.com/scigolabs/goburgers/CG1D"
	"github.com/scigolabs/goburgers/utils"
)

// Assembler builds the global nonlinear residual and its analytic
// Jacobian for one theta-weighted implicit step of viscous Burgers:
//
//	r_i = Sum_q w_q |J| [ (u-up)/dt phi_i
//	      + theta (u u_x phi_i + nu u_x dphi_i/dx)
//	      + (1-theta) (up up_x phi_i + nu up_x dphi_i/dx) ]
//
// Theta = 1 is backward Euler, 0.5 is Crank-Nicolson. The Jacobian is
// the exact derivative of r with respect to the coefficients of u:
//
//	J_ij = Sum_q w_q |J| [ phi_i phi_j/dt
//	       + theta ((phi_j u_x + u dphi_j/dx) phi_i + nu dphi_j/dx dphi_i/dx) ]
//
// The residual vector and the Jacobian are allocated once and
// overwritten on every call; the Jacobian keeps its sparsity pattern
// across calls, only the values are rebuilt. Both outputs stay valid
// until the next Assemble. Input states are not mutated.
type Assembler struct {
	Space *CG1D.FunctionSpace
	Basis *CG1D.BasisTable
	Theta float64
	res   utils.Vector
	jac   utils.DOK
}

func NewAssembler(sp *CG1D.FunctionSpace, bt *CG1D.BasisTable, theta float64) (a *Assembler) {
	var (
		n = sp.DofCount()
	)
	a = &Assembler{
		Space: sp,
		Basis: bt,
		Theta: theta,
		res:   utils.NewVector(n),
		jac:   utils.NewDOK(n, n),
	}
	return
}

func (a *Assembler) Assemble(uNext, uPrev utils.Vector, dt, nu float64) (res utils.Vector, jac utils.DOK) {
	var (
		sp    = a.Space
		bt    = a.Basis
		mesh  = sp.Mesh
		theta = a.Theta
		h     = mesh.H()
		dj    = h / 2  // element Jacobian |J|
		rx    = 2. / h // dr/dx
		uN    = uNext.Data()
		uP    = uPrev.Data()
		rd    = a.res.Zero().Data()
	)
	jac = a.jac.Zero()
	var rLocal [3]float64
	var jLocal [3][3]float64
	for k := 0; k < mesh.ElementCount(); k++ {
		dofs := sp.LocalToGlobalDofs(k)
		for i := 0; i < 3; i++ {
			rLocal[i] = 0
			for j := 0; j < 3; j++ {
				jLocal[i][j] = 0
			}
		}
		for q := 0; q < bt.Nq; q++ {
			var u, ur, up, upr float64
			for j := 0; j < 3; j++ {
				u += uN[dofs[j]] * bt.Phi.At(q, j)
				ur += uN[dofs[j]] * bt.DPhi.At(q, j)
				up += uP[dofs[j]] * bt.Phi.At(q, j)
				upr += uP[dofs[j]] * bt.DPhi.At(q, j)
			}
			ux := ur * rx
			upx := upr * rx
			wq := bt.W.AtVec(q) * dj
			for i := 0; i < 3; i++ {
				phi := bt.Phi.At(q, i)
				dphix := bt.DPhi.At(q, i) * rx
				rLocal[i] += wq * ((u-up)/dt*phi +
					theta*(u*ux*phi+nu*ux*dphix) +
					(1-theta)*(up*upx*phi+nu*upx*dphix))
				for j := 0; j < 3; j++ {
					phj := bt.Phi.At(q, j)
					dphjx := bt.DPhi.At(q, j) * rx
					jLocal[i][j] += wq * (phi*phj/dt +
						theta*((phj*ux+u*dphjx)*phi+nu*dphjx*dphix))
				}
			}
		}
		// Scatter-add: shared vertex dofs of adjacent elements (and the
		// periodic wrap) must accumulate, never overwrite.
		for i := 0; i < 3; i++ {
			rd[dofs[i]] += rLocal[i]
			for j := 0; j < 3; j++ {
				jac.AddAt(dofs[i], dofs[j], jLocal[i][j])
			}
		}
	}
	res = a.res
	return
}

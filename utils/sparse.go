package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix for incremental assembly.
// Scatter-adds from overlapping element stencils accumulate at shared
// entries rather than overwrite.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) AddAt(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// Zero clears the stored values while keeping every entry in place, so
// a reassembly over the same stencil reuses the sparsity pattern.
func (m DOK) Zero() DOK { // Changes receiver
	m.M.DoNonZero(func(i, j int, v float64) {
		m.M.Set(i, j, 0)
	})
	return m
}

func (m DOK) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

func (m DOK) NNZ() int {
	return m.M.NNZ()
}

// Dense expands the nonzeros into a fresh dense Matrix.
func (m DOK) Dense() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	m.DoNonZero(func(i, j int, v float64) {
		R.Set(i, j, v)
	})
	return
}

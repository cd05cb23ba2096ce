package CG1D

import (
	"errors"
	"fmt"

	"github.com/scigolabs/goburgers/utils"
)

// ErrInvalidMeshParameters is reported for non-positive domain lengths
// and meshes too small for a periodic quadratic discretization.
var ErrInvalidMeshParameters = errors.New("invalid mesh parameters")

// Mesh1DPeriodic is a uniform 1-D mesh on [0, DomainLength) whose last
// element wraps back to vertex 0. Element count equals vertex count.
// Immutable after construction.
type Mesh1DPeriodic struct {
	NodeCount    int
	DomainLength float64
}

func NewMesh1DPeriodic(nodeCount int, domainLength float64) (m *Mesh1DPeriodic, err error) {
	// A single self-wrapping element would alias both vertices of every
	// element to the same node; reject it rather than degrade.
	if nodeCount < 2 {
		err = fmt.Errorf("%w: nodeCount = %d, need at least 2", ErrInvalidMeshParameters, nodeCount)
		return
	}
	if domainLength <= 0 {
		err = fmt.Errorf("%w: domainLength = %v, need > 0", ErrInvalidMeshParameters, domainLength)
		return
	}
	m = &Mesh1DPeriodic{
		NodeCount:    nodeCount,
		DomainLength: domainLength,
	}
	return
}

func (m *Mesh1DPeriodic) ElementCount() int { return m.NodeCount }

// H is the uniform element width.
func (m *Mesh1DPeriodic) H() float64 {
	return m.DomainLength / float64(m.NodeCount)
}

// ElementVertices returns the global vertex numbers of element k with
// periodic wraparound for the last element.
func (m *Mesh1DPeriodic) ElementVertices(k int) (a, b int) {
	a = k
	b = (k + 1) % m.NodeCount
	return
}

func (m *Mesh1DPeriodic) VertexCoordinate(i int) float64 {
	return float64(i) * m.H()
}

// FunctionSpace is the continuous piecewise-quadratic space on a periodic
// mesh: one dof per vertex plus one per element midpoint. Immutable after
// construction.
type FunctionSpace struct {
	Mesh   *Mesh1DPeriodic
	Degree int
}

func NewFunctionSpace(m *Mesh1DPeriodic) (sp *FunctionSpace) {
	sp = &FunctionSpace{
		Mesh:   m,
		Degree: 2,
	}
	return
}

func (sp *FunctionSpace) DofCount() int {
	return 2 * sp.Mesh.ElementCount()
}

// LocalToGlobalDofs maps the (left vertex, midpoint, right vertex) local
// dofs of element k to global dof numbers. Dofs are numbered along the
// axis, vertices on even and midpoints on odd indices, so the right
// vertex of the last element wraps to dof 0.
func (sp *FunctionSpace) LocalToGlobalDofs(k int) [3]int {
	n := sp.DofCount()
	return [3]int{2 * k, 2*k + 1, (2*k + 2) % n}
}

// NodeCoordinates returns the dof coordinates in global dof order, a
// uniform spacing of H/2.
func (sp *FunctionSpace) NodeCoordinates() (X utils.Vector) {
	var (
		n  = sp.DofCount()
		dx = sp.Mesh.H() / 2
	)
	X = utils.NewVector(n)
	for i := 0; i < n; i++ {
		X.SetVec(i, float64(i)*dx)
	}
	return
}

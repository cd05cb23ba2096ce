package Burgers1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/screen"
	utils2 "github.com/notargets/avs/utils"

	"github.com/scigolabs/goburgers/CG1D"
	"github.com/scigolabs/goburgers/InputParameters"
	"github.com/scigolabs/goburgers/utils"
)

// TimeStepFailureError wraps a Newton divergence or singular
// factorization with the step index and time at which the run halted.
type TimeStepFailureError struct {
	Step int
	Time float64
	Err  error
}

func (e *TimeStepFailureError) Error() string {
	return fmt.Sprintf("time step %d (t = %v) failed: %v", e.Step, e.Time, e.Err)
}

func (e *TimeStepFailureError) Unwrap() error { return e.Err }

type Burgers struct {
	// Input parameters
	Nu, Dt, FinalTime float64
	Theta             float64
	Mesh              *CG1D.Mesh1DPeriodic
	Space             *CG1D.FunctionSpace
	Basis             *CG1D.BasisTable
	X                 utils.Vector // dof coordinates
	U                 utils.Vector // current state
	newton            *NewtonSolver
	chart             *chart2d.Chart2D
	plotWin           *screen.Window
	plotKey           utils2.Key
}

func New(ip *InputParameters.BurgersParameters) (c *Burgers, err error) {
	var (
		mesh *CG1D.Mesh1DPeriodic
	)
	if mesh, err = CG1D.NewMesh1DPeriodic(ip.NodeCount, ip.DomainLength); err != nil {
		return
	}
	c = &Burgers{
		Nu:        ip.Nu,
		Dt:        ip.Dt,
		FinalTime: ip.FinalTime,
		Theta:     ip.Theta,
		Mesh:      mesh,
		Space:     CG1D.NewFunctionSpace(mesh),
		Basis:     CG1D.NewBasisTable(),
	}
	c.X = c.Space.NodeCoordinates()
	c.U = c.initialCondition(ip.InitType)
	asm := NewAssembler(c.Space, c.Basis, ip.Theta)
	c.newton = NewNewtonSolver(asm, ip.Tolerance, ip.MaxIterations)
	return
}

func (c *Burgers) initialCondition(initType string) (U utils.Vector) {
	var (
		L = c.Mesh.DomainLength
	)
	U = c.X.Copy()
	switch initType {
	case "gauss":
		U.Apply(func(x float64) float64 {
			d := x - 0.5*L
			return math.Exp(-40 * d * d)
		})
	case "sin":
		fallthrough
	default:
		U.Apply(func(x float64) float64 { return math.Sin(2 * math.Pi * x) })
	}
	return
}

// plotXY flattens the current solution into the interleaved x,y
// float32 polyline the chart consumes.
func (c *Burgers) plotXY() (xy []float32) {
	var (
		n = c.U.Len()
	)
	xy = make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		xy = append(xy, float32(c.X.AtVec(i)), float32(c.U.AtVec(i)))
	}
	return
}

// Run advances the state from t = 0 with implicit steps of Dt while
// t <= FinalTime. The inclusive bound means accumulated rounding decides
// whether a final step lands just past FinalTime. Snapshots are recorded
// for the initial state and every converged step; on failure the history
// collected so far is returned alongside the error.
func (c *Burgers) Run(showGraph bool, graphDelay ...time.Duration) (hist *SnapshotHistory, err error) {
	var (
		logFrequency = 10
		step         int
	)
	hist = &SnapshotHistory{}
	hist.Append(c.U)
	if showGraph {
		c.chart = chart2d.NewChart2D(0, float32(c.Mesh.DomainLength), -1.2, 1.2,
			1024, 768, utils2.WHITE, utils2.BLACK)
		c.plotWin = c.chart.Screen.GetCurrentWindow()
		c.plotKey = c.chart.AddLine(c.plotXY(), utils2.WHITE, utils2.POLYLINE)
	}
	for t := 0.0; t <= c.FinalTime; t += c.Dt {
		var uNew utils.Vector
		if uNew, err = c.newton.Solve(c.U, c.U, c.Dt, c.Nu); err != nil {
			err = &TimeStepFailureError{Step: step, Time: t + c.Dt, Err: err}
			return
		}
		c.U = uNew
		hist.Append(c.U)
		step++
		if showGraph {
			c.chart.UpdateLine(c.plotWin, c.plotKey, c.plotXY(), nil)
			if len(graphDelay) != 0 {
				time.Sleep(graphDelay[0])
			}
		}
		if step%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, newton_iters[%d] = %d, umin = %8.4f, umax = %8.4f\n",
				t+c.Dt, step, c.newton.Iterations(), c.U.Min(), c.U.Max())
		}
	}
	return
}

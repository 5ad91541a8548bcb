package grapher

import (
	"errors"
	"math"
	"strconv"

	"github.com/zephyrtronium/grapher/plane"
)

// errStep is returned by Scan for a step that cannot advance.
var errStep = errors.New("grapher: scan step must be positive and finite")

// MaxSamples is the largest number of values Scan visits.
const MaxSamples = 1 << 20

// SamplesError is returned by Scan for a range that needs more than
// MaxSamples steps.
type SamplesError struct {
	// Start, End, and Step describe the rejected scan.
	Start, End, Step float64
}

func (err *SamplesError) Error() string {
	return "grapher: scanning " + ftoa(err.Start) + " to " + ftoa(err.End) + " by " + ftoa(err.Step) +
		" takes more than " + strconv.Itoa(MaxSamples) + " samples"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Scan calls fn with start, start+step, start+2·step, and so on, up to end.
// Each value is computed from its index, so rounding error does not
// accumulate. The first error from fn stops the scan.
func Scan(start, end, step float64, fn func(v float64) error) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return errStep
	}
	// The tolerance keeps end in the scan when (end-start)/step lands just
	// below an integer.
	n := math.Floor((end-start)/step + 1e-9)
	if n >= MaxSamples || math.IsNaN(n) {
		return &SamplesError{Start: start, End: end, Step: step}
	}
	for i := 0.0; i <= n; i++ {
		if err := fn(start + i*step); err != nil {
			return err
		}
	}
	return nil
}

// SampleFunc receives each point computed while plotting.
type SampleFunc func(x, y float64)

// Plotter samples expressions onto a plane.
type Plotter struct {
	// Plane receives the sampled points.
	Plane *plane.Plane
	// Context evaluates expressions. If nil, a default context is used.
	Context *Context
	// Trace, if not nil, is called with every sampled point before any is
	// marked.
	Trace SampleFunc
}

func (pl *Plotter) ctx() *Context {
	if pl.Context == nil {
		return defaultctx
	}
	return pl.Context
}

// Plot samples y = e(x) across the plane's x window, one sample per column.
// If any evaluation fails, nothing is marked.
func (pl *Plotter) Plot(e *Expr) error {
	ctx := pl.ctx()
	xlen := float64(pl.Plane.XLen())
	var pts [][2]float64
	err := Scan(-xlen, xlen, 1/float64(pl.Plane.XDensity()), func(x float64) error {
		y, err := ctx.Eval(e, x)
		if err != nil {
			return err
		}
		pts = append(pts, [2]float64{x, y})
		return nil
	})
	if err != nil {
		return err
	}
	pl.mark(pts)
	return nil
}

// PlotParametric samples (fx(t), fy(t)) for t from t0 to t1, stepping by the
// width of one column. If any evaluation fails, nothing is marked.
func (pl *Plotter) PlotParametric(fx, fy *Expr, t0, t1 float64) error {
	ctx := pl.ctx()
	var pts [][2]float64
	err := Scan(t0, t1, 1/float64(pl.Plane.XDensity()), func(t float64) error {
		x, err := ctx.Eval(fx, t)
		if err != nil {
			return err
		}
		y, err := ctx.Eval(fy, t)
		if err != nil {
			return err
		}
		pts = append(pts, [2]float64{x, y})
		return nil
	})
	if err != nil {
		return err
	}
	pl.mark(pts)
	return nil
}

func (pl *Plotter) mark(pts [][2]float64) {
	if pl.Trace != nil {
		for _, p := range pts {
			pl.Trace(p[0], p[1])
		}
	}
	for _, p := range pts {
		pl.Plane.Mark(p[0], p[1])
	}
}

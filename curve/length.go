package curve

import (
	"math"

	"github.com/npillmayer/space3d"
)

// DefaultPrecision is the relative tolerance by which the two length
// estimates have to agree.
const DefaultPrecision = 1e-6

// DefaultMaxIterations caps the refinement of Length. Each iteration
// doubles the number of samples.
const DefaultMaxIterations = 16

// MaxSamples caps the number of samples of a single round of Length. The
// initial sampling is clamped to it, and refinement stops with
// Converged = false before doubling would exceed it.
var MaxSamples = 1 << 22

// Convergence reports on a length estimation.
type Convergence struct {
	Error      float64 // relative difference of the two estimates
	Iterations int     // number of sampling rounds
	Converged  bool    // false if the iteration or sample cap was hit first
}

type lengthConfig struct {
	precision     float64
	maxIterations int
}

// Option configures Length.
type Option func(*lengthConfig)

// WithPrecision sets the relative tolerance of Length. The sign of p is
// ignored.
func WithPrecision(p float64) Option {
	return func(cfg *lengthConfig) {
		cfg.precision = math.Abs(p)
	}
}

// WithMaxIterations sets the maximum number of sampling rounds of Length.
// Values below 1 are treated as 1.
func WithMaxIterations(n int) Option {
	return func(cfg *lengthConfig) {
		cfg.maxIterations = max(n, 1)
	}
}

// Length estimates the arc length of the curve between parameters a and b.
//
// The range is sampled with floor(100·|b-a|/2π)+1 points (at least 2). For
// every sampling two estimates are computed: the trapezoidal integral of
// the tangent magnitude and the length of the chord polygon. If they agree
// within the precision, the larger one is returned. Otherwise the number of
// samples is doubled. If the iteration cap or MaxSamples is hit first, the
// larger estimate of the last round is returned and Converged is false.
//
// The length is never negative, even for b < a.
func (c *Parametric) Length(a, b float64, opts ...Option) (float64, Convergence) {
	cfg := lengthConfig{precision: DefaultPrecision, maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}
	var conv Convergence
	if a == b {
		conv.Converged = true
		return 0, conv
	}
	n := max(MaxSamples, 2)
	if nf := math.Floor(100*math.Abs(b-a)/space3d.TwoPi) + 1; nf < float64(MaxSamples) {
		n = max(int(nf), 2)
	}
	var length float64
	for conv.Iterations < cfg.maxIterations {
		conv.Iterations++
		t := linspace(a, b, n)
		tangents, err := c.Tangent(t)
		if err != nil { // parameter resolution exhausted
			tracer().Errorf("length of %s: %v", c.name, err)
			break
		}
		trap := trapezoid(t, tangents)
		poly := polygonal(c.GeneratePoints(t))
		length = max(trap, poly)
		if trap == 0 && poly == 0 {
			conv.Error = 0
			conv.Converged = true
			break
		}
		conv.Error = math.Abs(trap-poly) / length
		tracer().Debugf("length of %s: n=%d, trapezoid=%g, polygon=%g, error=%g",
			c.name, n, trap, poly, conv.Error)
		if conv.Error <= cfg.precision {
			conv.Converged = true
			break
		}
		if n > MaxSamples/2 {
			tracer().Infof("length of %s: sample cap %d reached", c.name, MaxSamples)
			break
		}
		n *= 2
	}
	if !conv.Converged {
		tracer().Infof("length of %s did not converge after %d iterations, error=%g",
			c.name, conv.Iterations, conv.Error)
	}
	return length, conv
}

// linspace returns n evenly spaced values from a to b, both included.
func linspace(a, b float64, n int) []float64 {
	t := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range t {
		t[i] = a + float64(i)*step
	}
	t[n-1] = b
	return t
}

// trapezoid integrates |r'(t)| with the trapezoidal rule. Tangents are the
// forward differences between consecutive nodes. At a node the tangent is
// the mean of its two adjacent forward differences; end nodes take the
// only adjacent one.
func trapezoid(t []float64, tangents space3d.PointSet) float64 {
	m := len(tangents)
	if m == 0 {
		return 0
	}
	node := func(i int) float64 {
		switch {
		case i == 0:
			return tangents[0].Len()
		case i == m:
			return tangents[m-1].Len()
		}
		return tangents[i-1].Add(tangents[i]).Mul(0.5).Len()
	}
	var sum float64
	prev := node(0)
	for i := 0; i < m; i++ {
		next := node(i + 1)
		sum += (prev + next) / 2 * math.Abs(t[i+1]-t[i])
		prev = next
	}
	return sum
}

// polygonal sums the chord lengths between consecutive points.
func polygonal(ps space3d.PointSet) float64 {
	var sum float64
	for _, chord := range ps.Diff() {
		sum += chord.Len()
	}
	return sum
}

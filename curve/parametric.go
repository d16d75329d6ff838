package curve

import (
	"fmt"

	"github.com/npillmayer/space3d"
)

// Func is a component function of a parametric curve. It is evaluated for
// a whole slice of parameter values at once and has to return a slice of
// the same length.
type Func func(t []float64) []float64

// Scalar lifts a function of a single parameter value to a Func.
func Scalar(f func(float64) float64) Func {
	return func(t []float64) []float64 {
		v := make([]float64, len(t))
		for i, ti := range t {
			v[i] = f(ti)
		}
		return v
	}
}

// Kind tags the variants of curves.
type Kind int8

// Kinds of curves.
const (
	KindParametric Kind = iota
	KindLine
	KindArc
	KindHelix
)

func (k Kind) String() string {
	switch k {
	case KindParametric:
		return "parametric"
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindHelix:
		return "helix"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Curve is the capability shared by all curve variants. Implemented by
// *Parametric, *Line, *Arc and *Helix.
type Curve interface {
	Name() string
	Kind() Kind
	Start() float64
	Stop() float64
	GeneratePoints(t []float64) space3d.PointSet
	Tangent(t []float64) (space3d.PointSet, error)
	Length(a, b float64, opts ...Option) (float64, Convergence)
	TotalLength(opts ...Option) (float64, Convergence)
}

// Parametric is a curve defined by three component functions. A nil
// component means "not set" and evaluates to 0.
type Parametric struct {
	name        string
	kind        Kind
	x, y, z     Func
	start, stop float64
}

var _ Curve = (*Parametric)(nil)

// NewParametric creates a curve from component functions. Every non-nil
// component is checked with a trial evaluation, see SetX.
// start ≤ stop is not required.
func NewParametric(name string, x, y, z Func, start, stop float64) (*Parametric, error) {
	c := &Parametric{name: name, kind: KindParametric, start: start, stop: stop}
	if err := c.SetX(x); err != nil {
		return nil, err
	}
	if err := c.SetY(y); err != nil {
		return nil, err
	}
	if err := c.SetZ(z); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the name of the curve.
func (c *Parametric) Name() string {
	return c.name
}

// Kind returns the variant tag of the curve.
func (c *Parametric) Kind() Kind {
	return c.kind
}

// Start returns the lower end of the parameter range.
func (c *Parametric) Start() float64 {
	return c.start
}

// Stop returns the upper end of the parameter range.
func (c *Parametric) Stop() float64 {
	return c.stop
}

// SetRange changes the parameter range.
func (c *Parametric) SetRange(start, stop float64) {
	c.start, c.stop = start, stop
}

// SetX replaces the x component. f is evaluated for the trial parameters t = [0 1 2 3 4]
// and has to return 5 values without panicking, otherwise
// space3d.ErrInvalidEquation is returned. A nil f unsets the component.
func (c *Parametric) SetX(f Func) error {
	if err := checkEquation(f); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	c.x = f
	return nil
}

// SetY replaces the y component, see SetX.
func (c *Parametric) SetY(f Func) error {
	if err := checkEquation(f); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	c.y = f
	return nil
}

// SetZ replaces the z component, see SetX.
func (c *Parametric) SetZ(f Func) error {
	if err := checkEquation(f); err != nil {
		return fmt.Errorf("z: %w", err)
	}
	c.z = f
	return nil
}

var trialParams = []float64{0, 1, 2, 3, 4}

func checkEquation(f Func) (err error) {
	if f == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("parametric equation panicked on trial parameters: %v", r)
			err = fmt.Errorf("%w: panic on trial parameters: %v", space3d.ErrInvalidEquation, r)
		}
	}()
	t := make([]float64, len(trialParams))
	copy(t, trialParams)
	if n := len(f(t)); n != len(trialParams) {
		return fmt.Errorf("%w: trial of %d values returned %d values", space3d.ErrInvalidEquation, len(trialParams), n)
	}
	return nil
}

// GeneratePoints evaluates the curve at every parameter value of t.
//
// A component returning fewer values than len(t) leaves the remaining
// coordinates at 0, surplus values are dropped. Both cases are traced as
// errors.
func (c *Parametric) GeneratePoints(t []float64) space3d.PointSet {
	ps := make(space3d.PointSet, len(t))
	for i, f := range []Func{c.x, c.y, c.z} {
		if f == nil {
			continue
		}
		values := f(t)
		if len(values) != len(t) {
			tracer().Errorf("%s: component %c returned %d values for %d parameters",
				c.name, "xyz"[i], len(values), len(t))
		}
		for j, v := range values {
			if j < len(ps) {
				ps[j][i] = v
			}
		}
	}
	return ps
}

// Tangent estimates the (unnormalized) tangent vectors by forward
// differences: diff(points)/diff(t). The result has one vector less than t.
// Repeated consecutive parameter values result in space3d.ErrDomain.
func (c *Parametric) Tangent(t []float64) (space3d.PointSet, error) {
	chords := c.GeneratePoints(t).Diff()
	for i := range chords {
		dt := t[i+1] - t[i]
		if dt == 0 {
			return nil, fmt.Errorf("%w: repeated parameter value %g at index %d", space3d.ErrDomain, t[i], i)
		}
		chords[i] = chords[i].Mul(1 / dt)
	}
	return chords, nil
}

// TotalLength is Length(Start(), Stop(), opts...).
func (c *Parametric) TotalLength(opts ...Option) (float64, Convergence) {
	return c.Length(c.start, c.stop, opts...)
}

func (c *Parametric) String() string {
	return fmt.Sprintf("%s %q, t ∈ [%g,%g]", c.kind, c.name, c.start, c.stop)
}

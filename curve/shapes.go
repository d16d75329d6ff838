package curve

import (
	"math"

	"github.com/npillmayer/space3d"
)

// === Line ==================================================================

// DefaultLineDirection is the direction of a line created with a zero
// direction vector.
var DefaultLineDirection = space3d.V(1, 1, 1)

// Line is the straight curve origin + direction·t.
type Line struct {
	Parametric
	origin, direction space3d.Vector
}

var _ Curve = (*Line)(nil)

// NewLine creates a straight line. A null direction is replaced by
// DefaultLineDirection.
func NewLine(name string, origin, direction space3d.Vector, start, stop float64) *Line {
	if direction == (space3d.Vector{}) {
		direction = DefaultLineDirection
	}
	line := &Line{origin: origin, direction: direction}
	line.Parametric = Parametric{
		name:  name,
		kind:  KindLine,
		x:     Scalar(func(t float64) float64 { return origin[0] + direction[0]*t }),
		y:     Scalar(func(t float64) float64 { return origin[1] + direction[1]*t }),
		z:     Scalar(func(t float64) float64 { return origin[2] + direction[2]*t }),
		start: start,
		stop:  stop,
	}
	return line
}

// Origin returns the point of the line at t = 0.
func (line *Line) Origin() space3d.Vector {
	return line.origin
}

// Direction returns the direction vector of the line (not normalized).
func (line *Line) Direction() space3d.Vector {
	return line.direction
}

// AnalyticLength returns |direction|·|stop-start|.
func (line *Line) AnalyticLength() float64 {
	return line.direction.Len() * math.Abs(line.stop-line.start)
}

// === Arc ===================================================================

// Arc is an elliptic arc in the local xy-plane, centered at the origin:
//
//	x = a·cos t,  y = ±b·sin t,  z = 0
//
// with a ≥ b. A right arc winds counter-clockwise around +z.
type Arc struct {
	Parametric
	a, b  float64
	right bool
}

var _ Curve = (*Arc)(nil)

// NewArc creates an elliptic arc. The larger of a and b becomes the major
// semi-axis, which is put on the x-axis.
func NewArc(name string, a, b, start, stop float64, right bool) *Arc {
	a, b = max(a, b), min(a, b)
	dir := winding(right)
	arc := &Arc{a: a, b: b, right: right}
	arc.Parametric = Parametric{
		name:  name,
		kind:  KindArc,
		x:     Scalar(func(t float64) float64 { return a * math.Cos(t) }),
		y:     Scalar(func(t float64) float64 { return dir * b * math.Sin(t) }),
		z:     func(t []float64) []float64 { return make([]float64, len(t)) },
		start: start,
		stop:  stop,
	}
	return arc
}

// NewCircularArc creates an arc of a circle with the given radius.
func NewCircularArc(name string, radius, start, stop float64, right bool) *Arc {
	return NewArc(name, radius, radius, start, stop, right)
}

// A is the major semi-axis.
func (arc *Arc) A() float64 {
	return arc.a
}

// B is the minor semi-axis.
func (arc *Arc) B() float64 {
	return arc.b
}

// Right is a predicate: does the arc wind counter-clockwise around +z?
func (arc *Arc) Right() bool {
	return arc.right
}

// Eccentricity returns sqrt(1 - b²/a²); 0 for a circle.
func (arc *Arc) Eccentricity() float64 {
	if arc.a == 0 {
		return 0
	}
	return math.Sqrt((arc.a*arc.a - arc.b*arc.b) / (arc.a * arc.a))
}

// Focus returns the distance of the foci from the center.
func (arc *Arc) Focus() float64 {
	return arc.a * arc.Eccentricity()
}

// AnalyticLength returns the exact length for circular arcs. For ellipses
// there is no closed form and ok is false.
func (arc *Arc) AnalyticLength() (length float64, ok bool) {
	if arc.a != arc.b {
		return 0, false
	}
	return arc.a * math.Abs(arc.stop-arc.start), true
}

// === Helix =================================================================

// Helix is a circular helix around an axis parallel to z, starting at the
// local origin:
//
//	x = r - r·cos t,  y = ∓r·sin t,  z = pitch/2π · t
//
// A right helix winds counter-clockwise around +z.
type Helix struct {
	Parametric
	radius, pitch float64
	right         bool
}

var _ Curve = (*Helix)(nil)

// NewHelix creates a helix. pitch is the rise per full turn.
func NewHelix(name string, radius, pitch, start, stop float64, right bool) *Helix {
	dir := -winding(right)
	rise := pitch / space3d.TwoPi
	helix := &Helix{radius: radius, pitch: pitch, right: right}
	helix.Parametric = Parametric{
		name:  name,
		kind:  KindHelix,
		x:     Scalar(func(t float64) float64 { return radius - radius*math.Cos(t) }),
		y:     Scalar(func(t float64) float64 { return dir * radius * math.Sin(t) }),
		z:     Scalar(func(t float64) float64 { return rise * t }),
		start: start,
		stop:  stop,
	}
	return helix
}

// Radius of the helix.
func (helix *Helix) Radius() float64 {
	return helix.radius
}

// Pitch is the rise per full turn.
func (helix *Helix) Pitch() float64 {
	return helix.pitch
}

// Right is a predicate: does the helix wind counter-clockwise around +z?
func (helix *Helix) Right() bool {
	return helix.right
}

// AnalyticLength returns sqrt(r² + (pitch/2π)²)·|stop-start|.
func (helix *Helix) AnalyticLength() float64 {
	rise := helix.pitch / space3d.TwoPi
	return math.Hypot(helix.radius, rise) * math.Abs(helix.stop-helix.start)
}

func winding(right bool) float64 {
	if right {
		return 1
	}
	return -1
}

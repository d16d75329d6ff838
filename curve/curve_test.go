package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/space3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsetComponents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewParametric("x only", Scalar(func(t float64) float64 { return 2 * t }), nil, nil, 0, 1)
	require.NoError(t, err)
	ps := c.GeneratePoints([]float64{0, 0.5, 1})
	assert.Equal(t, space3d.PointSet{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, ps)
	assert.Equal(t, KindParametric, c.Kind())
	assert.Equal(t, "x only", c.Name())
}

func TestEquationCheck(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	short := func(t []float64) []float64 { return t[:2] }
	_, err := NewParametric("short", nil, short, nil, 0, 1)
	assert.True(t, errors.Is(err, space3d.ErrInvalidEquation))
	panicky := func(t []float64) []float64 { return []float64{t[7]} }
	_, err = NewParametric("panicky", nil, nil, panicky, 0, 1)
	assert.True(t, errors.Is(err, space3d.ErrInvalidEquation))
	//
	c, err := NewParametric("ok", nil, nil, nil, 0, 1)
	require.NoError(t, err)
	assert.Error(t, c.SetX(short))
	// the trial evaluation must not leak changes of its input
	mutating := func(t []float64) []float64 {
		t[0] = 99
		return t
	}
	require.NoError(t, c.SetX(mutating))
	require.NoError(t, c.SetY(mutating))
}

func TestComponentLengthMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// passes the shape check, but ignores the length of its input later on
	five := func(t []float64) []float64 { return []float64{1, 1, 1, 1, 1} }
	c, err := NewParametric("five", nil, five, nil, 0, 1)
	require.NoError(t, err)
	ps := c.GeneratePoints([]float64{0, 1, 2})
	assert.Equal(t, space3d.PointSet{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}}, ps)
	ps = c.GeneratePoints([]float64{0, 1, 2, 3, 4, 5, 6})
	require.Len(t, ps, 7)
	assert.Equal(t, space3d.V(0, 1, 0), ps[4])
	assert.Equal(t, space3d.V(0, 0, 0), ps[5])
	assert.Equal(t, space3d.V(0, 0, 0), ps[6])
}

func TestTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NewLine("line", space3d.V(1, 0, 0), space3d.V(0, 2, -1), 0, 1)
	tangents, err := line.Tangent([]float64{0, 0.25, 1, 3})
	require.NoError(t, err)
	require.Len(t, tangents, 3)
	for _, v := range tangents {
		assert.True(t, space3d.ApproxEqual(v, space3d.V(0, 2, -1), 1e-15))
	}
	_, err = line.Tangent([]float64{0, 1, 1, 2})
	assert.True(t, errors.Is(err, space3d.ErrDomain))
	tangents, err = line.Tangent([]float64{0})
	require.NoError(t, err)
	assert.Len(t, tangents, 0)
}

func TestHelixLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	helix := NewHelix("helix", 2, 0.5, 0, space3d.TwoPi, true)
	expected := math.Sqrt(4+math.Pow(0.5/space3d.TwoPi, 2)) * space3d.TwoPi
	assert.InDelta(t, expected, helix.AnalyticLength(), 1e-12)
	length, conv := helix.TotalLength(WithPrecision(1e-6))
	assert.True(t, conv.Converged)
	assert.LessOrEqual(t, conv.Error, 1e-6)
	assert.Less(t, conv.Iterations, 10)
	assert.InEpsilon(t, expected, length, 1e-6)
	t.Logf("helix length %.12f after %d iterations, error %g", length, conv.Iterations, conv.Error)
}

func TestLengthIterationCap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	helix := NewHelix("helix", 2, 0.5, 0, space3d.TwoPi, false)
	length, conv := helix.TotalLength(WithPrecision(1e-14), WithMaxIterations(2))
	assert.False(t, conv.Converged)
	assert.Equal(t, 2, conv.Iterations)
	assert.Greater(t, conv.Error, 1e-14)
	assert.InEpsilon(t, helix.AnalyticLength(), length, 1e-3)
}

func TestLengthSampleCap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer func(n int) { MaxSamples = n }(MaxSamples)
	MaxSamples = 1000
	// rounds of 101, 202, 404 and 808 samples, then doubling would pass the cap
	helix := NewHelix("helix", 2, 0.5, 0, space3d.TwoPi, true)
	length, conv := helix.TotalLength(WithPrecision(1e-15), WithMaxIterations(1000))
	assert.False(t, conv.Converged)
	assert.Equal(t, 4, conv.Iterations)
	assert.InEpsilon(t, helix.AnalyticLength(), length, 1e-4)
	// a wide range starts right at the cap instead of allocating
	// 100·|b-a|/2π samples
	line := NewLine("line", space3d.Origin, space3d.V(1, 0, 0), 0, 1e10)
	length, conv = line.TotalLength()
	assert.True(t, conv.Converged)
	assert.Equal(t, 1, conv.Iterations)
	assert.InEpsilon(t, 1e10, length, 1e-9)
}

func TestLengthOfLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NewLine("line", space3d.Origin, space3d.Vector{}, 0, 2)
	assert.Equal(t, DefaultLineDirection, line.Direction())
	length, conv := line.TotalLength()
	assert.True(t, conv.Converged)
	assert.Equal(t, 1, conv.Iterations)
	assert.InDelta(t, 2*math.Sqrt(3), length, 1e-12)
	assert.InDelta(t, line.AnalyticLength(), length, 1e-12)
	// reversed range
	length, conv = line.Length(2, 0)
	assert.True(t, conv.Converged)
	assert.InDelta(t, 2*math.Sqrt(3), length, 1e-12)
	// empty range
	length, conv = line.Length(1, 1)
	assert.True(t, conv.Converged)
	assert.Equal(t, 0.0, length)
}

func TestLengthOfPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewParametric("point", nil, nil, nil, 0, 10)
	require.NoError(t, err)
	length, conv := c.TotalLength()
	assert.Equal(t, 0.0, length)
	assert.True(t, conv.Converged)
	assert.Equal(t, 0.0, conv.Error)
}

func TestArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arc := NewArc("ellipse", 3, 5, 0, math.Pi/2, true)
	assert.Equal(t, 5.0, arc.A())
	assert.Equal(t, 3.0, arc.B())
	assert.InDelta(t, 0.8, arc.Eccentricity(), 1e-15)
	assert.InDelta(t, 4.0, arc.Focus(), 1e-14)
	_, ok := arc.AnalyticLength()
	assert.False(t, ok)
	ps := arc.GeneratePoints([]float64{0, math.Pi / 2})
	assert.True(t, space3d.ApproxEqual(ps[0], space3d.V(5, 0, 0), 1e-15))
	assert.True(t, space3d.ApproxEqual(ps[1], space3d.V(0, 3, 0), 1e-15))
	left := NewArc("left", 3, 5, 0, math.Pi/2, false)
	ps = left.GeneratePoints([]float64{math.Pi / 2})
	assert.True(t, space3d.ApproxEqual(ps[0], space3d.V(0, -3, 0), 1e-15))
	//
	circle := NewCircularArc("circle", 2, 0, math.Pi, true)
	assert.Equal(t, 0.0, circle.Eccentricity())
	exact, ok := circle.AnalyticLength()
	require.True(t, ok)
	length, conv := circle.TotalLength()
	assert.True(t, conv.Converged)
	assert.InEpsilon(t, exact, length, 1e-6)
}

func TestWinding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the z-component of (p(t)-center) × p'(t) is positive for
	// counter-clockwise motion
	ccw := func(c Curve, center space3d.Vector) bool {
		ps := c.GeneratePoints([]float64{0.3, 0.31})
		r := ps[0].Sub(center)
		d := ps[1].Sub(ps[0])
		return r.Cross(d)[2] > 0
	}
	assert.True(t, ccw(NewCircularArc("right arc", 1, 0, 1, true), space3d.Origin))
	assert.False(t, ccw(NewCircularArc("left arc", 1, 0, 1, false), space3d.Origin))
	assert.True(t, ccw(NewHelix("right helix", 1, 1, 0, 1, true), space3d.V(1, 0, 0)))
	assert.False(t, ccw(NewHelix("left helix", 1, 1, 0, 1, false), space3d.V(1, 0, 0)))
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curves := []Curve{
		NewLine("l", space3d.Origin, space3d.V(1, 0, 0), 0, 1),
		NewCircularArc("a", 1, 0, 1, true),
		NewHelix("h", 1, 1, 0, 1, true),
	}
	kinds := []Kind{KindLine, KindArc, KindHelix}
	for i, c := range curves {
		assert.Equal(t, kinds[i], c.Kind())
		assert.Equal(t, 0.0, c.Start())
		assert.Equal(t, 1.0, c.Stop())
	}
	assert.Equal(t, "helix", KindHelix.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

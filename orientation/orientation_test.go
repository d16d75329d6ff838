package orientation

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/space3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var zero Orientation
	assert.True(t, MatricesClose(zero.Matrix(), mgl64.Ident3(), 0))
	assert.Equal(t, "Bunge", zero.Convention().Name)
	assert.Equal(t, [3]float64{0, 0, 0}, zero.EulerAngles())
	o := Identity(Default())
	assert.True(t, o.Equal(zero, 0))
}

func TestBungeHalfTurnAroundX(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o, err := FromAxisAngle(space3d.V(1, 0, 0), math.Pi, MustLookup("Bunge"))
	require.NoError(t, err)
	angles := o.EulerAngles()
	assert.InDelta(t, 0.0, angles[0], 1e-12)
	assert.InDelta(t, math.Pi, angles[1], 1e-12)
	assert.InDelta(t, 0.0, angles[2], 1e-12)
}

func TestEulerAnglesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, conv := range DefaultRegistry().Conventions() {
		var in [3]float64
		if conv.IsProper() {
			in = [3]float64{0.3, 1.1, 2.5}
		} else {
			in = [3]float64{0.3, -0.7, 2.5}
		}
		if conv.Range == Positive {
			in[2] = 5.5
		} else {
			in[0] = -2.9
		}
		o := FromEulerAngles(in, conv)
		out := o.EulerAngles()
		for i := 0; i < 3; i++ {
			assert.InDelta(t, in[i], out[i], 1e-12, "%s: angle %d", conv.Name, i)
		}
		p := FromEulerAngles(out, conv)
		assert.True(t, o.Equal(p, 1e-12), conv.Name)
	}
}

func TestEulerAnglesRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	axes := []space3d.Vector{space3d.V(1, 2, 3), space3d.V(-1, 0, 1), space3d.V(0, -1, 0.2)}
	for _, conv := range DefaultRegistry().Conventions() {
		for _, axis := range axes {
			for _, theta := range []float64{-3, -1, 0.5, 2, 3.1} {
				o, err := FromAxisAngle(axis, theta, conv)
				require.NoError(t, err)
				angles := o.EulerAngles()
				switch conv.Range {
				case Positive:
					assert.True(t, angles[0] >= 0 && angles[0] < space3d.TwoPi, conv.Name)
					assert.True(t, angles[2] >= 0 && angles[2] < space3d.TwoPi, conv.Name)
				case Centered:
					assert.True(t, angles[0] > -math.Pi && angles[0] <= math.Pi, conv.Name)
					assert.True(t, angles[2] > -math.Pi && angles[2] <= math.Pi, conv.Name)
				}
				if conv.IsProper() {
					assert.True(t, angles[1] >= 0 && angles[1] <= math.Pi, conv.Name)
				} else {
					assert.True(t, math.Abs(angles[1]) <= math.Pi/2+1e-12, conv.Name)
				}
				back := FromEulerAngles(angles, conv)
				assert.True(t, o.Equal(back, 1e-12), "%s: axis %v, θ=%g", conv.Name, axis, theta)
			}
		}
	}
}

func TestGimbalLock(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bunge := MustLookup("Bunge")
	o := FromEulerAngles([3]float64{0.4, 0, 0.3}, bunge)
	angles := o.EulerAngles()
	assert.InDelta(t, 0.7, angles[0], 1e-12)
	assert.Equal(t, 0.0, angles[2])
	//
	ypr := MustLookup("Yaw-Pitch-Roll")
	o = FromEulerAngles([3]float64{0.4, math.Pi / 2, 0.3}, ypr)
	angles = o.EulerAngles()
	assert.InDelta(t, math.Pi/2, angles[1], 1e-7)
	assert.Equal(t, 0.0, angles[2])
	assert.True(t, o.Equal(FromEulerAngles(angles, ypr), 1e-7))
}

func TestComposeAndRotate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conv := Default()
	rz, _ := FromAxisAngle(space3d.V(0, 0, 1), math.Pi/2, conv)
	rx, _ := FromAxisAngle(space3d.V(1, 0, 0), math.Pi/2, conv)
	// local: rx turns about the rotated x-axis, which is parent y
	local := rz.Compose(rx)
	assert.True(t, space3d.ApproxEqual(local.Apply(space3d.V(0, 0, 1)), space3d.V(1, 0, 0), 1e-12))
	// parent: rx applied after rz, about parent x
	parent := rz
	parent.Rotate(rx)
	assert.True(t, space3d.ApproxEqual(parent.Apply(space3d.V(1, 0, 0)), space3d.V(0, 0, 1), 1e-12))
	rotated := rz
	rotated.RotateLocal(rx)
	assert.True(t, rotated.Equal(local, 1e-15))
	assert.False(t, local.Equal(parent, 1e-3))
}

func TestReciprocal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := FromEulerAngles([3]float64{0.2, 0.9, 4.0}, Default())
	id := o.Compose(o.Reciprocal())
	assert.True(t, id.Equal(Identity(Default()), 1e-15))
	v := space3d.V(1, -2, 3)
	assert.True(t, space3d.ApproxEqual(o.Reciprocal().Apply(o.Apply(v)), v, 1e-14))
}

func TestAxisAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o, err := FromAxisAngle(space3d.V(0, 3, 4), 2.0, Default())
	require.NoError(t, err)
	axis, theta := o.AxisAngle()
	assert.InDelta(t, 2.0, theta, 1e-12)
	assert.True(t, space3d.ApproxEqual(axis, space3d.V(0, 0.6, 0.8), 1e-12))
	//
	o, _ = FromAxisAngle(space3d.V(1, 0, 0), -1.0, Default())
	axis, theta = o.AxisAngle()
	assert.InDelta(t, 1.0, theta, 1e-12)
	assert.True(t, space3d.ApproxEqual(axis, space3d.V(-1, 0, 0), 1e-12))
	//
	_, err = FromAxisAngle(space3d.Origin, 1, Default())
	assert.True(t, errors.Is(err, space3d.ErrDomain))
	// axis length does not matter, however extreme
	for _, axis := range []space3d.Vector{space3d.V(0, 0, 1e300), space3d.V(0, 0, 1e-300)} {
		o, err = FromAxisAngle(axis, 1.0, Default())
		require.NoError(t, err)
		x := o.Apply(space3d.V(1, 0, 0))
		assert.True(t, space3d.ApproxEqual(x, space3d.V(math.Cos(1), math.Sin(1), 0), 1e-14), "%v", x)
	}
	_, err = FromAxisAngle(space3d.V(0, math.Inf(1), 0), 1, Default())
	assert.True(t, errors.Is(err, space3d.ErrDomain))
}

func TestRotateAxisAngleAccumulates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var o Orientation
	for i := 0; i < 4; i++ {
		require.NoError(t, o.RotateAxisAngle(space3d.V(1, 1, 0), math.Pi/2))
	}
	assert.True(t, o.Equal(Identity(Default()), 1e-14))
	o.RotateEulerAngles([3]float64{math.Pi, 0, 0})
	assert.True(t, space3d.ApproxEqual(o.Apply(space3d.V(1, 0, 0)), space3d.V(-1, 0, 0), 1e-14))
}

func TestSetMatrix(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := Identity(Default())
	m := mgl64.Rotate3DY(0.5)
	require.NoError(t, o.SetMatrix(m))
	assert.True(t, MatricesClose(o.Matrix(), m, 1e-14))
	//
	before := o.Quat()
	skewed := mgl64.Mat3{1, 0, 0, 0.1, 1, 0, 0, 0, 1}
	err := o.SetMatrix(skewed)
	assert.True(t, errors.Is(err, space3d.ErrInvalidBasis))
	leftHanded := mgl64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, -1}
	err = o.SetMatrix(leftHanded)
	assert.True(t, errors.Is(err, space3d.ErrInvalidBasis))
	scaled := mgl64.Mat3{2, 0, 0, 0, 1, 0, 0, 0, 1}
	err = o.SetMatrix(scaled)
	assert.True(t, errors.Is(err, space3d.ErrInvalidBasis))
	assert.Equal(t, before, o.Quat())
}

func TestFromQuat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o, err := FromQuat(mgl64.Quat{W: 2, V: mgl64.Vec3{0, 0, 0}}, Default())
	require.NoError(t, err)
	assert.True(t, o.Equal(Identity(Default()), 0))
	neg, _ := FromQuat(mgl64.Quat{W: -1, V: mgl64.Vec3{0, 0, 0}}, Default())
	assert.True(t, o.Equal(neg, 0))
	_, err = FromQuat(mgl64.Quat{}, Default())
	assert.True(t, errors.Is(err, space3d.ErrDomain))
}

func TestConventionChangeKeepsRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := FromEulerAngles([3]float64{0.1, 0.2, 0.3}, MustLookup("Cardan XYZ"))
	m := o.Matrix()
	o.SetConvention(MustLookup("Roe"))
	assert.True(t, MatricesClose(m, o.Matrix(), 0))
	assert.Equal(t, "Roe", o.Convention().Name)
	angles := o.EulerAngles()
	o.SetEulerAngles(angles)
	assert.True(t, MatricesClose(m, o.Matrix(), 1e-12))
	assert.Contains(t, o.String(), "Roe")
}

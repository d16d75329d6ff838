package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/space3d"
)

// GimbalTolerance is the threshold below which the sine (proper sequences)
// or cosine (Tait-Bryan sequences) of the second Euler angle is treated as
// zero. In gimbal lock the third angle is set to 0.
var GimbalTolerance = 1e-12

// angles closer than this to 0 are snapped to 0
const angleTolerance = 1e-15

var unitAxes = [3]space3d.Vector{
	space3d.V(1, 0, 0),
	space3d.V(0, 1, 0),
	space3d.V(0, 0, 1),
}

// eulerToQuat composes R_i(a) · R_j(b) · R_k(c).
func eulerToQuat(angles [3]float64, conv Convention) mgl64.Quat {
	i, j, k := conv.indices()
	q := mgl64.QuatRotate(angles[0], unitAxes[i]).
		Mul(mgl64.QuatRotate(angles[1], unitAxes[j])).
		Mul(mgl64.QuatRotate(angles[2], unitAxes[k]))
	return normalize(q)
}

// matrixToEuler decomposes a rotation matrix into Euler angles of conv.
//
// For a proper sequence (i,j,i) let l be the remaining axis and s the parity
// of (i,j,l). Then
//
//	M[i][i] = cos b,  M[j][i] = sin a sin b,  M[l][i] = -s cos a sin b,
//	M[i][j] = sin b sin c,  M[i][l] = s sin b cos c.
//
// For a Tait-Bryan sequence (i,j,k) with parity s
//
//	M[i][k] = s sin b,  M[j][k] = -s sin a cos b,  M[k][k] = cos a cos b,
//	M[i][j] = -s cos b sin c,  M[i][i] = cos b cos c.
func matrixToEuler(m mgl64.Mat3, conv Convention) [3]float64 {
	i, j, k := conv.indices()
	var a, b, c float64
	if i == k {
		l := 3 - i - j
		s := parity(i, j, l)
		sb := math.Hypot(m.At(i, j), m.At(i, l))
		b = math.Atan2(sb, m.At(i, i))
		if sb > GimbalTolerance {
			a = math.Atan2(m.At(j, i), -s*m.At(l, i))
			c = math.Atan2(m.At(i, j), s*m.At(i, l))
		} else {
			a = math.Atan2(s*m.At(l, j), m.At(j, j))
		}
	} else {
		s := parity(i, j, k)
		cb := math.Hypot(m.At(i, i), m.At(i, j))
		b = math.Atan2(s*m.At(i, k), cb)
		if cb > GimbalTolerance {
			a = math.Atan2(-s*m.At(j, k), m.At(k, k))
			c = math.Atan2(-s*m.At(i, j), m.At(i, i))
		} else {
			a = math.Atan2(m.At(j, i)*math.Sin(b), m.At(j, j))
		}
	}
	return [3]float64{
		applyRange(a, conv.Range),
		snap(b),
		applyRange(c, conv.Range),
	}
}

func snap(x float64) float64 {
	if math.Abs(x) < angleTolerance {
		return 0
	}
	return x
}

// applyRange maps an angle from [-π,π] into the range given by rp.
func applyRange(x float64, rp RangePolicy) float64 {
	x = snap(x)
	switch rp {
	case Positive:
		x = space3d.ReduceAngle(x, false)
		if x >= space3d.TwoPi-angleTolerance {
			x = 0
		}
	case Centered:
		if x <= -math.Pi {
			x += space3d.TwoPi
		}
	}
	return x
}

package orientation

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/space3d"
)

// Orientation is a rotation together with an Euler angles convention.
// The zero value is the identity rotation under the default convention.
type Orientation struct {
	q    mgl64.Quat // unit quaternion, zero value means identity
	conv Convention // zero value means Default()
}

// Identity creates the identity rotation.
func Identity(conv Convention) Orientation {
	return Orientation{q: mgl64.QuatIdent(), conv: conv}
}

// FromQuat creates an orientation from a quaternion, which will be
// normalized. A zero quaternion results in space3d.ErrDomain.
func FromQuat(q mgl64.Quat, conv Convention) (Orientation, error) {
	if q.Len() == 0 {
		return Orientation{}, fmt.Errorf("%w: zero quaternion", space3d.ErrDomain)
	}
	return Orientation{q: normalize(q), conv: conv}, nil
}

// FromAxisAngle creates a rotation by angle theta around axis, counter-clockwise
// when looking against the direction of axis.
func FromAxisAngle(axis space3d.Vector, theta float64, conv Convention) (Orientation, error) {
	u, err := space3d.UnitVector(axis)
	if err != nil {
		return Orientation{}, fmt.Errorf("rotation axis: %w", err)
	}
	return Orientation{q: normalize(mgl64.QuatRotate(theta, u)), conv: conv}, nil
}

// FromEulerAngles creates a rotation from three Euler angles, interpreted
// with respect to conv.
func FromEulerAngles(angles [3]float64, conv Convention) Orientation {
	return Orientation{q: eulerToQuat(angles, conv.withDefault()), conv: conv}
}

// FromMatrix creates a rotation from an orthonormal, right-handed 3×3 matrix.
// The columns of m are the rotated unit axes.
func FromMatrix(m mgl64.Mat3, conv Convention) (Orientation, error) {
	if err := ValidateRotation(m); err != nil {
		return Orientation{}, err
	}
	return Orientation{q: normalize(mgl64.Mat4ToQuat(m.Mat4())), conv: conv}, nil
}

// ValidateRotation checks that the columns of m are unit vectors, that the
// first two columns are orthogonal, and that col0 × col1 = col2.
func ValidateRotation(m mgl64.Mat3) error {
	for i := 0; i < 3; i++ {
		if l := m.Col(i).Len(); !space3d.Close(l, 1) {
			return fmt.Errorf("%w: axis %d has length %g", space3d.ErrInvalidBasis, i, l)
		}
	}
	if d := m.Col(0).Dot(m.Col(1)); math.Abs(d) > space3d.AbsTolerance {
		return fmt.Errorf("%w: only orthogonal vectors accepted, dot product is %g", space3d.ErrInvalidBasis, d)
	}
	if !space3d.AllClose(m.Col(0).Cross(m.Col(1)), m.Col(2)) {
		return fmt.Errorf("%w: only right-hand basis accepted", space3d.ErrInvalidBasis)
	}
	return nil
}

func normalize(q mgl64.Quat) mgl64.Quat {
	l := q.Len()
	return mgl64.Quat{W: q.W / l, V: q.V.Mul(1 / l)}
}

func (o Orientation) quat() mgl64.Quat {
	if o.q == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return o.q
}

func (c Convention) withDefault() Convention {
	if c.Name == "" {
		return Default()
	}
	return c
}

// Quat returns the rotation as a unit quaternion.
func (o Orientation) Quat() mgl64.Quat {
	return o.quat()
}

// Convention returns the Euler angles convention of o.
func (o Orientation) Convention() Convention {
	return o.conv.withDefault()
}

// SetConvention changes the convention. The rotation is unchanged.
func (o *Orientation) SetConvention(conv Convention) {
	o.conv = conv
}

// Matrix returns the rotation matrix. Its columns are the rotated unit axes.
func (o Orientation) Matrix() mgl64.Mat3 {
	return o.quat().Mat4().Mat3()
}

// SetMatrix replaces the rotation. m is validated first; o is unchanged
// if validation fails.
func (o *Orientation) SetMatrix(m mgl64.Mat3) error {
	r, err := FromMatrix(m, o.conv)
	if err != nil {
		return err
	}
	o.q = r.q
	return nil
}

// EulerAngles returns the rotation as Euler angles of o's convention.
func (o Orientation) EulerAngles() [3]float64 {
	return matrixToEuler(o.Matrix(), o.Convention())
}

// SetEulerAngles replaces the rotation.
func (o *Orientation) SetEulerAngles(angles [3]float64) {
	o.q = eulerToQuat(angles, o.Convention())
}

// AxisAngle returns the rotation as a unit axis and an angle within [0,π].
// The identity rotation reports the z-axis.
func (o Orientation) AxisAngle() (space3d.Vector, float64) {
	q := o.quat()
	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}
	s := q.V.Len()
	if s == 0 {
		return space3d.V(0, 0, 1), 0
	}
	return q.V.Mul(1 / s), 2 * math.Atan2(s, q.W)
}

// Compose returns the rotation o ⊗ r, i.e. r applied in the local frame of o.
// The result keeps the convention of o.
func (o Orientation) Compose(r Orientation) Orientation {
	return Orientation{q: normalize(o.quat().Mul(r.quat())), conv: o.conv}
}

// Reciprocal returns the inverse rotation.
func (o Orientation) Reciprocal() Orientation {
	return Orientation{q: o.quat().Conjugate(), conv: o.conv}
}

// Rotate applies r in the parent frame of o.
func (o *Orientation) Rotate(r Orientation) {
	rotated := r.Compose(*o)
	o.q = rotated.q
}

// RotateLocal applies r in the local frame of o.
func (o *Orientation) RotateLocal(r Orientation) {
	*o = o.Compose(r)
}

// RotateAxisAngle rotates o by theta around an axis of the parent frame.
func (o *Orientation) RotateAxisAngle(axis space3d.Vector, theta float64) error {
	r, err := FromAxisAngle(axis, theta, o.conv)
	if err != nil {
		return err
	}
	o.Rotate(r)
	return nil
}

// RotateEulerAngles rotates o by Euler angles of o's convention, given in
// the parent frame.
func (o *Orientation) RotateEulerAngles(angles [3]float64) {
	o.Rotate(FromEulerAngles(angles, o.conv))
}

// Apply rotates a vector.
func (o Orientation) Apply(v space3d.Vector) space3d.Vector {
	return o.quat().Rotate(v)
}

// Equal compares the rotation matrices of o and other with an absolute
// tolerance. Conventions are not compared.
func (o Orientation) Equal(other Orientation, tol float64) bool {
	return MatricesClose(o.Matrix(), other.Matrix(), tol)
}

// MatricesClose compares two matrices elementwise with an absolute tolerance.
func MatricesClose(a, b mgl64.Mat3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func (o Orientation) String() string {
	angles := o.EulerAngles()
	return fmt.Sprintf("%s: [%.6g %.6g %.6g]", o.Convention().Name, angles[0], angles[1], angles[2])
}

package coords

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/space3d"
	"github.com/npillmayer/space3d/orientation"
)

// Cartesian is a Cartesian coordinate system with a name, an origin and
// an orientation relative to its parent frame.
type Cartesian struct {
	name   string
	origin space3d.Vector
	orient orientation.Orientation
	labels [3]string
}

// DefaultLabels are the axis labels of a new coordinate system.
var DefaultLabels = [3]string{"x", "y", "z"}

// New creates a coordinate system with identity basis at the origin of
// its parent frame.
func New(name string, conv orientation.Convention) *Cartesian {
	return &Cartesian{
		name:   name,
		orient: orientation.Identity(conv),
		labels: DefaultLabels,
	}
}

// NewWithBasis creates a coordinate system from basis rows and an origin.
// See SetBasis and SetOrigin for the accepted input.
func NewWithBasis(name string, basis [][]float64, origin []float64, conv orientation.Convention) (*Cartesian, error) {
	c := New(name, conv)
	if err := c.SetBasis(basis); err != nil {
		return nil, err
	}
	if err := c.SetOrigin(origin); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the name of c.
func (c *Cartesian) Name() string {
	return c.name
}

// SetName renames c.
func (c *Cartesian) SetName(name string) {
	c.name = name
}

// Labels returns the axis labels.
func (c *Cartesian) Labels() [3]string {
	return c.labels
}

// SetLabels changes the axis labels.
func (c *Cartesian) SetLabels(x, y, z string) {
	c.labels = [3]string{x, y, z}
}

// --- Origin ----------------------------------------------------------------

// Origin returns the origin of c, expressed in the parent frame.
func (c *Cartesian) Origin() space3d.Vector {
	return c.origin
}

// SetOrigin moves c to a new origin. xs must hold exactly 3 coordinates,
// otherwise space3d.ErrShape is returned and c is unchanged.
func (c *Cartesian) SetOrigin(xs []float64) error {
	v, err := space3d.CheckPoint(xs)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	c.origin = v
	return nil
}

// SetOriginVector moves c to a new origin.
func (c *Cartesian) SetOriginVector(v space3d.Vector) {
	c.origin = v
}

// --- Basis -----------------------------------------------------------------

// Basis returns a matrix whose rows are the unit axes of c, expressed in
// the parent frame. It is the transpose of the orientation matrix.
func (c *Cartesian) Basis() mgl64.Mat3 {
	return c.orient.Matrix().Transpose()
}

// BasisRows returns the basis as a 3×3 array of rows.
func (c *Cartesian) BasisRows() [][]float64 {
	return space3d.PointSet{c.Axis(0), c.Axis(1), c.Axis(2)}.Rows()
}

// Axis returns unit axis i (0, 1 or 2) of c, expressed in the parent frame.
func (c *Cartesian) Axis(i int) space3d.Vector {
	return c.orient.Matrix().Col(i)
}

// SetBasis replaces the basis of c. b is a 3×3 array of rows or any other
// nesting holding 9 values in row order (otherwise space3d.ErrShape). Every
// row is normalized first; the rows must be mutually orthogonal and form a
// right-handed system, otherwise space3d.ErrInvalidBasis is returned.
// On error c is unchanged.
func (c *Cartesian) SetBasis(b [][]float64) error {
	flat := make([]float64, 0, 9)
	for _, row := range b {
		flat = append(flat, row...)
	}
	if len(flat) != 9 {
		return fmt.Errorf("%w: a basis needs 9 values, have %d", space3d.ErrShape, len(flat))
	}
	var rows [3]space3d.Vector
	for i := range rows {
		u, err := space3d.UnitVector(space3d.V(flat[3*i], flat[3*i+1], flat[3*i+2]))
		if err != nil {
			tracer().Debugf("basis row %d is a null-vector", i)
			return fmt.Errorf("%w: row %d: %w", space3d.ErrInvalidBasis, i, err)
		}
		rows[i] = u
	}
	return c.SetBasisMatrix(mgl64.Mat3FromRows(rows[0], rows[1], rows[2]))
}

// SetBasisMatrix replaces the basis of c. The rows of b are the new unit
// axes and must form an orthonormal right-handed system.
func (c *Cartesian) SetBasisMatrix(b mgl64.Mat3) error {
	if err := c.orient.SetMatrix(b.Transpose()); err != nil {
		tracer().Debugf("rejecting basis of %s: %v", c.name, err)
		return err
	}
	return nil
}

// Orientation returns the rotation of c relative to its parent frame.
func (c *Cartesian) Orientation() orientation.Orientation {
	return c.orient
}

// SetOrientation replaces the rotation of c.
func (c *Cartesian) SetOrientation(o orientation.Orientation) {
	c.orient = o
}

// Convention returns the Euler angles convention of c.
func (c *Cartesian) Convention() orientation.Convention {
	return c.orient.Convention()
}

// SetConvention changes the Euler angles convention of c. The basis is
// unchanged.
func (c *Cartesian) SetConvention(conv orientation.Convention) {
	c.orient.SetConvention(conv)
}

// EulerAngles returns the orientation of c as Euler angles.
func (c *Cartesian) EulerAngles() [3]float64 {
	return c.orient.EulerAngles()
}

// SetEulerAngles replaces the orientation of c.
func (c *Cartesian) SetEulerAngles(angles [3]float64) {
	c.orient.SetEulerAngles(angles)
}

// --- Rotations -------------------------------------------------------------

// RotateAxisAngle rotates c by theta around an axis given in the parent
// frame, passing through the origin of c.
func (c *Cartesian) RotateAxisAngle(axis space3d.Vector, theta float64) error {
	return c.RotateAxisAngleAround(axis, theta, c.origin)
}

// RotateAxisAngleAround rotates c by theta around an axis given in the
// parent frame, passing through center. The origin of c moves along.
func (c *Cartesian) RotateAxisAngleAround(axis space3d.Vector, theta float64, center space3d.Vector) error {
	r, err := orientation.FromAxisAngle(axis, theta, c.orient.Convention())
	if err != nil {
		return err
	}
	c.rotate(r, center)
	return nil
}

// RotateEulerAngles rotates c by Euler angles of its convention, given in
// the parent frame, around the origin of c.
func (c *Cartesian) RotateEulerAngles(angles [3]float64) {
	c.RotateEulerAnglesAround(angles, c.origin)
}

// RotateEulerAnglesAround rotates c by Euler angles of its convention,
// given in the parent frame, around center.
func (c *Cartesian) RotateEulerAnglesAround(angles [3]float64, center space3d.Vector) {
	c.rotate(orientation.FromEulerAngles(angles, c.orient.Convention()), center)
}

// RotateLocalAxisAngle rotates c by theta around one of its own axes
// (axis is given in local coordinates). The origin stays in place.
func (c *Cartesian) RotateLocalAxisAngle(axis space3d.Vector, theta float64) error {
	r, err := orientation.FromAxisAngle(axis, theta, c.orient.Convention())
	if err != nil {
		return err
	}
	c.orient.RotateLocal(r)
	return nil
}

func (c *Cartesian) rotate(r orientation.Orientation, center space3d.Vector) {
	o := c.orient
	o.Rotate(r)
	origin := center.Add(r.Apply(c.origin.Sub(center)))
	c.orient, c.origin = o, origin
}

// --- Transformations -------------------------------------------------------

// ToParent transforms a point from local coordinates to the parent frame.
func (c *Cartesian) ToParent(p space3d.Vector) space3d.Vector {
	return c.orient.Matrix().Mul3x1(p).Add(c.origin)
}

// ToLocal transforms a point from the parent frame to local coordinates.
func (c *Cartesian) ToLocal(x space3d.Vector) space3d.Vector {
	return c.Basis().Mul3x1(x.Sub(c.origin))
}

// ToParentPoints transforms every point of ps to the parent frame.
func (c *Cartesian) ToParentPoints(ps space3d.PointSet) space3d.PointSet {
	m := c.orient.Matrix()
	out := make(space3d.PointSet, len(ps))
	for i, p := range ps {
		out[i] = m.Mul3x1(p).Add(c.origin)
	}
	return out
}

// ToLocalPoints transforms every point of ps to local coordinates.
func (c *Cartesian) ToLocalPoints(ps space3d.PointSet) space3d.PointSet {
	b := c.Basis()
	out := make(space3d.PointSet, len(ps))
	for i, x := range ps {
		out[i] = b.Mul3x1(x.Sub(c.origin))
	}
	return out
}

// ToParentArray is like ToParentPoints for array-like input, see
// space3d.CheckPoints.
func (c *Cartesian) ToParentArray(rows [][]float64) (space3d.PointSet, error) {
	ps, err := space3d.CheckPoints(rows)
	if err != nil {
		return nil, err
	}
	return c.ToParentPoints(ps), nil
}

// ToLocalArray is like ToLocalPoints for array-like input, see
// space3d.CheckPoints.
func (c *Cartesian) ToLocalArray(rows [][]float64) (space3d.PointSet, error) {
	ps, err := space3d.CheckPoints(rows)
	if err != nil {
		return nil, err
	}
	return c.ToLocalPoints(ps), nil
}

// Transform returns the homogeneous 4×4 matrix mapping local coordinates
// to the parent frame.
func (c *Cartesian) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(c.origin[0], c.origin[1], c.origin[2]).Mul4(c.orient.Matrix().Mat4())
}

// --- Comparison and misc ---------------------------------------------------

// Equal is a predicate: do c and other have the same basis and origin?
// Components are compared with space3d.AllClose. Names, labels and
// conventions are not compared.
func (c *Cartesian) Equal(other *Cartesian) bool {
	for i := 0; i < 3; i++ {
		if !space3d.AllClose(c.Axis(i), other.Axis(i)) {
			return false
		}
	}
	return space3d.AllClose(c.origin, other.origin)
}

// EqualWithin compares basis and origin with an absolute tolerance.
func (c *Cartesian) EqualWithin(other *Cartesian, tol float64) bool {
	return orientation.MatricesClose(c.Basis(), other.Basis(), tol) &&
		space3d.ApproxEqual(c.origin, other.origin, tol)
}

// Clone returns an independent copy of c.
func (c *Cartesian) Clone() *Cartesian {
	clone := *c
	return &clone
}

func (c *Cartesian) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cartesian coordinate system %q\n", c.name)
	fmt.Fprintf(&b, "origin: (%g,%g,%g)\n", c.origin[0], c.origin[1], c.origin[2])
	for i, label := range c.labels {
		a := c.Axis(i)
		fmt.Fprintf(&b, "%s: [%g %g %g]\n", label, a[0], a[1], a[2])
	}
	angles := c.EulerAngles()
	fmt.Fprintf(&b, "Euler angles (%s): [%g %g %g]", c.Convention(), angles[0], angles[1], angles[2])
	return b.String()
}

package space3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// === Vector Data Type ======================================================

// Vector is an ordered triple of float64. It is an alias of mgl64.Vec3,
// so all of mathgl's vector operations are available.
type Vector = mgl64.Vec3

// Origin represents the frequently used constant (0,0,0).
var Origin = V(0, 0, 0)

// V is a quick notation for constructing a vector from floats.
func V(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// ZapVector rounds every component of v to Epsilon.
func ZapVector(v Vector) Vector {
	return V(Zap(v[0]), Zap(v[1]), Zap(v[2]))
}

// AllClose compares two vectors componentwise with AbsTolerance and
// RelTolerance (b is the reference).
func AllClose(a, b Vector) bool {
	return Close(a[0], b[0]) && Close(a[1], b[1]) && Close(a[2], b[2])
}

// ApproxEqual compares two vectors componentwise with an absolute tolerance.
func ApproxEqual(a, b Vector, tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// UnitVector returns v/|v|. A null-vector or a vector with a non-finite
// component results in ErrDomain.
//
// v is scaled by its largest absolute component first, so |v| neither
// overflows nor underflows for extreme magnitudes.
func UnitVector(v Vector) (Vector, error) {
	scale := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if scale == 0 {
		return Vector{}, fmt.Errorf("%w: cannot calculate unit vector for null-vector", ErrDomain)
	}
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Vector{}, fmt.Errorf("%w: cannot calculate unit vector for %v", ErrDomain, v)
	}
	w := Vector{v[0] / scale, v[1] / scale, v[2] / scale}
	return w.Mul(1 / w.Len()), nil
}

// MustUnitVector is like UnitVector but panics for null-vectors.
func MustUnitVector(v Vector) Vector {
	u, err := UnitVector(v)
	if err != nil {
		panic(err)
	}
	return u
}

// AngleBetween returns the angle between two vectors, within [0,π].
// If rounding pushes the dot product of the unit vectors out of [-1,1],
// the result is 0 for (numerically) equal directions and π otherwise.
func AngleBetween(v1, v2 Vector) (float64, error) {
	u1, err := UnitVector(v1)
	if err != nil {
		return 0, err
	}
	u2, err := UnitVector(v2)
	if err != nil {
		return 0, err
	}
	angle := math.Acos(u1.Dot(u2))
	if math.IsNaN(angle) {
		if AllClose(u1, u2) {
			return 0, nil
		}
		return math.Pi, nil
	}
	return angle, nil
}

// === Point Sets ============================================================

// PointSet is an ordered sequence of points (N×3, insertion order).
type PointSet []Vector

// CheckPoint converts a slice of exactly 3 values to a vector.
func CheckPoint(xs []float64) (Vector, error) {
	if len(xs) != 3 {
		return Vector{}, fmt.Errorf("%w: a point needs 3 coordinates, have %d", ErrShape, len(xs))
	}
	return V(xs[0], xs[1], xs[2]), nil
}

// CheckPoints normalizes array-like input to a point set. Accepted shapes
// are a single row of 3 values, N rows of 3 values, and 3 rows of N
// values (which will be transposed). Ragged input and every other shape
// results in ErrShape. A 3×3 input is taken to hold one point per row.
func CheckPoints(rows [][]float64) (PointSet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty point array", ErrShape)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged point array at row %d", ErrShape, i)
		}
	}
	switch {
	case cols == 3:
		ps := make(PointSet, len(rows))
		for i, row := range rows {
			ps[i] = V(row[0], row[1], row[2])
		}
		return ps, nil
	case len(rows) == 3 && cols > 0:
		ps := make(PointSet, cols)
		for i := 0; i < cols; i++ {
			ps[i] = V(rows[0][i], rows[1][i], rows[2][i])
		}
		return ps, nil
	}
	tracer().Debugf("rejecting point array of shape %d×%d", len(rows), cols)
	return nil, fmt.Errorf("%w: need a single point or an N×3 array, have %d×%d", ErrShape, len(rows), cols)
}

// Rows returns the point set as an N×3 array.
func (ps PointSet) Rows() [][]float64 {
	rows := make([][]float64, len(ps))
	for i, p := range ps {
		rows[i] = []float64{p[0], p[1], p[2]}
	}
	return rows
}

// Column returns coordinate i of every point.
func (ps PointSet) Column(i int) []float64 {
	col := make([]float64, len(ps))
	for j, p := range ps {
		col[j] = p[i]
	}
	return col
}

// Diff returns the N-1 differences between consecutive points.
func (ps PointSet) Diff() PointSet {
	if len(ps) < 2 {
		return PointSet{}
	}
	d := make(PointSet, len(ps)-1)
	for i := range d {
		d[i] = ps[i+1].Sub(ps[i])
	}
	return d
}

// Norms returns the length of every point interpreted as a vector.
func (ps PointSet) Norms() []float64 {
	n := make([]float64, len(ps))
	for i, p := range ps {
		n[i] = p.Len()
	}
	return n
}

// Equal compares two point sets with an absolute tolerance.
func (ps PointSet) Equal(other PointSet, tol float64) bool {
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !ApproxEqual(ps[i], other[i], tol) {
			return false
		}
	}
	return true
}

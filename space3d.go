/*
Package space3d implements vectors, point sets, angle arithmetic and
coordinate conversions for a small 3D spatial-geometry kernel.

Sub-packages build on it: package orientation represents rotations with
configurable Euler-angle conventions, package coords implements Cartesian
coordinate systems nested in a parent frame, package curve implements
parametric curves with numeric arc length, and package pathfinder connects
two points by a line, an arc or a helix.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package space3d

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'space3d'
func tracer() tracing.Trace {
	return tracing.Select("space3d")
}

// === Errors ================================================================

var (
	// ErrShape indicates point or array input not matching the N×3, 3×N or
	// length-3 contract.
	ErrShape = errors.New("invalid shape")
	// ErrInvalidBasis indicates a basis failing orthogonality,
	// right-handedness or completeness checks.
	ErrInvalidBasis = errors.New("invalid basis")
	// ErrDomain indicates degenerate numeric input, e.g. normalizing a
	// null-vector or an angle outside the domain of a conversion.
	ErrDomain = errors.New("argument out of domain")
	// ErrInvalidEquation indicates a parametric equation failing the
	// shape check.
	ErrInvalidEquation = errors.New("invalid parametric equation")
	// ErrGeometry indicates that two points cannot be connected by the
	// requested shape.
	ErrGeometry = errors.New("geometrically unreachable")
)

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// AbsTolerance and RelTolerance are used by AllClose and mirror the
// defaults of numpy's allclose.
var (
	AbsTolerance float64 = 1e-8
	RelTolerance float64 = 1e-5
)

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Close is a predicate: is |a-b| <= AbsTolerance + RelTolerance·|b| ?
func Close(a, b float64) bool {
	return math.Abs(a-b) <= AbsTolerance+RelTolerance*math.Abs(b)
}

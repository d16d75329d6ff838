/*
Package orientation represents rotations of 3D frames.

An Orientation keeps a unit quaternion as its only state. The rotation
matrix, Euler angles and axis-angle form are derived from it on demand.
Euler angles are interpreted with respect to a named Convention, which
defines the sequence of rotation axes and the numeric range of the
resulting angles. Conventions are read from a registry; the default
registry is initialized once from an embedded table and is read-only
afterwards.

Euler angles (a,b,c) of a convention with axes (i,j,k) denote the
intrinsic rotation

	M = R_i(a) · R_j(b) · R_k(c)

where the columns of M are the rotated unit axes.

Compose is the single primitive for combining rotations. o.Compose(r) applies
r in the local frame of o (right-multiplication); r.Compose(o) applies r in
the parent frame.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package orientation

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'space3d.orientation'
func tracer() tracing.Trace {
	return tracing.Select("space3d.orientation")
}

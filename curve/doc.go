/*
Package curve implements parametric curves in 3D.

A parametric curve is given by three vectorized component functions x(t),
y(t) and z(t) and a parameter range [start,stop]. Tangents are estimated
with forward differences. The arc length is estimated with two independent
quadratures, a trapezoidal integral of the tangent magnitude and the
length of the chord polygon, sampled ever denser until both agree.

Curves live in their own local frame and know nothing about coordinate
systems; package pathfinder combines both.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'space3d.curve'
func tracer() tracing.Trace {
	return tracing.Select("space3d.curve")
}

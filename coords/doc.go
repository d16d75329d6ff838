/*
Package coords implements Cartesian coordinate systems nested in a parent
frame.

A coordinate system is an origin, expressed in the parent frame, and an
orthonormal right-handed basis. The basis is kept as an orientation; the
rows of Basis() are the unit axes of the system, expressed in the parent
frame:

	to_parent(p) = p · basis + origin
	to_local(x)  = (x - origin) · basisᵀ

A Cartesian is not safe for concurrent mutation. Callers sharing a system
between goroutines have to synchronize writes themselves.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coords

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'space3d.coords'
func tracer() tracing.Trace {
	return tracing.Select("space3d.coords")
}

/*
Package pathfinder connects two points of a coordinate system by a curve.

Each builder creates a new coordinate system, a sibling of the given one
(same parent frame), whose origin and orientation are chosen such that a
canonical curve in its local frame runs from the first point to the
second: a line along the local x-axis, a helix around the local z-axis,
or a circular arc in the local xy-plane around the local origin.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathfinder

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/space3d"
	"github.com/npillmayer/space3d/coords"
	"github.com/npillmayer/space3d/curve"
)

// tracer writes to trace with key 'space3d.pathfinder'
func tracer() tracing.Trace {
	return tracing.Select("space3d.pathfinder")
}

// Path is a curve together with the coordinate system it lives in.
type Path struct {
	Frame *coords.Cartesian
	Curve curve.Curve
}

// Points evaluates the curve and transforms the points to the parent frame
// of Frame.
func (p Path) Points(t []float64) space3d.PointSet {
	return p.Frame.ToParentPoints(p.Curve.GeneratePoints(t))
}

// Endpoints returns the points at Start() and Stop() in the parent frame
// of Frame.
func (p Path) Endpoints() (space3d.Vector, space3d.Vector) {
	ps := p.Points([]float64{p.Curve.Start(), p.Curve.Stop()})
	return ps[0], ps[1]
}

// Length is the total length of the curve.
func (p Path) Length(opts ...curve.Option) (float64, curve.Convergence) {
	return p.Curve.TotalLength(opts...)
}

// LineBetweenTwoPoints connects two points of cs, given in local
// coordinates of cs, by a straight line. The line runs along the x-axis of
// the path frame from t = 0 to t = |p2-p1|.
func LineBetweenTwoPoints(cs *coords.Cartesian, p1, p2 space3d.Vector) (Path, error) {
	frame, distance, err := alignedFrame(cs, p1, p2, "Line path coordinate system", -math.Pi/2)
	if err != nil {
		return Path{}, err
	}
	line := curve.NewLine("Line path", space3d.Origin, space3d.V(1, 0, 0), 0, distance)
	return Path{Frame: frame, Curve: line}, nil
}

// HelixBetweenTwoPoints connects two points of cs, given in local
// coordinates of cs, by a helix of the given radius with a whole number of
// loops. The helix axis is the z-axis of the path frame.
func HelixBetweenTwoPoints(cs *coords.Cartesian, p1, p2 space3d.Vector, radius float64, loops int, right bool) (Path, error) {
	if loops < 1 {
		return Path{}, fmt.Errorf("%w: a helix needs at least one loop, have %d", space3d.ErrGeometry, loops)
	}
	if radius < 0 {
		return Path{}, fmt.Errorf("%w: negative helix radius %g", space3d.ErrGeometry, radius)
	}
	frame, distance, err := alignedFrame(cs, p1, p2, "Helix coordinate system", 0)
	if err != nil {
		return Path{}, err
	}
	name := "Left Helix"
	if right {
		name = "Right Helix"
	}
	n := float64(loops)
	helix := curve.NewHelix(name, radius, distance/n, 0, space3d.TwoPi*n, right)
	return Path{Frame: frame, Curve: helix}, nil
}

// ArcBetweenTwoPoints connects two points of cs, given in local
// coordinates of cs, by the shorter arc of a circle with the given radius.
// The circle is centered at the origin of the path frame and lies in its
// xy-plane. A right arc winds counter-clockwise around the frame's z-axis.
//
// If the radius is less than half the distance of the points,
// space3d.ErrGeometry is returned.
func ArcBetweenTwoPoints(cs *coords.Cartesian, p1, p2 space3d.Vector, radius float64, right bool) (Path, error) {
	frame, distance, err := alignedFrame(cs, p1, p2, "Arc coordinate system", math.Pi/2)
	if err != nil {
		return Path{}, err
	}
	if radius < distance/2 {
		return Path{}, fmt.Errorf("%w: requested radius too small to connect the two points (radius %g, distance %g)",
			space3d.ErrGeometry, radius, distance)
	}
	// p2 is on the negative x-axis of the aligned frame
	xOffset := -distance / 2
	yOffset := math.Sqrt(max(0, radius*radius-xOffset*xOffset))
	if right {
		yOffset = -yOffset
	}
	frame.SetOriginVector(frame.ToParent(space3d.V(xOffset, yOffset, 0)))
	start := arcParameter(frame, cs.ToParent(p1), right)
	stop := arcParameter(frame, cs.ToParent(p2), right)
	tracer().Debugf("arc of radius %g from t=%g to t=%g", radius, start, stop)
	arc := curve.NewCircularArc("Arc", radius, start, stop, right)
	return Path{Frame: frame, Curve: arc}, nil
}

// alignedFrame creates a sibling of cs with origin at p1, rotated by the
// azimuth of p2-p1 around z and then by its polar angle plus yOffset
// around the new y-axis.
func alignedFrame(cs *coords.Cartesian, p1, p2 space3d.Vector, name string, yOffset float64) (*coords.Cartesian, float64, error) {
	direction := p2.Sub(p1)
	rtp := space3d.CartesianToSpherical(direction)
	if rtp[0] == 0 {
		return nil, 0, fmt.Errorf("%w: cannot connect coincident points", space3d.ErrGeometry)
	}
	frame := cs.Clone()
	frame.SetName(name)
	frame.SetOriginVector(cs.ToParent(p1))
	if err := frame.RotateLocalAxisAngle(space3d.V(0, 0, 1), rtp[2]); err != nil {
		return nil, 0, err
	}
	if err := frame.RotateLocalAxisAngle(space3d.V(0, 1, 0), rtp[1]+yOffset); err != nil {
		return nil, 0, err
	}
	tracer().Debugf("%s: origin %v, distance %g", name, frame.Origin(), rtp[0])
	return frame, rtp[0], nil
}

// full turns are snapped to 0 within this tolerance
const turnTolerance = 1e-12

// arcParameter returns the curve parameter of a point x, given in the
// parent frame, on an arc around the origin of frame.
func arcParameter(frame *coords.Cartesian, x space3d.Vector, right bool) float64 {
	phi := snapTurn(space3d.CartesianToSpherical(frame.ToLocal(x))[2])
	if !right {
		phi = snapTurn(space3d.TwoPi - phi)
	}
	return phi
}

func snapTurn(phi float64) float64 {
	if math.Abs(phi-space3d.TwoPi) < turnTolerance {
		return 0
	}
	return phi
}

package space3d

import (
	"fmt"
	"math"
)

// Spherical coordinates are given as (r,θ,φ), with θ ∈ [0,π] the polar angle
// measured from +z and φ ∈ [0,2π] the azimuth. Cylindrical coordinates are
// given as (ρ,φ,z).

// CartesianToSpherical converts a point to spherical coordinates (r,θ,φ).
func CartesianToSpherical(xyz Vector) Vector {
	xy := xyz[0]*xyz[0] + xyz[1]*xyz[1]
	r := math.Sqrt(xy + xyz[2]*xyz[2])
	theta := math.Atan2(math.Sqrt(xy), xyz[2])
	phi := ReduceAngle(math.Atan2(xyz[1], xyz[0]), false)
	return V(r, theta, phi)
}

// SphericalToCartesian converts spherical coordinates (r,θ,φ) to a point.
// φ is reduced first. Negative r, θ outside [0,π] or φ > 2π result in
// ErrDomain.
func SphericalToCartesian(rtp Vector) (Vector, error) {
	r, theta := rtp[0], rtp[1]
	phi := ReduceAngle(rtp[2], false)
	if r < 0 || theta < 0 || theta > math.Pi || phi > TwoPi {
		return Vector{}, fmt.Errorf("%w: r must be >= 0, θ within [0,π], φ within [0,2π], have (%g,%g,%g)",
			ErrDomain, r, theta, phi)
	}
	xy := r * math.Sin(theta)
	return V(xy*math.Cos(phi), xy*math.Sin(phi), r*math.Cos(theta)), nil
}

// CartesianToCylindrical converts a point to cylindrical coordinates (ρ,φ,z).
// φ is the plain atan2 value, within [-π,π].
func CartesianToCylindrical(xyz Vector) Vector {
	rho := math.Sqrt(xyz[0]*xyz[0] + xyz[1]*xyz[1])
	return V(rho, math.Atan2(xyz[1], xyz[0]), xyz[2])
}

// CylindricalToCartesian converts cylindrical coordinates (ρ,φ,z) to a point.
// φ is reduced first. Negative ρ results in ErrDomain.
func CylindricalToCartesian(rpz Vector) (Vector, error) {
	rho := rpz[0]
	phi := ReduceAngle(rpz[1], false)
	if rho < 0 || phi > TwoPi {
		return Vector{}, fmt.Errorf("%w: ρ must be >= 0, φ within [0,2π], have (%g,%g)",
			ErrDomain, rho, phi)
	}
	return V(rho*math.Cos(phi), rho*math.Sin(phi), rpz[2]), nil
}

// SphericalToCylindrical converts (r,θ,φ) to (ρ,φ,z).
func SphericalToCylindrical(rtp Vector) (Vector, error) {
	xyz, err := SphericalToCartesian(rtp)
	if err != nil {
		return Vector{}, err
	}
	return CartesianToCylindrical(xyz), nil
}

// CylindricalToSpherical converts (ρ,φ,z) to (r,θ,φ).
func CylindricalToSpherical(rpz Vector) (Vector, error) {
	xyz, err := CylindricalToCartesian(rpz)
	if err != nil {
		return Vector{}, err
	}
	return CartesianToSpherical(xyz), nil
}

// --- Batched forms ---------------------------------------------------------

// CartesianToSphericalPoints converts every point of ps.
func CartesianToSphericalPoints(ps PointSet) PointSet {
	return mapPoints(ps, CartesianToSpherical)
}

// CartesianToCylindricalPoints converts every point of ps.
func CartesianToCylindricalPoints(ps PointSet) PointSet {
	return mapPoints(ps, CartesianToCylindrical)
}

// SphericalToCartesianPoints converts every point of ps. It fails on the
// first point out of domain.
func SphericalToCartesianPoints(ps PointSet) (PointSet, error) {
	return mapPointsErr(ps, SphericalToCartesian)
}

// CylindricalToCartesianPoints converts every point of ps. It fails on the
// first point out of domain.
func CylindricalToCartesianPoints(ps PointSet) (PointSet, error) {
	return mapPointsErr(ps, CylindricalToCartesian)
}

// SphericalToCylindricalPoints converts every point of ps.
func SphericalToCylindricalPoints(ps PointSet) (PointSet, error) {
	return mapPointsErr(ps, SphericalToCylindrical)
}

// CylindricalToSphericalPoints converts every point of ps.
func CylindricalToSphericalPoints(ps PointSet) (PointSet, error) {
	return mapPointsErr(ps, CylindricalToSpherical)
}

func mapPoints(ps PointSet, f func(Vector) Vector) PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = f(p)
	}
	return out
}

func mapPointsErr(ps PointSet, f func(Vector) (Vector, error)) (PointSet, error) {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		q, err := f(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = q
	}
	return out, nil
}

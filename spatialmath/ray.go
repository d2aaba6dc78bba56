package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Rejects rays parallel to the triangle plane and tolerates hits on edges shared by
// adjacent triangles.
const rayEpsilon = 1e-8

// RayTriangle computes the distance along the ray at which it intersects the triangle,
// using the Moller-Trumbore algorithm. The direction must be unit length for the
// returned value to be a cartesian distance. Both windings register hits; intersections
// behind the origin do not.
func RayTriangle(origin, dir r3.Vector, t *Triangle) (float64, bool) {
	e0 := t.p1.Sub(t.p0)
	e1 := t.p2.Sub(t.p0)
	pvec := dir.Cross(e1)
	det := e0.Dot(pvec)
	if math.Abs(det) < rayEpsilon {
		return 0, false
	}
	invDet := 1. / det
	tvec := origin.Sub(t.p0)
	u := tvec.Dot(pvec) * invDet
	if u < -rayEpsilon || u > 1+rayEpsilon {
		return 0, false
	}
	qvec := tvec.Cross(e0)
	v := dir.Dot(qvec) * invDet
	if v < -rayEpsilon || u+v > 1+rayEpsilon {
		return 0, false
	}
	dist := e1.Dot(qvec) * invDet
	if dist < 0 {
		return 0, false
	}
	return dist, true
}

// RayAABB computes the parametric interval [tmin, tmax] along the ray inside the box
// using the slab method. A ray beginning inside the box reports tmin = 0.
func RayAABB(origin, dir r3.Vector, b AABB) (float64, float64, bool) {
	tmin, tmax := 0., math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		var o, d, lo, hi float64
		switch axis {
		case 0:
			o, d, lo, hi = origin.X, dir.X, b.Min.X, b.Max.X
		case 1:
			o, d, lo, hi = origin.Y, dir.Y, b.Min.Y, b.Max.Y
		default:
			o, d, lo, hi = origin.Z, dir.Z, b.Min.Z, b.Max.Z
		}
		if math.Abs(d) < rayEpsilon {
			// Parallel to this slab; miss unless the origin lies within it.
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		inv := 1. / d
		t0, t1 := (lo-o)*inv, (hi-o)*inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}

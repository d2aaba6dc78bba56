package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Used for filtering out near-parallel axes and near-zero denominators.
const floatEpsilon = 1e-6

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise
// differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

// PlaneNormal returns the plane normal of the plane formed by three points, following the
// right hand rule on the winding p0 -> p1 -> p2. Degenerate windings produce the zero
// vector.
func PlaneNormal(p0, p1, p2 r3.Vector) r3.Vector {
	cross := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm := cross.Norm(); norm > floatEpsilon*floatEpsilon {
		return cross.Mul(1. / norm)
	}
	return r3.Vector{}
}

package spatialmath

import (
	"github.com/golang/geo/r3"
)

// CapsuleTriangleSweep computes the normalized time of impact in [0, 1] at which the
// capsule, translated along delta, first comes within contactEpsilon of touching the
// triangle. The returned point is the point on the capsule's core segment closest to
// the triangle at the time of impact.
//
// The time is found by conservative advancement: the capsule everywhere moves at
// |delta| per unit time, so the surface gap can close no faster than that, and
// advancing time by gap/|delta| can never skip past first contact. Iteration stops
// when the gap falls below contactEpsilon. Near-tangent motions whose gap never
// closes within the iteration budget report no hit; callers that need those contacts
// must re-test discretely at the end pose.
//
// A zero-length delta reports no hit; callers resolve stationary overlap with the
// discrete contact test instead.
func CapsuleTriangleSweep(c Capsule, delta r3.Vector, t *Triangle, contactEpsilon float64, maxIterations int) (float64, r3.Vector, bool) {
	moveLen := delta.Norm()
	if moveLen < floatEpsilon {
		return 0, r3.Vector{}, false
	}

	segPt, triPt := closestPointsSegmentTriangle(c.SegA, c.SegB, t)
	gap := segPt.Sub(triPt).Norm() - c.Radius
	if gap <= contactEpsilon {
		return 0, segPt, true
	}

	toi := 0.
	for i := 0; i < maxIterations; i++ {
		toi += gap / moveLen
		if toi > 1 {
			return 0, r3.Vector{}, false
		}
		moved := c.Translated(delta.Mul(toi))
		segPt, triPt = closestPointsSegmentTriangle(moved.SegA, moved.SegB, t)
		gap = segPt.Sub(triPt).Norm() - c.Radius
		if gap <= contactEpsilon {
			return toi, segPt, true
		}
	}
	return 0, r3.Vector{}, false
}

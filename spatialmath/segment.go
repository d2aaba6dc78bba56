package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/utils"
)

// ClosestPointSegmentPoint takes a line segment defined by pt1 and pt2, plus some query
// point, and returns the point on the segment closest to the query point.
func ClosestPointSegmentPoint(pt1, pt2, query r3.Vector) r3.Vector {
	ab := pt2.Sub(pt1)
	t := query.Sub(pt1).Dot(ab)
	denom := ab.Norm2()
	if denom < floatEpsilon*floatEpsilon || t <= 0 {
		return pt1
	}
	if t >= denom {
		return pt2
	}
	return pt1.Add(ab.Mul(t / denom))
}

// DistToLineSegment takes a line segment defined by pt1 and pt2, plus some query point,
// and returns the cartesian distance from the query point to the closest point on the
// segment.
func DistToLineSegment(pt1, pt2, query r3.Vector) float64 {
	return query.Sub(ClosestPointSegmentPoint(pt1, pt2, query)).Norm()
}

// ClosestPointsSegmentSegment takes two line segments (ap1, ap2) and (bp1, bp2) and
// returns the closest point on each segment to the other. Degenerate segments are
// handled as points.
func ClosestPointsSegmentSegment(ap1, ap2, bp1, bp2 r3.Vector) (r3.Vector, r3.Vector) {
	d1 := ap2.Sub(ap1)
	d2 := bp2.Sub(bp1)
	r := ap1.Sub(bp1)
	a := d1.Norm2()
	e := d2.Norm2()
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a <= floatEpsilon && e <= floatEpsilon:
		// Both segments are points.
	case a <= floatEpsilon:
		t = utils.Clamp(f/e, 0, 1)
	case e <= floatEpsilon:
		c := d1.Dot(r)
		s = utils.Clamp(-c/a, 0, 1)
	default:
		c := d1.Dot(r)
		b := d1.Dot(d2)
		denom := a*e - b*b
		// A zero denominator means the segments are parallel; pick the start of the
		// first segment and close the other onto it.
		if denom > floatEpsilon {
			s = utils.Clamp((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = utils.Clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = utils.Clamp((b-c)/a, 0, 1)
		}
	}
	return ap1.Add(d1.Mul(s)), bp1.Add(d2.Mul(t))
}

// SegmentDistanceToSegment returns the cartesian distance between the closest points of
// two line segments.
func SegmentDistanceToSegment(ap1, ap2, bp1, bp2 r3.Vector) float64 {
	aPt, bPt := ClosestPointsSegmentSegment(ap1, ap2, bp1, bp2)
	return aPt.Sub(bPt).Norm()
}

// closestPointsSegmentTriangle takes a line segment and a triangle, and returns the
// closest point on each to the other. If the segment passes through the triangle the
// two returned points are both the crossing point.
func closestPointsSegmentTriangle(ap1, ap2 r3.Vector, t *Triangle) (segPt, triPt r3.Vector) {
	if pt, ok := segmentTrianglePlaneCrossing(ap1, ap2, t); ok {
		return pt, pt
	}

	// The closest pair involves an edge or an endpoint: test the segment against each
	// triangle edge, and each segment endpoint against the triangle face.
	bestDist := math.Inf(1)
	pts := t.Points()
	for i := 0; i < 3; i++ {
		sPt, edgePt := ClosestPointsSegmentSegment(ap1, ap2, pts[i], pts[(i+1)%3])
		if distsq := sPt.Sub(edgePt).Norm2(); distsq < bestDist {
			bestDist = distsq
			segPt, triPt = sPt, edgePt
		}
	}
	for _, endPt := range []r3.Vector{ap1, ap2} {
		facePt := t.ClosestPointToPoint(endPt)
		if distsq := endPt.Sub(facePt).Norm2(); distsq < bestDist {
			bestDist = distsq
			segPt, triPt = endPt, facePt
		}
	}
	return segPt, triPt
}

// segmentTrianglePlaneCrossing returns the point at which the segment crosses the
// triangle's plane if that point lies within the triangle.
func segmentTrianglePlaneCrossing(ap1, ap2 r3.Vector, t *Triangle) (r3.Vector, bool) {
	n := t.Normal()
	if n.Norm2() < floatEpsilon*floatEpsilon {
		return r3.Vector{}, false
	}
	d0 := n.Dot(ap1.Sub(t.p0))
	d1 := n.Dot(ap2.Sub(t.p0))
	if d0*d1 > 0 {
		return r3.Vector{}, false
	}
	denom := d0 - d1
	// A near-zero denominator means the segment lies in the plane; the edge and
	// endpoint checks cover that case.
	if math.Abs(denom) < floatEpsilon {
		return r3.Vector{}, false
	}
	crossing := ap1.Add(ap2.Sub(ap1).Mul(d0 / denom))
	if pt, inside := t.ClosestInsidePoint(crossing); inside {
		return pt, true
	}
	return r3.Vector{}, false
}

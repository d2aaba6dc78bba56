package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// TriangleAABBOverlap reports whether the triangle and the AABB overlap, testing the
// separating axis theorem over the box's three face normals, the triangle's plane
// normal, and the nine edge cross-product axes. Touching counts as overlap.
func TriangleAABBOverlap(t *Triangle, b AABB) bool {
	center := b.Center()
	half := b.HalfSize()

	// Work in the box's frame so projections onto its face normals are just
	// coordinate comparisons.
	v0 := t.p0.Sub(center)
	v1 := t.p1.Sub(center)
	v2 := t.p2.Sub(center)

	// Box face normals.
	if math.Min(v0.X, math.Min(v1.X, v2.X)) > half.X || math.Max(v0.X, math.Max(v1.X, v2.X)) < -half.X {
		return false
	}
	if math.Min(v0.Y, math.Min(v1.Y, v2.Y)) > half.Y || math.Max(v0.Y, math.Max(v1.Y, v2.Y)) < -half.Y {
		return false
	}
	if math.Min(v0.Z, math.Min(v1.Z, v2.Z)) > half.Z || math.Max(v0.Z, math.Max(v1.Z, v2.Z)) < -half.Z {
		return false
	}

	// Triangle plane. Degenerate triangles have a zero normal, which projects
	// everything to zero and separates nothing, so no special case is needed.
	if separatedOnAxis(t.normal, v0, v1, v2, half) {
		return false
	}

	// The nine cross products of box axes and triangle edges.
	boxAxes := [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	edges := [3]r3.Vector{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}
	for _, axis := range boxAxes {
		for _, edge := range edges {
			cross := axis.Cross(edge)
			// Parallel axis and edge; covered by one of the face projections.
			if cross.Norm2() < floatEpsilon*floatEpsilon {
				continue
			}
			if separatedOnAxis(cross, v0, v1, v2, half) {
				return false
			}
		}
	}
	return true
}

// separatedOnAxis projects box-frame triangle vertices and the box onto the axis and
// reports whether the projections are disjoint.
func separatedOnAxis(axis, v0, v1, v2, half r3.Vector) bool {
	p0 := axis.Dot(v0)
	p1 := axis.Dot(v1)
	p2 := axis.Dot(v2)
	boxRadius := half.X*math.Abs(axis.X) + half.Y*math.Abs(axis.Y) + half.Z*math.Abs(axis.Z)
	return math.Min(p0, math.Min(p1, p2)) > boxRadius || math.Max(p0, math.Max(p1, p2)) < -boxRadius
}

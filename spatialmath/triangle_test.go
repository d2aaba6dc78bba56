package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestBasicTriangleFunctions(t *testing.T) {
	expectedPts := []r3.Vector{{0, 0, 0}, {3, 0, 0}, {0, 3, 0}}
	tri := NewTriangle(expectedPts[0], expectedPts[1], expectedPts[2])

	expectedNormal := r3.Vector{0, 0, 1}
	expectedArea := 4.5
	expectedCentroid := r3.Vector{1, 1, 0}

	t.Run("constructor", func(t *testing.T) {
		test.That(t, tri.Points(), test.ShouldResemble, expectedPts)
		// the cross product of the normal with what is expected should result in nothing
		test.That(t, tri.Normal().Cross(expectedNormal), test.ShouldResemble, r3.Vector{})
	})

	t.Run("area", func(t *testing.T) {
		test.That(t, tri.Area(), test.ShouldEqual, expectedArea)
	})

	t.Run("centroid", func(t *testing.T) {
		test.That(t, tri.Centroid(), test.ShouldResemble, expectedCentroid)
	})

	t.Run("bounds", func(t *testing.T) {
		bounds := tri.Bounds()
		test.That(t, bounds.Min, test.ShouldResemble, r3.Vector{0, 0, 0})
		test.That(t, bounds.Max, test.ShouldResemble, r3.Vector{3, 3, 0})
	})

	t.Run("degenerate", func(t *testing.T) {
		test.That(t, tri.Degenerate(1e-9), test.ShouldBeFalse)
		sliver := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{1, 1, 1}, r3.Vector{2, 2, 2})
		test.That(t, sliver.Degenerate(1e-9), test.ShouldBeTrue)
		test.That(t, sliver.Normal(), test.ShouldResemble, r3.Vector{})
	})

	t.Run("closest triangle inside point", func(t *testing.T) {
		// interior
		closestPoint, isInside := tri.ClosestInsidePoint(r3.Vector{1, 1, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{1, 1, 0}, 1e-9), test.ShouldBeTrue)
		test.That(t, isInside, test.ShouldBeTrue)

		// above edge
		closestPoint, isInside = tri.ClosestInsidePoint(r3.Vector{2, 0, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{2, 0, 0}, 1e-9), test.ShouldBeTrue)
		test.That(t, isInside, test.ShouldBeTrue)

		// above vertex
		closestPoint, isInside = tri.ClosestInsidePoint(r3.Vector{3, 0, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{3, 0, 0}, 1e-9), test.ShouldBeTrue)
		test.That(t, isInside, test.ShouldBeTrue)

		// outside (obtuse with triangle)
		_, isInside = tri.ClosestInsidePoint(r3.Vector{1, -1, 1})
		test.That(t, isInside, test.ShouldBeFalse)

		// outside (straight with triangle)
		_, isInside = tri.ClosestInsidePoint(r3.Vector{0, 4, 0})
		test.That(t, isInside, test.ShouldBeFalse)

		// interior, testing a triangle rotated off the xy-plane
		rotatedTri := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{50, 0, 0}, r3.Vector{0, 30, 40})
		closestPoint, isInside = rotatedTri.ClosestInsidePoint(r3.Vector{1, 3 + 4, 4 - 3})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{1, 3, 4}, 1e-9), test.ShouldBeTrue)
		test.That(t, isInside, test.ShouldBeTrue)
	})

	t.Run("closest triangle point", func(t *testing.T) {
		// double check on interior point
		closestPoint := tri.ClosestPointToPoint(r3.Vector{1, 1, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{1, 1, 0}, 1e-9), test.ShouldBeTrue)

		// closest point is edge
		closestPoint = tri.ClosestPointToPoint(r3.Vector{2, 2, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{1.5, 1.5, 0}, 1e-9), test.ShouldBeTrue)

		// closest point is vertex
		closestPoint = tri.ClosestPointToPoint(r3.Vector{-1, -1, 1})
		test.That(t, R3VectorAlmostEqual(closestPoint, r3.Vector{0, 0, 0}, 1e-9), test.ShouldBeTrue)
	})
}

func TestTriangleBarycentricXY(t *testing.T) {
	tri := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{4, 0, 4}, r3.Vector{0, 4, 8})

	t.Run("inside", func(t *testing.T) {
		u, v, w, ok := tri.BarycentricXY(1, 1)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, u+v+w, test.ShouldAlmostEqual, 1)
		test.That(t, u, test.ShouldAlmostEqual, 0.5)
		test.That(t, v, test.ShouldAlmostEqual, 0.25)
		test.That(t, w, test.ShouldAlmostEqual, 0.25)
	})

	t.Run("interpolate z", func(t *testing.T) {
		z, ok := tri.InterpolateZ(1, 1, 1e-6)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, z, test.ShouldAlmostEqual, 0.25*4+0.25*8)

		// vertices interpolate to their own heights
		z, ok = tri.InterpolateZ(4, 0, 1e-6)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, z, test.ShouldAlmostEqual, 4)
	})

	t.Run("outside", func(t *testing.T) {
		_, ok := tri.InterpolateZ(3, 3, 1e-6)
		test.That(t, ok, test.ShouldBeFalse)
		_, ok = tri.InterpolateZ(-1, 0, 1e-6)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("vertical triangle has no xy projection", func(t *testing.T) {
		wall := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{4, 0, 0}, r3.Vector{2, 0, 4})
		_, _, _, ok := wall.BarycentricXY(2, 0)
		test.That(t, ok, test.ShouldBeFalse)
	})
}

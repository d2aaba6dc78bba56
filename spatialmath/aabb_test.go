package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestAABBBasics(t *testing.T) {
	box := NewAABB(r3.Vector{4, 5, 6}, r3.Vector{1, 2, 3})

	t.Run("corner order normalized", func(t *testing.T) {
		test.That(t, box.Min, test.ShouldResemble, r3.Vector{1, 2, 3})
		test.That(t, box.Max, test.ShouldResemble, r3.Vector{4, 5, 6})
	})

	t.Run("center and size", func(t *testing.T) {
		test.That(t, box.Center(), test.ShouldResemble, r3.Vector{2.5, 3.5, 4.5})
		test.That(t, box.Size(), test.ShouldResemble, r3.Vector{3, 3, 3})
		test.That(t, box.HalfSize(), test.ShouldResemble, r3.Vector{1.5, 1.5, 1.5})
	})

	t.Run("from points", func(t *testing.T) {
		got := AABBFromPoints(r3.Vector{1, 7, 2}, r3.Vector{-4, 0, 9}, r3.Vector{3, 3, 3})
		test.That(t, got.Min, test.ShouldResemble, r3.Vector{-4, 0, 2})
		test.That(t, got.Max, test.ShouldResemble, r3.Vector{3, 7, 9})
	})

	t.Run("union", func(t *testing.T) {
		other := NewAABB(r3.Vector{-1, -1, -1}, r3.Vector{0, 0, 0})
		got := box.Union(other)
		test.That(t, got.Min, test.ShouldResemble, r3.Vector{-1, -1, -1})
		test.That(t, got.Max, test.ShouldResemble, r3.Vector{4, 5, 6})
	})

	t.Run("expanded", func(t *testing.T) {
		got := box.Expanded(0.5)
		test.That(t, got.Min, test.ShouldResemble, r3.Vector{0.5, 1.5, 2.5})
		test.That(t, got.Max, test.ShouldResemble, r3.Vector{4.5, 5.5, 6.5})
	})

	t.Run("footprint", func(t *testing.T) {
		rect := box.Footprint()
		test.That(t, rect.X.Lo, test.ShouldEqual, 1)
		test.That(t, rect.X.Hi, test.ShouldEqual, 4)
		test.That(t, rect.Y.Lo, test.ShouldEqual, 2)
		test.That(t, rect.Y.Hi, test.ShouldEqual, 5)

		back := AABBFromRect(rect, 3, 6)
		test.That(t, back, test.ShouldResemble, box)
	})
}

func TestAABBPredicates(t *testing.T) {
	box := NewAABB(r3.Vector{0, 0, 0}, r3.Vector{10, 10, 10})

	t.Run("intersects", func(t *testing.T) {
		test.That(t, box.Intersects(NewAABB(r3.Vector{5, 5, 5}, r3.Vector{15, 15, 15})), test.ShouldBeTrue)
		test.That(t, box.Intersects(NewAABB(r3.Vector{11, 0, 0}, r3.Vector{12, 1, 1})), test.ShouldBeFalse)
		// shared faces intersect
		test.That(t, box.Intersects(NewAABB(r3.Vector{10, 0, 0}, r3.Vector{12, 1, 1})), test.ShouldBeTrue)
	})

	t.Run("contains", func(t *testing.T) {
		test.That(t, box.Contains(r3.Vector{5, 5, 5}), test.ShouldBeTrue)
		test.That(t, box.Contains(r3.Vector{10, 10, 10}), test.ShouldBeTrue)
		test.That(t, box.Contains(r3.Vector{10.01, 5, 5}), test.ShouldBeFalse)
		test.That(t, box.ContainsXY(3, 9), test.ShouldBeTrue)
		test.That(t, box.ContainsXY(3, 11), test.ShouldBeFalse)
	})

	t.Run("bounding sphere", func(t *testing.T) {
		test.That(t, NewAABB(r3.Vector{}, r3.Vector{2, 2, 2}).BoundingSphereRadius(),
			test.ShouldAlmostEqual, r3.Vector{1, 1, 1}.Norm())
	})
}

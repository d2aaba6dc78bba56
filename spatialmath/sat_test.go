package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestTriangleAABBOverlap(t *testing.T) {
	box := NewAABB(r3.Vector{0, 0, 0}, r3.Vector{10, 10, 10})

	t.Run("triangle inside box", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{1, 1, 1}, r3.Vector{4, 1, 1}, r3.Vector{1, 4, 1})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeTrue)
	})

	t.Run("triangle spanning box", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{-5, 5, 5}, r3.Vector{15, 5, 5}, r3.Vector{5, 20, 5})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeTrue)
	})

	t.Run("vertex poking into box", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{9, 9, 9}, r3.Vector{20, 9, 9}, r3.Vector{9, 20, 9})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeTrue)
	})

	t.Run("separated along face axis", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{1, 1, 12}, r3.Vector{4, 1, 12}, r3.Vector{1, 4, 12})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeFalse)
	})

	t.Run("separated by triangle plane", func(t *testing.T) {
		// each vertex projects inside the box on every axis but the
		// plane x+y+z = 33 never reaches the box corner (10,10,10)
		tri := NewTriangle(r3.Vector{16, 9, 8}, r3.Vector{8, 16, 9}, r3.Vector{9, 8, 16})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeFalse)
	})

	t.Run("touching face counts as overlap", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{2, 2, 10}, r3.Vector{6, 2, 10}, r3.Vector{2, 6, 10})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeTrue)
	})

	t.Run("separated only by an edge cross axis", func(t *testing.T) {
		// per-axis extents and the triangle plane all overlap the box; the
		// diagonal edge holds the whole triangle beyond the (10,10) corner
		tri := NewTriangle(r3.Vector{22, 0, 5}, r3.Vector{0, 22, 5}, r3.Vector{22, 22, 5})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeFalse)
		clipped := NewTriangle(r3.Vector{12, 5, 5}, r3.Vector{5, 12, 5}, r3.Vector{5, 5, 5})
		test.That(t, TriangleAABBOverlap(clipped, box), test.ShouldBeTrue)
	})

	t.Run("degenerate sliver still reports overlap", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{1, 1, 1}, r3.Vector{5, 1, 1}, r3.Vector{9, 1, 1})
		test.That(t, TriangleAABBOverlap(tri, box), test.ShouldBeTrue)
	})
}

package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestCapsuleTriangleSweep(t *testing.T) {
	tri := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{10, 0, 0}, r3.Vector{0, 10, 0})
	const contactEps = 1e-4
	const maxIter = 32

	t.Run("vertical drop onto flat face", func(t *testing.T) {
		c := NewCapsule(r3.Vector{2, 2, 5}, r3.Vector{2, 2, 6}, 0.5)
		toi, pt, ok := CapsuleTriangleSweep(c, r3.Vector{0, 0, -10}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeTrue)
		// the lower cap touches down when its center reaches z = radius
		test.That(t, toi, test.ShouldAlmostEqual, 0.45, 1e-3)
		test.That(t, pt.Z, test.ShouldAlmostEqual, 0.5, 1e-2)
		test.That(t, pt.X, test.ShouldAlmostEqual, 2, 1e-6)
		test.That(t, pt.Y, test.ShouldAlmostEqual, 2, 1e-6)
	})

	t.Run("already touching reports time zero", func(t *testing.T) {
		c := NewCapsule(r3.Vector{2, 2, 0.2}, r3.Vector{2, 2, 2}, 0.5)
		toi, _, ok := CapsuleTriangleSweep(c, r3.Vector{0, 0, -10}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, toi, test.ShouldEqual, 0)
	})

	t.Run("zero delta never sweeps", func(t *testing.T) {
		c := NewCapsule(r3.Vector{2, 2, 0.2}, r3.Vector{2, 2, 2}, 0.5)
		_, _, ok := CapsuleTriangleSweep(c, r3.Vector{}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("stops short of contact", func(t *testing.T) {
		c := NewCapsule(r3.Vector{2, 2, 5}, r3.Vector{2, 2, 6}, 0.5)
		_, _, ok := CapsuleTriangleSweep(c, r3.Vector{0, 0, -4}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("parallel pass does not hit", func(t *testing.T) {
		c := NewCapsule(r3.Vector{2, 2, 1}, r3.Vector{2, 2, 2}, 0.5)
		_, _, ok := CapsuleTriangleSweep(c, r3.Vector{5, 0, 0}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("sweep past the surface edge misses", func(t *testing.T) {
		c := NewCapsule(r3.Vector{20, 20, 5}, r3.Vector{20, 20, 6}, 0.5)
		_, _, ok := CapsuleTriangleSweep(c, r3.Vector{0, 0, -10}, tri, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("oblique approach onto slope", func(t *testing.T) {
		slope := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{10, 0, 10}, r3.Vector{0, 10, 0})
		c := NewCapsule(r3.Vector{2, 2, 8}, r3.Vector{2, 2, 9}, 0.5)
		toi, _, ok := CapsuleTriangleSweep(c, r3.Vector{0, 0, -10}, slope, contactEps, maxIter)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, toi, test.ShouldBeGreaterThan, 0)
		test.That(t, toi, test.ShouldBeLessThan, 1)

		// the capsule stopped at the impact time must be in contact, not embedded
		moved := c.Translated(r3.Vector{0, 0, -10}.Mul(toi))
		gap := CapsuleTriangleDistance(moved, slope)
		test.That(t, gap, test.ShouldBeLessThanOrEqualTo, contactEps)
		test.That(t, gap, test.ShouldBeGreaterThan, -contactEps)
	})
}

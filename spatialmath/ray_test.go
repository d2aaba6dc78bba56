package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRayTriangle(t *testing.T) {
	tri := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{10, 0, 0}, r3.Vector{0, 10, 0})
	down := r3.Vector{0, 0, -1}

	t.Run("direct hit", func(t *testing.T) {
		dist, ok := RayTriangle(r3.Vector{2, 2, 5}, down, tri)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, dist, test.ShouldAlmostEqual, 5)
	})

	t.Run("both windings hit", func(t *testing.T) {
		dist, ok := RayTriangle(r3.Vector{2, 2, -5}, r3.Vector{0, 0, 1}, tri)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, dist, test.ShouldAlmostEqual, 5)
	})

	t.Run("miss outside triangle", func(t *testing.T) {
		_, ok := RayTriangle(r3.Vector{7, 7, 5}, down, tri)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("behind origin", func(t *testing.T) {
		_, ok := RayTriangle(r3.Vector{2, 2, 5}, r3.Vector{0, 0, 1}, tri)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("parallel ray", func(t *testing.T) {
		_, ok := RayTriangle(r3.Vector{2, 2, 5}, r3.Vector{1, 0, 0}, tri)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("oblique hit", func(t *testing.T) {
		dir := r3.Vector{1, 0, -1}.Normalize()
		dist, ok := RayTriangle(r3.Vector{0, 2, 3}, dir, tri)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, dist, test.ShouldAlmostEqual, 3*math.Sqrt2)
	})
}

func TestRayAABB(t *testing.T) {
	box := NewAABB(r3.Vector{0, 0, 0}, r3.Vector{10, 10, 10})

	t.Run("entry and exit", func(t *testing.T) {
		tmin, tmax, ok := RayAABB(r3.Vector{-5, 5, 5}, r3.Vector{1, 0, 0}, box)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, tmin, test.ShouldAlmostEqual, 5)
		test.That(t, tmax, test.ShouldAlmostEqual, 15)
	})

	t.Run("origin inside", func(t *testing.T) {
		tmin, tmax, ok := RayAABB(r3.Vector{5, 5, 5}, r3.Vector{1, 0, 0}, box)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, tmin, test.ShouldEqual, 0)
		test.That(t, tmax, test.ShouldAlmostEqual, 5)
	})

	t.Run("pointing away", func(t *testing.T) {
		_, _, ok := RayAABB(r3.Vector{-5, 5, 5}, r3.Vector{-1, 0, 0}, box)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("parallel slab miss", func(t *testing.T) {
		_, _, ok := RayAABB(r3.Vector{-5, 15, 5}, r3.Vector{1, 0, 0}, box)
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("diagonal through corner region", func(t *testing.T) {
		dir := r3.Vector{1, 1, 1}.Normalize()
		tmin, _, ok := RayAABB(r3.Vector{-1, -1, -1}, dir, box)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, tmin, test.ShouldAlmostEqual, math.Sqrt(3))
	})
}

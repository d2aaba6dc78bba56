package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotationMatrix(t *testing.T) {
	t.Run("yaw rotates about z", func(t *testing.T) {
		quarter := NewRotationFromYaw(math.Pi / 2)
		got := quarter.Apply(r3.Vector{1, 0, 0})
		test.That(t, R3VectorAlmostEqual(got, r3.Vector{0, 1, 0}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(quarter.Apply(r3.Vector{0, 0, 1}), r3.Vector{0, 0, 1}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("transpose inverts", func(t *testing.T) {
		rot := NewRotationFromEulerZYX(0.3, -0.8, 1.1)
		v := r3.Vector{1, 2, 3}
		back := rot.Transpose().Apply(rot.Apply(v))
		test.That(t, R3VectorAlmostEqual(back, v, 1e-9), test.ShouldBeTrue)
	})

	t.Run("compose", func(t *testing.T) {
		a := NewRotationFromYaw(0.4)
		b := NewRotationFromYaw(0.6)
		v := r3.Vector{3, -1, 2}
		test.That(t, R3VectorAlmostEqual(
			a.Compose(b).Apply(v),
			NewRotationFromYaw(1.0).Apply(v),
			1e-9,
		), test.ShouldBeTrue)
	})

	t.Run("euler zyx reduces to yaw", func(t *testing.T) {
		v := r3.Vector{2, 5, -1}
		test.That(t, R3VectorAlmostEqual(
			NewRotationFromEulerZYX(0.7, 0, 0).Apply(v),
			NewRotationFromYaw(0.7).Apply(v),
			1e-9,
		), test.ShouldBeTrue)
	})
}

func TestTransform(t *testing.T) {
	tf := NewTransform(r3.Vector{10, 20, 30}, NewRotationFromYaw(math.Pi/2), 2)

	t.Run("apply", func(t *testing.T) {
		// scale, then rotate, then translate
		got := tf.Apply(r3.Vector{1, 0, 0})
		test.That(t, R3VectorAlmostEqual(got, r3.Vector{10, 22, 30}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("directions ignore scale and translation", func(t *testing.T) {
		got := tf.ApplyDirection(r3.Vector{1, 0, 0})
		test.That(t, R3VectorAlmostEqual(got, r3.Vector{0, 1, 0}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("displacements scale but do not translate", func(t *testing.T) {
		got := tf.ApplyVector(r3.Vector{1, 0, 0})
		test.That(t, R3VectorAlmostEqual(got, r3.Vector{0, 2, 0}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("inverse round trip", func(t *testing.T) {
		inv := tf.Inverse()
		for _, pt := range []r3.Vector{{0, 0, 0}, {1, 2, 3}, {-5, 4, 2.5}} {
			test.That(t, R3VectorAlmostEqual(inv.Apply(tf.Apply(pt)), pt, 1e-9), test.ShouldBeTrue)
			test.That(t, R3VectorAlmostEqual(tf.Apply(inv.Apply(pt)), pt, 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("capsule radii scale", func(t *testing.T) {
		c := NewCapsule(r3.Vector{0, 0, 0}, r3.Vector{0, 0, 1}, 0.5)
		moved := tf.ApplyToCapsule(c)
		test.That(t, moved.Radius, test.ShouldAlmostEqual, 1.0)
		test.That(t, R3VectorAlmostEqual(moved.SegA, r3.Vector{10, 20, 30}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(moved.SegB, r3.Vector{10, 20, 32}, 1e-9), test.ShouldBeTrue)

		back := tf.Inverse().ApplyToCapsule(moved)
		test.That(t, back.Radius, test.ShouldAlmostEqual, c.Radius)
		test.That(t, R3VectorAlmostEqual(back.SegB, c.SegB, 1e-9), test.ShouldBeTrue)
	})

	t.Run("triangle transform", func(t *testing.T) {
		tri := NewTriangle(r3.Vector{0, 0, 0}, r3.Vector{1, 0, 0}, r3.Vector{0, 1, 0})
		moved := tf.ApplyToTriangle(tri)
		pts := moved.Points()
		test.That(t, R3VectorAlmostEqual(pts[0], r3.Vector{10, 20, 30}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(pts[1], r3.Vector{10, 22, 30}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(pts[2], r3.Vector{8, 20, 30}, 1e-9), test.ShouldBeTrue)
		// winding normals rotate with the vertices
		test.That(t, R3VectorAlmostEqual(moved.Normal(), r3.Vector{0, 0, 1}, 1e-9), test.ShouldBeTrue)
	})

	t.Run("aabb transform is conservative", func(t *testing.T) {
		box := NewAABB(r3.Vector{-1, -1, -1}, r3.Vector{1, 1, 1})
		moved := NewTransform(r3.Vector{5, 0, 0}, NewRotationFromYaw(math.Pi/4), 1).ApplyToAABB(box)
		// rotating a cube by 45 degrees grows its xy footprint to sqrt(2)
		test.That(t, moved.Max.X, test.ShouldAlmostEqual, 5+math.Sqrt2, 1e-9)
		test.That(t, moved.Min.X, test.ShouldAlmostEqual, 5-math.Sqrt2, 1e-9)
		test.That(t, moved.Max.Z, test.ShouldAlmostEqual, 1)
	})

	t.Run("compose matches sequential application", func(t *testing.T) {
		inner := NewTransform(r3.Vector{1, 2, 3}, NewRotationFromYaw(0.3), 0.5)
		pt := r3.Vector{4, -2, 7}
		test.That(t, R3VectorAlmostEqual(
			tf.Compose(inner).Apply(pt),
			tf.Apply(inner.Apply(pt)),
			1e-9,
		), test.ShouldBeTrue)
	})

	t.Run("nil rotation and zero scale default", func(t *testing.T) {
		plain := NewTransform(r3.Vector{1, 1, 1}, nil, 0)
		test.That(t, plain.Apply(r3.Vector{2, 2, 2}), test.ShouldResemble, r3.Vector{3, 3, 3})
	})
}

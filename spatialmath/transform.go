package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Transform is a uniform-scale rigid placement: points are scaled, rotated, then
// translated. It maps a model's local frame into the scene frame.
type Transform struct {
	Scale       float64
	Rotation    *RotationMatrix
	Translation r3.Vector
}

// NewTransform creates a transform from its parts. A nil rotation means no rotation
// and a zero or negative scale is treated as 1.
func NewTransform(translation r3.Vector, rotation *RotationMatrix, scale float64) Transform {
	if rotation == nil {
		rotation = NewZeroRotation()
	}
	if scale <= 0 {
		scale = 1
	}
	return Transform{Scale: scale, Rotation: rotation, Translation: translation}
}

// NewZeroTransform returns the identity transform.
func NewZeroTransform() Transform {
	return Transform{Scale: 1, Rotation: NewZeroRotation()}
}

// Apply maps a point through the transform.
func (tf Transform) Apply(pt r3.Vector) r3.Vector {
	return tf.Rotation.Apply(pt.Mul(tf.Scale)).Add(tf.Translation)
}

// ApplyDirection maps a direction through the transform. Directions rotate but are
// never scaled or translated.
func (tf Transform) ApplyDirection(dir r3.Vector) r3.Vector {
	return tf.Rotation.Apply(dir)
}

// ApplyVector maps a displacement through the transform. Displacements rotate and
// scale but are never translated.
func (tf Transform) ApplyVector(v r3.Vector) r3.Vector {
	return tf.Rotation.Apply(v.Mul(tf.Scale))
}

// ApplyToTriangle maps all three triangle vertices through the transform.
func (tf Transform) ApplyToTriangle(t *Triangle) *Triangle {
	pts := t.Points()
	return NewTriangle(tf.Apply(pts[0]), tf.Apply(pts[1]), tf.Apply(pts[2]))
}

// ApplyToCapsule maps a capsule through the transform. Radii scale with the transform's
// uniform scale.
func (tf Transform) ApplyToCapsule(c Capsule) Capsule {
	return Capsule{
		SegA:   tf.Apply(c.SegA),
		SegB:   tf.Apply(c.SegB),
		Radius: c.Radius * tf.Scale,
	}
}

// ApplyToAABB maps an AABB through the transform by mapping all eight corners and
// taking their bounding box. This is exact for the corners but conservative for the
// volume under rotation.
func (tf Transform) ApplyToAABB(b AABB) AABB {
	corners := b.Corners()
	out := AABBFromPoints(tf.Apply(corners[0]))
	for _, corner := range corners[1:] {
		out = out.IncludePoint(tf.Apply(corner))
	}
	return out
}

// Inverse returns the transform mapping the scene frame back into the local frame.
func (tf Transform) Inverse() Transform {
	invScale := 1. / tf.Scale
	invRot := tf.Rotation.Transpose()
	return Transform{
		Scale:       invScale,
		Rotation:    invRot,
		Translation: invRot.Apply(tf.Translation).Mul(-invScale),
	}
}

// Compose returns the transform equivalent to applying other first, then tf.
func (tf Transform) Compose(other Transform) Transform {
	return Transform{
		Scale:       tf.Scale * other.Scale,
		Rotation:    tf.Rotation.Compose(other.Rotation),
		Translation: tf.Apply(other.Translation),
	}
}

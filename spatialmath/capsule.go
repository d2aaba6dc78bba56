package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Capsule is a swept-sphere query volume described by the two endpoints of its core
// segment plus a radius.
//
// ....___________________
// .../                   \
// ..|  A-------O-------B  |
// ...\___________________/
//
// Equal endpoints describe a sphere; a zero radius describes a bare segment. Both
// degenerate forms are legal query volumes.
type Capsule struct {
	SegA   r3.Vector
	SegB   r3.Vector
	Radius float64
}

// NewCapsule creates a capsule from its segment endpoints and radius.
func NewCapsule(segA, segB r3.Vector, radius float64) Capsule {
	return Capsule{SegA: segA, SegB: segB, Radius: radius}
}

// NewSphere creates a sphere, which is a capsule whose segment has collapsed to a
// point.
func NewSphere(center r3.Vector, radius float64) Capsule {
	return Capsule{SegA: center, SegB: center, Radius: radius}
}

// Center returns the centerpoint of the capsule.
func (c Capsule) Center() r3.Vector {
	return c.SegA.Add(c.SegB).Mul(0.5)
}

// Length returns the tip-to-tip length of the capsule.
func (c Capsule) Length() float64 {
	return c.SegB.Sub(c.SegA).Norm() + 2*c.Radius
}

// Bounds returns the axis-aligned bounding box of the capsule.
func (c Capsule) Bounds() AABB {
	return NewAABB(c.SegA, c.SegB).Expanded(c.Radius)
}

// Translated returns the capsule moved by the given offset.
func (c Capsule) Translated(offset r3.Vector) Capsule {
	return Capsule{SegA: c.SegA.Add(offset), SegB: c.SegB.Add(offset), Radius: c.Radius}
}

// Inflated returns the capsule with its radius grown by the given amount.
func (c Capsule) Inflated(pad float64) Capsule {
	return Capsule{SegA: c.SegA, SegB: c.SegB, Radius: c.Radius + pad}
}

// Contact describes a discrete capsule-triangle intersection. AxisPoint is the point on
// the capsule's core segment closest to the triangle, SurfacePoint the closest point on
// the triangle, and PushOut the direction that separates the capsule from the triangle
// by Depth.
type Contact struct {
	AxisPoint    r3.Vector
	SurfacePoint r3.Vector
	PushOut      r3.Vector
	Depth        float64
}

// CapsuleTriangleContact reports whether the capsule intersects the triangle at its
// current pose and, if so, where. Touching at exactly the radius counts as contact.
func CapsuleTriangleContact(c Capsule, t *Triangle) (Contact, bool) {
	segPt, triPt := closestPointsSegmentTriangle(c.SegA, c.SegB, t)
	sep := segPt.Sub(triPt)
	dist := sep.Norm()
	if dist > c.Radius {
		return Contact{}, false
	}

	pushOut := t.Normal()
	if dist > floatEpsilon {
		pushOut = sep.Mul(1. / dist)
	}
	return Contact{
		AxisPoint:    segPt,
		SurfacePoint: triPt,
		PushOut:      pushOut,
		Depth:        c.Radius - dist,
	}, true
}

// CapsuleTriangleDistance returns the distance between the capsule surface and the
// triangle. A negative value is the penetration depth.
func CapsuleTriangleDistance(c Capsule, t *Triangle) float64 {
	segPt, triPt := closestPointsSegmentTriangle(c.SegA, c.SegB, t)
	return segPt.Sub(triPt).Norm() - c.Radius
}

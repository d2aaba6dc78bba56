package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// AABB is an axis-aligned bounding box. Bounds are closed: a point on a face is
// contained and two boxes sharing a face intersect.
type AABB struct {
	Min r3.Vector
	Max r3.Vector
}

// NewAABB creates an AABB spanning the two given corners. The corners may be given in
// any order.
func NewAABB(a, b r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// AABBFromPoints returns the smallest AABB containing all the given points.
func AABBFromPoints(pts ...r3.Vector) AABB {
	bounds := AABB{
		Min: r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, pt := range pts {
		bounds = bounds.IncludePoint(pt)
	}
	return bounds
}

// AABBFromRect extrudes a 2D rect into an AABB spanning [minZ, maxZ].
func AABBFromRect(rect r2.Rect, minZ, maxZ float64) AABB {
	return AABB{
		Min: r3.Vector{X: rect.X.Lo, Y: rect.Y.Lo, Z: minZ},
		Max: r3.Vector{X: rect.X.Hi, Y: rect.Y.Hi, Z: maxZ},
	}
}

// IncludePoint returns the AABB grown to contain the given point.
func (b AABB) IncludePoint(pt r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(b.Min.X, pt.X), Y: math.Min(b.Min.Y, pt.Y), Z: math.Min(b.Min.Z, pt.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, pt.X), Y: math.Max(b.Max.Y, pt.Y), Z: math.Max(b.Max.Z, pt.Z)},
	}
}

// Union returns the smallest AABB containing both input boxes.
func (b AABB) Union(other AABB) AABB {
	return b.IncludePoint(other.Min).IncludePoint(other.Max)
}

// Expanded returns the AABB grown by pad on every side. A negative pad shrinks the box.
func (b AABB) Expanded(pad float64) AABB {
	padVec := r3.Vector{X: pad, Y: pad, Z: pad}
	return AABB{Min: b.Min.Sub(padVec), Max: b.Max.Add(padVec)}
}

// Translated returns the AABB moved by the given offset.
func (b AABB) Translated(offset r3.Vector) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Intersects returns whether the two AABBs overlap, faces included.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Contains returns whether the given point lies within the AABB, faces included.
func (b AABB) Contains(pt r3.Vector) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// ContainsXY returns whether the point (x, y) lies within the AABB's XY footprint.
func (b AABB) ContainsXY(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// Center returns the centerpoint of the AABB.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the AABB.
func (b AABB) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the edge lengths of the AABB.
func (b AABB) HalfSize() r3.Vector {
	return b.Size().Mul(0.5)
}

// BoundingSphereRadius returns the radius of the smallest sphere centered at the AABB's
// center that contains it.
func (b AABB) BoundingSphereRadius() float64 {
	return b.HalfSize().Norm()
}

// Footprint returns the XY extent of the AABB as a 2D rect.
func (b AABB) Footprint() r2.Rect {
	return r2.Rect{
		X: r2.Interval{Lo: b.Min.X, Hi: b.Max.X},
		Y: r2.Interval{Lo: b.Min.Y, Hi: b.Max.Y},
	}
}

// Corners returns the eight corner points of the AABB.
func (b AABB) Corners() [8]r3.Vector {
	return [8]r3.Vector{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

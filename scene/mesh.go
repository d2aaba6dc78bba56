package scene

import (
	"github.com/meshforge/worldcollide/spatialmath"
)

// Mesh is a read-only triangle soup in model-local space. TrianglesInBounds
// may over-approximate: it returns the indices of at least every triangle
// whose bounds intersect the query box, and implementations without any
// acceleration structure may simply return all indices.
type Mesh interface {
	TriangleCount() int
	Triangle(i int) *spatialmath.Triangle
	TrianglesInBounds(bounds spatialmath.AABB) []int
}

// StaticMesh is the production Mesh: a triangle slice with precomputed
// per-triangle bounds, filtered by linear scan.
type StaticMesh struct {
	triangles []*spatialmath.Triangle
	triBounds []spatialmath.AABB
	bounds    spatialmath.AABB
}

// NewStaticMesh wraps a triangle slice. The slice is retained; callers must
// not mutate it afterwards.
func NewStaticMesh(triangles []*spatialmath.Triangle) *StaticMesh {
	m := &StaticMesh{
		triangles: triangles,
		triBounds: make([]spatialmath.AABB, len(triangles)),
	}
	for i, t := range triangles {
		m.triBounds[i] = t.Bounds()
		if i == 0 {
			m.bounds = m.triBounds[i]
		} else {
			m.bounds = m.bounds.Union(m.triBounds[i])
		}
	}
	return m
}

// TriangleCount returns the number of triangles in the mesh.
func (m *StaticMesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangle returns the i-th triangle in model-local space.
func (m *StaticMesh) Triangle(i int) *spatialmath.Triangle {
	return m.triangles[i]
}

// Bounds returns the model-local box enclosing the whole mesh.
func (m *StaticMesh) Bounds() spatialmath.AABB {
	return m.bounds
}

// TrianglesInBounds returns the indices of triangles whose bounds intersect
// the query box.
func (m *StaticMesh) TrianglesInBounds(bounds spatialmath.AABB) []int {
	if len(m.triangles) == 0 || !m.bounds.Intersects(bounds) {
		return nil
	}
	var out []int
	for i := range m.triBounds {
		if m.triBounds[i].Intersects(bounds) {
			out = append(out, i)
		}
	}
	return out
}

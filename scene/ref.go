package scene

import (
	"github.com/meshforge/worldcollide/spatialmath"
)

// TriangleRef is one storage-space triangle handed back by a pre-baked
// triangle store, carrying enough attribution to build a hit record. ID is
// unique within the store; LocalIndex is the triangle's index within its
// owning mesh so cached and live hits attribute identically. Terrain
// triangles have Instance zero, Terrain set, and a synthetic LocalIndex
// assigned at bake time.
type TriangleRef struct {
	ID         uint32
	Tri        *spatialmath.Triangle
	Instance   InstanceID
	LocalIndex int32
	Terrain    bool
}

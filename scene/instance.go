package scene

import (
	"github.com/meshforge/worldcollide/spatialmath"
)

// InstanceID identifies a placed instance within a scene. Zero is reserved:
// hits on terrain report it as their instance.
type InstanceID uint32

// TerrainInstanceID is the reserved ID terrain hits carry.
const TerrainInstanceID InstanceID = 0

// LiquidVolume is a flat liquid surface attached to an instance, such as
// water inside a placed building. Level is the surface height in storage
// space.
type LiquidVolume struct {
	Level float64
	Type  LiquidType
}

// Instance is one placement of a mesh in the scene. Bounds is the
// storage-space box enclosing the transformed mesh and is what the spatial
// index and broad phase work from. Transform maps mesh-local points into
// storage space. A nil Mesh means the model data is not loaded; such
// instances are skipped by queries.
type Instance struct {
	ID        InstanceID
	Mask      Mask
	Bounds    spatialmath.AABB
	Transform spatialmath.Transform
	Mesh      Mesh
	Liquid    *LiquidVolume
}

// Loaded reports whether the instance has mesh data to query.
func (inst *Instance) Loaded() bool {
	return inst.Mesh != nil
}

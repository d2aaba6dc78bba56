package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/spatialmath"
)

// Map geometry constants. A map is a 64x64 tile square and storage space
// mirrors the world's X and Y axes about its center, so the same constant
// converts in both directions.
const (
	TileSize     = 533.33333333
	TilesPerSide = 64
	MapCenter    = (TilesPerSide / 2) * TileSize
)

// WorldToStorage maps a world-space position into storage space. X and Y
// mirror about the map center; Z is shared.
func WorldToStorage(p r3.Vector) r3.Vector {
	return r3.Vector{X: MapCenter - p.X, Y: MapCenter - p.Y, Z: p.Z}
}

// StorageToWorld maps a storage-space position into world space. The
// mirror is its own inverse; both names exist so call sites read
// correctly.
func StorageToWorld(p r3.Vector) r3.Vector {
	return r3.Vector{X: MapCenter - p.X, Y: MapCenter - p.Y, Z: p.Z}
}

// WorldDirToStorage maps a world-space direction or normal into storage
// space. Directions flip sign on the mirrored axes and never translate;
// using the position conversion on a normal is always a bug.
func WorldDirToStorage(d r3.Vector) r3.Vector {
	return r3.Vector{X: -d.X, Y: -d.Y, Z: d.Z}
}

// StorageDirToWorld maps a storage-space direction or normal into world
// space.
func StorageDirToWorld(d r3.Vector) r3.Vector {
	return r3.Vector{X: -d.X, Y: -d.Y, Z: d.Z}
}

// WorldAABBToStorage converts a box between spaces. Mirroring swaps which
// corner is minimal on X and Y; the constructor renormalizes.
func WorldAABBToStorage(b spatialmath.AABB) spatialmath.AABB {
	return spatialmath.NewAABB(WorldToStorage(b.Min), WorldToStorage(b.Max))
}

// StorageAABBToWorld converts a box between spaces.
func StorageAABBToWorld(b spatialmath.AABB) spatialmath.AABB {
	return spatialmath.NewAABB(StorageToWorld(b.Min), StorageToWorld(b.Max))
}

// WorldCapsuleToStorage converts a capsule between spaces. Radii carry
// over unchanged; the mirror preserves distances.
func WorldCapsuleToStorage(c spatialmath.Capsule) spatialmath.Capsule {
	return spatialmath.Capsule{
		SegA:   WorldToStorage(c.SegA),
		SegB:   WorldToStorage(c.SegB),
		Radius: c.Radius,
	}
}

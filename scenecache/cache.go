// Package scenecache bakes a scene's collision geometry into a flat,
// serializable form. A baked cache answers the same queries as the live
// scene walk without the scene database behind it, which is what a
// standalone simulation or an offline tool wants to ship.
package scenecache

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

const (
	sourceInstance uint8 = iota
	sourceTerrain
)

// TriangleRecord is one baked triangle in storage space together with
// its attribution. LocalIndex is the triangle's index within its source
// mesh, so a hit against the cache names the same (instance, triangle)
// pair a hit against the live scene would.
type TriangleRecord struct {
	V0, V1, V2 r3.Vector
	Instance   uint32
	LocalIndex uint32
	Source     uint8
}

func (r *TriangleRecord) bounds() spatialmath.AABB {
	return spatialmath.AABBFromPoints(r.V0, r.V1, r.V2)
}

// Cache is the baked collision backend for one map: every queryable
// triangle flattened into storage space under a uniform XY grid, plus a
// baked liquid layer. A cache is immutable once built; a rebuild produces
// a new Cache for the caller to swap in.
type Cache struct {
	mapID    uint32
	bounds   spatialmath.AABB
	cellSize float64
	gridW    int32
	gridH    int32

	records     []TriangleRecord
	cellOffsets []uint32
	cellCounts  []uint32
	triIndex    []uint32

	liquid *LiquidGrid
}

// MapID returns the map the cache was extracted from.
func (c *Cache) MapID() uint32 {
	return c.mapID
}

// Bounds returns the padded extent of the baked geometry.
func (c *Cache) Bounds() spatialmath.AABB {
	return c.bounds
}

// TriangleCount returns the number of baked triangles.
func (c *Cache) TriangleCount() int {
	return len(c.records)
}

// GridDims returns the collision grid dimensions in cells.
func (c *Cache) GridDims() (int, int) {
	return int(c.gridW), int(c.gridH)
}

// CellSize returns the collision grid cell size.
func (c *Cache) CellSize() float64 {
	return c.cellSize
}

// Liquid returns the baked liquid layer, nil when the map has none.
func (c *Cache) Liquid() *LiquidGrid {
	return c.liquid
}

// Triangle materializes the record with the given id. The id must be
// less than TriangleCount.
func (c *Cache) Triangle(id uint32) scene.TriangleRef {
	rec := &c.records[id]
	return scene.TriangleRef{
		ID:         id,
		Tri:        spatialmath.NewTriangle(rec.V0, rec.V1, rec.V2),
		Instance:   scene.InstanceID(rec.Instance),
		LocalIndex: int32(rec.LocalIndex),
		Terrain:    rec.Source == sourceTerrain,
	}
}

func (c *Cache) gridOrigin() r2.Point {
	return r2.Point{X: c.bounds.Min.X, Y: c.bounds.Min.Y}
}

// CellOccupancy returns the triangle reference count of every grid
// cell, row-major.
func (c *Cache) CellOccupancy() []int {
	out := make([]int, len(c.cellCounts))
	for i, n := range c.cellCounts {
		out[i] = int(n)
	}
	return out
}

// VerifyGeometry cross-checks the grid against the records it indexes:
// every indexed triangle's bounds must touch its cell's column. Meant
// for offline tooling; Load already runs the cheaper structural checks.
func (c *Cache) VerifyGeometry() error {
	origin := c.gridOrigin()
	for iy := int32(0); iy < c.gridH; iy++ {
		for ix := int32(0); ix < c.gridW; ix++ {
			cellBox := spatialmath.NewAABB(
				r3.Vector{
					X: origin.X + float64(ix)*c.cellSize,
					Y: origin.Y + float64(iy)*c.cellSize,
					Z: c.bounds.Min.Z,
				},
				r3.Vector{
					X: origin.X + float64(ix+1)*c.cellSize,
					Y: origin.Y + float64(iy+1)*c.cellSize,
					Z: c.bounds.Max.Z,
				},
			)
			cell := iy*c.gridW + ix
			start := c.cellOffsets[cell]
			for k := start; k < start+c.cellCounts[cell]; k++ {
				if !c.records[c.triIndex[k]].bounds().Intersects(cellBox) {
					return errors.Errorf("triangle %d indexed under cell (%d, %d) but lies outside it",
						c.triIndex[k], ix, iy)
				}
			}
		}
	}
	return nil
}

// Validate checks the CSR structure: cell tables sized to the grid,
// every cell range inside the index array, every index naming a real
// record. Load rejects files that fail this; the verify tool reports it.
func (c *Cache) Validate() error {
	cells := int(c.gridW) * int(c.gridH)
	if len(c.cellOffsets) != cells || len(c.cellCounts) != cells {
		return errors.Errorf("corrupt scene cache: %d cells but %d offsets, %d counts",
			cells, len(c.cellOffsets), len(c.cellCounts))
	}
	for i := 0; i < cells; i++ {
		if end := uint64(c.cellOffsets[i]) + uint64(c.cellCounts[i]); end > uint64(len(c.triIndex)) {
			return errors.Errorf("corrupt scene cache: cell %d ends at %d, index array holds %d",
				i, end, len(c.triIndex))
		}
	}
	for _, id := range c.triIndex {
		if int(id) >= len(c.records) {
			return errors.Errorf("corrupt scene cache: triangle index %d out of range, %d records",
				id, len(c.records))
		}
	}
	return nil
}

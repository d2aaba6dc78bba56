package scene

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/meshforge/worldcollide/spatialmath"
	"github.com/meshforge/worldcollide/utils"
)

// Index finds the instances whose bounds may intersect a storage-space box.
// Results may contain false positives and, for borderline boxes,
// implementations are allowed to miss; the query engine re-checks bounds
// and runs a full fallback scan behind every index.
type Index interface {
	QueryAABB(bounds spatialmath.AABB) []InstanceID
}

// GridIndex buckets instance IDs into a uniform 2D grid over the scene
// footprint. Height plays no part; maps are wide and flat enough that XY
// cells discriminate well.
type GridIndex struct {
	origin   r2.Point
	cellSize float64
	width    int
	height   int
	cells    [][]InstanceID
	extent   r2.Rect
}

// NewGridIndex builds an index over the given instances. Instances without
// a mesh still get indexed; the engine filters them out later so that the
// index never needs rebuilding when models stream in.
func NewGridIndex(instances []*Instance, cellSize float64) *GridIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	gi := &GridIndex{cellSize: cellSize}
	var extent r2.Rect
	first := true
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		fp := inst.Bounds.Footprint()
		if first {
			extent = fp
			first = false
		} else {
			extent = extent.Union(fp)
		}
	}
	if first {
		return gi
	}
	gi.extent = extent
	gi.origin = r2.Point{X: extent.X.Lo, Y: extent.Y.Lo}
	gi.width = utils.MaxInt(1, int(math.Ceil(extent.X.Length()/cellSize)))
	gi.height = utils.MaxInt(1, int(math.Ceil(extent.Y.Length()/cellSize)))
	gi.cells = make([][]InstanceID, gi.width*gi.height)
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		x0, y0, x1, y1 := gi.cellRange(inst.Bounds.Footprint())
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				i := y*gi.width + x
				gi.cells[i] = append(gi.cells[i], inst.ID)
			}
		}
	}
	return gi
}

// cellRange clamps a footprint to grid cell coordinates. Callers must have
// already rejected footprints disjoint from the extent.
func (gi *GridIndex) cellRange(fp r2.Rect) (x0, y0, x1, y1 int) {
	x0 = utils.ClampInt(int(math.Floor((fp.X.Lo-gi.origin.X)/gi.cellSize)), 0, gi.width-1)
	y0 = utils.ClampInt(int(math.Floor((fp.Y.Lo-gi.origin.Y)/gi.cellSize)), 0, gi.height-1)
	x1 = utils.ClampInt(int(math.Floor((fp.X.Hi-gi.origin.X)/gi.cellSize)), 0, gi.width-1)
	y1 = utils.ClampInt(int(math.Floor((fp.Y.Hi-gi.origin.Y)/gi.cellSize)), 0, gi.height-1)
	return x0, y0, x1, y1
}

// CellSize returns the XY size of one bucket.
func (gi *GridIndex) CellSize() float64 {
	return gi.cellSize
}

// QueryAABB returns the IDs bucketed under any cell the box footprint
// covers, deduplicated, in bucket order.
func (gi *GridIndex) QueryAABB(bounds spatialmath.AABB) []InstanceID {
	if gi.cells == nil {
		return nil
	}
	fp := bounds.Footprint()
	if !gi.extent.Intersects(fp) {
		return nil
	}
	x0, y0, x1, y1 := gi.cellRange(fp)
	var out []InstanceID
	seen := map[InstanceID]struct{}{}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, id := range gi.cells[y*gi.width+x] {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

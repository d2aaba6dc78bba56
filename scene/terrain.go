package scene

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshforge/worldcollide/spatialmath"
	"github.com/meshforge/worldcollide/utils"
)

// TerrainSource supplies ground geometry and ground liquid. Triangles come
// back already in storage space with the reserved terrain instance ID
// implied; no transform applies. A source serves exactly one map and
// reports ok=false for any other.
type TerrainSource interface {
	// TerrainTriangles returns the triangles covering the 2D region.
	TerrainTriangles(mapID uint32, bounds r2.Rect) []*spatialmath.Triangle
	// TerrainBounds returns the 2D extent the source has data for.
	TerrainBounds(mapID uint32) (r2.Rect, bool)
	// Liquid returns the ground liquid column at a point, if any.
	Liquid(mapID uint32, x, y float64) (Liquid, bool)
}

// Heightfield is the production TerrainSource: a regular grid of vertex
// heights triangulated two triangles per cell along a consistent diagonal,
// with optional per-cell liquid.
type Heightfield struct {
	mapID    uint32
	origin   r2.Point
	cellSize float64
	width    int
	height   int
	heights  []float64
	liquid   []Liquid
}

// NewHeightfield builds a heightfield of width x height cells anchored at
// origin. heights holds (width+1)*(height+1) vertex heights in row-major
// order, X fastest.
func NewHeightfield(
	mapID uint32,
	origin r2.Point,
	cellSize float64,
	width, height int,
	heights []float64,
) (*Heightfield, error) {
	if cellSize <= 0 {
		return nil, errors.Errorf("heightfield cell size must be positive, got %f", cellSize)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("heightfield must have positive dimensions, got %dx%d", width, height)
	}
	if want := (width + 1) * (height + 1); len(heights) != want {
		return nil, errors.Errorf("heightfield %dx%d needs %d vertex heights, got %d",
			width, height, want, len(heights))
	}
	return &Heightfield{
		mapID:    mapID,
		origin:   origin,
		cellSize: cellSize,
		width:    width,
		height:   height,
		heights:  heights,
	}, nil
}

// SetLiquid attaches per-cell liquid data, width*height cells in row-major
// order. Cells typed LiquidNone stay dry.
func (hf *Heightfield) SetLiquid(cells []Liquid) error {
	if len(cells) != hf.width*hf.height {
		return errors.Errorf("liquid layer needs %d cells, got %d", hf.width*hf.height, len(cells))
	}
	hf.liquid = cells
	return nil
}

// MapID returns the map this heightfield covers.
func (hf *Heightfield) MapID() uint32 {
	return hf.mapID
}

func (hf *Heightfield) vertex(ix, iy int) r3.Vector {
	return r3.Vector{
		X: hf.origin.X + float64(ix)*hf.cellSize,
		Y: hf.origin.Y + float64(iy)*hf.cellSize,
		Z: hf.heights[iy*(hf.width+1)+ix],
	}
}

// TerrainBounds returns the grid's 2D extent.
func (hf *Heightfield) TerrainBounds(mapID uint32) (r2.Rect, bool) {
	if mapID != hf.mapID {
		return r2.Rect{}, false
	}
	return r2.RectFromPoints(
		hf.origin,
		r2.Point{
			X: hf.origin.X + float64(hf.width)*hf.cellSize,
			Y: hf.origin.Y + float64(hf.height)*hf.cellSize,
		},
	), true
}

// cellAt returns the cell containing the point, clamping points on the far
// edge into the last cell.
func (hf *Heightfield) cellAt(x, y float64) (int, int, bool) {
	fx := (x - hf.origin.X) / hf.cellSize
	fy := (y - hf.origin.Y) / hf.cellSize
	if fx < 0 || fy < 0 || fx > float64(hf.width) || fy > float64(hf.height) {
		return 0, 0, false
	}
	ix := utils.ClampInt(int(math.Floor(fx)), 0, hf.width-1)
	iy := utils.ClampInt(int(math.Floor(fy)), 0, hf.height-1)
	return ix, iy, true
}

// TerrainTriangles emits the two triangles of every cell the region
// touches. Both carry upward-facing windings on flat ground.
func (hf *Heightfield) TerrainTriangles(mapID uint32, bounds r2.Rect) []*spatialmath.Triangle {
	if mapID != hf.mapID {
		return nil
	}
	extent, _ := hf.TerrainBounds(mapID)
	if !extent.Intersects(bounds) {
		return nil
	}
	x0 := utils.ClampInt(int(math.Floor((bounds.X.Lo-hf.origin.X)/hf.cellSize)), 0, hf.width-1)
	y0 := utils.ClampInt(int(math.Floor((bounds.Y.Lo-hf.origin.Y)/hf.cellSize)), 0, hf.height-1)
	x1 := utils.ClampInt(int(math.Floor((bounds.X.Hi-hf.origin.X)/hf.cellSize)), 0, hf.width-1)
	y1 := utils.ClampInt(int(math.Floor((bounds.Y.Hi-hf.origin.Y)/hf.cellSize)), 0, hf.height-1)
	out := make([]*spatialmath.Triangle, 0, 2*(x1-x0+1)*(y1-y0+1))
	for iy := y0; iy <= y1; iy++ {
		for ix := x0; ix <= x1; ix++ {
			v00 := hf.vertex(ix, iy)
			v10 := hf.vertex(ix+1, iy)
			v01 := hf.vertex(ix, iy+1)
			v11 := hf.vertex(ix+1, iy+1)
			out = append(out,
				spatialmath.NewTriangle(v00, v10, v11),
				spatialmath.NewTriangle(v00, v11, v01),
			)
		}
	}
	return out
}

// HeightAt interpolates the ground height at a point using the same
// triangulation queries collide with.
func (hf *Heightfield) HeightAt(x, y float64) (float64, bool) {
	ix, iy, ok := hf.cellAt(x, y)
	if !ok {
		return 0, false
	}
	u := (x-hf.origin.X)/hf.cellSize - float64(ix)
	v := (y-hf.origin.Y)/hf.cellSize - float64(iy)
	h00 := hf.heights[iy*(hf.width+1)+ix]
	h10 := hf.heights[iy*(hf.width+1)+ix+1]
	h01 := hf.heights[(iy+1)*(hf.width+1)+ix]
	h11 := hf.heights[(iy+1)*(hf.width+1)+ix+1]
	if u >= v {
		// lower triangle v00,v10,v11
		return h00 + u*(h10-h00) + v*(h11-h10), true
	}
	// upper triangle v00,v11,v01
	return h00 + u*(h11-h01) + v*(h01-h00), true
}

// Liquid returns the cell's liquid column, if the cell has one.
func (hf *Heightfield) Liquid(mapID uint32, x, y float64) (Liquid, bool) {
	if mapID != hf.mapID || hf.liquid == nil {
		return Liquid{}, false
	}
	ix, iy, ok := hf.cellAt(x, y)
	if !ok {
		return Liquid{}, false
	}
	liq := hf.liquid[iy*hf.width+ix]
	if liq.Type == LiquidNone {
		return Liquid{}, false
	}
	return liq, true
}

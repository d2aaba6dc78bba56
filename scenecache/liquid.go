package scenecache

import (
	"github.com/golang/geo/r2"

	"github.com/meshforge/worldcollide/scene"
)

// Liquid cell flag bits.
const (
	liquidFound        uint8 = 1 << 0
	liquidFromInstance uint8 = 1 << 1
)

// LiquidCell is one baked liquid column.
type LiquidCell struct {
	Level float64
	Type  uint8
	Flags uint8
}

// Found reports whether the column holds any liquid.
func (lc LiquidCell) Found() bool {
	return lc.Flags&liquidFound != 0
}

// FromInstance reports whether the liquid came from an instance volume
// rather than ground liquid.
func (lc LiquidCell) FromInstance() bool {
	return lc.Flags&liquidFromInstance != 0
}

// LiquidGrid is the baked 2D liquid layer. Its cell size is independent
// of the collision grid's: liquid varies far more slowly than geometry.
type LiquidGrid struct {
	origin   r2.Point
	cellSize float64
	width    int32
	height   int32
	cells    []LiquidCell
}

// Dims returns the grid dimensions in cells.
func (g *LiquidGrid) Dims() (int, int) {
	return int(g.width), int(g.height)
}

// CellSize returns the liquid grid cell size.
func (g *LiquidGrid) CellSize() float64 {
	return g.cellSize
}

// LiquidAt returns the baked column under the storage-space point, if it
// holds liquid.
func (g *LiquidGrid) LiquidAt(x, y float64) (LiquidCell, bool) {
	fx := (x - g.origin.X) / g.cellSize
	fy := (y - g.origin.Y) / g.cellSize
	if fx < 0 || fy < 0 || fx >= float64(g.width) || fy >= float64(g.height) {
		return LiquidCell{}, false
	}
	cell := g.cells[int32(fy)*g.width+int32(fx)]
	if !cell.Found() {
		return LiquidCell{}, false
	}
	return cell, true
}

// LiquidAt implements the engine's cached liquid lookup. The probe
// height was fixed at bake time, so only the column matters here.
func (c *Cache) LiquidAt(x, y float64) (scene.Liquid, bool, bool) {
	if c.liquid == nil {
		return scene.Liquid{}, false, false
	}
	cell, ok := c.liquid.LiquidAt(x, y)
	if !ok {
		return scene.Liquid{}, false, false
	}
	return scene.Liquid{Level: cell.Level, Type: scene.LiquidType(cell.Type)}, cell.FromInstance(), true
}

package scenecache

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshforge/worldcollide/collision"
	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

const progressLogInterval = 5 * time.Second

// ExtractConfig tunes a cache bake.
type ExtractConfig struct {
	// CellSize is the collision grid cell size in storage units.
	CellSize float64 `json:"cell_size"`
	// LiquidCellSize is the liquid grid cell size in storage units.
	LiquidCellSize float64 `json:"liquid_cell_size"`
	// BoundsPadding expands the baked bounds past the geometry extents.
	BoundsPadding float64 `json:"bounds_padding"`
	// Mask selects which instances bake. Terrain always bakes.
	Mask scene.Mask `json:"mask"`
	// ProbeAltitude is the height liquid columns are probed from.
	ProbeAltitude float64 `json:"probe_altitude"`
	// Bounds optionally restricts the bake to a 2D region.
	Bounds *r2.Rect `json:"-"`
	// Clock drives progress throttling; nil means the wall clock.
	Clock clock.Clock `json:"-"`
}

// DefaultExtractConfig returns the tuning a whole-map bake wants.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		CellSize:       64,
		LiquidCellSize: 32,
		BoundsPadding:  1,
		Mask:           scene.MaskAll,
		ProbeAltitude:  10000,
	}
}

// Validate returns an error describing the first invalid field.
func (cfg ExtractConfig) Validate() error {
	if cfg.CellSize <= 0 {
		return errors.New("extract cell size must be positive")
	}
	if cfg.LiquidCellSize <= 0 {
		return errors.New("extract liquid cell size must be positive")
	}
	if cfg.BoundsPadding < 0 {
		return errors.New("extract bounds padding must not be negative")
	}
	return nil
}

// Extract bakes everything the engine's scene can serve into a new
// Cache: instance meshes flattened through one composed transform each,
// terrain triangles, and a liquid layer probed through the engine's own
// liquid policy. The engine must be scene-backed; a cache-backed engine
// has nothing to walk.
func Extract(eng *collision.Engine, cfg ExtractConfig, logger logging.Logger) (*Cache, error) {
	if eng == nil {
		return nil, errors.New("cannot extract from a nil engine")
	}
	sc := eng.Scene()
	if sc == nil {
		return nil, errors.New("cannot extract from a cache-backed engine")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	start := clk.Now()
	lastProgress := start
	var records []TriangleRecord
	instances := 0
	for _, inst := range sc.Instances() {
		if !inst.Loaded() || !inst.Mask.Matches(cfg.Mask) {
			continue
		}
		if cfg.Bounds != nil && !cfg.Bounds.Intersects(inst.Bounds.Footprint()) {
			continue
		}
		tf := inst.Transform
		for i, n := 0, inst.Mesh.TriangleCount(); i < n; i++ {
			pts := tf.ApplyToTriangle(inst.Mesh.Triangle(i)).Points()
			records = append(records, TriangleRecord{
				V0:         pts[0],
				V1:         pts[1],
				V2:         pts[2],
				Instance:   uint32(inst.ID),
				LocalIndex: uint32(i),
				Source:     sourceInstance,
			})
		}
		instances++
		if now := clk.Now(); now.Sub(lastProgress) >= progressLogInterval {
			logger.Infow("extracting scene geometry",
				"instances_done", instances,
				"triangles", len(records),
			)
			lastProgress = now
		}
	}

	if terr := sc.Terrain(); terr != nil {
		region, ok := terr.TerrainBounds(sc.MapID())
		if cfg.Bounds != nil {
			region, ok = *cfg.Bounds, true
		}
		if ok {
			for i, tri := range terr.TerrainTriangles(sc.MapID(), region) {
				pts := tri.Points()
				records = append(records, TriangleRecord{
					V0:         pts[0],
					V1:         pts[1],
					V2:         pts[2],
					Instance:   uint32(scene.TerrainInstanceID),
					LocalIndex: uint32(i),
					Source:     sourceTerrain,
				})
			}
		}
	}

	if len(records) == 0 {
		return nil, errors.Errorf("map %d has no triangles to extract", sc.MapID())
	}

	bounds := records[0].bounds()
	for i := 1; i < len(records); i++ {
		bounds = bounds.Union(records[i].bounds())
	}
	bounds = bounds.Expanded(cfg.BoundsPadding)

	c := &Cache{
		mapID:    sc.MapID(),
		bounds:   bounds,
		cellSize: cfg.CellSize,
		records:  records,
	}
	c.gridW, c.gridH, c.cellOffsets, c.cellCounts, c.triIndex = buildGrid(records, bounds, cfg.CellSize)
	c.liquid = bakeLiquid(eng, bounds, cfg)

	logger.Infow("scene cache extracted",
		"map_id", sc.MapID(),
		"instances", instances,
		"triangles", len(records),
		"grid_w", c.gridW,
		"grid_h", c.gridH,
		"elapsed", clk.Now().Sub(start),
	)
	return c, nil
}

// bakeLiquid probes the engine's liquid policy at every liquid cell
// center. An all-dry layer is dropped.
func bakeLiquid(eng *collision.Engine, bounds spatialmath.AABB, cfg ExtractConfig) *LiquidGrid {
	g := &LiquidGrid{
		origin:   r2.Point{X: bounds.Min.X, Y: bounds.Min.Y},
		cellSize: cfg.LiquidCellSize,
		width:    gridCells(bounds.Max.X-bounds.Min.X, cfg.LiquidCellSize),
		height:   gridCells(bounds.Max.Y-bounds.Min.Y, cfg.LiquidCellSize),
	}
	g.cells = make([]LiquidCell, g.width*g.height)
	any := false
	for iy := int32(0); iy < g.height; iy++ {
		for ix := int32(0); ix < g.width; ix++ {
			cx := g.origin.X + (float64(ix)+0.5)*g.cellSize
			cy := g.origin.Y + (float64(iy)+0.5)*g.cellSize
			probe := collision.StorageToWorld(r3.Vector{X: cx, Y: cy, Z: cfg.ProbeAltitude})
			liq, origin, ok := eng.LiquidAt(probe)
			if !ok {
				continue
			}
			cell := LiquidCell{Level: liq.Level, Type: uint8(liq.Type), Flags: liquidFound}
			if origin == collision.LiquidOriginInstance {
				cell.Flags |= liquidFromInstance
			}
			g.cells[iy*g.width+ix] = cell
			any = true
		}
	}
	if !any {
		return nil
	}
	return g
}

func gridCells(extent, cellSize float64) int32 {
	n := int32(math.Ceil(extent / cellSize))
	if n < 1 {
		return 1
	}
	return n
}

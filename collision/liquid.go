package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
)

// LiquidAt reports the highest liquid surface at or below the world-space
// position's height, looking down its XY column. Liquid volumes attached
// to instances take precedence over ground liquid, so a pool inside a
// building wins over the lake the building stands in; among stacked
// instance volumes the highest qualifying surface wins, with the lower
// instance ID breaking ties. On a cached engine the answer comes from the
// baked liquid grid and the height is ignored.
func (e *Engine) LiquidAt(pos r3.Vector) (scene.Liquid, LiquidOrigin, bool) {
	p := WorldToStorage(pos)
	return e.src.liquidAt(p.X, p.Y, p.Z)
}

func (ls *liveSource) liquidAt(x, y, z float64) (scene.Liquid, LiquidOrigin, bool) {
	var best *scene.LiquidVolume
	var bestID scene.InstanceID
	for _, inst := range ls.sc.Instances() {
		if inst.Liquid == nil || inst.Liquid.Level > z {
			continue
		}
		if !inst.Bounds.ContainsXY(x, y) {
			continue
		}
		better := best == nil ||
			inst.Liquid.Level > best.Level ||
			(inst.Liquid.Level == best.Level && inst.ID < bestID)
		if better {
			best = inst.Liquid
			bestID = inst.ID
		}
	}
	if best != nil {
		return scene.Liquid{Level: best.Level, Type: best.Type}, LiquidOriginInstance, true
	}
	if terr := ls.sc.Terrain(); terr != nil {
		if liq, ok := terr.Liquid(ls.sc.MapID(), x, y); ok && liq.Level <= z {
			return liq, LiquidOriginTerrain, true
		}
	}
	return scene.Liquid{}, LiquidOriginNone, false
}

func (cs *cacheSource) liquidAt(x, y, _ float64) (scene.Liquid, LiquidOrigin, bool) {
	liq, fromInstance, ok := cs.cache.LiquidAt(x, y)
	if !ok {
		return scene.Liquid{}, LiquidOriginNone, false
	}
	if fromInstance {
		return liq, LiquidOriginInstance, true
	}
	return liq, LiquidOriginTerrain, true
}

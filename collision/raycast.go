package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// RaycastAll returns every triangle intersection along a world-space ray,
// ordered near to far. The direction need not be unit length; maxDist caps
// the ray in world units. Hit points are rebuilt from the original world
// ray rather than converted back out of storage space, so they carry one
// conversion's rounding, not two.
func (e *Engine) RaycastAll(origin, dir r3.Vector, maxDist float64, mask scene.Mask) []Hit {
	if maxDist <= 0 {
		return nil
	}
	n := dir.Norm()
	if n < 1e-12 {
		return nil
	}
	unit := dir.Mul(1 / n)
	sOrigin := WorldToStorage(origin)
	sDir := WorldDirToStorage(unit)
	sEnd := sOrigin.Add(sDir.Mul(maxDist))
	bounds := spatialmath.AABBFromPoints(sOrigin, sEnd).Expanded(e.cfg.BroadPadding)

	var hits []Hit
	for _, b := range e.src.collect(bounds, mask) {
		lOrigin := b.frame.pointToLocal(sOrigin)
		lDir := b.frame.dirToLocal(sDir)
		scale := b.frame.scale()
		for _, it := range b.tris {
			if e.skippable(it) {
				continue
			}
			localDist, ok := spatialmath.RayTriangle(lOrigin, lDir, it.tri)
			if !ok {
				continue
			}
			dist := localDist * scale
			if dist > maxDist {
				continue
			}
			normal, flipped := worldWindingNormal(it.tri, b.frame)
			hits = append(hits, Hit{
				Distance:      dist,
				Time:          dist / maxDist,
				Point:         origin.Add(unit.Mul(dist)),
				Normal:        normal,
				NormalFlipped: flipped,
				Triangle:      it.index,
				Instance:      it.instance,
			})
		}
	}
	sortHitsByDistance(hits)
	return hits
}

// Raycast returns the nearest hit along a world-space ray.
func (e *Engine) Raycast(origin, dir r3.Vector, maxDist float64, mask scene.Mask) (Hit, bool) {
	hits := e.RaycastAll(origin, dir, maxDist, mask)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// GroundUnder drops a ray straight down from a world-space position and
// returns the first surface within maxDrop.
func (e *Engine) GroundUnder(pos r3.Vector, maxDrop float64, mask scene.Mask) (Hit, bool) {
	return e.Raycast(pos, r3.Vector{Z: -1}, maxDrop, mask)
}

package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// SweepCapsule slides a world-space capsule along dir for distance world
// units and reports what it meets, in order:
//
// Start-pose penetrations win outright: an embedded capsule has no
// meaningful time of impact, so every start contact comes back as a
// time-zero cohort and the sweep never runs. Otherwise the analytic sweep
// tests every candidate and the hits within the cohort window of the
// earliest impact are all reported, so a corner catching floor and wall at
// the same instant yields both. If rounding makes every analytic test miss
// geometry the broad phase saw, a discrete recheck at the end pose with a
// slightly inflated radius reports time-one contacts instead of letting
// the capsule tunnel.
//
// Zero distance or a zero direction degenerates to the discrete overlap at
// the start pose. Hits within a cohort sort by (instance, triangle).
func (e *Engine) SweepCapsule(c spatialmath.Capsule, dir r3.Vector, distance float64, mask scene.Mask) []Hit {
	if c.Radius < 0 {
		return nil
	}
	n := dir.Norm()
	if distance <= 0 || n < 1e-12 {
		return e.OverlapCapsule(c, mask)
	}
	unit := dir.Mul(1 / n)
	sc := WorldCapsuleToStorage(c)
	sDelta := WorldDirToStorage(unit).Mul(distance)

	bounds := sc.Bounds().Union(sc.Translated(sDelta).Bounds()).Expanded(e.cfg.BroadPadding)
	batches := e.src.collect(bounds, mask)
	if len(batches) == 0 {
		return nil
	}

	if cands := e.collectCapsuleContacts(batches, sc); len(cands) > 0 {
		hits := make([]Hit, 0, len(cands))
		for _, cand := range cands {
			hits = append(hits, e.contactHit(cand))
		}
		sortHits(hits)
		return hits
	}

	type sweepImpact struct {
		toi       float64
		axisPoint r3.Vector
		it        indexedTriangle
		frame     *localFrame
	}
	var pending []sweepImpact
	for _, b := range batches {
		lc := b.frame.capsuleToLocal(sc)
		lDelta := b.frame.vectorToLocal(sDelta)
		lEps := e.cfg.ContactEpsilon / b.frame.scale()
		for _, it := range b.tris {
			if e.skippable(it) {
				continue
			}
			toi, pt, ok := spatialmath.CapsuleTriangleSweep(lc, lDelta, it.tri, lEps, e.cfg.SweepIterations)
			if !ok {
				continue
			}
			pending = append(pending, sweepImpact{toi: toi, axisPoint: pt, it: it, frame: b.frame})
		}
	}

	if len(pending) > 0 {
		tMin := pending[0].toi
		for _, p := range pending[1:] {
			if p.toi < tMin {
				tMin = p.toi
			}
		}
		var hits []Hit
		for _, p := range pending {
			if p.toi > tMin+e.cfg.CohortWindow {
				continue
			}
			normal, flipped := worldWindingNormal(p.it.tri, p.frame)
			hits = append(hits, Hit{
				Distance:      p.toi * distance,
				Time:          p.toi,
				Point:         StorageToWorld(p.frame.pointToStorage(p.axisPoint)),
				Normal:        normal,
				NormalFlipped: flipped,
				Triangle:      p.it.index,
				Instance:      p.it.instance,
			})
		}
		sortHits(hits)
		return hits
	}

	end := sc.Translated(sDelta)
	end = end.Inflated(end.Radius * e.cfg.FallbackInflation)
	var hits []Hit
	for _, cand := range e.collectCapsuleContacts(batches, end) {
		h := e.contactHit(cand)
		h.StartPenetrating = false
		h.PenetrationDepth = 0
		h.Time = 1
		h.Distance = distance
		hits = append(hits, h)
	}
	if len(hits) > 0 {
		e.logger.Debugw("analytic sweep missed, end-pose recheck reported contacts", "contacts", len(hits))
	}
	sortHits(hits)
	return hits
}

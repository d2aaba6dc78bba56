package collision

import (
	"sort"

	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// Hit is one contact reported by a query. Point and Normal are in the
// caller's world space. Time is the normalized fraction of the motion at
// which contact occurs: always 0 for overlaps, impact fraction for sweeps,
// distance fraction for rays.
//
// Discrete contacts (overlaps, start penetrations, the sweep end-pose
// fallback) report the point on the struck surface; analytic sweep hits
// report the capsule axis position at impact time, which is what movement
// integration advances to.
//
// Normal always comes from the triangle winding, not from which capsule
// feature touched, and is forced into the upward hemisphere with the flip
// recorded. If StartPenetrating is set, Time and Distance are zero and
// PenetrationDepth holds how deep the volume already sat in the surface.
type Hit struct {
	Distance         float64
	Time             float64
	Point            r3.Vector
	Normal           r3.Vector
	NormalFlipped    bool
	Triangle         int32
	Instance         scene.InstanceID
	StartPenetrating bool
	PenetrationDepth float64
}

// hitOrderLess is the engine-wide deterministic tie-break: instance, then
// triangle. Triangle indices repeat across instances, so the pair is what
// makes the order total.
func hitOrderLess(a, b *Hit) bool {
	if a.Instance != b.Instance {
		return a.Instance < b.Instance
	}
	return a.Triangle < b.Triangle
}

// sortHits orders hits by (instance, triangle).
func sortHits(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool {
		return hitOrderLess(&hits[i], &hits[j])
	})
}

// sortHitsByDistance orders hits by distance, tie-breaking by (instance,
// triangle) so equidistant contacts keep a stable order.
func sortHitsByDistance(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hitOrderLess(&hits[i], &hits[j])
	})
}

// worldWindingNormal turns a batch-frame triangle's winding normal into
// the reported world-space normal: rotate out of the local frame, convert
// the direction between spaces, then force z upward.
func worldWindingNormal(tri *spatialmath.Triangle, f *localFrame) (n r3.Vector, flipped bool) {
	n = StorageDirToWorld(f.dirToStorage(tri.Normal()))
	if n.Z < 0 {
		return n.Mul(-1), true
	}
	return n, false
}

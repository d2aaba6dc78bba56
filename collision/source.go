package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// indexedTriangle is one narrow-phase candidate: a triangle in its batch's
// frame plus the attribution a hit record needs.
type indexedTriangle struct {
	tri      *spatialmath.Triangle
	index    int32
	instance scene.InstanceID
}

// localFrame relates a batch's local frame to storage space. Both
// directions are kept because every query needs the inverse to enter the
// frame and the forward transform to report results. A nil *localFrame
// means the batch is already in storage space.
type localFrame struct {
	toStorage spatialmath.Transform
	toLocal   spatialmath.Transform
}

func newLocalFrame(toStorage spatialmath.Transform) *localFrame {
	return &localFrame{toStorage: toStorage, toLocal: toStorage.Inverse()}
}

// scale returns the local-to-storage uniform scale, the factor every
// local distance multiplies by on the way out.
func (f *localFrame) scale() float64 {
	if f == nil {
		return 1
	}
	return f.toStorage.Scale
}

func (f *localFrame) pointToStorage(p r3.Vector) r3.Vector {
	if f == nil {
		return p
	}
	return f.toStorage.Apply(p)
}

func (f *localFrame) dirToStorage(d r3.Vector) r3.Vector {
	if f == nil {
		return d
	}
	return f.toStorage.ApplyDirection(d)
}

func (f *localFrame) pointToLocal(p r3.Vector) r3.Vector {
	if f == nil {
		return p
	}
	return f.toLocal.Apply(p)
}

func (f *localFrame) dirToLocal(d r3.Vector) r3.Vector {
	if f == nil {
		return d
	}
	return f.toLocal.ApplyDirection(d)
}

func (f *localFrame) vectorToLocal(v r3.Vector) r3.Vector {
	if f == nil {
		return v
	}
	return f.toLocal.ApplyVector(v)
}

func (f *localFrame) capsuleToLocal(c spatialmath.Capsule) spatialmath.Capsule {
	if f == nil {
		return c
	}
	return f.toLocal.ApplyToCapsule(c)
}

// batch is one frame-coherent group of candidate triangles. Narrow-phase
// predicates run in the batch frame; results convert back through it.
type batch struct {
	frame *localFrame
	tris  []indexedTriangle
}

// LiquidOrigin reports which geometry source supplied a liquid answer.
type LiquidOrigin uint8

const (
	LiquidOriginNone LiquidOrigin = iota
	LiquidOriginInstance
	LiquidOriginTerrain
)

// candidateSource is the backend seam: the live scene walk and the baked
// cache produce the same batch shape, so every query operation above this
// line is backend-agnostic.
type candidateSource interface {
	// collect returns candidate triangles for a padded storage-space box.
	collect(bounds spatialmath.AABB, mask scene.Mask) []batch
	// liquidAt resolves the liquid column at a storage-space position.
	liquidAt(x, y, z float64) (scene.Liquid, LiquidOrigin, bool)
	mapID() uint32
}

// CacheBackend is what a pre-baked triangle store must expose to serve as
// an engine backend. Visibility masks are applied at bake time, so cached
// queries have nothing to filter; LiquidAt is a 2D lookup into the baked
// liquid grid.
type CacheBackend interface {
	MapID() uint32
	QueryTrianglesInAABB(bounds spatialmath.AABB) []scene.TriangleRef
	LiquidAt(x, y float64) (liq scene.Liquid, fromInstance, ok bool)
}

// liveSource walks the scene database per query.
type liveSource struct {
	sc     *scene.Scene
	logger logging.Logger
}

func (ls *liveSource) mapID() uint32 {
	return ls.sc.MapID()
}

func (ls *liveSource) collect(bounds spatialmath.AABB, mask scene.Mask) []batch {
	var out []batch
	for _, inst := range ls.resolveInstances(bounds, mask) {
		if b, ok := ls.instanceBatch(inst, bounds); ok {
			out = append(out, b)
		}
	}
	if b, ok := ls.terrainBatch(bounds); ok {
		out = append(out, b)
	}
	return out
}

// cacheSource adapts a CacheBackend into a single storage-space batch.
type cacheSource struct {
	cache CacheBackend
}

func (cs *cacheSource) mapID() uint32 {
	return cs.cache.MapID()
}

func (cs *cacheSource) collect(bounds spatialmath.AABB, _ scene.Mask) []batch {
	refs := cs.cache.QueryTrianglesInAABB(bounds)
	if len(refs) == 0 {
		return nil
	}
	tris := make([]indexedTriangle, 0, len(refs))
	for _, ref := range refs {
		tris = append(tris, indexedTriangle{
			tri:      ref.Tri,
			index:    ref.LocalIndex,
			instance: ref.Instance,
		})
	}
	return []batch{{tris: tris}}
}


package collision

import (
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// terrainBatch pulls ground triangles for the query footprint. Terrain is
// already in storage space, so the batch has no frame; triangles carry the
// reserved terrain instance and a per-query sequential index. The footprint
// comes from the padded 3D bounds, which already include the volume radius.
func (ls *liveSource) terrainBatch(bounds spatialmath.AABB) (batch, bool) {
	terr := ls.sc.Terrain()
	if terr == nil {
		return batch{}, false
	}
	raw := terr.TerrainTriangles(ls.sc.MapID(), bounds.Footprint())
	if len(raw) == 0 {
		return batch{}, false
	}
	tris := make([]indexedTriangle, 0, len(raw))
	for i, tri := range raw {
		tris = append(tris, indexedTriangle{
			tri:      tri,
			index:    int32(i),
			instance: scene.TerrainInstanceID,
		})
	}
	return batch{tris: tris}, true
}

package collision

import (
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// instanceBatch builds the narrow-phase view of one instance: the query
// box drops into the instance's local frame, the mesh filters by that
// local region, and each surviving triangle is re-checked against the
// region before being recorded with its local index. Triangles stay in
// local space; transforming the query volume into the frame is far
// cheaper than transforming the mesh out of it.
func (ls *liveSource) instanceBatch(inst *scene.Instance, bounds spatialmath.AABB) (batch, bool) {
	frame := newLocalFrame(inst.Transform)
	localRegion := frame.toLocal.ApplyToAABB(bounds)
	candidates := inst.Mesh.TrianglesInBounds(localRegion)
	if len(candidates) == 0 {
		return batch{}, false
	}
	tris := make([]indexedTriangle, 0, len(candidates))
	for _, i := range candidates {
		tri := inst.Mesh.Triangle(i)
		if !tri.Bounds().Intersects(localRegion) {
			continue
		}
		tris = append(tris, indexedTriangle{
			tri:      tri,
			index:    int32(i),
			instance: inst.ID,
		})
	}
	if len(tris) == 0 {
		return batch{}, false
	}
	return batch{frame: frame, tris: tris}, true
}

package collision

import (
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// resolveInstances shortlists the instances a padded storage-space box can
// touch. The spatial index answers first; a linear scan over every
// instance then runs unconditionally, because index implementations are
// allowed to miss boxes that graze cell boundaries and a missed wall is a
// player walking through it. The scan re-adds anything the index skipped
// that matches the mask, has mesh data, and intersects the box.
func (ls *liveSource) resolveInstances(bounds spatialmath.AABB, mask scene.Mask) []*scene.Instance {
	var out []*scene.Instance
	reported := map[scene.InstanceID]struct{}{}
	if idx := ls.sc.Index(); idx != nil {
		for _, id := range idx.QueryAABB(bounds) {
			inst, ok := ls.sc.Instance(id)
			if !ok {
				continue
			}
			reported[id] = struct{}{}
			if !ls.queryable(inst, bounds, mask) {
				continue
			}
			out = append(out, inst)
		}
	}
	for _, inst := range ls.sc.Instances() {
		if _, ok := reported[inst.ID]; ok {
			continue
		}
		if !ls.queryable(inst, bounds, mask) {
			continue
		}
		if ls.sc.Index() != nil {
			ls.logger.Debugw("index missed an instance, fallback scan caught it",
				"instance", inst.ID)
		}
		out = append(out, inst)
	}
	return out
}

func (ls *liveSource) queryable(inst *scene.Instance, bounds spatialmath.AABB, mask scene.Mask) bool {
	return inst.Loaded() && inst.Mask.Matches(mask) && inst.Bounds.Intersects(bounds)
}

// Package scene models a static collision scene: triangle meshes placed by
// rigid transforms, heightfield terrain, liquid volumes, and the spatial
// structures used to look them up. Everything here lives in storage space,
// the mirrored-axis convention map data is authored in; the collision
// package owns the conversion from world space.
//
// A Scene is read-only once constructed. Queries against a scene whose
// index or terrain source is absent simply see less geometry; absence is
// never an error.
package scene

import (
	"github.com/meshforge/worldcollide/logging"
)

// Scene is an immutable collection of placed instances plus optional
// terrain, with an optional spatial index over the instances.
type Scene struct {
	mapID     uint32
	instances []*Instance
	byID      map[InstanceID]*Instance
	index     Index
	terrain   TerrainSource
}

// NewScene assembles a scene from its parts. Nil instances are dropped and
// duplicate IDs keep their first occurrence. Either index or terrain may be
// nil. The logger is used for construction diagnostics only.
func NewScene(
	mapID uint32,
	instances []*Instance,
	index Index,
	terrain TerrainSource,
	logger logging.Logger,
) *Scene {
	s := &Scene{
		mapID:   mapID,
		index:   index,
		terrain: terrain,
		byID:    make(map[InstanceID]*Instance, len(instances)),
	}
	loaded := 0
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		if inst.ID == TerrainInstanceID {
			logger.Warnw("instance uses the reserved terrain ID; hits on it will be attributed to terrain",
				"map", mapID)
		}
		if _, ok := s.byID[inst.ID]; ok {
			logger.Warnw("duplicate instance ID; keeping the first",
				"map", mapID, "instance", inst.ID)
			continue
		}
		s.byID[inst.ID] = inst
		s.instances = append(s.instances, inst)
		if inst.Mesh != nil {
			loaded++
		}
	}
	logger.Debugw("scene assembled",
		"map", mapID,
		"instances", len(s.instances),
		"loaded", loaded,
		"indexed", index != nil,
		"terrain", terrain != nil,
	)
	return s
}

// MapID returns the map this scene belongs to.
func (s *Scene) MapID() uint32 {
	return s.mapID
}

// Instances returns the instance list in construction order. Callers must
// not mutate it.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

// Instance looks up an instance by ID.
func (s *Scene) Instance(id InstanceID) (*Instance, bool) {
	inst, ok := s.byID[id]
	return inst, ok
}

// Index returns the instance spatial index, or nil when the scene has none.
func (s *Scene) Index() Index {
	return s.index
}

// Terrain returns the terrain source, or nil when the scene has none.
func (s *Scene) Terrain() TerrainSource {
	return s.terrain
}

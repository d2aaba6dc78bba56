package main

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
	"github.com/meshforge/worldcollide/utils"
)

const (
	demoMapID    = 1
	demoCells    = 8
	demoCellSize = 16.0
)

// boxMesh builds a closed axis-aligned box about the origin with outward
// windings.
func boxMesh(hx, hy, hz float64) *scene.StaticMesh {
	v := [8]r3.Vector{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	quads := [6][4]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{2, 3, 7, 6},
		{1, 2, 6, 5},
		{3, 0, 4, 7},
	}
	tris := make([]*spatialmath.Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			spatialmath.NewTriangle(v[q[0]], v[q[1]], v[q[2]]),
			spatialmath.NewTriangle(v[q[0]], v[q[2]], v[q[3]]),
		)
	}
	return scene.NewStaticMesh(tris)
}

// demoScene assembles a deterministic synthetic map: rolling terrain
// with a water cell, and seeded box instances scattered across it.
func demoScene(size int, seed int64, logger logging.Logger) (*scene.Scene, error) {
	heights := make([]float64, (demoCells+1)*(demoCells+1))
	for iy := 0; iy <= demoCells; iy++ {
		for ix := 0; ix <= demoCells; ix++ {
			heights[iy*(demoCells+1)+ix] = 2 * math.Sin(float64(ix)*0.7) * math.Cos(float64(iy)*0.5)
		}
	}
	hf, err := scene.NewHeightfield(demoMapID, r2.Point{}, demoCellSize, demoCells, demoCells, heights)
	if err != nil {
		return nil, err
	}
	liquid := make([]scene.Liquid, demoCells*demoCells)
	liquid[0] = scene.Liquid{Level: 1.5, Type: scene.LiquidWater}
	if err := hf.SetLiquid(liquid); err != nil {
		return nil, err
	}

	//nolint:gosec // seeded placement, not crypto
	rng := rand.New(rand.NewSource(seed))
	box := boxMesh(2, 2, 2)
	extent := int(demoCellSize) * demoCells
	insts := make([]*scene.Instance, 0, size)
	for i := 0; i < size; i++ {
		pos := r3.Vector{
			X: float64(utils.SampleRandomIntRange(4, extent-4, rng)),
			Y: float64(utils.SampleRandomIntRange(4, extent-4, rng)),
			Z: float64(utils.SampleRandomIntRange(0, 6, rng)),
		}
		yaw := float64(rng.Intn(4)) * math.Pi / 2
		tf := spatialmath.NewTransform(pos, spatialmath.NewRotationFromYaw(yaw), 1)
		insts = append(insts, &scene.Instance{
			ID:        scene.InstanceID(i + 1),
			Mask:      scene.MaskAll,
			Bounds:    tf.ApplyToAABB(box.Bounds()),
			Transform: tf,
			Mesh:      box,
		})
	}
	return scene.NewScene(demoMapID, insts, scene.NewGridIndex(insts, demoCellSize), hf, logger), nil
}

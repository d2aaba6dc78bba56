package collision

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// liquidTerrain is a flat 2x2-cell heightfield with water in the first
// cell and magma in the last.
func liquidTerrain(t *testing.T) *scene.Heightfield {
	t.Helper()
	heights := make([]float64, 9)
	hf, err := scene.NewHeightfield(1, r2.Point{X: 0, Y: 0}, 10, 2, 2, heights)
	test.That(t, err, test.ShouldBeNil)
	err = hf.SetLiquid([]scene.Liquid{
		{Level: 7.5, Type: scene.LiquidWater},
		{Type: scene.LiquidNone},
		{Type: scene.LiquidNone},
		{Level: 3, Type: scene.LiquidMagma},
	})
	test.That(t, err, test.ShouldBeNil)
	return hf
}

func poolInstance(id scene.InstanceID, level float64, ltype scene.LiquidType) *scene.Instance {
	return &scene.Instance{
		ID:        id,
		Mask:      scene.MaskCollision,
		Bounds:    spatialmath.NewAABB(r3.Vector{0, 0, 0}, r3.Vector{6, 6, 10}),
		Transform: spatialmath.NewZeroTransform(),
		Liquid:    &scene.LiquidVolume{Level: level, Type: ltype},
	}
}

func liquidEngine(t *testing.T, insts []*scene.Instance) *Engine {
	t.Helper()
	sc := scene.NewScene(1, insts, nil, liquidTerrain(t), logging.NewTestLogger(t))
	eng, err := NewEngine(sc, DefaultConfig(), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return eng
}

func TestLiquidAt(t *testing.T) {
	eng := liquidEngine(t, []*scene.Instance{poolInstance(10, 9, scene.LiquidMagma)})

	t.Run("instance pool wins over ground liquid", func(t *testing.T) {
		liq, origin, ok := eng.LiquidAt(atWorld(3, 3, 12))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, origin, test.ShouldEqual, LiquidOriginInstance)
		test.That(t, liq.Level, test.ShouldEqual, 9.0)
		test.That(t, liq.Type, test.ShouldEqual, scene.LiquidMagma)
	})

	t.Run("probe under the pool surface falls through to ground", func(t *testing.T) {
		liq, origin, ok := eng.LiquidAt(atWorld(3, 3, 8))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, origin, test.ShouldEqual, LiquidOriginTerrain)
		test.That(t, liq.Level, test.ShouldEqual, 7.5)
		test.That(t, liq.Type, test.ShouldEqual, scene.LiquidWater)
	})

	t.Run("probe under every surface", func(t *testing.T) {
		_, _, ok := eng.LiquidAt(atWorld(3, 3, 5))
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("dry ground cell outside the pool", func(t *testing.T) {
		_, _, ok := eng.LiquidAt(atWorld(13, 3, 20))
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("ground magma", func(t *testing.T) {
		liq, origin, ok := eng.LiquidAt(atWorld(13, 13, 10))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, origin, test.ShouldEqual, LiquidOriginTerrain)
		test.That(t, liq.Type, test.ShouldEqual, scene.LiquidMagma)
		test.That(t, liq.Level, test.ShouldEqual, 3.0)
	})

	t.Run("off the map", func(t *testing.T) {
		_, _, ok := eng.LiquidAt(atWorld(100, 100, 10))
		test.That(t, ok, test.ShouldBeFalse)
	})
}

func TestLiquidStackedPools(t *testing.T) {
	t.Run("highest qualifying surface wins", func(t *testing.T) {
		eng := liquidEngine(t, []*scene.Instance{
			poolInstance(10, 9, scene.LiquidMagma),
			poolInstance(11, 9.5, scene.LiquidWater),
		})
		liq, origin, ok := eng.LiquidAt(atWorld(3, 3, 12))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, origin, test.ShouldEqual, LiquidOriginInstance)
		test.That(t, liq.Level, test.ShouldEqual, 9.5)
		test.That(t, liq.Type, test.ShouldEqual, scene.LiquidWater)
	})

	t.Run("level tie goes to the lower instance", func(t *testing.T) {
		eng := liquidEngine(t, []*scene.Instance{
			poolInstance(11, 9, scene.LiquidSlime),
			poolInstance(10, 9, scene.LiquidWater),
		})
		liq, _, ok := eng.LiquidAt(atWorld(3, 3, 12))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, liq.Type, test.ShouldEqual, scene.LiquidWater)
	})
}

// Package collision answers spatial queries against a static scene:
// raycasts, discrete overlaps, and swept capsules, against either the live
// scene database or a pre-baked triangle cache. Queries are expressed in
// world space and evaluated in storage space; results come back in world
// space.
//
// The engine is synchronous and read-only over its backend, so a built
// engine is safe for concurrent queries without locking. Missing geometry
// is never an error: queries over unloaded regions return empty results.
package collision

import (
	"github.com/pkg/errors"

	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scene"
)

// Engine is the query surface. Construct with NewEngine for the live
// backend or NewCachedEngine for a baked one.
type Engine struct {
	src    candidateSource
	cfg    Config
	logger logging.Logger
	sc     *scene.Scene
}

// NewEngine builds an engine over a live scene.
func NewEngine(sc *scene.Scene, cfg Config, logger logging.Logger) (*Engine, error) {
	if sc == nil {
		return nil, errors.New("engine needs a scene")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		src:    &liveSource{sc: sc, logger: logger},
		cfg:    cfg,
		logger: logger,
		sc:     sc,
	}, nil
}

// NewCachedEngine builds an engine over a baked triangle store.
func NewCachedEngine(cache CacheBackend, cfg Config, logger logging.Logger) (*Engine, error) {
	if cache == nil {
		return nil, errors.New("engine needs a cache backend")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		src:    &cacheSource{cache: cache},
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Scene returns the live scene backing this engine, or nil for a cached
// engine.
func (e *Engine) Scene() *scene.Scene {
	return e.sc
}

// MapID returns the map the engine answers queries for.
func (e *Engine) MapID() uint32 {
	return e.src.mapID()
}

// Config returns the engine's tunables.
func (e *Engine) Config() Config {
	return e.cfg
}

// skippable reports whether a candidate triangle is too degenerate to
// test. Skipping here keeps NaNs out of every downstream predicate.
func (e *Engine) skippable(it indexedTriangle) bool {
	return it.tri.Degenerate(e.cfg.DegenerateEpsilon)
}

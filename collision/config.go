package collision

import (
	"github.com/pkg/errors"
)

// Config carries the engine's numeric tunables. Zero values are invalid;
// start from DefaultConfig and adjust.
type Config struct {
	// BroadPadding inflates every broad-phase box to absorb boundary
	// misses between the index and the exact tests.
	BroadPadding float64 `json:"broad_padding"`
	// ContactEpsilon is the surface gap below which a sweep counts as
	// touching.
	ContactEpsilon float64 `json:"contact_epsilon"`
	// CohortWindow is the time-of-impact window within which sweep hits
	// are reported together rather than letting float noise pick one.
	CohortWindow float64 `json:"cohort_window"`
	// FallbackInflation is the fractional radius inflation used by the
	// discrete end-pose recheck when the analytic sweep reports nothing.
	FallbackInflation float64 `json:"fallback_inflation"`
	// DegenerateEpsilon is the area threshold under which candidate
	// triangles are skipped.
	DegenerateEpsilon float64 `json:"degenerate_epsilon"`
	// SweepIterations bounds the conservative-advancement loop.
	SweepIterations int `json:"sweep_iterations"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		BroadPadding:      0.5,
		ContactEpsilon:    1e-4,
		CohortWindow:      1e-3,
		FallbackInflation: 0.05,
		DegenerateEpsilon: 1e-9,
		SweepIterations:   32,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.BroadPadding < 0 {
		return errors.New("broad_padding must not be negative")
	}
	if c.ContactEpsilon <= 0 {
		return errors.New("contact_epsilon must be positive")
	}
	if c.CohortWindow < 0 {
		return errors.New("cohort_window must not be negative")
	}
	if c.FallbackInflation < 0 {
		return errors.New("fallback_inflation must not be negative")
	}
	if c.DegenerateEpsilon <= 0 {
		return errors.New("degenerate_epsilon must be positive")
	}
	if c.SweepIterations < 1 {
		return errors.New("sweep_iterations must be at least 1")
	}
	return nil
}

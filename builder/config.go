// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn      = DefaultIDFn                ("0","1","2",...)
//   • rng       = nil                        (pure/deterministic unless seeded)
//   • weightFn  = constant core.DefaultEdgeWeight
//   • titleFn   = "Page <id>"
//   • locator   = "https://lvrank.invalid/<id>"
package builder

import (
	"math/rand"
	"net/url"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn     IDFn                     // index -> node ID
	rng      *rand.Rand               // nil means “no randomness”
	weightFn func(*rand.Rand) float64 // per-link weight
	titleFn  func(id string) string   // node ID -> title
	baseURL  string                   // locator prefix; locator = baseURL + url.PathEscape(id)
}

// Deterministic defaults (named, no magic strings).
const (
	defaultTitlePrefix = "Page "
	defaultBaseURL     = "https://lvrank.invalid/"
	defaultWeight      = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
		titleFn:  func(id string) string { return defaultTitlePrefix + id },
		baseURL:  defaultBaseURL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// locator renders the node locator for id.
func (c builderConfig) locator(id string) string {
	return c.baseURL + url.PathEscape(id)
}

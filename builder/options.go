// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// A nil fn leaves the current scheme untouched.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-link weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight sets every generated link to weight w.
// Panics when w is negative, NaN or Inf.
func WithConstantWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic("builder: WithConstantWeight(w) requires finite w >= 0")
	}
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeights draws each link weight from U[lo, hi). Requires an RNG
// (WithSeed) at build time; without one every link gets lo.
// Panics unless 0 <= lo <= hi.
func WithUniformWeights(lo, hi float64) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithUniformWeights requires 0 <= lo <= hi")
	}
	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	})
}

// WithTitleFn sets how node titles are derived from IDs. Panics on nil.
func WithTitleFn(fn func(id string) string) BuilderOption {
	if fn == nil {
		panic("builder: WithTitleFn(nil)")
	}
	return func(c *builderConfig) { c.titleFn = fn }
}

// WithBaseURL sets the locator prefix for generated nodes.
func WithBaseURL(base string) BuilderOption {
	return func(c *builderConfig) { c.baseURL = base }
}

// SPDX-License-Identifier: MIT

// Package pagerank: functional configuration of an Engine.
// Numeric values that can only come from a programmer mistake panic at the
// option call site; values that may come from user configuration (damping,
// method) are checked by New and reported as errors.
package pagerank

import (
	"math"
	"runtime"
	"strings"

	"github.com/katalvlaran/lvrank/matrix"
	"go.uber.org/zap"
)

const (
	// DefaultDamping is the probability of following a link rather than teleporting.
	DefaultDamping = 0.85

	// DefaultDenseLimit is the largest node count MethodAuto solves through the null space.
	DefaultDenseLimit = 1500

	// DefaultMaxIterations caps power iteration.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the L1 change below which power iteration stops.
	DefaultTolerance = 1e-12
)

const (
	panicDenseLimit    = "pagerank: WithDenseLimit: limit must be >= 1"
	panicMaxIterations = "pagerank: WithMaxIterations: n must be >= 1"
	panicTolerance     = "pagerank: WithTolerance: tol must be finite and > 0"
	panicParallelism   = "pagerank: WithParallelism: n must be >= 0"
)

// Method selects the steady-state solver.
type Method uint8

const (
	// MethodAuto uses the null space up to the dense limit and power iteration above it.
	MethodAuto Method = iota
	// MethodNullSpace always reduces G − I and reads its null space.
	MethodNullSpace
	// MethodPower always iterates x ← G·x.
	MethodPower
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodNullSpace:
		return "nullspace"
	case MethodPower:
		return "power"
	default:
		return "unknown"
	}
}

// ParseMethod maps "auto", "nullspace" and "power" (case-insensitive) to a Method.
// The empty string means MethodAuto.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return MethodAuto, nil
	case "nullspace", "null-space":
		return MethodNullSpace, nil
	case "power":
		return MethodPower, nil
	default:
		return MethodAuto, ErrUnknownMethod
	}
}

// Option configures an Engine.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	damping     float64
	eps         float64
	method      Method
	denseLimit  int
	maxIter     int
	tolerance   float64
	parallelism int // 0 = runtime.NumCPU()
	logger      *zap.Logger
}

func defaultOptions() Options {
	return Options{
		damping:    DefaultDamping,
		eps:        matrix.DefaultEpsilon,
		method:     MethodAuto,
		denseLimit: DefaultDenseLimit,
		maxIter:    DefaultMaxIterations,
		tolerance:  DefaultTolerance,
		logger:     zap.NewNop(),
	}
}

// WithDamping sets the damping factor d. New rejects d outside (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) { o.damping = d }
}

// WithEpsilon sets the numeric tolerance handed to the matrix layer.
// It panics under the same conditions as matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validates
	return func(o *Options) { o.eps = eps }
}

// WithMethod selects the solver. New rejects values other than the Method constants.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithDenseLimit sets the node count above which MethodAuto switches to power iteration.
func WithDenseLimit(limit int) Option {
	if limit < 1 {
		panic(panicDenseLimit)
	}
	return func(o *Options) { o.denseLimit = limit }
}

// WithMaxIterations caps power iteration.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the power-iteration stopping threshold (L1 change per step).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}
	return func(o *Options) { o.tolerance = tol }
}

// WithParallelism bounds the number of concurrent passes in RankAll; 0 means NumCPU.
func WithParallelism(n int) Option {
	if n < 0 {
		panic(panicParallelism)
	}
	return func(o *Options) { o.parallelism = n }
}

// WithLogger attaches a logger for per-pass debug records. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func (o Options) workers() int {
	if o.parallelism > 0 {
		return o.parallelism
	}

	return runtime.NumCPU()
}

func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(o.eps)}
}

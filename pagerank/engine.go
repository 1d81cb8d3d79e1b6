// SPDX-License-Identifier: MIT

package pagerank

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/stochastic"
	"go.uber.org/zap"
)

const (
	opRank         = "pagerank.Rank"
	opRankMatching = "pagerank.RankMatching"
)

// Engine runs ranking passes with a fixed configuration. It holds no
// mutable state and may be shared between goroutines.
type Engine struct {
	opts  Options
	mopts []matrix.Option
}

// Run is the outcome of one ranking pass.
type Run struct {
	ID         string        // random UUID, also logged as run_id
	Method     Method        // solver actually used (never MethodAuto)
	Iterations int           // power-iteration steps; 0 for the null-space solver
	Duration   time.Duration // wall time of the pass
	Results    []Result      // ordered, Rank = position + 1
}

// New validates opts and returns an Engine.
//
// Errors:
//   - ErrInvalidDamping when the damping factor is not in (0,1).
//   - ErrUnknownMethod when WithMethod received a value outside the Method constants.
func New(opts ...Option) (*Engine, error) {
	return build("pagerank.New", defaultOptions(), opts)
}

// With returns a new Engine carrying e's configuration with opts applied on
// top, e.g. a per-request damping override. e is unchanged.
// Errors are those of New.
func (e *Engine) With(opts ...Option) (*Engine, error) {
	return build("pagerank.Engine.With", e.opts, opts)
}

func build(op string, o Options, opts []Option) (*Engine, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !(o.damping > 0 && o.damping < 1) {
		return nil, fmt.Errorf("%s: damping %g: %w", op, o.damping, ErrInvalidDamping)
	}
	if o.method > MethodPower {
		return nil, fmt.Errorf("%s: method %d: %w", op, o.method, ErrUnknownMethod)
	}

	return &Engine{opts: o, mopts: o.matrixOptions()}, nil
}

// Damping returns the configured damping factor.
func (e *Engine) Damping() float64 { return e.opts.damping }

// Method returns the configured solver selection.
func (e *Engine) Method() Method { return e.opts.method }

// Rank ranks every node of the frozen graph g. See RankRun.
func (e *Engine) Rank(ctx context.Context, g *core.Graph) ([]Result, error) {
	run, err := e.RankRun(ctx, g)
	if err != nil {
		return nil, err
	}

	return run.Results, nil
}

// RankRun performs one ranking pass over g and reports its metadata.
//
// Implementation:
//   - Stage 1: require a frozen graph; build the transition matrix A.
//   - Stage 2: pick the solver (MethodAuto: null space while N ≤ dense limit).
//   - Stage 3a (null space): G = d·A + (1−d)·B, re-validated as stochastic,
//     then SteadyState(G).
//   - Stage 3b (power): iterate on A with uniform teleport.
//   - Stage 4: order by score desc / ID asc; attach Title and Locator.
//
// Behavior highlights:
//   - The same graph and options always produce the same ordering.
//   - A single node scores exactly 1.
//
// Errors:
//   - core.ErrGraphNil, core.ErrNotFrozen.
//   - stochastic.ErrNonStochastic, matrix.ErrNumericInstability,
//     ErrNoUniqueSteadyState, ErrNotConverged.
//   - ctx.Err() (wrapped), e.g. context.DeadlineExceeded.
//
// Complexity:
//   - Null space: O(N³) time, O(N²) space. Power: O(k·N²) time for k steps.
func (e *Engine) RankRun(ctx context.Context, g *core.Graph) (*Run, error) {
	start := time.Now()
	if err := core.RequireFrozen(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}
	tr, err := stochastic.Build(g, e.mopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	run := &Run{ID: uuid.NewString(), Method: e.solverFor(tr.Size())}
	var scores []float64
	switch run.Method {
	case MethodPower:
		scores, run.Iterations, err = powerIterate(ctx, tr.Matrix(), e.opts.damping, e.opts.maxIter, e.opts.tolerance)
	default:
		scores, err = e.nullSpaceScores(ctx, tr.Matrix())
	}
	if err != nil {
		e.opts.logger.Debug("ranking pass failed",
			zap.String("run_id", run.ID),
			zap.Int("nodes", tr.Size()),
			zap.Stringer("method", run.Method),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	run.Results, err = decorate(g, tr, scores)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}
	run.Duration = time.Since(start)

	e.opts.logger.Debug("ranking pass",
		zap.String("run_id", run.ID),
		zap.Int("nodes", tr.Size()),
		zap.Int("dangling", len(tr.Dangling())),
		zap.Stringer("method", run.Method),
		zap.Int("iterations", run.Iterations),
		zap.Duration("duration", run.Duration))

	return run, nil
}

// RankMatching ranks only the nodes whose title matches term (see Search),
// on the subgraph induced by them. Links leaving the matching set are
// dropped, so scores reflect the matching pages alone. No match yields an
// empty result and no error.
func (e *Engine) RankMatching(ctx context.Context, g *core.Graph, term string) ([]Result, error) {
	if err := core.RequireFrozen(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opRankMatching, err)
	}
	m := newMatcher(term)
	keep := make(map[string]bool)
	for _, n := range g.Nodes() {
		if m.match(n.Title) {
			keep[n.ID] = true
		}
	}
	if len(keep) == 0 {
		return []Result{}, nil
	}

	rs, err := e.Rank(ctx, core.InducedSubgraph(g, keep))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRankMatching, err)
	}

	return rs, nil
}

// Rank ranks g with damping d and default options.
func Rank(ctx context.Context, g *core.Graph, d float64) ([]Result, error) {
	e, err := New(WithDamping(d))
	if err != nil {
		return nil, err
	}

	return e.Rank(ctx, g)
}

func (e *Engine) solverFor(n int) Method {
	if e.opts.method == MethodAuto {
		if n > e.opts.denseLimit {
			return MethodPower
		}
		return MethodNullSpace
	}

	return e.opts.method
}

// nullSpaceScores forms the Google matrix from a and solves it exactly.
func (e *Engine) nullSpaceScores(ctx context.Context, a *matrix.Dense) ([]float64, error) {
	n := a.Rows()
	d := e.opts.damping

	follow, err := matrix.Scale(a, d)
	if err != nil {
		return nil, err
	}
	teleport, err := matrix.NewFilled(n, n, (1-d)/float64(n))
	if err != nil {
		return nil, err
	}
	raw, err := matrix.Add(follow, teleport)
	if err != nil {
		return nil, err
	}
	google, err := matrix.AsStochastic(raw, e.mopts...)
	if err != nil {
		return nil, err
	}
	x, err := SteadyState(ctx, google, e.mopts...)
	if err != nil {
		return nil, err
	}

	return x.Values(), nil
}

func decorate(g *core.Graph, tr *stochastic.Transition, scores []float64) ([]Result, error) {
	ids := tr.IDs()
	rs := make([]Result, len(ids))
	for i, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		rs[i] = Result{ID: id, Title: n.Title, Locator: n.Locator, Score: scores[i]}
	}
	orderResults(rs)

	return rs, nil
}

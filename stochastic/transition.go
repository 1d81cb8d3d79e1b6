// SPDX-License-Identifier: MIT
// Package stochastic - graph → column-stochastic transition matrix.
//
// Deliverables:
//   1) Stable index: node i ↔ row/column i, in core.Graph.NodeIDs() order (ID asc).
//   2) Column j holds the out-link distribution of node j: A[i][j] = w(j→i) / Σ_k w(j→k).
//   3) Dangling nodes (no out-links) teleport uniformly: column j = 1/N.
//   4) The result is validated by matrix.AsStochastic and tagged KindStochastic.
//
// AI-Hints:
//   - Parallel links were already accumulated by core, so a page that links
//     to another twice gives that target twice the share.
//   - A node whose out-links all carry weight 0 has no distribution to offer;
//     it is reported as ErrNonStochastic rather than silently treated as dangling.

package stochastic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/matrix"
)

const opBuild = "stochastic.Build"

var (
	// ErrEmptyGraph indicates a graph without nodes; there is nothing to rank.
	ErrEmptyGraph = errors.New("stochastic: graph has no nodes")

	// ErrNonStochastic is matrix.ErrNonStochastic, re-exported so callers of
	// this package need not import matrix to classify the failure.
	ErrNonStochastic = matrix.ErrNonStochastic

	// ErrGraphNil is core.ErrGraphNil, re-exported for the same reason.
	ErrGraphNil = core.ErrGraphNil
)

// Transition is a column-stochastic matrix together with its node index.
// It is immutable.
type Transition struct {
	m        *matrix.Dense  // KindStochastic
	ids      []string       // index → node ID
	index    map[string]int // node ID → index
	dangling []string       // nodes whose column is uniform, ID asc
}

// Build derives the transition matrix of g.
//
// Implementation:
//   - Stage 1: validate g (non-nil, at least one node).
//   - Stage 2: for each node j in ID order, read its sorted out-edges and
//     write w/total into column j, or 1/N when j is dangling.
//   - Stage 3: matrix.AsStochastic(opts...) verifies and tags the result.
//
// Behavior highlights:
//   - g is only read; it does not have to be frozen, but concurrent writers
//     make the snapshot arbitrary. Rankers enforce frozen graphs upstream.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph.
//   - ErrNonStochastic when a node's out-weights sum to 0 or validation fails.
//
// Complexity:
//   - Time O(N² + E log E), Space O(N²).
func Build(g *core.Graph, opts ...matrix.Option) (*Transition, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opBuild, ErrGraphNil)
	}
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opBuild, ErrEmptyGraph)
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	data := make([]float64, n*n)
	uniform := 1 / float64(n)
	dangling := make([]string, 0)
	var (
		j, i  int
		total float64
	)
	for j = 0; j < n; j++ {
		out, err := g.OutEdges(ids[j])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
		if len(out) == 0 {
			for i = 0; i < n; i++ {
				data[i*n+j] = uniform
			}
			dangling = append(dangling, ids[j])
			continue
		}

		total = 0
		for _, e := range out { // sorted by destination: fixed summation order
			total += e.Weight
		}
		if total <= 0 {
			return nil, fmt.Errorf("%s: node %q has out-links of total weight %g: %w", opBuild, ids[j], total, ErrNonStochastic)
		}
		for _, e := range out {
			i = index[e.To]
			data[i*n+j] = e.Weight / total
		}
	}

	raw, err := matrix.NewDense(n, n, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	s, err := matrix.AsStochastic(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	return &Transition{m: s, ids: ids, index: index, dangling: dangling}, nil
}

// Matrix returns the verified transition matrix (KindStochastic).
func (t *Transition) Matrix() *matrix.Dense { return t.m }

// Size returns N.
func (t *Transition) Size() int { return len(t.ids) }

// IDs returns a copy of the index → node ID table.
func (t *Transition) IDs() []string { return append([]string(nil), t.ids...) }

// ID returns the node ID at index i.
func (t *Transition) ID(i int) (string, bool) {
	if i < 0 || i >= len(t.ids) {
		return "", false
	}

	return t.ids[i], true
}

// Index returns the matrix index of node id.
func (t *Transition) Index(id string) (int, bool) {
	i, ok := t.index[id]

	return i, ok
}

// Dangling returns the IDs whose columns were filled uniformly.
func (t *Transition) Dangling() []string { return append([]string(nil), t.dangling...) }

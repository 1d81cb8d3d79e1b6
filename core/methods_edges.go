// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Determinism:
//   - Edges() is sorted by (From, To); OutEdges() by To.
//
// Concurrency:
//   - All methods take g.mu; readers use RLock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge adds a directed link from→to with the given weight. Adding an
// existing pair accumulates the weight.
//
// Implementation:
//   - Stage 1: validate weight (finite, ≥ 0) and loop policy.
//   - Stage 2: under the write lock, require both endpoints and not frozen.
//   - Stage 3: accumulate into out[from][to].
//
// Errors:
//   - ErrBadWeight, ErrLoopNotAllowed, ErrFrozen, ErrNodeNotFound.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%s→%s weight %g: %w", from, to, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%q: %w", from, ErrLoopNotAllowed)
	}
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("source %q: %w", from, ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("destination %q: %w", to, ErrNodeNotFound)
	}

	bucket, ok := g.out[from]
	if !ok {
		bucket = make(map[string]float64)
		g.out[from] = bucket
	}
	if _, seen := bucket[to]; !seen {
		g.edges++
	}
	bucket[to] += weight

	return nil
}

// AddLink adds a from→to edge with DefaultEdgeWeight.
func (g *Graph) AddLink(from, to string) error {
	return g.AddEdge(from, to, DefaultEdgeWeight)
}

// HasEdge reports whether a from→to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the accumulated from→to weight.
// Errors: ErrNodeNotFound when either endpoint or the edge is missing.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.out[from][to]
	if !ok {
		return 0, fmt.Errorf("edge %s→%s: %w", from, to, ErrNodeNotFound)
	}

	return w, nil
}

// OutEdges returns id's outgoing edges sorted by destination ID.
// A dangling node (no links out) yields an empty slice.
// Errors: ErrNodeNotFound.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	bucket := g.out[id]
	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// OutWeight returns the total weight leaving id (0 for a dangling node).
// Errors: ErrNodeNotFound.
func (g *Graph) OutWeight(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}
	bucket := g.out[id]
	keys := make([]string, 0, len(bucket))
	for to := range bucket {
		keys = append(keys, to)
	}
	sort.Strings(keys) // fixed summation order keeps the result bit-stable

	var sum float64
	for _, to := range keys {
		sum += bucket[to]
	}

	return sum, nil
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for from, bucket := range g.out {
		for to, w := range bucket {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct from→to pairs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

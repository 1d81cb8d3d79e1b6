// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Bulk construction facade used by loaders (crawler output, stores).
// Policy:
//   - Load validates everything before returning; a failed Load returns no graph.

package core

import "fmt"

// Load builds a Graph from node and edge lists and freezes it.
//
// Implementation:
//   - Stage 1: AddNode for every node in input order.
//   - Stage 2: AddEdge for every edge in input order; a spec without a
//     Weight is a plain link of DefaultEdgeWeight, an explicit weight
//     (including 0) is taken as-is.
//   - Stage 3: Freeze.
//
// Errors (first failure wins, wrapped with its position):
//   - ErrEmptyNodeID, ErrDuplicateNode (nodes).
//   - ErrNodeNotFound, ErrBadWeight, ErrLoopNotAllowed (edges).
//
// Complexity: O(V + E).
func Load(nodes []Node, edges []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for i, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("core.Load: node %d: %w", i, err)
		}
	}
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.weight()); err != nil {
			return nil, fmt.Errorf("core.Load: edge %d: %w", i, err)
		}
	}
	g.Freeze()

	return g, nil
}

// RequireFrozen returns ErrGraphNil or ErrNotFrozen unless g is a frozen graph.
func RequireFrozen(g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Frozen() {
		return ErrNotFrozen
	}

	return nil
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Nodes    int
	Edges    int
	Dangling int // nodes without outgoing edges
	Loops    int // self-links
	Frozen   bool
}

// Stats returns counts for diagnostics and logging.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: g.edges, Frozen: g.frozen}
	for id := range g.nodes {
		bucket := g.out[id]
		if len(bucket) == 0 {
			s.Dangling++
		}
		if _, ok := bucket[id]; ok {
			s.Loops++
		}
	}

	return s
}

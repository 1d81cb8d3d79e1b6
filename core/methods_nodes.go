// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return results sorted by ID ascending.
//
// Concurrency:
//   - All methods take g.mu; readers use RLock.

package core

import (
	"fmt"
	"sort"
)

// AddNode registers n.
//
// Errors:
//   - ErrFrozen after Freeze.
//   - ErrEmptyNodeID if n.ID == "".
//   - ErrDuplicateNode if the ID is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%q: %w", n.ID, ErrDuplicateNode)
	}
	cp := n
	g.nodes[n.ID] = &cp

	return nil
}

// HasNode reports whether id exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	_, ok := g.nodes[id]
	g.mu.RUnlock()

	return ok
}

// Node returns a copy of the node with the given id.
// Errors: ErrNodeNotFound.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	return *n, nil
}

// Nodes returns copies of all nodes sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending. The position of an ID in
// this slice is its index in every matrix built from the graph.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Freeze closes the graph for writes. Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Looped reports whether self-links are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only nodes in 'keep' and edges with both endpoints kept.

package core

// InducedSubgraph returns a new, frozen Graph induced by the set "keep" of
// node IDs: the result contains only nodes whose keep[id] is true, and every
// edge whose endpoints are both kept, with its accumulated weight. The loop
// policy of g is preserved. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	out.allowLoops = g.allowLoops
	for id, n := range g.nodes {
		if keep[id] {
			cp := *n
			out.nodes[id] = &cp
		}
	}
	for from, bucket := range g.out {
		if !keep[from] {
			continue
		}
		for to, w := range bucket {
			if !keep[to] {
				continue
			}
			nb, ok := out.out[from]
			if !ok {
				nb = make(map[string]float64)
				out.out[from] = nb
			}
			nb[to] = w
			out.edges++
		}
	}
	g.mu.RUnlock()

	out.frozen = true

	return out
}

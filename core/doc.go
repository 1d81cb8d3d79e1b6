// Package core provides the thread-safe, in-memory link graph that the
// ranking pipeline consumes.
//
// The Graph G = (V,E) is a directed, weighted multigraph collapsed into
// simple edges:
//
//   - Nodes carry an ID (unique, non-empty), a human-readable Title and a
//     Locator (typically the URL the crawler fetched).
//   - Edges are directed From→To with a finite, non-negative Weight.
//     Adding the same From→To pair twice accumulates the weights, so a page
//     linking to another page three times yields weight 3.
//   - Self-links are allowed unless the graph was built WithoutLoops().
//
// Lifecycle: single writer, then freeze.
//
//	g := core.NewGraph()
//	_ = g.AddNode(core.Node{ID: "a", Title: "Alpha"})
//	_ = g.AddNode(core.Node{ID: "b", Title: "Beta"})
//	_ = g.AddEdge("a", "b", 1)
//	g.Freeze()
//
// After Freeze every mutation returns ErrFrozen, and the graph can be read
// by any number of goroutines. Ranking requires a frozen graph, so a pass
// never observes a half-written crawl. Load builds and freezes in one call.
//
// Determinism: Nodes(), NodeIDs(), Edges() and OutEdges() all return results
// sorted by ID. The position of a node in NodeIDs() is its matrix index.
package core

// SPDX-License-Identifier: MIT

// Package lvrank ranks the pages of a crawled link graph by PageRank and
// serves the ranking to title search.
//
// The library packages:
//
//	matrix/     - dense matrices and vectors with kind tags, RREF, null space
//	core/       - directed weighted link graph, write-then-freeze
//	stochastic/ - graph → column-stochastic transition matrix
//	pagerank/   - damped ranking engine (null-space or power solver), search
//	builder/    - deterministic fixtures: cycles, stars, paths, random crawls
//	store/      - persisted graphs: JSON-Lines files, bbolt, SQLite
//
// The lvrank command (cmd/lvrank) wires the core into a CLI and an HTTP
// query service with a bleve title index and file-watch reloads.
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(4))
//	results, _ := pagerank.Rank(ctx, g, 0.85)
//	// results[0].ID == "D": every page links to D.
package lvrank

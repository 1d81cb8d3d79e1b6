// Package builder provides deterministic, functional-options style link-graph
// fixtures: the topologies the ranking tests reason about (cycles, stars,
// chains, complete graphs, disjoint cycles) and seeded random crawls for the
// `lvrank generate` command and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph, run every
//     Constructor in order, freeze the result.
//   - Constructors (impl_*.go):
//     – Cycle(n):           0→1→…→n-1→0.
//     – Path(n):            0→1→…→n-1; the last node is dangling.
//     – Star(n):            leaves 0..n-2 all link to hub n-1; the hub is dangling.
//     – Complete(n):        every ordered pair i≠j.
//     – DisjointCycles(k,m): k separate m-cycles (closed link classes).
//     – RandomSparse(n,p):  every ordered pair independently with probability p.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: ID scheme, RNG, weight, title and locator policy.
//   - Node-ID schemes (IDFn): decimal, single letters, Excel columns, base-36, hex, prefix+number.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return wrapped sentinel errors.
package builder

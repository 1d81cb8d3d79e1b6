// SPDX-License-Identifier: MIT

// Package pagerank ranks the nodes of a frozen link graph by their long-run
// visitation probability under a damped random walk.
//
// A pass runs in five steps:
//
//  1. stochastic.Build turns the graph into a column-stochastic transition
//     matrix A (dangling nodes teleport uniformly).
//  2. The Google matrix G = d·A + (1−d)·B is formed, where B is the all-1/N
//     matrix and d the damping factor, and G is re-validated as stochastic.
//  3. SteadyState reduces H = G − I to row-echelon form and reads its null
//     space; a unique steady state is a single basis vector.
//  4. The basis vector is scaled to sum 1.
//  5. Nodes are ordered by score descending, ties by node ID ascending, and
//     decorated with their title and locator.
//
// Large graphs may use power iteration instead of step 3 (MethodPower, or
// MethodAuto above the dense limit). Both methods agree to within the
// configured tolerance on graphs where either is applicable.
//
// Engines are immutable after New and safe for concurrent use; RankAll runs
// independent passes on a bounded worker set.
package pagerank

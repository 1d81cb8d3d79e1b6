// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_cycle.go - Cycle(n) and DisjointCycles(k, m).
//
// Contract:
//   - Cycle: n ≥ 2 (else ErrTooFewVertices); links idFn(i)→idFn((i+1) mod n).
//   - DisjointCycles: k ≥ 1 and m ≥ 2; cycle c uses indices c*m .. c*m+m-1.
//   - Nodes are added in ascending index order; links emitted in the same order.
//
// Complexity:
//   - Time O(n) / O(k*m), Space O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodCycle          = "Cycle"
	methodDisjointCycles = "DisjointCycles"
	minCycleNodes        = 2
	minCycleCount        = 1
)

// Cycle returns a Constructor that builds the directed ring 0→1→…→n-1→0.
// Every node has exactly one out-link and one in-link, so the stationary
// distribution of the ring is uniform.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodCycle, 0, n)
	}
}

// DisjointCycles returns a Constructor for k separate directed m-cycles.
// Each cycle is a closed class: once the walk enters it, it never leaves.
func DisjointCycles(k, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCycleCount {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodDisjointCycles, k, minCycleCount, ErrTooFewVertices)
		}
		if m < minCycleNodes {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodDisjointCycles, m, minCycleNodes, ErrTooFewVertices)
		}
		for c := 0; c < k; c++ {
			if err := ring(g, cfg, methodDisjointCycles, c*m, m); err != nil {
				return err
			}
		}

		return nil
	}
}

// ring adds nodes offset..offset+n-1 and closes them into a directed cycle.
func ring(g *core.Graph, cfg builderConfig, method string, offset, n int) error {
	ids, err := ensureNodes(g, cfg, method, offset, offset+n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err = link(g, cfg, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}

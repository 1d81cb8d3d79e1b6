// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Leaves idFn(0..n-2) each link to the hub idFn(n-1).
//   - The hub has no out-links (dangling); StarBack adds hub→leaf links.
//
// Determinism:
//   - Nodes added in ascending index order; spokes emitted leaf 0 first.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for an inward star: n-1 leaves pointing at one
// dangling hub. With SymbolIDs and n=4 this is A,B,C → D.
func Star(n int) Constructor {
	return star(n, false)
}

// StarBack is Star with the hub linking back to every leaf, so no node is dangling.
func StarBack(n int) Constructor {
	return star(n, true)
}

func star(n int, back bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := ensureNodes(g, cfg, methodStar, 0, n)
		if err != nil {
			return err
		}
		hub := ids[n-1]
		for _, leaf := range ids[:n-1] {
			if err = link(g, cfg, methodStar, leaf, hub); err != nil {
				return err
			}
			if back {
				if err = link(g, cfg, methodStar, hub, leaf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_path.go - Path(n), Complete(n) and Isolated(n).
//
// Contract:
//   - Path: n ≥ 2; links i→i+1; the last node is dangling.
//   - Complete: n ≥ 2; every ordered pair i≠j, emitted i asc then j asc.
//   - Isolated: n ≥ 1; nodes only, no links.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodPath       = "Path"
	methodComplete   = "Complete"
	methodIsolated   = "Isolated"
	minPathNodes     = 2
	minCompleteNodes = 2
	minIsolatedNodes = 1
)

// Path returns a Constructor for the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := ensureNodes(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor linking every node to every other node.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := ensureNodes(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n nodes without any links.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		_, err := ensureNodes(g, cfg, methodIsolated, 0, n)

		return err
	}
}

// Package builder: internal helpers shared by constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the constructor name for uniform reporting.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// ensureNode adds node idFn(idx) unless it already exists, so constructors
// can be composed over shared nodes. Returns the node ID.
func ensureNode(g *core.Graph, cfg builderConfig, method string, idx int) (string, error) {
	id := cfg.idFn(idx)
	err := g.AddNode(core.Node{ID: id, Title: cfg.titleFn(id), Locator: cfg.locator(id)})
	if err != nil && !errors.Is(err, core.ErrDuplicateNode) {
		return "", fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return id, nil
}

// ensureNodes adds idFn(from..to-1) in ascending order and returns their IDs.
func ensureNodes(g *core.Graph, cfg builderConfig, method string, from, to int) ([]string, error) {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id, err := ensureNode(g, cfg, method, i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// link adds u→v with the configured weight.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvrank/core"
)

const (
	// Format names the persisted layout in every header.
	Format = "lvrank-graph"
	// Version is the current layout version.
	Version = 1
)

// Record is one crawled page and its outgoing links. Weights, when present,
// pairs with Links index by index; absent weights mean 1 per link.
type Record struct {
	ID      string    `json:"id"`
	Title   string    `json:"title,omitempty"`
	Locator string    `json:"locator,omitempty"`
	Links   []string  `json:"links,omitempty"`
	Weights []float64 `json:"weights,omitempty"`
}

// Header precedes the records of a stored graph.
type Header struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
	Nodes   int    `json:"nodes"`
}

// NewHeader returns the header for n records.
func NewHeader(n int) Header { return Header{Format: Format, Version: Version, Nodes: n} }

func (h Header) check() error {
	if h.Format != Format || h.Version != Version {
		return fmt.Errorf("header format %q version %d: %w", h.Format, h.Version, ErrInconsistent)
	}
	if h.Nodes < 0 {
		return fmt.Errorf("header node count %d: %w", h.Nodes, ErrInconsistent)
	}

	return nil
}

// checkCount compares the number of records read with the header.
func (h Header) checkCount(got int) error {
	switch {
	case got < h.Nodes:
		return fmt.Errorf("%d of %d records: %w", got, h.Nodes, ErrTruncated)
	case got > h.Nodes:
		return fmt.Errorf("%d records, header declares %d: %w", got, h.Nodes, ErrInconsistent)
	}

	return nil
}

// Validate checks that records describe a graph: non-empty unique IDs,
// links to known IDs only, and one weight per link when weights are given.
func Validate(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("record %d: empty id: %w", i, ErrInconsistent)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("record %d: duplicate id %q: %w", i, r.ID, ErrInconsistent)
		}
		seen[r.ID] = struct{}{}
		if r.Weights != nil && len(r.Weights) != len(r.Links) {
			return fmt.Errorf("record %q: %d weights for %d links: %w", r.ID, len(r.Weights), len(r.Links), ErrInconsistent)
		}
	}
	for _, r := range records {
		for _, to := range r.Links {
			if _, ok := seen[to]; !ok {
				return fmt.Errorf("record %q: link to unknown id %q: %w", r.ID, to, ErrInconsistent)
			}
		}
	}

	return nil
}

// ToGraph validates records and loads them into a frozen graph.
// Repeated links accumulate; weights are checked by core (finite, ≥ 0).
func ToGraph(records []Record, opts ...core.GraphOption) (*core.Graph, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}

	nodes := make([]core.Node, len(records))
	var edges []core.EdgeSpec
	for i, r := range records {
		nodes[i] = core.Node{ID: r.ID, Title: r.Title, Locator: r.Locator}
		for k, to := range r.Links {
			if r.Weights == nil {
				edges = append(edges, core.Link(r.ID, to))
				continue
			}
			edges = append(edges, core.WeightedLink(r.ID, to, r.Weights[k]))
		}
	}

	return core.Load(nodes, edges, opts...)
}

// FromGraph lists g as records sorted by ID with links sorted by target.
// Weights are emitted only for pages with a link whose weight is not 1.
func FromGraph(g *core.Graph) ([]Record, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	nodes := g.Nodes()
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		edges, err := g.OutEdges(n.ID)
		if err != nil {
			return nil, err
		}
		r := Record{ID: n.ID, Title: n.Title, Locator: n.Locator}
		weighted := false
		for _, e := range edges {
			r.Links = append(r.Links, e.To)
			if e.Weight != core.DefaultEdgeWeight {
				weighted = true
			}
		}
		if weighted {
			r.Weights = make([]float64, len(edges))
			for k, e := range edges {
				r.Weights[k] = e.Weight
			}
		}
		out = append(out, r)
	}

	return out, nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return nil
}

// Package search provides an in-memory Bleve index over page titles.
//
// The ranking engine filters by plain substring; this index adds analysed
// token matching (case folding, punctuation-insensitive tokenisation), so a
// query for "go generics" also finds "Generics in Go: a tour".
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	blevequery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/katalvlaran/lvrank/core"
)

const batchSize = 1000

// Hit is one matching node.
type Hit struct {
	ID    string
	Score float64
}

// Index is a read-only title index over one graph.
type Index struct {
	index bleve.Index
	size  int
}

// Build indexes the title of every node of g.
func Build(ctx context.Context, g *core.Graph) (*Index, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	titleMapping := bleve.NewTextFieldMapping()
	// Standard analyzer: lowercase + tokenize, no stemming, so matches stay literal.
	titleMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("title", titleMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bleve index: %w", err)
	}

	nodes := g.Nodes()
	batch := index.NewBatch()
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			_ = index.Close()
			return nil, err
		}
		if err := batch.Index(n.ID, map[string]interface{}{"title": n.Title}); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to index %q: %w", n.ID, err)
		}
		if batch.Size() >= batchSize {
			if err := index.Batch(batch); err != nil {
				_ = index.Close()
				return nil, fmt.Errorf("failed to index batch: %w", err)
			}
			batch.Reset()
		}
	}
	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to index batch: %w", err)
		}
	}

	return &Index{index: index, size: len(nodes)}, nil
}

// Size returns the number of indexed nodes.
func (x *Index) Size() int { return x.size }

// Match returns the nodes whose title contains every token of term, best
// Bleve score first. A blank term matches nothing.
func (x *Index) Match(ctx context.Context, term string) ([]Hit, error) {
	if strings.TrimSpace(term) == "" || x.size == 0 {
		return nil, nil
	}
	q := bleve.NewMatchQuery(term)
	q.SetField("title")
	q.SetOperator(blevequery.MatchQueryOperatorAnd)

	req := bleve.NewSearchRequestOptions(q, x.size, 0, false)
	res, err := x.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("Bleve search failed: %w", err)
	}
	out := make([]Hit, len(res.Hits))
	for i, hit := range res.Hits {
		out[i] = Hit{ID: hit.ID, Score: hit.Score}
	}
	return out, nil
}

// MatchSet is Match as a set of node IDs.
func (x *Index) MatchSet(ctx context.Context, term string) (map[string]bool, error) {
	hits, err := x.Match(ctx, term)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(hits))
	for _, h := range hits {
		set[h.ID] = true
	}
	return set, nil
}

// Close releases the index.
func (x *Index) Close() error { return x.index.Close() }

// Package snapshot holds the ranking currently served: the frozen graph,
// its ordered results and a title index. A reload builds a complete new
// snapshot and swaps it in atomically; readers holding the old one finish
// undisturbed and the old index is released once the last of them is done.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/internal/search"
	"github.com/katalvlaran/lvrank/pagerank"
	"go.uber.org/zap"
)

// ErrNotReady is returned before the first successful load.
var ErrNotReady = errors.New("snapshot: no ranking loaded yet")

// Snapshot is one immutable ranking.
type Snapshot struct {
	RunID    string
	Method   pagerank.Method
	Duration time.Duration
	BuiltAt  time.Time
	Graph    *core.Graph
	Results  []pagerank.Result

	byID    map[string]int
	index   *search.Index
	readers sync.WaitGroup
}

// Build ranks g with engine and indexes its titles.
func Build(ctx context.Context, engine *pagerank.Engine, g *core.Graph) (*Snapshot, error) {
	run, err := engine.RankRun(ctx, g)
	if err != nil {
		return nil, err
	}
	index, err := search.Build(ctx, g)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(run.Results))
	for i, r := range run.Results {
		byID[r.ID] = i
	}
	return &Snapshot{
		RunID:    run.ID,
		Method:   run.Method,
		Duration: run.Duration,
		BuiltAt:  time.Now().UTC(),
		Graph:    g,
		Results:  run.Results,
		byID:     byID,
		index:    index,
	}, nil
}

// Result returns the ranked entry of node id.
func (s *Snapshot) Result(id string) (pagerank.Result, bool) {
	i, ok := s.byID[id]
	if !ok {
		return pagerank.Result{}, false
	}
	return s.Results[i], true
}

// Search returns, in rank order, the results whose title matches term by
// substring (pagerank.Search) or by analysed tokens (the title index).
// A blank term returns every result.
func (s *Snapshot) Search(ctx context.Context, term string) ([]pagerank.Result, error) {
	plain := pagerank.Search(s.Results, term)
	if len(plain) == len(s.Results) {
		return plain, nil
	}
	tokens, err := s.index.MatchSet(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return plain, nil
	}

	keep := make(map[string]bool, len(plain)+len(tokens))
	for _, r := range plain {
		keep[r.ID] = true
	}
	for id := range tokens {
		keep[id] = true
	}
	out := make([]pagerank.Result, 0, len(keep))
	for _, r := range s.Results {
		if keep[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Snapshot) close() error { return s.index.Close() }

// Close releases the search index of a snapshot built outside a Holder.
func (s *Snapshot) Close() error { return s.close() }

// Loader produces the frozen graph to rank.
type Loader func(ctx context.Context) (*core.Graph, error)

// Holder owns the current snapshot and replaces it on Reload.
type Holder struct {
	engine *pagerank.Engine
	load   Loader
	logger *zap.Logger

	reloadMu sync.Mutex // serialises reloads
	mu       sync.RWMutex
	current  *Snapshot
}

// NewHolder creates an empty holder; call Reload to load the first ranking.
func NewHolder(engine *pagerank.Engine, load Loader, logger *zap.Logger) *Holder {
	return &Holder{engine: engine, load: load, logger: logging.OrNop(logger)}
}

// Reload loads and ranks a fresh graph and swaps it in. On failure the
// previous snapshot stays current.
func (h *Holder) Reload(ctx context.Context) (*Snapshot, error) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	g, err := h.load(ctx)
	if err != nil {
		h.logger.Warn("graph load failed", zap.Error(err))
		return nil, fmt.Errorf("snapshot: load: %w", err)
	}
	next, err := Build(ctx, h.engine, g)
	if err != nil {
		h.logger.Warn("ranking failed", zap.Int("nodes", g.NodeCount()), zap.Error(err))
		return nil, fmt.Errorf("snapshot: rank: %w", err)
	}

	h.mu.Lock()
	prev := h.current
	h.current = next
	h.mu.Unlock()
	h.retire(prev)

	h.logger.Info("ranking loaded",
		zap.String("run_id", next.RunID),
		zap.Int("nodes", len(next.Results)),
		zap.Int("edges", g.EdgeCount()),
		zap.Stringer("method", next.Method),
		zap.Duration("duration", next.Duration))
	return next, nil
}

// Acquire returns the current snapshot and a release func that must be
// called when the caller is done with it.
func (h *Holder) Acquire() (*Snapshot, func(), error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s := h.current
	if s == nil {
		return nil, func() {}, ErrNotReady
	}
	s.readers.Add(1)
	return s, s.readers.Done, nil
}

// Current returns the current snapshot without pinning it; use only for
// fields that outlive the index (RunID, Results, Graph).
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Close retires the current snapshot.
func (h *Holder) Close() {
	h.mu.Lock()
	prev := h.current
	h.current = nil
	h.mu.Unlock()
	h.retire(prev)
}

// retire closes s once its readers are gone. No reader can pin s after it
// left h.current, so Wait cannot race with Add.
func (h *Holder) retire(s *Snapshot) {
	if s == nil {
		return
	}
	go func() {
		s.readers.Wait()
		if err := s.close(); err != nil {
			h.logger.Debug("index close failed", zap.String("run_id", s.RunID), zap.Error(err))
		}
	}()
}

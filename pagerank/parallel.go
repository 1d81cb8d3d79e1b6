// SPDX-License-Identifier: MIT

package pagerank

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvrank/core"
)

// RankAll ranks every graph concurrently on at most WithParallelism workers
// and returns the results in input order. The first failure cancels the
// passes still running and is returned with the index of its graph.
func (e *Engine) RankAll(ctx context.Context, graphs []*core.Graph) ([][]Result, error) {
	out := make([][]Result, len(graphs))
	if len(graphs) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		jobs     = make(chan int)
	)
	workers := e.opts.workers()
	if workers > len(graphs) {
		workers = len(graphs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rs, err := e.Rank(ctx, graphs[i])
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("pagerank.RankAll: graph %d: %w", i, err)
						cancel()
					})
					continue
				}
				out[i] = rs
			}
		}()
	}

feed:
	for i := range graphs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pagerank.RankAll: %w", err)
	}

	return out, nil
}

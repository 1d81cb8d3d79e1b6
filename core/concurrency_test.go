// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on one pair
// accumulate every weight exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("V%03d", i)}))
	}
	require.NoError(t, g.AddNode(core.Node{ID: "X"}))

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddLink("X", fmt.Sprintf("V%03d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.AddLink("X", "V000")
		}()
	}
	wg.Wait()

	out, err := g.OutEdges("X")
	require.NoError(t, err)
	require.Len(t, out, num)
	w, err := g.Weight("X", "V000")
	require.NoError(t, err)
	require.Equal(t, float64(num+1), w)
}

// TestConcurrentReadsAfterFreeze validates that many readers can traverse a
// frozen graph while a late writer is rejected.
func TestConcurrentReadsAfterFreeze(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("n%02d", i)}))
	}
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddLink(fmt.Sprintf("n%02d", i), fmt.Sprintf("n%02d", (i+1)%50)))
	}
	g.Freeze()

	const readers = 50
	var wg sync.WaitGroup
	errs := make(chan error, readers+1)
	wg.Add(readers + 1)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if len(g.Edges()) != 50 || len(g.NodeIDs()) != 50 {
				errs <- fmt.Errorf("inconsistent read")
			}
		}()
	}
	go func() {
		defer wg.Done()
		errs <- g.AddNode(core.Node{ID: "late"})
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		require.ErrorIs(t, err, core.ErrFrozen)
	}
}

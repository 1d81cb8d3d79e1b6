// SPDX-License-Identifier: MIT

package pagerank

import (
	"sort"

	"github.com/katalvlaran/lvrank/matrix"
)

// closedClasses returns the closed communicating classes of the walk whose
// column-stochastic matrix is s. State j links to state i when s[i][j] > eps.
// A class is a strongly connected set of states that no link leaves; each
// one carries a steady state of its own, so their count bounds the null
// space of s − I from below.
//
// Implementation:
//   - Tarjan's strongly-connected-components DFS over the link pattern,
//     neighbours visited in index order.
//   - A component is closed when no link from it reaches another component.
//
// Output is deterministic: indices ascend within a class and classes are
// ordered by their smallest index.
//
// Complexity:
//   - Time O(N²) (dense pattern scan), Space O(N); recursion depth ≤ N.
func closedClasses(s *matrix.Dense, eps float64) [][]int {
	n := s.Rows()
	w := &sccWalker{
		n:       n,
		vals:    s.Values(),
		eps:     eps,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
		comp:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		w.index[v] = -1
	}
	for v := 0; v < n; v++ {
		if w.index[v] < 0 {
			w.visit(v)
		}
	}

	closed := make([]bool, w.count)
	for c := range closed {
		closed[c] = true
	}
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if w.linked(j, i) && w.comp[i] != w.comp[j] {
				closed[w.comp[j]] = false
			}
		}
	}

	groups := make([][]int, w.count)
	for v := 0; v < n; v++ {
		groups[w.comp[v]] = append(groups[w.comp[v]], v)
	}
	out := make([][]int, 0, len(groups))
	for c, members := range groups {
		if closed[c] {
			out = append(out, members)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// sccWalker holds Tarjan state; index[v] == -1 marks an unvisited state.
type sccWalker struct {
	n       int
	vals    []float64 // row-major s
	eps     float64
	next    int
	index   []int
	low     []int
	onStack []bool
	stack   []int
	comp    []int
	count   int
}

// linked reports a link from state from to state to.
func (w *sccWalker) linked(from, to int) bool {
	return from != to && w.vals[to*w.n+from] > w.eps
}

func (w *sccWalker) visit(v int) {
	w.index[v], w.low[v] = w.next, w.next
	w.next++
	w.stack = append(w.stack, v)
	w.onStack[v] = true

	for u := 0; u < w.n; u++ {
		if !w.linked(v, u) {
			continue
		}
		if w.index[u] < 0 {
			w.visit(u)
			w.low[v] = min(w.low[v], w.low[u])
		} else if w.onStack[u] {
			w.low[v] = min(w.low[v], w.index[u])
		}
	}

	if w.low[v] != w.index[v] {
		return
	}
	for {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.onStack[top] = false
		w.comp[top] = w.count
		if top == v {
			break
		}
	}
	w.count++
}

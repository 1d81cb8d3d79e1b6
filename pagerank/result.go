// SPDX-License-Identifier: MIT

package pagerank

import (
	"math"
	"sort"
	"strings"
)

// tieQuantum is the score resolution used for ordering. Scores at most this
// far apart are ties and fall back to node ID order, so symmetric graphs rank
// deterministically despite last-bit rounding differences.
//
// Closeness is not transitive: in a chain of scores each within tieQuantum
// of the next but spread wider than it, the pairwise order can disagree with
// a strict score order. orderResults starts from ID order and sorts stably,
// so even then the outcome depends only on the scores and IDs.
const tieQuantum = 1e-12

// Result is one ranked node. Rank is the 1-based position in the ordering.
type Result struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Locator string  `json:"locator"`
	Score   float64 `json:"score"`
	Rank    int     `json:"rank"`
}

// orderResults sorts by score descending then ID ascending and assigns Rank.
func orderResults(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i].Score, rs[j].Score
		if math.Abs(a-b) > tieQuantum {
			return a > b
		}
		return rs[i].ID < rs[j].ID
	})
	for i := range rs {
		rs[i].Rank = i + 1
	}
}

// Search returns the results whose title matches term, in their original
// order and with their original Rank.
//
// A title matches when it contains term as a case-insensitive substring, or
// when it contains every whitespace-separated token of term. A blank term
// matches everything. The input slice is not modified.
func Search(results []Result, term string) []Result {
	m := newMatcher(term)
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if m.match(r.Title) {
			out = append(out, r)
		}
	}

	return out
}

// Limit returns at most n leading results; n ≤ 0 means no limit.
func Limit(results []Result, n int) []Result {
	if n <= 0 || n >= len(results) {
		return results
	}

	return results[:n]
}

type matcher struct {
	phrase string
	tokens []string
}

func newMatcher(term string) matcher {
	phrase := strings.ToLower(strings.TrimSpace(term))
	return matcher{phrase: phrase, tokens: strings.Fields(phrase)}
}

func (m matcher) match(title string) bool {
	if m.phrase == "" {
		return true
	}
	t := strings.ToLower(title)
	if strings.Contains(t, m.phrase) {
		return true
	}
	for _, tok := range m.tokens {
		if !strings.Contains(t, tok) {
			return false
		}
	}

	return true
}

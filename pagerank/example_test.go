package pagerank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/pagerank"
)

// ExampleRank ranks an inward star: three pages link to a fourth page that
// links nowhere.
func ExampleRank() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(4))
	rs, err := pagerank.Rank(context.Background(), g, 0.85)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range rs {
		fmt.Printf("%d %s %.4f\n", r.Rank, r.ID, r.Score)
	}
	// Output:
	// 1 D 0.5420
	// 2 A 0.1527
	// 3 B 0.1527
	// 4 C 0.1527
}

func ExampleSearch() {
	rs := []pagerank.Result{
		{ID: "a", Title: "Go memory model", Rank: 1},
		{ID: "b", Title: "Writing web applications", Rank: 2},
		{ID: "c", Title: "The Go Programming Language Specification", Rank: 3},
	}
	for _, r := range pagerank.Search(rs, "go") {
		fmt.Println(r.Rank, r.Title)
	}
	// Output:
	// 1 Go memory model
	// 3 The Go Programming Language Specification
}

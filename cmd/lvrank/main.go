// Package main is the lvrank CLI entry point.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/internal/server"
	"github.com/katalvlaran/lvrank/internal/snapshot"
	"github.com/katalvlaran/lvrank/internal/watcher"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/store"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}
	var err error
	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "rank":
		err = runRank(args, os.Stdout)
	case "search":
		err = runSearch(args, os.Stdout)
	case "serve":
		err = runServe(args)
	case "generate":
		err = runGenerate(args, os.Stdout)
	case "import":
		err = runImport(args, os.Stdin, os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("lvrank version %s\n", version)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lvrank %s: %v\n", command, err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `lvrank - PageRank over crawled link graphs

Usage:
  lvrank rank     [flags]           rank the stored graph and print the top results
  lvrank search   [flags] <term>    rank and filter pages by title
  lvrank serve    [flags]           serve rankings over HTTP
  lvrank generate [flags]           store a synthetic link graph
  lvrank import   [flags] [file]    store a JSON-Lines graph (stdin when no file)
  lvrank version
  lvrank help

Common flags: -config <path> -debug -graph <name>
`)
}

func runRank(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	common := addCommonFlags(fs)
	limit := fs.Int("limit", 0, "maximum results to print (default: search.default_limit)")
	asJSON := fs.Bool("json", false, "print the run as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := openApp(common)
	if err != nil {
		return err
	}
	defer a.Close()

	engine, err := a.engine()
	if err != nil {
		return err
	}
	ctx, cancel := a.rankContext()
	defer cancel()
	g, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}
	run, err := engine.RankRun(ctx, g)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(out, runOutput{
			RunID:      run.ID,
			Method:     run.Method.String(),
			Iterations: run.Iterations,
			Duration:   run.Duration.String(),
			Results:    pagerank.Limit(run.Results, a.limit(*limit)),
		})
	}
	return writeTable(out, pagerank.Limit(run.Results, a.limit(*limit)))
}

func runSearch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	common := addCommonFlags(fs)
	limit := fs.Int("limit", 0, "maximum results to print (default: search.default_limit)")
	rerank := fs.Bool("rerank", false, "rank only the subgraph of matching pages")
	asJSON := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lvrank search [flags] <term>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	term := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if term == "" {
		fs.Usage()
		return errors.New("missing search term")
	}

	a, err := openApp(common)
	if err != nil {
		return err
	}
	defer a.Close()

	engine, err := a.engine()
	if err != nil {
		return err
	}
	ctx, cancel := a.rankContext()
	defer cancel()
	g, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}

	var results []pagerank.Result
	if *rerank {
		results, err = engine.RankMatching(ctx, g, term)
	} else {
		var snap *snapshot.Snapshot
		if snap, err = snapshot.Build(ctx, engine, g); err == nil {
			results, err = snap.Search(ctx, term)
			_ = snap.Close()
		}
	}
	if err != nil {
		return err
	}
	results = pagerank.Limit(results, a.limit(*limit))
	if *asJSON {
		return writeJSON(out, results)
	}
	if len(results) == 0 {
		fmt.Fprintf(out, "No pages match %q.\n", term)
		return nil
	}
	return writeTable(out, results)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	common := addCommonFlags(fs)
	watch := fs.Bool("watch", false, "reload when the stored graph changes (overrides watch.enabled)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := openApp(common)
	if err != nil {
		return err
	}
	defer a.Close()

	engine, err := a.engine()
	if err != nil {
		return err
	}
	holder := snapshot.NewHolder(engine, a.loadGraph, a.logger)
	defer holder.Close()

	reload := func() {
		ctx, cancel := a.rankContext()
		defer cancel()
		_, _ = holder.Reload(ctx) // the holder logs failures and keeps the previous ranking
	}
	// A missing graph is not fatal: POST /api/v1/reload picks it up later.
	reload()

	if *watch || a.cfg.Watch.Enabled {
		w := watcher.NewWatcher(a.watchPath(), reload,
			watcher.WithDebounce(a.cfg.Watch.Debounce), watcher.WithLogger(a.logger))
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := w.Start(watchCtx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer w.Stop()
		a.logger.Info("watching graph", zap.String("path", a.watchPath()))
	}

	srv := server.NewServer(holder, engine, a.cfg.Server, a.cfg.Search, a.logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigChan:
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	a.logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}

func runGenerate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	common := addCommonFlags(fs)
	kind := fs.String("kind", "random", "cycle | star | starback | path | complete | isolated | disjoint | random")
	n := fs.Int("n", 10, "number of nodes (nodes per cycle for disjoint)")
	k := fs.Int("k", 2, "number of cycles for disjoint")
	p := fs.Float64("p", 0.1, "link probability for random")
	seed := fs.Int64("seed", 1, "random seed")
	ids := fs.String("ids", "index", "node ID scheme: index | symbol | excel | alnum")
	baseURL := fs.String("base-url", "", "locator prefix for generated pages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cons, err := generator(*kind, *n, *k, *p)
	if err != nil {
		return err
	}
	scheme, err := idScheme(*ids)
	if err != nil {
		return err
	}
	bopts := []builder.BuilderOption{scheme, builder.WithSeed(*seed)}
	if *baseURL != "" {
		bopts = append(bopts, builder.WithBaseURL(*baseURL))
	}
	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		return err
	}

	a, err := openApp(common)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := store.SaveGraph(context.Background(), a.store, a.cfg.Storage.GraphName, g); err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored %q: %d nodes, %d links (%s).\n",
		a.cfg.Storage.GraphName, g.NodeCount(), g.EdgeCount(), *kind)
	return nil
}

func runImport(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	common := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	records, err := store.Decode(bufio.NewReader(in))
	if err != nil {
		return err
	}

	a, err := openApp(common)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Save(context.Background(), a.cfg.Storage.GraphName, records); err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored %q: %d pages.\n", a.cfg.Storage.GraphName, len(records))
	return nil
}

// limit resolves a -limit flag against the search config.
func (a *app) limit(flagValue int) int {
	n := flagValue
	if n <= 0 {
		n = a.cfg.Search.DefaultLimit
	}
	if n > a.cfg.Search.MaxLimit {
		n = a.cfg.Search.MaxLimit
	}
	return n
}

type runOutput struct {
	RunID      string            `json:"run_id"`
	Method     string            `json:"method"`
	Iterations int               `json:"iterations"`
	Duration   string            `json:"duration"`
	Results    []pagerank.Result `json:"results"`
}

func writeTable(out io.Writer, results []pagerank.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tSCORE\tTITLE")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%s\n", r.Rank, r.ID, r.Score, r.Title)
	}
	return tw.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

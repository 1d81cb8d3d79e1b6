package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/store"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yaml"

// app bundles what every command needs: config, logger and an open store.
type app struct {
	cfg        *config.Config
	configPath string
	logger     *zap.Logger
	store      store.Store
}

// commonFlags registers -config, -debug and -graph on fs.
type commonFlags struct {
	configPath *string
	debug      *bool
	graph      *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", defaultConfigPath, "config file path"),
		debug:      fs.Bool("debug", false, "enable debug logging"),
		graph:      fs.String("graph", "", "graph name (default: storage.graph_name)"),
	}
}

// loadConfig loads path. A missing file at the default path yields the
// built-in defaults so the CLI works without any setup.
func loadConfig(path string) (*config.Config, string, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if path == defaultConfigPath {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return config.Default(), "", nil
		}
	}
	return nil, "", err
}

// openApp loads config, builds the logger and opens the configured store.
func openApp(f commonFlags) (*app, error) {
	cfg, resolved, err := loadConfig(*f.configPath)
	if err != nil {
		return nil, err
	}
	if *f.graph != "" {
		cfg.Storage.GraphName = *f.graph
	}
	logger, err := logging.New(cfg.Debug || *f.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if err := ensureStorageDir(cfg.Storage); err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("config_path", resolved),
		zap.String("driver", cfg.Storage.Driver),
		zap.String("storage_path", cfg.Storage.Path),
		zap.String("graph", cfg.Storage.GraphName))
	return &app{cfg: cfg, configPath: resolved, logger: logger, store: st}, nil
}

// ensureStorageDir creates the directory the store needs before opening it.
func ensureStorageDir(sc config.StorageConfig) error {
	dir := sc.Path
	if sc.Driver == store.DriverBolt || sc.Driver == store.DriverSQLite {
		dir = filepath.Dir(sc.Path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("store close failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// engine translates the ranking config into pagerank options.
func (a *app) engine() (*pagerank.Engine, error) {
	opts, err := rankingOptions(a.cfg.Ranking)
	if err != nil {
		return nil, err
	}
	return pagerank.New(append(opts, pagerank.WithLogger(a.logger))...)
}

// rankingOptions validates rc before building options, since the option
// constructors panic on out-of-range values.
func rankingOptions(rc config.RankingConfig) ([]pagerank.Option, error) {
	method, err := pagerank.ParseMethod(rc.Method)
	if err != nil {
		return nil, fmt.Errorf("ranking.method: %w", err)
	}
	switch {
	case !finitePositive(rc.Epsilon):
		return nil, fmt.Errorf("ranking.epsilon must be a positive number, got %g", rc.Epsilon)
	case !finitePositive(rc.Tolerance):
		return nil, fmt.Errorf("ranking.tolerance must be a positive number, got %g", rc.Tolerance)
	case rc.DenseLimit < 1:
		return nil, fmt.Errorf("ranking.dense_limit must be at least 1, got %d", rc.DenseLimit)
	case rc.MaxIterations < 1:
		return nil, fmt.Errorf("ranking.max_iterations must be at least 1, got %d", rc.MaxIterations)
	case rc.Parallelism < 0:
		return nil, fmt.Errorf("ranking.parallelism must not be negative, got %d", rc.Parallelism)
	}
	return []pagerank.Option{
		pagerank.WithDamping(rc.Damping),
		pagerank.WithEpsilon(rc.Epsilon),
		pagerank.WithMethod(method),
		pagerank.WithDenseLimit(rc.DenseLimit),
		pagerank.WithMaxIterations(rc.MaxIterations),
		pagerank.WithTolerance(rc.Tolerance),
		pagerank.WithParallelism(rc.Parallelism),
	}, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// loadGraph loads the configured graph from the store.
func (a *app) loadGraph(ctx context.Context) (*core.Graph, error) {
	return store.LoadGraph(ctx, a.store, a.cfg.Storage.GraphName)
}

// rankContext bounds one ranking pass by ranking.timeout.
func (a *app) rankContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.Ranking.Timeout)
}

// watchPath is the file whose changes mean the stored graph changed.
func (a *app) watchPath() string {
	if fs, ok := a.store.(*store.FileStore); ok {
		return fs.Path(a.cfg.Storage.GraphName)
	}
	return a.cfg.Storage.Path
}

// generator maps a -kind name to a builder constructor.
func generator(kind string, n, k int, p float64) (builder.Constructor, error) {
	switch kind {
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "starback":
		return builder.StarBack(n), nil
	case "path":
		return builder.Path(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "isolated":
		return builder.Isolated(n), nil
	case "disjoint":
		return builder.DisjointCycles(k, n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown graph kind %q", kind)
	}
}

// idScheme maps an -ids name to a builder option.
func idScheme(name string) (builder.BuilderOption, error) {
	switch name {
	case "", "index":
		return builder.WithDefaultIDs(), nil
	case "symbol":
		return builder.WithSymbolIDs(), nil
	case "excel":
		return builder.WithExcelColumnIDs(), nil
	case "alnum":
		return builder.WithAlphanumericIDs(), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", name)
	}
}

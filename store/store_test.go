package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/store"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]store.Store {
	t.Helper()
	dir := t.TempDir()
	out := map[string]store.Store{}

	fs, err := store.Open(store.DriverFile, filepath.Join(dir, "graphs"))
	require.NoError(t, err)
	out[store.DriverFile] = fs

	bs, err := store.Open(store.DriverBolt, filepath.Join(dir, "bolt", "lvrank.db"))
	require.NoError(t, err)
	out[store.DriverBolt] = bs

	ss, err := store.Open(store.DriverSQLite, filepath.Join(dir, "lvrank.sqlite"))
	require.NoError(t, err)
	out[store.DriverSQLite] = ss

	t.Cleanup(func() {
		for _, s := range out {
			_ = s.Close()
		}
	})

	return out
}

func TestBackendsRoundTrip(t *testing.T) {
	ctx := context.Background()
	for driver, s := range openAll(t) {
		t.Run(driver, func(t *testing.T) {
			names, err := s.Names(ctx)
			require.NoError(t, err)
			require.Empty(t, names)

			_, err = s.Load(ctx, "crawl")
			require.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, s.Save(ctx, "crawl", sampleRecords()))
			got, err := s.Load(ctx, "crawl")
			require.NoError(t, err)
			require.Equal(t, sampleRecords(), got)

			// Save replaces.
			smaller := []store.Record{{ID: "only", Title: "Only"}}
			require.NoError(t, s.Save(ctx, "crawl", smaller))
			got, err = s.Load(ctx, "crawl")
			require.NoError(t, err)
			require.Equal(t, smaller, got)

			require.NoError(t, s.Save(ctx, "another", nil))
			names, err = s.Names(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"another", "crawl"}, names)

			got, err = s.Load(ctx, "another")
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestBackendsGraphHelpers(t *testing.T) {
	ctx := context.Background()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithPaddedIDs("p", 2), builder.WithUniformWeights(0.5, 2)},
		builder.RandomSparse(15, 0.2))
	require.NoError(t, err)

	for driver, s := range openAll(t) {
		t.Run(driver, func(t *testing.T) {
			require.NoError(t, store.SaveGraph(ctx, s, "random", g))
			back, err := store.LoadGraph(ctx, s, "random")
			require.NoError(t, err)
			require.Equal(t, g.Nodes(), back.Nodes())
			require.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestBackendsRejectBadInput(t *testing.T) {
	ctx := context.Background()
	for driver, s := range openAll(t) {
		t.Run(driver, func(t *testing.T) {
			require.ErrorIs(t, s.Save(ctx, "", nil), store.ErrInvalidName)
			require.ErrorIs(t, s.Save(ctx, "../x", nil), store.ErrInvalidName)
			_, err := s.Load(ctx, "a/b")
			require.ErrorIs(t, err, store.ErrInvalidName)

			err = s.Save(ctx, "bad", []store.Record{{ID: "a", Links: []string{"nope"}}})
			require.ErrorIs(t, err, store.ErrInconsistent)
			_, err = s.Load(ctx, "bad")
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := store.Open("postgres", t.TempDir())
	require.ErrorIs(t, err, store.ErrUnknownDriver)
}

func TestFileStoreTruncatedFile(t *testing.T) {
	ctx := context.Background()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.Save(ctx, "crawl", sampleRecords()))

	data, err := os.ReadFile(fs.Path("crawl"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fs.Path("crawl"), data[:len(data)-20], 0o644))

	_, err = fs.Load(ctx, "crawl")
	require.ErrorIs(t, err, store.ErrTruncated)
}

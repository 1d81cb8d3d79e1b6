package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))

	var calls atomic.Int32
	core, logs := observer.New(zap.DebugLevel)
	w := NewWatcher(path, func() { calls.Add(1) },
		WithDebounce(100*time.Millisecond), WithLogger(zap.New(core)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// A burst of writes collapses into one reload.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v2\n"), 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
	require.NotZero(t, logs.FilterMessage("watcher event").Len())
}

func TestWatcher_ReloadsOnRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.jsonl")

	var calls atomic.Int32
	w := NewWatcher(path, func() { calls.Add(1) }, WithDebounce(30*time.Millisecond))
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	tmp := filepath.Join(dir, ".crawl.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("v1\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.jsonl")

	var calls atomic.Int32
	w := NewWatcher(path, func() { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.jsonl"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestWatcher_StopDropsPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.jsonl")

	var calls atomic.Int32
	w := NewWatcher(path, func() { calls.Add(1) }, WithDebounce(300*time.Millisecond))
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	time.Sleep(50 * time.Millisecond)
	w.Stop()
	w.Stop()
	time.Sleep(400 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "crawl.jsonl"), func() {})
	require.Error(t, w.Start(context.Background()))
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExt is the extension of graph files in a FileStore directory.
const FileExt = ".jsonl"

// FileStore keeps each graph in <dir>/<name>.jsonl.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store.NewFileStore: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

// Path returns the file backing name.
func (s *FileStore) Path(name string) string { return filepath.Join(s.dir, name+FileExt) }

// Load reads and decodes <name>.jsonl.
func (s *FileStore) Load(ctx context.Context, name string) ([]Record, error) {
	if err := checkName(name); err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store.FileStore.Load: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %q: %w", name, err)
	}

	return records, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the target, so readers (and the watcher) never see a half-written graph.
func (s *FileStore) Save(ctx context.Context, name string, records []Record) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}
	if err := Validate(records); err != nil {
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err = Encode(tmp, records); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("store.FileStore.Save: %w", err)
	}

	return nil
}

// Names lists the *.jsonl files of the directory.
func (s *FileStore) Names(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Names: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !strings.HasSuffix(e.Name(), FileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileExt))
	}
	sort.Strings(names)

	return names, nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

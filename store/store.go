// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Store persists named graphs as record lists.
type Store interface {
	// Load returns the records saved under name, validated.
	Load(ctx context.Context, name string) ([]Record, error)
	// Save replaces whatever was stored under name.
	Save(ctx context.Context, name string, records []Record) error
	// Names lists stored graphs in ascending order.
	Names(ctx context.Context) ([]string, error)
	// Close releases the backend.
	Close() error
}

// Open returns the backend for driver rooted at path: a directory for
// DriverFile, a database file for DriverBolt and DriverSQLite.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(path)
	case DriverBolt:
		return OpenBolt(path)
	case DriverSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("store.Open: %q: %w", driver, ErrUnknownDriver)
	}
}

// LoadGraph loads name from s and builds its frozen graph.
func LoadGraph(ctx context.Context, s Store, name string, opts ...core.GraphOption) (*core.Graph, error) {
	records, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	g, err := ToGraph(records, opts...)
	if err != nil {
		return nil, fmt.Errorf("store.LoadGraph: %q: %w", name, err)
	}

	return g, nil
}

// SaveGraph stores g under name.
func SaveGraph(ctx context.Context, s Store, name string, g *core.Graph) error {
	records, err := FromGraph(g)
	if err != nil {
		return fmt.Errorf("store.SaveGraph: %w", err)
	}

	return s.Save(ctx, name, records)
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS graphs (
	name     TEXT PRIMARY KEY,
	nodes    INTEGER NOT NULL,
	saved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pages (
	graph   TEXT NOT NULL REFERENCES graphs(name) ON DELETE CASCADE,
	id      TEXT NOT NULL,
	title   TEXT NOT NULL DEFAULT '',
	locator TEXT NOT NULL DEFAULT '',
	links   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (graph, id)
);

CREATE TABLE IF NOT EXISTS links (
	graph    TEXT NOT NULL REFERENCES graphs(name) ON DELETE CASCADE,
	src      TEXT NOT NULL,
	seq      INTEGER NOT NULL,
	dst      TEXT NOT NULL,
	weight   REAL,
	PRIMARY KEY (graph, src, seq)
);
`

type graphRow struct {
	Name    string `db:"name"`
	Nodes   int    `db:"nodes"`
	SavedAt string `db:"saved_at"` // RFC 3339, UTC
}

type pageRow struct {
	Graph   string `db:"graph"`
	ID      string `db:"id"`
	Title   string `db:"title"`
	Locator string `db:"locator"`
	Links   int    `db:"links"` // out-link rows saved for this page
}

type linkRow struct {
	Graph  string          `db:"graph"`
	Src    string          `db:"src"`
	Seq    int             `db:"seq"`
	Dst    string          `db:"dst"`
	Weight sql.NullFloat64 `db:"weight"`
}

// SQLiteStore keeps graphs in the pages and links tables of a SQLite file.
type SQLiteStore struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the database at path and applies the
// schema. ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store.OpenSQLite: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.OpenSQLite: %w", err)
	}
	// One connection: ":memory:" databases are per-connection, and SQLite
	// serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store.OpenSQLite: %w", err)
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store.OpenSQLite: schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the pages of name in ID order with their links in saved order.
// A missing link row (a gap in seq or fewer rows than the page's saved
// count) is ErrTruncated.
func (s *SQLiteStore) Load(ctx context.Context, name string) ([]Record, error) {
	if err := checkName(name); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: %w", err)
	}

	var g graphRow
	err := s.db.GetContext(ctx, &g, `SELECT name, nodes, saved_at FROM graphs WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store.SQLiteStore.Load: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: %w", err)
	}

	var pages []pageRow
	if err = s.db.SelectContext(ctx, &pages,
		`SELECT graph, id, title, locator, links FROM pages WHERE graph = ? ORDER BY id`, name); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: pages: %w", err)
	}
	if err = NewHeader(g.Nodes).checkCount(len(pages)); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: %q: %w", name, err)
	}

	var links []linkRow
	if err = s.db.SelectContext(ctx, &links,
		`SELECT graph, src, seq, dst, weight FROM links WHERE graph = ? ORDER BY src, seq`, name); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: links: %w", err)
	}

	records := make([]Record, len(pages))
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		records[i] = Record{ID: p.ID, Title: p.Title, Locator: p.Locator}
		index[p.ID] = i
	}
	for _, l := range links {
		i, ok := index[l.Src]
		if !ok {
			return nil, fmt.Errorf("store.SQLiteStore.Load: %q: link from unknown id %q: %w", name, l.Src, ErrInconsistent)
		}
		r := &records[i]
		if l.Seq != len(r.Links) {
			return nil, fmt.Errorf("store.SQLiteStore.Load: %q: page %q link %d missing: %w", name, l.Src, len(r.Links), ErrTruncated)
		}
		r.Links = append(r.Links, l.Dst)
		if l.Weight.Valid {
			r.Weights = append(r.Weights, l.Weight.Float64)
		}
	}
	for i, p := range pages {
		if got := len(records[i].Links); got != p.Links {
			return nil, fmt.Errorf("store.SQLiteStore.Load: %q: page %q has %d of %d links: %w",
				name, p.ID, got, p.Links, ErrTruncated)
		}
	}
	if err = Validate(records); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Load: %q: %w", name, err)
	}

	return records, nil
}

// Save replaces name in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, name string, records []Record) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}
	if err := Validate(records); err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	for _, q := range []string{
		`DELETE FROM links WHERE graph = ?`,
		`DELETE FROM pages WHERE graph = ?`,
		`DELETE FROM graphs WHERE name = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, name); err != nil {
			return fmt.Errorf("store.SQLiteStore.Save: %w", err)
		}
	}
	if _, err = tx.NamedExecContext(ctx,
		`INSERT INTO graphs (name, nodes, saved_at) VALUES (:name, :nodes, :saved_at)`,
		graphRow{Name: name, Nodes: len(records), SavedAt: time.Now().UTC().Format(time.RFC3339)}); err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}

	for _, r := range records {
		if _, err = tx.NamedExecContext(ctx,
			`INSERT INTO pages (graph, id, title, locator, links) VALUES (:graph, :id, :title, :locator, :links)`,
			pageRow{Graph: name, ID: r.ID, Title: r.Title, Locator: r.Locator, Links: len(r.Links)}); err != nil {
			return fmt.Errorf("store.SQLiteStore.Save: page %q: %w", r.ID, err)
		}
		for k, dst := range r.Links {
			row := linkRow{Graph: name, Src: r.ID, Seq: k, Dst: dst}
			if r.Weights != nil {
				row.Weight = sql.NullFloat64{Float64: r.Weights[k], Valid: true}
			}
			if _, err = tx.NamedExecContext(ctx,
				`INSERT INTO links (graph, src, seq, dst, weight) VALUES (:graph, :src, :seq, :dst, :weight)`,
				row); err != nil {
				return fmt.Errorf("store.SQLiteStore.Save: link %q→%q: %w", r.ID, dst, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}

	return nil
}

// Names lists saved graphs.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, `SELECT name FROM graphs ORDER BY name`); err != nil {
		return nil, fmt.Errorf("store.SQLiteStore.Names: %w", err)
	}

	return names, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

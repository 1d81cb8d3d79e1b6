// SPDX-License-Identifier: MIT

// Package store persists crawled link graphs.
//
// The unit of storage is a named list of Records, one per page:
//
//	{"id":"home","title":"Home","locator":"https://example.org/","links":["about","blog"]}
//
// Records convert to and from a frozen core.Graph (ToGraph, FromGraph).
// Three backends implement Store:
//
//   - FileStore: one JSON-Lines file per graph, a header line followed by
//     one record per line; the header's node count detects truncation.
//   - BoltStore: a bbolt database with one nested bucket per graph.
//   - SQLiteStore: pages and links tables in SQLite (pure-Go driver).
//
// Loaders reject truncated input with ErrTruncated and records that do not
// describe a consistent graph with ErrInconsistent.
package store

// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrTruncated indicates that stored data ends before the declared number of records.
	ErrTruncated = errors.New("store: truncated graph data")

	// ErrInconsistent indicates records that cannot form a graph: duplicate or
	// empty IDs, links to unknown IDs, len(weights) != len(links), a record
	// count above the header's, or an unknown header format.
	ErrInconsistent = errors.New("store: inconsistent graph data")

	// ErrNotFound indicates that no graph is stored under the requested name.
	ErrNotFound = errors.New("store: graph not found")

	// ErrUnknownDriver indicates a driver name other than file, bolt or sqlite.
	ErrUnknownDriver = errors.New("store: unknown driver")

	// ErrInvalidName indicates an empty graph name or one containing a path separator.
	ErrInvalidName = errors.New("store: invalid graph name")
)

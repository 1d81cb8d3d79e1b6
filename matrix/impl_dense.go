// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep values immutable after construction: there is no exported mutator, and
//     every accessor that exposes storage returns a copy.
//   - Carry a Kind tag that only validating constructors may set.
//
// AI-Hints:
//   - Kernels operate on the flat data slice directly; keep them in this package.
//   - A Vector is simply an n×1 Dense; use NewVector and IsVector.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy + scan; At: O(1); Row/Column/Values: O(c)/O(r)/O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxColumn   = "Column"   // method tag used in error wrappers
	ctxNewDense = "NewDense" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - kind records which structural property has been verified.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c); never aliased outside the package
	kind Kind      // verified structural tag; KindGeneral unless set by a validating ctor
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix from row-major data.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: nil data ⇒ zero matrix; otherwise len(data) must equal rows*cols.
//   - Stage 3: copy data (caller keeps ownership of its slice) and apply numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The result is KindGeneral.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation or wrong data length).
//   - ErrNaNInf (non-finite value while validation is enabled).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNewDense, ErrInvalidDimensions)
	}
	if data != nil && len(data) != rows*cols {
		return nil, matrixErrorf(ctxNewDense, fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrInvalidDimensions))
	}

	o := gatherOptions(opts...)
	buf := make([]float64, rows*cols)
	copy(buf, data) // no-op for nil data
	if o.validateNaNInf {
		for k, v := range buf {
			if isNonFinite(v) {
				return nil, matrixErrorf(ctxNewDense, denseErrorf(ctxAt, k/cols, k%cols, ErrNaNInf))
			}
		}
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewFromRows builds a matrix from a slice of equal-length rows.
// Convenient for literals in tests and fixtures.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty, a row is empty, or rows are ragged.
//   - ErrNaNInf under the default numeric policy.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNewDense, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctxNewDense, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrInvalidDimensions))
		}
		flat = append(flat, row...)
	}

	return NewDense(len(rows), cols, flat, opts...)
}

// NewVector returns an n×1 column vector holding values.
func NewVector(values []float64, opts ...Option) (*Dense, error) {
	return NewDense(len(values), 1, values, opts...)
}

// NewIdentity returns the n×n identity matrix tagged KindIdentity.
// Errors: ErrInvalidDimensions when n ≤ 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n, nil)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	m.kind = KindIdentity

	return m, nil
}

// NewFilled returns a rows×cols matrix with every entry equal to v.
// Used for the uniform teleport matrix B = (1/N)·J.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if isNonFinite(v) {
		return nil, matrixErrorf("NewFilled", ErrNaNInf)
	}
	m, err := NewDense(rows, cols, nil)
	if err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// newRaw wraps an already-owned buffer without copying. Package-internal:
// kernels allocate their result buffers and hand them over here.
func newRaw(rows, cols int, data []float64) *Dense {
	return &Dense{r: rows, c: cols, data: data}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports the verified structural tag.
func (m *Dense) Kind() Kind { return m.kind }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsVector reports whether m is a column vector (n×1).
func (m *Dense) IsVector() bool { return m.c == 1 }

// Len returns the number of stored values (Rows()*Cols()).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Values returns a row-major copy of all entries. For a vector this is
// simply its components in order.
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

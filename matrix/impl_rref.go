// SPDX-License-Identifier: MIT
// Package matrix - reduced row-echelon form (Gauss-Jordan with partial pivoting).
//
// Purpose:
//   - Reduce any r×c Dense to RREF and report which columns hold pivots and
//     which are free. The null-space solver (impl_nullspace.go) reads the
//     free columns straight off the reduced matrix.
//
// Determinism:
//   - Columns are processed left to right; the pivot row is the first row
//     (top-down) holding the largest magnitude, so exact ties never depend on
//     anything but row order.

package matrix

import (
	"context"
	"fmt"
	"math"
)

const opRREF = "RREF"

// Reduced is the outcome of RREF: the reduced matrix plus its pivot structure.
// It is immutable and safe to share.
type Reduced struct {
	m      *Dense  // KindRREF
	pivots []int   // pivots[k] = column of the leading 1 in row k (ascending)
	free   []int   // columns without a pivot (ascending)
	eps    float64 // tolerance the reduction ran with
}

// Matrix returns the reduced matrix (tagged KindRREF).
func (r *Reduced) Matrix() *Dense { return r.m }

// Pivots returns a copy of the pivot columns, one per non-zero row, ascending.
func (r *Reduced) Pivots() []int { return append([]int(nil), r.pivots...) }

// Free returns a copy of the free (non-pivot) columns, ascending.
func (r *Reduced) Free() []int { return append([]int(nil), r.free...) }

// Rank returns the number of pivots.
func (r *Reduced) Rank() int { return len(r.pivots) }

// Nullity returns the number of free columns (dimension of the null space).
func (r *Reduced) Nullity() int { return len(r.free) }

// Epsilon returns the tolerance the reduction ran with.
func (r *Reduced) Epsilon() float64 { return r.eps }

// RREF reduces m to reduced row-echelon form. See RREFContext.
func RREF(m *Dense, opts ...Option) (*Reduced, error) {
	return RREFContext(context.Background(), m, opts...)
}

// RREFContext reduces m to reduced row-echelon form with partial pivoting.
//
// Implementation:
//   - Stage 1: copy m; reject non-finite input.
//   - Stage 2: for each column (left to right) pick the row at or below the
//     current pivot row with the largest |entry|; first such row wins ties.
//     • max < eps ⇒ the column is free; its entries at/below the pivot row are set to 0.
//     • otherwise swap it up, divide the row so the pivot is exactly 1, and
//     eliminate the column from every other row (entries set to exactly 0).
//   - Stage 3: flush every |entry| < eps to 0 and verify all entries are finite.
//
// Behavior highlights:
//   - Idempotent: reducing an RREF result again yields the same matrix.
//   - The input is never modified.
//   - ctx is checked once per column; a cancelled reduction returns ctx.Err()
//     (wrapped) and no partial result.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNumericInstability (non-finite input or value produced during elimination).
//   - context.Canceled / context.DeadlineExceeded.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
//
// AI-Hints:
//   - For a square singular H = G − I of a damped PageRank matrix expect
//     rank n−1 and exactly one free column.
func RREFContext(ctx context.Context, m *Dense, opts ...Option) (*Reduced, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	eps := gatherOptions(opts...).eps

	rows, cols := m.r, m.c
	a := m.Values()
	for k, v := range a {
		if isNonFinite(v) {
			return nil, matrixErrorf(opRREF, fmt.Errorf("input (%d,%d): %w: %w", k/cols, k%cols, ErrNumericInstability, ErrNaNInf))
		}
	}

	pivots := make([]int, 0, min(rows, cols))
	free := make([]int, 0)
	var (
		row, col, i, j, best int
		mag, bestMag, pv, f  float64
		src, dst             int
	)
	for col = 0; col < cols; col++ {
		if err := ctx.Err(); err != nil {
			return nil, matrixErrorf(opRREF, err)
		}
		if row == rows {
			free = append(free, col) // no rows left to pivot on
			continue
		}

		// Partial pivoting: largest magnitude at/below row; strict > keeps the first on ties.
		best, bestMag = row, math.Abs(a[row*cols+col])
		for i = row + 1; i < rows; i++ {
			if mag = math.Abs(a[i*cols+col]); mag > bestMag {
				best, bestMag = i, mag
			}
		}
		if bestMag < eps {
			for i = row; i < rows; i++ {
				a[i*cols+col] = 0
			}
			free = append(free, col)
			continue
		}

		if best != row {
			src, dst = best*cols, row*cols
			for j = 0; j < cols; j++ {
				a[src+j], a[dst+j] = a[dst+j], a[src+j]
			}
		}

		dst = row * cols
		pv = a[dst+col]
		for j = col; j < cols; j++ { // entries left of col are already zero
			a[dst+j] /= pv
		}
		a[dst+col] = 1

		for i = 0; i < rows; i++ {
			if i == row {
				continue
			}
			src = i * cols
			if f = a[src+col]; f == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				a[src+j] -= f * a[dst+j]
			}
			a[src+col] = 0
		}

		pivots = append(pivots, col)
		row++
	}

	for k, v := range a {
		if isNonFinite(v) {
			return nil, matrixErrorf(opRREF, fmt.Errorf("(%d,%d): %w", k/cols, k%cols, ErrNumericInstability))
		}
		if math.Abs(v) < eps {
			a[k] = 0
		}
	}

	out := newRaw(rows, cols, a)
	out.kind = KindRREF

	return &Reduced{m: out, pivots: pivots, free: free, eps: eps}, nil
}

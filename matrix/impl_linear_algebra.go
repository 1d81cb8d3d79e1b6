// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense: element-wise
// addition and subtraction, scalar scaling, matrix multiplication,
// transpose, matrix-vector product and tolerant comparison. All functions
// perform strict fail-fast validation and return wrapped sentinels on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Results are KindGeneral regardless of the operands' kinds.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opColSums     = "ColSums"
	opRowSums     = "RowSums"
	opEqualApprox = "EqualApprox"
	opMaxAbsDiff  = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := make([]float64, len(a.data))
	for k := range out {
		out[k] = a.data[k] + sign*b.data[k]
	}

	return newRaw(a.r, a.c, out), nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Same contract as Add; used to form H = G − I.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := make([]float64, len(m.data))
	for k, v := range m.data {
		out[k] = alpha * v
	}

	return newRaw(m.r, m.c, out), nil
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: i-k-j loop over flat buffers; zero entries of a are skipped.
//
// Behavior highlights:
//   - Result shape is a.Rows × b.Cols.
//   - Fixed loop order, so repeated calls give bit-identical results.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]float64, aRows*bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return newRaw(aRows, bCols, out), nil
}

// Transpose returns mᵀ as a new c×r matrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([]float64, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return newRaw(m.c, m.r, out), nil
}

// MatVec computes y = m·x for a plain slice x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// AI-Hints:
//   - The power-iteration solver calls this in its inner loop; it allocates
//     exactly one result slice per call.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if x == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}
	y := make([]float64, m.r)
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = ZeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// ColSums returns the sum of every column.
func ColSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]float64, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sums[j] += m.data[base+j]
		}
	}

	return sums, nil
}

// RowSums returns the sum of every row.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sums[i] += m.data[base+j]
		}
	}

	return sums, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| (the ∞-norm of the element-wise difference).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst, d float64
	for k := range a.data {
		d = math.Abs(a.data[k] - b.data[k])
		if d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries differs by at most eps. Shape mismatch and nil operands report false.
func EqualApprox(a, b *Dense, eps float64) bool {
	d, err := MaxAbsDiff(a, b)
	if err != nil {
		return false
	}

	return d <= eps
}

// MaxAbs returns max |m[i,j]|.
func MaxAbs(m *Dense) float64 {
	if m == nil {
		return 0
	}
	var worst float64
	for _, v := range m.data {
		if a := math.Abs(v); a > worst {
			worst = a
		}
	}

	return worst
}

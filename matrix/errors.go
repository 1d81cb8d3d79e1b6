// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with their operation tag,
// and tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context matters; callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> kind/structure -> numeric.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a data slice does not hold exactly rows*cols values.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonStochastic signals a matrix that is not column-stochastic within eps:
	// a negative entry, or a column whose sum differs from 1.
	ErrNonStochastic = errors.New("matrix: matrix is not column-stochastic")

	// ErrKindRequired signals that an operation received a matrix without the
	// kind tag it depends on (e.g. a steady-state solve on an unchecked matrix).
	ErrKindRequired = errors.New("matrix: required matrix kind missing")

	// ErrNumericInstability signals that a computation produced non-finite
	// values or a result whose magnitude collapsed below epsilon.
	ErrNumericInstability = errors.New("matrix: numeric instability")
)

// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"
	"math"
)

const (
	opNullSpace      = "NullSpace"
	opNormalizeL1Sum = "NormalizeL1Sum"
)

// NullSpace returns a basis of {x : R·x = 0} read off a reduced matrix.
//
// Implementation:
//   - One basis vector per free column f (ascending): x[f] = 1, every other
//     free variable 0, and for pivot row k with pivot column p, x[p] = −R[k][f].
//   - Entries with |x| < eps are flushed to 0.
//
// Behavior highlights:
//   - A full-column-rank matrix has no free columns; the result is empty (nil, nil).
//   - Basis order follows free-column order, so it is deterministic.
//   - Every returned vector is Cols×1 and satisfies Mul(R, x) ≈ 0.
//
// Errors:
//   - ErrNilMatrix (nil r).
//   - ErrNumericInstability (non-finite component).
//
// Complexity:
//   - Time O(f·c), Space O(f·c) for f free columns.
func NullSpace(r *Reduced) ([]*Dense, error) {
	if r == nil || r.m == nil {
		return nil, matrixErrorf(opNullSpace, ErrNilMatrix)
	}
	if len(r.free) == 0 {
		return nil, nil
	}

	R := r.m
	n := R.c
	basis := make([]*Dense, 0, len(r.free))
	var k, p int
	var v float64
	for _, f := range r.free {
		x := make([]float64, n)
		x[f] = 1
		for k, p = range r.pivots {
			v = -R.data[k*n+f]
			if isNonFinite(v) {
				return nil, matrixErrorf(opNullSpace, fmt.Errorf("free column %d: %w", f, ErrNumericInstability))
			}
			if math.Abs(v) < r.eps {
				v = 0
			}
			x[p] = v
		}
		basis = append(basis, newRaw(n, 1, x))
	}

	return basis, nil
}

// NullSpaceOf reduces m and returns its null-space basis together with the reduction.
func NullSpaceOf(ctx context.Context, m *Dense, opts ...Option) ([]*Dense, *Reduced, error) {
	red, err := RREFContext(ctx, m, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}
	basis, err := NullSpace(red)
	if err != nil {
		return nil, nil, err
	}

	return basis, red, nil
}

// NormalizeL1Sum scales the vector v so that its entries sum to exactly 1.
//
// Behavior highlights:
//   - Signs are preserved: a basis vector whose entries are all negative
//     becomes all positive.
//   - The input is not modified.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when v is not a column vector.
//   - ErrNumericInstability when |Σv| < eps (the vector cannot be normalized).
func NormalizeL1Sum(v *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opNormalizeL1Sum, err)
	}
	if !v.IsVector() {
		return nil, matrixErrorf(opNormalizeL1Sum, fmt.Errorf("%dx%d is not a column vector: %w", v.r, v.c, ErrDimensionMismatch))
	}
	eps := gatherOptions(opts...).eps

	var sum float64
	for _, x := range v.data {
		sum += x
	}
	if isNonFinite(sum) || math.Abs(sum) < eps {
		return nil, matrixErrorf(opNormalizeL1Sum, fmt.Errorf("sum %g: %w", sum, ErrNumericInstability))
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / sum
	}

	return newRaw(v.r, 1, out), nil
}

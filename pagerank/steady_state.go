// SPDX-License-Identifier: MIT

package pagerank

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvrank/matrix"
)

const opSteadyState = "pagerank.SteadyState"

// residualFactor scales eps·N into the bound on ‖s·x − x‖∞ accepted for a
// null-space solution. RREF flushes entries below eps, so the residual of an
// exact-arithmetic solution grows with eps and the row length.
const residualFactor = 10

// SteadyState returns the unique vector x with s·x = x and Σx = 1.
//
// Implementation:
//   - Stage 1: require s to carry matrix.KindStochastic.
//   - Stage 2: H = s − I; reduce H (RREFContext) and read its null space.
//   - Stage 3: exactly one basis vector is required; it is scaled to sum 1.
//   - Stage 4: entries in [−eps, 0) are clamped to 0 and the vector is
//     re-normalised; the residual ‖s·x − x‖∞ is verified.
//
// Behavior highlights:
//   - An irreducible (e.g. damped) matrix always yields one basis vector.
//   - An undamped transition matrix of a graph with several closed classes
//     yields one basis vector per class and is reported, never ordered.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrKindRequired.
//   - *SteadyStateError (errors.Is ErrNoUniqueSteadyState) when the basis size ≠ 1;
//     it lists the closed classes responsible.
//   - matrix.ErrNumericInstability for entries below −eps, a degenerate
//     sum, or a residual above 10·eps·N.
//   - ctx.Err() (wrapped) when cancelled during reduction.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func SteadyState(ctx context.Context, s *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error) {
	if err := matrix.RequireKind(s, matrix.KindStochastic); err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}
	n := s.Rows()
	eps := matrix.Epsilon(opts...)

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}
	h, err := matrix.Sub(s, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}
	basis, _, err := matrix.NullSpaceOf(ctx, h, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}
	if len(basis) != 1 {
		return nil, fmt.Errorf("%s: %w", opSteadyState, &SteadyStateError{Count: len(basis), Classes: closedClasses(s, eps)})
	}

	x, err := matrix.NormalizeL1Sum(basis[0], opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}
	values, err := clampNonNegative(x.Values(), eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}

	if err = checkResidual(s, values, eps); err != nil {
		return nil, fmt.Errorf("%s: %w", opSteadyState, err)
	}

	return matrix.NewVector(values)
}

// checkResidual verifies ‖s·x − x‖∞ ≤ residualFactor·eps·N.
func checkResidual(s *matrix.Dense, values []float64, eps float64) error {
	sx, err := matrix.MatVec(s, values)
	if err != nil {
		return err
	}
	bound := residualFactor * eps * float64(len(values))
	for i := range values {
		if r := math.Abs(sx[i] - values[i]); r > bound {
			return fmt.Errorf("residual %g at %d exceeds %g: %w", r, i, bound, matrix.ErrNumericInstability)
		}
	}

	return nil
}

// clampNonNegative zeroes entries in [−eps, 0) and re-normalises to sum 1.
// The input is not modified.
func clampNonNegative(values []float64, eps float64) ([]float64, error) {
	out := make([]float64, len(values))
	var (
		sum     float64
		clamped bool
	)
	for i, v := range values {
		if v < -eps {
			return nil, fmt.Errorf("entry %d = %g is negative: %w", i, v, matrix.ErrNumericInstability)
		}
		if v < 0 {
			v = 0
			clamped = true
		}
		out[i] = v
		sum += v
	}
	if !clamped {
		return out, nil
	}
	if sum < eps {
		return nil, fmt.Errorf("sum %g after clamping: %w", sum, matrix.ErrNumericInstability)
	}
	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opAsStochastic = "AsStochastic"

// AsStochastic verifies that m is column-stochastic and returns a copy tagged
// KindStochastic.
//
// Implementation:
//   - Stage 1: m must be non-nil and square.
//   - Stage 2: every entry must be finite and ≥ −eps.
//   - Stage 3: every column must sum to 1 within eps.
//
// Behavior highlights:
//   - The input is never modified; on failure no tagged matrix exists.
//   - Column j describes transitions OUT of state j: entry (i, j) is the
//     probability of moving from j to i.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNonStochastic, also matching ErrNonSquare / ErrNaNInf where that is the cause.
//     The message names the offending column.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the tagged copy.
func AsStochastic(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsStochastic, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAsStochastic, fmt.Errorf("%w: %w", ErrNonStochastic, err))
	}
	if err := checkStochastic(m, gatherOptions(opts...).eps); err != nil {
		return nil, matrixErrorf(opAsStochastic, err)
	}

	out := newRaw(m.r, m.c, m.Values())
	out.kind = KindStochastic

	return out, nil
}

// IsStochastic reports whether AsStochastic would accept m.
func IsStochastic(m *Dense, opts ...Option) bool {
	if m == nil || m.r != m.c {
		return false
	}

	return checkStochastic(m, gatherOptions(opts...).eps) == nil
}

// checkStochastic scans columns in index order and reports the first violation.
func checkStochastic(m *Dense, eps float64) error {
	n := m.c
	var i, j int
	var v, sum float64
	for j = 0; j < n; j++ {
		sum = ZeroSum
		for i = 0; i < m.r; i++ {
			v = m.data[i*n+j]
			if isNonFinite(v) {
				return fmt.Errorf("column %d: %w: %w", j, ErrNonStochastic, ErrNaNInf)
			}
			if v < -eps {
				return fmt.Errorf("column %d: negative entry %g at row %d: %w", j, v, i, ErrNonStochastic)
			}
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("column %d: sum %.12g: %w", j, sum, ErrNonStochastic)
		}
	}

	return nil
}

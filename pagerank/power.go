// SPDX-License-Identifier: MIT

package pagerank

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvrank/matrix"
)

const opPower = "pagerank.power"

// powerIterate computes the steady state of G = d·A + (1−d)·B without
// materialising G: x ← d·A·x + (1−d)/N, starting from the uniform vector.
// It stops when the L1 change of one step drops below tol and returns the
// number of steps taken. The context is checked before every step.
func powerIterate(ctx context.Context, a *matrix.Dense, d float64, maxIter int, tol float64) ([]float64, int, error) {
	n := a.Rows()
	teleport := (1 - d) / float64(n)

	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}

	var (
		iter int
		diff float64
	)
	for iter = 1; iter <= maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, iter - 1, fmt.Errorf("%s: %w", opPower, err)
		}
		next, err := matrix.MatVec(a, x)
		if err != nil {
			return nil, iter - 1, fmt.Errorf("%s: %w", opPower, err)
		}

		diff = 0
		for i := range next {
			next[i] = d*next[i] + teleport
			diff += math.Abs(next[i] - x[i])
		}
		x = next
		if math.IsNaN(diff) || math.IsInf(diff, 0) {
			return nil, iter, fmt.Errorf("%s: %w", opPower, matrix.ErrNumericInstability)
		}
		if diff < tol {
			return normalizeSum(x), iter, nil
		}
	}

	return nil, maxIter, fmt.Errorf("%s: L1 change %g after %d steps: %w", opPower, diff, maxIter, ErrNotConverged)
}

// normalizeSum rescales x in place to sum 1; A is stochastic so only rounding drift is removed.
func normalizeSum(x []float64) []float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	for i := range x {
		x[i] /= sum
	}

	return x
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for values that went through elimination.
const tol = 1e-9

// mustRows builds a Dense from a row literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustVec builds an n×1 vector or fails the test.
func mustVec(tb testing.TB, values ...float64) *matrix.Dense {
	tb.Helper()
	v, err := matrix.NewVector(values)
	require.NoError(tb, err)

	return v
}

// randDense fills an r×c matrix with values in [-1, 1) from a fixed seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDense(r, c, data)
	require.NoError(tb, err)

	return m
}

// requireZeroVec asserts every entry of v is within tol of 0.
func requireZeroVec(tb testing.TB, v *matrix.Dense) {
	tb.Helper()
	for i, x := range v.Values() {
		require.InDeltaf(tb, 0.0, x, tol, "entry %d", i)
	}
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	wide := mustRows(t, [][]float64{{1, 2, 3}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquareNonNil(sq))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, wide), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(wide, mustVec(t, 1, 2, 3)))
}

func TestRequireKind(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.NoError(t, matrix.RequireKind(id, matrix.KindIdentity))

	err = matrix.RequireKind(id, matrix.KindStochastic)
	require.ErrorIs(t, err, matrix.ErrKindRequired)
	require.Contains(t, err.Error(), "have identity, want stochastic")

	require.ErrorIs(t, matrix.RequireKind(nil, matrix.KindRREF), matrix.ErrNilMatrix)
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })

	require.Equal(t, matrix.DefaultEpsilon, matrix.Epsilon())
	require.Equal(t, 1e-6, matrix.Epsilon(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6)), "last option wins")
	require.Equal(t, matrix.DefaultEpsilon, matrix.Epsilon(nil))
}

// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, 2, []float64{1, 2, 3}) // short buffer
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseRejectsNaNInf checks the default numeric policy and its opt-out.
func TestNewDenseRejectsNaNInf(t *testing.T) {
	_, err := matrix.NewDense(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDense(1, 2, []float64{math.Inf(-1), 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDense(1, 2, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestDenseShapeAndKind verifies dimensions and the default kind.
func TestDenseShapeAndKind(t *testing.T) {
	m, err := matrix.NewDense(3, 4, nil)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 12, m.Len())
	require.False(t, m.IsSquare())
	require.False(t, m.IsVector())
	require.Equal(t, matrix.KindGeneral, m.Kind())
	require.Equal(t, "general", m.Kind().String())
}

// TestDenseImmutability ensures callers cannot reach internal storage.
func TestDenseImmutability(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDense(2, 2, src)
	require.NoError(t, err)

	src[0] = 99 // caller's slice is not aliased
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	vals := m.Values()
	vals[3] = -1
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 0
	col, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, col)
}

// TestAtOutOfRange ensures accessors return ErrOutOfRange instead of panicking.
func TestAtOutOfRange(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewFromRowsRagged rejects rows of different length.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewVector builds a column vector.
func TestNewVector(t *testing.T) {
	v := mustVec(t, 0.5, 0.25, 0.25)
	require.True(t, v.IsVector())
	require.Equal(t, 3, v.Rows())
	require.Equal(t, []float64{0.5, 0.25, 0.25}, v.Values())

	_, err := matrix.NewVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewIdentity checks values and the identity tag.
func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, matrix.KindIdentity, id.Kind())
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Values())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFilled checks the constant matrix used for teleportation.
func TestNewFilled(t *testing.T) {
	b, err := matrix.NewFilled(2, 2, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, b.Values())

	_, err = matrix.NewFilled(2, 2, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDenseString checks the diagnostic rendering.
func TestDenseString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

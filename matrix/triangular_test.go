package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dtwconn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangular(t *testing.T) {
	_, err := matrix.NewTriangular(0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewTriangular(4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Size())
	for i := 0; i < 4; i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		assert.Len(t, row, 3-i)
	}
}

func TestTriangular_SetAt(t *testing.T) {
	m, err := matrix.NewTriangular(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 2, 7))
	require.NoError(t, m.Set(2, 1, 5)) // stored as (1,2)

	v, err := m.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v, "lower triangle mirrors upper")

	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v, "diagonal is zero")

	assert.ErrorIs(t, m.Set(1, 1, 3), matrix.ErrDiagonal)
	assert.ErrorIs(t, m.Set(0, 3, 3), matrix.ErrOutOfRange)
	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2, 3}, {4, 5}, {6}, {}})
	require.NoError(t, err)
	assert.Equal(t, 4, m.Size())

	v, err := m.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	assert.Equal(t, 1, m.Count(6))

	_, err = matrix.FromRows([][]int64{{1}, {2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

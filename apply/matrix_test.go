package apply

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

func TestApplyMatrix(t *testing.T) {
	matrix := [][]interface{}{
		{true, 2},
		{false, 0},
		{true, 1},
	}
	res, err := ApplyMatrix(matrix, anyFunc, nil)
	require.NoError(t, err)
	vals, typ := res.Vector()
	require.Equal(t, common.TypeBool, typ)
	require.Equal(t, []interface{}{true, false, true}, vals)
}

func TestApplyMatrixPoolsWholeMatrix(t *testing.T) {
	// One string anywhere pools the whole matrix to varchar.
	matrix := [][]interface{}{
		{1, 2},
		{3, "x"},
	}
	var seen []common.Type
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		seen = append(seen[:0], row.Types...)
		return NewScalarOutput(0), nil
	}
	_, err := ApplyMatrix(matrix, fn, nil)
	require.NoError(t, err)
	require.Equal(t, []common.Type{common.TypeVarchar, common.TypeVarchar}, seen)
}

func TestApplyMatrixEmpty(t *testing.T) {
	res, err := ApplyMatrix(nil, anyFunc, nil)
	require.NoError(t, err)
	require.Equal(t, 0, res.RowCount())
}

func TestApplyMatrixRaggedFails(t *testing.T) {
	matrix := [][]interface{}{
		{1, 2},
		{3},
	}
	_, err := ApplyMatrix(matrix, anyFunc, nil)
	require.True(t, errors.HasCode(err, errors.TypeCoercion))
}

func TestApplyMatrixNonScalarFails(t *testing.T) {
	matrix := [][]interface{}{
		{[]int{1, 2}},
	}
	_, err := ApplyMatrix(matrix, anyFunc, nil)
	require.True(t, errors.HasCode(err, errors.TypeCoercion))
}

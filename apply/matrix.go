package apply

import (
	"fmt"

	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// ApplyMatrix applies fn row-wise to matrix-like input: a row-major slice
// of rows whose values need not share a type per column but must all be
// coercible scalars. The whole matrix is pooled to one common type, so this
// always behaves like the coerce strategy. Row lengths must match.
func ApplyMatrix(matrix [][]interface{}, fn RowFunc, args Args) (*Result, error) {
	rows, colNames, err := rowsFromMatrix(matrix)
	if err != nil {
		return nil, err
	}
	return Apply(rows, colNames, fn, args, StrategyCoerce)
}

func rowsFromMatrix(matrix [][]interface{}) (*common.Rows, []string, error) {
	if len(matrix) == 0 {
		return common.NewRowsFactory(nil).NewRows(0), nil, nil
	}
	colCount := len(matrix[0])
	matType := common.TypeUnknown
	for i, row := range matrix {
		if len(row) != colCount {
			return nil, nil, errors.NewTypeCoercionErrorf("Matrix row %d has %d values, expected %d", i, len(row), colCount)
		}
		for _, val := range row {
			_, t, err := common.NormalizeScalar(val)
			if err != nil {
				return nil, nil, err
			}
			if matType == common.TypeUnknown {
				matType = t
			} else {
				matType = common.PromoteType(matType, t)
			}
		}
	}

	colNames := make([]string, colCount)
	columnTypes := make([]common.ColumnType, colCount)
	for j := 0; j < colCount; j++ {
		colNames[j] = fmt.Sprintf("c%d", j+1)
		columnTypes[j] = common.ColumnTypesByType[matType]
	}
	rows := common.NewRowsFactory(columnTypes).NewRows(len(matrix))
	for _, row := range matrix {
		if colCount == 0 {
			rows.AppendEmptyRow()
			continue
		}
		for j, val := range row {
			norm, t, err := common.NormalizeScalar(val)
			if err != nil {
				return nil, nil, err
			}
			coerced, err := common.CoerceScalar(norm, t, matType)
			if err != nil {
				return nil, nil, err
			}
			rows.AppendValueToColumn(j, coerced)
		}
	}
	return rows, colNames, nil
}

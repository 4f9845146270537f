package apply

import (
	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// Result is either a vector (one element per input row) or a table (one row
// per input row). Its length always equals the input table's row count.
type Result struct {
	vec     []interface{}
	vecType common.Type
	table   *common.Rows
	cols    []common.ColumnInfo
}

func (r *Result) IsTable() bool {
	return r.table != nil
}

// Vector returns the combined values and their common type. Only valid when
// IsTable() is false.
func (r *Result) Vector() ([]interface{}, common.Type) {
	return r.vec, r.vecType
}

// Table returns the row-bound table and its column metadata. Only valid
// when IsTable() is true.
func (r *Result) Table() (*common.Rows, []common.ColumnInfo) {
	return r.table, r.cols
}

func (r *Result) RowCount() int {
	if r.table != nil {
		return r.table.RowCount()
	}
	return len(r.vec)
}

// combine inspects the shape of the first output to decide between vector
// concatenation and table row-binding, then validates every output against
// that shape.
func combine(outputs []PerRowOutput) (*Result, error) {
	if len(outputs) == 0 {
		// Degenerate: no type information available.
		return &Result{vec: []interface{}{}, vecType: common.TypeUnknown}, nil
	}
	if outputs[0].IsScalar() {
		return combineScalars(outputs)
	}
	return combineRecords(outputs)
}

func combineScalars(outputs []PerRowOutput) (*Result, error) {
	vals := make([]interface{}, len(outputs))
	types := make([]common.Type, len(outputs))
	vecType := common.TypeUnknown
	for i, out := range outputs {
		if !out.IsScalar() {
			return nil, errors.NewInconsistentOutputShapeError(i, "expected a scalar but the function returned a record")
		}
		val, t, err := common.NormalizeScalar(out.Scalar())
		if err != nil {
			return nil, err
		}
		vals[i] = val
		types[i] = t
		if i == 0 {
			vecType = t
		} else {
			vecType = common.PromoteType(vecType, t)
		}
	}
	for i := range vals {
		coerced, err := common.CoerceScalar(vals[i], types[i], vecType)
		if err != nil {
			return nil, err
		}
		vals[i] = coerced
	}
	return &Result{vec: vals, vecType: vecType}, nil
}

func combineRecords(outputs []PerRowOutput) (*Result, error) {
	first := outputs[0].Record()
	if first.NumRows != 1 {
		return nil, errors.NewInvalidOutputShapeError(0, first.NumRows)
	}
	colCount := len(first.Names)
	colIndexes := make(map[string]int, colCount)
	for i, name := range first.Names {
		colIndexes[name] = i
	}
	if len(colIndexes) != colCount {
		return nil, errors.NewInconsistentOutputShapeError(0, "record has duplicate column names")
	}

	// Values are gathered in the first record's column order; columns are
	// matched by name, so later records may order theirs differently.
	// Column types are promoted across all rows to stay type-stable when
	// e.g. one row yields an int and another a double in the same column.
	n := len(outputs)
	vals := make([][]interface{}, n)
	valTypes := make([][]common.Type, n)
	colTypes := make([]common.Type, colCount)
	for i, out := range outputs {
		if out.IsScalar() {
			return nil, errors.NewInconsistentOutputShapeError(i, "expected a record but the function returned a scalar")
		}
		rec := out.Record()
		if rec.NumRows != 1 {
			return nil, errors.NewInvalidOutputShapeError(i, rec.NumRows)
		}
		if len(rec.Names) != colCount {
			return nil, errors.NewInconsistentOutputShapeError(i, "record column set differs from row 0")
		}
		vals[i] = make([]interface{}, colCount)
		valTypes[i] = make([]common.Type, colCount)
		for j, name := range rec.Names {
			colIndex, ok := colIndexes[name]
			if !ok {
				return nil, errors.NewInconsistentOutputShapeError(i, "record column set differs from row 0")
			}
			val, t, err := common.NormalizeScalar(rec.Values[j])
			if err != nil {
				return nil, err
			}
			vals[i][colIndex] = val
			valTypes[i][colIndex] = t
			if i == 0 {
				colTypes[colIndex] = t
			} else {
				colTypes[colIndex] = common.PromoteType(colTypes[colIndex], t)
			}
		}
	}

	colInfos := make([]common.ColumnInfo, colCount)
	columnTypes := make([]common.ColumnType, colCount)
	for j := 0; j < colCount; j++ {
		columnTypes[j] = common.ColumnTypesByType[colTypes[j]]
		colInfos[j] = common.ColumnInfo{Name: first.Names[j], ColumnType: columnTypes[j]}
	}
	rf := common.NewRowsFactory(columnTypes)
	table := rf.NewRows(n)
	for i := 0; i < n; i++ {
		// A zero-column record set still yields n rows.
		table.AppendEmptyRow()
		for j := 0; j < colCount; j++ {
			coerced, err := common.CoerceScalar(vals[i][j], valTypes[i][j], colTypes[j])
			if err != nil {
				return nil, err
			}
			table.AppendValueToColumn(j, coerced)
		}
	}
	return &Result{table: table, cols: colInfos}, nil
}

package apply

import (
	"testing"

	"github.com/squareup/rowply/common"
)

// Test utils for this package

var boolColNames = []string{"a", "b"}
var boolColTypes = []common.ColumnType{common.BoolColumnType, common.BoolColumnType}

func toRows(t *testing.T, rows [][]interface{}, colTypes []common.ColumnType) *common.Rows {
	t.Helper()
	rf := common.NewRowsFactory(colTypes)
	r := rf.NewRows(len(rows))
	for _, row := range rows {
		common.AppendRow(t, r, colTypes, row...)
	}
	return r
}

// anyFunc returns true if any element of the row is truthy (bool true or
// nonzero numeric).
func anyFunc(row *Vector, args Args) (PerRowOutput, error) {
	for i := 0; i < row.Len(); i++ {
		val, typ := row.Get(i)
		switch typ {
		case common.TypeBool:
			if val.(bool) {
				return NewScalarOutput(true), nil
			}
		case common.TypeInt:
			if val.(int64) != 0 {
				return NewScalarOutput(true), nil
			}
		case common.TypeDouble:
			if val.(float64) != 0 {
				return NewScalarOutput(true), nil
			}
		}
	}
	return NewScalarOutput(false), nil
}

// sumFunc sums the row's elements as int64, treating bools as 0/1.
func sumFunc(row *Vector) (int64, error) {
	var sum int64
	for i := 0; i < row.Len(); i++ {
		val, typ := row.Get(i)
		coerced, err := common.CoerceScalar(val, typ, common.TypeInt)
		if err != nil {
			return 0, err
		}
		sum += coerced.(int64)
	}
	return sum, nil
}

// firstColFunc passes the first element of the row through unchanged.
func firstColFunc(row *Vector, args Args) (PerRowOutput, error) {
	val, _ := row.Get(0)
	return NewScalarOutput(val), nil
}

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test utils

func AppendRow(t *testing.T, rows *Rows, colTypes []ColumnType, colVals ...interface{}) {
	t.Helper()
	require.Equal(t, len(colVals), len(colTypes))

	for i, colType := range colTypes {
		colVal := colVals[i]
		switch colType.Type {
		case TypeBool:
			rows.AppendBoolToColumn(i, colVal.(bool))
		case TypeInt:
			rows.AppendInt64ToColumn(i, int64(colVal.(int)))
		case TypeDouble:
			rows.AppendFloat64ToColumn(i, colVal.(float64))
		case TypeVarchar:
			rows.AppendStringToColumn(i, colVal.(string))
		}
	}
}

func RowsEqual(t *testing.T, expected Row, actual Row, colTypes []ColumnType) {
	t.Helper()
	require.Equal(t, expected.ColCount(), actual.ColCount())
	for colIndex, colType := range colTypes {
		switch colType.Type {
		case TypeBool:
			require.Equal(t, expected.GetBool(colIndex), actual.GetBool(colIndex))
		case TypeInt:
			require.Equal(t, expected.GetInt64(colIndex), actual.GetInt64(colIndex))
		case TypeDouble:
			require.Equal(t, expected.GetFloat64(colIndex), actual.GetFloat64(colIndex))
		case TypeVarchar:
			require.Equal(t, expected.GetString(colIndex), actual.GetString(colIndex))
		default:
			t.Errorf("unexpected column type %d", colType)
		}
	}
}

func AllRowsEqual(t *testing.T, expected *Rows, actual *Rows, colTypes []ColumnType) {
	t.Helper()
	require.Equal(t, expected.RowCount(), actual.RowCount())
	for i := 0; i < expected.RowCount(); i++ {
		expRow := expected.GetRow(i)
		actRow := actual.GetRow(i)
		RowsEqual(t, expRow, actRow, colTypes)
	}
}

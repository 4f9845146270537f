package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	colTypes := []ColumnType{BoolColumnType, IntColumnType, DoubleColumnType, VarcharColumnType}
	rf := NewRowsFactory(colTypes)
	rows := rf.NewRows(1)
	rowCount := 10
	for i := 0; i < rowCount; i++ {
		rows.AppendBoolToColumn(0, boolVal(i))
		rows.AppendInt64ToColumn(1, intVal(i))
		rows.AppendFloat64ToColumn(2, doubleVal(i))
		rows.AppendStringToColumn(3, stringVal(i))
	}
	require.Equal(t, rowCount, rows.RowCount())
	require.Equal(t, 4, rows.ColumnCount())
	require.Equal(t, colTypes, rows.ColumnTypes())
	for i := 0; i < rowCount; i++ {
		row := rows.GetRow(i)
		require.Equal(t, 4, row.ColCount())
		require.Equal(t, boolVal(i), row.GetBool(0))
		require.Equal(t, intVal(i), row.GetInt64(1))
		require.Equal(t, doubleVal(i), row.GetFloat64(2))
		require.Equal(t, stringVal(i), row.GetString(3))
	}
}

func TestRowGet(t *testing.T) {
	colTypes := []ColumnType{BoolColumnType, IntColumnType, DoubleColumnType, VarcharColumnType}
	rows := NewRowsFactory(colTypes).NewRows(1)
	rows.AppendBoolToColumn(0, true)
	rows.AppendInt64ToColumn(1, 42)
	rows.AppendFloat64ToColumn(2, 1.25)
	rows.AppendStringToColumn(3, "wincanton")
	row := rows.GetRow(0)
	require.Equal(t, true, row.Get(0))
	require.Equal(t, int64(42), row.Get(1))
	require.Equal(t, 1.25, row.Get(2))
	require.Equal(t, "wincanton", row.Get(3))
}

func TestAppendRow(t *testing.T) {
	colTypes := []ColumnType{IntColumnType, VarcharColumnType}
	source := NewRowsFactory(colTypes).NewRows(2)
	AppendRow(t, source, colTypes, 1, "london")
	AppendRow(t, source, colTypes, 2, "bristol")

	target := NewRowsFactory(colTypes).NewRows(2)
	for i := 0; i < source.RowCount(); i++ {
		target.AppendRow(source.GetRow(i))
	}
	AllRowsEqual(t, source, target, colTypes)
}

func TestZeroColumnRows(t *testing.T) {
	rows := NewRowsFactory(nil).NewRows(0)
	require.Equal(t, 0, rows.RowCount())
	require.Equal(t, 0, rows.ColumnCount())
	rows.AppendEmptyRow()
	rows.AppendEmptyRow()
	require.Equal(t, 2, rows.RowCount())
}

func boolVal(i int) bool {
	return i%2 == 0
}

func intVal(i int) int64 {
	return int64(i * 10)
}

func doubleVal(i int) float64 {
	return float64(i) + 0.5
}

func stringVal(i int) string {
	return fmt.Sprintf("s-%d", i)
}

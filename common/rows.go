package common

import (
	"fmt"
)

// Rows is a columnar store of rows: one typed slice per column. All columns
// always hold the same number of values once a full row has been appended.
type Rows struct {
	columns []*column
	// rowCount is only consulted when there are no columns at all, where
	// rows still need a count (a zero-column table can have N rows).
	rowCount int
}

type Row struct {
	rows     *Rows
	rowIndex int
}

type column struct {
	colType    ColumnType
	boolVals   []bool
	intVals    []int64
	doubleVals []float64
	stringVals []string
}

// RowsFactory caches the column types so we don't have to recompute them
// each time we create a new Rows
type RowsFactory struct {
	ColumnTypes []ColumnType
}

func NewRowsFactory(columnTypes []ColumnType) *RowsFactory {
	return &RowsFactory{ColumnTypes: columnTypes}
}

func (rf *RowsFactory) NewRows(capacity int) *Rows {
	columns := make([]*column, len(rf.ColumnTypes))
	for i, colType := range rf.ColumnTypes {
		columns[i] = newColumn(colType, capacity)
	}
	return &Rows{columns: columns}
}

func newColumn(colType ColumnType, capacity int) *column {
	col := &column{colType: colType}
	switch colType.Type {
	case TypeBool:
		col.boolVals = make([]bool, 0, capacity)
	case TypeInt:
		col.intVals = make([]int64, 0, capacity)
	case TypeDouble:
		col.doubleVals = make([]float64, 0, capacity)
	case TypeVarchar:
		col.stringVals = make([]string, 0, capacity)
	default:
		panic(fmt.Sprintf("unexpected column type %d", colType.Type))
	}
	return col
}

func (c *column) length() int {
	switch c.colType.Type {
	case TypeBool:
		return len(c.boolVals)
	case TypeInt:
		return len(c.intVals)
	case TypeDouble:
		return len(c.doubleVals)
	case TypeVarchar:
		return len(c.stringVals)
	default:
		panic(fmt.Sprintf("unexpected column type %d", c.colType.Type))
	}
}

func (r *Rows) GetRow(rowIndex int) Row {
	return Row{rows: r, rowIndex: rowIndex}
}

func (r *Rows) RowCount() int {
	if len(r.columns) == 0 {
		return r.rowCount
	}
	return r.columns[0].length()
}

func (r *Rows) ColumnCount() int {
	return len(r.columns)
}

func (r *Rows) ColumnTypes() []ColumnType {
	colTypes := make([]ColumnType, len(r.columns))
	for i, col := range r.columns {
		colTypes[i] = col.colType
	}
	return colTypes
}

// AppendEmptyRow bumps the row count of a zero-column Rows. It is a no-op
// when columns exist, where the row count is the first column's length.
func (r *Rows) AppendEmptyRow() {
	if len(r.columns) == 0 {
		r.rowCount++
	}
}

func (r *Rows) AppendRow(row Row) {
	for colIndex := range r.columns {
		r.AppendValueToColumn(colIndex, row.Get(colIndex))
	}
}

func (r *Rows) AppendBoolToColumn(colIndex int, val bool) {
	col := r.columns[colIndex]
	col.boolVals = append(col.boolVals, val)
}

func (r *Rows) AppendInt64ToColumn(colIndex int, val int64) {
	col := r.columns[colIndex]
	col.intVals = append(col.intVals, val)
}

func (r *Rows) AppendFloat64ToColumn(colIndex int, val float64) {
	col := r.columns[colIndex]
	col.doubleVals = append(col.doubleVals, val)
}

func (r *Rows) AppendStringToColumn(colIndex int, val string) {
	col := r.columns[colIndex]
	col.stringVals = append(col.stringVals, val)
}

// AppendValueToColumn appends val, which must already have the column's
// exact type - coerce first with CoerceScalar if it might not.
func (r *Rows) AppendValueToColumn(colIndex int, val interface{}) {
	col := r.columns[colIndex]
	switch col.colType.Type {
	case TypeBool:
		r.AppendBoolToColumn(colIndex, val.(bool))
	case TypeInt:
		r.AppendInt64ToColumn(colIndex, val.(int64))
	case TypeDouble:
		r.AppendFloat64ToColumn(colIndex, val.(float64))
	case TypeVarchar:
		r.AppendStringToColumn(colIndex, val.(string))
	default:
		panic(fmt.Sprintf("unexpected column type %d", col.colType.Type))
	}
}

func (r Row) GetBool(colIndex int) bool {
	return r.rows.columns[colIndex].boolVals[r.rowIndex]
}

func (r Row) GetInt64(colIndex int) int64 {
	return r.rows.columns[colIndex].intVals[r.rowIndex]
}

func (r Row) GetFloat64(colIndex int) float64 {
	return r.rows.columns[colIndex].doubleVals[r.rowIndex]
}

func (r Row) GetString(colIndex int) string {
	return r.rows.columns[colIndex].stringVals[r.rowIndex]
}

// Get returns the value at colIndex boxed as an interface{} of the
// column's native Go type.
func (r Row) Get(colIndex int) interface{} {
	col := r.rows.columns[colIndex]
	switch col.colType.Type {
	case TypeBool:
		return col.boolVals[r.rowIndex]
	case TypeInt:
		return col.intVals[r.rowIndex]
	case TypeDouble:
		return col.doubleVals[r.rowIndex]
	case TypeVarchar:
		return col.stringVals[r.rowIndex]
	default:
		panic(fmt.Sprintf("unexpected column type %d", col.colType.Type))
	}
}

func (r Row) ColCount() int {
	return len(r.rows.columns)
}

package apply

import (
	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// A rowMaterializer turns one table row into the Vector a RowFunc consumes.
type rowMaterializer interface {
	materializeRow(rowIndex int) (*Vector, error)
}

// coerceMaterializer computes a single common type across all columns
// upfront, so a table that can't be pooled fails before any row is
// processed, and every row vector it emits is homogeneous.
type coerceMaterializer struct {
	rows       *common.Rows
	names      []string
	colTypes   []common.ColumnType
	commonType common.Type
}

func newCoerceMaterializer(rows *common.Rows, names []string) (*coerceMaterializer, error) {
	colTypes := rows.ColumnTypes()
	types := make([]common.Type, len(colTypes))
	for i, ct := range colTypes {
		types[i] = ct.Type
	}
	commonType, err := common.CommonType(types...)
	if err != nil {
		return nil, errors.NewTypeCoercionError(err.Error())
	}
	return &coerceMaterializer{
		rows:       rows,
		names:      names,
		colTypes:   colTypes,
		commonType: commonType,
	}, nil
}

func (m *coerceMaterializer) materializeRow(rowIndex int) (*Vector, error) {
	row := m.rows.GetRow(rowIndex)
	colCount := m.rows.ColumnCount()
	vals := make([]interface{}, colCount)
	types := make([]common.Type, colCount)
	for i := 0; i < colCount; i++ {
		coerced, err := common.CoerceScalar(row.Get(i), m.colTypes[i].Type, m.commonType)
		if err != nil {
			return nil, errors.NewTypeCoercionErrorAtRow(rowIndex, err.Error())
		}
		vals[i] = coerced
		types[i] = m.commonType
	}
	return &Vector{Names: m.names, Types: types, Vals: vals}, nil
}

// zipMaterializer keeps each column's native type; any reconciliation of
// mixed types is left to the function, which may fail at the offending row
// instead of the whole table being coerced upfront.
type zipMaterializer struct {
	rows     *common.Rows
	names    []string
	colTypes []common.ColumnType
}

func newZipMaterializer(rows *common.Rows, names []string) (*zipMaterializer, error) {
	colTypes := rows.ColumnTypes()
	for i, ct := range colTypes {
		if ct.Type == common.TypeUnknown {
			return nil, errors.NewTypeCoercionErrorf("Column %d has no coercible scalar type", i)
		}
	}
	return &zipMaterializer{rows: rows, names: names, colTypes: colTypes}, nil
}

func (m *zipMaterializer) materializeRow(rowIndex int) (*Vector, error) {
	row := m.rows.GetRow(rowIndex)
	colCount := m.rows.ColumnCount()
	vals := make([]interface{}, colCount)
	types := make([]common.Type, colCount)
	for i := 0; i < colCount; i++ {
		vals[i] = row.Get(i)
		types[i] = m.colTypes[i].Type
	}
	return &Vector{Names: m.names, Types: types, Vals: vals}, nil
}

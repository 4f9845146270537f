package shell

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// Table is a loaded CSV file: columnar rows plus the header names.
type Table struct {
	Rows     *common.Rows
	ColNames []string
	ColTypes []common.ColumnType
}

// LoadCSV reads a CSV file whose first record is the header. Each column's
// type is the narrowest in bool < int < double < varchar that every value
// in the column parses as.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.MaybeAddStack(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.MaybeAddStack(err)
	}
	if len(records) == 0 {
		return nil, errors.NewInvalidConfigurationError("CSV file has no header record")
	}
	colNames := records[0]
	body := records[1:]

	colTypes := make([]common.ColumnType, len(colNames))
	for j := range colNames {
		colTypes[j] = inferCSVColumnType(body, j)
	}

	rows := common.NewRowsFactory(colTypes).NewRows(len(body))
	for _, record := range body {
		for j, colType := range colTypes {
			appendCSVValue(rows, j, colType, record[j])
		}
	}
	return &Table{Rows: rows, ColNames: colNames, ColTypes: colTypes}, nil
}

func inferCSVColumnType(body [][]string, colIndex int) common.ColumnType {
	if columnParses(body, colIndex, func(val string) bool {
		_, err := strconv.ParseBool(val)
		return err == nil
	}) {
		return common.BoolColumnType
	}
	if columnParses(body, colIndex, func(val string) bool {
		_, err := strconv.ParseInt(val, 10, 64)
		return err == nil
	}) {
		return common.IntColumnType
	}
	if columnParses(body, colIndex, func(val string) bool {
		_, err := strconv.ParseFloat(val, 64)
		return err == nil
	}) {
		return common.DoubleColumnType
	}
	return common.VarcharColumnType
}

func columnParses(body [][]string, colIndex int, parses func(string) bool) bool {
	for _, record := range body {
		if !parses(record[colIndex]) {
			return false
		}
	}
	return true
}

func appendCSVValue(rows *common.Rows, colIndex int, colType common.ColumnType, val string) {
	// Parse failures can't happen - the column type was inferred from
	// these same values.
	switch colType.Type {
	case common.TypeBool:
		b, _ := strconv.ParseBool(val)
		rows.AppendBoolToColumn(colIndex, b)
	case common.TypeInt:
		i, _ := strconv.ParseInt(val, 10, 64)
		rows.AppendInt64ToColumn(colIndex, i)
	case common.TypeDouble:
		d, _ := strconv.ParseFloat(val, 64)
		rows.AppendFloat64ToColumn(colIndex, d)
	default:
		rows.AppendStringToColumn(colIndex, val)
	}
}

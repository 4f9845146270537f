package shell

import (
	"strings"

	"github.com/squareup/rowply/apply"
	"github.com/squareup/rowply/common"
)

// RenderResult renders an apply result as bordered text lines, one column
// per output column for table results and a single "result" column for
// vector results.
func RenderResult(res *apply.Result) ([]string, error) {
	if res.IsTable() {
		return renderTable(res)
	}
	return renderVector(res)
}

func renderVector(res *apply.Result) ([]string, error) {
	vals, vecType := res.Vector()
	cells := make([][]string, len(vals))
	for i, val := range vals {
		text, err := cellText(val, vecType)
		if err != nil {
			return nil, err
		}
		cells[i] = []string{text}
	}
	return renderCells([]string{"result"}, cells), nil
}

func renderTable(res *apply.Result) ([]string, error) {
	table, cols := res.Table()
	colNames := make([]string, len(cols))
	for j, col := range cols {
		colNames[j] = col.Name
	}
	cells := make([][]string, table.RowCount())
	for i := 0; i < table.RowCount(); i++ {
		row := table.GetRow(i)
		cells[i] = make([]string, len(cols))
		for j, col := range cols {
			text, err := cellText(row.Get(j), col.Type)
			if err != nil {
				return nil, err
			}
			cells[i][j] = text
		}
	}
	return renderCells(colNames, cells), nil
}

func cellText(val interface{}, t common.Type) (string, error) {
	text, err := common.CoerceScalar(val, t, common.TypeVarchar)
	if err != nil {
		return "", err
	}
	return text.(string), nil
}

func renderCells(colNames []string, cells [][]string) []string {
	if len(colNames) == 0 {
		return nil
	}
	widths := calcColumnWidths(colNames, cells)
	header := writeLine(colNames, widths)
	border := createHeaderBorder(len(header))
	lines := []string{border, header, border}
	for _, row := range cells {
		lines = append(lines, writeLine(row, widths))
	}
	if len(cells) > 0 {
		lines = append(lines, border)
	}
	return lines
}

func calcColumnWidths(colNames []string, cells [][]string) []int {
	widths := make([]int, len(colNames))
	for j, name := range colNames {
		widths[j] = len(name)
	}
	for _, row := range cells {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	return widths
}

func writeLine(values []string, columnWidths []int) string {
	sb := &strings.Builder{}
	sb.WriteString("|")
	for i, v := range values {
		sb.WriteRune(' ')
		cw := columnWidths[i]
		if len(v) > cw {
			v = v[:cw-2] + ".."
		}
		sb.WriteString(rightPadToWidth(cw, v))
		sb.WriteString(" |")
	}
	return sb.String()
}

func createHeaderBorder(headerLen int) string {
	return "+" + strings.Repeat("-", headerLen-2) + "+"
}

func rightPadToWidth(width int, s string) string {
	padSpaces := width - len(s)
	pad := strings.Repeat(" ", padSpaces)
	s += pad
	return s
}

package apply

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("coerce")
	require.NoError(t, err)
	require.Equal(t, StrategyCoerce, s)

	s, err = ParseStrategy("zip")
	require.NoError(t, err)
	require.Equal(t, StrategyZip, s)

	_, err = ParseStrategy("bogus")
	require.True(t, errors.HasCode(err, errors.InvalidStrategy))

	// No silent fallback for the empty string either.
	_, err = ParseStrategy("")
	require.True(t, errors.HasCode(err, errors.InvalidStrategy))
}

func TestInvalidStrategyFailsBeforeAnyRow(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, false},
	}
	rows := toRows(t, inpRows, boolColTypes)
	called := 0
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		called++
		return NewScalarOutput(true), nil
	}
	_, err := Apply(rows, boolColNames, fn, nil, "bogus")
	require.True(t, errors.HasCode(err, errors.InvalidStrategy))
	require.Equal(t, 0, called)
}

// The 3x2 logical table from the scenario: any over each row gives
// [true, false, true].
func TestApplyAnyOverLogicalTable(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, false},
		{true, true},
	}
	rows := toRows(t, inpRows, boolColTypes)
	res, err := ApplyDefault(rows, boolColNames, anyFunc, nil)
	require.NoError(t, err)
	require.False(t, res.IsTable())
	require.Equal(t, 3, res.RowCount())
	vals, typ := res.Vector()
	require.Equal(t, common.TypeBool, typ)
	require.Equal(t, []interface{}{true, false, true}, vals)
}

// Same table, record formula {count: sum} gives a 3-row, 1-column table
// [[1], [0], [2]].
func TestApplyRecordOverLogicalTable(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, false},
		{true, true},
	}
	rows := toRows(t, inpRows, boolColTypes)
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		sum, err := sumFunc(row)
		if err != nil {
			return PerRowOutput{}, err
		}
		return NewRecordOutput([]string{"count"}, []interface{}{sum}), nil
	}
	res, err := ApplyDefault(rows, boolColNames, fn, nil)
	require.NoError(t, err)
	require.True(t, res.IsTable())
	require.Equal(t, 3, res.RowCount())
	table, cols := res.Table()
	require.Len(t, cols, 1)
	require.Equal(t, "count", cols[0].Name)
	require.Equal(t, common.TypeInt, cols[0].Type)
	expected := []int64{1, 0, 2}
	for i, exp := range expected {
		require.Equal(t, exp, table.GetRow(i).GetInt64(0))
	}
}

func TestResultLengthEqualsRowCount(t *testing.T) {
	colTypes := []common.ColumnType{common.IntColumnType, common.IntColumnType}
	for _, n := range []int{0, 1, 5, 100} {
		rf := common.NewRowsFactory(colTypes)
		rows := rf.NewRows(n)
		for i := 0; i < n; i++ {
			rows.AppendInt64ToColumn(0, int64(i))
			rows.AppendInt64ToColumn(1, int64(i*2))
		}
		res, err := ApplyDefault(rows, []string{"x", "y"}, firstColFunc, nil)
		require.NoError(t, err)
		require.Equal(t, n, res.RowCount())
	}
}

func TestRowOrderPreserved(t *testing.T) {
	colTypes := []common.ColumnType{common.IntColumnType}
	rows := common.NewRowsFactory(colTypes).NewRows(10)
	for i := 0; i < 10; i++ {
		rows.AppendInt64ToColumn(0, int64(i))
	}
	for _, strategy := range []Strategy{StrategyCoerce, StrategyZip} {
		res, err := Apply(rows, []string{"x"}, firstColFunc, nil, strategy)
		require.NoError(t, err)
		vals, typ := res.Vector()
		require.Equal(t, common.TypeInt, typ)
		for i := 0; i < 10; i++ {
			require.Equal(t, int64(i), vals[i])
		}
	}
}

// Coerce pools bool+int columns to int before the function sees the row;
// zip hands the bool column through natively. Either way the combined
// vector's type is the least upper bound of what the function returned.
func TestTypeStability(t *testing.T) {
	colTypes := []common.ColumnType{common.BoolColumnType, common.IntColumnType}
	colNames := []string{"flag", "n"}
	rows := common.NewRowsFactory(colTypes).NewRows(3)
	for i := 0; i < 3; i++ {
		rows.AppendBoolToColumn(0, i%2 == 0)
		rows.AppendInt64ToColumn(1, int64(i))
	}

	res, err := Apply(rows, colNames, firstColFunc, nil, StrategyCoerce)
	require.NoError(t, err)
	vals, typ := res.Vector()
	require.Equal(t, common.TypeInt, typ)
	require.Equal(t, []interface{}{int64(1), int64(0), int64(1)}, vals)

	res, err = Apply(rows, colNames, firstColFunc, nil, StrategyZip)
	require.NoError(t, err)
	vals, typ = res.Vector()
	require.Equal(t, common.TypeBool, typ)
	require.Equal(t, []interface{}{true, false, true}, vals)
}

// For a homogeneous table the two strategies are indistinguishable.
func TestStrategyEquivalenceOnHomogeneousTable(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, false},
		{true, true},
	}
	rows := toRows(t, inpRows, boolColTypes)
	coerceRes, err := Apply(rows, boolColNames, anyFunc, nil, StrategyCoerce)
	require.NoError(t, err)
	zipRes, err := Apply(rows, boolColNames, anyFunc, nil, StrategyZip)
	require.NoError(t, err)

	coerceVals, coerceType := coerceRes.Vector()
	zipVals, zipType := zipRes.Vector()
	require.Equal(t, coerceType, zipType)
	require.Equal(t, coerceVals, zipVals)
}

func TestZipPreservesNativeTypes(t *testing.T) {
	colTypes := []common.ColumnType{common.IntColumnType, common.VarcharColumnType}
	rows := common.NewRowsFactory(colTypes).NewRows(1)
	rows.AppendInt64ToColumn(0, 7)
	rows.AppendStringToColumn(1, "x")
	var seen []common.Type
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		seen = append(seen[:0], row.Types...)
		return NewScalarOutput(true), nil
	}
	_, err := Apply(rows, []string{"n", "s"}, fn, nil, StrategyZip)
	require.NoError(t, err)
	require.Equal(t, []common.Type{common.TypeInt, common.TypeVarchar}, seen)

	_, err = Apply(rows, []string{"n", "s"}, fn, nil, StrategyCoerce)
	require.NoError(t, err)
	require.Equal(t, []common.Type{common.TypeVarchar, common.TypeVarchar}, seen)
}

func TestArgsForwardedVerbatim(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, true},
	}
	rows := toRows(t, inpRows, boolColTypes)
	args := Args{"threshold": 3, "label": "x"}
	fn := func(row *Vector, gotArgs Args) (PerRowOutput, error) {
		require.Equal(t, args, gotArgs)
		return NewScalarOutput(1), nil
	}
	_, err := ApplyDefault(rows, boolColNames, fn, args)
	require.NoError(t, err)
}

func TestZeroRows(t *testing.T) {
	rows := common.NewRowsFactory(boolColTypes).NewRows(0)
	called := 0
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		called++
		return NewScalarOutput(true), nil
	}
	res, err := ApplyDefault(rows, boolColNames, fn, nil)
	require.NoError(t, err)
	require.Equal(t, 0, called)
	require.False(t, res.IsTable())
	vals, typ := res.Vector()
	require.Empty(t, vals)
	require.Equal(t, common.TypeUnknown, typ)
}

func TestZeroColumns(t *testing.T) {
	rows := common.NewRowsFactory(nil).NewRows(0)
	rows.AppendEmptyRow()
	rows.AppendEmptyRow()
	rows.AppendEmptyRow()
	called := 0
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		require.Equal(t, 0, row.Len())
		called++
		return NewScalarOutput(int64(called)), nil
	}
	res, err := ApplyDefault(rows, nil, fn, nil)
	require.NoError(t, err)
	require.Equal(t, 3, called)
	require.Equal(t, 3, res.RowCount())
}

func TestFunctionErrorPropagatesUnchanged(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
		{false, true},
	}
	rows := toRows(t, inpRows, boolColTypes)
	fnErr := errors.NewRowplyErrorf(errors.InternalError, "boom")
	called := 0
	fn := func(row *Vector, args Args) (PerRowOutput, error) {
		called++
		if called == 2 {
			return PerRowOutput{}, fnErr
		}
		return NewScalarOutput(true), nil
	}
	_, err := ApplyDefault(rows, boolColNames, fn, nil)
	require.Equal(t, error(fnErr), err)
	// Fail-fast: the second row's failure aborts the call, so exactly two
	// invocations happened.
	require.Equal(t, 2, called)
}

func TestColumnNameCountMismatch(t *testing.T) {
	inpRows := [][]interface{}{
		{true, false},
	}
	rows := toRows(t, inpRows, boolColTypes)
	_, err := ApplyDefault(rows, []string{"only_one"}, anyFunc, nil)
	require.Error(t, err)
}

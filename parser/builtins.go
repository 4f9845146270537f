package parser

import (
	"strings"

	"github.com/squareup/rowply/apply"
	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// A builtin consumes one row vector and produces one scalar.
type builtin func(row *apply.Vector) (interface{}, error)

var builtins = map[string]builtin{
	"sum":    sumBuiltin,
	"mean":   meanBuiltin,
	"min":    minBuiltin,
	"max":    maxBuiltin,
	"any":    anyBuiltin,
	"all":    allBuiltin,
	"count":  countBuiltin,
	"first":  firstBuiltin,
	"concat": concatBuiltin,
}

func lookupBuiltin(name string) (builtin, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, errors.NewInvalidFormulaError("Unknown builtin '" + name + "'")
	}
	return b, nil
}

// RowFunc resolves the formula's builtins and returns the normalized
// callable the apply engine runs per row. Resolution failures surface here,
// before any row is touched.
func (f *Formula) RowFunc() (apply.RowFunc, error) {
	if f.Call != nil {
		b, err := lookupBuiltin(f.Call.Name)
		if err != nil {
			return nil, err
		}
		return func(row *apply.Vector, args apply.Args) (apply.PerRowOutput, error) {
			val, err := b(row)
			if err != nil {
				return apply.PerRowOutput{}, err
			}
			return apply.NewScalarOutput(val), nil
		}, nil
	}
	names := make([]string, len(f.Record.Fields))
	fieldFns := make([]builtin, len(f.Record.Fields))
	for i, field := range f.Record.Fields {
		b, err := lookupBuiltin(field.Call.Name)
		if err != nil {
			return nil, err
		}
		names[i] = field.Name
		fieldFns[i] = b
	}
	return func(row *apply.Vector, args apply.Args) (apply.PerRowOutput, error) {
		vals := make([]interface{}, len(fieldFns))
		for i, b := range fieldFns {
			val, err := b(row)
			if err != nil {
				return apply.PerRowOutput{}, err
			}
			vals[i] = val
		}
		return apply.NewRecordOutput(names, vals), nil
	}, nil
}

// numericElements coerces every element of the row to one numeric type
// (int unless any element is a double). Varchar elements can't be pooled
// numerically and fail.
func numericElements(row *apply.Vector) ([]interface{}, common.Type, error) {
	numType := common.TypeInt
	for i := 0; i < row.Len(); i++ {
		_, t := row.Get(i)
		if t == common.TypeVarchar {
			return nil, common.TypeUnknown, errors.NewTypeCoercionErrorf("Cannot treat varchar element %d as numeric", i)
		}
		if t == common.TypeDouble {
			numType = common.TypeDouble
		}
	}
	vals := make([]interface{}, row.Len())
	for i := 0; i < row.Len(); i++ {
		val, t := row.Get(i)
		coerced, err := common.CoerceScalar(val, t, numType)
		if err != nil {
			return nil, common.TypeUnknown, err
		}
		vals[i] = coerced
	}
	return vals, numType, nil
}

func sumBuiltin(row *apply.Vector) (interface{}, error) {
	vals, numType, err := numericElements(row)
	if err != nil {
		return nil, err
	}
	if numType == common.TypeDouble {
		var sum float64
		for _, v := range vals {
			sum += v.(float64)
		}
		return sum, nil
	}
	var sum int64
	for _, v := range vals {
		sum += v.(int64)
	}
	return sum, nil
}

func meanBuiltin(row *apply.Vector) (interface{}, error) {
	if row.Len() == 0 {
		return nil, errors.NewTypeCoercionError("Cannot take the mean of an empty row")
	}
	vals, numType, err := numericElements(row)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, v := range vals {
		if numType == common.TypeDouble {
			sum += v.(float64)
		} else {
			sum += float64(v.(int64))
		}
	}
	return sum / float64(len(vals)), nil
}

func minBuiltin(row *apply.Vector) (interface{}, error) {
	return extremum(row, true)
}

func maxBuiltin(row *apply.Vector) (interface{}, error) {
	return extremum(row, false)
}

func extremum(row *apply.Vector, min bool) (interface{}, error) {
	if row.Len() == 0 {
		return nil, errors.NewTypeCoercionError("Cannot take the extremum of an empty row")
	}
	vals, numType, err := numericElements(row)
	if err != nil {
		return nil, err
	}
	if numType == common.TypeDouble {
		best := vals[0].(float64)
		for _, v := range vals[1:] {
			d := v.(float64)
			if (min && d < best) || (!min && d > best) {
				best = d
			}
		}
		return best, nil
	}
	best := vals[0].(int64)
	for _, v := range vals[1:] {
		i := v.(int64)
		if (min && i < best) || (!min && i > best) {
			best = i
		}
	}
	return best, nil
}

// truthy maps scalar row elements to bool: bools directly, numerics as
// nonzero. Varchar elements can't be pooled as logical.
func truthy(val interface{}, t common.Type, index int) (bool, error) {
	switch t {
	case common.TypeBool:
		return val.(bool), nil
	case common.TypeInt:
		return val.(int64) != 0, nil
	case common.TypeDouble:
		return val.(float64) != 0, nil
	default:
		return false, errors.NewTypeCoercionErrorf("Cannot treat varchar element %d as logical", index)
	}
}

func anyBuiltin(row *apply.Vector) (interface{}, error) {
	for i := 0; i < row.Len(); i++ {
		val, t := row.Get(i)
		b, err := truthy(val, t, i)
		if err != nil {
			return nil, err
		}
		if b {
			return true, nil
		}
	}
	return false, nil
}

func allBuiltin(row *apply.Vector) (interface{}, error) {
	for i := 0; i < row.Len(); i++ {
		val, t := row.Get(i)
		b, err := truthy(val, t, i)
		if err != nil {
			return nil, err
		}
		if !b {
			return false, nil
		}
	}
	return true, nil
}

func countBuiltin(row *apply.Vector) (interface{}, error) {
	return int64(row.Len()), nil
}

// firstBuiltin passes the first element through untouched, keeping its
// type.
func firstBuiltin(row *apply.Vector) (interface{}, error) {
	if row.Len() == 0 {
		return nil, errors.NewTypeCoercionError("Cannot take the first element of an empty row")
	}
	val, _ := row.Get(0)
	return val, nil
}

func concatBuiltin(row *apply.Vector) (interface{}, error) {
	sb := &strings.Builder{}
	for i := 0; i < row.Len(); i++ {
		val, t := row.Get(i)
		text, err := common.CoerceScalar(val, t, common.TypeVarchar)
		if err != nil {
			return nil, err
		}
		sb.WriteString(text.(string))
	}
	return sb.String(), nil
}

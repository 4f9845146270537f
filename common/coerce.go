package common

import (
	"fmt"
	"strconv"

	"github.com/squareup/rowply/errors"
)

// ScalarTypeOf is the non-panicking counterpart of InferColumnType, used on
// values produced by user functions where anything could come back.
func ScalarTypeOf(value interface{}) (Type, error) {
	switch value.(type) {
	case bool:
		return TypeBool, nil
	case int, int8, int16, int32, int64:
		return TypeInt, nil
	case float32, float64:
		return TypeDouble, nil
	case string:
		return TypeVarchar, nil
	default:
		return TypeUnknown, errors.NewTypeCoercionErrorf("Value of type %T is not a coercible scalar", value)
	}
}

// NormalizeScalar widens a scalar to the canonical Go representation of its
// Type (int64 for ints, float64 for doubles), so that values of one Type
// always share one Go type.
func NormalizeScalar(value interface{}) (interface{}, Type, error) {
	switch v := value.(type) {
	case bool:
		return v, TypeBool, nil
	case int:
		return int64(v), TypeInt, nil
	case int8:
		return int64(v), TypeInt, nil
	case int16:
		return int64(v), TypeInt, nil
	case int32:
		return int64(v), TypeInt, nil
	case int64:
		return v, TypeInt, nil
	case float32:
		return float64(v), TypeDouble, nil
	case float64:
		return v, TypeDouble, nil
	case string:
		return v, TypeVarchar, nil
	default:
		return nil, TypeUnknown, errors.NewTypeCoercionErrorf("Value of type %T is not a coercible scalar", value)
	}
}

// CoerceScalar converts a normalized scalar of type from into type to.
// Only upward coercion along the order bool < int < double < varchar is
// possible; anything else fails rather than losing information.
func CoerceScalar(value interface{}, from Type, to Type) (interface{}, error) {
	if from == to {
		return value, nil
	}
	if to < from || from == TypeUnknown || to == TypeUnknown {
		return nil, errors.NewTypeCoercionErrorf("Cannot coerce %s to %s", from, to)
	}
	switch from {
	case TypeBool:
		b := value.(bool)
		switch to {
		case TypeInt:
			if b {
				return int64(1), nil
			}
			return int64(0), nil
		case TypeDouble:
			if b {
				return float64(1), nil
			}
			return float64(0), nil
		case TypeVarchar:
			return strconv.FormatBool(b), nil
		}
	case TypeInt:
		i := value.(int64)
		switch to {
		case TypeDouble:
			return float64(i), nil
		case TypeVarchar:
			return strconv.FormatInt(i, 10), nil
		}
	case TypeDouble:
		d := value.(float64)
		if to == TypeVarchar {
			return strconv.FormatFloat(d, 'g', -1, 64), nil
		}
	}
	panic(fmt.Sprintf("unreachable coercion %s to %s", from, to))
}

package common

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Type int

// The order of these constants is the coercion order: a value of one type
// can always be represented as a value of any later type (bool as 0/1,
// int as a double, anything as its text form), never the other way round.
const (
	TypeUnknown Type = iota
	TypeBool
	TypeInt
	TypeDouble
	TypeVarchar
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeVarchar:
		return "varchar"
	default:
		return "unknown"
	}
}

func (t *Type) Capture(tokens []string) error {
	text := strings.ToUpper(strings.Join(tokens, " "))
	switch text {
	case "BOOL":
		*t = TypeBool
	case "INT":
		*t = TypeInt
	case "DOUBLE":
		*t = TypeDouble
	case "VARCHAR":
		*t = TypeVarchar
	default:
		return errors.Errorf("unknown column type %s", text)
	}
	return nil
}

var (
	BoolColumnType    = ColumnType{Type: TypeBool}
	IntColumnType     = ColumnType{Type: TypeInt}
	DoubleColumnType  = ColumnType{Type: TypeDouble}
	VarcharColumnType = ColumnType{Type: TypeVarchar}
	UnknownColumnType = ColumnType{Type: TypeUnknown}

	// ColumnTypesByType allows lookup of ColumnType by Type.
	ColumnTypesByType = map[Type]ColumnType{
		TypeBool:    BoolColumnType,
		TypeInt:     IntColumnType,
		TypeDouble:  DoubleColumnType,
		TypeVarchar: VarcharColumnType,
	}
)

// InferColumnType from Go type.
func InferColumnType(value interface{}) ColumnType {
	switch value.(type) {
	case bool:
		return BoolColumnType
	case int, int8, int16, int32, int64:
		return IntColumnType
	case float32, float64:
		return DoubleColumnType
	case string:
		return VarcharColumnType
	default:
		panic(fmt.Sprintf("can't infer column of type %T", value))
	}
}

type ColumnInfo struct {
	Name string
	ColumnType
}

type ColumnType struct {
	Type Type
}

// PromoteType returns the least upper bound of a and b in the coercion
// order bool < int < double < varchar. TypeUnknown never promotes - the
// result is TypeUnknown if either side is.
func PromoteType(a Type, b Type) Type {
	if a == TypeUnknown || b == TypeUnknown {
		return TypeUnknown
	}
	if a > b {
		return a
	}
	return b
}

// CommonType folds PromoteType over all the given types. Zero types gives
// TypeUnknown with no error - the caller decides whether that matters.
func CommonType(types ...Type) (Type, error) {
	common := TypeUnknown
	for i, t := range types {
		if t == TypeUnknown {
			return TypeUnknown, errors.Errorf("column %d has no coercible scalar type", i)
		}
		if i == 0 {
			common = t
		} else {
			common = PromoteType(common, t)
		}
	}
	return common, nil
}

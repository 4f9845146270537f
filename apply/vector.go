package apply

import (
	"github.com/squareup/rowply/common"
)

// Vector is one materialized row: ordered scalar values positionally
// aligned with the table's columns, with per-element types and the column
// names. Under the coerce strategy every element shares one type; under the
// zip strategy each element keeps its column's native type. A Vector is
// built fresh for each call and must not be retained by the function.
type Vector struct {
	Names []string
	Types []common.Type
	Vals  []interface{}
}

func (v *Vector) Len() int {
	return len(v.Vals)
}

// Get returns the element at index together with its type.
func (v *Vector) Get(index int) (interface{}, common.Type) {
	return v.Vals[index], v.Types[index]
}

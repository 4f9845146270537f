// Package parser contains the formula parser: the adapter that turns the
// shorthand formula syntaxes accepted on the outside into one normalized
// RowFunc before the apply engine ever sees them.
package parser

import (
	"strings"
)

// Formula is either a single call, producing a scalar per row, or a record
// formula producing a named one-row record per row.
type Formula struct {
	Record *RecordFormula `  @@`
	Call   *Call          `| @@`
}

func (f *Formula) String() string {
	if f.Record != nil {
		return f.Record.String()
	}
	return f.Call.String()
}

// RecordFormula names each output column and the builtin that fills it,
// e.g. {total: sum, hot: any}.
type RecordFormula struct {
	Fields []*Field `"{" @@ ("," @@)* "}"`
}

func (r *RecordFormula) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + ": " + f.Call.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type Field struct {
	Name string `@Ident ":"`
	Call *Call  `@@`
}

// Call is a reference to a builtin row function, e.g. sum or any.
type Call struct {
	Name string `@Ident`
}

func (c *Call) String() string {
	return c.Name
}

package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"

	"github.com/squareup/rowply/errors"
)

var (
	lex = stateful.MustSimple([]stateful.Rule{
		{Name: `Ident`, Pattern: `[a-zA-Z_][a-zA-Z_0-9]*`},
		{Name: `Punct`, Pattern: `[{}:,]`},
		{Name: `Whitespace`, Pattern: `\s+`},
	})
	parser = participle.MustBuild(&Formula{},
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
)

// Parse a formula.
func Parse(src string) (*Formula, error) {
	formula := &Formula{}
	if err := parser.ParseString("", src, formula); err != nil {
		return nil, errors.NewInvalidFormulaError(err.Error())
	}
	return formula, nil
}

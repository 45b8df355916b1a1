package meshfixture

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var fixtureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Float", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "EOL", Pattern: `\n+`},
})

// statement is either a "V x y z [scalar]" or "F a b c" line.
type statement struct {
	Kind   string    `@("V" | "F")`
	Values []float64 `(@Float)+`
}

type document struct {
	Statements []*statement `(@@)*`
}

var fixtureParser = participle.MustBuild[document](
	participle.Lexer(fixtureLexer),
	participle.Elide("Whitespace", "EOL"),
)

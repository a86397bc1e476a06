// Package churchlib compiles a human-readable lambda syntax into the
// De Bruijn term algebra of the root package. It exists purely to build
// test fixtures (Church numerals, combinators) in a readable notation
// rather than by hand-deriving De Bruijn indices.
package churchlib

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var namedLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Lambda", `λ|\\`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Punctuation", `[.()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

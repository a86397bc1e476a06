package churchlib

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"

	"github.com/KarpelesLab/blc"
)

var (
	parserOnce sync.Once
	exprParser *participle.Parser[expr]
	parserErr  error
)

func buildParser() (*participle.Parser[expr], error) {
	parserOnce.Do(func() {
		exprParser, parserErr = participle.Build[expr](
			participle.Lexer(namedLexer),
			participle.Elide("Whitespace"),
			participle.UseLookahead(2),
		)
	})
	return exprParser, parserErr
}

// Parse compiles named lambda syntax ("λx.x", "\\x.x") into a De Bruijn
// Term. Identifiers with a leading underscore (e.g. "_Y") are resolved
// against the combinator registry instead of the enclosing binders.
func Parse(src string) (blc.Term, error) {
	p, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("churchlib: building parser: %w", err)
	}
	tree, err := p.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("churchlib: %w", err)
	}
	return convertExpr(tree, nil)
}

// MustParse is Parse but panics on error; intended for package-level
// combinator fixtures built at init time, where a malformed literal is a
// programming error, not a runtime condition.
func MustParse(src string) blc.Term {
	t, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("churchlib: MustParse(%q): %v", src, err))
	}
	return t
}

func convertExpr(e *expr, env []string) (blc.Term, error) {
	switch {
	case e.Abs != nil:
		return convertAbs(e.Abs, env)
	case e.App != nil:
		return convertApp(e.App, env)
	default:
		return nil, fmt.Errorf("churchlib: empty expression")
	}
}

func convertAbs(a *abs, env []string) (blc.Term, error) {
	body, err := convertExpr(a.Body, append([]string{a.Param}, env...))
	if err != nil {
		return nil, err
	}
	return blc.Abs{Body: body}, nil
}

func convertApp(a *app, env []string) (blc.Term, error) {
	if len(a.Atoms) == 0 {
		return nil, fmt.Errorf("churchlib: application with no atoms")
	}
	result, err := convertAtom(a.Atoms[0], env)
	if err != nil {
		return nil, err
	}
	for _, next := range a.Atoms[1:] {
		arg, err := convertAtom(next, env)
		if err != nil {
			return nil, err
		}
		result = blc.App{Func: result, Arg: arg}
	}
	return result, nil
}

func convertAtom(a *atom, env []string) (blc.Term, error) {
	if a.Sub != nil {
		return convertExpr(a.Sub, env)
	}
	if strings.HasPrefix(a.Name, "_") {
		return lookup(a.Name[1:])
	}
	for i, bound := range env {
		if bound == a.Name {
			return blc.Var(i + 1), nil
		}
	}
	return nil, fmt.Errorf("churchlib: unbound variable %q", a.Name)
}

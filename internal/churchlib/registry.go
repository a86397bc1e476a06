package churchlib

import (
	"fmt"

	"github.com/KarpelesLab/blc"
)

// registry holds named combinators, built in dependency order: an entry may
// reference any name already registered via a leading underscore (e.g. GCD
// references "_MOD").
var registry = map[string]blc.Term{}

func lookup(name string) (blc.Term, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("churchlib: unknown combinator %q", name)
	}
	return t, nil
}

// Get exposes a registered combinator to callers outside the package (test
// fixtures building larger terms in Go rather than named syntax).
func Get(name string) (blc.Term, bool) {
	t, ok := registry[name]
	return t, ok
}

func register(name, src string) {
	registry[name] = MustParse(src)
}

func init() {
	register("I", `λx.x`)
	register("K", `λx.λy.x`)
	register("S", `λx.λy.λz.x z (y z)`)

	register("TRUE", `λx.λy.x`)
	register("FALSE", `λx.λy.y`)
	register("NOT", `λb.b _FALSE _TRUE`)
	register("AND", `λp.λq.p q p`)
	register("OR", `λp.λq.p p q`)
	register("IF", `λc.λt.λf.c t f`)

	register("ZERO", `λf.λx.x`)
	register("ONE", `λf.λx.f x`)
	register("SUCC", `λn.λf.λx.f (n f x)`)
	register("PLUS", `λm.λn.λf.λx.m f (n f x)`)
	register("MULT", `λm.λn.λf.m (n f)`)

	register("PAIR", `λx.λy.λf.f x y`)
	register("FIRST", `λp.p _TRUE`)
	register("SECOND", `λp.p _FALSE`)

	register("Y", `λf.(λx.f (x x)) (λx.f (x x))`)

	register("PRED", `λn.λf.λx.n (λg.λh.h (g f)) (λu.x) (λu.u)`)
	register("SUB", `λm.λn.n _PRED m`)

	register("ISZERO", `λn.n (λx._FALSE) _TRUE`)
	register("LEQ", `λm.λn._ISZERO (_SUB m n)`)
	register("EQ", `λm.λn._AND (_LEQ m n) (_LEQ n m)`)
	register("LT", `λm.λn._AND (_LEQ m n) (_NOT (_EQ m n))`)

	register("ISEVEN", `λn.n (λb._NOT b) _TRUE`)
	register("ISODD", `λn._NOT (_ISEVEN n)`)
	register("DIV2", `λn._FIRST (n (λp._PAIR (_IF (_SECOND p) (_SUCC (_FIRST p)) (_FIRST p)) (_NOT (_SECOND p))) (_PAIR _ZERO _FALSE))`)

	register("FACTORIAL", `_Y (λf.λn._IF (_ISZERO n) _ONE (_MULT n (f (_PRED n))))`)

	register("MOD", `_Y (λf.λa.λb._IF (_LT a b) a (f (_SUB a b) b))`)
	register("REM", `_MOD`)
	register("GCD", `_Y (λf.λa.λb._IF (_ISZERO b) a (f b (_MOD a b)))`)
}

// ChurchNumeral builds the Church numeral for n directly (f applied n times
// to x), without going through named syntax.
func ChurchNumeral(n int) blc.Term {
	var body blc.Term = blc.Var(1)
	for i := 0; i < n; i++ {
		body = blc.App{Func: blc.Var(2), Arg: body}
	}
	return blc.Abs{Body: blc.Abs{Body: body}}
}

package blc

import (
	"errors"
	"fmt"
)

// ErrNotATerm is returned by destructors and the binary parser when a value
// does not have the shape they require.
var ErrNotATerm = errors.New("blc: not a term")

// Term is a closed lambda calculus term using De Bruijn indices. It has
// exactly three shapes: Var, Abs and App.
type Term interface {
	isTerm()
	String() string
}

// Var is a 1-based De Bruijn index referring to the i-th enclosing Abs.
// Var is also its own smart constructor: Var(3) builds the term directly,
// so there's no separate constructor function to keep in sync with the
// type.
type Var int

// Abs is a binder; Body is a Term in which index 1 refers to this binder.
type Abs struct {
	Body Term
}

// App is an application of Func to Arg. It never collapses even when Func
// or Arg is itself a redex; reduction is a separate, explicit step.
type App struct {
	Func Term
	Arg  Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

// IsVar reports whether t is a Var.
func IsVar(t Term) bool { _, ok := t.(Var); return ok }

// IsAbs reports whether t is an Abs.
func IsAbs(t Term) bool { _, ok := t.(Abs); return ok }

// IsApp reports whether t is an App.
func IsApp(t Term) bool { _, ok := t.(App); return ok }

// Unvar destructures a Var, returning ErrNotATerm if t is not one.
func Unvar(t Term) (int, error) {
	v, ok := t.(Var)
	if !ok {
		return 0, fmt.Errorf("unvar: %w", ErrNotATerm)
	}
	return int(v), nil
}

// Unabs destructures an Abs, returning ErrNotATerm if t is not one.
func Unabs(t Term) (Term, error) {
	a, ok := t.(Abs)
	if !ok {
		return nil, fmt.Errorf("unabs: %w", ErrNotATerm)
	}
	return a.Body, nil
}

// Unapp destructures an App, returning ErrNotATerm if t is not one.
func Unapp(t Term) (Term, Term, error) {
	a, ok := t.(App)
	if !ok {
		return nil, nil, fmt.Errorf("unapp: %w", ErrNotATerm)
	}
	return a.Func, a.Arg, nil
}

// String renders the De Bruijn index as a single character so that
// juxtaposed applications stay unambiguous: 1-9 as decimal digits, 10 and
// up as uppercase letters (Var(10) -> "A", Var(15) -> "F"). Indices past
// 35 have no single-character form and fall back to decimal.
func (v Var) String() string {
	i := int(v)
	if i >= 10 && i <= 35 {
		return string(rune('A' + i - 10))
	}
	return fmt.Sprintf("%d", i)
}

func (a Abs) String() string {
	return "λ" + a.Body.String()
}

func (a App) String() string {
	return displayChild(a.Func, true) + displayChild(a.Arg, false)
}

// displayChild renders a subterm of an App, parenthesizing as required by
// the surface grammar. Application already associates to the left by
// convention, so an App in the function position never needs parens; an Abs
// there does, since "λx.M N" would otherwise misparse as "λx.(M N)". In the
// argument position anything other than a bare Var is ambiguous and gets
// parenthesized.
func displayChild(t Term, isFuncPosition bool) string {
	s := t.String()
	switch t.(type) {
	case App:
		if isFuncPosition {
			return s
		}
		return "(" + s + ")"
	case Abs:
		return "(" + s + ")"
	default:
		return s
	}
}

// Display renders t in the human-readable surface syntax. It is the same
// rendering String produces; the free function exists so callers can write
// Display(t) alongside the other package-level operations.
func Display(t Term) string {
	return t.String()
}

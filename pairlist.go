package blc

import (
	"errors"
	"fmt"
)

// ErrNotAList is returned by pair-list operations when a term does not have
// the Church pair/list shape they require.
var ErrNotAList = errors.New("blc: not a list")

// Tru is the Church boolean λλ.2.
var Tru Term = Abs{Body: Abs{Body: Var(2)}}

// Fls is the Church boolean λλ.1.
var Fls Term = Abs{Body: Abs{Body: Var(1)}}

// Nil is the empty Church list, identical to Fls.
var Nil = Fls

// Cons builds the pair λ.(1 h t), the Church-list node holding h as its
// head and t as its tail. h and t are shifted by one binder since they now
// sit under the freshly introduced Abs.
func Cons(h, t Term) Term {
	return Abs{Body: App{Func: App{Func: Var(1), Arg: shift(1, 0, h)}, Arg: shift(1, 0, t)}}
}

// IsPair reports whether t has the structural shape of a pair: Abs whose
// body is App(App(Var(1), _), _).
func IsPair(t Term) bool {
	abs, ok := t.(Abs)
	if !ok {
		return false
	}
	outer, ok := abs.Body.(App)
	if !ok {
		return false
	}
	inner, ok := outer.Func.(App)
	if !ok {
		return false
	}
	v, ok := inner.Func.(Var)
	return ok && v == 1
}

// IsList reports whether t is Fls or a pair whose tail is itself a list.
func IsList(t Term) bool {
	if termEqual(t, Fls) {
		return true
	}
	_, tail, err := Uncons(t)
	if err != nil {
		return false
	}
	return IsList(tail)
}

// Uncons splits a pair into its head and tail, returning ErrNotAList if t is
// not a pair.
func Uncons(t Term) (Term, Term, error) {
	if !IsPair(t) {
		return nil, nil, fmt.Errorf("uncons: %w", ErrNotAList)
	}
	abs := t.(Abs)
	outer := abs.Body.(App)
	inner := outer.Func.(App)
	// Cons shifted h and t up by one binder; undo that to hand back
	// subterms indexed as if they sat outside the pair.
	return shift(-1, 0, inner.Arg), shift(-1, 0, outer.Arg), nil
}

// Head returns the head of a pair, ErrNotAList otherwise.
func Head(t Term) (Term, error) {
	h, _, err := Uncons(t)
	return h, err
}

// Tail returns the tail of a pair, ErrNotAList otherwise.
func Tail(t Term) (Term, error) {
	_, tl, err := Uncons(t)
	return tl, err
}

// Last walks tail pointers until a non-pair is reached, matching a list iff
// that final value is Fls.
func Last(t Term) Term {
	cur := t
	for {
		_, tail, err := Uncons(cur)
		if err != nil {
			return cur
		}
		cur = tail
	}
}

// FromTerms right-folds ts into a Church list with Cons, starting from Nil.
func FromTerms(ts []Term) Term {
	list := Nil
	for i := len(ts) - 1; i >= 0; i-- {
		list = Cons(ts[i], list)
	}
	return list
}

// ToTerms repeatedly uncons-es list until Fls is reached, collecting the
// heads in order.
func ToTerms(list Term) ([]Term, error) {
	var out []Term
	cur := list
	for !termEqual(cur, Fls) {
		h, tl, err := Uncons(cur)
		if err != nil {
			return nil, fmt.Errorf("to_terms: %w", ErrNotAList)
		}
		out = append(out, h)
		cur = tl
	}
	return out, nil
}

// termEqual is plain structural equality over the Term algebra.
func termEqual(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x == y
	case Abs:
		y, ok := b.(Abs)
		return ok && termEqual(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && termEqual(x.Func, y.Func) && termEqual(x.Arg, y.Arg)
	}
	return false
}

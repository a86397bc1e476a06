package blc

// shift adds d to every free variable in t, where a variable is free if its
// index exceeds c (the number of binders crossed so far). Used to adjust De
// Bruijn indices when a term moves across an abstraction boundary.
func shift(d, c int, t Term) Term {
	switch x := t.(type) {
	case Var:
		if int(x) > c {
			return Var(int(x) + d)
		}
		return x
	case Abs:
		return Abs{Body: shift(d, c+1, x.Body)}
	case App:
		return App{Func: shift(d, c, x.Func), Arg: shift(d, c, x.Arg)}
	}
	return t
}

// subst replaces every free occurrence of index j in t with s, where j tracks
// how many binders have been crossed since the substitution started (so it
// grows as subst descends into nested Abs).
func subst(t Term, j int, s Term) Term {
	switch x := t.(type) {
	case Var:
		if int(x) == j {
			return s
		}
		return x
	case Abs:
		return Abs{Body: subst(x.Body, j+1, shift(1, 0, s))}
	case App:
		return App{Func: subst(x.Func, j, s), Arg: subst(x.Arg, j, s)}
	}
	return t
}

// contract performs the single β-contraction (λ.body) arg -> body[1 := arg],
// the De Bruijn equivalent of named-variable capture-avoiding substitution.
func contract(body, arg Term) Term {
	return shift(-1, 0, subst(body, 1, shift(1, 0, arg)))
}

// stepBudget tracks how many β-contractions a reduction is still allowed to
// perform. A limit of 0 means unbounded.
type stepBudget struct {
	limit int
	spent int
}

func (b *stepBudget) exhausted() bool {
	return b.limit > 0 && b.spent >= b.limit
}

func (b *stepBudget) consume() bool {
	if b.exhausted() {
		return false
	}
	b.spent++
	return true
}

// whnf drives t to weak head normal form: it contracts redexes at the head
// of the application spine but never descends under an Abs or into an
// argument that isn't itself being applied.
func whnf(t Term, b *stepBudget) Term {
	for {
		app, ok := t.(App)
		if !ok {
			return t
		}
		fn := whnf(app.Func, b)
		abs, ok := fn.(Abs)
		if !ok {
			return App{Func: fn, Arg: app.Arg}
		}
		if !b.consume() {
			return App{Func: fn, Arg: app.Arg}
		}
		t = contract(abs.Body, app.Arg)
	}
}

// reduceNormal fully normalizes t: leftmost-outermost reduction, including
// under binders, running to completion (or step-budget exhaustion) in one
// call rather than one step at a time.
func reduceNormal(t Term, b *stepBudget) Term {
	head := whnf(t, b)
	switch x := head.(type) {
	case Var:
		return x
	case Abs:
		return Abs{Body: reduceNormal(x.Body, b)}
	case App:
		return App{
			Func: reduceNormal(x.Func, b),
			Arg:  reduceNormal(x.Arg, b),
		}
	}
	return head
}

// Reduce normalizes t to its full normal form using normal-order
// (leftmost-outermost) β-reduction, performing at most limit contractions
// (0 means unbounded). It returns the resulting term along with the number
// of contractions actually performed.
func Reduce(t Term, limit int) (Term, int) {
	b := &stepBudget{limit: limit}
	result := reduceNormal(t, b)
	return result, b.spent
}

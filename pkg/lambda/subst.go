package lambda

// Subst substitutes repl for every free occurrence of name in t,
// alpha-renaming binders where a free variable of repl would
// otherwise be captured. It never mutates its arguments and uses no
// state beyond the call, so concurrent substitutions over distinct
// terms never interfere.
func Subst(t Term, name string, repl Term) Term {
	return subst(t, name, repl, FreeVars(repl))
}

func subst(t Term, name string, repl Term, replFree VarSet) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return repl
		}
		return t
	case App:
		return App{
			Fn:  subst(t.Fn, name, repl, replFree),
			Arg: subst(t.Arg, name, repl, replFree),
		}
	case Abs:
		if t.Param == name {
			// name is shadowed; nothing free below here.
			return t
		}
		if !replFree.Has(t.Param) {
			return Abs{Param: t.Param, Body: subst(t.Body, name, repl, replFree)}
		}
		// t.Param occurs free in repl: rename the binder before
		// substituting. The fresh name must avoid every name of the
		// body (a clash with an inner binder would capture the
		// renamed occurrences), the free variables of repl, and name
		// itself.
		avoid := make(VarSet)
		for v := range FreeVars(t.Body) {
			avoid.add(v)
		}
		for v := range BoundVars(t.Body) {
			avoid.add(v)
		}
		for v := range replFree {
			avoid.add(v)
		}
		avoid.add(name)
		fresh := freshName(t.Param, avoid)
		body := renameFree(t.Body, t.Param, fresh)
		return Abs{Param: fresh, Body: subst(body, name, repl, replFree)}
	}
	panic("unreachable")
}

// renameFree replaces free occurrences of old in t with the variable
// next. It is a pure renaming: bound occurrences of old (under an
// inner λold) are left alone.
func renameFree(t Term, old, next string) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == old {
			return Var{Name: next}
		}
		return t
	case Abs:
		if t.Param == old {
			return t
		}
		return Abs{Param: t.Param, Body: renameFree(t.Body, old, next)}
	case App:
		return App{Fn: renameFree(t.Fn, old, next), Arg: renameFree(t.Arg, old, next)}
	}
	panic("unreachable")
}

// freshName derives a name from base that is not in avoid, by
// appending the shortest unused letter suffix ("a".."z", "aa", ...).
// Suffixes are letters so the result is still a valid identifier and
// rendered terms re-parse. Deterministic: same inputs, same name.
func freshName(base string, avoid VarSet) string {
	for i := 0; ; i++ {
		cand := base + letterSuffix(i)
		if !avoid.Has(cand) {
			return cand
		}
	}
}

// letterSuffix maps 0,1,... to "a".."z","aa","ab",... (bijective
// base 26).
func letterSuffix(i int) string {
	var buf []byte
	for {
		buf = append([]byte{byte('a' + i%26)}, buf...)
		i = i/26 - 1
		if i < 0 {
			return string(buf)
		}
	}
}

package lambda

import "golang.org/x/exp/slices"

// AlphaEq reports whether a and b are identical up to a consistent
// renaming of bound variables. Bound occurrences are compared by
// binder depth (a de Bruijn-style encoding built on the fly), free
// occurrences by name.
func AlphaEq(a, b Term) bool {
	return alphaEq(a, b, nil, nil)
}

// envA and envB hold the binder names in scope, innermost first, so
// slices.Index yields the de Bruijn index of a bound occurrence.
func alphaEq(a, b Term, envA, envB []string) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		if !ok {
			return false
		}
		ia := slices.Index(envA, a.Name)
		ib := slices.Index(envB, b.Name)
		if ia < 0 && ib < 0 {
			return a.Name == b.Name
		}
		return ia == ib
	case Abs:
		b, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaEq(a.Body, b.Body, prepend(a.Param, envA), prepend(b.Param, envB))
	case App:
		b, ok := b.(App)
		if !ok {
			return false
		}
		return alphaEq(a.Fn, b.Fn, envA, envB) && alphaEq(a.Arg, b.Arg, envA, envB)
	}
	panic("unreachable")
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}

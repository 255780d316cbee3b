package lambda

import "fmt"

// Named combinators, matched by alpha equivalence in order. Order is
// semantic: λx.λy.y is both False and the Church numeral 0, and the
// named entry wins.
var combinators = []struct {
	Name string
	Term Term
}{
	{"Identity", MustParse(`λx.x`)},
	{"K", MustParse(`λx.λy.x`)},
	{"False", MustParse(`λx.λy.y`)},
	{"S", MustParse(`λx.λy.λz.(x z) (y z)`)},
	{"Y", MustParse(`λf.(λx.f (x x)) (λx.f (x x))`)},
	{"B", MustParse(`λf.λg.λx.f (g x)`)},
	{"C", MustParse(`λf.λx.λy.f y x`)},
	{"W", MustParse(`λf.λx.f x x`)},
}

// Identify matches t against the table of named closed terms, then
// against the Church numerals. The match is up to alpha equivalence;
// a numeral is recognized structurally by counting applications of
// the outer binder, never by string comparison. The second result is
// false when t matches nothing.
func Identify(t Term) (string, bool) {
	for _, c := range combinators {
		if AlphaEq(t, c.Term) {
			return c.Name, true
		}
	}
	if n, ok := churchValue(t); ok {
		return fmt.Sprintf("Church numeral %d", n), true
	}
	return "", false
}

// churchValue recognizes λf.λx.f (f (… (f x)…)) and returns the
// application count.
func churchValue(t Term) (int, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok {
		return 0, false
	}
	f, x := outer.Param, inner.Param
	n := 0
	cur := inner.Body
	for {
		if v, ok := cur.(Var); ok && v.Name == x {
			return n, true
		}
		app, ok := cur.(App)
		if !ok {
			return 0, false
		}
		// Applications of f only count while f is not shadowed by
		// the inner binder.
		fn, ok := app.Fn.(Var)
		if !ok || fn.Name != f || f == x {
			return 0, false
		}
		n++
		cur = app.Arg
	}
}

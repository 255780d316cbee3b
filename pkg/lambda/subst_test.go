package lambda

import (
	"reflect"
	"testing"
)

func TestFreeAndBoundVars(t *testing.T) {
	cases := []struct {
		input string
		free  []string
		bound []string
	}{
		{`x`, []string{"x"}, nil},
		{`λx.x`, nil, []string{"x"}},
		{`λx.y`, []string{"y"}, []string{"x"}},
		{`(λx.x y) x`, []string{"x", "y"}, []string{"x"}},
		{`λx.λy.f (x y)`, []string{"f"}, []string{"x", "y"}},
		// The inner binder shadows; the occurrence is bound.
		{`λx.λx.x`, nil, []string{"x"}},
	}
	for _, c := range cases {
		term := MustParse(c.input)
		if got := FreeVars(term).Names(); !sameNames(got, c.free) {
			t.Errorf("FreeVars(%s) = %v, want %v", c.input, got, c.free)
		}
		if got := BoundVars(term).Names(); !sameNames(got, c.bound) {
			t.Errorf("BoundVars(%s) = %v, want %v", c.input, got, c.bound)
		}
	}
}

func sameNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSubstVariable(t *testing.T) {
	repl := MustParse(`a b`)
	if got := Subst(Var{"x"}, "x", repl); !Equal(got, repl) {
		t.Errorf("got %s", got)
	}
	if got := Subst(Var{"y"}, "x", repl); !Equal(got, Var{"y"}) {
		t.Errorf("got %s", got)
	}
}

func TestSubstShadowed(t *testing.T) {
	term := MustParse(`λx.x`)
	if got := Subst(term, "x", Var{"y"}); !Equal(got, term) {
		t.Errorf("substitution reached a shadowed binder: %s", got)
	}
}

// Substituting a term with no free y under λy needs no renaming.
func TestSubstNoCapture(t *testing.T) {
	term := MustParse(`λy.x`)
	got := Subst(term, "x", MustParse(`a b`))
	if want := MustParse(`λy.a b`); !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

// Substituting a term with a free y under λy must rename the binder:
// the free y of the replacement stays free in the result.
func TestSubstCaptureAvoided(t *testing.T) {
	term := MustParse(`λy.x`)
	got := Subst(term, "x", Var{"y"})

	if !AlphaEq(got, MustParse(`λz.y`)) {
		t.Errorf("got %s, want a term alpha-equivalent to λz.y", got)
	}
	if free := FreeVars(got).Names(); !sameNames(free, []string{"y"}) {
		t.Errorf("free variables of %s = %v, want [y]", got, free)
	}

	abs, ok := got.(Abs)
	if !ok || abs.Param == "y" {
		t.Fatalf("binder not renamed: %s", got)
	}
}

// The fresh name must dodge every name already in play, including
// occurrences of the first candidate.
func TestSubstFreshNameAvoidsClashes(t *testing.T) {
	term := MustParse(`λy.x ya`)
	got := Subst(term, "x", Var{"y"})
	if want := MustParse(`λyb.y ya`); !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

// Renaming must not hand occurrences to an inner binder that happens
// to carry the fresh candidate's name.
func TestSubstFreshNameAvoidsInnerBinder(t *testing.T) {
	term := MustParse(`λy.λya.y x`)
	got := Subst(term, "x", Var{"y"})
	if want := MustParse(`λyb.λya.yb y`); !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
	if free := FreeVars(got).Names(); !sameNames(free, []string{"y"}) {
		t.Errorf("free variables of %s = %v, want [y]", got, free)
	}
}

func TestSubstDeterministic(t *testing.T) {
	term := MustParse(`λy.x y`)
	a := Subst(term, "x", MustParse(`y y`))
	b := Subst(term, "x", MustParse(`y y`))
	if !Equal(a, b) {
		t.Errorf("two identical substitutions differ: %s vs %s", a, b)
	}
}

func TestSubstDoesNotMutate(t *testing.T) {
	term := MustParse(`λy.x y`)
	before := term.String()
	_ = Subst(term, "x", MustParse(`y z`))
	if term.String() != before {
		t.Errorf("input term mutated: %s", term)
	}
}

func TestRenameFreeLeavesBoundAlone(t *testing.T) {
	term := MustParse(`x (λx.x)`)
	got := renameFree(term, "x", "w")
	if want := MustParse(`w (λx.x)`); !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLetterSuffix(t *testing.T) {
	cases := map[int]string{0: "a", 1: "b", 25: "z", 26: "aa", 27: "ab", 51: "az", 52: "ba"}
	for i, want := range cases {
		if got := letterSuffix(i); got != want {
			t.Errorf("letterSuffix(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestFreshNameIsParseable(t *testing.T) {
	avoid := VarSet{"x": {}, "xa": {}, "xb": {}}
	name := freshName("x", avoid)
	if name != "xc" {
		t.Errorf("freshName = %q, want %q", name, "xc")
	}
	if got := MustParse(name); !reflect.DeepEqual(got, Var{name}) {
		t.Errorf("fresh name %q does not parse back to itself", name)
	}
}

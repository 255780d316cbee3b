package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// VarSet is a set of variable names.
type VarSet map[string]struct{}

func (s VarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s VarSet) add(name string) {
	s[name] = struct{}{}
}

// Names returns the set's members sorted, for deterministic traces.
func (s VarSet) Names() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}

// FreeVars computes the free variables of t: a Var is free in itself,
// an Abs removes its parameter from its body's free variables, an App
// unions its children.
func FreeVars(t Term) VarSet {
	fv := make(VarSet)
	collectFree(t, make(VarSet), fv)
	return fv
}

func collectFree(t Term, bound, fv VarSet) {
	switch t := t.(type) {
	case Var:
		if !bound.Has(t.Name) {
			fv.add(t.Name)
		}
	case Abs:
		if bound.Has(t.Param) {
			collectFree(t.Body, bound, fv)
			return
		}
		bound.add(t.Param)
		collectFree(t.Body, bound, fv)
		delete(bound, t.Param)
	case App:
		collectFree(t.Fn, bound, fv)
		collectFree(t.Arg, bound, fv)
	default:
		panic("unreachable")
	}
}

// BoundVars computes the variables bound by some abstraction in t.
func BoundVars(t Term) VarSet {
	bv := make(VarSet)
	collectBound(t, bv)
	return bv
}

func collectBound(t Term, bv VarSet) {
	switch t := t.(type) {
	case Var:
	case Abs:
		bv.add(t.Param)
		collectBound(t.Body, bv)
	case App:
		collectBound(t.Fn, bv)
		collectBound(t.Arg, bv)
	default:
		panic("unreachable")
	}
}

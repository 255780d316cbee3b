// Package beta reduces lambda terms. A Reducer repeatedly locates a
// redex under a chosen strategy, rewrites it by capture-avoiding
// substitution, and records every intermediate term in a trace.
package beta

import (
	"fmt"

	"github.com/lambdaviz/engine/pkg/lambda"
)

// Strategy selects which redex a reduction step rewrites. The values
// are the wire names used in results.
type Strategy string

const (
	NormalOrder      Strategy = "normal_order"
	ApplicativeOrder Strategy = "applicative_order"
	CallByName       Strategy = "call_by_name"
	CallByValue      Strategy = "call_by_value"
)

// ParseStrategy maps a wire name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case NormalOrder, ApplicativeOrder, CallByName, CallByValue:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown reduction strategy %q", s)
}

// stepFunc performs one beta step, or reports false when the term has
// no redex under its strategy. The four strategies differ only here;
// substitution is shared.
type stepFunc func(lambda.Term) (lambda.Term, bool)

func (s Strategy) step() stepFunc {
	switch s {
	case NormalOrder:
		return stepNormal
	case ApplicativeOrder:
		return stepApplicative
	case CallByName:
		return stepCallByName
	case CallByValue:
		return stepCallByValue
	}
	panic("unreachable")
}

// IsValue reports whether t is a value for the weak strategies: a
// variable or an abstraction.
func IsValue(t lambda.Term) bool {
	switch t.(type) {
	case lambda.Var, lambda.Abs:
		return true
	}
	return false
}

func contract(fn lambda.Abs, arg lambda.Term) lambda.Term {
	return lambda.Subst(fn.Body, fn.Param, arg)
}

// stepNormal rewrites the leftmost-outermost redex: an application is
// checked before its subterms, the function side before the argument,
// and abstraction bodies are reduced.
func stepNormal(t lambda.Term) (lambda.Term, bool) {
	switch t := t.(type) {
	case lambda.Var:
		return t, false
	case lambda.Abs:
		if body, ok := stepNormal(t.Body); ok {
			return lambda.Abs{Param: t.Param, Body: body}, true
		}
		return t, false
	case lambda.App:
		if fn, ok := t.Fn.(lambda.Abs); ok {
			return contract(fn, t.Arg), true
		}
		if fn, ok := stepNormal(t.Fn); ok {
			return lambda.App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := stepNormal(t.Arg); ok {
			return lambda.App{Fn: t.Fn, Arg: arg}, true
		}
		return t, false
	}
	panic("unreachable")
}

// stepApplicative rewrites the leftmost-innermost redex: both
// subterms of an application are exhausted before the application
// itself fires.
func stepApplicative(t lambda.Term) (lambda.Term, bool) {
	switch t := t.(type) {
	case lambda.Var:
		return t, false
	case lambda.Abs:
		if body, ok := stepApplicative(t.Body); ok {
			return lambda.Abs{Param: t.Param, Body: body}, true
		}
		return t, false
	case lambda.App:
		if fn, ok := stepApplicative(t.Fn); ok {
			return lambda.App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := stepApplicative(t.Arg); ok {
			return lambda.App{Fn: t.Fn, Arg: arg}, true
		}
		if fn, ok := t.Fn.(lambda.Abs); ok {
			return contract(fn, t.Arg), true
		}
		return t, false
	}
	panic("unreachable")
}

// stepCallByName reduces only the head spine: a redex at the head
// fires with its argument untouched, and no reduction happens inside
// abstraction bodies.
func stepCallByName(t lambda.Term) (lambda.Term, bool) {
	app, ok := t.(lambda.App)
	if !ok {
		return t, false
	}
	if fn, ok := app.Fn.(lambda.Abs); ok {
		return contract(fn, app.Arg), true
	}
	if fn, ok := stepCallByName(app.Fn); ok {
		return lambda.App{Fn: fn, Arg: app.Arg}, true
	}
	return t, false
}

// stepCallByValue is weak like call-by-name but evaluates the
// function side and then the argument to a value before the redex
// fires.
func stepCallByValue(t lambda.Term) (lambda.Term, bool) {
	app, ok := t.(lambda.App)
	if !ok {
		return t, false
	}
	if fn, ok := stepCallByValue(app.Fn); ok {
		return lambda.App{Fn: fn, Arg: app.Arg}, true
	}
	if arg, ok := stepCallByValue(app.Arg); ok {
		return lambda.App{Fn: app.Fn, Arg: arg}, true
	}
	if fn, ok := app.Fn.(lambda.Abs); ok && IsValue(app.Arg) {
		return contract(fn, app.Arg), true
	}
	return t, false
}

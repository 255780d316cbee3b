// Package lambda implements the untyped lambda calculus: terms, a
// tokenizer and parser for the concrete syntax, free/bound variable
// analysis, capture-avoiding substitution, alpha equivalence, and a
// recognizer for well-known combinators.
//
// Terms are immutable: no function in this package modifies a Term it
// receives, and every rewrite allocates fresh nodes. This makes terms
// safe to retain in traces and to share across goroutines.
package lambda

// Term is a lambda calculus term: a Var, an Abs, or an App. The set
// of implementations is closed; consumers switch on all three and
// treat anything else as unreachable.
type Term interface {
	// String renders the term in canonical concrete syntax. The
	// rendering is a left inverse of Parse: parsing it yields a
	// structurally identical term.
	String() string

	term()
}

// Var is a variable occurrence.
type Var struct {
	Name string
}

// Abs is an abstraction λParam.Body, binding Param within Body.
type Abs struct {
	Param string
	Body  Term
}

// App is an application of Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) term() {}
func (Abs) term() {}
func (App) term() {}

func (v Var) String() string {
	return v.Name
}

func (a Abs) String() string {
	return "λ" + a.Param + "." + a.Body.String()
}

// Application renders with minimal parentheses: the function is
// wrapped when it is an abstraction (whose body would otherwise
// swallow the argument), the argument when it is anything but a bare
// variable (application is left-associative, abstractions extend
// right).
func (a App) String() string {
	fn := a.Fn.String()
	if _, ok := a.Fn.(Abs); ok {
		fn = "(" + fn + ")"
	}
	arg := a.Arg.String()
	switch a.Arg.(type) {
	case App, Abs:
		arg = "(" + arg + ")"
	}
	return fn + " " + arg
}

// Size counts the nodes of t. Used by the reducer's divergence guard.
func Size(t Term) int {
	switch t := t.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fn) + Size(t.Arg)
	}
	panic("unreachable")
}

// Equal reports structural equality, bound names included. For
// equality up to renaming of bound variables use AlphaEq.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Name == b.Name
	case Abs:
		b, ok := b.(Abs)
		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	}
	panic("unreachable")
}

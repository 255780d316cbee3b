package beta

import (
	"context"

	"github.com/lambdaviz/engine/pkg/lambda"
)

const (
	// DefaultMaxSteps bounds a reduction that never asks for a budget.
	DefaultMaxSteps = 1000
	// DefaultMaxTermSize is the soft divergence guard: a step whose
	// result grows past this many nodes stops the reduction as if the
	// step budget had run out.
	DefaultMaxTermSize = 10000
)

// Trace entry actions.
const (
	ActionInitial = "initial"
	ActionBeta    = "beta"
)

// Options configure one reduction.
type Options struct {
	Strategy Strategy // zero value means NormalOrder
	MaxSteps int      // zero value means DefaultMaxSteps
	// MaxTermSize is the divergence guard in term nodes. Zero means
	// DefaultMaxTermSize; negative disables the guard.
	MaxTermSize int
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = NormalOrder
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.MaxTermSize == 0 {
		o.MaxTermSize = DefaultMaxTermSize
	}
	return o
}

// Step is one trace entry: the term after a rewrite, with its
// variable analysis. Entry 0 records the input term unchanged.
type Step struct {
	Step           int      `json:"step"`
	Term           string   `json:"term"`
	Action         string   `json:"action"`
	FreeVariables  []string `json:"free_variables"`
	BoundVariables []string `json:"bound_variables"`
}

// Result is the replayable outcome of a reduction.
type Result struct {
	OriginalTerm    string   `json:"original_term"`
	FinalTerm       string   `json:"final_term"`
	IsNormalForm    bool     `json:"is_normal_form"`
	StepsTaken      int      `json:"steps_taken"`
	MaxStepsReached bool     `json:"max_steps_reached"`
	Strategy        Strategy `json:"strategy"`
	// Combinator names the final term when it matches a known closed
	// term; OriginalCombinator does the same for the input. Either
	// may match independently of the other.
	Combinator         *string `json:"combinator"`
	OriginalCombinator *string `json:"original_combinator"`
	ReductionSteps     []Step  `json:"reduction_steps"`

	// Final is the final term itself, for callers that resume with a
	// larger budget.
	Final lambda.Term `json:"-"`
}

// Reducer steps a single term under a fixed strategy. It holds no
// state shared with any other Reducer, so independent reductions may
// run concurrently. Callers that need real-time limits drive Step
// themselves and stop whenever they choose.
type Reducer struct {
	strategy Strategy
	step     stepFunc
	current  lambda.Term
	steps    int
}

// New returns a Reducer positioned at t with zero steps taken.
func New(t lambda.Term, strategy Strategy) *Reducer {
	return &Reducer{
		strategy: strategy,
		step:     strategy.step(),
		current:  t,
	}
}

// Step performs one beta reduction. It reports false, leaving the
// reducer unchanged, when the current term has no redex under the
// strategy.
func (r *Reducer) Step() (lambda.Term, bool) {
	next, ok := r.step(r.current)
	if !ok {
		return r.current, false
	}
	r.current = next
	r.steps++
	return next, true
}

// Current returns the term the reducer is positioned at.
func (r *Reducer) Current() lambda.Term { return r.current }

// Steps returns the number of reductions performed so far.
func (r *Reducer) Steps() int { return r.steps }

// Reduce runs t to normal form or to the step budget and returns the
// full trace. It is a pure function of its arguments: identical
// inputs yield identical results.
func Reduce(t lambda.Term, opts Options) Result {
	return ReduceContext(context.Background(), t, opts)
}

// ReduceContext is Reduce with cooperative cancellation: ctx is
// checked between steps, and on cancellation the accumulated trace is
// returned as if the budget had been exhausted. Reduction never
// returns an error.
func ReduceContext(ctx context.Context, t lambda.Term, opts Options) Result {
	opts = opts.withDefaults()

	r := New(t, opts.Strategy)
	trace := []Step{traceEntry(0, ActionInitial, t)}
	truncated := false

	for r.Steps() < opts.MaxSteps {
		if ctx.Err() != nil {
			truncated = true
			break
		}
		next, ok := r.Step()
		if !ok {
			break
		}
		trace = append(trace, traceEntry(r.Steps(), ActionBeta, next))
		if opts.MaxTermSize > 0 && lambda.Size(next) > opts.MaxTermSize {
			truncated = true
			break
		}
	}

	final := r.Current()
	_, reducible := opts.Strategy.step()(final)
	normal := !reducible

	res := Result{
		OriginalTerm:    t.String(),
		FinalTerm:       final.String(),
		IsNormalForm:    normal,
		StepsTaken:      r.Steps(),
		MaxStepsReached: !normal && (truncated || r.Steps() >= opts.MaxSteps),
		Strategy:        opts.Strategy,
		ReductionSteps:  trace,
		Final:           final,
	}
	if name, ok := lambda.Identify(final); ok {
		res.Combinator = &name
	}
	if name, ok := lambda.Identify(t); ok {
		res.OriginalCombinator = &name
	}
	return res
}

func traceEntry(n int, action string, t lambda.Term) Step {
	return Step{
		Step:           n,
		Term:           t.String(),
		Action:         action,
		FreeVariables:  lambda.FreeVars(t).Names(),
		BoundVariables: lambda.BoundVars(t).Names(),
	}
}

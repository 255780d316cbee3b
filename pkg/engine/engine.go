// Package engine is the embedding surface of the evaluator: a pure
// function from an expression string and a configuration to a
// structured, serializable result. It touches no network, storage, or
// shared state; callers may invoke it from as many goroutines as they
// like.
package engine

import (
	"context"

	"github.com/lambdaviz/engine/pkg/beta"
	"github.com/lambdaviz/engine/pkg/lambda"
)

// Response is the envelope returned for one expression. On a parse
// failure Success is false, Error carries the positioned message, and
// BetaReduction is null; reduction itself never fails.
type Response struct {
	Success       bool         `json:"success"`
	Expression    string       `json:"expression"`
	ParsedTerm    string       `json:"parsed_term,omitempty"`
	BetaReduction *beta.Result `json:"beta_reduction"`
	Error         *string      `json:"error"`
}

// Evaluate parses expression and reduces it under opts.
func Evaluate(expression string, opts beta.Options) Response {
	return EvaluateContext(context.Background(), expression, opts)
}

// EvaluateContext is Evaluate with cooperative cancellation of the
// reduction loop.
func EvaluateContext(ctx context.Context, expression string, opts beta.Options) Response {
	term, err := lambda.Parse(expression)
	if err != nil {
		msg := err.Error()
		return Response{
			Expression: expression,
			Error:      &msg,
		}
	}
	result := beta.ReduceContext(ctx, term, opts)
	return Response{
		Success:       true,
		Expression:    expression,
		ParsedTerm:    term.String(),
		BetaReduction: &result,
	}
}

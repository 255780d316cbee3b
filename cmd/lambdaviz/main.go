// Command lambdaviz evaluates lambda calculus expressions.
//
// With an expression argument it reduces once and prints the trace
// (or, with -json, the full structured result). With no argument it
// starts an interactive REPL.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/lambdaviz/engine/pkg/beta"
	"github.com/lambdaviz/engine/pkg/engine"
)

const historyFile = ".lambdaviz_history"

var (
	strategyFlag = flag.String("strategy", string(beta.NormalOrder),
		"reduction strategy: normal_order, applicative_order, call_by_name, call_by_value")
	maxSteps = flag.Int("max-steps", beta.DefaultMaxSteps, "reduction step budget")
	jsonOut  = flag.Bool("json", false, "print the structured result as JSON")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: lambdaviz [flags] ['expression']\n\n")
	fmt.Fprint(os.Stderr, "lambdaviz parses a lambda calculus expression and beta-reduces it,\n")
	fmt.Fprint(os.Stderr, "printing every rewrite step. Without an expression it starts a REPL.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	strategy, err := beta.ParseStrategy(*strategyFlag)
	if err != nil {
		errExit(err)
	}
	if *maxSteps <= 0 {
		errExit(fmt.Errorf("-max-steps must be positive, got %d", *maxSteps))
	}
	opts := beta.Options{Strategy: strategy, MaxSteps: *maxSteps}

	switch flag.NArg() {
	case 0:
		repl(opts)
	case 1:
		if !evalOnce(flag.Arg(0), opts) {
			os.Exit(1)
		}
	default:
		usage()
	}
}

func evalOnce(expression string, opts beta.Options) bool {
	resp := engine.Evaluate(expression, opts)
	if *jsonOut {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			errExit(err)
		}
		fmt.Println(string(out))
		return resp.Success
	}
	printResponse(resp)
	return resp.Success
}

func printResponse(resp engine.Response) {
	if !resp.Success {
		fmt.Fprintln(os.Stderr, *resp.Error)
		return
	}
	r := resp.BetaReduction
	for _, s := range r.ReductionSteps {
		fmt.Printf("%4d  %s\n", s.Step, s.Term)
	}
	if name := r.OriginalCombinator; name != nil {
		fmt.Printf("input: %s\n", *name)
	}
	switch {
	case r.IsNormalForm:
		fmt.Printf("normal form in %d step(s): %s\n", r.StepsTaken, r.FinalTerm)
	case r.MaxStepsReached:
		fmt.Printf("stopped after %d step(s) (budget reached): %s\n", r.StepsTaken, r.FinalTerm)
	}
	if name := r.Combinator; name != nil {
		fmt.Printf("result: %s\n", *name)
	}
}

func repl(opts beta.Options) {
	fmt.Printf("lambdaviz REPL — strategy %s, budget %d steps\n", opts.Strategy, opts.MaxSteps)
	fmt.Println(`Type an expression, or :strategy, :steps, :quit. Ctrl+D exits.`)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("λ> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			errExit(err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if replCommand(line, &opts) {
				return
			}
			continue
		}

		ln.AppendHistory(line)
		printResponse(engine.Evaluate(line, opts))
	}
}

// replCommand handles a ":" command and reports whether the REPL
// should exit.
func replCommand(line string, opts *beta.Options) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":strategy":
		if arg == "" {
			fmt.Println(opts.Strategy)
			return false
		}
		s, err := beta.ParseStrategy(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		opts.Strategy = s
	case ":steps":
		if arg == "" {
			fmt.Println(opts.MaxSteps)
			return false
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "step budget must be a positive integer, got %q\n", arg)
			return false
		}
		opts.MaxSteps = n
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; commands are :strategy, :steps, :quit\n", cmd)
	}
	return false
}

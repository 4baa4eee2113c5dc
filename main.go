// Package main implements the slisp command-line interface.
//
// slisp is a small S-expression interpreter for arithmetic, logic,
// trigonometry, and a handful of 2-D graphics constructors. The CLI
// supports three modes of operation:
//   - Expression mode (-e "program")
//   - File mode (a single positional filename)
//   - Interactive REPL mode (no arguments)
//
// Examples:
//
//	slisp -e "(+ 1 2)"
//	slisp program.slisp
//	slisp
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/conneroisu/slisp/internal/ast"
	"github.com/conneroisu/slisp/pkg/eval"
	"github.com/conneroisu/slisp/pkg/reader"
)

func main() {
	expression := flag.String("e", "", "evaluate a single program")
	flag.Parse()

	switch {
	case *expression != "":
		runOne(*expression)
	case flag.NArg() > 0:
		runFile(flag.Arg(0))
	default:
		runREPL()
	}
}

// runOne evaluates a single program against a fresh session and prints
// the formatted result, exiting non-zero on parse or evaluation failure
// (§6 CLI mode 1).
func runOne(program string) {
	ev := eval.New()

	result, err := evalProgram(ev, program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slisp: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(format(result))
}

// runFile evaluates a file's contents as one program (§6 CLI mode 2).
func runFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slisp: %v\n", err)
		os.Exit(1)
	}

	runOne(string(content))
}

// runREPL runs the interactive loop: one program per line, prompted
// with "slisp> ". "quit" or "exit" ends the session; empty lines are
// ignored; errors print to the diagnostic channel and do not end the
// loop — the environment and graphics log persist across lines for the
// lifetime of one session (§5, §6 CLI mode 3, §7 propagation policy).
func runREPL() {
	ev := eval.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("slisp> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		result, err := evalProgram(ev, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "slisp: %v\n", err)

			continue
		}

		fmt.Println(format(result))
	}
}

// evalProgram runs one program (tokenize, read, evaluate) against ev.
func evalProgram(ev *eval.Evaluator, program string) (*ast.Expr, error) {
	parsed, err := reader.Read(program)
	if err != nil {
		return nil, err
	}

	return ev.Eval(parsed)
}

// format renders a top-level evaluation result per §6: the value's own
// surface formatting, surrounded by a single outer pair of parentheses
// (e.g. "(3)").
func format(e *ast.Expr) string {
	return "(" + e.Head.String() + ")"
}

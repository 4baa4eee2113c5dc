package eval

import (
	"fmt"
	"math"

	"github.com/conneroisu/slisp/internal/ast"
)

// installBuiltins populates env with the complete standard table
// (§4.4): arithmetic, comparison, logic, trig, and the Point/Line/Arc
// constructors. Arity is checked once, generically, by registerProc;
// each implementation function only has to handle its own argument
// and type validation.
func installBuiltins(env *ast.Environment) {
	registerProc(env, "+", minArity(1), builtinAdd)
	registerProc(env, "-", arityIn(1, 2), builtinSub)
	registerProc(env, "*", minArity(1), builtinMul)
	registerProc(env, "/", exactArity(2), builtinDiv)

	registerProc(env, "<", exactArity(2), comparison(func(a, b float64) bool { return a < b }))
	registerProc(env, ">", exactArity(2), comparison(func(a, b float64) bool { return a > b }))
	registerProc(env, "<=", exactArity(2), comparison(func(a, b float64) bool { return a <= b }))
	registerProc(env, ">=", exactArity(2), comparison(func(a, b float64) bool { return a >= b }))
	registerProc(env, "=", exactArity(2), comparison(func(a, b float64) bool { return a == b }))

	registerProc(env, "and", minArity(1), builtinAnd)
	registerProc(env, "or", minArity(1), builtinOr)
	registerProc(env, "not", exactArity(1), builtinNot)

	registerProc(env, "log10", exactArity(1), builtinLog10)
	registerProc(env, "pow", exactArity(2), builtinPow)
	registerProc(env, "sin", exactArity(1), builtinSin)
	registerProc(env, "cos", exactArity(1), builtinCos)
	registerProc(env, "arctan", exactArity(2), builtinArctan)

	registerProc(env, "point", exactArity(2), builtinPoint)
	registerProc(env, "line", exactArity(2), builtinLine)
	registerProc(env, "arc", exactArity(3), builtinArc)
}

// arityCheck reports whether n arguments satisfy a procedure's arity
// rule; on failure it returns a message describing what was expected.
type arityCheck func(n int) (ok bool, want string)

func exactArity(k int) arityCheck {
	return func(n int) (bool, string) {
		return n == k, fmt.Sprintf("exactly %d argument(s)", k)
	}
}

func minArity(k int) arityCheck {
	return func(n int) (bool, string) {
		return n >= k, fmt.Sprintf("at least %d argument(s)", k)
	}
}

func arityIn(lo, hi int) arityCheck {
	return func(n int) (bool, string) {
		return n >= lo && n <= hi, fmt.Sprintf("between %d and %d argument(s)", lo, hi)
	}
}

// registerProc wraps fn with a generic arity check and installs it
// under name, mirroring the teacher's registerBuiltin wrapper
// (conneroisu-gix/pkg/eval/builtins.go) adapted to this language's
// variable-arity table.
func registerProc(env *ast.Environment, name string, check arityCheck, fn ast.Proc) {
	wrapped := func(args []ast.Atom) (*ast.Expr, error) {
		if ok, want := check(len(args)); !ok {
			return nil, fmt.Errorf("%s: expected %s, got %d", name, want, len(args))
		}

		return fn(args)
	}
	env.AddProc(name, wrapped)
}

// numbers validates that every arg is a Number, returning the
// unwrapped float64 values in order.
func numbers(name string, args []ast.Atom) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(ast.Number)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is not a number (got %s)", name, i+1, a.Type())
		}
		out[i] = float64(n)
	}

	return out, nil
}

func asPoint(name string, a ast.Atom) (ast.Point, error) {
	p, ok := a.(ast.Point)
	if !ok {
		return ast.Point{}, fmt.Errorf("%s: argument is not a point (got %s)", name, a.Type())
	}

	return p, nil
}

func booleans(name string, args []ast.Atom) ([]bool, error) {
	out := make([]bool, len(args))
	for i, a := range args {
		b, ok := a.(ast.Bool)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is not a boolean (got %s)", name, i+1, a.Type())
		}
		out[i] = bool(b)
	}

	return out, nil
}

// builtinAdd sums one or more numbers (§4.4).
func builtinAdd(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("+", args)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, n := range ns {
		sum += n
	}

	return ast.NewAtom(ast.Number(sum)), nil
}

// builtinSub negates a single argument or subtracts two (§4.4).
func builtinSub(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("-", args)
	if err != nil {
		return nil, err
	}

	if len(ns) == 1 {
		return ast.NewAtom(ast.Number(-ns[0])), nil
	}

	return ast.NewAtom(ast.Number(ns[0] - ns[1])), nil
}

// builtinMul multiplies one or more numbers (§4.4).
func builtinMul(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("*", args)
	if err != nil {
		return nil, err
	}

	product := 1.0
	for _, n := range ns {
		product *= n
	}

	return ast.NewAtom(ast.Number(product)), nil
}

// builtinDiv divides exactly two numbers, rejecting a zero divisor
// (§4.4).
func builtinDiv(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("/", args)
	if err != nil {
		return nil, err
	}

	if ns[1] == 0 {
		return nil, fmt.Errorf("/: division by zero")
	}

	return ast.NewAtom(ast.Number(ns[0] / ns[1])), nil
}

// comparison builds a binary numeric comparison procedure from a
// float64 predicate, shared by <, >, <=, >=, = (§4.4).
func comparison(pred func(a, b float64) bool) ast.Proc {
	return func(args []ast.Atom) (*ast.Expr, error) {
		ns, err := numbers("comparison", args)
		if err != nil {
			return nil, err
		}

		return ast.NewAtom(ast.Bool(pred(ns[0], ns[1]))), nil
	}
}

// builtinAnd implements short-circuit conjunction over one or more
// booleans (§4.4). All arguments are already-evaluated Atoms, so there
// is nothing left to short-circuit at this layer but the result still
// stops at the first false.
func builtinAnd(args []ast.Atom) (*ast.Expr, error) {
	bs, err := booleans("and", args)
	if err != nil {
		return nil, err
	}

	for _, b := range bs {
		if !b {
			return ast.NewAtom(ast.Bool(false)), nil
		}
	}

	return ast.NewAtom(ast.Bool(true)), nil
}

// builtinOr implements short-circuit disjunction over one or more
// booleans (§4.4).
func builtinOr(args []ast.Atom) (*ast.Expr, error) {
	bs, err := booleans("or", args)
	if err != nil {
		return nil, err
	}

	for _, b := range bs {
		if b {
			return ast.NewAtom(ast.Bool(true)), nil
		}
	}

	return ast.NewAtom(ast.Bool(false)), nil
}

// builtinNot negates a single boolean (§4.4).
func builtinNot(args []ast.Atom) (*ast.Expr, error) {
	bs, err := booleans("not", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Bool(!bs[0])), nil
}

// builtinLog10 computes the base-10 logarithm of a positive number
// (§4.4).
func builtinLog10(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("log10", args)
	if err != nil {
		return nil, err
	}

	if ns[0] <= 0 {
		return nil, fmt.Errorf("log10: argument must be positive, got %v", ns[0])
	}

	return ast.NewAtom(ast.Number(math.Log10(ns[0]))), nil
}

// builtinPow raises base to exponent (§4.4).
func builtinPow(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("pow", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Number(math.Pow(ns[0], ns[1]))), nil
}

// builtinSin computes the sine of a radian argument (§4.4).
func builtinSin(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("sin", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Number(math.Sin(ns[0]))), nil
}

// builtinCos computes the cosine of a radian argument (§4.4).
func builtinCos(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("cos", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Number(math.Cos(ns[0]))), nil
}

// builtinArctan computes atan2(y, x) (§4.4).
func builtinArctan(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("arctan", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Number(math.Atan2(ns[0], ns[1]))), nil
}

// builtinPoint constructs a Point from two numbers (§4.4).
func builtinPoint(args []ast.Atom) (*ast.Expr, error) {
	ns, err := numbers("point", args)
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Point{X: ns[0], Y: ns[1]}), nil
}

// builtinLine constructs a Line from two points (§4.4).
func builtinLine(args []ast.Atom) (*ast.Expr, error) {
	a, err := asPoint("line", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asPoint("line", args[1])
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Line{A: a, B: b}), nil
}

// builtinArc constructs an Arc from two points and a signed angular
// span in radians (§4.4).
func builtinArc(args []ast.Atom) (*ast.Expr, error) {
	center, err := asPoint("arc", args[0])
	if err != nil {
		return nil, err
	}
	start, err := asPoint("arc", args[1])
	if err != nil {
		return nil, err
	}
	span, err := numbers("arc", args[2:])
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(ast.Arc{Center: center, Start: start, Span: span[0]}), nil
}

package eval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/conneroisu/slisp/internal/ast"
	"github.com/conneroisu/slisp/pkg/graphics"
)

// reservedNames may never be (re)bound by define (§4.5). draw, while
// also a special form, is not in this set — the spec reserves exactly
// these three, and special forms are recognized by syntactic head
// before any environment lookup happens, so a `define` of "draw" is
// accepted: the binding is visible where draw appears as a bare symbol
// leaf (e.g. an argument), while a list headed by draw is still the
// special form.
var reservedNames = map[string]bool{
	"if":     true,
	"define": true,
	"begin":  true,
}

// Evaluator walks an AST against one Environment, accumulating a
// graphics log for the lifetime of the session (§5). It owns no other
// state; a session is exactly one Evaluator.
type Evaluator struct {
	Env *ast.Environment
	Log *graphics.Log
}

// New builds a fresh evaluation session: a newly seeded environment
// (built-in table plus the pre-bound pi) and an empty graphics log.
func New() *Evaluator {
	ev := &Evaluator{Env: ast.NewEnvironment(), Log: graphics.New()}
	ev.init()

	return ev
}

// init installs the standard built-in table and pre-binds pi. It is
// the Go analogue of the source environment's init() (§4.6): called
// once by New, and exposed as Reset for a host that wants to start a
// new session against a fresh environment without constructing a new
// Evaluator (§9 SUPPLEMENTED FEATURES).
func (ev *Evaluator) init() {
	installBuiltins(ev.Env)
	pi := ast.NewAtom(ast.Number(math.Atan2(0, -1)))
	if err := ev.Env.AddExpr("pi", pi); err != nil {
		panic("slisp: fresh environment already has pi bound: " + err.Error())
	}
}

// Reset replaces Env with a freshly seeded one and Log with an empty
// one, matching the source's re-invokable init() (§9).
func (ev *Evaluator) Reset() {
	ev.Env = ast.NewEnvironment()
	ev.Log = graphics.New()
	ev.init()
}

// Eval evaluates one top-level program. The AST must be a List
// expression; anything else — including the None sentinel produced by
// a failed parse — is rejected here rather than deeper in the
// recursion (§4.5: "Top-level entry eval() requires the AST head tag
// to be List").
func (ev *Evaluator) Eval(e *ast.Expr) (*ast.Expr, error) {
	if !e.IsList() {
		return nil, errors.New("top-level program must be a list expression")
	}

	return ev.eval(e)
}

// eval implements the recursive evaluation rules of §4.5.
func (ev *Evaluator) eval(e *ast.Expr) (*ast.Expr, error) {
	if e.IsAtom() {
		switch a := e.Head.(type) {
		case ast.Bool, ast.Number, ast.Point, ast.Line, ast.Arc, ast.None:
			return e, nil
		case ast.Symbol:
			return ev.evalSymbol(string(a))
		default:
			return nil, errors.Errorf("cannot evaluate atom of type %s", e.Head.Type())
		}
	}

	return ev.evalList(e)
}

// evalSymbol resolves a bare symbol leaf (rule 2 of §4.5).
func (ev *Evaluator) evalSymbol(name string) (*ast.Expr, error) {
	if ev.Env.IsExpr(name) {
		return ev.Env.GetExpr(name)
	}
	if ev.Env.IsProc(name) {
		proc, err := ev.Env.GetProc(name)
		if err != nil {
			return nil, err
		}

		return proc(nil)
	}

	return nil, errors.Errorf("unknown symbol: %s", name)
}

// evalList implements rule 4 of §4.5.
func (ev *Evaluator) evalList(e *ast.Expr) (*ast.Expr, error) {
	if len(e.Tail) == 0 {
		return e, nil
	}

	head := e.Tail[0]
	if !head.IsAtom() {
		return nil, errors.New("head of list must be a symbol, number, or boolean")
	}

	switch h := head.Head.(type) {
	case ast.Number, ast.Bool:
		// (42) -> 42: preserved evaluator quirk, flagged per §9 Design
		// Notes. Not extended to Point/Line/Arc heads, which the spec
		// does not list among the self-returning head kinds.
		return head, nil
	case ast.Symbol:
		return ev.evalForm(string(h), e.Tail[1:])
	default:
		return nil, errors.New("head of list must be a symbol, number, or boolean")
	}
}

// evalForm dispatches a symbol-headed list: the four special forms by
// syntactic name, then built-in procedures, then expression bindings
// (§4.5). Special forms are checked first and unconditionally — they
// are never looked up through the environment.
func (ev *Evaluator) evalForm(name string, args []*ast.Expr) (*ast.Expr, error) {
	switch name {
	case "define":
		return ev.evalDefine(args)
	case "begin":
		return ev.evalBegin(args)
	case "if":
		return ev.evalIf(args)
	case "draw":
		return ev.evalDraw(args)
	}

	if ev.Env.IsProc(name) {
		return ev.applyProc(name, args)
	}
	if ev.Env.IsExpr(name) {
		return ev.Env.GetExpr(name)
	}

	return nil, errors.Errorf("unknown symbol: %s", name)
}

// applyProc evaluates args left-to-right, collects their head Atoms,
// and invokes the named built-in procedure (§4.5: "evaluate each
// remaining tail element left-to-right, collect the heads ... invoke
// the built-in").
func (ev *Evaluator) applyProc(name string, args []*ast.Expr) (*ast.Expr, error) {
	proc, err := ev.Env.GetProc(name)
	if err != nil {
		return nil, err
	}

	evaluated := make([]ast.Atom, len(args))
	for i, a := range args {
		v, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v.Head
	}

	result, err := proc(evaluated)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	return result, nil
}

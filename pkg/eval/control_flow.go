package eval

import (
	"github.com/pkg/errors"

	"github.com/conneroisu/slisp/internal/ast"
)

// evalDefine implements the define special form (§4.5): exactly a
// name and a body. The name must be an unbound, non-reserved symbol;
// the body is evaluated once, bound, and returned.
func (ev *Evaluator) evalDefine(args []*ast.Expr) (*ast.Expr, error) {
	if len(args) != 2 {
		return nil, errors.Errorf("define: expected exactly 2 arguments (name value), got %d", len(args))
	}

	nameExpr := args[0]
	sym, ok := nameExpr.Head.(ast.Symbol)
	if !nameExpr.IsAtom() || !ok {
		return nil, errors.New("define: name must be a symbol")
	}

	name := string(sym)
	if reservedNames[name] {
		return nil, errors.Errorf("define: %q is a reserved name", name)
	}

	val, err := ev.eval(args[1])
	if err != nil {
		return nil, err
	}

	if err := ev.Env.AddExpr(name, val); err != nil {
		return nil, err
	}

	return val, nil
}

// evalBegin implements the begin special form (§4.5): evaluate each
// element in order, returning the last result. No body yields None.
func (ev *Evaluator) evalBegin(args []*ast.Expr) (*ast.Expr, error) {
	if len(args) == 0 {
		return ast.NoneExpr(), nil
	}

	var result *ast.Expr
	for _, a := range args {
		v, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

// evalIf implements the if special form (§4.5): exactly a condition
// and two branches. Only the selected branch is evaluated.
func (ev *Evaluator) evalIf(args []*ast.Expr) (*ast.Expr, error) {
	if len(args) != 3 {
		return nil, errors.Errorf("if: expected exactly 3 arguments (condition then else), got %d", len(args))
	}

	cond, err := ev.eval(args[0])
	if err != nil {
		return nil, err
	}

	b, ok := cond.Head.(ast.Bool)
	if !cond.IsAtom() || !ok {
		return nil, errors.New("if: condition must evaluate to a boolean")
	}

	if b {
		return ev.eval(args[1])
	}

	return ev.eval(args[2])
}

// evalDraw implements the draw special form (§4.5): each argument
// must evaluate to a graphic atom, which is appended to the graphics
// log in order. draw itself evaluates to None.
func (ev *Evaluator) evalDraw(args []*ast.Expr) (*ast.Expr, error) {
	if len(args) == 0 {
		return nil, errors.New("draw: expected at least one argument")
	}

	for _, a := range args {
		v, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		if !v.IsAtom() || !ast.IsGraphic(v.Head) {
			return nil, errors.Errorf("draw: argument %s is not a graphic", v.String())
		}
		ev.Log.Append(v.Head)
	}

	return ast.NoneExpr(), nil
}

package ast

import "github.com/pkg/errors"

// Proc is a built-in procedure: a pure function from an ordered sequence
// of already-evaluated Atoms to an Expression. It may fail with a
// semantic error (§4.4).
type Proc func(args []Atom) (*Expr, error)

// EnvEntry is either a built-in Proc or a bound expression. Only these
// two kinds exist; a symbol never carries both.
type EnvEntry struct {
	proc Proc
	expr *Expr
}

func procEntry(p Proc) EnvEntry  { return EnvEntry{proc: p} }
func exprEntry(e *Expr) EnvEntry { return EnvEntry{expr: e} }

// IsProc reports whether the entry is a built-in procedure.
func (e EnvEntry) IsProc() bool { return e.proc != nil }

// IsExpr reports whether the entry is a bound expression.
func (e EnvEntry) IsExpr() bool { return e.proc == nil }

// Environment is an ordered mapping from symbol name to EnvEntry. A
// symbol has at most one entry for the lifetime of the environment;
// AddExpr fails if the name is already known (§3 Environment invariants).
type Environment struct {
	order   []string
	entries map[string]EnvEntry
}

// NewEnvironment builds a fresh, empty environment. Callers (the eval
// package's Evaluator.init) seed it with the built-in procedure table and the
// pre-bound pi expression; Environment itself only owns the generic
// bind/lookup machinery and the one-shot binding rule, so that the
// standard table (owned by the evaluator per §4.4) does not need to be
// imported into this package.
func NewEnvironment() *Environment {
	return &Environment{entries: make(map[string]EnvEntry)}
}

// IsKnown reports whether sym has an entry of either kind.
func (env *Environment) IsKnown(sym string) bool {
	_, ok := env.entries[sym]

	return ok
}

// IsProc reports whether sym is bound to a built-in procedure.
func (env *Environment) IsProc(sym string) bool {
	e, ok := env.entries[sym]

	return ok && e.IsProc()
}

// IsExpr reports whether sym is bound to an expression.
func (env *Environment) IsExpr(sym string) bool {
	e, ok := env.entries[sym]

	return ok && e.IsExpr()
}

// GetProc retrieves the procedure bound to sym.
func (env *Environment) GetProc(sym string) (Proc, error) {
	e, ok := env.entries[sym]
	if !ok {
		return nil, errors.Errorf("unknown symbol: %s", sym)
	}
	if !e.IsProc() {
		return nil, errors.Errorf("%s is not a procedure", sym)
	}

	return e.proc, nil
}

// GetExpr retrieves the expression bound to sym.
func (env *Environment) GetExpr(sym string) (*Expr, error) {
	e, ok := env.entries[sym]
	if !ok {
		return nil, errors.Errorf("unknown symbol: %s", sym)
	}
	if !e.IsExpr() {
		return nil, errors.Errorf("%s is not an expression binding", sym)
	}

	return e.expr, nil
}

// AddExpr binds sym to an expression value. It fails if sym is already
// known — built-ins included — implementing the one-shot binding rule
// and sealing built-ins against redefinition (§3, §8).
func (env *Environment) AddExpr(sym string, val *Expr) error {
	return env.addExpr(sym, val)
}

func (env *Environment) addExpr(sym string, val *Expr) error {
	if env.IsKnown(sym) {
		return errors.Errorf("%s already known", sym)
	}
	env.entries[sym] = exprEntry(val)
	env.order = append(env.order, sym)

	return nil
}

// AddProc registers a built-in procedure under sym. Used exclusively by
// the evaluator's standard-table installer (§4.4); it panics on a
// duplicate name because that indicates a bug in the built-in table
// itself, not a user-triggered redefinition attempt.
func (env *Environment) AddProc(sym string, p Proc) {
	if env.IsKnown(sym) {
		panic("slisp: duplicate built-in registration for " + sym)
	}
	env.entries[sym] = procEntry(p)
	env.order = append(env.order, sym)
}

// Names returns the known symbols in binding order. Used by
// diagnostics and tests that want a deterministic listing.
func (env *Environment) Names() []string {
	out := make([]string, len(env.order))
	copy(out, env.order)

	return out
}

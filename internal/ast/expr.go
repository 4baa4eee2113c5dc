package ast

import "strings"

// listTag is the internal-only Atom used as the head of a List
// expression. It carries no data of its own; the expression's meaning
// lives entirely in its Tail.
type listTag struct{}

func (listTag) Type() Type     { return TypeList }
func (listTag) String() string { return "List" }
func (listTag) Equals(o Atom) bool {
	_, ok := o.(listTag)

	return ok
}

// Expr is a node in the abstract syntax tree: a head Atom plus an
// ordered sequence of child expressions. A List expression's semantic
// content is its Tail; an atomic leaf has an empty Tail.
type Expr struct {
	Head Atom
	Tail []*Expr
}

// NewAtom wraps a leaf Atom as an atomic expression.
func NewAtom(a Atom) *Expr {
	return &Expr{Head: a}
}

// NewList builds a List expression from already-parsed children.
// Parsing never produces an empty List — an opening paren with no
// contents is a syntax error (§4.3) — but NewList itself does not
// enforce that; callers (the reader) are responsible for rejecting it.
func NewList(tail ...*Expr) *Expr {
	return &Expr{Head: listTag{}, Tail: tail}
}

// NoneExpr returns the reset/failure sentinel AST: an atomic None leaf.
func NoneExpr() *Expr { return NewAtom(None{}) }

// IsList reports whether e is a List expression (as opposed to an
// atomic leaf).
func (e *Expr) IsList() bool {
	return e != nil && e.Head.Type() == TypeList
}

// IsAtom reports whether e is an atomic leaf.
func (e *Expr) IsAtom() bool {
	return e != nil && e.Head.Type() != TypeList
}

// String renders e using the surface grammar: atoms print as
// themselves, lists print parenthesized with space-separated children.
func (e *Expr) String() string {
	if e == nil {
		return "None"
	}
	if e.IsAtom() {
		return e.Head.String()
	}

	parts := make([]string, len(e.Tail))
	for i, c := range e.Tail {
		parts[i] = c.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Equals compares two expressions structurally: same head, same tail
// length, and pairwise-equal children.
func (e *Expr) Equals(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if !e.Head.Equals(o.Head) || len(e.Tail) != len(o.Tail) {
		return false
	}
	for i := range e.Tail {
		if !e.Tail[i].Equals(o.Tail[i]) {
			return false
		}
	}

	return true
}

// Package reader lifts a token stream into an abstract syntax tree
// (§4.3). It is the slisp analogue of the teacher's pkg/parser, but
// without precedence climbing: S-expressions have one grammar rule
// (a parenthesized, whitespace-separated sequence), so the teacher's
// Pratt machinery (precedence tables, prefix/infix dispatch) has no
// role here. What is kept is the cur/peek-less, index-driven recursive
// descent of conneroisu-gix/pkg/parser. Errors are not accumulated: the
// first error ends the read and is returned.
package reader

import (
	"github.com/pkg/errors"

	"github.com/conneroisu/slisp/internal/ast"
	"github.com/conneroisu/slisp/pkg/lexer"
)

// Reader consumes a fixed token slice produced by the lexer and builds
// a single AST expression from it.
type Reader struct {
	toks []lexer.Token
}

// New creates a Reader over an already-tokenized input.
func New(toks []lexer.Token) *Reader {
	return &Reader{toks: toks}
}

// Read parses source text end-to-end: tokenize, then read a single
// top-level form. On any failure the returned expression is the None
// sentinel (§4.3: "the AST is reset to the None sentinel").
func Read(source string) (*ast.Expr, error) {
	r := New(lexer.Tokenize(source))

	return r.Read()
}

// Read parses the Reader's token stream into a single AST expression.
// The whole input must be one parenthesized form: a bare atom at the
// top level is rejected, and any leftover tokens after a successful
// read are an error (§4.3).
func (r *Reader) Read() (*ast.Expr, error) {
	if len(r.toks) == 0 {
		return ast.NoneExpr(), errors.New("empty input")
	}
	if r.toks[0].Literal != "(" {
		return ast.NoneExpr(), errors.New("top-level program must be a parenthesized form")
	}

	expr, next, err := r.readList(0)
	if err != nil {
		return ast.NoneExpr(), err
	}
	if next != len(r.toks) {
		return ast.NoneExpr(), errors.Errorf(
			"unexpected trailing input starting at %q", r.toks[next].Literal,
		)
	}

	return expr, nil
}

// readExpr parses a single expression (atom or list) starting at index
// i, returning the expression and the index just past it.
func (r *Reader) readExpr(i int) (*ast.Expr, int, error) {
	if i >= len(r.toks) {
		return nil, 0, errors.New("unexpected end of input while reading")
	}

	tok := r.toks[i]
	switch tok.Literal {
	case "(":
		return r.readList(i)
	case ")":
		return nil, 0, errors.Errorf("unexpected ) at line %d", tok.Line)
	default:
		atom, err := RecognizeAtom(tok.Literal)
		if err != nil {
			return nil, 0, err
		}

		return ast.NewAtom(atom), i + 1, nil
	}
}

// readList parses a parenthesized list starting at the '(' token at
// index i, recursively reading child expressions until the matching
// ')'. An empty list, an unmatched '(', and a stream that ends before
// balancing are all errors (§4.3).
func (r *Reader) readList(i int) (*ast.Expr, int, error) {
	// r.toks[i] is '('.
	j := i + 1
	if j >= len(r.toks) {
		return nil, 0, errors.New("unbalanced parentheses: unexpected end of input")
	}
	if r.toks[j].Literal == ")" {
		return nil, 0, errors.New("empty list")
	}

	var children []*ast.Expr
	for {
		if j >= len(r.toks) {
			return nil, 0, errors.New("unbalanced parentheses: unexpected end of input")
		}
		if r.toks[j].Literal == ")" {
			j++

			break
		}

		child, next, err := r.readExpr(j)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
		j = next
	}

	return ast.NewList(children...), j, nil
}

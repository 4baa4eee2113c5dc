package reader

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/conneroisu/slisp/internal/ast"
)

// numberPattern implements the grammar from §4.2:
//
//	[+-]? digits ('.' digits)? ([eE] [+-]? digits)?
var numberPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// bareOperators holds the tokens that look like they could be numbers
// under a looser grammar but are reserved as arithmetic operator
// symbols instead (§4.2: "is not one of the bare operator tokens
// + - * /").
var bareOperators = map[string]bool{"+": true, "-": true, "*": true, "/": true}

// symbolOperators are the non-alphabetic tokens recognized as symbols
// (§4.2).
var symbolOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"<": true, ">": true, ">=": true, "<=": true, "=": true,
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// RecognizeAtom determines the atom kind of a single token and parses
// it into an ast.Atom (§4.2).
func RecognizeAtom(tok string) (ast.Atom, error) {
	if tok == "" {
		return nil, errors.New("empty token")
	}

	if !bareOperators[tok] && numberPattern.MatchString(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number literal %q", tok)
		}

		return ast.Number(f), nil
	}

	switch tok {
	case "True":
		return ast.Bool(true), nil
	case "False":
		return ast.Bool(false), nil
	}

	if isAlpha(tok[0]) || symbolOperators[tok] {
		return ast.Symbol(tok), nil
	}

	return nil, errors.Errorf("invalid atom %q", tok)
}

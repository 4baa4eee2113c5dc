// Package lexer implements the tokenizer for the slisp language (§4.1).
//
// The tokenizer is the first stage of the interpreter pipeline: it turns
// raw source text into an ordered sequence of string tokens. Unlike the
// teacher's Nix lexer, slisp has no multi-character operators and no
// keyword table to classify at this stage — atom recognition (numbers,
// booleans, symbols) happens one layer up, in pkg/reader, per spec §4.2.
// What carries over from the teacher is the single-pass, stateful scan
// with an explicit current-character cursor and line/column tracking,
// matching both conneroisu-gix's lexer.go and the comment-handling
// structure of original_source/tokenize.cpp (a single scan that strips
// ';' comments inline rather than as a separate pass).
package lexer

// Token is one lexical unit: its literal text plus source position for
// error reporting by the reader.
type Token struct {
	Literal string
	Line    int
	Column  int
}

// Lexer scans an input string into a stream of Tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer over input, priming it to read the first
// character.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()

	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isParen(ch byte) bool {
	return ch == '(' || ch == ')'
}

// skipInsignificant advances past whitespace and ';' line comments,
// which extend to end-of-line or end-of-input (§4.1).
func (l *Lexer) skipInsignificant() {
	for {
		for isWhitespace(l.ch) {
			l.readChar()
		}
		if l.ch == ';' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}

			continue
		}

		break
	}
}

// readAtomToken consumes a maximal run of non-whitespace, non-paren
// characters — the "anything else" case of §4.1.
func (l *Lexer) readAtomToken() string {
	start := l.position
	for l.ch != 0 && !isWhitespace(l.ch) && !isParen(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

// NextToken returns the next token, or a zero-value Token with an empty
// Literal at end-of-input. The tokenizer never fails (§4.1): every
// input string, however malformed, terminates in a finite token stream.
func (l *Lexer) NextToken() Token {
	l.skipInsignificant()

	tok := Token{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		return tok
	case l.ch == '(':
		tok.Literal = "("
		l.readChar()
	case l.ch == ')':
		tok.Literal = ")"
		l.readChar()
	default:
		tok.Literal = l.readAtomToken()
	}

	return tok
}

// Tokenize drains l into a complete, ordered token slice. Provided as a
// convenience for callers (the reader, and tests) that want the whole
// stream at once rather than pulling tokens one at a time.
func Tokenize(input string) []Token {
	l := New(input)

	var toks []Token
	for {
		t := l.NextToken()
		if t.Literal == "" {
			break
		}
		toks = append(toks, t)
	}

	return toks
}

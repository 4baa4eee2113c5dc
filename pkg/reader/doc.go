// Package reader recognizes atoms (§4.2) and parses a token stream
// into a single AST expression (§4.3). A program is exactly one
// parenthesized form; bare top-level atoms, empty lists, unbalanced
// parentheses, and trailing tokens are all rejected.
package reader

// Package eval implements the slisp evaluator (§4.5): the built-in
// procedure table (§4.4), the four special forms (define, begin, if,
// draw), and ordinary procedure application. It is the slisp analogue
// of the teacher's pkg/eval — same tree-walking shape, same split
// across evaluator.go/builtins.go/control_flow.go — but evaluating a
// small, non-lazy, non-closure language instead of Nix.
package eval

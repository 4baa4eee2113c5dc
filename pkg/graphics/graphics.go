// Package graphics provides the evaluator's graphics-log side channel
// (§3, §9 Design Notes): an append-only sequence of Point/Line/Arc
// atoms produced by `draw` forms, plus the bounding-box convention a
// host renderer needs for Arc (§6) and a content digest for a
// completed log.
//
// Sink is the writer-style interface for this side channel, and Log is
// its one implementation. The evaluator holds a concrete *Log rather
// than a Sink, so no other Sink implementation can be plugged into it.
package graphics

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/conneroisu/slisp/internal/ast"
)

// Sink is the append contract for graphics atoms. Log implements it;
// the evaluator's Log field is the concrete *Log type, not a Sink.
type Sink interface {
	Append(a ast.Atom)
}

// Log is an ordered, append-only sequence of Point/Line/Arc atoms
// (§3). It grows monotonically; nothing in normal evaluation clears
// it — only a fresh Log (a new evaluation session, §5) starts empty.
type Log struct {
	atoms []ast.Atom
}

// New returns an empty graphics log.
func New() *Log {
	return &Log{}
}

// Append adds a to the log. Callers (the evaluator's draw handling)
// are responsible for first checking ast.IsGraphic(a); Append itself
// does not reject non-graphic atoms, since Sink is a generic
// contract and the type check is a evaluator-level invariant (§4.5).
func (l *Log) Append(a ast.Atom) {
	l.atoms = append(l.atoms, a)
}

// Len reports the number of entries appended so far.
func (l *Log) Len() int {
	return len(l.atoms)
}

// Atoms returns the accumulated sequence. The returned slice is a
// copy; mutating it does not affect the log.
func (l *Log) Atoms() []ast.Atom {
	out := make([]ast.Atom, len(l.atoms))
	copy(out, l.atoms)

	return out
}

// BoundingBox is the square render hint for an Arc (§6): side length
// 2*max(|cx-sx|, |sy-cy|) centered on the arc's center. A host
// renderer applies its own angle-unit convention on top of this.
type BoundingBox struct {
	CenterX, CenterY float64
	Side             float64
}

// ArcBoundingBox computes the rendering bounding box for a.
func ArcBoundingBox(a ast.Arc) BoundingBox {
	dx := a.Center.X - a.Start.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Start.Y - a.Center.Y
	if dy < 0 {
		dy = -dy
	}

	side := dx
	if dy > side {
		side = dy
	}

	return BoundingBox{CenterX: a.Center.X, CenterY: a.Center.Y, Side: 2 * side}
}

// Digest returns a deterministic SHA-256 fingerprint of the log's
// contents, in append order, for hosts/tests that want a content
// identity for a completed session's graphics log without diffing the
// sequence atom-by-atom. Modeled on the teacher's derivation hash: a
// stable textual join of the ordered fields, folded through SHA-256.
func (l *Log) Digest() string {
	parts := make([]string, len(l.atoms))
	for i, a := range l.atoms {
		parts[i] = fmt.Sprintf("%s:%s", a.Type(), a.String())
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "\n")))

	return hex.EncodeToString(sum[:])
}

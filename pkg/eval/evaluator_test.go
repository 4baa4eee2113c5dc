package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/slisp/internal/ast"
	"github.com/conneroisu/slisp/pkg/reader"
)

func mustEval(t *testing.T, ev *Evaluator, program string) *ast.Expr {
	t.Helper()

	parsed, err := reader.Read(program)
	require.NoError(t, err, "parse %q", program)

	result, err := ev.Eval(parsed)
	require.NoError(t, err, "eval %q", program)

	return result
}

func TestEvalArithmetic(t *testing.T) {
	ev := New()
	result := mustEval(t, ev, "(+ 1 2)")
	require.Equal(t, ast.Number(3), result.Head)
}

func TestEvalBeginAndDefinePersist(t *testing.T) {
	ev := New()
	result := mustEval(t, ev, "(begin (define x 5) (+ x 10))")
	require.Equal(t, ast.Number(15), result.Head)

	// x persists in the environment after the top-level program completes.
	again := mustEval(t, ev, "(x)")
	require.Equal(t, ast.Number(5), again.Head)
}

func TestEvalIfSelectsBranch(t *testing.T) {
	ev := New()
	require.Equal(t, ast.Number(10), mustEval(t, ev, "(if True 10 20)").Head)
	require.Equal(t, ast.Number(20), mustEval(t, ev, "(if False 10 20)").Head)
}

func TestEvalIfRejectsNonBooleanCondition(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(if 3 10 20)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)
}

func TestEvalIfDoesNotEvaluateOtherBranch(t *testing.T) {
	ev := New()
	// The False branch calls an unknown symbol; if it were evaluated the
	// program would fail.
	mustEval(t, ev, "(if True 10 (boom))")

	// Symmetric: the True branch is skipped when the condition is False.
	mustEval(t, ev, "(if False (boom) 20)")
}

func TestEvalDivisionByZero(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(/ 10 0)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)
}

func TestEvalDrawAppendsGraphicsLog(t *testing.T) {
	ev := New()
	mustEval(t, ev, `(begin
		(draw (point 0 0))
		(draw (line (point 10 0) (point 0 10)))
		(draw (arc (point 0 0) (point 100 0) pi)))`)

	atoms := ev.Log.Atoms()
	require.Len(t, atoms, 3)
	require.Equal(t, ast.TypePoint, atoms[0].Type())
	require.Equal(t, ast.TypeLine, atoms[1].Type())
	require.Equal(t, ast.TypeArc, atoms[2].Type())
}

func TestEvalDrawRejectsNonGraphicArgument(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(draw 5)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)
}

func TestEvalRedefiningPiFails(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(define pi 3)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)

	// pi keeps its original binding after the failed redefinition.
	result := mustEval(t, ev, "(pi)")
	n, ok := result.Head.(ast.Number)
	require.True(t, ok)
	require.InDelta(t, 3.14159265358979, float64(n), 1e-9)
}

func TestEvalBuiltinsCannotBeShadowedByDefine(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(define + 1)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)
}

func TestEvalReservedNamesRejectedByDefine(t *testing.T) {
	for _, name := range []string{"if", "define", "begin"} {
		ev := New()
		parsed, err := reader.Read("(define " + name + " 1)")
		require.NoError(t, err)

		_, err = ev.Eval(parsed)
		require.Error(t, err, "reserved name %q", name)
	}
}

func TestEvalUnknownSymbolFails(t *testing.T) {
	ev := New()
	parsed, err := reader.Read("(foo)")
	require.NoError(t, err)

	_, err = ev.Eval(parsed)
	require.Error(t, err)
}

func TestEvalTopLevelMustBeList(t *testing.T) {
	ev := New()
	_, err := ev.Eval(ast.NewAtom(ast.Number(42)))
	require.Error(t, err)
}

func TestEvalWrapperListOfNumberLiteralQuirk(t *testing.T) {
	// (42) evaluates to 42 -- preserved evaluator quirk (§9 Design Notes).
	ev := New()
	result := mustEval(t, ev, "(42)")
	require.Equal(t, ast.Number(42), result.Head)

	result = mustEval(t, ev, "(True)")
	require.Equal(t, ast.Bool(true), result.Head)
}

func TestEvalAddArgumentEvaluationIsLeftToRight(t *testing.T) {
	ev := New()
	// Side effects of a define nested in an argument list happen in
	// source order (§5 ordering guarantees).
	mustEval(t, ev, "(+ (define a 1) (define b (+ a 1)))")

	result := mustEval(t, ev, "(b)")
	require.Equal(t, ast.Number(2), result.Head)
}

func TestResetReinstallsFreshEnvironment(t *testing.T) {
	ev := New()
	mustEval(t, ev, "(define x 1)")
	mustEval(t, ev, "(draw (point 0 0))")
	require.Equal(t, 1, ev.Log.Len())

	ev.Reset()

	require.Equal(t, 0, ev.Log.Len())
	require.False(t, ev.Env.IsKnown("x"))
	require.True(t, ev.Env.IsExpr("pi"))
}

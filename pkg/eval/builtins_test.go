package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/slisp/internal/ast"
	"github.com/conneroisu/slisp/pkg/reader"
)

func evalNumber(t *testing.T, ev *Evaluator, program string) float64 {
	t.Helper()

	result := mustEval(t, ev, program)
	n, ok := result.Head.(ast.Number)
	require.True(t, ok, "expected Number, got %s", result.Head.Type())

	return float64(n)
}

func evalBool(t *testing.T, ev *Evaluator, program string) bool {
	t.Helper()

	result := mustEval(t, ev, program)
	b, ok := result.Head.(ast.Bool)
	require.True(t, ok, "expected Bool, got %s", result.Head.Type())

	return bool(b)
}

func evalErr(t *testing.T, program string) error {
	t.Helper()

	ev := New()
	parsed, err := reader.Read(program)
	require.NoError(t, err)

	_, err = ev.Eval(parsed)

	return err
}

func TestBuiltinArithmetic(t *testing.T) {
	ev := New()
	require.InDelta(t, 6, evalNumber(t, ev, "(+ 1 2 3)"), 1e-9)
	require.InDelta(t, -5, evalNumber(t, ev, "(- 5)"), 1e-9)
	require.InDelta(t, 2, evalNumber(t, ev, "(- 5 3)"), 1e-9)
	require.InDelta(t, 24, evalNumber(t, ev, "(* 2 3 4)"), 1e-9)
	require.InDelta(t, 2.5, evalNumber(t, ev, "(/ 5 2)"), 1e-9)
}

func TestBuiltinArithmeticErrors(t *testing.T) {
	require.Error(t, evalErr(t, "(+)"))
	require.Error(t, evalErr(t, "(+ 1 True)"))
	require.Error(t, evalErr(t, "(- 1 2 3)"))
	require.Error(t, evalErr(t, "(/ 1)"))
	require.Error(t, evalErr(t, "(/ 1 0)"))
}

func TestBuiltinComparisons(t *testing.T) {
	ev := New()
	require.True(t, evalBool(t, ev, "(< 1 2)"))
	require.False(t, evalBool(t, ev, "(< 2 1)"))
	require.True(t, evalBool(t, ev, "(> 2 1)"))
	require.True(t, evalBool(t, ev, "(<= 1 1)"))
	require.True(t, evalBool(t, ev, "(>= 1 1)"))
	require.True(t, evalBool(t, ev, "(= 1 1)"))
	require.False(t, evalBool(t, ev, "(= 1 2)"))
}

func TestBuiltinLogic(t *testing.T) {
	ev := New()
	require.True(t, evalBool(t, ev, "(and True True)"))
	require.False(t, evalBool(t, ev, "(and True False)"))
	require.True(t, evalBool(t, ev, "(or False True)"))
	require.False(t, evalBool(t, ev, "(or False False)"))
	require.False(t, evalBool(t, ev, "(not True)"))
	require.True(t, evalBool(t, ev, "(not False)"))
}

func TestBuiltinLogicErrors(t *testing.T) {
	require.Error(t, evalErr(t, "(and)"))
	require.Error(t, evalErr(t, "(and 1 True)"))
	require.Error(t, evalErr(t, "(not True False)"))
}

func TestBuiltinTrig(t *testing.T) {
	ev := New()
	require.InDelta(t, 0, evalNumber(t, ev, "(sin 0)"), 1e-9)
	require.InDelta(t, 1, evalNumber(t, ev, "(cos 0)"), 1e-9)
	require.InDelta(t, math.Pi/4, evalNumber(t, ev, "(arctan 1 1)"), 1e-9)
	require.InDelta(t, 1, evalNumber(t, ev, "(log10 10)"), 1e-9)
	require.InDelta(t, 8, evalNumber(t, ev, "(pow 2 3)"), 1e-9)
}

func TestBuiltinLog10RejectsNonPositive(t *testing.T) {
	require.Error(t, evalErr(t, "(log10 0)"))
	require.Error(t, evalErr(t, "(log10 -1)"))
}

func TestBuiltinGraphicsConstructors(t *testing.T) {
	ev := New()
	result := mustEval(t, ev, "(point 1 2)")
	p, ok := result.Head.(ast.Point)
	require.True(t, ok)
	require.Equal(t, 1.0, p.X)
	require.Equal(t, 2.0, p.Y)

	result = mustEval(t, ev, "(line (point 0 0) (point 1 1))")
	l, ok := result.Head.(ast.Line)
	require.True(t, ok)
	require.Equal(t, ast.Point{X: 0, Y: 0}, l.A)
	require.Equal(t, ast.Point{X: 1, Y: 1}, l.B)

	result = mustEval(t, ev, "(arc (point 0 0) (point 1 0) pi)")
	a, ok := result.Head.(ast.Arc)
	require.True(t, ok)
	require.InDelta(t, math.Pi, a.Span, 1e-9)
}

func TestBuiltinGraphicsConstructorsRejectWrongTypes(t *testing.T) {
	require.Error(t, evalErr(t, "(point 1 True)"))
	require.Error(t, evalErr(t, "(line 1 2)"))
	require.Error(t, evalErr(t, "(arc 1 2 3)"))
}

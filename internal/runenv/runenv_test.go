package runenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/values"
)

func TestIntegerLet(t *testing.T) {
	env := New()
	require.NoError(t, env.ParseAndAdd("m1", "let x = 1;"))

	cell, ok := env.FindVariable("x")
	require.True(t, ok)
	assert.Equal(t, int32(1), cell.Get().(values.IntObj).Int32())
}

func TestRecursionFib(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", `
		let fib : <Int>:Int = <n:Int>:Int -> if n < 2 n else fib(n-1) + fib(n-2);
		let f = fib(10);
	`)
	require.NoError(t, err)

	cell, ok := env.FindVariable("f")
	require.True(t, ok)
	assert.Equal(t, int32(55), cell.Get().(values.IntObj).Int32())
}

func TestMutabilityMismatch(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", "let x : Int = 1; let y : mut Int = x;")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeMutabilityReq, checkErr.Code)
}

func TestTypeMismatch(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", "let x : Float = 2;")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeTypeMismatch, checkErr.Code)
}

func TestUnknownVariable(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", "let x = y;")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeUnknownVariable, checkErr.Code)
}

func TestIfWithoutElseNonEmptyBranch(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", "let x = if 1 < 2 5;")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeIfNoElse, checkErr.Code)
}

func TestIfArmsDisagree(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", `let x = if 1 < 2 5 else "a";`)
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeIfArmsDisagree, checkErr.Code)
}

func TestWrongArity(t *testing.T) {
	env := New()
	require.NoError(t, env.ParseAndAdd("m1", "let fib : <Int>:Int = <n:Int>:Int -> n;"))

	err := env.ParseAndAdd("m2", "let bad = fib(1, 2);")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeArity, checkErr.Code)
}

func TestNonFunctionCall(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", "let a = 3; let b = a(1);")
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeNotAFunction, checkErr.Code)
}

func TestLambdaCannotReachOuterScopeOutsideClosure(t *testing.T) {
	env := New()
	err := env.ParseAndAdd("m1", `
		let x : Int = 5;
		let f = <n:Int>:Int -> n + x;
	`)
	require.Error(t, err)

	var checkErr *diagnostics.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, diagnostics.CodeUnknownVariable, checkErr.Code)
}

func TestRunEvaluatesStandaloneExpression(t *testing.T) {
	env := New()
	require.NoError(t, env.ParseAndAdd("m1", "let x = 10;"))

	vtype, cell, err := env.Run("x + 5")
	require.NoError(t, err)
	assert.Equal(t, int32(15), cell.Get().(values.IntObj).Int32())
	assert.True(t, vtype.Info.Equal(cell.Get().RuntimeType()))
}

func TestTraceRecordsBoundNamesPerModule(t *testing.T) {
	env := New()
	require.NoError(t, env.ParseAndAdd("first", "let x = 1;"))
	require.NoError(t, env.ParseAndAdd("second", "let y = 2; let z = 3;"))

	trace := env.Trace()
	require.Len(t, trace, 2)
	assert.Equal(t, "first", trace[0].Name)
	assert.Equal(t, []string{"x"}, trace[0].BoundNames)
	assert.Equal(t, "second", trace[1].Name)
	assert.Equal(t, []string{"y", "z"}, trace[1].BoundNames)
	assert.NotEqual(t, trace[0].ModuleID, trace[1].ModuleID)
}

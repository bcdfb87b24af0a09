package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/typesystem"
)

func TestParseModuleSimpleLet(t *testing.T) {
	module, err := Parse("let x = 1;")
	require.NoError(t, err)
	require.Len(t, module.Variables, 1)
	assert.Equal(t, "x", module.Variables[0].Name)
	assert.Zero(t, module.ID)

	parts := module.Variables[0].Def.Value.Parts
	require.Len(t, parts, 1)
	v, ok := parts[0].(ast.Variable)
	require.True(t, ok)
	ic, ok := v.Expr.Constant.(ast.IntegerConstant)
	require.True(t, ok)
	assert.Equal(t, int32(1), ic.Value)
}

func TestParseModuleMultipleDefs(t *testing.T) {
	module, err := Parse("let x = 1; let y = x + 2;")
	require.NoError(t, err)
	require.Len(t, module.Variables, 2)
	assert.Equal(t, "y", module.Variables[1].Name)
	assert.Len(t, module.Variables[1].Def.Value.Operands, 1)
}

func TestParseModuleSkipsLineComments(t *testing.T) {
	module, err := Parse("// a comment\nlet x = 1; // trailing\n")
	require.NoError(t, err)
	require.Len(t, module.Variables, 1)
}

func TestParseModuleResidueIsFatal(t *testing.T) {
	_, err := Parse("let x = 1; garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P-RESIDUE")
}

func TestParseMutableDeclaredType(t *testing.T) {
	module, err := Parse("let x : mut Int = 1;")
	require.NoError(t, err)
	vtype := module.Variables[0].Def.VType
	assert.True(t, vtype.Mutable)
	assert.Equal(t, typesystem.Int, vtype.Info)
}

func TestParseNegativeNumberVsSubtraction(t *testing.T) {
	module, err := Parse("let x = 3 - 1;")
	require.NoError(t, err)
	value := module.Variables[0].Def.Value
	require.Len(t, value.Parts, 2)
	assert.Equal(t, []ast.Operand{ast.Minus}, value.Operands)

	module2, err := Parse("let y = -1;")
	require.NoError(t, err)
	v, ok := module2.Variables[0].Def.Value.Parts[0].(ast.Variable)
	require.True(t, ok)
	ic, ok := v.Expr.Constant.(ast.IntegerConstant)
	require.True(t, ok)
	assert.Equal(t, int32(-1), ic.Value)
}

func TestParseFloatLiteral(t *testing.T) {
	module, err := Parse("let x = 1.5;")
	require.NoError(t, err)
	v, ok := module.Variables[0].Def.Value.Parts[0].(ast.Variable)
	require.True(t, ok)
	fc, ok := v.Expr.Constant.(ast.FloatConstant)
	require.True(t, ok)
	assert.InDelta(t, 1.5, float64(fc.Value), 1e-6)
}

func TestParseStringLiteralNoEscapes(t *testing.T) {
	module, err := Parse(`let s = "hello";`)
	require.NoError(t, err)
	v, ok := module.Variables[0].Def.Value.Parts[0].(ast.Variable)
	require.True(t, ok)
	sc, ok := v.Expr.Constant.(ast.StringConstant)
	require.True(t, ok)
	assert.Equal(t, "hello", sc.Value)
}

func TestParseLambdaWithClosureCapture(t *testing.T) {
	module, err := Parse("let f = <n:Int><mut acc>:Int -> n;")
	require.NoError(t, err)
	v := module.Variables[0].Def.Value.Parts[0].(ast.Lambda)
	require.Len(t, v.Def.Parameters, 1)
	assert.Equal(t, "n", v.Def.Parameters[0].Name)
	require.Len(t, v.Def.Closure, 1)
	assert.Equal(t, "acc", v.Def.Closure[0].Name)
	assert.True(t, v.Def.Closure[0].Mutable)
}

func TestParseFunctionCall(t *testing.T) {
	module, err := Parse("let x = fib(1, 2);")
	require.NoError(t, err)
	call, ok := module.Variables[0].Def.Value.Parts[0].(ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "fib", call.Name)
	assert.Len(t, call.Params, 2)
}

func TestParseTuple(t *testing.T) {
	module, err := Parse("let x = (1, 2, 3);")
	require.NoError(t, err)
	tuple, ok := module.Variables[0].Def.Value.Parts[0].(ast.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Items, 3)
}

func TestParseIfWithoutElse(t *testing.T) {
	module, err := Parse("let x = if 1 < 2 3;")
	require.NoError(t, err)
	ifNode, ok := module.Variables[0].Def.Value.Parts[0].(ast.If)
	require.True(t, ok)
	assert.Nil(t, ifNode.Else)
}

func TestParseIfWithElse(t *testing.T) {
	module, err := Parse(`let x = if 1 < 2 3 else 4;`)
	require.NoError(t, err)
	ifNode, ok := module.Variables[0].Def.Value.Parts[0].(ast.If)
	require.True(t, ok)
	require.NotNil(t, ifNode.Else)
}

func TestParseExprStandalone(t *testing.T) {
	expr, err := ParseExpr("1 + 2")
	require.NoError(t, err)
	assert.Len(t, expr.Operands, 1)
}

func TestParseExprResidueIsFatal(t *testing.T) {
	_, err := ParseExpr("1 + 2 junk")
	require.Error(t, err)
}

func TestParseKeywordNotMistakenForIdentifierPrefix(t *testing.T) {
	// "ifoo" should parse as the identifier "ifoo", not the "if" keyword
	// followed by garbage.
	module, err := Parse("let ifoo = 1; let x = ifoo;")
	require.NoError(t, err)
	require.Len(t, module.Variables, 2)
	v, ok := module.Variables[1].Def.Value.Parts[0].(ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "ifoo", v.Expr.Name)
}

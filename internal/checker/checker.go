// Package checker implements verify: the bidirectional-flavored type
// checker that turns a Module[Unverified] into a Module[Verified],
// proving every sub-expression well-typed along the way.
package checker

import (
	"fmt"

	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/display"
	"github.com/mira-lang/mira/internal/langconfig"
	"github.com/mira-lang/mira/internal/typesystem"
)

// Verify walks module bottom-up, in source order: for each binding it
// infers the value's type, reconciles it against the declared type via
// checkExpected, writes the reconciled type back, and binds the name in
// the outermost scope so later definitions can see it. It checks module
// in isolation, against a fresh symbol table.
func Verify(module ast.Module[ast.Unverified]) (ast.Module[ast.Verified], error) {
	return VerifyIn(module, NewVariableManager())
}

// VerifyIn is Verify against a caller-supplied VariableManager, so a
// later module can see names an earlier one bound. RunEnv uses this to
// check each added module against the accumulated environment rather
// than re-verifying everything added so far from scratch.
func VerifyIn(module ast.Module[ast.Unverified], vm *VariableManager) (ast.Module[ast.Verified], error) {
	out := ast.Module[ast.Verified]{
		ID:        module.ID,
		Variables: make([]ast.NamedVariableDef[ast.Verified], 0, len(module.Variables)),
	}

	for _, v := range module.Variables {
		found, err := checkExprNamed(v.Name, v.Def.Value, vm)
		if err != nil {
			return ast.Module[ast.Verified]{}, err
		}
		reconciled, err := checkExpected(found, v.Def.VType)
		if err != nil {
			return ast.Module[ast.Verified]{}, err
		}
		vm.BindOutermost(v.Name, reconciled)
		out.Variables = append(out.Variables, ast.NamedVariableDef[ast.Verified]{
			Name: v.Name,
			Def:  &ast.VariableDef[ast.Verified]{Value: v.Def.Value, VType: reconciled},
		})
	}
	return out, nil
}

// checkExpected reconciles a found type against a requested/declared
// one. Structural type agreement is checked first, mutability second —
// matching the original's check_expected (ast/types.rs), which tests
// `expected.info != self.info` before mutability compatibility. A
// found/expected pair that fails both therefore reports the type
// mismatch, not the mutability one. If expected carries
// TypeInfo::Unknown, found's TypeInfo is adopted as-is and only
// mutability is checked.
func checkExpected(found, expected typesystem.VariableType) (typesystem.VariableType, error) {
	if !typesystem.IsUnknown(expected.Info) && !expected.Info.Equal(found.Info) {
		return typesystem.VariableType{}, diagnostics.NewCheckError(
			diagnostics.CodeTypeMismatch,
			fmt.Sprintf("expected type %s, found %s", expected.Info, found.Info),
		)
	}
	if !found.Mutable && expected.Mutable {
		return typesystem.VariableType{}, diagnostics.NewCheckError(
			diagnostics.CodeMutabilityReq,
			fmt.Sprintf("expected a mutable binding, found a non-mutable %s", found.Info),
		)
	}
	return typesystem.VariableType{Mutable: expected.Mutable, Info: found.Info}, nil
}

func newCheckError(code, message string) error {
	return diagnostics.NewCheckError(code, message)
}

// CheckExpr type-checks a standalone expr against the bindings already
// present in vm. Exported so RunEnv can check an ad-hoc expression
// against a set of top-level module bindings without re-running Verify.
func CheckExpr(expr *ast.Expr, vm *VariableManager) (typesystem.VariableType, error) {
	return checkExpr(expr, vm)
}

// checkExprNamed is checkExpr for a module-level `let name = value;`. When
// value is a bare Lambda, name is bound to the lambda's own FuncType
// inside its body scope, the same way self_fn is — so a top-level
// recursive function can call itself by its declared name, not only via
// self_fn. A module binding's own name is otherwise invisible to its
// own value (Verify only binds it afterward), so without this a direct
// self-reference like `fib(n-1)` inside `let fib = ...` could never
// resolve.
func checkExprNamed(name string, expr *ast.Expr, vm *VariableManager) (typesystem.VariableType, error) {
	if lambda, ok := soleLambda(expr); ok {
		return checkLambdaNamed(name, lambda, vm)
	}
	return checkExpr(expr, vm)
}

// soleLambda reports whether expr is exactly one PartialExpr that is a
// Lambda, with no operands folding it against anything else.
func soleLambda(expr *ast.Expr) (ast.Lambda, bool) {
	if len(expr.Parts) != 1 {
		return ast.Lambda{}, false
	}
	lambda, ok := expr.Parts[0].(ast.Lambda)
	return lambda, ok
}

func checkExpr(expr *ast.Expr, vm *VariableManager) (typesystem.VariableType, error) {
	acc, err := checkPartialExpr(expr.Parts[0], vm)
	if err != nil {
		return typesystem.VariableType{}, err
	}
	for i, op := range expr.Operands {
		rhs, err := checkPartialExpr(expr.Parts[i+1], vm)
		if err != nil {
			return typesystem.VariableType{}, err
		}
		acc, err = operandResult(acc, op, rhs)
		if err != nil {
			return typesystem.VariableType{}, err
		}
	}
	return acc, nil
}

func operandResult(lhs typesystem.VariableType, op ast.Operand, rhs typesystem.VariableType) (typesystem.VariableType, error) {
	if !typesystem.IsNumeric(lhs.Info) || !lhs.Info.Equal(rhs.Info) {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeOperandMismatch,
			fmt.Sprintf("cannot apply %q to %s and %s", op, lhs.Info, rhs.Info),
		)
	}
	switch op {
	case ast.Plus, ast.Minus:
		return typesystem.VariableType{Mutable: true, Info: lhs.Info}, nil
	case ast.Lt:
		return typesystem.VariableType{Mutable: true, Info: typesystem.Bool}, nil
	default:
		return typesystem.VariableType{}, newCheckError(diagnostics.CodeOperandMismatch, "unknown operand")
	}
}

func checkPartialExpr(pe ast.PartialExpr, vm *VariableManager) (typesystem.VariableType, error) {
	switch node := pe.(type) {
	case ast.Variable:
		return checkVariable(node, vm)
	case ast.FunctionCall:
		return checkFunctionCall(node, vm)
	case ast.If:
		return checkIf(node, vm)
	case ast.Lambda:
		return checkLambda(node, vm)
	case ast.Tuple:
		return checkTuple(node, vm)
	case ast.Block:
		return typesystem.VariableType{}, newCheckError(diagnostics.CodeUnimplemented, "Unimplemented")
	default:
		return typesystem.VariableType{}, newCheckError(diagnostics.CodeUnimplemented, "Unimplemented")
	}
}

func checkVariable(node ast.Variable, vm *VariableManager) (typesystem.VariableType, error) {
	if node.Expr.IsIdentifier() {
		vt, ok := vm.Lookup(node.Expr.Name)
		if !ok {
			return typesystem.VariableType{}, newCheckError(
				diagnostics.CodeUnknownVariable,
				"Cannot find variable: "+node.Expr.Name,
			)
		}
		return vt, nil
	}
	switch c := node.Expr.Constant.(type) {
	case ast.IntegerConstant:
		return typesystem.VariableType{Mutable: true, Info: typesystem.Int}, nil
	case ast.FloatConstant:
		return typesystem.VariableType{Mutable: true, Info: typesystem.Float}, nil
	case ast.StringConstant:
		return typesystem.VariableType{Mutable: true, Info: typesystem.String}, nil
	default:
		return typesystem.VariableType{}, newCheckError(diagnostics.CodeUnimplemented, fmt.Sprintf("unknown constant %T", c))
	}
}

func checkFunctionCall(node ast.FunctionCall, vm *VariableManager) (typesystem.VariableType, error) {
	callee, ok := vm.Lookup(node.Name)
	if !ok {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeUnknownVariable,
			"Cannot find variable: "+node.Name,
		)
	}
	fn, ok := callee.Info.(typesystem.FunctionType)
	if !ok {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeNotAFunction,
			fmt.Sprintf("%s is not a function", node.Name),
		)
	}
	if len(fn.Func.Params) != len(node.Params) {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeArity,
			fmt.Sprintf("%s expects %s, got %s", node.Name, display.Arity(len(fn.Func.Params)), display.Arity(len(node.Params))),
		)
	}
	for i, argExpr := range node.Params {
		argType, err := checkExpr(argExpr, vm)
		if err != nil {
			return typesystem.VariableType{}, err
		}
		if _, err := checkExpected(argType, fn.Func.Params[i]); err != nil {
			return typesystem.VariableType{}, err
		}
	}
	return fn.Func.Return, nil
}

func checkIf(node ast.If, vm *VariableManager) (typesystem.VariableType, error) {
	condType, err := checkExpr(&node.Cond, vm)
	if err != nil {
		return typesystem.VariableType{}, err
	}
	if !condType.Info.Equal(typesystem.Bool) {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeTypeMismatch,
			fmt.Sprintf("if condition must be Bool, found %s", condType.Info),
		)
	}
	mainType, err := checkExpr(&node.Main, vm)
	if err != nil {
		return typesystem.VariableType{}, err
	}
	if node.Else == nil {
		if !mainType.Info.Equal(typesystem.Empty()) {
			return typesystem.VariableType{}, newCheckError(diagnostics.CodeIfNoElse, "If without else must return empty")
		}
		return mainType, nil
	}
	elseType, err := checkExpr(node.Else, vm)
	if err != nil {
		return typesystem.VariableType{}, err
	}
	if !mainType.Info.Equal(elseType.Info) {
		return typesystem.VariableType{}, newCheckError(
			diagnostics.CodeIfArmsDisagree,
			fmt.Sprintf("if arms disagree: %s vs %s", mainType.Info, elseType.Info),
		)
	}
	return typesystem.VariableType{Mutable: mainType.Mutable && elseType.Mutable, Info: mainType.Info}, nil
}

func checkLambda(node ast.Lambda, vm *VariableManager) (typesystem.VariableType, error) {
	return checkLambdaNamed("", node, vm)
}

// checkLambdaNamed is checkLambda, additionally binding selfName (when
// non-empty) to the lambda's own FuncType alongside self_fn, for
// module-level named recursion. See checkExprNamed.
//
// The body is checked against a brand-new VariableManager, not a scope
// layered onto vm: a lambda's capture list is the only channel by which
// it may see anything from its enclosing scope (spec.md §9, "the
// checker uses it to ensure closures do not reach beyond their declared
// captures"). Looking up a capture's type is the one place the
// enclosing vm is still consulted; once resolved, the body scope is
// fully disconnected from it, mirroring the isolation
// evaluator.callActivation gives each call its own, brand-new
// VariableStack.
func checkLambdaNamed(selfName string, node ast.Lambda, vm *VariableManager) (typesystem.VariableType, error) {
	def := node.Def
	inner := NewVariableManager()

	for _, capture := range def.Closure {
		outer, ok := vm.Lookup(capture.Name)
		if !ok {
			return typesystem.VariableType{}, newCheckError(
				diagnostics.CodeUnknownVariable,
				"Cannot find variable: "+capture.Name,
			)
		}
		if capture.Mutable && !outer.Mutable {
			return typesystem.VariableType{}, newCheckError(
				diagnostics.CodeMutabilityReq,
				fmt.Sprintf("cannot capture %s as mutable: binding is not mutable", capture.Name),
			)
		}
		inner.Bind(capture.Name, typesystem.VariableType{Mutable: capture.Mutable, Info: outer.Info})
	}
	for _, param := range def.Parameters {
		inner.Bind(param.Name, param.VType)
	}
	fnType := typesystem.FunctionType{Func: def.FuncType()}
	inner.Bind(langconfig.SelfFnName, typesystem.VariableType{Mutable: false, Info: fnType})
	if selfName != "" {
		inner.Bind(selfName, typesystem.VariableType{Mutable: false, Info: fnType})
	}

	bodyType, err := checkExpr(def.Body, inner)
	if err != nil {
		return typesystem.VariableType{}, err
	}
	if _, err := checkExpected(bodyType, def.ReturnType); err != nil {
		return typesystem.VariableType{}, err
	}
	return typesystem.VariableType{Mutable: true, Info: fnType}, nil
}

func checkTuple(node ast.Tuple, vm *VariableManager) (typesystem.VariableType, error) {
	items := make([]typesystem.Type, len(node.Items))
	for i, it := range node.Items {
		t, err := checkExpr(it, vm)
		if err != nil {
			return typesystem.VariableType{}, err
		}
		items[i] = t.Info
	}
	return typesystem.VariableType{Mutable: false, Info: typesystem.TupleType{Items: items}}, nil
}

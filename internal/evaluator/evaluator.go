// Package evaluator is the tree-walking interpreter: it consumes a
// Module[Verified] and evaluates its variable definitions in order to
// populate a VariableStack of runtime values. It is a single-threaded,
// depth-first, left-to-right walk, polymorphic over a values.Backend.
package evaluator

import (
	"fmt"

	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/langconfig"
	"github.com/mira-lang/mira/internal/values"
)

// EvalModule evaluates module's variable definitions in declaration
// order against stack, binding each result cell under the variable's
// name in stack's module scope. The module is read-only thereafter.
func EvalModule(module ast.Module[ast.Verified], stack *VariableStack, backend values.Backend) error {
	for _, v := range module.Variables {
		cell, err := evalExprNamed(v.Name, v.Def.Value, stack, backend, 0)
		if err != nil {
			return err
		}
		stack.BindModule(v.Name, cell)
	}
	return nil
}

// evalExprNamed is EvalExpr for a module-level `let name = value;`. When
// value is a bare Lambda, name is bound inside the lambda's own
// activation to the same Func value as self_fn (see
// checker.checkExprNamed for why this is needed: each call gets a
// brand-new, otherwise-empty VariableStack, so without this a direct
// self-reference like `fib(n-1)` could never resolve name).
func evalExprNamed(name string, expr *ast.Expr, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	if lambda, ok := soleLambda(expr); ok {
		return evalLambdaNamed(name, lambda, stack, backend)
	}
	return EvalExpr(expr, stack, backend, depth)
}

func soleLambda(expr *ast.Expr) (ast.Lambda, bool) {
	if len(expr.Parts) != 1 {
		return ast.Lambda{}, false
	}
	lambda, ok := expr.Parts[0].(ast.Lambda)
	return lambda, ok
}

// EvalExpr evaluates a checked Expr against stack. If the expression has
// no operands, the first partial's cell is returned unmodified, sharing
// preserved; otherwise the folded value is a freshly created cell.
func EvalExpr(expr *ast.Expr, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	first, err := evalPartialExpr(expr.Parts[0], stack, backend, depth)
	if err != nil {
		return nil, err
	}
	if len(expr.Operands) == 0 {
		return first, nil
	}
	acc := first.Get()
	for i, op := range expr.Operands {
		rhsCell, err := evalPartialExpr(expr.Parts[i+1], stack, backend, depth)
		if err != nil {
			return nil, err
		}
		acc, err = calculate(acc, op, rhsCell.Get())
		if err != nil {
			return nil, err
		}
	}
	return values.NewCell(acc), nil
}

func evalPartialExpr(pe ast.PartialExpr, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	switch node := pe.(type) {
	case ast.Variable:
		return evalVariable(node, stack, backend)
	case ast.FunctionCall:
		return evalFunctionCall(node, stack, backend, depth)
	case ast.If:
		return evalIf(node, stack, backend, depth)
	case ast.Lambda:
		return evalLambda(node, stack, backend)
	case ast.Tuple:
		return evalTuple(node, stack, backend, depth)
	case ast.Block:
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeRuntimeUnimpl, "Block is unimplemented")
	default:
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeRuntimeUnimpl, fmt.Sprintf("unimplemented partial expr %T", pe))
	}
}

func evalVariable(node ast.Variable, stack *VariableStack, backend values.Backend) (*values.Cell, error) {
	if node.Expr.IsIdentifier() {
		cell, ok := stack.Find(node.Expr.Name)
		if !ok {
			return nil, diagnostics.NewRuntimeError(diagnostics.CodeVariableNotFound, "variable not found: "+node.Expr.Name)
		}
		return cell, nil
	}
	obj, err := constantToDataObj(node.Expr.Constant, backend)
	if err != nil {
		return nil, err
	}
	return values.NewCell(obj), nil
}

func evalFunctionCall(node ast.FunctionCall, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	calleeCell, ok := stack.Find(node.Name)
	if !ok {
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeVariableNotFound, "variable not found: "+node.Name)
	}
	fn, ok := calleeCell.Get().(values.FuncObj)
	if !ok {
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeNotCallable, "called a non-function: "+node.Name)
	}
	if depth+1 > langconfig.MaxCallDepth {
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeRuntimeUnimpl, "maximum call depth exceeded")
	}

	// Arguments are evaluated left-to-right, eagerly, before the call.
	args := make([]*values.Cell, len(node.Params))
	for i, paramExpr := range node.Params {
		argCell, err := EvalExpr(paramExpr, stack, backend, depth)
		if err != nil {
			return nil, err
		}
		args[i] = argCell
	}
	return fn.Call(args, depth+1)
}

func evalIf(node ast.If, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	condCell, err := EvalExpr(&node.Cond, stack, backend, depth)
	if err != nil {
		return nil, err
	}
	cond, ok := condCell.Get().(values.BoolObj)
	if !ok {
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeNotBool, "if condition is not a Bool")
	}
	if cond.IsTrue() {
		return EvalExpr(&node.Main, stack, backend, depth)
	}
	if node.Else != nil {
		return EvalExpr(node.Else, stack, backend, depth)
	}
	return values.NewCell(backend.NewEmpty()), nil
}

// evalLambda snapshots each declared closure name by looking it up in
// the current stack and storing the shared cell (not a copy) in the
// function's closure map, then builds a Func value over the body.
func evalLambda(node ast.Lambda, stack *VariableStack, backend values.Backend) (*values.Cell, error) {
	return evalLambdaNamed("", node, stack, backend)
}

// evalLambdaNamed is evalLambda, additionally binding selfName (when
// non-empty) to the function's own Func value inside its activation,
// alongside self_fn. See evalExprNamed.
func evalLambdaNamed(selfName string, node ast.Lambda, stack *VariableStack, backend values.Backend) (*values.Cell, error) {
	def := node.Def

	closure := make(map[string]*values.Cell, len(def.Closure))
	for _, capture := range def.Closure {
		cell, ok := stack.Find(capture.Name)
		if !ok {
			return nil, diagnostics.NewRuntimeError(diagnostics.CodeVariableNotFound, "variable not found: "+capture.Name)
		}
		closure[capture.Name] = cell
	}
	paramNames := make([]string, len(def.Parameters))
	for i, p := range def.Parameters {
		paramNames[i] = p.Name
	}
	body := def.Body

	// fnObj is captured by invoke so the function can bind self_fn to
	// itself; it is only read once invoke actually runs, always after
	// the assignment below completes.
	var fnObj values.FuncObj
	invoke := func(args []*values.Cell, depth int) (*values.Cell, error) {
		return callActivation(body, paramNames, closure, args, fnObj, backend, depth, selfName)
	}
	fnObj = backend.NewFunc(paramNames, invoke)
	return values.NewCell(fnObj), nil
}

// callActivation implements the backend call convention: push a fresh
// scope on a new, empty VariableStack, bind self_fn, positional
// parameters and captured cells, then evaluate the body in that scope.
// Each activation gets its own VariableStack — only depth crosses the
// activation boundary, so MaxCallDepth bounds true recursion depth.
func callActivation(
	body *ast.Expr,
	paramNames []string,
	closure map[string]*values.Cell,
	args []*values.Cell,
	self values.FuncObj,
	backend values.Backend,
	depth int,
	selfName string,
) (*values.Cell, error) {
	stack := NewVariableStack()
	stack.Push()
	defer stack.Pop()

	stack.Bind(langconfig.SelfFnName, values.NewCell(self))
	if selfName != "" {
		stack.Bind(selfName, values.NewCell(self))
	}
	for i, name := range paramNames {
		stack.Bind(name, args[i])
	}
	for name, cell := range closure {
		stack.Bind(name, cell)
	}
	return EvalExpr(body, stack, backend, depth)
}

func evalTuple(node ast.Tuple, stack *VariableStack, backend values.Backend, depth int) (*values.Cell, error) {
	items := make([]*values.Cell, len(node.Items))
	for i, it := range node.Items {
		cell, err := EvalExpr(it, stack, backend, depth)
		if err != nil {
			return nil, err
		}
		items[i] = cell
	}
	return values.NewCell(values.TupleObj{Items: items}), nil
}

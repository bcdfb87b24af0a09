package evaluator

import (
	"fmt"

	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/values"
)

// calculate implements the fold's binary step. Per the checker's
// soundness guarantee, these are the only combinations a verified
// module ever drives through here (checked dynamically anyway, since
// the evaluator does not trust its input beyond "came from Verify").
//
// The checker accepts Float arithmetic symmetrically with Int (open
// question #2 in the design notes), so both are implemented here rather
// than only Int.
func calculate(lhs values.DataObj, op ast.Operand, rhs values.DataObj) (values.DataObj, error) {
	switch l := lhs.(type) {
	case values.IntObj:
		r, ok := rhs.(values.IntObj)
		if !ok {
			return nil, badOperand(lhs, op, rhs)
		}
		switch op {
		case ast.Plus:
			return l.Plus(r), nil
		case ast.Minus:
			return l.Minus(r), nil
		case ast.Lt:
			return l.Lt(r), nil
		}
	case values.FloatObj:
		r, ok := rhs.(values.FloatObj)
		if !ok {
			return nil, badOperand(lhs, op, rhs)
		}
		switch op {
		case ast.Plus:
			return l.Plus(r), nil
		case ast.Minus:
			return l.Minus(r), nil
		case ast.Lt:
			return l.Lt(r), nil
		}
	}
	return nil, badOperand(lhs, op, rhs)
}

func badOperand(lhs values.DataObj, op ast.Operand, rhs values.DataObj) error {
	return diagnostics.NewRuntimeError(
		diagnostics.CodeBadOperand,
		fmt.Sprintf("Can not calculate %s %s %s", lhs.Kind(), op, rhs.Kind()),
	)
}

func constantToDataObj(c ast.ConstantValue, backend values.Backend) (values.DataObj, error) {
	switch v := c.(type) {
	case ast.IntegerConstant:
		return backend.NewInt(v.Value), nil
	case ast.FloatConstant:
		return backend.NewFloat(v.Value), nil
	case ast.StringConstant:
		return backend.NewString(v.Value), nil
	default:
		return nil, diagnostics.NewRuntimeError(diagnostics.CodeRuntimeUnimpl, fmt.Sprintf("unknown constant variant %T", c))
	}
}

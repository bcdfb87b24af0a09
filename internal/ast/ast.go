// Package ast is the shared, immutable-by-construction data model for the
// language: expressions, function definitions and modules, parameterized
// by a state tag distinguishing an Unverified module from a Verified one.
package ast

import (
	"github.com/google/uuid"

	"github.com/mira-lang/mira/internal/typesystem"
)

// Operand is one of the flat, left-associative binary operands the
// grammar supports. Precedence is intentionally not modeled: Plus,
// Minus and Lt all sit at the same level.
type Operand int

const (
	Plus Operand = iota
	Minus
	Lt
)

func (o Operand) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Lt:
		return "<"
	default:
		return "?"
	}
}

// ConstantValue is the tagged variant of literal values a Variable
// PartialExpr can hold.
type ConstantValue interface {
	constantValue()
}

type IntegerConstant struct{ Value int32 }
type FloatConstant struct{ Value float32 }
type StringConstant struct{ Value string }

func (IntegerConstant) constantValue() {}
func (FloatConstant) constantValue()   {}
func (StringConstant) constantValue()  {}

// VariableExpr is either a reference to a name in scope or a literal
// constant value.
type VariableExpr struct {
	// Name is set when this is an identifier reference; Constant is set
	// (and Name is empty) when this is a literal.
	Name     string
	Constant ConstantValue
}

// IsIdentifier reports whether this VariableExpr names a binding rather
// than carrying a literal.
func (v VariableExpr) IsIdentifier() bool { return v.Constant == nil }

// PartialExpr is the tagged variant of the terms an Expr folds over.
type PartialExpr interface {
	partialExpr()
}

// Variable wraps a VariableExpr: either an identifier reference or a
// literal ConstantValue.
type Variable struct {
	Expr VariableExpr
}

// FunctionCall calls, by name, a Func value currently in scope.
type FunctionCall struct {
	Name   string
	Params []*Expr
}

// If is a conditional expression. Else is nil when the source omitted
// the else-branch (in which case Main must check to the empty type).
type If struct {
	Cond Expr
	Main Expr
	Else *Expr
}

// Lambda wraps an anonymous function definition.
type Lambda struct {
	Def *FunctionDef
}

// Tuple is a parsed (but, per the evaluator, only partially evaluated)
// N-ary product expression.
type Tuple struct {
	Items []*Expr
}

// Block is a reserved shape for a future sequence-of-expressions form.
// Neither the checker nor the evaluator implement it yet.
type Block struct{}

func (Variable) partialExpr()     {}
func (FunctionCall) partialExpr() {}
func (If) partialExpr()           {}
func (Lambda) partialExpr()       {}
func (Tuple) partialExpr()        {}
func (Block) partialExpr()        {}

// Expr is a non-empty sequence of PartialExpr joined by left-associative
// Operands: len(Parts) == len(Operands)+1.
type Expr struct {
	Parts    []PartialExpr
	Operands []Operand
}

// Parameter is one positional parameter of a FunctionDef.
type Parameter struct {
	Name  string
	VType typesystem.VariableType
}

// ClosureCapture names a variable a Lambda captures from its enclosing
// scope, along with the mutability it requests on that capture.
type ClosureCapture struct {
	Name    string
	Mutable bool
}

// FunctionDef is the shared shape of both `let`-bound functions and
// anonymous Lambdas.
type FunctionDef struct {
	Parameters []Parameter
	Closure    []ClosureCapture
	ReturnType typesystem.VariableType
	Body       *Expr
}

// FuncType derives this definition's FuncType, e.g. for the type of a
// Lambda PartialExpr.
func (f *FunctionDef) FuncType() typesystem.FuncType {
	params := make([]typesystem.VariableType, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.VType
	}
	return typesystem.FuncType{Params: params, Return: f.ReturnType}
}

// State tags a Module as either Unverified (fresh from the parser) or
// Verified (every v_type filled in, every sub-expression checked).
type State interface {
	moduleState()
}

type Unverified struct{}
type Verified struct{}

func (Unverified) moduleState() {}
func (Verified) moduleState()   {}

// VariableDef is a binding's declared/inferred type plus its
// initializing expression.
type VariableDef[S State] struct {
	Value *Expr
	VType typesystem.VariableType
}

// NamedVariableDef pairs a binding's name with its definition, preserving
// declaration order.
type NamedVariableDef[S State] struct {
	Name string
	Def  *VariableDef[S]
}

// Module is an ordered sequence of named variable definitions. S tags
// whether the module has been through verify().
type Module[S State] struct {
	ID        uuid.UUID
	Variables []NamedVariableDef[S]
}

// Lookup returns the definition bound to name, in declaration order
// (later definitions shadow earlier ones of the same name).
func (m *Module[S]) Lookup(name string) (*VariableDef[S], bool) {
	var found *VariableDef[S]
	for _, v := range m.Variables {
		if v.Name == name {
			found = v.Def
		}
	}
	return found, found != nil
}

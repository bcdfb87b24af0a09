// Package values is the pluggable value backend: the capability set
// describing the runtime representation of Int, Float, String, Bool,
// Func and Empty, and their primitive operations. The evaluator is
// polymorphic over this backend through the Backend interface; Basic
// (basic.go) is the reference implementation.
package values

import "github.com/mira-lang/mira/internal/typesystem"

// Kind tags which of the six DataObj variants a value is.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindFunc
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindFunc:
		return "Func"
	case KindEmpty:
		return "Empty"
	case kindTuple:
		return "Tuple"
	default:
		return "?"
	}
}

// DataObj is the tagged variant every runtime value implements.
type DataObj interface {
	Kind() Kind
	Inspect() string
	RuntimeType() typesystem.Type
}

// IntObj is the Int capability: create, plus, minus, lt.
type IntObj interface {
	DataObj
	Plus(IntObj) IntObj
	Minus(IntObj) IntObj
	Lt(IntObj) BoolObj
	Int32() int32
}

// FloatObj is the Float capability.
type FloatObj interface {
	DataObj
	Plus(FloatObj) FloatObj
	Minus(FloatObj) FloatObj
	Lt(FloatObj) BoolObj
	Float32() float32
}

// StringObj is the String capability.
type StringObj interface {
	DataObj
	Text() string
}

// BoolObj is the Bool capability.
type BoolObj interface {
	DataObj
	IsTrue() bool
}

// EmptyObj is the unit-value capability.
type EmptyObj interface {
	DataObj
}

// FuncInvoke is the call convention a Func value runs: push a fresh
// activation, bind self_fn/parameters/closure, evaluate the body. The
// evaluator builds this closure per §4.3; Backend.NewFunc only stores
// and exposes it. depth is the depth of the activation being entered
// (the evaluator passes its own depth plus one), threaded through so
// recursive calls can be bounded against
// runaway Go-stack growth.
type FuncInvoke func(args []*Cell, depth int) (*Cell, error)

// FuncObj is the Func capability.
type FuncObj interface {
	DataObj
	Call(args []*Cell, depth int) (*Cell, error)
}

// Backend is the capability bundle the evaluator is polymorphic over.
// An implementation is free to reuse platform primitives directly.
type Backend interface {
	NewInt(int32) IntObj
	NewFloat(float32) FloatObj
	NewString(string) StringObj
	NewBool(bool) BoolObj
	NewEmpty() EmptyObj
	NewFunc(params []string, invoke FuncInvoke) FuncObj
}

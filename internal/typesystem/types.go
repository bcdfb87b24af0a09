// Package typesystem implements the structural type model shared by the
// checker and the evaluator: TypeInfo, FuncType and VariableType.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface every TypeInfo variant implements.
type Type interface {
	String() string
	Equal(other Type) bool
}

// StructType is a nominal/primitive type identified by name, e.g. "Int".
type StructType struct {
	Name string
}

func (s StructType) String() string { return s.Name }

func (s StructType) Equal(other Type) bool {
	o, ok := other.(StructType)
	return ok && o.Name == s.Name
}

// TupleType is a fixed-arity product of types, by position. The empty
// tuple (no items) doubles as the unit type.
type TupleType struct {
	Items []Type
}

func (t TupleType) String() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TupleType) Equal(other Type) bool {
	o, ok := other.(TupleType)
	if !ok || len(o.Items) != len(t.Items) {
		return false
	}
	for i, it := range t.Items {
		if !it.Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether t is the unit type, Tuple([]).
func (t TupleType) IsEmpty() bool { return len(t.Items) == 0 }

// Empty is the unit type, Tuple([]).
func Empty() TupleType { return TupleType{Items: nil} }

// FunctionType is the type of a function value: its parameter types
// (with mutability) and its return type.
type FunctionType struct {
	Func FuncType
}

func (f FunctionType) String() string { return f.Func.String() }

func (f FunctionType) Equal(other Type) bool {
	o, ok := other.(FunctionType)
	return ok && f.Func.Equal(o.Func)
}

// UnknownType only ever appears as a requested type during checking; it
// must never appear in a verified module.
type UnknownType struct{}

func (UnknownType) String() string         { return "?" }
func (UnknownType) Equal(other Type) bool  { _, ok := other.(UnknownType); return ok }

// IsUnknown reports whether t is the Unknown marker type.
func IsUnknown(t Type) bool {
	_, ok := t.(UnknownType)
	return ok
}

// FuncType is a function's parameter types (including per-parameter
// mutability) and its return type.
type FuncType struct {
	Params []VariableType
	Return VariableType
}

func (f FuncType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "<" + strings.Join(parts, ", ") + ">:" + f.Return.String()
}

func (f FuncType) Equal(other FuncType) bool {
	if len(f.Params) != len(other.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	return f.Return.Equal(other.Return)
}

// VariableType pairs a binding's mutability with the structural shape of
// its value. Mutability is a property of the binding, not of the
// TypeInfo itself: two VariableTypes are equal only when both their
// mutability and their Info compare equal.
type VariableType struct {
	Mutable bool
	Info    Type
}

func (v VariableType) String() string {
	if v.Mutable {
		return fmt.Sprintf("mut %s", v.Info.String())
	}
	return v.Info.String()
}

func (v VariableType) Equal(other VariableType) bool {
	return v.Mutable == other.Mutable && v.Info.Equal(other.Info)
}

// Unknown builds a requested VariableType whose TypeInfo is Unknown.
func Unknown(mutable bool) VariableType {
	return VariableType{Mutable: mutable, Info: UnknownType{}}
}

// Well-known primitive struct types.
var (
	Int    = StructType{Name: "Int"}
	Float  = StructType{Name: "Float"}
	String = StructType{Name: "String"}
	Bool   = StructType{Name: "Bool"}
)

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool {
	s, ok := t.(StructType)
	return ok && (s.Name == "Int" || s.Name == "Float")
}

package values

import (
	"strings"

	"github.com/mira-lang/mira/internal/display"
	"github.com/mira-lang/mira/internal/typesystem"
)

// Basic is the reference value backend: plain Go numerics and strings,
// boxed behind the capability interfaces. It reuses platform primitives
// directly, the way the spec's backend notes say an implementation may.
type Basic struct{}

func (Basic) NewInt(v int32) IntObj         { return basicInt{v} }
func (Basic) NewFloat(v float32) FloatObj   { return basicFloat{v} }
func (Basic) NewString(v string) StringObj  { return basicString{v} }
func (Basic) NewBool(v bool) BoolObj        { return basicBool{v} }
func (Basic) NewEmpty() EmptyObj            { return basicEmpty{} }
func (Basic) NewFunc(params []string, invoke FuncInvoke) FuncObj {
	return &basicFunc{params: params, invoke: invoke}
}

type basicInt struct{ v int32 }

func (b basicInt) Kind() Kind                     { return KindInt }
func (b basicInt) Inspect() string                { return display.Int(b.v) }
func (b basicInt) RuntimeType() typesystem.Type    { return typesystem.Int }
func (b basicInt) Int32() int32                   { return b.v }
func (b basicInt) Plus(other IntObj) IntObj       { return basicInt{b.v + other.Int32()} }
func (b basicInt) Minus(other IntObj) IntObj      { return basicInt{b.v - other.Int32()} }
func (b basicInt) Lt(other IntObj) BoolObj        { return basicBool{b.v < other.Int32()} }

type basicFloat struct{ v float32 }

func (b basicFloat) Kind() Kind                  { return KindFloat }
func (b basicFloat) Inspect() string             { return display.Float(b.v) }
func (b basicFloat) RuntimeType() typesystem.Type { return typesystem.Float }
func (b basicFloat) Float32() float32            { return b.v }
func (b basicFloat) Plus(other FloatObj) FloatObj { return basicFloat{b.v + other.Float32()} }
func (b basicFloat) Minus(other FloatObj) FloatObj { return basicFloat{b.v - other.Float32()} }
func (b basicFloat) Lt(other FloatObj) BoolObj   { return basicBool{b.v < other.Float32()} }

type basicString struct{ v string }

func (b basicString) Kind() Kind                  { return KindString }
func (b basicString) Inspect() string             { return display.String(b.v) }
func (b basicString) RuntimeType() typesystem.Type { return typesystem.String }
func (b basicString) Text() string                { return b.v }

type basicBool struct{ v bool }

func (b basicBool) Kind() Kind { return KindBool }
func (b basicBool) Inspect() string {
	if b.v {
		return "true"
	}
	return "false"
}
func (b basicBool) RuntimeType() typesystem.Type { return typesystem.Bool }
func (b basicBool) IsTrue() bool                 { return b.v }

type basicEmpty struct{}

func (basicEmpty) Kind() Kind                  { return KindEmpty }
func (basicEmpty) Inspect() string             { return "()" }
func (basicEmpty) RuntimeType() typesystem.Type { return typesystem.Empty() }

type basicFunc struct {
	params []string
	invoke FuncInvoke
}

func (f *basicFunc) Kind() Kind { return KindFunc }
func (f *basicFunc) Inspect() string {
	return "<fn(" + strings.Join(f.params, ", ") + ")>"
}
func (f *basicFunc) RuntimeType() typesystem.Type {
	// The backend does not retain the checked FuncType; callers that
	// need it read it from the declaration's VariableType instead.
	return typesystem.UnknownType{}
}
func (f *basicFunc) Call(args []*Cell, depth int) (*Cell, error) { return f.invoke(args, depth) }

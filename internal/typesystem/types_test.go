package typesystem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructTypeEqual(t *testing.T) {
	cases := []struct {
		name string
		a    Type
		b    Type
		want bool
	}{
		{"same struct", Int, Int, true},
		{"different struct", Int, Float, false},
		{"struct vs tuple", Int, Empty(), false},
		{"empty tuples equal", Empty(), TupleType{}, true},
		{"tuples by position", TupleType{Items: []Type{Int, String}}, TupleType{Items: []Type{Int, String}}, true},
		{"tuples differ", TupleType{Items: []Type{Int, String}}, TupleType{Items: []Type{String, Int}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.a.Equal(c.b))
		})
	}
}

func TestVariableTypeEqual(t *testing.T) {
	mutInt := VariableType{Mutable: true, Info: Int}
	nonMutInt := VariableType{Mutable: false, Info: Int}

	require.True(t, mutInt.Equal(VariableType{Mutable: true, Info: Int}))
	require.False(t, mutInt.Equal(nonMutInt), "mutability participates in equality")
	require.False(t, nonMutInt.Equal(VariableType{Mutable: false, Info: Float}))
}

func TestFuncTypeEqual(t *testing.T) {
	f1 := FuncType{
		Params: []VariableType{{Mutable: false, Info: Int}},
		Return: VariableType{Mutable: true, Info: Int},
	}
	f2 := FuncType{
		Params: []VariableType{{Mutable: false, Info: Int}},
		Return: VariableType{Mutable: true, Info: Int},
	}
	f3 := FuncType{
		Params: []VariableType{{Mutable: true, Info: Int}},
		Return: VariableType{Mutable: true, Info: Int},
	}

	require.True(t, f1.Equal(f2))
	require.False(t, f1.Equal(f3))
}

func TestIsNumeric(t *testing.T) {
	require.True(t, IsNumeric(Int))
	require.True(t, IsNumeric(Float))
	require.False(t, IsNumeric(String))
	require.False(t, IsNumeric(Empty()))
}

func TestUnknownNeverEqualsConcrete(t *testing.T) {
	require.True(t, IsUnknown(UnknownType{}))
	require.False(t, IsUnknown(Int))
	require.False(t, UnknownType{}.Equal(Int))
}

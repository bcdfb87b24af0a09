package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicIntArithmetic(t *testing.T) {
	b := Basic{}
	five := b.NewInt(5)
	three := b.NewInt(3)

	require.Equal(t, int32(8), five.Plus(three).Int32())
	require.Equal(t, int32(2), five.Minus(three).Int32())
	require.False(t, five.Lt(three).IsTrue())
	require.True(t, three.Lt(five).IsTrue())
}

func TestBasicFloatArithmetic(t *testing.T) {
	b := Basic{}
	a := b.NewFloat(1.5)
	c := b.NewFloat(0.5)

	require.InDelta(t, 2.0, float64(a.Plus(c).Float32()), 1e-6)
	require.InDelta(t, 1.0, float64(a.Minus(c).Float32()), 1e-6)
	require.True(t, c.Lt(a).IsTrue())
}

func TestBasicFuncCall(t *testing.T) {
	b := Basic{}
	fn := b.NewFunc([]string{"x"}, func(args []*Cell, depth int) (*Cell, error) {
		return args[0], nil
	})
	arg := NewCell(b.NewInt(42))
	result, err := fn.Call([]*Cell{arg}, 0)
	require.NoError(t, err)
	require.Equal(t, arg, result, "function call convention shares the argument cell")
}

func TestCellSharing(t *testing.T) {
	b := Basic{}
	c := NewCell(b.NewInt(1))
	alias := c
	alias.Set(b.NewInt(2))
	require.Equal(t, int32(2), c.Get().(IntObj).Int32(), "two holders of the same cell observe the same mutation")
}

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorOperations(t *testing.T) {
	a := New(3, 4)
	b := New(1, 2)

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Vector{X: 4, Y: 6}, a.Add(b))
	})

	t.Run("Subtract", func(t *testing.T) {
		assert.Equal(t, Vector{X: 2, Y: 2}, a.Subtract(b))
	})

	t.Run("ScaleBy", func(t *testing.T) {
		assert.Equal(t, Vector{X: 6, Y: 8}, a.ScaleBy(2))
		assert.Equal(t, Vector{X: -1.5, Y: -2}, a.ScaleBy(-0.5))
	})

	t.Run("Length", func(t *testing.T) {
		assert.Equal(t, 5.0, a.Length())
		assert.Equal(t, 0.0, Vector{}.Length())
	})

	t.Run("OperandsUnchanged", func(t *testing.T) {
		_ = a.Add(b).ScaleBy(10).Normalize()
		assert.Equal(t, Vector{X: 3, Y: 4}, a)
		assert.Equal(t, Vector{X: 1, Y: 2}, b)
	})
}

func TestVectorLengthExtremeComponents(t *testing.T) {
	big := New(1e200, 1e200)
	assert.False(t, math.IsInf(big.Length(), 0), "hypot should not overflow")
	assert.InDelta(t, math.Sqrt2, big.Length()/1e200, 1e-12)

	tiny := New(3e-200, 4e-200)
	assert.InDelta(t, 5.0, tiny.Length()/1e-200, 1e-9)
}

func TestVectorAddSubtractRoundTrip(t *testing.T) {
	cases := []struct{ a, b Vector }{
		{New(0, 0), New(0, 0)},
		{New(1.25, -7.5), New(3, 9)},
		{New(-1e6, 1e-3), New(0.1, 0.2)},
		{New(19.5, 9.5), New(-0.333, 0.777)},
	}
	for _, tc := range cases {
		got := tc.a.Add(tc.b).Subtract(tc.b)
		assert.True(t, got.ApproxEqual(tc.a), "round trip of %v via %v = %v", tc.a, tc.b, got)
	}
}

func TestVectorNormalize(t *testing.T) {
	for _, v := range []Vector{New(1, 0), New(3, 4), New(-2, 7), New(1e-9, 0), New(1e150, -1e150)} {
		assert.InDelta(t, 1.0, v.Normalize().Length(), Epsilon, "normalize %v", v)
	}

	n := New(0, -5).Normalize()
	assert.True(t, n.ApproxEqual(New(0, -1)))
}

func TestVectorNormalizeZero(t *testing.T) {
	n := Vector{}.Normalize()
	assert.Equal(t, Vector{}, n)
	assert.True(t, n.IsFinite())

	_, err := Vector{}.NormalizeChecked()
	require.ErrorIs(t, err, ErrZeroLength)

	u, err := New(0, 2).NormalizeChecked()
	require.NoError(t, err)
	assert.Equal(t, New(0, 1), u)
}

func TestVectorNonFinitePropagates(t *testing.T) {
	v := New(math.NaN(), 1)
	assert.False(t, v.IsFinite())
	assert.False(t, v.Add(New(1, 1)).IsFinite())
	assert.False(t, New(math.Inf(1), 0).IsFinite())
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, New(1, 1).ApproxEqual(New(1+5e-8, 1-5e-8)))
	assert.False(t, New(1, 1).ApproxEqual(New(1+2e-7, 1)))
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(nil))
	assert.Equal(t, 0.0, PathLength([]Vector{New(4, 4)}))
	assert.InDelta(t, 12.0, PathLength([]Vector{New(0, 0), New(3, 4), New(3, 11)}), Epsilon)
}

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2_Delta(t *testing.T) {
	b := NewBox2(1.0, 2.0, 5.0, 10.0)

	assert.Equal(t, Vec2[float64]{4, 8}, b.Delta())
}

func TestBox2_Expand(t *testing.T) {
	b := EmptyBox2()

	b = b.Expand(Vec2[float64]{2, 3})
	assert.Equal(t, Vec2[float64]{2, 3}, b.Min)
	assert.Equal(t, Vec2[float64]{2, 3}, b.Max)

	b = b.Expand(Vec2[float64]{-1, 7})
	assert.Equal(t, Vec2[float64]{-1, 3}, b.Min)
	assert.Equal(t, Vec2[float64]{2, 7}, b.Max)
}

func TestBox2_Union(t *testing.T) {
	a := NewBox2(0.0, 0.0, 2.0, 2.0)
	b := NewBox2(1.0, -1.0, 3.0, 1.0)

	u := a.Union(b)
	assert.Equal(t, Vec2[float64]{0, -1}, u.Min)
	assert.Equal(t, Vec2[float64]{3, 2}, u.Max)

	// Union with an empty box leaves the operand unchanged.
	u = a.Union(EmptyBox2())
	assert.Equal(t, a, u)
}

func TestBox2_Contains(t *testing.T) {
	b := NewBox2(0.0, 0.0, 10.0, 5.0)

	tests := []struct {
		name string
		p    Vec2[float64]
		want bool
	}{
		{"interior", Vec2[float64]{5, 2}, true},
		{"min_corner", Vec2[float64]{0, 0}, true},
		{"max_corner", Vec2[float64]{10, 5}, true},
		{"outside_x", Vec2[float64]{11, 2}, false},
		{"outside_y", Vec2[float64]{5, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p))
		})
	}
}

func TestBox4_ExpandChannel(t *testing.T) {
	b := EmptyBox4()
	assert.False(t, b.HasChannel(0))

	b = b.ExpandChannel(0, 3)
	b = b.ExpandChannel(0, -2)
	assert.True(t, b.HasChannel(0))
	assert.Equal(t, -2.0, b.Min[0])
	assert.Equal(t, 3.0, b.Max[0])

	// Other channels stay empty.
	assert.False(t, b.HasChannel(1))
	assert.True(t, math.IsInf(b.Min[1], 1))
}

func TestBox4_Union(t *testing.T) {
	a := EmptyBox4().ExpandChannel(0, 1).ExpandChannel(0, 4)
	b := EmptyBox4().ExpandChannel(0, -1).ExpandChannel(2, 10)

	u := a.Union(b)
	assert.Equal(t, -1.0, u.Min[0])
	assert.Equal(t, 4.0, u.Max[0])
	assert.True(t, u.HasChannel(2))
	assert.Equal(t, 10.0, u.Min[2])
	assert.False(t, u.HasChannel(1))
}

func TestBox4_XY(t *testing.T) {
	b := EmptyBox4().
		ExpandChannel(0, 1).ExpandChannel(0, 5).
		ExpandChannel(1, -3).ExpandChannel(1, 3)

	xy := b.XY()
	assert.Equal(t, Vec2[float64]{1, -3}, xy.Min)
	assert.Equal(t, Vec2[float64]{5, 3}, xy.Max)
}

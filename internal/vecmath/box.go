package vecmath

import "math"

// Box2 is an axis-aligned bounding rectangle, used both for on-screen pixel
// areas and for data-space limits.
type Box2[T Number] struct {
	Min Vec2[T]
	Max Vec2[T]
}

// NewBox2 returns the box spanning (minX, minY) to (maxX, maxY).
func NewBox2[T Number](minX, minY, maxX, maxY T) Box2[T] {
	return Box2[T]{Min: Vec2[T]{minX, minY}, Max: Vec2[T]{maxX, maxY}}
}

// EmptyBox2 returns a box with inverted infinite limits. Expanding it with
// any point produces that point's bounds; an axis left inverted (Max < Min)
// signals that no value was ever observed.
func EmptyBox2() Box2[float64] {
	return Box2[float64]{
		Min: Vec2[float64]{math.Inf(1), math.Inf(1)},
		Max: Vec2[float64]{math.Inf(-1), math.Inf(-1)},
	}
}

// Delta returns Max - Min per axis.
func (b Box2[T]) Delta() Vec2[T] {
	return b.Max.Sub(b.Min)
}

// Expand grows the box to include the point p.
func (b Box2[T]) Expand(p Vec2[T]) Box2[T] {
	for i := range p {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Union returns the smallest box containing both b and o. An empty box is
// the identity element.
func (b Box2[T]) Union(o Box2[T]) Box2[T] {
	for i := range b.Min {
		if o.Min[i] < b.Min[i] {
			b.Min[i] = o.Min[i]
		}
		if o.Max[i] > b.Max[i] {
			b.Max[i] = o.Max[i]
		}
	}
	return b
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box2[T]) Contains(p Vec2[T]) bool {
	return b.Min.Le(p).All() && p.Le(b.Max).All()
}

// Box4 is a bounding box over four channels, used for per-aesthetic data
// limits (x, y, color, size). A channel with Max < Min has no observed data.
type Box4 struct {
	Min Vec4[float64]
	Max Vec4[float64]
}

// EmptyBox4 returns a Box4 with all four channels inverted.
func EmptyBox4() Box4 {
	return Box4{
		Min: Vec4[float64]{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vec4[float64]{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// Delta returns Max - Min per channel.
func (b Box4) Delta() Vec4[float64] {
	return b.Max.Sub(b.Min)
}

// ExpandChannel grows channel i to include value v.
func (b Box4) ExpandChannel(i int, v float64) Box4 {
	if v < b.Min[i] {
		b.Min[i] = v
	}
	if v > b.Max[i] {
		b.Max[i] = v
	}
	return b
}

// Union returns the per-channel union of b and o. Channels that are empty in
// one box take the other box's bounds.
func (b Box4) Union(o Box4) Box4 {
	for i := range b.Min {
		if o.Min[i] < b.Min[i] {
			b.Min[i] = o.Min[i]
		}
		if o.Max[i] > b.Max[i] {
			b.Max[i] = o.Max[i]
		}
	}
	return b
}

// HasChannel reports whether channel i has observed data.
func (b Box4) HasChannel(i int) bool {
	return b.Max[i] >= b.Min[i]
}

// XY returns the x/y channels of the limits as a Box2.
func (b Box4) XY() Box2[float64] {
	return Box2[float64]{
		Min: Vec2[float64]{b.Min[0], b.Min[1]},
		Max: Vec2[float64]{b.Max[0], b.Max[1]},
	}
}

// Package vecmath provides small fixed-size numeric vectors for plot geometry.
//
// The three sizes used by the plotting code are concrete generic types
// (Vec2, Vec3, Vec4) backed by arrays, so the dimension is fixed at compile
// time and mixed-size arithmetic cannot be expressed. The element-wise loops
// are shared generic helpers over slices, which keeps the per-size methods
// thin wrappers.
package vecmath

import "math"

// Number is the type constraint for vector elements.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Fixed-size vectors. Values, not references: methods return new vectors.
type (
	// Vec2 is a 2-element vector, used for pixel and data-space coordinates.
	Vec2[T Number] [2]T

	// Vec3 is a 3-element vector. The only size with a cross product.
	Vec3[T Number] [3]T

	// Vec4 is a 4-element vector, used for per-row display values and
	// per-aesthetic-channel limits (x, y, color, size).
	Vec4[T Number] [4]T
)

// Boolean vectors produced by the element-wise comparisons.
type (
	Bool2 [2]bool
	Bool3 [3]bool
	Bool4 [4]bool
)

// Element-wise helpers shared by all sizes. The methods below pass slices of
// their (copied) array receiver, so the mutation stays local to the copy.

func ewAdd[T Number](dst, a []T) {
	for i := range dst {
		dst[i] += a[i]
	}
}

func ewSub[T Number](dst, a []T) {
	for i := range dst {
		dst[i] -= a[i]
	}
}

func ewMul[T Number](dst, a []T) {
	for i := range dst {
		dst[i] *= a[i]
	}
}

func ewDiv[T Number](dst, a []T) {
	for i := range dst {
		dst[i] /= a[i]
	}
}

func ewAddS[T Number](dst []T, k T) {
	for i := range dst {
		dst[i] += k
	}
}

func ewSubS[T Number](dst []T, k T) {
	for i := range dst {
		dst[i] -= k
	}
}

func ewMulS[T Number](dst []T, k T) {
	for i := range dst {
		dst[i] *= k
	}
}

func ewDivS[T Number](dst []T, k T) {
	for i := range dst {
		dst[i] /= k
	}
}

func ewNeg[T Number](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// Comparison ops used with the cmpN helpers.

func opEq[T Number](x, y T) bool { return x == y }
func opNe[T Number](x, y T) bool { return x != y }
func opLt[T Number](x, y T) bool { return x < y }
func opGt[T Number](x, y T) bool { return x > y }
func opLe[T Number](x, y T) bool { return x <= y }
func opGe[T Number](x, y T) bool { return x >= y }

func cmp2[T Number](a, b Vec2[T], op func(x, y T) bool) Bool2 {
	var r Bool2
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return r
}

func cmp3[T Number](a, b Vec3[T], op func(x, y T) bool) Bool3 {
	var r Bool3
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return r
}

func cmp4[T Number](a, b Vec4[T], op func(x, y T) bool) Bool4 {
	var r Bool4
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return r
}

// Reductions shared by all sizes.

func sum[T Number](v []T) T {
	var s T
	for _, x := range v {
		s += x
	}
	return s
}

func prod[T Number](v []T) T {
	p := T(1)
	for _, x := range v {
		p *= x
	}
	return p
}

func minCoeff[T Number](v []T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxCoeff[T Number](v []T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func dot[T Number](a, b []T) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// squaredNorm accumulates in float64 regardless of T so that Norm has a
// single return type across element types.
func squaredNorm[T Number](v []T) float64 {
	var s float64
	for _, x := range v {
		s += float64(x) * float64(x)
	}
	return s
}

func infNorm[T Number](v []T) float64 {
	m := math.Abs(float64(v[0]))
	for _, x := range v[1:] {
		if a := math.Abs(float64(x)); a > m {
			m = a
		}
	}
	return m
}

func allOf(v []bool) bool {
	for _, b := range v {
		if !b {
			return false
		}
	}
	return true
}

func anyOf(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}

// Vec2 methods.

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { ewAdd(v[:], w[:]); return v }
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { ewSub(v[:], w[:]); return v }
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { ewMul(v[:], w[:]); return v }
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { ewDiv(v[:], w[:]); return v }

func (v Vec2[T]) AddS(k T) Vec2[T] { ewAddS(v[:], k); return v }
func (v Vec2[T]) SubS(k T) Vec2[T] { ewSubS(v[:], k); return v }
func (v Vec2[T]) MulS(k T) Vec2[T] { ewMulS(v[:], k); return v }
func (v Vec2[T]) DivS(k T) Vec2[T] { ewDivS(v[:], k); return v }

func (v Vec2[T]) Neg() Vec2[T] { ewNeg(v[:]); return v }

func (v Vec2[T]) Eq(w Vec2[T]) Bool2 { return cmp2(v, w, opEq[T]) }
func (v Vec2[T]) Ne(w Vec2[T]) Bool2 { return cmp2(v, w, opNe[T]) }
func (v Vec2[T]) Lt(w Vec2[T]) Bool2 { return cmp2(v, w, opLt[T]) }
func (v Vec2[T]) Gt(w Vec2[T]) Bool2 { return cmp2(v, w, opGt[T]) }
func (v Vec2[T]) Le(w Vec2[T]) Bool2 { return cmp2(v, w, opLe[T]) }
func (v Vec2[T]) Ge(w Vec2[T]) Bool2 { return cmp2(v, w, opGe[T]) }

func (v Vec2[T]) Sum() T               { return sum(v[:]) }
func (v Vec2[T]) Prod() T              { return prod(v[:]) }
func (v Vec2[T]) MinCoeff() T          { return minCoeff(v[:]) }
func (v Vec2[T]) MaxCoeff() T          { return maxCoeff(v[:]) }
func (v Vec2[T]) Dot(w Vec2[T]) T      { return dot(v[:], w[:]) }
func (v Vec2[T]) SquaredNorm() float64 { return squaredNorm(v[:]) }
func (v Vec2[T]) Norm() float64        { return math.Sqrt(squaredNorm(v[:])) }
func (v Vec2[T]) InfNorm() float64     { return infNorm(v[:]) }

// Vec3 methods.

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { ewAdd(v[:], w[:]); return v }
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { ewSub(v[:], w[:]); return v }
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { ewMul(v[:], w[:]); return v }
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] { ewDiv(v[:], w[:]); return v }

func (v Vec3[T]) AddS(k T) Vec3[T] { ewAddS(v[:], k); return v }
func (v Vec3[T]) SubS(k T) Vec3[T] { ewSubS(v[:], k); return v }
func (v Vec3[T]) MulS(k T) Vec3[T] { ewMulS(v[:], k); return v }
func (v Vec3[T]) DivS(k T) Vec3[T] { ewDivS(v[:], k); return v }

func (v Vec3[T]) Neg() Vec3[T] { ewNeg(v[:]); return v }

func (v Vec3[T]) Eq(w Vec3[T]) Bool3 { return cmp3(v, w, opEq[T]) }
func (v Vec3[T]) Ne(w Vec3[T]) Bool3 { return cmp3(v, w, opNe[T]) }
func (v Vec3[T]) Lt(w Vec3[T]) Bool3 { return cmp3(v, w, opLt[T]) }
func (v Vec3[T]) Gt(w Vec3[T]) Bool3 { return cmp3(v, w, opGt[T]) }
func (v Vec3[T]) Le(w Vec3[T]) Bool3 { return cmp3(v, w, opLe[T]) }
func (v Vec3[T]) Ge(w Vec3[T]) Bool3 { return cmp3(v, w, opGe[T]) }

func (v Vec3[T]) Sum() T               { return sum(v[:]) }
func (v Vec3[T]) Prod() T              { return prod(v[:]) }
func (v Vec3[T]) MinCoeff() T          { return minCoeff(v[:]) }
func (v Vec3[T]) MaxCoeff() T          { return maxCoeff(v[:]) }
func (v Vec3[T]) Dot(w Vec3[T]) T      { return dot(v[:], w[:]) }
func (v Vec3[T]) SquaredNorm() float64 { return squaredNorm(v[:]) }
func (v Vec3[T]) Norm() float64        { return math.Sqrt(squaredNorm(v[:])) }
func (v Vec3[T]) InfNorm() float64     { return infNorm(v[:]) }

// Cross returns the right-hand-rule cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		-v[0]*w[2] + v[2]*w[0],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Vec4 methods.

func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] { ewAdd(v[:], w[:]); return v }
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] { ewSub(v[:], w[:]); return v }
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] { ewMul(v[:], w[:]); return v }
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] { ewDiv(v[:], w[:]); return v }

func (v Vec4[T]) AddS(k T) Vec4[T] { ewAddS(v[:], k); return v }
func (v Vec4[T]) SubS(k T) Vec4[T] { ewSubS(v[:], k); return v }
func (v Vec4[T]) MulS(k T) Vec4[T] { ewMulS(v[:], k); return v }
func (v Vec4[T]) DivS(k T) Vec4[T] { ewDivS(v[:], k); return v }

func (v Vec4[T]) Neg() Vec4[T] { ewNeg(v[:]); return v }

func (v Vec4[T]) Eq(w Vec4[T]) Bool4 { return cmp4(v, w, opEq[T]) }
func (v Vec4[T]) Ne(w Vec4[T]) Bool4 { return cmp4(v, w, opNe[T]) }
func (v Vec4[T]) Lt(w Vec4[T]) Bool4 { return cmp4(v, w, opLt[T]) }
func (v Vec4[T]) Gt(w Vec4[T]) Bool4 { return cmp4(v, w, opGt[T]) }
func (v Vec4[T]) Le(w Vec4[T]) Bool4 { return cmp4(v, w, opLe[T]) }
func (v Vec4[T]) Ge(w Vec4[T]) Bool4 { return cmp4(v, w, opGe[T]) }

func (v Vec4[T]) Sum() T               { return sum(v[:]) }
func (v Vec4[T]) Prod() T              { return prod(v[:]) }
func (v Vec4[T]) MinCoeff() T          { return minCoeff(v[:]) }
func (v Vec4[T]) MaxCoeff() T          { return maxCoeff(v[:]) }
func (v Vec4[T]) Dot(w Vec4[T]) T      { return dot(v[:], w[:]) }
func (v Vec4[T]) SquaredNorm() float64 { return squaredNorm(v[:]) }
func (v Vec4[T]) Norm() float64        { return math.Sqrt(squaredNorm(v[:])) }
func (v Vec4[T]) InfNorm() float64     { return infNorm(v[:]) }

// Boolean collapses.

func (b Bool2) All() bool  { return allOf(b[:]) }
func (b Bool2) Any() bool  { return anyOf(b[:]) }
func (b Bool2) None() bool { return !anyOf(b[:]) }

func (b Bool3) All() bool  { return allOf(b[:]) }
func (b Bool3) Any() bool  { return anyOf(b[:]) }
func (b Bool3) None() bool { return !anyOf(b[:]) }

func (b Bool4) All() bool  { return allOf(b[:]) }
func (b Bool4) Any() bool  { return anyOf(b[:]) }
func (b Bool4) None() bool { return !anyOf(b[:]) }

// Cast helpers. Methods cannot introduce new type parameters, so element-type
// conversion is a set of free functions.

func Cast2[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

func Cast3[U, T Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

func Cast4[U, T Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

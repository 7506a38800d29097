package vecmath

import "math"

// Element-wise rounding transforms. Implemented on the slice helpers so the
// three vector sizes share one loop each.

func ewMap[T Number](dst []T, f func(x T) T) {
	for i := range dst {
		dst[i] = f(dst[i])
	}
}

func mapFloor[T Number](x T) T { return T(math.Floor(float64(x))) }
func mapCeil[T Number](x T) T  { return T(math.Ceil(float64(x))) }
func mapRound[T Number](x T) T { return T(math.Round(float64(x))) }
func mapAbs[T Number](x T) T   { return T(math.Abs(float64(x))) }

func (v Vec2[T]) Floor() Vec2[T] { ewMap(v[:], mapFloor[T]); return v }
func (v Vec2[T]) Ceil() Vec2[T]  { ewMap(v[:], mapCeil[T]); return v }
func (v Vec2[T]) Round() Vec2[T] { ewMap(v[:], mapRound[T]); return v }
func (v Vec2[T]) Abs() Vec2[T]   { ewMap(v[:], mapAbs[T]); return v }

func (v Vec3[T]) Floor() Vec3[T] { ewMap(v[:], mapFloor[T]); return v }
func (v Vec3[T]) Ceil() Vec3[T]  { ewMap(v[:], mapCeil[T]); return v }
func (v Vec3[T]) Round() Vec3[T] { ewMap(v[:], mapRound[T]); return v }
func (v Vec3[T]) Abs() Vec3[T]   { ewMap(v[:], mapAbs[T]); return v }

func (v Vec4[T]) Floor() Vec4[T] { ewMap(v[:], mapFloor[T]); return v }
func (v Vec4[T]) Ceil() Vec4[T]  { ewMap(v[:], mapCeil[T]); return v }
func (v Vec4[T]) Round() Vec4[T] { ewMap(v[:], mapRound[T]); return v }
func (v Vec4[T]) Abs() Vec4[T]   { ewMap(v[:], mapAbs[T]); return v }

// roundOffSlice rounds each element to n significant digits in place.
//
// The digit count left of the decimal point is found by repeated division by
// ten. The loop only advances for values >= 1, so elements in (0, 1) round to
// n decimal places, and zero or negative elements pass through the same
// floor(x*d+0.5)/d scaling with i == 0. That matches the historical behavior
// of this routine and callers only feed it positive tick spacings.
func roundOffSlice[T Number](v []T, n int) {
	for j := range v {
		tmp := v[j]
		i := 0
		for ; tmp >= 1; i++ {
			tmp /= 10
		}

		d := math.Pow(10, float64(n-i))
		v[j] = T(math.Floor(float64(v[j])*d+0.5) / d)
	}
}

// RoundOff2 rounds each element of v to n significant digits.
func RoundOff2[T Number](v Vec2[T], n int) Vec2[T] {
	roundOffSlice(v[:], n)
	return v
}

// RoundOff3 rounds each element of v to n significant digits.
func RoundOff3[T Number](v Vec3[T], n int) Vec3[T] {
	roundOffSlice(v[:], n)
	return v
}

// RoundOff4 rounds each element of v to n significant digits.
func RoundOff4[T Number](v Vec4[T], n int) Vec4[T] {
	roundOffSlice(v[:], n)
	return v
}

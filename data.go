package plotkit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-plotkit/internal/vecmath"
)

// Data is an aesthetic-bound table: one float64 column per aesthetic channel.
// Columns are optional; plots probe presence with Has and fall back to channel
// defaults. Per-channel min/max limits are tracked as columns are set, and are
// merged into the owning axis when the data is attached to a plot.
//
// The zero Data is not usable; construct with NewData and chain the column
// setters:
//
//	data := plotkit.NewData().X(xs).Y(ys).Color(temps)
type Data struct {
	cols   [numAesthetics][]float64
	limits vecmath.Box4
}

// NewData returns an empty aesthetic-bound table.
func NewData() *Data {
	return &Data{limits: vecmath.EmptyBox4()}
}

// X sets the x column and returns d for chaining.
func (d *Data) X(vs []float64) *Data { return d.Set(AesX, vs) }

// Y sets the y column and returns d for chaining.
func (d *Data) Y(vs []float64) *Data { return d.Set(AesY, vs) }

// Color sets the color column and returns d for chaining.
func (d *Data) Color(vs []float64) *Data { return d.Set(AesColor, vs) }

// Size sets the size column and returns d for chaining.
func (d *Data) Size(vs []float64) *Data { return d.Set(AesSize, vs) }

// Set binds vs to aesthetic channel a, replacing any previous column, and
// recomputes that channel's limits. The slice is not copied; callers must not
// mutate it afterwards.
func (d *Data) Set(a Aesthetic, vs []float64) *Data {
	d.cols[a] = vs

	d.limits.Min[a] = math.Inf(1)
	d.limits.Max[a] = math.Inf(-1)
	if len(vs) > 0 {
		d.limits.Min[a] = floats.Min(vs)
		d.limits.Max[a] = floats.Max(vs)
	}
	return d
}

// Has reports whether channel a has a bound column.
func (d *Data) Has(a Aesthetic) bool {
	return d.cols[a] != nil
}

// Column returns the column bound to channel a, or nil.
func (d *Data) Column(a Aesthetic) []float64 {
	return d.cols[a]
}

// Rows returns the row count: the length of the first bound column.
func (d *Data) Rows() int {
	for _, col := range d.cols {
		if col != nil {
			return len(col)
		}
	}
	return 0
}

// validate checks that the required channels are bound and that every bound
// column has the same length.
func (d *Data) validate(required ...Aesthetic) error {
	for _, a := range required {
		if !d.Has(a) {
			return fmt.Errorf("%w: %s", ErrNoData, a)
		}
	}

	rows := d.Rows()
	for a, col := range d.cols {
		if col != nil && len(col) != rows {
			return fmt.Errorf("%w: %s has %d values, want %d",
				ErrColumnLength, Aesthetic(a), len(col), rows)
		}
	}
	return nil
}

// sameShape reports whether d and o have the same row count and the same set
// of bound channels. Animation frames must agree on both.
func (d *Data) sameShape(o *Data) bool {
	if d.Rows() != o.Rows() {
		return false
	}
	for a := range d.cols {
		if d.Has(Aesthetic(a)) != o.Has(Aesthetic(a)) {
			return false
		}
	}
	return true
}

// mapXY returns a copy of d with tf applied to the x and y columns. Limits of
// the copy are recomputed from the transformed values.
func (d *Data) mapXY(tf Transform) *Data {
	out := NewData()
	for a, col := range d.cols {
		if col == nil {
			continue
		}
		aes := Aesthetic(a)
		if aes == AesX || aes == AesY {
			mapped := make([]float64, len(col))
			for i, v := range col {
				mapped[i] = tf(v)
			}
			out.Set(aes, mapped)
			continue
		}
		out.Set(aes, col)
	}
	return out
}

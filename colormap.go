package plotkit

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// Colormap maps a display-space scalar to a fill color. Inputs are expected
// in [0, 1]; values outside that range (and NaN) clamp to the ends.
type Colormap interface {
	ToColor(v float64) color.RGBA
}

// Gradient is a Colormap backed by a continuous go-gg palette.
type Gradient struct {
	p palette.Continuous
}

// NewGradient wraps a continuous palette as a Colormap.
func NewGradient(p palette.Continuous) Gradient {
	return Gradient{p: p}
}

// ToColor maps v through the palette, clamping to [0, 1] first. NaN maps to
// the bottom of the scale.
func (g Gradient) ToColor(v float64) color.RGBA {
	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c, ok := color.RGBAModel.Convert(g.p.Map(v)).(color.RGBA)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return c
}

// Viridis is the default colormap: perceptually uniform, dark purple through
// green to yellow.
var Viridis Colormap = NewGradient(palette.Viridis)

// DefaultColors is the categorical palette assigned to plots in creation
// order; the index wraps around for axes with many plots.
var DefaultColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// gridColor is the stroke used for axis frames and grid lines.
var gridColor = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}

// noFill marks shapes that should be stroked only.
var noFill = color.RGBA{}

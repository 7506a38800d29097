package plotkit

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/tphakala/go-plotkit/internal/vecmath"
)

// Plot1D is the capability shared by every plot kind an axis can hold.
// The set of implementations is closed (Points, Line, Histogram); the
// unexported methods keep it that way while still letting callers hold any
// plot behind one type.
type Plot1D interface {
	// AddFrame appends data as the animation frame at time t. Frames must
	// be added in increasing time order and must keep the same shape (row
	// count and bound channels) as the first frame.
	AddFrame(data *Data, t float64) error

	// DrawPlot renders the plot at time t onto c. Times between two frames
	// render linearly interpolated geometry; times outside the frame range
	// clamp to the nearest frame.
	DrawPlot(c Canvas, t float64)

	// DrawFrames renders the plot's full animation as native animated
	// primitives, for canvases that support them.
	DrawFrames(c AnimatedCanvas)

	// SetColor sets the plot's base color, used where no color channel is
	// mapped through a colormap.
	SetColor(c color.RGBA)

	// Color returns the plot's base color.
	Color() color.RGBA

	// SetColormap replaces the colormap used for the color channel.
	SetColormap(m Colormap)

	setTransform(tf Transform)
	resize(pixels vecmath.Box2[float64])
}

// plotBase carries the state common to all plot kinds: the frame tables and
// their times, styling, and the interpolation bracket for the most recent
// render time.
type plotBase struct {
	axis      *Axis
	transform Transform
	color     color.RGBA
	colormap  Colormap
	pixels    vecmath.Box2[float64]

	frames []*Data
	times  []float64

	// Interpolation bracket: frameAbove is the frame at or after the
	// requested render time, blended with frameAbove-1 using weights w1
	// (toward frameAbove) and w2. w1 + w2 == 1; w2 == 0 means the time
	// lands exactly on frameAbove and no blending happens.
	frameAbove int
	w1, w2     float64
}

func newPlotBase(a *Axis) plotBase {
	return plotBase{
		axis:      a,
		transform: Identity,
		colormap:  Viridis,
	}
}

func (p *plotBase) SetColor(c color.RGBA) { p.color = c }
func (p *plotBase) Color() color.RGBA     { return p.color }
func (p *plotBase) SetColormap(m Colormap) {
	p.colormap = m
}

func (p *plotBase) setTransform(tf Transform) {
	if tf == nil {
		tf = Identity
	}
	p.transform = tf
}

func (p *plotBase) resize(pixels vecmath.Box2[float64]) {
	p.pixels = pixels
}

// addFrame validates and stores a frame, applying the plot transform and
// merging the frame's limits into the owning axis.
func (p *plotBase) addFrame(data *Data, t float64, required ...Aesthetic) error {
	if err := data.validate(required...); err != nil {
		return err
	}
	if n := len(p.times); n > 0 && t <= p.times[n-1] {
		return fmt.Errorf("%w: frame time %v not after %v", ErrFrameTime, t, p.times[n-1])
	}

	frame := data.mapXY(p.transform)
	if len(p.frames) > 0 && !p.frames[0].sameShape(frame) {
		return fmt.Errorf("%w: frames must share row count and channels", ErrFrameShape)
	}

	p.frames = append(p.frames, frame)
	p.times = append(p.times, t)
	p.axis.limits = p.axis.limits.Union(frame.limits)
	return nil
}

// updateFrameInfo recomputes the interpolation bracket for render time t.
func (p *plotBase) updateFrameInfo(t float64) {
	n := len(p.times)
	if n == 0 {
		p.frameAbove, p.w1, p.w2 = 0, 1, 0
		return
	}
	if t <= p.times[0] {
		p.frameAbove, p.w1, p.w2 = 0, 1, 0
		return
	}
	if t >= p.times[n-1] {
		p.frameAbove, p.w1, p.w2 = n-1, 1, 0
		return
	}

	// First frame with time >= t.
	i := sort.SearchFloat64s(p.times, t)
	p.frameAbove = i
	if p.times[i] == t {
		p.w1, p.w2 = 1, 0
		return
	}
	p.w1 = (t - p.times[i-1]) / (p.times[i] - p.times[i-1])
	p.w2 = 1 - p.w1
}

// displayRow maps row i of frame d through the axis display transforms into
// (pixel-x, pixel-y, color value, point radius). Missing channels take the
// channel defaults: bottom of the color scale and the unit point size.
func (p *plotBase) displayRow(d *Data, i int, hasColor, hasSize bool) vecmath.Vec4[float64] {
	v := vecmath.Vec4[float64]{
		p.axis.toDisplay(AesX, d.cols[AesX][i]),
		p.axis.toDisplay(AesY, d.cols[AesY][i]),
		0,
		defaultSizeValue,
	}
	if hasColor {
		v[2] = p.axis.toDisplay(AesColor, d.cols[AesColor][i])
	}
	if hasSize {
		v[3] = p.axis.toDisplay(AesSize, d.cols[AesSize][i])
	}
	return v
}

// blendedRow returns the display row for the current bracket, interpolating
// between frameAbove-1 and frameAbove when the render time fell between them.
func (p *plotBase) blendedRow(i int, hasColor, hasSize bool) vecmath.Vec4[float64] {
	v := p.displayRow(p.frames[p.frameAbove], i, hasColor, hasSize)
	if p.w2 == 0 {
		return v
	}
	prev := p.displayRow(p.frames[p.frameAbove-1], i, hasColor, hasSize)
	return v.MulS(p.w1).Add(prev.MulS(p.w2))
}

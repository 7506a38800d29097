package plotkit

import (
	"github.com/tphakala/go-plotkit/internal/ticks"
	"github.com/tphakala/go-plotkit/internal/vecmath"
)

// TickInfo holds the computed tick layout: parallel sequences of data values
// and pixel positions per axis. It is rebuilt from scratch by UpdateTickInfo,
// never patched incrementally.
type TickInfo struct {
	XVal, XPos []float64
	YVal, YPos []float64
}

// Axis owns an on-screen pixel rectangle, the data-space limits accumulated
// from its plots, a tick layout, and the child plots themselves. Plot
// constructors return the child handle so the caller can keep styling it; the
// axis stays the structural parent.
type Axis struct {
	pixels vecmath.Box2[float64]
	limits vecmath.Box4

	nxTicks   int
	nyTicks   int
	sigDigits int
	niceTicks bool

	tickLen   float64
	lineWidth float64
	fontSize  float64
	fontFace  string
	legend    bool

	children []Plot1D
	tickInfo TickInfo
}

func newAxis(pixels vecmath.Box2[float64]) *Axis {
	return &Axis{
		pixels:    pixels,
		limits:    vecmath.EmptyBox4(),
		sigDigits: defaultSigDigits,
		tickLen:   defaultTickLength,
		lineWidth: defaultLineWidth,
		fontSize:  defaultFontSize,
		fontFace:  defaultFontFace,
	}
}

// SetNumTicks requests explicit tick counts. Zero leaves a count to be
// derived from the other axis and the pixel aspect ratio.
func (a *Axis) SetNumTicks(nx, ny int) {
	a.nxTicks, a.nyTicks = nx, ny
}

// SetSigDigits sets how many significant digits tick spacing is rounded to.
func (a *Axis) SetSigDigits(n int) {
	if n > 0 {
		a.sigDigits = n
	}
}

// UseNiceTicks switches tick spacing to the 1-2-5 decade progression.
func (a *Axis) UseNiceTicks(on bool) {
	a.niceTicks = on
}

// SetLegend toggles the legend flag. Legend rendering needs text layout,
// which backends handle; the flag is carried for them.
func (a *Axis) SetLegend(on bool) {
	a.legend = on
}

// XLim overrides the x data limits instead of growing them from plot data.
func (a *Axis) XLim(min, max float64) {
	a.limits.Min[AesX], a.limits.Max[AesX] = min, max
}

// YLim overrides the y data limits.
func (a *Axis) YLim(min, max float64) {
	a.limits.Min[AesY], a.limits.Max[AesY] = min, max
}

// Points creates a scatter plot child from frame 0 of data and returns it.
func (a *Axis) Points(data *Data, tf Transform) (*Points, error) {
	p := newPoints(a)
	if err := a.attach(p, tf, data); err != nil {
		return nil, err
	}
	return p, nil
}

// Line creates a polyline plot child from frame 0 of data and returns it.
func (a *Axis) Line(data *Data, tf Transform) (*Line, error) {
	l := newLine(a)
	if err := a.attach(l, tf, data); err != nil {
		return nil, err
	}
	return l, nil
}

// Histogram creates a histogram plot child from frame 0 of data and returns
// it.
func (a *Axis) Histogram(data *Data, tf Transform) (*Histogram, error) {
	h := newHistogram(a)
	if err := a.attach(h, tf, data); err != nil {
		return nil, err
	}
	return h, nil
}

// attach wires a new child plot: transform, frame 0, the next default
// palette color, and the axis pixel area.
func (a *Axis) attach(p Plot1D, tf Transform, data *Data) error {
	p.setTransform(tf)
	if err := p.AddFrame(data, 0); err != nil {
		return err
	}
	p.SetColor(DefaultColors[len(a.children)%len(DefaultColors)])
	p.resize(a.pixels)
	a.children = append(a.children, p)
	return nil
}

// Plot returns the n-th child plot.
func (a *Axis) Plot(n int) Plot1D {
	return a.children[n]
}

// NumPlots returns the child plot count.
func (a *Axis) NumPlots() int {
	return len(a.children)
}

// UpdateTickInfo recomputes the tick layout from the current limits and
// pixel area, replacing the previous layout entirely.
func (a *Axis) UpdateTickInfo() {
	cfg := ticks.Config{
		NumX:      a.nxTicks,
		NumY:      a.nyTicks,
		SigDigits: a.sigDigits,
		Nice:      a.niceTicks,
	}
	a.tickInfo = TickInfo(ticks.Compute(cfg, a.limits.XY(), a.pixels))
}

// Ticks returns the current tick layout. Call UpdateTickInfo after changing
// limits, tick configuration, or the pixel area.
func (a *Axis) Ticks() TickInfo {
	return a.tickInfo
}

// toDisplay maps a data-space value on one aesthetic channel to display
// space: pixels for x/y, [0, 1] for color, a point radius for size.
func (a *Axis) toDisplay(aes Aesthetic, v float64) float64 {
	min := a.limits.Min[aes]
	max := a.limits.Max[aes]

	switch aes {
	case AesX:
		return a.pixels.Min[0] + (v-min)/(max-min)*a.pixels.Delta()[0]
	case AesY:
		// Pixel y grows downward.
		return a.pixels.Max[1] - (v-min)/(max-min)*a.pixels.Delta()[1]
	case AesColor:
		return (v - min) / (max - min)
	case AesSize:
		if max <= min {
			return minPointRadius
		}
		return minPointRadius + (v-min)/(max-min)*(maxPointRadius-minPointRadius)
	default:
		return v
	}
}

// resize moves the axis to a new pixel rectangle and propagates it to the
// children.
func (a *Axis) resize(pixels vecmath.Box2[float64]) {
	a.pixels = pixels
	for _, p := range a.children {
		p.resize(pixels)
	}
}

// draw renders the axis frame, grid lines at the tick positions, and every
// child plot at time t.
func (a *Axis) draw(c Canvas, t float64) {
	a.UpdateTickInfo()
	a.drawGrid(c)
	for _, p := range a.children {
		p.DrawPlot(c, t)
	}
}

// drawFrames renders the grid once and the children as animated primitives.
func (a *Axis) drawFrames(c AnimatedCanvas) {
	a.UpdateTickInfo()
	a.drawGrid(c)
	for _, p := range a.children {
		p.DrawFrames(c)
	}
}

func (a *Axis) drawGrid(c Canvas) {
	c.FillColor(noFill)
	c.StrokeColor(gridColor)
	c.StrokeWidth(gridLineWidth)

	d := a.pixels.Delta()
	c.Rect(a.pixels.Min[0], a.pixels.Min[1], d[0], d[1])

	for _, x := range a.tickInfo.XPos {
		c.Line(x, a.pixels.Min[1], x, a.pixels.Max[1])
	}
	for _, y := range a.tickInfo.YPos {
		c.Line(a.pixels.Min[0], y, a.pixels.Max[0], y)
	}
}

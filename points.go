package plotkit

// Points is a scatter plot: one filled circle per data row, colored through
// the plot colormap when a color channel is bound.
type Points struct {
	plotBase
}

func newPoints(a *Axis) *Points {
	return &Points{plotBase: newPlotBase(a)}
}

// AddFrame appends a frame; x and y channels are required.
func (p *Points) AddFrame(data *Data, t float64) error {
	return p.addFrame(data, t, AesX, AesY)
}

// DrawPlot renders the rows at time t. Between frames the pixel position,
// color value, and radius of each row are linearly blended.
func (p *Points) DrawPlot(c Canvas, t float64) {
	if len(p.frames) == 0 {
		return
	}
	p.updateFrameInfo(t)

	d := p.frames[p.frameAbove]
	hasColor := d.Has(AesColor)
	hasSize := d.Has(AesSize)

	c.StrokeColor(noFill)
	for i := 0; i < d.Rows(); i++ {
		v := p.blendedRow(i, hasColor, hasSize)
		c.FillColor(p.colormap.ToColor(v[2]))
		c.Circle(v[0], v[1], v[3])
	}
}

// DrawFrames emits each row as one animated circle: a keyframe per frame in
// time order, then an end-of-sequence marker so the backend can assemble a
// single animated shape for the row.
func (p *Points) DrawFrames(c AnimatedCanvas) {
	if len(p.frames) == 0 {
		return
	}

	first := p.frames[0]
	hasColor := first.Has(AesColor)
	hasSize := first.Has(AesSize)

	c.StrokeColor(noFill)
	for i := 0; i < first.Rows(); i++ {
		for f, d := range p.frames {
			v := p.displayRow(d, i, hasColor, hasSize)
			c.FillColor(p.colormap.ToColor(v[2]))
			c.AddAnimatedCircle(v[0], v[1], v[3], p.times[f])
		}
		c.EndAnimatedCircle()
	}
}

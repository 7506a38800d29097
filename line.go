package plotkit

// Line is a polyline plot: rows are connected in order with straight
// segments stroked in the plot color.
type Line struct {
	plotBase
}

func newLine(a *Axis) *Line {
	return &Line{plotBase: newPlotBase(a)}
}

// AddFrame appends a frame; x and y channels are required.
func (l *Line) AddFrame(data *Data, t float64) error {
	return l.addFrame(data, t, AesX, AesY)
}

// DrawPlot renders the polyline at time t, with vertex positions blended
// between frames the same way Points blends circle centers.
func (l *Line) DrawPlot(c Canvas, t float64) {
	if len(l.frames) == 0 {
		return
	}
	l.updateFrameInfo(t)

	d := l.frames[l.frameAbove]
	if d.Rows() < 2 {
		return
	}

	c.StrokeColor(l.color)
	c.StrokeWidth(l.axis.lineWidth)

	prev := l.blendedRow(0, false, false)
	for i := 1; i < d.Rows(); i++ {
		v := l.blendedRow(i, false, false)
		c.Line(prev[0], prev[1], v[0], v[1])
		prev = v
	}
}

// DrawFrames has no native animated-path mode; the first frame is drawn
// statically so the plot is still visible in animated output.
func (l *Line) DrawFrames(c AnimatedCanvas) {
	if len(l.times) == 0 {
		return
	}
	l.DrawPlot(c, l.times[0])
}

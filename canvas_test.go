package plotkit

import "image/color"

// recordingCanvas is the test backend: it records every primitive along with
// the style state latched at the time of the call, and implements the
// animated-circle extension.
type recordingCanvas struct {
	fill   color.RGBA
	stroke color.RGBA
	width  float64

	circles []circleOp
	lines   []lineOp
	rects   []rectOp

	pending []keyframe
	anims   [][]keyframe
}

type circleOp struct {
	cx, cy, r float64
	fill      color.RGBA
	stroke    color.RGBA
}

type lineOp struct {
	x1, y1, x2, y2 float64
	stroke         color.RGBA
	width          float64
}

type rectOp struct {
	x, y, w, h float64
	fill       color.RGBA
	stroke     color.RGBA
}

type keyframe struct {
	cx, cy, r, t float64
	fill         color.RGBA
}

func (rc *recordingCanvas) FillColor(c color.RGBA)   { rc.fill = c }
func (rc *recordingCanvas) StrokeColor(c color.RGBA) { rc.stroke = c }
func (rc *recordingCanvas) StrokeWidth(w float64)    { rc.width = w }

func (rc *recordingCanvas) Circle(cx, cy, r float64) {
	rc.circles = append(rc.circles, circleOp{cx, cy, r, rc.fill, rc.stroke})
}

func (rc *recordingCanvas) Line(x1, y1, x2, y2 float64) {
	rc.lines = append(rc.lines, lineOp{x1, y1, x2, y2, rc.stroke, rc.width})
}

func (rc *recordingCanvas) Rect(x, y, w, h float64) {
	rc.rects = append(rc.rects, rectOp{x, y, w, h, rc.fill, rc.stroke})
}

func (rc *recordingCanvas) AddAnimatedCircle(cx, cy, r, t float64) {
	rc.pending = append(rc.pending, keyframe{cx, cy, r, t, rc.fill})
}

func (rc *recordingCanvas) EndAnimatedCircle() {
	rc.anims = append(rc.anims, rc.pending)
	rc.pending = nil
}

// staticCanvas implements only the base Canvas interface, for probing the
// animated-capability type assertion.
type staticCanvas struct{}

func (staticCanvas) FillColor(color.RGBA)    {}
func (staticCanvas) StrokeColor(color.RGBA)  {}
func (staticCanvas) StrokeWidth(float64)     {}
func (staticCanvas) Circle(_, _, _ float64)  {}
func (staticCanvas) Line(_, _, _, _ float64) {}
func (staticCanvas) Rect(_, _, _, _ float64) {}

// Interface conformance checks.
var (
	_ AnimatedCanvas = (*recordingCanvas)(nil)
	_ Canvas         = staticCanvas{}
)

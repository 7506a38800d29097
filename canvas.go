package plotkit

import "image/color"

// Canvas is the drawing surface figures and plots render onto. The library
// ships no backend; callers adapt their own (SVG, GL, recording doubles in
// tests). Style setters (fill, stroke) apply to all subsequent shapes until
// changed, matching the usual immediate-mode canvas contract.
//
// Coordinates are pixels with y growing downward.
type Canvas interface {
	// FillColor sets the fill color for subsequent shapes. A zero-alpha
	// color means no fill.
	FillColor(c color.RGBA)

	// StrokeColor sets the outline color for subsequent shapes. A
	// zero-alpha color means no outline.
	StrokeColor(c color.RGBA)

	// StrokeWidth sets the outline width in pixels.
	StrokeWidth(w float64)

	// Circle draws a circle centered at (cx, cy) with radius r.
	Circle(cx, cy, r float64)

	// Line draws a straight segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64)

	// Rect draws an axis-aligned rectangle with top-left corner (x, y).
	Rect(x, y, w, h float64)
}

// AnimatedCanvas is implemented by canvases with native animated primitives,
// such as SVG with SMIL animation. Keyframes for one animated circle are
// accumulated with AddAnimatedCircle and assembled by EndAnimatedCircle.
//
// Figures probe for this capability with a type assertion; backends without
// it simply never receive animated draw calls.
type AnimatedCanvas interface {
	Canvas

	// AddAnimatedCircle adds a keyframe at time t for the circle currently
	// being assembled.
	AddAnimatedCircle(cx, cy, r, t float64)

	// EndAnimatedCircle completes the current animated circle.
	EndAnimatedCircle()
}

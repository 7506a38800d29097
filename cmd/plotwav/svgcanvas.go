package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgCanvas adapts an svgo drawing to the plotkit Canvas and AnimatedCanvas
// interfaces. Style setters are latched and expanded into an SVG style string
// on each shape. Animated circles are written as SMIL <animate> elements,
// which svgo has no helper for, so those go through the raw writer.
type svgCanvas struct {
	svg *svg.SVG
	w   io.Writer

	fill        color.RGBA
	stroke      color.RGBA
	strokeWidth float64

	// keyframes of the animated circle currently being assembled
	anim []circleKey
}

type circleKey struct {
	cx, cy, r, t float64
}

func newSVGCanvas(w io.Writer, width, height float64) *svgCanvas {
	s := svg.New(w)
	s.Start(width, height)
	return &svgCanvas{svg: s, w: w, strokeWidth: 1}
}

// Close finishes the SVG document.
func (c *svgCanvas) Close() {
	c.svg.End()
}

func (c *svgCanvas) FillColor(col color.RGBA)   { c.fill = col }
func (c *svgCanvas) StrokeColor(col color.RGBA) { c.stroke = col }
func (c *svgCanvas) StrokeWidth(w float64)      { c.strokeWidth = w }

func (c *svgCanvas) style() string {
	var b strings.Builder
	if c.fill.A == 0 {
		b.WriteString("fill:none")
	} else {
		fmt.Fprintf(&b, "fill:rgb(%d,%d,%d)", c.fill.R, c.fill.G, c.fill.B)
	}
	if c.stroke.A == 0 {
		b.WriteString(";stroke:none")
	} else {
		fmt.Fprintf(&b, ";stroke:rgb(%d,%d,%d);stroke-width:%g",
			c.stroke.R, c.stroke.G, c.stroke.B, c.strokeWidth)
	}
	return b.String()
}

func (c *svgCanvas) Circle(cx, cy, r float64) {
	c.svg.Circle(cx, cy, r, c.style())
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64) {
	c.svg.Line(x1, y1, x2, y2, c.style())
}

func (c *svgCanvas) Rect(x, y, w, h float64) {
	c.svg.Rect(x, y, w, h, c.style())
}

func (c *svgCanvas) AddAnimatedCircle(cx, cy, r, t float64) {
	c.anim = append(c.anim, circleKey{cx: cx, cy: cy, r: r, t: t})
}

func (c *svgCanvas) EndAnimatedCircle() {
	if len(c.anim) == 0 {
		return
	}

	first, last := c.anim[0], c.anim[len(c.anim)-1]
	dur := last.t - first.t
	if dur <= 0 {
		c.Circle(first.cx, first.cy, first.r)
		c.anim = c.anim[:0]
		return
	}

	fmt.Fprintf(c.w, `<circle cx="%g" cy="%g" r="%g" style="%s">`+"\n",
		first.cx, first.cy, first.r, c.style())
	c.animate("cx", func(k circleKey) float64 { return k.cx }, dur)
	c.animate("cy", func(k circleKey) float64 { return k.cy }, dur)
	c.animate("r", func(k circleKey) float64 { return k.r }, dur)
	fmt.Fprintln(c.w, "</circle>")

	c.anim = c.anim[:0]
}

// animate writes one SMIL <animate> element for attr, with keyTimes scaled to
// the [0, 1] range SMIL requires.
func (c *svgCanvas) animate(attr string, get func(circleKey) float64, dur float64) {
	vals := make([]string, len(c.anim))
	times := make([]string, len(c.anim))
	t0 := c.anim[0].t
	for i, k := range c.anim {
		vals[i] = fmt.Sprintf("%g", get(k))
		times[i] = fmt.Sprintf("%g", (k.t-t0)/dur)
	}
	fmt.Fprintf(c.w,
		`<animate attributeName=%q values=%q keyTimes=%q dur="%gs" repeatCount="indefinite"/>`+"\n",
		attr, strings.Join(vals, ";"), strings.Join(times, ";"), dur)
}

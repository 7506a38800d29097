package plotkit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram bins the x channel into equal-width bins and renders one filled
// rectangle per bin. Bin counts become the plot's y values, so the axis y
// limits grow to the tallest bin.
type Histogram struct {
	plotBase

	bins     int
	dividers []float64
	counts   [][]float64
}

func newHistogram(a *Axis) *Histogram {
	return &Histogram{
		plotBase: newPlotBase(a),
		bins:     defaultHistogramBins,
	}
}

// SetBins changes the bin count and re-bins every frame already added. The
// dividers are recomputed from the first frame's x range.
func (h *Histogram) SetBins(n int) {
	if n <= 0 || n == h.bins {
		return
	}
	h.bins = n
	h.dividers = nil
	h.counts = h.counts[:0]
	for _, frame := range h.frames {
		h.binFrame(frame)
	}
}

// AddFrame appends a frame; only the x channel is required. The first frame
// fixes the bin dividers over its x range; later frames are binned on the
// same dividers (values outside clamp into the edge bins) so bin counts can
// be interpolated between frames.
func (h *Histogram) AddFrame(data *Data, t float64) error {
	if err := h.addFrame(data, t, AesX); err != nil {
		return err
	}
	h.binFrame(h.frames[len(h.frames)-1])
	return nil
}

func (h *Histogram) binFrame(frame *Data) {
	xs := append([]float64(nil), frame.cols[AesX]...)
	sort.Float64s(xs)

	if h.dividers == nil {
		lo, hi := 0.0, 1.0
		if len(xs) > 0 {
			lo, hi = xs[0], xs[len(xs)-1]
		}
		if hi <= lo {
			hi = lo + 1
		}
		h.dividers = floats.Span(make([]float64, h.bins+1), lo, hi)
	}

	counts := make([]float64, len(h.dividers)-1)
	if len(xs) > 0 {
		// stat.Histogram requires dividers[0] <= x < dividers[last], so
		// values at or above the top divider clamp to just below it and
		// land in the last bin.
		lo, hi := h.dividers[0], h.dividers[len(h.dividers)-1]
		top := math.Nextafter(hi, lo)
		for i, x := range xs {
			if x < lo {
				xs[i] = lo
			} else if x > top {
				xs[i] = top
			}
		}
		stat.Histogram(counts, h.dividers, xs, nil)
	}
	h.counts = append(h.counts, counts)

	// Bin counts are this plot's y data.
	h.axis.limits = h.axis.limits.ExpandChannel(int(AesY), 0)
	h.axis.limits = h.axis.limits.ExpandChannel(int(AesY), floats.Max(counts))
}

// DrawPlot renders the bins at time t, blending bin counts between frames.
func (h *Histogram) DrawPlot(c Canvas, t float64) {
	if len(h.counts) == 0 {
		return
	}
	h.updateFrameInfo(t)

	counts := h.counts[h.frameAbove]
	c.FillColor(h.color)
	c.StrokeColor(gridColor)
	c.StrokeWidth(gridLineWidth)

	yBase := h.axis.toDisplay(AesY, 0)
	for i := range counts {
		n := counts[i]
		if h.w2 != 0 {
			n = h.w1*n + h.w2*h.counts[h.frameAbove-1][i]
		}

		x0 := h.axis.toDisplay(AesX, h.dividers[i])
		x1 := h.axis.toDisplay(AesX, h.dividers[i+1])
		yTop := h.axis.toDisplay(AesY, n)
		c.Rect(x0, yTop, x1-x0, yBase-yTop)
	}
}

// DrawFrames has no native animated-rect mode; the first frame is drawn
// statically.
func (h *Histogram) DrawFrames(c AnimatedCanvas) {
	if len(h.times) == 0 {
		return
	}
	h.DrawPlot(c, h.times[0])
}

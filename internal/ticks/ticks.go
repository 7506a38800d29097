// Package ticks computes axis tick layouts: per-axis sequences of data values
// and their pixel positions, rebuilt from scratch on every call.
package ticks

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/tphakala/go-plotkit/internal/vecmath"
)

const (
	// defaultNumTicks is the y-axis tick count used when nothing is
	// configured; the x count is scaled by the pixel aspect ratio.
	defaultNumTicks = 5

	// defaultSigDigits controls how aggressively the raw tick spacing is
	// rounded. Two significant digits keeps labels like 0.25 rather than
	// 0.253333.
	defaultSigDigits = 2
)

// Config selects how many ticks to lay out and how to round their spacing.
type Config struct {
	// NumX and NumY are the requested tick counts. Zero means derive the
	// count from the other axis and the pixel aspect ratio, or fall back
	// to the defaults.
	NumX, NumY int

	// SigDigits is the number of significant digits the tick spacing is
	// rounded to. Zero means defaultSigDigits.
	SigDigits int

	// Nice restricts spacing to a 1-2-5 decade progression instead of the
	// significant-digit rounding. The tick count then follows from the
	// chosen spacing rather than matching the request exactly.
	Nice bool
}

// Info holds the computed layout: parallel value/position sequences per axis.
type Info struct {
	XVal, XPos []float64
	YVal, YPos []float64
}

// Count resolves the requested tick counts against the pixel aspect ratio.
// Both configured: used directly. One configured: the other is derived so the
// on-screen tick spacing looks uniform. Neither: defaults.
func Count(cfg Config, pixels vecmath.Box2[float64]) vecmath.Vec2[float64] {
	if cfg.NumX > 0 && cfg.NumY > 0 {
		return vecmath.Vec2[float64]{float64(cfg.NumX), float64(cfg.NumY)}
	}

	ratio := pixels.Delta()[0] / pixels.Delta()[1]

	if cfg.NumX > 0 {
		n := float64(cfg.NumX)
		return vecmath.Vec2[float64]{n, math.Floor(n / ratio)}
	}

	if cfg.NumY > 0 {
		n := float64(cfg.NumY)
		return vecmath.Vec2[float64]{math.Floor(n * ratio), n}
	}

	return vecmath.Vec2[float64]{math.Floor(defaultNumTicks * ratio), defaultNumTicks}
}

// Compute lays out ticks for the given data-space limits and pixel area.
// The returned Info is complete; callers replace any previous layout.
func Compute(cfg Config, limits, pixels vecmath.Box2[float64]) Info {
	n := Count(cfg, pixels)

	// An inverted range means no data was ever observed on that axis;
	// substitute a unit range so the layout stays finite.
	for i := 0; i < 2; i++ {
		if limits.Max[i] < limits.Min[i] {
			limits.Min[i] = 0
			limits.Max[i] = 1
		}
	}

	sig := cfg.SigDigits
	if sig <= 0 {
		sig = defaultSigDigits
	}

	delta := limits.Delta()

	// Spacing and count per axis. Default mode rounds extent/count to the
	// configured significant digits; nice mode searches the 1-2-5 ladder.
	spacing := vecmath.RoundOff2(delta.Div(n), sig)
	count := [2]int{int(n[0]), int(n[1])}

	if cfg.Nice {
		for i := 0; i < 2; i++ {
			s, k, ok := niceSpacing(limits.Min[i], limits.Max[i], count[i])
			if ok {
				spacing[i] = s
				count[i] = k
			}
		}
	}

	// First tick at or above the data minimum on the spacing grid.
	tickMin := limits.Min.Div(spacing).Ceil().Mul(spacing)

	// Scale spacing into pixel units.
	spacingPix := spacing.Mul(pixels.Delta()).Div(delta)
	tickMinPix := vecmath.Vec2[float64]{
		pixels.Min[0] + (tickMin[0]-limits.Min[0])/delta[0]*pixels.Delta()[0],
		pixels.Max[1] - (tickMin[1]-limits.Min[1])/delta[1]*pixels.Delta()[1],
	}

	var info Info
	for i := 0; i < count[0]; i++ {
		info.XVal = append(info.XVal, tickMin[0]+float64(i)*spacing[0])
		info.XPos = append(info.XPos, tickMinPix[0]+float64(i)*spacingPix[0])
	}
	// Pixel y grows downward while data y grows upward, so y steps are
	// subtracted.
	for i := 0; i < count[1]; i++ {
		info.YVal = append(info.YVal, tickMin[1]+float64(i)*spacing[1])
		info.YPos = append(info.YPos, tickMinPix[1]-float64(i)*spacingPix[1])
	}

	return info
}

// ladderTicker adapts the 1-2-5 ladder over [min, max] to the scale.Ticker
// interface so TickOptions.FindLevel can search it.
type ladderTicker struct {
	min, max float64
}

func (lt ladderTicker) CountTicks(level int) int {
	s := levelSpacing(level)
	k := int(math.Floor(lt.max/s)-math.Ceil(lt.min/s)) + 1
	if k < 0 {
		k = 0
	}
	return k
}

func (lt ladderTicker) TicksAtLevel(level int) interface{} {
	s := levelSpacing(level)
	var vals []float64
	for v := math.Ceil(lt.min / s); v <= math.Floor(lt.max/s); v++ {
		vals = append(vals, v*s)
	}
	return vals
}

// niceSpacing picks a 1-2-5 decade spacing that yields at most maxTicks grid
// multiples inside [min, max], returning the spacing and the in-range count.
func niceSpacing(min, max float64, maxTicks int) (float64, int, bool) {
	if maxTicks < 1 || max <= min {
		return 0, 0, false
	}

	lt := ladderTicker{min: min, max: max}
	opts := &scale.TickOptions{Max: maxTicks}
	guess := int(math.Round(3 * math.Log10((max-min)/float64(maxTicks))))
	level, ok := opts.FindLevel(lt, guess)
	if !ok {
		return 0, 0, false
	}

	return levelSpacing(level), lt.CountTicks(level), true
}

// levelSpacing maps an integer level to the 1-2-5 ladder: level 0 is 1,
// level 1 is 2, level 2 is 5, level 3 is 10, level -1 is 0.5, and so on.
func levelSpacing(level int) float64 {
	q, r := level/3, level%3
	if r < 0 {
		q--
		r += 3
	}
	mul := [3]float64{1, 2, 5}
	return mul[r] * math.Pow(10, float64(q))
}

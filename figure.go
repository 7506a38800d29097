package plotkit

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-plotkit/internal/vecmath"
)

// Common errors returned by the plotting API.
var (
	// ErrInvalidConfig indicates invalid figure configuration parameters.
	ErrInvalidConfig = errors.New("invalid figure configuration")

	// ErrNoData indicates a required aesthetic channel has no column.
	ErrNoData = errors.New("data missing required aesthetic")

	// ErrColumnLength indicates bound columns with differing lengths.
	ErrColumnLength = errors.New("aesthetic column length mismatch")

	// ErrFrameShape indicates an animation frame whose row count or bound
	// channels differ from the plot's first frame.
	ErrFrameShape = errors.New("animation frame shape mismatch")

	// ErrFrameTime indicates frames added out of time order.
	ErrFrameTime = errors.New("animation frame times must increase")

	// ErrNotSupported indicates the canvas lacks a required capability.
	ErrNotSupported = errors.New("operation not supported")
)

// Config holds figure configuration.
type Config struct {
	// Width is the figure width in pixels.
	Width float64

	// Height is the figure height in pixels.
	Height float64
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", ErrInvalidConfig)
	}
	return nil
}

// Figure is the top-level plot container: a pixel area holding one or more
// axes, each with its own plots. Rendering is immediate-mode and
// single-threaded; a draw call walks the in-memory data and issues a bounded
// sequence of canvas primitive calls.
type Figure struct {
	config Config
	axes   []*Axis
}

// New creates a figure with the given configuration.
func New(config *Config) (*Figure, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Figure{config: *config}, nil
}

// AddAxis creates a new axis occupying the figure area inset by the standard
// margin, and returns it.
func (f *Figure) AddAxis() *Axis {
	pixels := vecmath.NewBox2(
		f.config.Width*axisMarginRatio,
		f.config.Height*axisMarginRatio,
		f.config.Width*(1-axisMarginRatio),
		f.config.Height*(1-axisMarginRatio),
	)
	ax := newAxis(pixels)
	f.axes = append(f.axes, ax)
	return ax
}

// Axis returns the n-th axis.
func (f *Figure) Axis(n int) *Axis {
	return f.axes[n]
}

// NumAxes returns the axis count.
func (f *Figure) NumAxes() int {
	return len(f.axes)
}

// Width returns the figure width in pixels.
func (f *Figure) Width() float64 { return f.config.Width }

// Height returns the figure height in pixels.
func (f *Figure) Height() float64 { return f.config.Height }

// Draw renders every axis onto c at animation time t. Plots with a single
// frame ignore t.
func (f *Figure) Draw(c Canvas, t float64) {
	for _, ax := range f.axes {
		ax.draw(c, t)
	}
}

// DrawFrames renders the figure's full animation as native animated
// primitives. It fails with ErrNotSupported if the canvas does not implement
// AnimatedCanvas.
func (f *Figure) DrawFrames(c Canvas) error {
	ac, ok := c.(AnimatedCanvas)
	if !ok {
		return fmt.Errorf("%w: canvas has no animated primitives", ErrNotSupported)
	}
	for _, ax := range f.axes {
		ax.drawFrames(ac)
	}
	return nil
}

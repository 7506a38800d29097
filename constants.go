package plotkit

// Tick layout defaults
const (
	defaultSigDigits  = 2    // significant digits for tick spacing round-off
	defaultTickLength = 10.0 // tick mark length in pixels
)

// Axis styling defaults
const (
	defaultLineWidth = 3.0
	defaultFontSize  = 18.0
	defaultFontFace  = "Roboto"
	gridLineWidth    = 1.0
)

// Figure layout
const (
	axisMarginRatio     = 0.1 // fraction of the figure left around each axis
	defaultFigureWidth  = 800.0
	defaultFigureHeight = 600.0
)

// Point rendering
const (
	// defaultSizeValue is the display-space size used when no size channel
	// is bound. Circle radii are display-space values directly.
	defaultSizeValue = 1.0

	// Pixel radius range the size channel maps onto.
	minPointRadius = 2.0
	maxPointRadius = 20.0
)

// Histogram defaults
const (
	defaultHistogramBins = 10
)

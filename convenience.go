package plotkit

// Convenience constructors for one-axis, one-plot figures at the default
// figure size. The returned figure's plot can be restyled through
// Figure.Axis(0).Plot(0).

// Scatter creates a figure with a single scatter plot of ys against xs.
func Scatter(xs, ys []float64) (*Figure, error) {
	fig, err := New(&Config{Width: defaultFigureWidth, Height: defaultFigureHeight})
	if err != nil {
		return nil, err
	}
	if _, err := fig.AddAxis().Points(NewData().X(xs).Y(ys), Identity); err != nil {
		return nil, err
	}
	return fig, nil
}

// LineChart creates a figure with a single polyline plot of ys against xs.
func LineChart(xs, ys []float64) (*Figure, error) {
	fig, err := New(&Config{Width: defaultFigureWidth, Height: defaultFigureHeight})
	if err != nil {
		return nil, err
	}
	if _, err := fig.AddAxis().Line(NewData().X(xs).Y(ys), Identity); err != nil {
		return nil, err
	}
	return fig, nil
}

// HistogramChart creates a figure with a single histogram of xs.
func HistogramChart(xs []float64) (*Figure, error) {
	fig, err := New(&Config{Width: defaultFigureWidth, Height: defaultFigureHeight})
	if err != nil {
		return nil, err
	}
	if _, err := fig.AddAxis().Histogram(NewData().X(xs), Identity); err != nil {
		return nil, err
	}
	return fig, nil
}

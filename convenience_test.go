package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatter(t *testing.T) {
	fig, err := Scatter([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, defaultFigureWidth, fig.Width())
	assert.Equal(t, defaultFigureHeight, fig.Height())
	require.Equal(t, 1, fig.NumAxes())
	require.Equal(t, 1, fig.Axis(0).NumPlots())

	_, ok := fig.Axis(0).Plot(0).(*Points)
	assert.True(t, ok)

	rc := &recordingCanvas{}
	fig.Draw(rc, 0)
	assert.Len(t, rc.circles, 3)
}

func TestLineChart(t *testing.T) {
	fig, err := LineChart([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)

	require.Equal(t, 1, fig.NumAxes())
	_, ok := fig.Axis(0).Plot(0).(*Line)
	assert.True(t, ok)
}

func TestHistogramChart(t *testing.T) {
	fig, err := HistogramChart([]float64{1, 1, 2, 3, 3, 3})
	require.NoError(t, err)

	require.Equal(t, 1, fig.NumAxes())
	h, ok := fig.Axis(0).Plot(0).(*Histogram)
	require.True(t, ok)
	assert.Len(t, h.counts[0], defaultHistogramBins)
}

func TestConvenience_PropagateErrors(t *testing.T) {
	_, err := Scatter([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrColumnLength)

	_, err = HistogramChart(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

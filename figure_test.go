package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Standard test figure geometry. With the 10% margin a 400x300 figure places
// its axis at (40, 30)-(360, 270).
const (
	testFigureWidth  = 400.0
	testFigureHeight = 300.0

	testAxisMinX = 40.0
	testAxisMinY = 30.0
	testAxisMaxX = 360.0
	testAxisMaxY = 270.0
)

func newTestFigure(t *testing.T) *Figure {
	t.Helper()
	fig, err := New(&Config{Width: testFigureWidth, Height: testFigureHeight})
	require.NoError(t, err)
	return fig
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Width: 800, Height: 600}, false},
		{"zero_width", Config{Width: 0, Height: 600}, true},
		{"zero_height", Config{Width: 800, Height: 0}, true},
		{"negative_width", Config{Width: -1, Height: 600}, true},
		{"negative_height", Config{Width: 800, Height: -600}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	fig, err := New(&Config{Width: 800, Height: 600})
	require.NoError(t, err)
	assert.Equal(t, 800.0, fig.Width())
	assert.Equal(t, 600.0, fig.Height())
	assert.Equal(t, 0, fig.NumAxes())
}

func TestNew_NilConfig(t *testing.T) {
	fig, err := New(nil)
	assert.Nil(t, fig)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&Config{Width: -10, Height: 600})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFigure_AddAxis(t *testing.T) {
	fig := newTestFigure(t)

	ax := fig.AddAxis()
	require.NotNil(t, ax)
	assert.Equal(t, 1, fig.NumAxes())
	assert.Same(t, ax, fig.Axis(0))

	fig.AddAxis()
	assert.Equal(t, 2, fig.NumAxes())
}

// TestFigure_AxisMargin checks the axis frame rectangle drawn for an empty
// axis: the figure area inset by the margin on every side.
func TestFigure_AxisMargin(t *testing.T) {
	fig := newTestFigure(t)
	fig.AddAxis()

	rc := &recordingCanvas{}
	fig.Draw(rc, 0)

	require.NotEmpty(t, rc.rects)
	frame := rc.rects[0]
	assert.InDelta(t, testAxisMinX, frame.x, 1e-9)
	assert.InDelta(t, testAxisMinY, frame.y, 1e-9)
	assert.InDelta(t, testAxisMaxX-testAxisMinX, frame.w, 1e-9)
	assert.InDelta(t, testAxisMaxY-testAxisMinY, frame.h, 1e-9)
	assert.Equal(t, gridColor, frame.stroke)
	assert.Equal(t, noFill, frame.fill)
}

func TestFigure_DrawFrames_RequiresAnimatedCanvas(t *testing.T) {
	fig := newTestFigure(t)
	fig.AddAxis()

	err := fig.DrawFrames(staticCanvas{})
	assert.ErrorIs(t, err, ErrNotSupported)

	err = fig.DrawFrames(&recordingCanvas{})
	assert.NoError(t, err)
}

package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_StaticRender(t *testing.T) {
	fig := newTestFigure(t)
	ax := fig.AddAxis()

	l, err := ax.Line(NewData().
		X([]float64{0, 1, 2}).
		Y([]float64{0, 2, 0}), Identity)
	require.NoError(t, err)

	rc := &recordingCanvas{}
	fig.Draw(rc, 0)

	// Grid lines are stroked in gridColor; the polyline in the plot color.
	var segs []lineOp
	for _, op := range rc.lines {
		if op.stroke == l.Color() {
			segs = append(segs, op)
		}
	}
	require.Len(t, segs, 2)

	// Vertices: (0,0) bottom-left, (1,2) top-center, (2,0) bottom-right.
	assert.InDelta(t, testAxisMinX, segs[0].x1, pointTolerance)
	assert.InDelta(t, testAxisMaxY, segs[0].y1, pointTolerance)
	assert.InDelta(t, 200, segs[0].x2, pointTolerance)
	assert.InDelta(t, testAxisMinY, segs[0].y2, pointTolerance)

	// Segments chain: each starts where the previous ended.
	assert.Equal(t, segs[0].x2, segs[1].x1)
	assert.Equal(t, segs[0].y2, segs[1].y1)
	assert.InDelta(t, testAxisMaxX, segs[1].x2, pointTolerance)
	assert.InDelta(t, testAxisMaxY, segs[1].y2, pointTolerance)

	for _, s := range segs {
		assert.Equal(t, defaultLineWidth, s.width)
	}
}

func TestLine_InterpolatedRender(t *testing.T) {
	fig := newTestFigure(t)
	ax := fig.AddAxis()

	l, err := ax.Line(NewData().
		X([]float64{0, 1}).
		Y([]float64{0, 0}), Identity)
	require.NoError(t, err)
	require.NoError(t, l.AddFrame(NewData().
		X([]float64{0, 1}).
		Y([]float64{1, 1}), 1))

	rc := &recordingCanvas{}
	fig.Draw(rc, 0.5)

	var segs []lineOp
	for _, op := range rc.lines {
		if op.stroke == l.Color() {
			segs = append(segs, op)
		}
	}
	require.Len(t, segs, 1)

	// y blends midway between the two frames.
	assert.InDelta(t, 150, segs[0].y1, pointTolerance)
	assert.InDelta(t, 150, segs[0].y2, pointTolerance)
}

func TestLine_SingleRowDrawsNothing(t *testing.T) {
	fig := newTestFigure(t)
	ax := fig.AddAxis()

	l, err := ax.Line(NewData().X([]float64{1}).Y([]float64{1}), Identity)
	require.NoError(t, err)

	rc := &recordingCanvas{}
	fig.Draw(rc, 0)

	for _, op := range rc.lines {
		assert.NotEqual(t, l.Color(), op.stroke, "one vertex makes no segment")
	}
}

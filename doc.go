// Package plotkit is a small plotting toolkit for static and time-animated
// 2D charts in pure Go.
//
// The library computes all geometry itself (axis limits, tick layout, frame
// interpolation) and issues primitive draw calls against a caller-supplied
// [Canvas], so it carries no rendering backend of its own. Adapting a backend
// means implementing half a dozen methods; see cmd/plotwav for an SVG adapter
// built on github.com/ajstarks/svgo.
//
// # Features
//
//   - Scatter, line, and histogram plots sharing one axis
//   - Animation frames with linear interpolation between them, or native
//     animated primitives on canvases that support them
//   - Tick placement with significant-digit spacing rounding, or an optional
//     1-2-5 "nice ticks" mode
//   - Color channels mapped through continuous colormaps (go-gg palettes)
//   - No CGO, no backend dependencies in the library itself
//
// # Quick Start
//
// One-shot charts use the convenience constructors:
//
//	fig, err := plotkit.Scatter(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fig.Draw(canvas, 0)
//
// The full API binds data to aesthetic channels explicitly:
//
//	fig, err := plotkit.New(&plotkit.Config{Width: 800, Height: 600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ax := fig.AddAxis()
//	pts, err := ax.Points(plotkit.NewData().X(xs).Y(ys).Color(temps), plotkit.Identity)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pts.SetColormap(plotkit.Viridis)
//	fig.Draw(canvas, 0)
//
// # Animation
//
// Plots accumulate frames, each a full aesthetic-bound table at a named time:
//
//	for t, frame := range frames {
//	    if err := pts.AddFrame(frame, float64(t)); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	fig.Draw(canvas, 1.5)       // interpolated between the bracketing frames
//	err = fig.DrawFrames(canvas) // native animated primitives, if supported
//
// Canvases advertise native animation support by implementing
// [AnimatedCanvas]; [Figure.DrawFrames] checks with a type assertion and
// fails with [ErrNotSupported] otherwise.
//
// # Aesthetics
//
// A [Data] table binds float64 columns to the four aesthetic channels: x, y,
// color, and size. x and y are required by scatter and line plots (histograms
// need only x); color and size are optional. Missing color renders at the
// bottom of the colormap, missing size at the unit point radius. Each channel
// is mapped to display space by the owning axis: pixels for x/y, a [0, 1]
// colormap input for color, and a pixel radius for size.
//
// # Thread Safety
//
// Rendering is immediate-mode and single-threaded. Figures, axes, and plots
// are not safe for concurrent mutation; a draw call walks in-memory state and
// issues a deterministic sequence of canvas calls with no suspension points.
package plotkit

// Command plotwav renders the waveform of a WAV file as an SVG chart.
//
// It demonstrates adapting an SVG backend to the plotkit Canvas interface;
// the library itself ships no backend.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-plotkit"
)

func main() {
	var (
		input   = flag.String("input", "", "Input WAV file")
		output  = flag.String("output", "waveform.svg", "Output SVG file")
		samples = flag.Int("samples", 500, "Number of waveform samples to plot")
		kind    = flag.String("kind", "line", "Plot kind: line, points or histogram")
		width   = flag.Float64("width", 800, "Figure width in pixels")
		height  = flag.Float64("height", 400, "Figure height in pixels")
		nice    = flag.Bool("nice", false, "Use 1-2-5 tick spacing")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	xs, ys, err := loadWaveform(*input, *samples)
	if err != nil {
		log.Fatalf("Failed to load waveform: %v", err)
	}

	fig, err := plotkit.New(&plotkit.Config{Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("Failed to create figure: %v", err)
	}

	ax := fig.AddAxis()
	ax.UseNiceTicks(*nice)

	switch *kind {
	case "line":
		_, err = ax.Line(plotkit.NewData().X(xs).Y(ys), plotkit.Identity)
	case "points":
		_, err = ax.Points(plotkit.NewData().X(xs).Y(ys).Color(ys), plotkit.Identity)
	case "histogram":
		// Amplitude distribution: sample values become the x channel.
		_, err = ax.Histogram(plotkit.NewData().X(ys), plotkit.Identity)
	default:
		log.Fatalf("Unknown plot kind %q", *kind)
	}
	if err != nil {
		log.Fatalf("Failed to create plot: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	canvas := newSVGCanvas(out, fig.Width(), fig.Height())
	fig.Draw(canvas, 0)
	canvas.Close()

	fmt.Printf("Wrote %d-sample %s plot to %s\n", len(xs), *kind, *output)
}

// loadWaveform decodes a WAV file and downsamples the first channel to at
// most n evenly spaced points. X values are seconds, y values normalized
// amplitude in [-1, 1].
func loadWaveform(path string, n int) (xs, ys []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	xs, ys = downsample(buf, decoder.BitDepth, n)
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("no audio frames in %s", path)
	}
	return xs, ys, nil
}

// downsample extracts up to n evenly spaced first-channel samples from a PCM
// buffer, normalized by bit depth.
func downsample(buf *audio.IntBuffer, bitDepth uint16, n int) (xs, ys []float64) {
	channels := buf.Format.NumChannels
	rate := float64(buf.Format.SampleRate)
	frames := len(buf.Data) / channels
	if frames == 0 || n < 1 {
		return nil, nil
	}

	step := frames / n
	if step < 1 {
		step = 1
	}
	scale := float64(int(1) << (bitDepth - 1))

	for i := 0; i < frames; i += step {
		xs = append(xs, float64(i)/rate)
		ys = append(ys, float64(buf.Data[i*channels])/scale)
	}
	return xs, ys
}

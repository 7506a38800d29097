package plotkit

import (
	"image/color"
	"math"
	"testing"

	"github.com/aclements/go-gg/palette"
	"github.com/stretchr/testify/assert"
)

// testGrayPalette is a trivial continuous palette for colormap tests.
type testGrayPalette struct{}

func (testGrayPalette) Map(x float64) color.Color {
	return color.Gray{Y: uint8(math.Round(x * 255))}
}

func TestViridis_Endpoints(t *testing.T) {
	// Scale bottom is dark purple, top is yellow.
	assert.Equal(t, color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff}, Viridis.ToColor(0))
	assert.Equal(t, color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff}, Viridis.ToColor(1))
}

func TestGradient_Clamping(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"below_range", -5, 0},
		{"above_range", 7, 1},
		{"nan", math.NaN(), 0},
		{"in_range", 0.25, 0.25},
	}

	g := NewGradient(testGrayPalette{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, g.ToColor(tt.want), g.ToColor(tt.v))
		})
	}
}

func TestGradient_ConvertsToRGBA(t *testing.T) {
	g := NewGradient(testGrayPalette{})

	c := g.ToColor(1)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)
}

// TestGradient_SegmentSemantics pins down RGBGradient's anchor behavior: the
// whole first segment takes the first anchor unblended, and the top of the
// range takes the last anchor.
func TestGradient_SegmentSemantics(t *testing.T) {
	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	g := NewGradient(palette.RGBGradient{Colors: []color.RGBA{black, white}})

	assert.Equal(t, black, g.ToColor(0))
	assert.Equal(t, black, g.ToColor(0.5), "first segment is flat")
	assert.Equal(t, white, g.ToColor(1))
}

// TestViridis_Resolution checks the default colormap blends rather than
// stepping: nearby inputs inside the scale produce distinct colors.
func TestViridis_Resolution(t *testing.T) {
	a := Viridis.ToColor(0.40)
	b := Viridis.ToColor(0.45)
	assert.NotEqual(t, a, b)
}

func TestDefaultColors_Cycle(t *testing.T) {
	assert.NotEmpty(t, DefaultColors)
	seen := make(map[color.RGBA]bool)
	for _, c := range DefaultColors {
		assert.False(t, seen[c], "palette colors are distinct")
		seen[c] = true
		assert.Equal(t, uint8(0xff), c.A)
	}
}

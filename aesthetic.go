package plotkit

// Aesthetic identifies a named data channel that is mapped from raw data
// values to display-space values: x and y become pixel coordinates, color
// becomes a colormap input, size becomes a point radius.
type Aesthetic int

const (
	AesX Aesthetic = iota
	AesY
	AesColor
	AesSize
)

// numAesthetics is the channel count; aesthetic-indexed arrays use it.
const numAesthetics = int(AesSize) + 1

func (a Aesthetic) String() string {
	switch a {
	case AesX:
		return "x"
	case AesY:
		return "y"
	case AesColor:
		return "color"
	case AesSize:
		return "size"
	default:
		return "unknown"
	}
}

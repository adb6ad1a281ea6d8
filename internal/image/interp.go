package image

import xdraw "golang.org/x/image/draw"

// InterpolationMode defines how pixels are sampled when scaling or rotating.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest InterpolationMode = iota

	// InterpBilinear interpolates linearly between neighbouring pixels.
	InterpBilinear

	// InterpCatmullRom uses the Catmull-Rom cubic kernel.
	// Highest quality but slowest.
	InterpCatmullRom
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

// Interpolator returns the x/image/draw implementation of the mode.
// Unknown modes fall back to nearest neighbour.
func (m InterpolationMode) Interpolator() xdraw.Interpolator {
	switch m {
	case InterpBilinear:
		return xdraw.BiLinear
	case InterpCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

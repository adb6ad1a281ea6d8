// Package color provides hue-cycle color conversions for rainbowgif.
package color

// HueRange is the number of hue units in one full cycle.
// Hue angles are expressed in half-degrees, so 180 units span 360°.
const HueRange = 180

// ColorF64 represents a color with float64 components in [0,1].
type ColorF64 struct {
	R, G, B float64
}

// ColorU8 represents an opaque color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B uint8
}

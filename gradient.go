package rainbowgif

import (
	"image"
	"math"

	"github.com/gogpu/rainbowgif/internal/color"
	imgx "github.com/gogpu/rainbowgif/internal/image"
)

// GradientOptions configures GenerateGradient.
type GradientOptions struct {
	// BandWidth scales the hue sweep: the strip holds one full cycle over
	// side*180/BandWidth rows before it is stretched onto the square, so
	// larger values give wider bands. Must be positive.
	BandWidth int

	// Angle rotates the bands counter-clockwise, in degrees.
	Angle float64

	// StartHue is the hue phase in [0, 180) half-degree units; other
	// values are reduced modulo 180.
	StartHue int

	// PosterBit quantizes hue to multiples of itself. 1 gives a smooth
	// sweep; 180 or more gives a single flat hue. Must be positive.
	PosterBit int
}

// DefaultGradientOptions returns BandWidth 90, Angle 0, StartHue 0 and
// PosterBit 1.
func DefaultGradientOptions() GradientOptions {
	return GradientOptions{BandWidth: 90, PosterBit: 1}
}

func (o GradientOptions) validate() error {
	if o.BandWidth <= 0 {
		return &InvalidInputError{Field: "band width", Reason: "must be positive"}
	}
	if o.PosterBit <= 0 {
		return &InvalidInputError{Field: "poster bit", Reason: "must be positive"}
	}
	if math.IsNaN(o.Angle) || math.IsInf(o.Angle, 0) {
		return &InvalidInputError{Field: "angle", Reason: "must be finite"}
	}
	return nil
}

// GenerateGradient returns an opaque h×w rainbow gradient.
//
// A hue strip (see BandImage) is stretched onto a square of side
// max(h, w), rotated about its centre and cropped to h×w around the
// centre. The result depends only on its arguments, and StartHue values
// that differ by 180 produce identical images.
func GenerateGradient(h, w int, opts GradientOptions) (*image.RGBA, error) {
	if h <= 0 || w <= 0 {
		return nil, &InvalidInputError{Field: "gradient size", Reason: "height and width must be positive"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	side := max(h, w)
	band, err := BandImage(side, opts.BandWidth, opts.StartHue, opts.PosterBit)
	if err != nil {
		return nil, err
	}

	square := imgx.GetFromDefault(side, side)
	defer imgx.PutToDefault(square)
	imgx.ScaleTo(square, band, imgx.InterpBilinear)

	rotated := imgx.GetFromDefault(side, side)
	defer imgx.PutToDefault(rotated)
	imgx.RotateInto(rotated, square, opts.Angle, imgx.InterpNearest)

	return imgx.CropCenter(rotated, h, w), nil
}

// BandImage returns the opaque hue strip behind a gradient: side pixels
// wide and round(side*180/bandWidth) rows tall (at least one). Row r is
// painted with hue (startHue + r + 1) mod 180, quantized down to a
// multiple of posterBit.
func BandImage(side, bandWidth, startHue, posterBit int) (*image.RGBA, error) {
	switch {
	case side <= 0:
		return nil, &InvalidInputError{Field: "band side", Reason: "must be positive"}
	case bandWidth <= 0:
		return nil, &InvalidInputError{Field: "band width", Reason: "must be positive"}
	case posterBit <= 0:
		return nil, &InvalidInputError{Field: "poster bit", Reason: "must be positive"}
	}

	rows := max(int(math.Round(float64(side)*color.HueRange/float64(bandWidth))), 1)
	band := image.NewRGBA(image.Rect(0, 0, side, rows))

	start := ((startHue % color.HueRange) + color.HueRange) % color.HueRange
	for r := range rows {
		angle := (start + r + 1) % color.HueRange
		c := color.HueColor(angle / posterBit * posterBit)

		row := band.Pix[r*band.Stride : r*band.Stride+4*side]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, 0xff
		}
	}
	return band, nil
}

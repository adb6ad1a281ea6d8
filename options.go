package rainbowgif

import (
	"image/color"
	"image/draw"
	"math"
	"time"
)

// Options configures a complete animation run.
type Options struct {
	Text     string
	FontPath string // empty selects the bundled Go Regular font
	FontSize float64
	Output   string

	Angle     float64 // gradient rotation in degrees, counter-clockwise
	BandWidth int
	PosterBit int

	// Duration is the display time of each frame. GIF stores it in
	// hundredths of a second, so it is rounded to 10ms.
	Duration time.Duration

	EdgeColor      color.NRGBA // alpha is ignored; edges are opaque
	EdgeIterations int         // outline thickness in pixels; <= 0 disables it

	// PhaseCount hue phases are walked; every FrameStride-th phase,
	// starting at 0, becomes a frame.
	PhaseCount  int
	FrameStride int

	Workers int // 0 = GOMAXPROCS, 1 = sequential

	// Quantizer reduces frames with more than 254 fill colours.
	// nil selects median cut.
	Quantizer draw.Quantizer
}

// DefaultOptions returns the settings of the command-line tool: "77.7%" at
// 128px with the bundled font, 5° gradient angle, band width 360, black
// one-pixel outline, 60 frames of 20ms each looping forever.
func DefaultOptions() Options {
	return Options{
		Text:           "77.7%",
		FontSize:       128,
		Output:         "./rainbow_text.gif",
		Angle:          5,
		BandWidth:      360,
		PosterBit:      1,
		Duration:       20 * time.Millisecond,
		EdgeColor:      color.NRGBA{A: 0xff},
		EdgeIterations: 1,
		PhaseCount:     180,
		FrameStride:    3,
	}
}

// Frames returns the number of frames the options produce.
func (o Options) Frames() int {
	if o.PhaseCount <= 0 || o.FrameStride <= 0 {
		return 0
	}
	return (o.PhaseCount + o.FrameStride - 1) / o.FrameStride
}

// gradient returns the gradient settings for hue phase p.
func (o Options) gradient(p int) GradientOptions {
	return GradientOptions{
		BandWidth: o.BandWidth,
		Angle:     o.Angle,
		StartHue:  p,
		PosterBit: o.PosterBit,
	}
}

// delay converts Duration to GIF hundredths of a second.
func (o Options) delay() int {
	return int((o.Duration + 5*time.Millisecond) / (10 * time.Millisecond))
}

// validateAnimation checks everything Render and BuildGIF depend on.
func (o Options) validateAnimation() error {
	if err := o.gradient(0).validate(); err != nil {
		return err
	}
	if o.PhaseCount <= 0 {
		return &InvalidInputError{Field: "phase count", Reason: "must be positive"}
	}
	if o.FrameStride <= 0 {
		return &InvalidInputError{Field: "frame stride", Reason: "must be positive"}
	}
	if o.Duration < 0 {
		return &InvalidInputError{Field: "duration", Reason: "must not be negative"}
	}
	return nil
}

// validate checks the whole run, text first so that empty text is
// reported before any font is loaded.
func (o Options) validate() error {
	if o.Text == "" {
		return &InvalidInputError{Field: "text", Reason: "must not be empty"}
	}
	if !(o.FontSize > 0) || math.IsInf(o.FontSize, 0) {
		return &InvalidInputError{Field: "font size", Reason: "must be a positive number"}
	}
	if o.Output == "" {
		return &InvalidInputError{Field: "output path", Reason: "must not be empty"}
	}
	return o.validateAnimation()
}

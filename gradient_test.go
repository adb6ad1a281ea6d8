package rainbowgif

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func grayOf(v uint8) color.Gray { return color.Gray{Y: v} }

func TestBandImageHeight(t *testing.T) {
	tests := []struct {
		side, bandWidth int
		want            int
	}{
		{100, 360, 50},
		{100, 90, 200},
		{100, 180, 100},
		{7, 360, 4}, // 3.5 rounds up
		{1, 1000, 1},
	}
	for _, tt := range tests {
		band, err := BandImage(tt.side, tt.bandWidth, 0, 1)
		if err != nil {
			t.Fatalf("BandImage(%d, %d): %v", tt.side, tt.bandWidth, err)
		}
		if got := band.Bounds(); got != image.Rect(0, 0, tt.side, tt.want) {
			t.Errorf("BandImage(%d, %d) bounds = %v, want %dx%d", tt.side, tt.bandWidth, got, tt.side, tt.want)
		}
	}
}

func TestBandImageRows(t *testing.T) {
	band, err := BandImage(90, 90, 0, 1) // 180 rows
	if err != nil {
		t.Fatal(err)
	}
	// Row 0 is painted with hue 1: the phase advances before the first row.
	first := band.RGBAAt(0, 0)
	if first.R != 255 || first.B != 0 || first.G == 0 || first.A != 255 {
		t.Errorf("row 0 = %v, want red with a little green", first)
	}
	// Row 59 has hue 60 (120°): pure green.
	if got := band.RGBAAt(2, 59); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("row 59 = %v, want pure green", got)
	}
	// Row 179 wraps back to hue 0: pure red.
	if got := band.RGBAAt(3, 179); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("row 179 = %v, want pure red", got)
	}
	// Rows are uniform.
	for y := range 8 {
		for x := 1; x < 4; x++ {
			if band.RGBAAt(x, y) != band.RGBAAt(0, y) {
				t.Fatalf("row %d is not uniform", y)
			}
		}
	}
}

func TestBandImagePoster(t *testing.T) {
	band, err := BandImage(90, 90, 0, 30)
	if err != nil {
		t.Fatal(err)
	}
	// Hues 1..29 quantize to 0, so rows 0..28 are all pure red.
	for y := range 29 {
		if got := band.RGBAAt(0, y); got != (color.RGBA{R: 255, A: 255}) {
			t.Fatalf("row %d = %v, want pure red", y, got)
		}
	}
	if band.RGBAAt(0, 29) == band.RGBAAt(0, 28) {
		t.Error("row 29 should start the next poster band")
	}
}

func TestBandImageErrors(t *testing.T) {
	for _, args := range [][4]int{{0, 90, 0, 1}, {10, 0, 0, 1}, {10, -5, 0, 1}, {10, 90, 0, 0}, {10, 90, 0, -2}} {
		if _, err := BandImage(args[0], args[1], args[2], args[3]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BandImage%v err = %v, want ErrInvalidInput", args, err)
		}
	}
}

func TestGenerateGradientSize(t *testing.T) {
	for _, sz := range []image.Point{{1, 1}, {40, 10}, {10, 40}, {33, 33}} {
		g, err := GenerateGradient(sz.Y, sz.X, GradientOptions{BandWidth: 360, Angle: 5, PosterBit: 1})
		if err != nil {
			t.Fatalf("GenerateGradient(%v): %v", sz, err)
		}
		if got := g.Bounds(); got != image.Rect(0, 0, sz.X, sz.Y) {
			t.Errorf("bounds = %v, want %v", got, sz)
		}
		for i := 3; i < len(g.Pix); i += 4 {
			if g.Pix[i] != 255 {
				t.Fatalf("gradient %v not opaque at byte %d", sz, i)
			}
		}
	}
}

func TestGenerateGradientDeterministic(t *testing.T) {
	opts := GradientOptions{BandWidth: 360, Angle: 5, StartHue: 42, PosterBit: 1}
	a, err := GenerateGradient(48, 96, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateGradient(48, 96, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical arguments produced different gradients")
	}
}

func TestGenerateGradientPeriodic(t *testing.T) {
	base := GradientOptions{BandWidth: 120, Angle: 30, PosterBit: 3}
	for _, start := range []int{0, 7, 179} {
		a := base
		a.StartHue = start
		for _, shifted := range []int{start + 180, start + 360, start - 180} {
			b := base
			b.StartHue = shifted
			ga, err := GenerateGradient(30, 50, a)
			if err != nil {
				t.Fatal(err)
			}
			gb, err := GenerateGradient(30, 50, b)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(ga.Pix, gb.Pix) {
				t.Errorf("StartHue %d and %d differ", start, shifted)
			}
		}
	}
}

func TestGenerateGradientPhasesDiffer(t *testing.T) {
	opts := DefaultGradientOptions()
	a, _ := GenerateGradient(20, 20, opts)
	opts.StartHue = 60
	b, _ := GenerateGradient(20, 20, opts)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("phases 0 and 60 produced identical gradients")
	}
}

func TestGenerateGradientFlatPoster(t *testing.T) {
	for _, poster := range []int{180, 181, 1000} {
		g, err := GenerateGradient(16, 24, GradientOptions{BandWidth: 90, StartHue: 33, PosterBit: poster})
		if err != nil {
			t.Fatalf("PosterBit %d: %v", poster, err)
		}
		want := color.RGBA{R: 255, A: 255}
		for y := range 16 {
			for x := range 24 {
				if got := g.RGBAAt(x, y); got != want {
					t.Fatalf("PosterBit %d: (%d,%d) = %v, want %v", poster, x, y, got, want)
				}
			}
		}
	}
}

func TestGenerateGradientRotationLeavesBlackCorners(t *testing.T) {
	// Square canvas: the crop keeps the rotated square's uncovered corners.
	g, err := GenerateGradient(40, 40, GradientOptions{BandWidth: 90, Angle: 45, PosterBit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("corner = %v, want opaque black", got)
	}
}

func TestGenerateGradientErrors(t *testing.T) {
	valid := DefaultGradientOptions()
	tests := []struct {
		name string
		h, w int
		mod  func(*GradientOptions)
	}{
		{"zero height", 0, 10, nil},
		{"negative width", 10, -1, nil},
		{"zero band width", 10, 10, func(o *GradientOptions) { o.BandWidth = 0 }},
		{"zero poster", 10, 10, func(o *GradientOptions) { o.PosterBit = 0 }},
		{"NaN angle", 10, 10, func(o *GradientOptions) { o.Angle = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			if tt.mod != nil {
				tt.mod(&opts)
			}
			if _, err := GenerateGradient(tt.h, tt.w, opts); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func BenchmarkGenerateGradient(b *testing.B) {
	opts := GradientOptions{BandWidth: 360, Angle: 5, PosterBit: 1}
	for b.Loop() {
		_, _ = GenerateGradient(96, 320, opts)
	}
}

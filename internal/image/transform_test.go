package image

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestScaleToNearest(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(0, 1, blue)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	ScaleTo(dst, src, InterpNearest)

	for y := range 4 {
		want := red
		if y >= 2 {
			want = blue
		}
		for x := range 4 {
			if got := dst.RGBAAt(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScaleToBilinearUniform(t *testing.T) {
	c := color.RGBA{R: 10, G: 200, B: 90, A: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	ScaleTo(dst, solid(1, 3, c), InterpBilinear)
	for y := range 32 {
		for x := range 32 {
			if got := dst.RGBAAt(x, y); got != c {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestRotateIntoZero(t *testing.T) {
	src := solid(8, 8, red)
	src.SetRGBA(1, 2, blue)
	dst := image.NewRGBA(src.Bounds())
	RotateInto(dst, src, 0, InterpNearest)
	for y := range 8 {
		for x := range 8 {
			if dst.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("(%d,%d) differs", x, y)
			}
		}
	}
}

func TestRotateIntoQuarterTurn(t *testing.T) {
	src := solid(4, 4, red)
	src.SetRGBA(3, 0, blue) // top-right

	dst := image.NewRGBA(src.Bounds())
	RotateInto(dst, src, 90, InterpNearest)

	// Counter-clockwise: top-right moves to top-left.
	if got := dst.RGBAAt(0, 0); got != blue {
		t.Errorf("top-left = %v, want %v", got, blue)
	}
	if got := dst.RGBAAt(3, 0); got != red {
		t.Errorf("top-right = %v, want %v", got, red)
	}
}

func TestRotateIntoFillsCornersBlack(t *testing.T) {
	src := solid(40, 40, red)
	dst := image.NewRGBA(src.Bounds())
	RotateInto(dst, src, 45, InterpNearest)

	black := color.RGBA{A: 255}
	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
		if got := dst.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("corner %v = %v, want %v", p, got, black)
		}
	}
	if got := dst.RGBAAt(20, 20); got != red {
		t.Errorf("centre = %v, want %v", got, red)
	}
}

func TestCropCenter(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	tests := []struct {
		name   string
		h, w   int
		x0, y0 int
	}{
		{"wide", 4, 10, 0, 3},
		{"tall", 10, 3, 3, 0},
		{"odd", 5, 7, 1, 2},
		{"full", 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropCenter(src, tt.h, tt.w)
			if got.Bounds() != image.Rect(0, 0, tt.w, tt.h) {
				t.Fatalf("bounds = %v, want %dx%d", got.Bounds(), tt.w, tt.h)
			}
			c := got.RGBAAt(0, 0)
			if int(c.R) != tt.x0 || int(c.G) != tt.y0 {
				t.Errorf("origin maps to (%d,%d), want (%d,%d)", c.R, c.G, tt.x0, tt.y0)
			}
		})
	}
}

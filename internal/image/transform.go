package image

import (
	"image"
	"image/color"
	"image/draw"
)

// opaqueBlack fills areas not covered by a rotated source.
var opaqueBlack = image.NewUniform(color.RGBA{A: 0xff})

// ScaleTo scales the whole of src into dst's bounds.
func ScaleTo(dst draw.Image, src image.Image, mode InterpolationMode) {
	mode.Interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// RotateInto renders src rotated counter-clockwise by deg degrees about
// its centre into dst, keeping src's frame: corners uncovered by the
// rotated source are opaque black. dst must have src's bounds.
func RotateInto(dst *image.RGBA, src image.Image, deg float64, mode InterpolationMode) {
	b := src.Bounds()
	draw.Draw(dst, dst.Bounds(), opaqueBlack, image.Point{}, draw.Src)
	if deg == 0 {
		draw.Draw(dst, b, src, b.Min, draw.Src)
		return
	}
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	m := RotateCCWAt(deg, cx, cy)
	mode.Interpolator().Transform(dst, m.Aff3(), src, b, draw.Src, nil)
}

// CropCenter copies the h×w window centred in src into a fresh buffer
// with origin (0,0). The window's top-left corner is
// ((src.Dx()-w)/2, (src.Dy()-h)/2) relative to src's origin.
// Parts of the window outside src stay zero.
func CropCenter(src *image.RGBA, h, w int) *image.RGBA {
	b := src.Bounds()
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x0, y0), draw.Src)
	return dst
}

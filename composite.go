package rainbowgif

import (
	"image"
	"image/color"
)

// Composite builds one animation frame. Where glyph is non-zero the frame
// takes the gradient colour; where edge is non-zero it takes edgeColor,
// which wins over the gradient. Both are fully opaque; every other pixel
// is fully transparent black.
//
// glyph, gradient and edge must share bounds. The frame is freshly
// allocated and none of the inputs are modified.
func Composite(glyph *image.Gray, gradient *image.RGBA, edge *image.Gray, edgeColor color.NRGBA) (*image.NRGBA, error) {
	b := glyph.Bounds()
	if gradient.Bounds() != b || edge.Bounds() != b {
		return nil, &InvalidInputError{
			Field:  "bitmap size",
			Reason: "glyph " + b.String() + ", gradient " + gradient.Bounds().String() + " and edge " + edge.Bounds().String() + " differ",
		}
	}

	frame := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		gi := glyph.PixOffset(b.Min.X, y)
		ei := edge.PixOffset(b.Min.X, y)
		ri := gradient.PixOffset(b.Min.X, y)
		fi := frame.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			px := frame.Pix[fi+4*x : fi+4*x+4 : fi+4*x+4]
			switch {
			case edge.Pix[ei+x] > 0:
				px[0], px[1], px[2], px[3] = edgeColor.R, edgeColor.G, edgeColor.B, 0xff
			case glyph.Pix[gi+x] > 0:
				src := gradient.Pix[ri+4*x : ri+4*x+3 : ri+4*x+3]
				px[0], px[1], px[2], px[3] = src[0], src[1], src[2], 0xff
			}
		}
	}
	return frame, nil
}

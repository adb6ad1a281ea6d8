// Package palette converts composited RGBA frames into GIF paletted images.
//
// Every palette reserves two entries: index 0 is fully transparent and
// index 1 is the outline colour. The remaining entries hold the fill
// colours of the frame, either exactly (when there are few enough) or as
// a median-cut approximation.
package palette

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/soniakeys/quant/median"
)

// Reserved palette indices.
const (
	TransparentIndex = 0
	EdgeIndex        = 1

	// MaxFillColors is the number of palette entries left for fill colours.
	MaxFillColors = 256 - 2
)

// Mapper builds paletted frames. A Mapper is immutable and safe for
// concurrent use.
type Mapper struct {
	edge      color.NRGBA
	quantizer draw.Quantizer
}

// New returns a Mapper that reserves edge as the outline colour and uses q
// when a frame has more than MaxFillColors fill colours. A nil q selects
// median cut.
func New(edge color.NRGBA, q draw.Quantizer) *Mapper {
	if q == nil {
		q = median.Quantizer(MaxFillColors)
	}
	edge.A = 0xff
	return &Mapper{edge: edge, quantizer: q}
}

// Paletted converts img. Pixels with zero alpha map to TransparentIndex,
// opaque pixels of the edge colour to EdgeIndex, everything else to the
// nearest fill colour. The result has img's bounds.
func (m *Mapper) Paletted(img *image.NRGBA) *image.Paletted {
	b := img.Bounds()

	fill, exact := m.fillColors(img)
	if !exact {
		fill = m.quantize(img)
	}

	pal := make(color.Palette, 0, 2+len(fill))
	pal = append(pal, color.NRGBA{}, m.edge)
	pal = append(pal, fill...)
	lookup := fill.Index

	dst := image.NewPaletted(b, pal)
	cache := make(map[color.NRGBA]uint8, len(fill))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		out := dst.Pix[dst.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA{src[4*x], src[4*x+1], src[4*x+2], src[4*x+3]}
			switch {
			case c.A == 0:
				out[x] = TransparentIndex
			case m.isEdge(c):
				out[x] = EdgeIndex
			default:
				c.A = 0xff
				idx, ok := cache[c]
				if !ok {
					idx = uint8(2 + lookup(c))
					cache[c] = idx
				}
				out[x] = idx
			}
		}
	}
	return dst
}

func (m *Mapper) isEdge(c color.NRGBA) bool {
	return c.R == m.edge.R && c.G == m.edge.G && c.B == m.edge.B
}

// fillColors collects the distinct opaque non-edge colours of img in
// first-seen order. exact is false once more than MaxFillColors are found.
func (m *Mapper) fillColors(img *image.NRGBA) (fill color.Palette, exact bool) {
	b := img.Bounds()
	seen := make(map[color.NRGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA{row[4*x], row[4*x+1], row[4*x+2], 0xff}
			if row[4*x+3] == 0 || m.isEdge(c) {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			if len(seen) == MaxFillColors {
				return nil, false
			}
			seen[c] = struct{}{}
			fill = append(fill, c)
		}
	}
	return fill, true
}

// quantize runs the quantizer over the fill pixels only, so transparent
// and outline pixels do not claim palette entries.
func (m *Mapper) quantize(img *image.NRGBA) color.Palette {
	b := img.Bounds()
	pixels := make([]uint8, 0, 4*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA{row[4*x], row[4*x+1], row[4*x+2], 0xff}
			if row[4*x+3] == 0 || m.isEdge(c) {
				continue
			}
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	strip := &image.NRGBA{
		Pix:    pixels,
		Stride: len(pixels),
		Rect:   image.Rect(0, 0, len(pixels)/4, 1),
	}

	q := m.quantizer.Quantize(make(color.Palette, 0, MaxFillColors), strip)
	if len(q) > MaxFillColors {
		q = q[:MaxFillColors]
	}
	fill := make(color.Palette, 0, len(q))
	for _, c := range q {
		fill = append(fill, color.NRGBAModel.Convert(c))
	}
	return fill
}

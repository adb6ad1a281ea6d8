package text

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"
)

// inkPad is the margin, in pixels, around the outline bounds on the
// provisional canvas.
const inkPad = 2

// Rasterize renders s on a single line and returns an anti-aliased
// white-on-black coverage bitmap exactly enclosing the rendered ink.
//
// size is the font size in points at 72 DPI (pixels per em).
// The text is first filled on an oversized provisional canvas to measure
// its tight bounding box and then placed, centred, on a canvas of exactly
// that size.
func Rasterize(src *FontSource, s string, size float64, opts ...RasterOption) (*image.Gray, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, ErrInvalidSize
	}
	if src == nil {
		return nil, ErrNilSource
	}
	parsed := src.Parsed()
	if parsed == nil {
		return nil, ErrSourceClosed
	}

	cfg := defaultRasterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	line := LayoutLine(src, s, size, cfg.shaper)
	outlines, bounds, err := lineOutlines(parsed, line, size)
	if err != nil {
		return nil, err
	}
	if bounds.Empty() {
		return nil, ErrNoInk
	}

	// Provisional canvas: every outline fits with inkPad to spare.
	minX := math.Floor(bounds.MinX) - inkPad
	minY := math.Floor(bounds.MinY) - inkPad
	w := int(math.Ceil(bounds.MaxX)-minX) + inkPad
	h := int(math.Ceil(bounds.MaxY)-minY) + inkPad
	provisional := fillLine(line, outlines, w, h, float32(-minX), float32(-minY))

	ink := InkBounds(provisional)
	if ink.Empty() {
		return nil, ErrNoInk
	}

	tw, th := ink.Dx(), ink.Dy()
	canvas := image.NewGray(image.Rect(0, 0, tw, th))
	off := image.Pt((canvas.Rect.Dx()-tw)/2, (canvas.Rect.Dy()-th)/2)
	for y := 0; y < th; y++ {
		srcRow := provisional.PixOffset(ink.Min.X, ink.Min.Y+y)
		dstRow := canvas.PixOffset(off.X, off.Y+y)
		copy(canvas.Pix[dstRow:dstRow+tw], provisional.Pix[srcRow:srcRow+tw])
	}
	return canvas, nil
}

// InkBounds returns the smallest rectangle containing every non-zero
// sample of m. It returns the empty rectangle when m is blank.
func InkBounds(m *image.Alpha) image.Rectangle {
	b := m.Bounds()
	ink := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)]
		for i, v := range row {
			if v == 0 {
				continue
			}
			x := b.Min.X + i
			if !found {
				ink = image.Rect(x, y, x+1, y+1)
				found = true
				continue
			}
			if x < ink.Min.X {
				ink.Min.X = x
			}
			if x+1 > ink.Max.X {
				ink.Max.X = x + 1
			}
			ink.Max.Y = y + 1
		}
	}
	return ink
}

// lineOutlines loads the outline of every glyph in line and returns them
// keyed by glyph ID together with the union of their bounds in line space
// (baseline at y=0, Y down).
func lineOutlines(parsed ParsedFont, line Line, size float64) (map[GlyphID]*GlyphOutline, Rect, error) {
	var e OutlineExtractor
	outlines := make(map[GlyphID]*GlyphOutline, len(line.Glyphs))

	var bounds Rect
	for _, g := range line.Glyphs {
		o, ok := outlines[g.GID]
		if !ok {
			var err error
			o, err = e.ExtractOutline(parsed, g.GID, size)
			if err != nil {
				return nil, Rect{}, &FontError{Err: fmt.Errorf("glyph %d: %w", g.GID, err)}
			}
			outlines[g.GID] = o
		}
		if o.IsEmpty() {
			continue
		}
		gb := Rect{
			MinX: o.Bounds.MinX + g.X,
			MinY: o.Bounds.MinY - g.Y,
			MaxX: o.Bounds.MaxX + g.X,
			MaxY: o.Bounds.MaxY - g.Y,
		}
		bounds = unionRect(bounds, gb)
	}
	return outlines, bounds, nil
}

// fillLine fills all glyph outlines of line onto a w×h coverage mask with
// the line origin at (ox, oy).
func fillLine(line Line, outlines map[GlyphID]*GlyphOutline, w, h int, ox, oy float32) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for _, g := range line.Glyphs {
		outlines[g.GID].AddTo(z, ox+float32(g.X), oy-float32(g.Y))
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// unionRect returns the smallest Rect containing a and b.
// An empty operand is ignored.
func unionRect(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Rect{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

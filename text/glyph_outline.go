package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphOutline is the vector outline of one glyph scaled to pixels,
// with the origin on the baseline and the Y axis pointing down.
type GlyphOutline struct {
	// GID is the glyph this outline belongs to.
	GID GlyphID

	// Segments is a private copy of the sfnt path; never aliases an
	// sfnt.Buffer.
	Segments sfnt.Segments

	// Bounds covers every on- and off-curve point.
	Bounds Rect
}

// IsEmpty reports whether the glyph draws nothing (space, nil outline).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// AddTo appends the outline to z with its origin at (dx, dy).
// Each contour is closed before the next one starts.
func (o *GlyphOutline) AddTo(z *vector.Rasterizer, dx, dy float32) {
	if o.IsEmpty() {
		return
	}
	at := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}
	open := false
	for _, seg := range o.Segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(at(a[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(at(a[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := at(a[0])
			x2, y2 := at(a[1])
			z.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := at(a[0])
			x2, y2 := at(a[1])
			x3, y3 := at(a[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		z.ClosePath()
	}
}

// OutlineExtractor loads glyph outlines, reusing one sfnt.Buffer.
// The zero value is ready to use; an extractor must not be shared
// between goroutines.
type OutlineExtractor struct {
	buf sfnt.Buffer
}

// ExtractOutline returns the outline of gid at size pixels per em.
// Fonts from other parsers fall back to ParsedFont.Outline.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	xf, ok := font.(*ximageParsedFont)
	if !ok {
		return font.Outline(gid, size)
	}
	return e.load(xf.font, gid, size)
}

func (e *OutlineExtractor) load(f *sfnt.Font, gid GlyphID, size float64) (*GlyphOutline, error) {
	segs, err := f.LoadGlyph(&e.buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		return nil, err
	}
	o := &GlyphOutline{GID: gid}
	if len(segs) == 0 {
		return o, nil
	}
	// segs is only valid until the next call on e.buf.
	o.Segments = append(sfnt.Segments(nil), segs...)
	b := o.Segments.Bounds()
	o.Bounds = Rect{
		MinX: fixedToFloat(b.Min.X),
		MinY: fixedToFloat(b.Min.Y),
		MaxX: fixedToFloat(b.Max.X),
		MaxY: fixedToFloat(b.Max.Y),
	}
	return o, nil
}

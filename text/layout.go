package text

import (
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Line is a single line of shaped glyphs sharing one baseline.
type Line struct {
	// Glyphs are in visual order with X relative to the line origin.
	Glyphs []ShapedGlyph

	// Advance is the total horizontal advance of the line.
	Advance float64
}

// textRun is a contiguous piece of text with a single direction.
type textRun struct {
	text string
	dir  Direction
}

// LayoutLine shapes s onto a single baseline.
//
// The text is NFC-normalised, split into bidi runs in visual order and each
// run is shaped with shaper. Line breaks are not interpreted.
func LayoutLine(src *FontSource, s string, size float64, shaper Shaper) Line {
	if shaper == nil {
		shaper = GetShaper()
	}

	var line Line
	for _, run := range splitRuns(norm.NFC.String(s)) {
		glyphs := shaper.Shape(src, run.text, run.dir, size)
		for _, g := range glyphs {
			g.X += line.Advance
			line.Glyphs = append(line.Glyphs, g)
		}
		line.Advance += runAdvance(glyphs)
	}
	return line
}

// splitRuns splits s into directional runs in visual order.
// If bidi analysis fails the whole string is treated as one LTR run.
func splitRuns(s string) []textRun {
	if s == "" {
		return nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []textRun{{text: s, dir: DirectionLTR}}
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []textRun{{text: s, dir: DirectionLTR}}
	}

	runs := make([]textRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, textRun{text: run.String(), dir: dir})
	}
	return runs
}

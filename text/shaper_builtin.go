package text

// BuiltinShaper maps runes to glyphs one by one using the parsed font's
// cmap and kern tables. It performs no ligature substitution or contextual
// shaping; RTL runs are simply reversed.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(src *FontSource, run string, dir Direction, size float64) []ShapedGlyph {
	if run == "" || src == nil {
		return nil
	}
	parsed := src.Parsed()
	if parsed == nil {
		return nil
	}

	runes := []rune(run)
	order := make([]int, len(runes))
	for i := range order {
		order[i] = i
	}
	if dir == DirectionRTL {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	glyphs := make([]ShapedGlyph, 0, len(runes))
	x := 0.0
	var prev GlyphID
	for n, idx := range order {
		gid := parsed.GlyphIndex(runes[idx])
		if n > 0 {
			x += parsed.Kern(prev, gid, size)
		}
		adv := parsed.GlyphAdvance(gid, size)
		glyphs = append(glyphs, ShapedGlyph{
			GID:      gid,
			Cluster:  idx,
			X:        x,
			XAdvance: adv,
		})
		x += adv
		prev = gid
	}
	return glyphs
}

package text

import "sync"

// Shaper converts a single-direction run of text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting (default)
//   - BuiltinShaper: rune-by-rune mapping with pair kerning
type Shaper interface {
	// Shape converts run into glyphs in visual (left-to-right) order.
	// Glyph X positions are relative to the start of the run.
	Shape(src *FontSource, run string, dir Direction, size float64) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Rasterize.
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// runAdvance returns the total horizontal advance of shaped glyphs.
func runAdvance(glyphs []ShapedGlyph) float64 {
	total := 0.0
	for _, g := range glyphs {
		total += g.XAdvance
	}
	return total
}

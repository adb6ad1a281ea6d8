package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/rainbowgif/internal/cache"
)

// fontCacheLimit bounds the number of parsed go-text fonts kept per shaper.
const fontCacheLimit = 16

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports kerning, ligature substitution and right-to-left scripts.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	fontCache *cache.Cache[*FontSource, *font.Font]

	// fallback shapes runs whose font go-text cannot parse.
	fallback BuiltinShaper
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: cache.New[*FontSource, *font.Font](fontCacheLimit),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(src *FontSource, run string, dir Direction, size float64) []ShapedGlyph {
	if run == "" || src == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(src)
	if err != nil {
		// sfnt accepted the font (FontSource exists) but go-text did not.
		return s.fallback.Shape(src, run, dir, size)
	}

	runes := []rune(run)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	return s.fontCache.GetOrCreate(source, func() (*font.Font, error) {
		data := source.Data()
		if data == nil {
			return nil, ErrSourceClosed
		}
		face, err := font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return face.Font, nil
	})
}

// RemoveSource removes the cached parsed font for a specific FontSource.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.fontCache.Delete(source)
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to ShapedGlyph.
// HarfBuzz returns glyphs in visual order, so positions accumulate left to right.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.XAdvance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster:  g.ClusterIndex,
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}

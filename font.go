package rainbowgif

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/rainbowgif/text"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont loads a TrueType or OpenType font. An empty path selects the
// bundled Go Regular font. The caller should Close the source when done.
func LoadFont(path string) (*text.FontSource, error) {
	if path == "" {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, &ResourceError{Err: err}
		}
		return src, nil
	}

	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	Logger().Debug("font loaded", "path", path, "name", src.Name())
	return src, nil
}

// RasterizeText renders s in white on black at size pixels per em.
// The result is exactly as large as the ink bounding box of the text.
//
// Empty text, a non-positive size and text without visible glyphs are
// reported as *InvalidInputError; an unusable font as *ResourceError.
func RasterizeText(src *text.FontSource, s string, size float64) (*image.Gray, error) {
	if s == "" {
		return nil, &InvalidInputError{Field: "text", Reason: "must not be empty"}
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, &InvalidInputError{Field: "font size", Reason: "must be a positive number"}
	}
	if src == nil {
		return nil, &InvalidInputError{Field: "font", Reason: "must not be nil"}
	}

	glyph, err := text.Rasterize(src, s, size)
	switch {
	case err == nil:
	case errors.Is(err, text.ErrNoInk):
		return nil, &InvalidInputError{Field: "text", Reason: "renders no visible glyphs", Err: err}
	case errors.Is(err, text.ErrEmptyText), errors.Is(err, text.ErrInvalidSize):
		return nil, &InvalidInputError{Field: "text", Reason: "rejected by rasterizer", Err: err}
	default:
		return nil, &ResourceError{Err: err}
	}

	b := glyph.Bounds()
	Logger().Debug("text rasterized", "text", s, "size", size, "width", b.Dx(), "height", b.Dy())
	return glyph, nil
}

// Package text turns a string into a tight single-line glyph bitmap.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Shaper: converts a run of text into positioned glyphs
//   - Layout: normalises the text and splits it into bidi runs on one baseline
//   - Rasterize: fills glyph outlines and crops to the inked area
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("ipag.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	mask, err := text.Rasterize(source, "77.7%", 128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned *image.Gray holds anti-aliased white-on-black coverage and is
// exactly as large as the rendered ink.
//
// # Pluggable backends
//
// Font parsing is abstracted through the FontParser interface; the default
// backend is golang.org/x/image/font/sfnt. Shaping defaults to HarfBuzz via
// github.com/go-text/typesetting and can be swapped per call:
//
//	mask, err := text.Rasterize(source, s, 64, text.WithShaper(&text.BuiltinShaper{}))
package text

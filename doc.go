// Package rainbowgif renders short text as a looping animated GIF whose
// glyphs are filled with a rotating rainbow gradient and traced by a solid
// outline.
//
// # Quick Start
//
//	opts := rainbowgif.DefaultOptions()
//	opts.Text = "Hello"
//	opts.Output = "hello.gif"
//	if err := rainbowgif.Generate(context.Background(), opts); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Generate chains four stages, each also usable on its own:
//
//   - [RasterizeText] draws the text in white on black, cropped to the
//     tight ink bounding box. Text is NFC-normalized, split into bidi runs
//     and shaped with HarfBuzz (see the text subpackage).
//   - [ExtractEdge] dilates the glyph bitmap and subtracts the original,
//     leaving a ring around every glyph.
//   - [GenerateGradient] paints a diagonal hue sweep for one phase of the
//     180-step hue cycle.
//   - [Render] composites glyph, gradient and edge for every retained
//     phase in parallel; [BuildGIF], [Encode] and [Save] turn the frames
//     into a GIF that loops forever.
//
// # Errors
//
// Every error matches one of [ErrInvalidInput], [ErrResource] or [ErrIO]
// with errors.Is, and can be inspected further with errors.As against
// [*InvalidInputError], [*ResourceError] or [*IOError].
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// diagnostics and a record of each written file.
package rainbowgif

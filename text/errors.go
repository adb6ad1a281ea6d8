package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyText is returned when there is nothing to render.
	ErrEmptyText = errors.New("text: empty text")

	// ErrInvalidSize is returned for a non-positive or non-finite font size.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrNoInk is returned when the text renders no visible pixels,
	// for example a string made only of spaces.
	ErrNoInk = errors.New("text: text renders no visible pixels")

	// ErrNilSource is returned when a nil FontSource is used.
	ErrNilSource = errors.New("text: nil font source")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// FontError reports a font that could not be read or parsed.
type FontError struct {
	// Path is the font file path, empty for in-memory data.
	Path string
	Err  error
}

func (e *FontError) Error() string {
	if e.Path == "" {
		return "text: load font: " + e.Err.Error()
	}
	return "text: load font " + e.Path + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }

package text

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can rasterize text at any number of sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr points back at the FontSource; a copy has addr != self.
	addr *FontSource

	// mu guards data and parsed against Close.
	mu sync.RWMutex

	data   []byte
	parsed ParsedFont

	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, &FontError{Err: ErrEmptyFontData}
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, &FontError{Err: err}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Path: path, Err: fmt.Errorf("read: %w", err)}
	}

	s, err := NewFontSource(data, opts...)
	if err != nil {
		var fe *FontError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font, or nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font bytes, or nil after Close.
// The returned slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases resources associated with the FontSource, including the
// default shaper's cached copy of the font.
// Rasterizing with a closed source returns ErrSourceClosed.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	s.data = nil
	s.parsed = nil
	s.mu.Unlock()

	if gts, ok := GetShaper().(*GoTextShaper); ok {
		gts.RemoveSource(s)
	}
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}

package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// RasterOption configures Rasterize.
type RasterOption func(*rasterConfig)

// rasterConfig holds configuration for a Rasterize call.
type rasterConfig struct {
	shaper Shaper
}

// defaultRasterConfig returns the default rasterization configuration.
func defaultRasterConfig() rasterConfig {
	return rasterConfig{
		shaper: GetShaper(),
	}
}

// WithShaper overrides the shaper used for a single Rasterize call.
// A nil shaper keeps the global one.
func WithShaper(s Shaper) RasterOption {
	return func(c *rasterConfig) {
		if s != nil {
			c.shaper = s
		}
	}
}

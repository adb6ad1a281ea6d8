package rainbowgif

import (
	"image"

	"github.com/gogpu/rainbowgif/internal/filter"
)

// ExtractEdge returns the outline ring around glyph: glyph dilated with a
// 3×3 max filter iterations times, minus glyph itself. Subtraction
// saturates at zero. iterations <= 0 yields an all-zero bitmap.
// The result has glyph's bounds.
func ExtractEdge(glyph *image.Gray, iterations int) *image.Gray {
	if iterations <= 0 {
		return image.NewGray(glyph.Bounds())
	}
	return filter.SubtractSaturating(filter.Dilate(glyph, iterations), glyph)
}

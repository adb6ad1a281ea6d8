package rainbowgif

import (
	"image"
	"testing"
)

func TestExtractEdgeDisabled(t *testing.T) {
	glyph := image.NewGray(image.Rect(0, 0, 5, 5))
	glyph.Pix[12] = 255
	for _, it := range []int{0, -1} {
		edge := ExtractEdge(glyph, it)
		if edge.Bounds() != glyph.Bounds() {
			t.Fatalf("bounds = %v, want %v", edge.Bounds(), glyph.Bounds())
		}
		for i, v := range edge.Pix {
			if v != 0 {
				t.Fatalf("iterations=%d: Pix[%d] = %d, want 0", it, i, v)
			}
		}
	}
}

func TestExtractEdgeRing(t *testing.T) {
	glyph := image.NewGray(image.Rect(0, 0, 7, 7))
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			glyph.SetGray(x, y, grayOf(255))
		}
	}
	edge := ExtractEdge(glyph, 1)
	for y := range 7 {
		for x := range 7 {
			ring := x >= 1 && x <= 5 && y >= 1 && y <= 5 && !(x >= 2 && x <= 4 && y >= 2 && y <= 4)
			got := edge.GrayAt(x, y).Y
			if ring && got != 255 {
				t.Errorf("(%d,%d) = %d, want 255", x, y, got)
			}
			if !ring && got != 0 {
				t.Errorf("(%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestExtractEdgeAdjacency(t *testing.T) {
	src := loadDefaultFont(t)
	glyph, err := RasterizeText(src, "A%", 48)
	if err != nil {
		t.Fatal(err)
	}

	for _, iterations := range []int{1, 2} {
		edge := ExtractEdge(glyph, iterations)
		b := glyph.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if glyph.GrayAt(x, y).Y == 255 && edge.GrayAt(x, y).Y != 0 {
					t.Fatalf("iterations=%d: saturated glyph pixel (%d,%d) is an edge", iterations, x, y)
				}
				if edge.GrayAt(x, y).Y > 0 && !nearInk(glyph, x, y, iterations) {
					t.Fatalf("iterations=%d: edge pixel (%d,%d) has no glyph pixel within %d", iterations, x, y, iterations)
				}
			}
		}
	}
}

// nearInk reports whether glyph has a positive sample within Chebyshev
// distance r of (x, y).
func nearInk(glyph *image.Gray, x, y, r int) bool {
	win := image.Rect(x-r, y-r, x+r+1, y+r+1).Intersect(glyph.Bounds())
	for yy := win.Min.Y; yy < win.Max.Y; yy++ {
		for xx := win.Min.X; xx < win.Max.X; xx++ {
			if glyph.GrayAt(xx, yy).Y > 0 {
				return true
			}
		}
	}
	return false
}

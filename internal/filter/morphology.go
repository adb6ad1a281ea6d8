package filter

import "image"

// MaxFilter returns a copy of src where every sample is replaced by the
// maximum of its size×size neighbourhood. Neighbours outside the image are
// ignored. Even sizes are rounded up to the next odd size; size <= 1
// returns an unmodified copy.
//
// The filter is separable: a horizontal pass into a temporary buffer is
// followed by a vertical pass into the destination.
func MaxFilter(src *image.Gray, size int) *image.Gray {
	dst := image.NewGray(src.Bounds())
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return dst
	}

	radius := size / 2
	if radius <= 0 {
		copyGray(dst, src)
		return dst
	}

	temp := make([]uint8, w*h)
	maxHorizontal(src, temp, w, h, radius)
	maxVertical(temp, dst, w, h, radius)
	return dst
}

// Dilate applies a 3×3 max filter iterations times.
// iterations <= 0 returns an unmodified copy.
func Dilate(src *image.Gray, iterations int) *image.Gray {
	out := image.NewGray(src.Bounds())
	copyGray(out, src)
	for range max(iterations, 0) {
		out = MaxFilter(out, 3)
	}
	return out
}

// SubtractSaturating returns max(a-b, 0) per sample over the intersection
// of the two bounds. Samples never wrap around.
func SubtractSaturating(a, b *image.Gray) *image.Gray {
	r := a.Bounds().Intersect(b.Bounds())
	dst := image.NewGray(a.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ai := a.PixOffset(r.Min.X, y)
		bi := b.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := 0; x < r.Dx(); x++ {
			av, bv := a.Pix[ai+x], b.Pix[bi+x]
			if av > bv {
				dst.Pix[di+x] = av - bv
			}
		}
	}
	return dst
}

// maxHorizontal writes the running row maximum of src into temp.
func maxHorizontal(src *image.Gray, temp []uint8, w, h, radius int) {
	b := src.Bounds()
	for y := 0; y < h; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		out := temp[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			lo := max(x-radius, 0)
			hi := min(x+radius, w-1)
			m := row[lo]
			for k := lo + 1; k <= hi; k++ {
				if row[k] > m {
					m = row[k]
				}
			}
			out[x] = m
		}
	}
}

// maxVertical writes the running column maximum of temp into dst.
func maxVertical(temp []uint8, dst *image.Gray, w, h, radius int) {
	b := dst.Bounds()
	for y := 0; y < h; y++ {
		lo := max(y-radius, 0)
		hi := min(y+radius, h-1)
		out := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			m := temp[lo*w+x]
			for k := lo + 1; k <= hi; k++ {
				if v := temp[k*w+x]; v > m {
					m = v
				}
			}
			out[x] = m
		}
	}
}

// copyGray copies src into dst; both must share bounds.
func copyGray(dst, src *image.Gray) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)],
			src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
	}
}

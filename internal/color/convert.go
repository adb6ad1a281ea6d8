package color

// HSVToRGB converts hue, saturation and value in [0,1] to RGB in [0,1].
// Hue wraps: h and h+1 yield the same color.
func HSVToRGB(h, s, v float64) ColorF64 {
	if s == 0 {
		return ColorF64{R: v, G: v, B: v}
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch ((i % 6) + 6) % 6 {
	case 0:
		return ColorF64{R: v, G: t, B: p}
	case 1:
		return ColorF64{R: q, G: v, B: p}
	case 2:
		return ColorF64{R: p, G: v, B: t}
	case 3:
		return ColorF64{R: p, G: q, B: v}
	case 4:
		return ColorF64{R: t, G: p, B: v}
	default:
		return ColorF64{R: v, G: p, B: q}
	}
}

// F64ToU8 converts each component to a byte by truncation, not rounding:
// 0.999 maps to 254. Components are clamped to [0,1] first.
func F64ToU8(c ColorF64) ColorU8 {
	return ColorU8{
		R: truncate(c.R),
		G: truncate(c.G),
		B: truncate(c.B),
	}
}

// HueColor returns the fully saturated, full-value color for a hue angle
// in [0, HueRange), truncated to bytes.
func HueColor(angle int) ColorU8 {
	return F64ToU8(HSVToRGB(float64(angle)/HueRange, 1, 1))
}

// truncate clamps v to [0,1] and scales to [0,255] dropping the fraction.
func truncate(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

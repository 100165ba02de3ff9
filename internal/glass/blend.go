package glass

// Blend composites src over dst. Fully transparent sources leave dst
// untouched and fully opaque sources replace it; the result is always opaque.
func Blend(dst, src Color) Color {
	sa := uint32(src >> 24)
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src
	}

	inv := 255 - sa
	r := (uint32(src.Red())*sa + uint32(dst.Red())*inv) / 255
	g := (uint32(src.Green())*sa + uint32(dst.Green())*inv) / 255
	b := (uint32(src.Blue())*sa + uint32(dst.Blue())*inv) / 255

	return Color(0xFF000000 | r<<16 | g<<8 | b)
}

package glass

import "image/color"

// Color is a packed 0xAARRGGBB pixel value.
type Color uint32

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// Lerp interpolates each channel between c and to. t is clamped to [0,1].
func (c Color) Lerp(to Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return ARGB(
		mix(c.Alpha(), to.Alpha()),
		mix(c.Red(), to.Red()),
		mix(c.Green(), to.Green()),
		mix(c.Blue(), to.Blue()),
	)
}

// RGBA implements color.Color. Channels are not premultiplied in the packed
// value, so they are premultiplied here.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if gc, ok := c.(Color); ok {
		return gc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
})

package glass

import (
	"image"
	"image/color"

	"github.com/1broseidon/glasshell/internal/geom"
)

// Canvas pairs a pixel buffer with its dimensions. It implements draw.Image
// so text and image helpers from x/image can render straight into the
// surface memory.
type Canvas struct {
	Pix  []uint32
	Size geom.Size
}

// NewCanvas allocates a zeroed canvas.
func NewCanvas(size geom.Size) *Canvas {
	return &Canvas{Pix: make([]uint32, size.Area()), Size: size}
}

// DrawRect paints a glass rectangle onto the canvas.
func (c *Canvas) DrawRect(rect geom.Rect, style Style) {
	DrawRect(c.Pix, c.Size, rect, style)
}

// FillRect overwrites rect with col.
func (c *Canvas) FillRect(rect geom.Rect, col Color) {
	FillRect(c.Pix, c.Size, rect, col)
}

// FillRectBlend composites col over rect.
func (c *Canvas) FillRectBlend(rect geom.Rect, col Color) {
	FillRectBlend(c.Pix, c.Size, rect, col)
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col Color) {
	for i := range c.Pix {
		c.Pix[i] = uint32(col)
	}
}

// PixelAt returns the packed pixel at (x, y), or 0 when out of bounds.
func (c *Canvas) PixelAt(x, y int) Color {
	if idx, ok := index(c.Pix, c.Size, x, y); ok {
		return Color(c.Pix[idx])
	}
	return 0
}

func (c *Canvas) ColorModel() color.Model { return ColorModel }

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Size.Width, c.Size.Height)
}

func (c *Canvas) At(x, y int) color.Color { return c.PixelAt(x, y) }

// Set overwrites the pixel at (x, y). draw.DrawMask with draw.Over has
// already composited col against At(x, y) by the time Set is called.
func (c *Canvas) Set(x, y int, col color.Color) {
	PutPixel(c.Pix, c.Size, x, y, ColorModel.Convert(col).(Color))
}

// Package geom holds the integer screen geometry shared by the shell's
// rasterizer, panels and taskbar.
package geom

// Point is a screen coordinate.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Area returns Width*Height, or 0 for degenerate sizes.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Rect describes a half-open rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// ContainsPoint reports whether (x, y) lies inside r. The left and top edges
// are inclusive, the right and bottom edges are exclusive.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// FullScreen returns the rectangle covering a screen of size s.
func FullScreen(s Size) Rect { return Rect{Width: s.Width, Height: s.Height} }

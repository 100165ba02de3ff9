// Package glass rasterizes translucent rounded rectangles into caller-owned
// ARGB pixel buffers.
//
// Buffers are row-major with a stride equal to the surface width. Every
// write is clipped against both the surface size and the buffer length, so
// callers may pass rectangles that lie partly or fully off-screen.
package glass

import (
	"math"

	"github.com/1broseidon/glasshell/internal/geom"
)

// DrawRect paints rect with style: a rounded background fill, an optional
// 1px rounded border and an optional 1px highlight line under the top edge.
func DrawRect(buf []uint32, size geom.Size, rect geom.Rect, style Style) {
	fillRounded(buf, size, rect, style.Background, style.CornerRadius)

	if style.BorderThickness > 0 {
		strokeRounded(buf, size, rect, style.Border, style.CornerRadius)
	}

	if style.Highlight.Alpha() > 0 {
		w := rect.Width - 2*style.CornerRadius
		if w < 0 {
			w = 0
		}
		FillRectBlend(buf, size, geom.Rect{
			X:      rect.X + style.CornerRadius,
			Y:      rect.Y + 1,
			Width:  w,
			Height: 1,
		}, style.Highlight)
	}
}

// FillRect overwrites every pixel of rect with c, ignoring alpha.
func FillRect(buf []uint32, size geom.Size, rect geom.Rect, c Color) {
	x0, x1 := clampSpan(rect.X, rect.Right(), size.Width)
	if x0 >= x1 {
		return
	}
	for sy := rect.Y; sy < rect.Bottom(); sy++ {
		if sy < 0 || sy >= size.Height {
			continue
		}
		start, end := sy*size.Width+x0, sy*size.Width+x1
		if end > len(buf) {
			return
		}
		row := buf[start:end]
		for i := range row {
			row[i] = uint32(c)
		}
	}
}

// FillRectBlend composites c over every pixel of rect.
func FillRectBlend(buf []uint32, size geom.Size, rect geom.Rect, c Color) {
	if c.Alpha() == 0 {
		return
	}
	for sy := rect.Y; sy < rect.Bottom(); sy++ {
		for sx := rect.X; sx < rect.Right(); sx++ {
			PutPixelBlend(buf, size, sx, sy, c)
		}
	}
}

// PutPixel overwrites a single pixel if it lies inside the surface.
func PutPixel(buf []uint32, size geom.Size, x, y int, c Color) {
	if idx, ok := index(buf, size, x, y); ok {
		buf[idx] = uint32(c)
	}
}

// PutPixelBlend composites c over a single pixel if it lies inside the surface.
func PutPixelBlend(buf []uint32, size geom.Size, x, y int, c Color) {
	if idx, ok := index(buf, size, x, y); ok {
		buf[idx] = uint32(Blend(Color(buf[idx]), c))
	}
}

func index(buf []uint32, size geom.Size, x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= size.Width || y >= size.Height {
		return 0, false
	}
	idx := y*size.Width + x
	if idx >= len(buf) {
		return 0, false
	}
	return idx, true
}

func clampSpan(from, to, limit int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > limit {
		to = limit
	}
	return from, to
}

func fillRounded(buf []uint32, size geom.Size, rect geom.Rect, c Color, r int) {
	alpha := c.Alpha()
	if alpha == 0 {
		return
	}

	for y := 0; y < rect.Height; y++ {
		sy := rect.Y + y
		if sy < 0 || sy >= size.Height {
			continue
		}

		inset := 0
		switch {
		case y < r:
			inset = cornerInset(r, r-1-y)
		case y >= rect.Height-r:
			inset = cornerInset(r, y-(rect.Height-r))
		}

		x0, x1 := clampSpan(rect.X+inset, rect.X+rect.Width-inset, size.Width)
		if x0 >= x1 {
			continue
		}
		start, end := sy*size.Width+x0, sy*size.Width+x1
		if end > len(buf) {
			continue
		}

		row := buf[start:end]
		if alpha == 255 {
			for i := range row {
				row[i] = uint32(c)
			}
			continue
		}
		for i := range row {
			row[i] = uint32(Blend(Color(row[i]), c))
		}
	}
}

// cornerInset returns how far a row at distance d from the corner center is
// pushed inward by a circle of radius r.
func cornerInset(r, d int) int {
	if d >= r {
		return r
	}
	rf, df := float32(r), float32(d)
	return int(rf - float32(math.Sqrt(float64(rf*rf-df*df))))
}

func strokeRounded(buf []uint32, size geom.Size, rect geom.Rect, c Color, r int) {
	top, bottom := rect.Y, rect.Y+rect.Height-1
	for x := r; x < rect.Width-r; x++ {
		PutPixelBlend(buf, size, rect.X+x, top, c)
		PutPixelBlend(buf, size, rect.X+x, bottom, c)
	}

	left, right := rect.X, rect.X+rect.Width-1
	for y := r; y < rect.Height-r; y++ {
		PutPixelBlend(buf, size, left, rect.Y+y, c)
		PutPixelBlend(buf, size, right, rect.Y+y, c)
	}

	cxL, cxR := rect.X+r, rect.X+rect.Width-r-1
	cyT, cyB := rect.Y+r, rect.Y+rect.Height-r-1
	cornerArc(buf, size, cxL, cyT, r, c, topLeft)
	cornerArc(buf, size, cxR, cyT, r, c, topRight)
	cornerArc(buf, size, cxL, cyB, r, c, bottomLeft)
	cornerArc(buf, size, cxR, cyB, r, c, bottomRight)
}

type quadrant int

const (
	topLeft quadrant = iota
	topRight
	bottomLeft
	bottomRight
)

// cornerArc plots one eighth-symmetric quarter of a midpoint circle.
func cornerArc(buf []uint32, size geom.Size, cx, cy, r int, c Color, q quadrant) {
	x, y := 0, r
	d := 3 - 2*r

	for x <= y {
		var pts [2][2]int
		switch q {
		case topLeft:
			pts = [2][2]int{{-x, -y}, {-y, -x}}
		case topRight:
			pts = [2][2]int{{x, -y}, {y, -x}}
		case bottomLeft:
			pts = [2][2]int{{-x, y}, {-y, x}}
		case bottomRight:
			pts = [2][2]int{{x, y}, {y, x}}
		}
		for _, p := range pts {
			PutPixelBlend(buf, size, cx+p[0], cy+p[1], c)
		}

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

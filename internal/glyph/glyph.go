// Package glyph renders UI text with the embedded Go Regular font.
package glyph

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/1broseidon/glasshell/internal/glass"
)

const ellipsis = "…"

// Face draws single-line strings at one size. A nil *Face draws nothing and
// measures every string as zero width.
type Face struct {
	face    font.Face
	ascent  int
	descent int
}

// New parses the embedded font at the given pixel size.
func New(size float64) (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	m := face.Metrics()
	return &Face{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// Height returns the line box height in pixels.
func (f *Face) Height() int {
	if f == nil {
		return 0
	}
	return f.ascent + f.descent
}

// Measure returns the advance width of text in pixels.
func (f *Face) Measure(text string) int {
	if f == nil {
		return 0
	}
	return font.MeasureString(f.face, text).Ceil()
}

// Draw renders text with its line box top-left corner at (x, y).
func (f *Face) Draw(dst draw.Image, x, y int, text string, c glass.Color) {
	if f == nil || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(text)
}

// DrawCentered renders text centered inside a box.
func (f *Face) DrawCentered(dst draw.Image, x, y, w, h int, text string, c glass.Color) {
	if f == nil {
		return
	}
	tx := x + (w-f.Measure(text))/2
	ty := y + (h-f.Height())/2
	f.Draw(dst, tx, ty, text, c)
}

// Truncate shortens text to fit maxWidth, ending it with an ellipsis when
// anything was cut.
func (f *Face) Truncate(text string, maxWidth int) string {
	if f == nil || f.Measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if f.Measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// Initial returns the first letter of s in upper case, or "?" for blank input.
func Initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "?"
	}
	r := []rune(s)[0]
	return strings.ToUpper(string(r))
}

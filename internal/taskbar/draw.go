package taskbar

import (
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/theme"
)

// Seven-segment digit metrics.
const (
	digitWidth     = 6
	digitHeight    = 12
	digitThickness = 2
)

// Segment bits, most significant first: top, top-left, top-right, middle,
// bottom-left, bottom-right, bottom.
const (
	segTop         = 1 << 6
	segTopLeft     = 1 << 5
	segTopRight    = 1 << 4
	segMiddle      = 1 << 3
	segBottomLeft  = 1 << 2
	segBottomRight = 1 << 1
	segBottom      = 1 << 0
)

var digitSegments = [10]uint8{
	0b1110111,
	0b0010010,
	0b1011101,
	0b1011011,
	0b0111010,
	0b1101011,
	0b1101111,
	0b1010010,
	0b1111111,
	0b1111011,
}

// Draw paints the three bars and their contents.
func (t *Taskbar) Draw(c *glass.Canvas) {
	style := theme.Bar(t.layout.Radius)
	c.DrawRect(t.widgetBar, style)
	c.DrawRect(t.centerBar, style)
	c.DrawRect(t.statusBar, style)

	t.drawWidgetButton(c)
	t.drawCenter(c)
	t.drawClock(c)
}

func fill(c *glass.Canvas, x, y, w, h int, col glass.Color) {
	c.FillRect(geom.Rect{X: x, Y: y, Width: w, Height: h}, col)
}

func (t *Taskbar) drawWidgetButton(c *glass.Canvas) {
	const icon, gap = 20, 3
	half := icon/2 - 2
	x := t.widgetBar.X + (t.widgetBar.Width-icon)/2
	y := t.widgetBar.Y + (t.widgetBar.Height-icon)/2

	fill(c, x, y, half, half, theme.IconNormal)
	fill(c, x+half+gap, y, half, half, theme.IconNormal)
	fill(c, x, y+half+gap, half, half, theme.IconNormal)
	fill(c, x+half+gap, y+half+gap, half, half, theme.IconNormal)
}

func (t *Taskbar) drawCenter(c *glass.Canvas) {
	bar := t.centerBar
	menuX := bar.X + t.layout.Padding
	menuY := bar.Y + (bar.Height-menuIconHeight)/2
	for i := 0; i < 3; i++ {
		fill(c, menuX, menuY+i*6, menuIconWidth, 2, theme.IconNormal)
	}

	c.FillRectBlend(geom.Rect{X: t.menuAreaEnd(), Y: bar.Y + 8, Width: 1, Height: bar.Height - 16}, theme.MenuSeparator)

	for i, w := range t.windows {
		slot, fits := t.iconSlot(i)
		if !fits {
			break
		}
		t.drawWindowTile(c, slot, w)
	}
}

func (t *Taskbar) drawWindowTile(c *glass.Canvas, slot geom.Rect, w Window) {
	bg := theme.GlassBGActive
	fg := theme.TextPrimary
	if w.Minimized {
		bg = theme.BGMedium
		fg = theme.TextSecondary
	}
	c.FillRect(slot, bg)

	if t.face != nil {
		t.face.DrawCentered(c, slot.X, slot.Y, slot.Width, slot.Height-4, glyph.Initial(w.Title), fg)
	}

	if !w.Minimized {
		fill(c, slot.X+4, slot.Bottom()-3, slot.Width-8, 2, theme.Accent)
	}
}

// drawClock renders the uptime as HH:MM:SS.
func (t *Taskbar) drawClock(c *glass.Canvas) {
	secs := t.uptime
	h, m, s := secs/3600, (secs%3600)/60, secs%60

	y := t.statusBar.Y + (t.statusBar.Height-digitHeight)/2
	x := t.statusBar.X + 12
	for i, v := range [3]int64{h, m, s} {
		if i > 0 {
			fill(c, x, y+2, 2, 2, theme.TextPrimary)
			fill(c, x, y+8, 2, 2, theme.TextPrimary)
			x += 6
		}
		drawDigit(c, x, y, int(v/10))
		x += 10
		drawDigit(c, x, y, int(v%10))
		x += 12
	}
}

func drawDigit(c *glass.Canvas, x, y, digit int) {
	const w, h, th = digitWidth, digitHeight, digitThickness
	col := theme.TextPrimary
	seg := digitSegments[digit%10]

	if seg&segTop != 0 {
		fill(c, x, y, w, th, col)
	}
	if seg&segTopLeft != 0 {
		fill(c, x, y, th, h/2, col)
	}
	if seg&segTopRight != 0 {
		fill(c, x+w-th, y, th, h/2, col)
	}
	if seg&segMiddle != 0 {
		fill(c, x, y+h/2-th/2, w, th, col)
	}
	if seg&segBottomLeft != 0 {
		fill(c, x, y+h/2, th, h/2, col)
	}
	if seg&segBottomRight != 0 {
		fill(c, x+w-th, y+h/2, th, h/2, col)
	}
	if seg&segBottom != 0 {
		fill(c, x, y+h-th, w, th, col)
	}
}

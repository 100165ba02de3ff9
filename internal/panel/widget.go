package panel

import (
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/theme"
)

// Widget is the left-hand panel above the widget bar. It has no widgets yet
// and shows an empty-state placeholder.
type Widget struct {
	slide
	layout config.LayoutConfig
	face   *glyph.Face
}

var _ Panel = (*Widget)(nil)

func NewWidget(screen geom.Size, layout config.LayoutConfig, speed float64, face *glyph.Face) *Widget {
	p := &Widget{layout: layout, face: face}
	p.speed = speed
	p.Resize(screen)
	return p
}

func (p *Widget) Kind() Kind { return KindWidget }

func (p *Widget) SetVisible(visible bool) { p.visible = visible }

func (p *Widget) Toggle() { p.SetVisible(!p.IsVisible()) }

func (p *Widget) Resize(screen geom.Size) {
	size := p.layout.WidgetPanel
	p.screen = screen
	p.bounds = geom.Rect{
		X:      p.layout.Margin,
		Y:      restingY(screen, p.layout, size.Height),
		Width:  size.Width,
		Height: size.Height,
	}
}

func (p *Widget) HandleClick(x, y int) bool {
	if !p.visible {
		return false
	}
	return p.bounds.ContainsPoint(x, y)
}

func (p *Widget) TakeAction() Action { return Action{} }

func (p *Widget) Draw(c *glass.Canvas) {
	if !p.IsVisible() {
		return
	}
	r := p.animated()
	c.DrawRect(r, theme.Panel(p.layout.PanelRadius))
	if p.contentShown() {
		p.drawEmpty(c, r)
	}
}

func (p *Widget) drawEmpty(c *glass.Canvas, r geom.Rect) {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2

	const icon, gap = 48, 8
	half := icon/2 - 4
	ix, iy := cx-icon/2, cy-40
	for _, off := range [][2]int{{0, 0}, {half + gap, 0}, {0, half + gap}, {half + gap, half + gap}} {
		fill(c, ix+off[0], iy+off[1], half, half, theme.TextDisabled)
	}

	msg := "No widgets yet"
	if p.face != nil {
		p.face.DrawCentered(c, r.X, cy+24, r.Width, p.face.Height(), msg, theme.TextSecondary)
		return
	}
	fill(c, cx-80, cy+30, 160, 2, theme.TextSecondary)
	fill(c, cx-60, cy+40, 120, 2, theme.TextSecondary)
}

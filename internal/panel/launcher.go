package panel

import (
	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/theme"
)

// Header geometry above the app list.
const (
	launcherTitleHeight = 24
	launcherListGap     = 12
)

// Launcher is the centered start menu listing discovered applications.
type Launcher struct {
	slide
	layout  config.LayoutConfig
	face    *glyph.Face
	apps    []apps.AppInfo
	hover   int
	scroll  int
	pending Action
}

var _ Panel = (*Launcher)(nil)

func NewLauncher(screen geom.Size, layout config.LayoutConfig, speed float64, face *glyph.Face) *Launcher {
	p := &Launcher{layout: layout, face: face, hover: -1}
	p.speed = speed
	p.Resize(screen)
	return p
}

func (p *Launcher) Kind() Kind { return KindLauncher }

// SetApps replaces the listed applications.
func (p *Launcher) SetApps(list []apps.AppInfo) {
	p.apps = append([]apps.AppInfo(nil), list...)
	p.hover = -1
	p.scroll = min(p.scroll, p.maxScroll())
}

// Apps returns the listed applications.
func (p *Launcher) Apps() []apps.AppInfo { return p.apps }

// SetVisible changes the target; hiding also clears hover and scroll.
func (p *Launcher) SetVisible(visible bool) {
	p.visible = visible
	if !visible {
		p.hover = -1
		p.scroll = 0
	}
}

func (p *Launcher) Toggle() { p.SetVisible(!p.IsVisible()) }

func (p *Launcher) Resize(screen geom.Size) {
	size := p.layout.StartMenu
	p.screen = screen
	p.bounds = geom.Rect{
		X:      (screen.Width - size.Width) / 2,
		Y:      restingY(screen, p.layout, size.Height),
		Width:  size.Width,
		Height: size.Height,
	}
	p.scroll = min(p.scroll, p.maxScroll())
}

func (p *Launcher) listTop() int {
	return p.bounds.Y + p.layout.PanelPadding + launcherTitleHeight + launcherListGap
}

func (p *Launcher) viewportHeight() int {
	return max(p.bounds.Height-(p.listTop()-p.bounds.Y)-p.layout.PanelPadding, 0)
}

func (p *Launcher) maxScroll() int {
	return max(len(p.apps)*p.layout.AppItemHeight-p.viewportHeight(), 0)
}

// Scroll moves the list by whole rows and reports whether it moved.
func (p *Launcher) Scroll(rows int) bool {
	if !p.visible {
		return false
	}
	next := p.scroll + rows*p.layout.AppItemHeight
	next = max(min(next, p.maxScroll()), 0)
	if next == p.scroll {
		return false
	}
	p.scroll = next
	p.hover = -1
	return true
}

// ScrollOffset returns the list scroll in pixels.
func (p *Launcher) ScrollOffset() int { return p.scroll }

// appAt returns the index of the row under (x, y), or -1.
func (p *Launcher) appAt(x, y int) int {
	half := p.layout.PanelPadding / 2
	if x < p.bounds.X+half || x > p.bounds.Right()-half {
		return -1
	}
	top := p.listTop()
	if y < top || y >= top+p.viewportHeight() {
		return -1
	}
	idx := (y - top + p.scroll) / p.layout.AppItemHeight
	if idx >= len(p.apps) {
		return -1
	}
	return idx
}

// Hover tracks the row under the pointer and reports whether it changed.
func (p *Launcher) Hover(x, y int) bool {
	idx := -1
	if p.visible && p.bounds.ContainsPoint(x, y) {
		idx = p.appAt(x, y)
	}
	if idx == p.hover {
		return false
	}
	p.hover = idx
	return true
}

// HandleClick consumes clicks inside the panel. A click on a row queues a
// launch and closes the panel.
func (p *Launcher) HandleClick(x, y int) bool {
	if !p.visible {
		return false
	}
	if !p.bounds.ContainsPoint(x, y) {
		return false
	}
	if idx := p.appAt(x, y); idx >= 0 {
		p.pending = Action{Kind: ActionLaunch, Path: p.apps[idx].Path}
		p.SetVisible(false)
	}
	return true
}

func (p *Launcher) TakeAction() Action {
	a := p.pending
	p.pending = Action{}
	return a
}

func (p *Launcher) Draw(c *glass.Canvas) {
	if !p.IsVisible() {
		return
	}
	r := p.animated()
	c.DrawRect(r, theme.Panel(p.layout.PanelRadius))
	if p.contentShown() {
		p.drawList(c, r.Y-p.bounds.Y)
	}
}

func (p *Launcher) drawList(c *glass.Canvas, dy int) {
	l := p.layout
	b := p.bounds
	pad := l.PanelPadding

	titleY := b.Y + pad + dy
	if p.face != nil {
		p.face.Draw(c, b.X+pad, titleY, "Applications", theme.TextPrimary)
	} else {
		fill(c, b.X+pad, titleY, 100, 3, theme.TextPrimary)
	}

	sepY := titleY + launcherTitleHeight
	fill(c, b.X+pad, sepY, max(b.Width-2*pad, 0), 1, theme.MenuSeparator)

	top := p.listTop() + dy
	view := p.viewportHeight()
	itemH := l.AppItemHeight

	if len(p.apps) == 0 {
		if p.face != nil {
			p.face.DrawCentered(c, b.X, top, b.Width, itemH, "No applications found", theme.TextSecondary)
		}
		return
	}

	nameX := b.X + pad + l.AppIconSize + l.AppIconGap
	nameW := b.Right() - pad - nameX
	for i, app := range p.apps {
		y := top + i*itemH - p.scroll
		if y < top || y+itemH > top+view {
			continue
		}

		if i == p.hover {
			fill(c, b.X+pad/2, y, b.Width-pad, itemH, theme.MenuItemHover)
		}

		iconX := b.X + pad
		iconY := y + (itemH-l.AppIconSize)/2
		fill(c, iconX, iconY, l.AppIconSize, l.AppIconSize, theme.AppColor(app.ID))

		if p.face == nil {
			fill(c, iconX+l.AppIconSize/2-4, iconY+l.AppIconSize/2-4, 8, 8, theme.White)
			fill(c, nameX, y+itemH/2-2, min(len(app.Name)*8, 200), 4, theme.TextPrimary)
			continue
		}
		p.face.DrawCentered(c, iconX, iconY, l.AppIconSize, l.AppIconSize, glyph.Initial(app.Name), theme.White)
		name := p.face.Truncate(app.Name, nameW)
		p.face.Draw(c, nameX, y+(itemH-p.face.Height())/2, name, theme.TextPrimary)
	}

	total := len(p.apps) * itemH
	if total > view && view > 0 {
		barH := view * view / total
		barY := top
		if ms := p.maxScroll(); ms > 0 {
			barY += p.scroll * (view - barH) / ms
		}
		fill(c, b.Right()-6, barY, 3, barH, theme.GlassBorder)
	}
}

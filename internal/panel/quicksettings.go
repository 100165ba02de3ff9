package panel

import (
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/theme"
)

// Setting is one quick-settings toggle.
type Setting int

const (
	SettingWifi Setting = iota
	SettingBluetooth
	SettingVolume
	SettingBrightness
	SettingDoNotDisturb
	SettingAirplaneMode
)

func (s Setting) String() string {
	switch s {
	case SettingWifi:
		return "wifi"
	case SettingBluetooth:
		return "bluetooth"
	case SettingVolume:
		return "volume"
	case SettingBrightness:
		return "brightness"
	case SettingDoNotDisturb:
		return "do_not_disturb"
	case SettingAirplaneMode:
		return "airplane_mode"
	default:
		return "unknown"
	}
}

func (s Setting) label() string {
	switch s {
	case SettingWifi:
		return "Wi-Fi"
	case SettingBluetooth:
		return "Bluetooth"
	case SettingVolume:
		return "Sound"
	case SettingBrightness:
		return "Display"
	case SettingDoNotDisturb:
		return "Focus"
	case SettingAirplaneMode:
		return "Airplane"
	default:
		return ""
	}
}

// Grid geometry.
const (
	quickCellSize = 80
	quickCellGap  = 12
	quickCols     = 3
)

type quickItem struct {
	setting Setting
	active  bool
}

// QuickSettings is the right-hand panel above the status bar.
type QuickSettings struct {
	slide
	layout  config.LayoutConfig
	face    *glyph.Face
	items   []quickItem
	pending Action
}

var _ Panel = (*QuickSettings)(nil)

func NewQuickSettings(screen geom.Size, layout config.LayoutConfig, speed float64, face *glyph.Face) *QuickSettings {
	p := &QuickSettings{
		layout: layout,
		face:   face,
		items: []quickItem{
			{SettingWifi, true},
			{SettingBluetooth, false},
			{SettingVolume, true},
			{SettingBrightness, true},
			{SettingDoNotDisturb, false},
			{SettingAirplaneMode, false},
		},
	}
	p.speed = speed
	p.Resize(screen)
	return p
}

func (p *QuickSettings) Kind() Kind { return KindQuickSettings }

func (p *QuickSettings) SetVisible(visible bool) { p.visible = visible }

func (p *QuickSettings) Toggle() { p.SetVisible(!p.IsVisible()) }

func (p *QuickSettings) Resize(screen geom.Size) {
	size := p.layout.QuickSettings
	p.screen = screen
	p.bounds = geom.Rect{
		X:      screen.Width - size.Width - p.layout.Margin,
		Y:      restingY(screen, p.layout, size.Height),
		Width:  size.Width,
		Height: size.Height,
	}
}

// Enabled reports the state of a toggle.
func (p *QuickSettings) Enabled(s Setting) bool {
	for _, it := range p.items {
		if it.setting == s {
			return it.active
		}
	}
	return false
}

func (p *QuickSettings) cell(i int, origin geom.Point) geom.Rect {
	pad := p.layout.PanelPadding
	col, row := i%quickCols, i/quickCols
	return geom.Rect{
		X:      origin.X + pad + col*(quickCellSize+quickCellGap),
		Y:      origin.Y + pad + row*(quickCellSize+quickCellGap),
		Width:  quickCellSize,
		Height: quickCellSize,
	}
}

// HandleClick consumes clicks inside the panel; a click on a tile flips it.
func (p *QuickSettings) HandleClick(x, y int) bool {
	if !p.visible {
		return false
	}
	if !p.bounds.ContainsPoint(x, y) {
		return false
	}
	origin := geom.Point{X: p.bounds.X, Y: p.bounds.Y}
	for i := range p.items {
		if p.cell(i, origin).ContainsPoint(x, y) {
			p.items[i].active = !p.items[i].active
			p.pending = Action{
				Kind:    ActionToggleSetting,
				Setting: p.items[i].setting,
				Enabled: p.items[i].active,
			}
			break
		}
	}
	return true
}

func (p *QuickSettings) TakeAction() Action {
	a := p.pending
	p.pending = Action{}
	return a
}

func (p *QuickSettings) Draw(c *glass.Canvas) {
	if !p.IsVisible() {
		return
	}
	r := p.animated()
	c.DrawRect(r, theme.Panel(p.layout.PanelRadius))
	if !p.contentShown() {
		return
	}

	origin := geom.Point{X: r.X, Y: r.Y}
	for i, it := range p.items {
		cell := p.cell(i, origin)
		style := glass.Style{
			Background:   theme.BGMedium,
			CornerRadius: 12,
		}
		fg := theme.IconNormal
		if it.active {
			style.Background = theme.Accent
			fg = theme.White
		}
		c.DrawRect(cell, style)

		cx, cy := cell.X+cell.Width/2, cell.Y+cell.Height/2-8
		drawSettingIcon(c, cx, cy, it.setting, fg)
		if p.face != nil {
			p.face.DrawCentered(c, cell.X, cell.Bottom()-p.face.Height()-6, cell.Width, p.face.Height(), it.setting.label(), fg)
		}
	}
}

func drawSettingIcon(c *glass.Canvas, cx, cy int, s Setting, col glass.Color) {
	var bars [][4]int
	switch s {
	case SettingWifi:
		bars = [][4]int{{-12, -8, 24, 2}, {-8, -2, 16, 2}, {-4, 4, 8, 2}, {-1, 8, 2, 4}}
	case SettingBluetooth:
		bars = [][4]int{{-2, -10, 4, 20}, {2, -8, 4, 2}, {2, -2, 4, 2}, {2, 4, 4, 2}}
	case SettingVolume:
		bars = [][4]int{{-8, -4, 6, 8}, {-2, -8, 4, 16}, {4, -6, 2, 12}, {8, -8, 2, 16}}
	case SettingBrightness:
		bars = [][4]int{{-4, -4, 8, 8}, {-1, -10, 2, 4}, {-1, 6, 2, 4}, {-10, -1, 4, 2}, {6, -1, 4, 2}}
	case SettingDoNotDisturb:
		bars = [][4]int{{-8, -1, 16, 2}}
	case SettingAirplaneMode:
		bars = [][4]int{{-1, -10, 2, 20}, {-10, -2, 20, 4}, {-4, 6, 8, 3}}
	}
	for _, b := range bars {
		fill(c, cx+b[0], cy+b[1], b[2], b[3], col)
	}
}

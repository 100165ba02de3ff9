// Package taskbar lays out and hit-tests the three floating bars along the
// bottom of the screen and tracks the windows shown in the center bar.
package taskbar

import (
	"time"

	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/wire"
)

// ActionKind is the result of a click on the taskbar.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionToggleWidgetPanel
	ActionToggleStartMenu
	ActionToggleQuickSettings
	ActionToggleWindow
	ActionLaunchApp
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionToggleWidgetPanel:
		return "widget_panel"
	case ActionToggleStartMenu:
		return "start_menu"
	case ActionToggleQuickSettings:
		return "quick_settings"
	case ActionToggleWindow:
		return "window"
	case ActionLaunchApp:
		return "launch_app"
	default:
		return "unknown"
	}
}

// Action carries the window id for ActionToggleWindow and the app index for
// ActionLaunchApp.
type Action struct {
	Kind     ActionKind
	WindowID uint32
	AppIndex int
}

// Window is one entry in the center bar.
type Window struct {
	ID        uint32
	Title     string
	Minimized bool
}

// Center bar geometry relative to its left edge plus padding.
const (
	menuAreaWidth  = 28
	separatorGap   = 12
	menuIconWidth  = 18
	menuIconHeight = 16
)

// Taskbar owns the bar rectangles and the window list.
type Taskbar struct {
	layout config.LayoutConfig
	face   *glyph.Face
	screen geom.Size

	widgetBar geom.Rect
	centerBar geom.Rect
	statusBar geom.Rect

	windows []Window
	apps    []apps.AppInfo

	start  time.Time
	uptime int64
}

// New lays out a taskbar for screen. Uptime is measured from start.
func New(screen geom.Size, layout config.LayoutConfig, face *glyph.Face, start time.Time) *Taskbar {
	t := &Taskbar{layout: layout, face: face, start: start}
	t.Resize(screen)
	return t
}

// Resize recomputes the bars for a new screen size.
func (t *Taskbar) Resize(screen geom.Size) {
	t.screen = screen
	t.calculateBars()
}

func (t *Taskbar) calculateBars() {
	l := t.layout
	y := t.screen.Height - l.BarHeight - l.Margin

	t.widgetBar = geom.Rect{X: l.Margin, Y: y, Width: l.WidgetBarWidth, Height: l.BarHeight}
	t.statusBar = geom.Rect{
		X:      t.screen.Width - l.StatusBarWidth - l.Margin,
		Y:      y,
		Width:  l.StatusBarWidth,
		Height: l.BarHeight,
	}

	cx := t.widgetBar.Right() + l.Gap
	width := max(t.statusBar.X-cx-l.Gap, l.CenterBarMinWidth)
	t.centerBar = geom.Rect{X: cx, Y: y, Width: width, Height: l.BarHeight}
}

func (t *Taskbar) WidgetBar() geom.Rect { return t.widgetBar }
func (t *Taskbar) CenterBar() geom.Rect { return t.centerBar }
func (t *Taskbar) StatusBar() geom.Rect { return t.statusBar }

// SetApps replaces the apps addressable by ActionLaunchApp.
func (t *Taskbar) SetApps(list []apps.AppInfo) {
	t.apps = append([]apps.AppInfo(nil), list...)
}

// App returns the app at index i.
func (t *Taskbar) App(i int) (apps.AppInfo, bool) {
	if i < 0 || i >= len(t.apps) {
		return apps.AppInfo{}, false
	}
	return t.apps[i], true
}

// AddWindow appends a window unless one with the same id is present.
func (t *Taskbar) AddWindow(id uint32, title string) bool {
	if t.find(id) >= 0 {
		return false
	}
	t.windows = append(t.windows, Window{ID: id, Title: title})
	return true
}

// RemoveWindow drops the window with id.
func (t *Taskbar) RemoveWindow(id uint32) bool {
	i := t.find(id)
	if i < 0 {
		return false
	}
	t.windows = append(t.windows[:i], t.windows[i+1:]...)
	return true
}

// SetWindowMinimized updates the minimized flag; unknown ids are ignored.
func (t *Taskbar) SetWindowMinimized(id uint32, minimized bool) bool {
	i := t.find(id)
	if i < 0 || t.windows[i].Minimized == minimized {
		return false
	}
	t.windows[i].Minimized = minimized
	return true
}

// WindowMinimized reports the minimized flag of a tracked window.
func (t *Taskbar) WindowMinimized(id uint32) (minimized, ok bool) {
	i := t.find(id)
	if i < 0 {
		return false, false
	}
	return t.windows[i].Minimized, true
}

// Windows returns a copy of the tracked windows in insertion order.
func (t *Taskbar) Windows() []Window {
	return append([]Window(nil), t.windows...)
}

// Apply folds a lifecycle event into the window list and reports whether
// anything changed.
func (t *Taskbar) Apply(ev wire.LifecycleEvent) bool {
	switch ev.Type {
	case wire.EventCreated:
		return t.AddWindow(ev.WindowID, ev.Title)
	case wire.EventDestroyed:
		return t.RemoveWindow(ev.WindowID)
	case wire.EventMinimized:
		return t.SetWindowMinimized(ev.WindowID, true)
	case wire.EventRestored:
		return t.SetWindowMinimized(ev.WindowID, false)
	}
	return false
}

func (t *Taskbar) find(id uint32) int {
	for i := range t.windows {
		if t.windows[i].ID == id {
			return i
		}
	}
	return -1
}

// Tick updates the uptime clock and reports whether the displayed second
// changed.
func (t *Taskbar) Tick(now time.Time) bool {
	secs := max(int64(now.Sub(t.start)/time.Second), 0)
	if secs == t.uptime {
		return false
	}
	t.uptime = secs
	return true
}

// Uptime returns the uptime shown by the clock.
func (t *Taskbar) Uptime() time.Duration {
	return time.Duration(t.uptime) * time.Second
}

func (t *Taskbar) menuAreaEnd() int {
	return t.centerBar.X + t.layout.Padding + menuAreaWidth
}

// iconSlot returns the rectangle of the i-th window tile and whether it fits
// inside the center bar.
func (t *Taskbar) iconSlot(i int) (geom.Rect, bool) {
	size := t.layout.WindowIconSize
	x := t.menuAreaEnd() + separatorGap + i*(size+t.layout.IconGap)
	r := geom.Rect{
		X:      x,
		Y:      t.centerBar.Y + (t.centerBar.Height-size)/2,
		Width:  size,
		Height: size,
	}
	return r, x+size <= t.centerBar.Right()-t.layout.Padding
}

// HandleClick maps a click to an action. Bars are tested widget, status,
// then center.
func (t *Taskbar) HandleClick(x, y int) Action {
	switch {
	case t.widgetBar.ContainsPoint(x, y):
		return Action{Kind: ActionToggleWidgetPanel}
	case t.statusBar.ContainsPoint(x, y):
		return Action{Kind: ActionToggleQuickSettings}
	case !t.centerBar.ContainsPoint(x, y):
		return Action{}
	}

	if x < t.menuAreaEnd() {
		return Action{Kind: ActionToggleStartMenu}
	}
	for i, w := range t.windows {
		slot, fits := t.iconSlot(i)
		if !fits {
			break
		}
		if x >= slot.X && x < slot.Right() {
			return Action{Kind: ActionToggleWindow, WindowID: w.ID}
		}
	}
	return Action{}
}

// ContainsPoint reports whether (x, y) is over any bar.
func (t *Taskbar) ContainsPoint(x, y int) bool {
	return t.widgetBar.ContainsPoint(x, y) ||
		t.centerBar.ContainsPoint(x, y) ||
		t.statusBar.ContainsPoint(x, y)
}

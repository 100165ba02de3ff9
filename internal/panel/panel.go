// Package panel implements the three slide-in popups that sit above the
// taskbar: the widget panel, the app launcher and quick settings.
//
// Every panel shares one state machine. SetVisible only changes the target;
// UpdateAnimation moves the on-screen progress toward it one step per frame.
// A panel keeps drawing while it slides out, so IsVisible stays true until
// progress reaches zero.
package panel

import (
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
)

// Kind identifies a panel.
type Kind int

const (
	KindWidget Kind = iota
	KindLauncher
	KindQuickSettings
)

func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindLauncher:
		return "launcher"
	case KindQuickSettings:
		return "quick_settings"
	default:
		return "unknown"
	}
}

// ActionKind is the type of deferred work a panel hands to the desktop.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionLaunch
	ActionToggleSetting
)

// Action is produced by a click and collected once with TakeAction.
type Action struct {
	Kind    ActionKind
	Path    string  // ActionLaunch
	Setting Setting // ActionToggleSetting
	Enabled bool    // ActionToggleSetting
}

// Panel is the common surface of every popup.
type Panel interface {
	Kind() Kind
	IsVisible() bool
	SetVisible(visible bool)
	Toggle()
	Bounds() geom.Rect
	Progress() float64
	Draw(c *glass.Canvas)
	// HandleClick reports whether the click was consumed. Hidden panels never
	// consume clicks.
	HandleClick(x, y int) bool
	// UpdateAnimation advances one frame and reports whether the panel is
	// still moving.
	UpdateAnimation() bool
	TakeAction() Action
	Resize(screen geom.Size)
}

// snapEpsilon is the distance at which progress snaps to its target.
const snapEpsilon = 0.01

// slide is the animation state shared by all panels.
type slide struct {
	bounds   geom.Rect
	screen   geom.Size
	visible  bool
	progress float64
	speed    float64
}

func (s *slide) IsVisible() bool { return s.visible || s.progress > 0 }

func (s *slide) Bounds() geom.Rect { return s.bounds }

func (s *slide) Progress() float64 { return s.progress }

func (s *slide) UpdateAnimation() bool {
	target := 0.0
	if s.visible {
		target = 1.0
	}

	diff := s.progress - target
	if diff < 0 {
		diff = -diff
	}
	if diff < snapEpsilon {
		s.progress = target
		return false
	}

	if s.progress < target {
		s.progress = min(s.progress+s.speed, 1)
	} else {
		s.progress = max(s.progress-s.speed, 0)
	}
	return true
}

// animated returns the bounds slid between the bottom of the screen and the
// resting position.
func (s *slide) animated() geom.Rect {
	r := s.bounds
	start := s.screen.Height
	r.Y = start + int(float64(r.Y-start)*s.progress)
	return r
}

// contentShown reports whether the panel is far enough in to draw content.
func (s *slide) contentShown() bool { return s.progress > 0.5 }

// restingY is the y of a panel of height h resting just above the taskbar.
func restingY(screen geom.Size, layout config.LayoutConfig, h int) int {
	taskbarY := screen.Height - layout.BarHeight - layout.Margin
	return taskbarY - h - layout.Margin
}

func fill(c *glass.Canvas, x, y, w, h int, col glass.Color) {
	c.FillRect(geom.Rect{X: x, Y: y, Width: w, Height: h}, col)
}

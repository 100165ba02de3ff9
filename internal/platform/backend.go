// Package platform abstracts the window system the shell draws on: screen
// geometry, a drawable surface with pointer input, and the window-manager
// operations the compositor bridge needs.
package platform

import (
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
)

// EventKind identifies an input event.
type EventKind int

const (
	EventPress EventKind = iota + 1
	EventMotion
	EventResize
	EventExpose
)

// Pointer buttons.
const (
	ButtonLeft      = 1
	ButtonMiddle    = 2
	ButtonRight     = 3
	ButtonWheelUp   = 4
	ButtonWheelDown = 5
)

// InputEvent is one event read from a surface. X/Y are surface-relative.
type InputEvent struct {
	Kind   EventKind
	X, Y   int
	Button int
	Size   geom.Size // EventResize
}

// SurfaceFlags control how a surface is stacked.
type SurfaceFlags uint32

const (
	// FlagBackground keeps the surface below every application window.
	FlagBackground SurfaceFlags = 1 << iota
)

// Surface is a window the shell renders into.
type Surface interface {
	// ID is the window id the compositor reports for this surface.
	ID() uint32
	// Canvas is the pixel buffer; it is reallocated on resize.
	Canvas() *glass.Canvas
	// PollEvents drains queued input without blocking.
	PollEvents() ([]InputEvent, error)
	Present() error
	Close() error
}

// Display supplies screen geometry and surfaces.
type Display interface {
	ScreenSize() (geom.Size, error)
	CreateSurface(bounds geom.Rect, flags SurfaceFlags, title string) (Surface, error)
	Close()
}

// Window is a managed application window.
type Window struct {
	ID        uint32
	Title     string
	Minimized bool
}

// WindowManager lists and controls application windows.
type WindowManager interface {
	Windows() ([]Window, error)
	Minimize(id uint32) error
	Restore(id uint32) error
}

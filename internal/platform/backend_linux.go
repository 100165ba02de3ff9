//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/x11"
)

// LinuxBackend implements Display and WindowManager on an X11 connection.
type LinuxBackend struct {
	conn *x11.Connection
}

var (
	_ Display       = (*LinuxBackend)(nil)
	_ WindowManager = (*LinuxBackend)(nil)
)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ScreenSize returns the size of the primary monitor.
func (b *LinuxBackend) ScreenSize() (geom.Size, error) {
	conn, err := b.connection()
	if err != nil {
		return geom.Size{}, err
	}
	m, err := conn.PrimaryMonitor()
	if err != nil {
		return geom.Size{}, err
	}
	return geom.Size{Width: m.Width, Height: m.Height}, nil
}

// CreateSurface creates and maps a window backed by a client-side canvas.
func (b *LinuxBackend) CreateSurface(bounds geom.Rect, flags SurfaceFlags, title string) (Surface, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("invalid surface bounds %dx%d", bounds.Width, bounds.Height)
	}
	win, err := conn.CreateSurfaceWindow(bounds.X, bounds.Y, bounds.Width, bounds.Height, title, flags&FlagBackground != 0)
	if err != nil {
		return nil, err
	}
	return newX11Surface(conn, win, bounds.Size()), nil
}

// Windows lists normal application windows.
func (b *LinuxBackend) Windows() ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}
	clients, err := conn.ClientWindows()
	if err != nil {
		return nil, err
	}
	out := make([]Window, 0, len(clients))
	for _, c := range clients {
		out = append(out, Window{ID: uint32(c.ID), Title: c.Title, Minimized: c.Minimized})
	}
	return out, nil
}

// Minimize iconifies a window via WM_CHANGE_STATE.
func (b *LinuxBackend) Minimize(id uint32) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MinimizeWindow(xproto.Window(id))
}

// Restore activates a window, which maps it back from the iconic state.
func (b *LinuxBackend) Restore(id uint32) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ActivateWindow(xproto.Window(id))
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// ClientWindow is the EWMH view of one managed top-level window.
type ClientWindow struct {
	ID        xproto.Window
	Title     string
	Minimized bool
}

// ClientWindows lists the normal windows in _NET_CLIENT_LIST order.
func (c *Connection) ClientWindows() ([]ClientWindow, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	out := make([]ClientWindow, 0, len(clients))
	for _, win := range clients {
		if !c.IsNormalWindow(win) {
			continue
		}
		out = append(out, ClientWindow{
			ID:        win,
			Title:     c.WindowTitle(win),
			Minimized: c.IsMinimized(win),
		})
	}
	return out, nil
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DIALOG":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return len(types) == 0
}

// WindowTitle prefers _NET_WM_NAME and falls back to WM_NAME.
func (c *Connection) WindowTitle(win xproto.Window) string {
	if title, err := ewmh.WmNameGet(c.XUtil, win); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	if title, err := icccm.WmNameGet(c.XUtil, win); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// IsMinimized reports whether the window is iconic or hidden.
func (c *Connection) IsMinimized(win xproto.Window) bool {
	if st, err := icccm.WmStateGet(c.XUtil, win); err == nil && st.State == icccm.StateIconic {
		return true
	}
	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}

// MinimizeWindow asks the window manager to iconify a window via
// WM_CHANGE_STATE.
func (c *Connection) MinimizeWindow(win xproto.Window) error {
	return c.sendRootMessage(win, "WM_CHANGE_STATE", icccm.StateIconic)
}

// ActivateWindow maps, raises and focuses a window using _NET_ACTIVE_WINDOW.
// The message is built by hand because the xgbutil ewmh request helpers
// panic on this library version.
func (c *Connection) ActivateWindow(win xproto.Window) error {
	const sourcePager = 2
	return c.sendRootMessage(win, "_NET_ACTIVE_WINDOW", sourcePager)
}

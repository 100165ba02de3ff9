package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// SurfaceWindow is a top-level window backed by a client-side image.
type SurfaceWindow struct {
	conn *Connection
	win  *xwindow.Window
	img  *xgraphics.Image
}

// CreateSurfaceWindow creates and maps a window at the given geometry. A
// desktop window is typed _NET_WM_WINDOW_TYPE_DESKTOP and kept below other
// windows.
func (c *Connection) CreateSurfaceWindow(x, y, width, height int, title string, desktop bool) (*SurfaceWindow, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}
	err = win.CreateChecked(c.Root, x, y, width, height, xproto.CwBackPixel, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := win.Listen(
		xproto.EventMaskButtonPress,
		xproto.EventMaskPointerMotion,
		xproto.EventMaskExposure,
		xproto.EventMaskStructureNotify,
	); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to select input: %w", err)
	}

	windowType := "_NET_WM_WINDOW_TYPE_NORMAL"
	if desktop {
		windowType = "_NET_WM_WINDOW_TYPE_DESKTOP"
	}
	_ = ewmh.WmWindowTypeSet(c.XUtil, win.Id, []string{windowType})
	if desktop {
		_ = ewmh.WmStateSet(c.XUtil, win.Id, []string{
			"_NET_WM_STATE_BELOW",
			"_NET_WM_STATE_SKIP_TASKBAR",
			"_NET_WM_STATE_SKIP_PAGER",
		})
	}
	_ = ewmh.WmNameSet(c.XUtil, win.Id, title)
	_ = icccm.WmNameSet(c.XUtil, win.Id, title)

	s := &SurfaceWindow{conn: c, win: win}
	if err := s.Resize(width, height); err != nil {
		win.Destroy()
		return nil, err
	}
	win.Map()
	return s, nil
}

// ID returns the X window id.
func (s *SurfaceWindow) ID() xproto.Window { return s.win.Id }

// Resize replaces the backing image. The current image stays attached when
// the new one cannot be created.
func (s *SurfaceWindow) Resize(width, height int) error {
	img := xgraphics.New(s.conn.XUtil, image.Rect(0, 0, width, height))
	if err := img.XSurfaceSet(s.win.Id); err != nil {
		img.Destroy()
		return fmt.Errorf("failed to attach surface pixmap: %w", err)
	}
	old := s.img
	s.img = img
	if old != nil {
		old.Destroy()
	}
	return nil
}

// Present converts packed ARGB pixels into the BGRA image and paints it.
// It does nothing while no image is attached.
func (s *SurfaceWindow) Present(pix []uint32) {
	if s.img == nil {
		return
	}
	dst := s.img.Pix
	for i, p := range pix {
		o := i * 4
		if o+3 >= len(dst) {
			break
		}
		dst[o+0] = uint8(p)
		dst[o+1] = uint8(p >> 8)
		dst[o+2] = uint8(p >> 16)
		dst[o+3] = uint8(p >> 24)
	}
	s.img.XDraw()
	s.img.XPaint(s.win.Id)
}

// Destroy releases the image and the window.
func (s *SurfaceWindow) Destroy() {
	if s.img != nil {
		s.img.Destroy()
		s.img = nil
	}
	s.win.Destroy()
}

//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/x11"
)

// maxEventsPerPoll bounds one drain so a flood of motion events cannot stall
// a frame.
const maxEventsPerPoll = 256

// surfaceWindow is the part of x11.SurfaceWindow a surface drives.
type surfaceWindow interface {
	ID() xproto.Window
	Resize(width, height int) error
	Present(pix []uint32)
	Destroy()
}

type eventPoller interface {
	PollEvent() (xgb.Event, error)
}

type x11Surface struct {
	conn   eventPoller
	win    surfaceWindow
	canvas *glass.Canvas
}

var _ Surface = (*x11Surface)(nil)

func newX11Surface(conn *x11.Connection, win *x11.SurfaceWindow, size geom.Size) *x11Surface {
	return &x11Surface{conn: conn, win: win, canvas: glass.NewCanvas(size)}
}

func (s *x11Surface) ID() uint32 { return uint32(s.win.ID()) }

func (s *x11Surface) Canvas() *glass.Canvas { return s.canvas }

// PollEvents drains pending X events. A failed resize keeps the previous
// canvas and is reported after the drain completes.
func (s *x11Surface) PollEvents() ([]InputEvent, error) {
	var out []InputEvent
	var resizeErr error
	for i := 0; i < maxEventsPerPoll; i++ {
		ev, err := s.conn.PollEvent()
		if err != nil {
			return out, fmt.Errorf("x11 event error: %w", err)
		}
		if ev == nil {
			break
		}
		in, ok, err := s.translate(ev)
		if err != nil {
			resizeErr = err
			continue
		}
		if ok {
			out = append(out, in)
		}
	}
	return out, resizeErr
}

func (s *x11Surface) translate(ev any) (InputEvent, bool, error) {
	id := s.win.ID()
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		if e.Event != id {
			return InputEvent{}, false, nil
		}
		return InputEvent{Kind: EventPress, X: int(e.EventX), Y: int(e.EventY), Button: int(e.Detail)}, true, nil
	case xproto.MotionNotifyEvent:
		if e.Event != id {
			return InputEvent{}, false, nil
		}
		return InputEvent{Kind: EventMotion, X: int(e.EventX), Y: int(e.EventY)}, true, nil
	case xproto.ExposeEvent:
		if e.Window != id || e.Count != 0 {
			return InputEvent{}, false, nil
		}
		return InputEvent{Kind: EventExpose}, true, nil
	case xproto.ConfigureNotifyEvent:
		if e.Window != id {
			return InputEvent{}, false, nil
		}
		size := geom.Size{Width: int(e.Width), Height: int(e.Height)}
		if size == s.canvas.Size || size.Area() == 0 {
			return InputEvent{}, false, nil
		}
		if err := s.win.Resize(size.Width, size.Height); err != nil {
			return InputEvent{}, false, fmt.Errorf("failed to resize surface to %dx%d: %w", size.Width, size.Height, err)
		}
		s.canvas = glass.NewCanvas(size)
		return InputEvent{Kind: EventResize, Size: size}, true, nil
	}
	return InputEvent{}, false, nil
}

func (s *x11Surface) Present() error {
	s.win.Present(s.canvas.Pix)
	return nil
}

func (s *x11Surface) Close() error {
	s.win.Destroy()
	return nil
}

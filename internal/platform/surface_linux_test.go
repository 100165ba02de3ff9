//go:build linux

package platform

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
)

type queuedEvents struct{ events []xgb.Event }

func (q *queuedEvents) PollEvent() (xgb.Event, error) {
	if len(q.events) == 0 {
		return nil, nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, nil
}

type stubWindow struct {
	resizeErr error
	resized   []geom.Size
	presented int
}

func (w *stubWindow) ID() xproto.Window { return 7 }

func (w *stubWindow) Resize(width, height int) error {
	if w.resizeErr != nil {
		return w.resizeErr
	}
	w.resized = append(w.resized, geom.Size{Width: width, Height: height})
	return nil
}

func (w *stubWindow) Present(pix []uint32) { w.presented++ }

func (w *stubWindow) Destroy() {}

func newStubSurface(win *stubWindow, events ...xgb.Event) *x11Surface {
	return &x11Surface{
		conn:   &queuedEvents{events: events},
		win:    win,
		canvas: glass.NewCanvas(geom.Size{Width: 640, Height: 480}),
	}
}

func TestPollEventsTranslatesInput(t *testing.T) {
	win := &stubWindow{}
	s := newStubSurface(win,
		xproto.ButtonPressEvent{Event: 7, EventX: 10, EventY: 20, Detail: 1},
		xproto.ButtonPressEvent{Event: 99, EventX: 1, EventY: 1, Detail: 1},
		xproto.MotionNotifyEvent{Event: 7, EventX: 5, EventY: 6},
		xproto.ExposeEvent{Window: 7, Count: 1},
		xproto.ExposeEvent{Window: 7, Count: 0},
	)

	got, err := s.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() error: %v", err)
	}
	want := []InputEvent{
		{Kind: EventPress, X: 10, Y: 20, Button: 1},
		{Kind: EventMotion, X: 5, Y: 6},
		{Kind: EventExpose},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPollEventsResizesCanvas(t *testing.T) {
	win := &stubWindow{}
	s := newStubSurface(win, xproto.ConfigureNotifyEvent{Window: 7, Width: 800, Height: 600})

	got, err := s.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() error: %v", err)
	}
	size := geom.Size{Width: 800, Height: 600}
	if len(got) != 1 || got[0].Kind != EventResize || got[0].Size != size {
		t.Fatalf("events = %+v", got)
	}
	if s.Canvas().Size != size {
		t.Fatalf("canvas size = %+v, want %+v", s.Canvas().Size, size)
	}
}

func TestFailedResizeKeepsCanvasAndReportsError(t *testing.T) {
	win := &stubWindow{resizeErr: errors.New("pixmap allocation failed")}
	s := newStubSurface(win,
		xproto.ConfigureNotifyEvent{Window: 7, Width: 800, Height: 600},
		xproto.ButtonPressEvent{Event: 7, EventX: 3, EventY: 4, Detail: 1},
	)
	before := s.Canvas()

	got, err := s.PollEvents()
	if err == nil {
		t.Fatalf("expected resize error")
	}
	if !errors.Is(err, win.resizeErr) {
		t.Fatalf("error %v does not wrap the resize failure", err)
	}
	if len(got) != 1 || got[0].Kind != EventPress {
		t.Fatalf("events after failed resize = %+v", got)
	}
	if s.Canvas() != before {
		t.Fatalf("canvas replaced after failed resize")
	}

	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if win.presented != 1 {
		t.Fatalf("presented = %d, want 1", win.presented)
	}
}

package wire

import (
	"os"
	"testing"
)

func TestListenerDrainsQueuedEvents(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	l, err := Listen("shell.taskbar")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer l.Close()

	if err := Notify("shell.taskbar", LifecycleEvent{WindowID: 42, Type: EventCreated, Title: "Editor"}); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if err := Send("shell.taskbar", []byte{0x80, 0, 0}); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if err := Notify("shell.taskbar", LifecycleEvent{WindowID: 42, Type: EventMinimized}); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}

	events, dropped, err := l.Poll()
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Title != "Editor" || events[1].Type != EventMinimized {
		t.Fatalf("unexpected events: %+v", events)
	}

	events, dropped, err = l.Poll()
	if err != nil || len(events) != 0 || dropped != 0 {
		t.Fatalf("second Poll() = %v, %d, %v; want empty", events, dropped, err)
	}
}

func TestListenReplacesStaleSocket(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	first, err := Listen("shell.taskbar")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	path := first.Path()
	// Leave the socket file behind as a crashed process would.
	first.ep.conn.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("socket file missing: %v", err)
	}

	second, err := Listen("shell.taskbar")
	if err != nil {
		t.Fatalf("second Listen() error: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("socket file should be removed on Close, stat err = %v", err)
	}
}

func TestBindRestrictsEndpointToOwner(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	ep, err := Bind("compositor")
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	defer ep.Close()

	info, err := os.Stat(ep.Path())
	if err != nil {
		t.Fatalf("stat endpoint: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("endpoint mode = %o, want 600", perm)
	}
}

func TestClientSendsRequests(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	compositor, err := Bind(DefaultCompositorEndpoint)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	defer compositor.Close()

	c := NewClient("")
	if err := c.RegisterAsTaskbar(DefaultListenerEndpoint); err != nil {
		t.Fatalf("RegisterAsTaskbar() error: %v", err)
	}
	if err := c.SendWindowOp(42, OpMinimizeWindow); err != nil {
		t.Fatalf("SendWindowOp() error: %v", err)
	}

	var reqs []Request
	if err := compositor.Drain(func(record []byte) {
		req, err := DecodeRequest(record)
		if err != nil {
			t.Errorf("DecodeRequest() error: %v", err)
			return
		}
		reqs = append(reqs, req)
	}); err != nil {
		t.Fatalf("Drain() error: %v", err)
	}

	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want 2", len(reqs))
	}
	if reqs[0].Register.ListenerName != DefaultListenerEndpoint {
		t.Fatalf("register name = %q", reqs[0].Register.ListenerName)
	}
	if reqs[1].Window != (WindowOp{Op: OpMinimizeWindow, WindowID: 42}) {
		t.Fatalf("window op = %+v", reqs[1].Window)
	}
}

func TestClientUnreachableCompositor(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	if err := NewClient("compositor").RegisterAsTaskbar("shell.taskbar"); err == nil {
		t.Fatal("expected error when compositor endpoint is missing")
	}
}

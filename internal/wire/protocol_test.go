package wire

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEncodeRegisterTaskbarLayout(t *testing.T) {
	buf := EncodeRegisterTaskbar("shell.taskbar")
	if len(buf) != RegisterTaskbarSize {
		t.Fatalf("len = %d, want %d", len(buf), RegisterTaskbarSize)
	}
	if op := binary.LittleEndian.Uint32(buf[0:4]); op != uint32(OpRegisterTaskbar) {
		t.Fatalf("opcode = %#x, want %#x", op, uint32(OpRegisterTaskbar))
	}
	if got := string(buf[4:17]); got != "shell.taskbar" {
		t.Fatalf("name bytes = %q", got)
	}
	for i := 17; i < len(buf); i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %d = %#x, want NUL padding", i, buf[i])
		}
	}
}

func TestEncodeRegisterTaskbarTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 40)
	reg, err := DecodeRegisterTaskbar(EncodeRegisterTaskbar(long))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.ListenerName != long[:ListenerNameSize] {
		t.Fatalf("name = %q, want first %d bytes", reg.ListenerName, ListenerNameSize)
	}
}

func TestWindowOpLayout(t *testing.T) {
	buf, err := EncodeWindowOp(WindowOp{Op: OpRestoreWindow, WindowID: 0x01020304})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x11, 0, 0, 0, 0x04, 0x03, 0x02, 0x01}
	if string(buf) != string(want) {
		t.Fatalf("bytes = %v, want %v", buf, want)
	}

	if _, err := EncodeWindowOp(WindowOp{Op: OpRegisterTaskbar, WindowID: 1}); !errors.Is(err, ErrInvalidWindowOp) {
		t.Fatalf("expected ErrInvalidWindowOp, got %v", err)
	}
}

func TestLifecycleEventRoundTripShortTitle(t *testing.T) {
	in := LifecycleEvent{WindowID: 7, Type: EventCreated, Title: "vim"}
	buf := EncodeLifecycleEvent(in)
	if len(buf) != LifecycleEventSize {
		t.Fatalf("len = %d, want %d", len(buf), LifecycleEventSize)
	}
	if buf[12+3] != 0 {
		t.Fatal("3-byte title should be NUL-terminated")
	}

	out, err := DecodeLifecycleEvent(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("decoded %+v, want %+v", out, in)
	}
}

func TestLifecycleEventFullLengthTitle(t *testing.T) {
	title := strings.Repeat("t", TitleSize+10)
	out, err := DecodeLifecycleEvent(EncodeLifecycleEvent(LifecycleEvent{WindowID: 1, Type: EventRestored, Title: title}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Title != title[:TitleSize] {
		t.Fatalf("title length = %d, want %d", len(out.Title), TitleSize)
	}
}

func TestLifecycleEventTitleKeepsWholeRunes(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{strings.Repeat("a", 63) + "é", strings.Repeat("a", 63)},
		{strings.Repeat("a", 62) + "é", strings.Repeat("a", 62) + "é"},
		{strings.Repeat("a", 62) + "日本", strings.Repeat("a", 62)},
		{strings.Repeat("é", 40), strings.Repeat("é", 32)},
	}
	for _, tt := range tests {
		ev, err := DecodeLifecycleEvent(EncodeLifecycleEvent(LifecycleEvent{WindowID: 1, Type: EventCreated, Title: tt.title}))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !utf8.ValidString(ev.Title) {
			t.Fatalf("title %q is not valid UTF-8", ev.Title)
		}
		if ev.Title != tt.want {
			t.Fatalf("title = %q (%d bytes), want %q", ev.Title, len(ev.Title), tt.want)
		}
	}
}

func TestDecodeLifecycleEventRejectsBadRecords(t *testing.T) {
	good := EncodeLifecycleEvent(LifecycleEvent{WindowID: 3, Type: EventMinimized, Title: "x"})

	if _, err := DecodeLifecycleEvent(good[:LifecycleEventSize-1]); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("short record: got %v, want ErrShortRecord", err)
	}

	wrongOp := append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(wrongOp[0:4], uint32(OpMinimizeWindow))
	if _, err := DecodeLifecycleEvent(wrongOp); !errors.Is(err, ErrUnexpectedOpcode) {
		t.Fatalf("wrong opcode: got %v, want ErrUnexpectedOpcode", err)
	}

	badType := append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(badType[8:12], 99)
	if _, err := DecodeLifecycleEvent(badType); !errors.Is(err, ErrUnknownEventType) {
		t.Fatalf("bad type: got %v, want ErrUnknownEventType", err)
	}
}

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest(EncodeRegisterTaskbar("panel"))
	if err != nil || req.Op != OpRegisterTaskbar || req.Register.ListenerName != "panel" {
		t.Fatalf("register: %+v, %v", req, err)
	}

	buf, _ := EncodeWindowOp(WindowOp{Op: OpMinimizeWindow, WindowID: 42})
	req, err = DecodeRequest(buf)
	if err != nil || req.Window.WindowID != 42 || req.Op != OpMinimizeWindow {
		t.Fatalf("window op: %+v, %v", req, err)
	}

	if _, err := DecodeRequest([]byte{1, 2}); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("tiny record: got %v", err)
	}
	if _, err := DecodeRequest(EncodeLifecycleEvent(LifecycleEvent{Type: EventCreated})); !errors.Is(err, ErrUnexpectedOpcode) {
		t.Fatalf("event as request: got %v", err)
	}
}

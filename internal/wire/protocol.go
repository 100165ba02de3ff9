// Package wire implements the shell/compositor message protocol: fixed-layout
// little-endian records exchanged over unix datagram endpoints.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Opcode tags every record on the wire.
type Opcode uint32

const (
	OpMinimizeWindow       Opcode = 0x10
	OpRestoreWindow        Opcode = 0x11
	OpRegisterTaskbar      Opcode = 0x20
	OpEventWindowLifecycle Opcode = 0x80
)

func (op Opcode) String() string {
	switch op {
	case OpMinimizeWindow:
		return "MINIMIZE_WINDOW"
	case OpRestoreWindow:
		return "RESTORE_WINDOW"
	case OpRegisterTaskbar:
		return "REGISTER_TASKBAR"
	case OpEventWindowLifecycle:
		return "EVENT_WINDOW_LIFECYCLE"
	default:
		return fmt.Sprintf("opcode(%#x)", uint32(op))
	}
}

// EventType is the lifecycle transition carried by a lifecycle event.
type EventType uint32

const (
	EventCreated   EventType = 1
	EventDestroyed EventType = 2
	EventMinimized EventType = 3
	EventRestored  EventType = 4
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDestroyed:
		return "destroyed"
	case EventMinimized:
		return "minimized"
	case EventRestored:
		return "restored"
	default:
		return "unknown"
	}
}

func (t EventType) valid() bool {
	return t >= EventCreated && t <= EventRestored
}

// Fixed record geometry.
const (
	ListenerNameSize = 32
	TitleSize        = 64

	RegisterTaskbarSize = 4 + ListenerNameSize
	WindowOpSize        = 4 + 4
	LifecycleEventSize  = 4 + 4 + 4 + TitleSize

	// MaxRecordSize bounds a single datagram read.
	MaxRecordSize = 256
)

var (
	ErrShortRecord      = errors.New("wire: record shorter than its fixed size")
	ErrUnexpectedOpcode = errors.New("wire: unexpected opcode")
	ErrUnknownEventType = errors.New("wire: unknown lifecycle event type")
	ErrInvalidWindowOp  = errors.New("wire: window op needs MINIMIZE or RESTORE")
)

// LifecycleEvent reports a window transition from the compositor.
type LifecycleEvent struct {
	WindowID uint32
	Type     EventType
	Title    string
}

// WindowOp asks the compositor to minimize or restore a window.
type WindowOp struct {
	Op       Opcode
	WindowID uint32
}

// RegisterTaskbar names the listener endpoint that should receive lifecycle
// events.
type RegisterTaskbar struct {
	ListenerName string
}

// EncodeRegisterTaskbar lays out a REGISTER_TASKBAR record. Names longer than
// ListenerNameSize are truncated; shorter names are NUL-padded.
func EncodeRegisterTaskbar(name string) []byte {
	buf := make([]byte, RegisterTaskbarSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(OpRegisterTaskbar))
	copy(buf[4:4+ListenerNameSize], name)
	return buf
}

// DecodeRegisterTaskbar parses a REGISTER_TASKBAR record.
func DecodeRegisterTaskbar(buf []byte) (RegisterTaskbar, error) {
	if len(buf) < RegisterTaskbarSize {
		return RegisterTaskbar{}, ErrShortRecord
	}
	if op := Opcode(binary.LittleEndian.Uint32(buf[0:4])); op != OpRegisterTaskbar {
		return RegisterTaskbar{}, fmt.Errorf("%w: %s", ErrUnexpectedOpcode, op)
	}
	return RegisterTaskbar{ListenerName: cString(buf[4 : 4+ListenerNameSize])}, nil
}

// EncodeWindowOp lays out a MINIMIZE_WINDOW or RESTORE_WINDOW record.
func EncodeWindowOp(op WindowOp) ([]byte, error) {
	if op.Op != OpMinimizeWindow && op.Op != OpRestoreWindow {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWindowOp, op.Op)
	}
	buf := make([]byte, WindowOpSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(op.Op))
	binary.LittleEndian.PutUint32(buf[4:8], op.WindowID)
	return buf, nil
}

// DecodeWindowOp parses a window op record.
func DecodeWindowOp(buf []byte) (WindowOp, error) {
	if len(buf) < WindowOpSize {
		return WindowOp{}, ErrShortRecord
	}
	op := Opcode(binary.LittleEndian.Uint32(buf[0:4]))
	if op != OpMinimizeWindow && op != OpRestoreWindow {
		return WindowOp{}, fmt.Errorf("%w: %s", ErrUnexpectedOpcode, op)
	}
	return WindowOp{Op: op, WindowID: binary.LittleEndian.Uint32(buf[4:8])}, nil
}

// EncodeLifecycleEvent lays out an EVENT_WINDOW_LIFECYCLE record. Titles
// longer than TitleSize are cut back to the last whole UTF-8 sequence that
// fits; a title filling the buffer carries no terminator.
func EncodeLifecycleEvent(ev LifecycleEvent) []byte {
	buf := make([]byte, LifecycleEventSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(OpEventWindowLifecycle))
	binary.LittleEndian.PutUint32(buf[4:8], ev.WindowID)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(ev.Type))
	copy(buf[12:12+TitleSize], truncateUTF8(ev.Title, TitleSize))
	return buf
}

// DecodeLifecycleEvent parses an EVENT_WINDOW_LIFECYCLE record. The buffer
// must hold the complete fixed-size record.
func DecodeLifecycleEvent(buf []byte) (LifecycleEvent, error) {
	if len(buf) < LifecycleEventSize {
		return LifecycleEvent{}, ErrShortRecord
	}
	if op := Opcode(binary.LittleEndian.Uint32(buf[0:4])); op != OpEventWindowLifecycle {
		return LifecycleEvent{}, fmt.Errorf("%w: %s", ErrUnexpectedOpcode, op)
	}
	ev := LifecycleEvent{
		WindowID: binary.LittleEndian.Uint32(buf[4:8]),
		Type:     EventType(binary.LittleEndian.Uint32(buf[8:12])),
		Title:    cString(buf[12 : 12+TitleSize]),
	}
	if !ev.Type.valid() {
		return LifecycleEvent{}, fmt.Errorf("%w: %d", ErrUnknownEventType, uint32(ev.Type))
	}
	return ev, nil
}

// Request is a decoded compositor-bound record.
type Request struct {
	Op       Opcode
	Register RegisterTaskbar
	Window   WindowOp
}

// DecodeRequest parses any record a shell may send to the compositor.
func DecodeRequest(buf []byte) (Request, error) {
	if len(buf) < 4 {
		return Request{}, ErrShortRecord
	}
	op := Opcode(binary.LittleEndian.Uint32(buf[0:4]))
	switch op {
	case OpRegisterTaskbar:
		reg, err := DecodeRegisterTaskbar(buf)
		return Request{Op: op, Register: reg}, err
	case OpMinimizeWindow, OpRestoreWindow:
		wop, err := DecodeWindowOp(buf)
		return Request{Op: op, Window: wop}, err
	default:
		return Request{}, fmt.Errorf("%w: %s", ErrUnexpectedOpcode, op)
	}
}

// truncateUTF8 returns the longest prefix of s of at most n bytes that does
// not end inside a multi-byte sequence.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

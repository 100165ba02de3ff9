package bridge

import (
	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/platform"
	"github.com/1broseidon/glasshell/internal/wire"
)

// reconcile lists windows and forwards what changed since the last pass.
func (b *Bridge) reconcile() {
	defer func() {
		if err := recover(); err != nil {
			b.log.Error("reconciler panic recovered", zap.Any("error", err))
		}
	}()

	windows, err := b.wm.Windows()
	if err != nil {
		b.log.Warn("failed to list windows", zap.Error(err))
		return
	}

	events := Diff(b.known, windows)
	b.known = windows
	if len(events) > 0 {
		b.log.Debug("window changes", zap.Int("events", len(events)))
	}
	b.send(events)
}

// Diff returns the lifecycle events that turn prev into next: DESTROYED for
// vanished windows in prev order, then CREATED (followed by MINIMIZED when
// the window starts iconic) for new windows and MINIMIZED/RESTORED for state
// flips, both in next order.
func Diff(prev, next []platform.Window) []wire.LifecycleEvent {
	before := make(map[uint32]platform.Window, len(prev))
	for _, w := range prev {
		before[w.ID] = w
	}
	after := make(map[uint32]struct{}, len(next))
	for _, w := range next {
		after[w.ID] = struct{}{}
	}

	var events []wire.LifecycleEvent
	for _, w := range prev {
		if _, ok := after[w.ID]; !ok {
			events = append(events, wire.LifecycleEvent{WindowID: w.ID, Type: wire.EventDestroyed, Title: w.Title})
		}
	}

	for _, w := range next {
		old, seen := before[w.ID]
		switch {
		case !seen:
			events = append(events, wire.LifecycleEvent{WindowID: w.ID, Type: wire.EventCreated, Title: w.Title})
			if w.Minimized {
				events = append(events, wire.LifecycleEvent{WindowID: w.ID, Type: wire.EventMinimized, Title: w.Title})
			}
		case old.Minimized != w.Minimized:
			typ := wire.EventRestored
			if w.Minimized {
				typ = wire.EventMinimized
			}
			events = append(events, wire.LifecycleEvent{WindowID: w.ID, Type: typ, Title: w.Title})
		}
	}
	return events
}

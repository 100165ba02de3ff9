// Package bridge speaks the compositor side of the shell protocol on top of
// an X11 window manager. It accepts REGISTER_TASKBAR and window op requests
// on the compositor endpoint and turns EWMH client-list changes into
// lifecycle events for the registered listener.
package bridge

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/metrics"
	"github.com/1broseidon/glasshell/internal/platform"
	"github.com/1broseidon/glasshell/internal/wire"
)

// RequestSource yields datagrams addressed to the compositor endpoint.
type RequestSource interface {
	Drain(handle func(record []byte)) error
	Close() error
}

// NotifyFunc delivers a lifecycle event to a named listener endpoint.
type NotifyFunc func(listener string, ev wire.LifecycleEvent) error

// Options configures a Bridge.
type Options struct {
	PollInterval time.Duration
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	// Notify defaults to wire.Notify.
	Notify NotifyFunc
}

// Bridge maps window-manager state onto the shell protocol.
type Bridge struct {
	wm       platform.WindowManager
	source   RequestSource
	notify   NotifyFunc
	interval time.Duration
	log      *zap.Logger
	metrics  *metrics.Metrics

	listener string
	known    []platform.Window
}

// New creates a bridge reading requests from source.
func New(wm platform.WindowManager, source RequestSource, opts Options) *Bridge {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	notify := opts.Notify
	if notify == nil {
		notify = wire.Notify
	}
	return &Bridge{
		wm:       wm,
		source:   source,
		notify:   notify,
		interval: interval,
		log:      log,
		metrics:  opts.Metrics,
	}
}

// Listener returns the registered listener name, or "" before registration.
func (b *Bridge) Listener() string { return b.listener }

// Run polls until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.log.Info("bridge started", zap.Duration("interval", b.interval))
	b.Poll()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("bridge stopped")
			return nil
		case <-ticker.C:
			b.Poll()
		}
	}
}

// Poll handles queued requests and then forwards window changes.
func (b *Bridge) Poll() {
	if err := b.source.Drain(b.handleRequest); err != nil {
		b.log.Warn("request drain failed", zap.Error(err))
	}
	b.reconcile()
}

func (b *Bridge) handleRequest(record []byte) {
	req, err := wire.DecodeRequest(record)
	if err != nil {
		b.metrics.BridgeRequest("invalid", err)
		b.log.Debug("dropping malformed request", zap.Int("size", len(record)), zap.Error(err))
		return
	}

	switch req.Op {
	case wire.OpRegisterTaskbar:
		b.listener = req.Register.ListenerName
		b.metrics.BridgeRequest(req.Op.String(), nil)
		b.log.Info("taskbar registered", zap.String("listener", b.listener))
		b.replay()
	case wire.OpMinimizeWindow:
		err = b.wm.Minimize(req.Window.WindowID)
		b.logWindowOp(req, err)
	case wire.OpRestoreWindow:
		err = b.wm.Restore(req.Window.WindowID)
		b.logWindowOp(req, err)
	}
}

func (b *Bridge) logWindowOp(req wire.Request, err error) {
	b.metrics.BridgeRequest(req.Op.String(), err)
	if err != nil {
		b.log.Warn("window op failed",
			zap.Stringer("op", req.Op),
			zap.Uint32("window", req.Window.WindowID),
			zap.Error(err))
		return
	}
	b.log.Debug("window op applied", zap.Stringer("op", req.Op), zap.Uint32("window", req.Window.WindowID))
}

// replay sends the current window set to a newly registered listener.
func (b *Bridge) replay() {
	b.send(Diff(nil, b.known))
}

func (b *Bridge) send(events []wire.LifecycleEvent) {
	if b.listener == "" {
		return
	}
	for _, ev := range events {
		err := b.notify(b.listener, ev)
		b.metrics.BridgeEvent(ev.Type.String(), err)
		if err != nil {
			b.log.Debug("lifecycle delivery failed",
				zap.String("listener", b.listener),
				zap.Uint32("window", ev.WindowID),
				zap.Error(err))
		}
	}
}

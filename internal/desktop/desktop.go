// Package desktop runs the shell: it owns the background surface, the
// taskbar and the popup panels, and turns compositor lifecycle events and
// pointer input into redraws.
//
// The loop is single-threaded and poll-driven. Each Step drains lifecycle
// events, drains input, advances panel animations, and repaints only when
// something changed, a panel is moving, or the clock ticked over a second.
package desktop

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/metrics"
	"github.com/1broseidon/glasshell/internal/panel"
	"github.com/1broseidon/glasshell/internal/platform"
	"github.com/1broseidon/glasshell/internal/taskbar"
	"github.com/1broseidon/glasshell/internal/wallpaper"
	"github.com/1broseidon/glasshell/internal/wire"
)

// SurfaceTitle names the shell's background window.
const SurfaceTitle = "glasshell"

// Compositor is the outbound half of the compositor protocol.
type Compositor interface {
	RegisterAsTaskbar(listener string) error
	SendWindowOp(windowID uint32, op wire.Opcode) error
}

// EventSource yields lifecycle events queued since the last poll.
type EventSource interface {
	Poll() (events []wire.LifecycleEvent, dropped int, err error)
	Close() error
}

// Deps are the collaborators a Desktop is built from. Display, Compositor
// and Listen are required.
type Deps struct {
	Display    platform.Display
	Compositor Compositor
	// Listen binds the inbound lifecycle endpoint.
	Listen     func(name string) (EventSource, error)
	Discoverer apps.Discoverer
	Launcher   apps.Launcher
	Face       *glyph.Face
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Now        func() time.Time
}

// ListenWire binds a unixgram listener; it is the production Deps.Listen.
func ListenWire(name string) (EventSource, error) {
	l, err := wire.Listen(name)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Desktop is the shell state machine.
type Desktop struct {
	cfg        *config.Config
	log        *zap.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
	compositor Compositor
	launcher   apps.Launcher

	surface platform.Surface
	events  EventSource

	screen    geom.Size
	wallpaper *wallpaper.Wallpaper
	taskbar   *taskbar.Taskbar
	widget    *panel.Widget
	menu      *panel.Launcher
	quick     *panel.QuickSettings
	apps      []apps.AppInfo

	dirty         bool
	frames        uint64
	lastHeartbeat time.Time
}

// New builds the shell. It fails when the platform cannot report the screen
// size or create the surface, or when the listener endpoint cannot be bound.
// Failing to register with the compositor is logged and tolerated.
func New(cfg *config.Config, deps Deps) (*Desktop, error) {
	if deps.Display == nil || deps.Compositor == nil || deps.Listen == nil {
		return nil, fmt.Errorf("desktop: display, compositor and listener are required")
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	screen, err := deps.Display.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen size: %w", err)
	}
	log.Info("screen detected", zap.Int("width", screen.Width), zap.Int("height", screen.Height))

	surface, err := deps.Display.CreateSurface(geom.FullScreen(screen), platform.FlagBackground, SurfaceTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to create desktop surface: %w", err)
	}

	start := now()
	layout := cfg.Layout
	d := &Desktop{
		cfg:           cfg,
		log:           log,
		metrics:       deps.Metrics,
		now:           now,
		compositor:    deps.Compositor,
		launcher:      deps.Launcher,
		surface:       surface,
		screen:        screen,
		wallpaper:     wallpaper.New(screen, cfg.Wallpaper.Path, log),
		taskbar:       taskbar.New(screen, layout, deps.Face, start),
		widget:        panel.NewWidget(screen, layout, cfg.Animation.WidgetSpeed, deps.Face),
		menu:          panel.NewLauncher(screen, layout, cfg.Animation.LauncherSpeed, deps.Face),
		quick:         panel.NewQuickSettings(screen, layout, cfg.Animation.QuickSettingsSpeed, deps.Face),
		dirty:         true,
		lastHeartbeat: start,
	}

	if deps.Discoverer != nil {
		found, err := deps.Discoverer.Discover()
		if err != nil {
			log.Warn("app discovery failed", zap.Error(err))
		}
		d.apps = found
	}
	log.Info("apps discovered", zap.Int("count", len(d.apps)))
	d.taskbar.SetApps(d.apps)
	d.menu.SetApps(d.apps)

	events, err := deps.Listen(cfg.Endpoints.Listener)
	if err != nil {
		_ = surface.Close()
		return nil, fmt.Errorf("failed to bind listener %q: %w", cfg.Endpoints.Listener, err)
	}
	d.events = events

	if err := d.compositor.RegisterAsTaskbar(cfg.Endpoints.Listener); err != nil {
		log.Warn("taskbar registration failed, continuing unregistered",
			zap.String("listener", cfg.Endpoints.Listener), zap.Error(err))
	} else {
		log.Info("registered as taskbar", zap.String("listener", cfg.Endpoints.Listener))
	}

	return d, nil
}

// Run paints the first frame and steps the loop once per frame interval until
// ctx is cancelled.
func (d *Desktop) Run(ctx context.Context) error {
	d.log.Info("desktop started", zap.Duration("frame_interval", d.cfg.FrameInterval))
	d.redraw()
	d.dirty = false

	ticker := time.NewTicker(d.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info("desktop stopped", zap.Uint64("frames", d.frames))
			return nil
		case <-ticker.C:
			d.Step()
		}
	}
}

// Step runs one loop iteration.
func (d *Desktop) Step() {
	d.frames++
	d.metrics.Frame()
	now := d.now()
	d.heartbeat(now)

	d.processLifecycleEvents()
	d.processInput()
	animating := d.updateAnimations()
	clock := d.taskbar.Tick(now)

	if d.dirty || animating || clock {
		d.redraw()
		d.dirty = false
	}
}

func (d *Desktop) heartbeat(now time.Time) {
	if now.Sub(d.lastHeartbeat) < d.cfg.HeartbeatInterval {
		return
	}
	d.lastHeartbeat = now
	d.log.Info("heartbeat", zap.Uint64("frame", d.frames), zap.Bool("dirty", d.dirty))
}

// Close releases the listener endpoint and the surface.
func (d *Desktop) Close() error {
	var first error
	if d.events != nil {
		if err := d.events.Close(); err != nil {
			first = err
		}
	}
	if d.surface != nil {
		if err := d.surface.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (d *Desktop) processLifecycleEvents() {
	events, dropped, err := d.events.Poll()
	if dropped > 0 {
		d.metrics.Dropped(dropped)
		d.log.Debug("dropped malformed lifecycle records", zap.Int("count", dropped))
	}
	if err != nil {
		d.log.Warn("lifecycle poll failed", zap.Error(err))
	}

	self := d.surface.ID()
	for _, ev := range events {
		d.metrics.LifecycleEvent(ev.Type.String())
		if ev.Type == wire.EventCreated && ev.WindowID == self {
			continue
		}
		if d.taskbar.Apply(ev) {
			d.dirty = true
		}
		d.log.Debug("lifecycle event",
			zap.Uint32("window", ev.WindowID),
			zap.Stringer("type", ev.Type),
			zap.String("title", ev.Title))
	}
	if len(events) > 0 {
		d.metrics.SetWindows(len(d.taskbar.Windows()))
	}
}

func (d *Desktop) panels() [3]panel.Panel {
	return [3]panel.Panel{d.widget, d.menu, d.quick}
}

func (d *Desktop) updateAnimations() bool {
	animating := false
	for _, p := range d.panels() {
		if p.UpdateAnimation() {
			animating = true
		}
	}
	return animating
}

// redraw paints back to front: wallpaper, panels, taskbar.
func (d *Desktop) redraw() {
	start := time.Now()
	c := d.surface.Canvas()

	d.wallpaper.Draw(c)
	for _, p := range d.panels() {
		p.Draw(c)
	}
	d.taskbar.Draw(c)

	if err := d.surface.Present(); err != nil {
		d.log.Warn("present failed", zap.Error(err))
	}
	d.metrics.Redraw(time.Since(start))
}

func (d *Desktop) resize(size geom.Size) {
	if size == d.screen {
		return
	}
	d.log.Info("screen resized", zap.Int("width", size.Width), zap.Int("height", size.Height))
	d.screen = size
	d.wallpaper.Resize(size)
	d.taskbar.Resize(size)
	for _, p := range d.panels() {
		p.Resize(size)
	}
	d.dirty = true
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the effective shell configuration.
type Config struct {
	Endpoints EndpointsConfig `yaml:"endpoints"`
	// FrameInterval is the sleep between two iterations of the shell loop.
	FrameInterval time.Duration `yaml:"frame_interval"`
	// HeartbeatInterval controls how often the loop logs a liveness line.
	HeartbeatInterval time.Duration   `yaml:"heartbeat_interval"`
	Layout            LayoutConfig    `yaml:"layout"`
	Animation         AnimationConfig `yaml:"animation"`
	Apps              AppsConfig      `yaml:"apps"`
	Wallpaper         WallpaperConfig `yaml:"wallpaper"`
	Logging           LoggingConfig   `yaml:"logging"`
	Metrics           MetricsConfig   `yaml:"metrics"`
	Bridge            BridgeConfig    `yaml:"bridge"`
}

// EndpointsConfig names the two compositor message endpoints.
type EndpointsConfig struct {
	Compositor string `yaml:"compositor"`
	Listener   string `yaml:"listener"`
}

// PanelSize is a width/height pair for popup panels.
type PanelSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LayoutConfig holds the pixel metrics for bars and panels.
type LayoutConfig struct {
	BarHeight         int `yaml:"bar_height"`
	Margin            int `yaml:"margin"`
	Gap               int `yaml:"gap"`
	Radius            int `yaml:"radius"`
	Padding           int `yaml:"padding"`
	WidgetBarWidth    int `yaml:"widget_bar_width"`
	CenterBarMinWidth int `yaml:"center_bar_min_width"`
	StatusBarWidth    int `yaml:"status_bar_width"`
	WindowIconSize    int `yaml:"window_icon_size"`
	IconGap           int `yaml:"icon_gap"`

	WidgetPanel   PanelSize `yaml:"widget_panel"`
	QuickSettings PanelSize `yaml:"quick_settings"`
	StartMenu     PanelSize `yaml:"start_menu"`
	PanelRadius   int       `yaml:"panel_radius"`
	PanelPadding  int       `yaml:"panel_padding"`
	AppItemHeight int       `yaml:"app_item_height"`
	AppIconSize   int       `yaml:"app_icon_size"`
	AppIconGap    int       `yaml:"app_icon_gap"`
}

// AnimationConfig holds per-panel progress steps per frame.
type AnimationConfig struct {
	WidgetSpeed        float64 `yaml:"widget_speed"`
	LauncherSpeed      float64 `yaml:"launcher_speed"`
	QuickSettingsSpeed float64 `yaml:"quick_settings_speed"`
}

// AppsConfig controls application discovery.
type AppsConfig struct {
	// Cache is the pipe-delimited apps index.
	Cache string `yaml:"cache"`
	// Root is the directory holding <vendor>/<name>/ app bundles.
	Root string `yaml:"root"`
	// ScanManifests falls back to scanning app.toml files when the cache is
	// missing or empty.
	ScanManifests bool `yaml:"scan_manifests"`
}

type WallpaperConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	// Listen is the host:port for the Prometheus handler. Empty disables it.
	Listen string `yaml:"listen"`
}

type BridgeConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Defaults.
const (
	DefaultFrameInterval     = 16 * time.Millisecond
	DefaultHeartbeatInterval = 10 * time.Second
	DefaultAppsCache         = "/state/indexes/apps/apps.cache"
	DefaultAppsRoot          = "/apps"
	DefaultBridgePoll        = 250 * time.Millisecond
)

// DefaultLayout returns the stock bar and panel metrics.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		BarHeight:         48,
		Margin:            8,
		Gap:               12,
		Radius:            12,
		Padding:           8,
		WidgetBarWidth:    56,
		CenterBarMinWidth: 200,
		StatusBarWidth:    140,
		WindowIconSize:    32,
		IconGap:           4,
		WidgetPanel:       PanelSize{Width: 380, Height: 500},
		QuickSettings:     PanelSize{Width: 320, Height: 280},
		StartMenu:         PanelSize{Width: 400, Height: 500},
		PanelRadius:       16,
		PanelPadding:      16,
		AppItemHeight:     56,
		AppIconSize:       40,
		AppIconGap:        12,
	}
}

// DefaultAnimation returns the stock panel animation speeds.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{
		WidgetSpeed:        0.15,
		LauncherSpeed:      0.12,
		QuickSettingsSpeed: 0.15,
	}
}

// DefaultConfig returns a configuration that runs without any file.
func DefaultConfig() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			Compositor: "compositor",
			Listener:   "shell.taskbar",
		},
		FrameInterval:     DefaultFrameInterval,
		HeartbeatInterval: DefaultHeartbeatInterval,
		Layout:            DefaultLayout(),
		Animation:         DefaultAnimation(),
		Apps: AppsConfig{
			Cache:         DefaultAppsCache,
			Root:          DefaultAppsRoot,
			ScanManifests: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Bridge: BridgeConfig{
			PollInterval: DefaultBridgePoll,
		},
	}
}

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoints.Compositor) == "" {
		return &ValidationError{Path: "endpoints.compositor", Err: fmt.Errorf("compositor endpoint is required")}
	}
	if strings.TrimSpace(c.Endpoints.Listener) == "" {
		return &ValidationError{Path: "endpoints.listener", Err: fmt.Errorf("listener endpoint is required")}
	}
	if len(c.Endpoints.Listener) > 32 {
		return &ValidationError{Path: "endpoints.listener", Err: fmt.Errorf("listener endpoint must fit in 32 bytes")}
	}
	if c.FrameInterval <= 0 {
		return &ValidationError{Path: "frame_interval", Err: fmt.Errorf("frame_interval must be > 0")}
	}
	if c.HeartbeatInterval <= 0 {
		return &ValidationError{Path: "heartbeat_interval", Err: fmt.Errorf("heartbeat_interval must be > 0")}
	}
	if err := validateLayout(c.Layout); err != nil {
		return err
	}
	speeds := []struct {
		path  string
		value float64
	}{
		{"animation.widget_speed", c.Animation.WidgetSpeed},
		{"animation.launcher_speed", c.Animation.LauncherSpeed},
		{"animation.quick_settings_speed", c.Animation.QuickSettingsSpeed},
	}
	for _, s := range speeds {
		if s.value <= 0 || s.value > 1 {
			return &ValidationError{Path: s.path, Err: fmt.Errorf("speed must be in (0, 1]")}
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return &ValidationError{Path: "logging.format", Err: fmt.Errorf("format must be one of: auto, console, json")}
	}
	if c.Bridge.PollInterval <= 0 {
		return &ValidationError{Path: "bridge.poll_interval", Err: fmt.Errorf("poll_interval must be > 0")}
	}
	return nil
}

func validateLayout(l LayoutConfig) error {
	positive := []struct {
		path  string
		value int
	}{
		{"layout.bar_height", l.BarHeight},
		{"layout.widget_bar_width", l.WidgetBarWidth},
		{"layout.center_bar_min_width", l.CenterBarMinWidth},
		{"layout.status_bar_width", l.StatusBarWidth},
		{"layout.window_icon_size", l.WindowIconSize},
		{"layout.widget_panel.width", l.WidgetPanel.Width},
		{"layout.widget_panel.height", l.WidgetPanel.Height},
		{"layout.quick_settings.width", l.QuickSettings.Width},
		{"layout.quick_settings.height", l.QuickSettings.Height},
		{"layout.start_menu.width", l.StartMenu.Width},
		{"layout.start_menu.height", l.StartMenu.Height},
		{"layout.app_item_height", l.AppItemHeight},
		{"layout.app_icon_size", l.AppIconSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{Path: p.path, Err: fmt.Errorf("must be > 0")}
		}
	}

	nonNegative := []struct {
		path  string
		value int
	}{
		{"layout.margin", l.Margin},
		{"layout.gap", l.Gap},
		{"layout.radius", l.Radius},
		{"layout.padding", l.Padding},
		{"layout.icon_gap", l.IconGap},
		{"layout.panel_radius", l.PanelRadius},
		{"layout.panel_padding", l.PanelPadding},
		{"layout.app_icon_gap", l.AppIconGap},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return &ValidationError{Path: p.path, Err: fmt.Errorf("must be >= 0")}
		}
	}

	if 2*l.Radius > l.BarHeight {
		return &ValidationError{Path: "layout.radius", Err: fmt.Errorf("radius must be at most half of bar_height")}
	}
	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "GLASSHELL"

// EnvOverrides are the settings that may be supplied through the
// environment. Empty values leave the file/default value in place.
type EnvOverrides struct {
	Compositor    string        `envconfig:"COMPOSITOR"`
	Listener      string        `envconfig:"LISTENER"`
	FrameInterval time.Duration `envconfig:"FRAME_INTERVAL"`
	LogLevel      string        `envconfig:"LOG_LEVEL"`
	LogFormat     string        `envconfig:"LOG_FORMAT"`
	AppsCache     string        `envconfig:"APPS_CACHE"`
	AppsRoot      string        `envconfig:"APPS_ROOT"`
	Wallpaper     string        `envconfig:"WALLPAPER"`
	MetricsAddr   string        `envconfig:"METRICS_ADDR"`
}

func applyEnvOverrides(cfg *Config) (map[string]Source, error) {
	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to read %s_* environment: %w", EnvPrefix, err)
	}

	sources := map[string]Source{}
	set := func(path, name string) {
		sources[path] = Source{Kind: SourceEnv, Name: EnvPrefix + "_" + name}
	}

	if env.Compositor != "" {
		cfg.Endpoints.Compositor = env.Compositor
		set("endpoints.compositor", "COMPOSITOR")
	}
	if env.Listener != "" {
		cfg.Endpoints.Listener = env.Listener
		set("endpoints.listener", "LISTENER")
	}
	if env.FrameInterval != 0 {
		cfg.FrameInterval = env.FrameInterval
		set("frame_interval", "FRAME_INTERVAL")
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
		set("logging.level", "LOG_LEVEL")
	}
	if env.LogFormat != "" {
		cfg.Logging.Format = env.LogFormat
		set("logging.format", "LOG_FORMAT")
	}
	if env.AppsCache != "" {
		cfg.Apps.Cache = env.AppsCache
		set("apps.cache", "APPS_CACHE")
	}
	if env.AppsRoot != "" {
		cfg.Apps.Root = env.AppsRoot
		set("apps.root", "APPS_ROOT")
	}
	if env.Wallpaper != "" {
		cfg.Wallpaper.Path = env.Wallpaper
		set("wallpaper.path", "WALLPAPER")
	}
	if env.MetricsAddr != "" {
		cfg.Metrics.Listen = env.MetricsAddr
		set("metrics.listen", "METRICS_ADDR")
	}
	return sources, nil
}

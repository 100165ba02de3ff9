package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/bridge"
	"github.com/1broseidon/glasshell/internal/desktop"
	"github.com/1broseidon/glasshell/internal/glyph"
	"github.com/1broseidon/glasshell/internal/platform"
	"github.com/1broseidon/glasshell/internal/wire"
)

const labelFontSize = 13

func runShell(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()
	if res.File != "" {
		log.Info("configuration loaded", zap.String("file", res.File))
	}

	m, stopMetrics := startMetrics(cfg, log)
	defer stopMetrics()

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Error("failed to connect to display", zap.Error(err))
		return 1
	}
	defer backend.Close()

	face, err := glyph.New(labelFontSize)
	if err != nil {
		log.Warn("text rendering disabled", zap.Error(err))
		face = nil
	}

	d, err := desktop.New(cfg, desktop.Deps{
		Display:    backend,
		Compositor: wire.NewClient(cfg.Endpoints.Compositor),
		Listen:     desktop.ListenWire,
		Discoverer: discoverer(cfg.Apps.Cache, cfg.Apps.Root, cfg.Apps.ScanManifests, log),
		Launcher:   &apps.ExecLauncher{Logger: log.Named("launcher")},
		Face:       face,
		Logger:     log,
		Metrics:    m,
	})
	if err != nil {
		log.Error("failed to start shell", zap.Error(err))
		return 1
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Warn("shutdown incomplete", zap.Error(err))
		}
	}()

	ctx, cancel := signalContext()
	defer cancel()

	if err := d.Run(ctx); err != nil {
		log.Error("shell stopped", zap.Error(err))
		return 1
	}
	return 0
}

func runBridge(args []string) int {
	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "bridge takes no arguments")
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	m, stopMetrics := startMetrics(cfg, log)
	defer stopMetrics()

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Error("failed to connect to display", zap.Error(err))
		return 1
	}
	defer backend.Close()

	ep, err := wire.Bind(cfg.Endpoints.Compositor)
	if err != nil {
		log.Error("failed to bind compositor endpoint", zap.Error(err))
		return 1
	}
	defer ep.Close()
	log.Info("compositor endpoint bound", zap.String("path", ep.Path()))

	b := bridge.New(backend, ep, bridge.Options{
		PollInterval: cfg.Bridge.PollInterval,
		Logger:       log.Named("bridge"),
		Metrics:      m,
	})

	ctx, cancel := signalContext()
	defer cancel()

	if err := b.Run(ctx); err != nil {
		log.Error("bridge stopped", zap.Error(err))
		return 1
	}
	return 0
}

// discoverer prefers the apps cache and falls back to manifest scanning.
func discoverer(cache, root string, scan bool, log *zap.Logger) apps.Discoverer {
	chain := apps.Chain{&apps.CacheDiscoverer{Path: cache, Root: root, Logger: log}}
	if scan {
		chain = append(chain, &apps.ManifestDiscoverer{Root: root, Logger: log})
	}
	return chain
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/logging"
	"github.com/1broseidon/glasshell/internal/metrics"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runShell(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runShell(os.Args[2:]))
	case "bridge":
		os.Exit(runBridge(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "apps":
		os.Exit(runApps(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glasshell <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the desktop shell (default)")
	fmt.Fprintln(w, "  bridge              Run the X11 compositor bridge")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config explain      Show where a config value came from")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  apps list           List discovered applications")
	fmt.Fprintln(w, "  apps cache          Rebuild the apps cache from manifests")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'glasshell <command> --help' for command options.")
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", "", "Config file path (default: ~/.config/glasshell/config.yaml)")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	return logging.New(lc)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// startMetrics registers collectors on a private registry and serves them
// when cfg.Metrics.Listen is set. The returned stop func is always non-nil.
func startMetrics(cfg *config.Config, log *zap.Logger) (*metrics.Metrics, func()) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Listen == "" {
		return m, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:              cfg.Metrics.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("metrics listening", zap.String("addr", cfg.Metrics.Listen))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return m, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// Package metrics exposes shell counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all shell and bridge collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	Frames          prometheus.Counter
	Redraws         prometheus.Counter
	RedrawDuration  prometheus.Histogram
	LifecycleEvents *prometheus.CounterVec
	DroppedRecords  prometheus.Counter
	Clicks          *prometheus.CounterVec
	WindowOps       *prometheus.CounterVec
	Launches        *prometheus.CounterVec
	Windows         prometheus.Gauge

	BridgeEvents   *prometheus.CounterVec
	BridgeRequests *prometheus.CounterVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Frames: f.NewCounter(prometheus.CounterOpts{
			Name: "glasshell_frames_total",
			Help: "Shell loop iterations.",
		}),
		Redraws: f.NewCounter(prometheus.CounterOpts{
			Name: "glasshell_redraws_total",
			Help: "Frames that repainted and presented the surface.",
		}),
		RedrawDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "glasshell_redraw_duration_seconds",
			Help:    "Time spent painting a frame.",
			Buckets: []float64{.0005, .001, .002, .004, .008, .016, .032, .064},
		}),
		LifecycleEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_lifecycle_events_total",
			Help: "Window lifecycle events received from the compositor.",
		}, []string{"type"}),
		DroppedRecords: f.NewCounter(prometheus.CounterOpts{
			Name: "glasshell_dropped_records_total",
			Help: "Inbound records discarded as short or malformed.",
		}),
		Clicks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_clicks_total",
			Help: "Pointer presses by the layer that consumed them.",
		}, []string{"target"}),
		WindowOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_window_ops_total",
			Help: "Minimize/restore requests sent to the compositor.",
		}, []string{"op", "result"}),
		Launches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_launches_total",
			Help: "Application launch attempts.",
		}, []string{"result"}),
		Windows: f.NewGauge(prometheus.GaugeOpts{
			Name: "glasshell_windows",
			Help: "Windows currently tracked by the taskbar.",
		}),
		BridgeEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_bridge_events_total",
			Help: "Lifecycle events forwarded by the X11 bridge.",
		}, []string{"type", "result"}),
		BridgeRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glasshell_bridge_requests_total",
			Help: "Requests handled by the X11 bridge.",
		}, []string{"op", "result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) Frame() {
	if m != nil {
		m.Frames.Inc()
	}
}

// Redraw records one repaint that took d.
func (m *Metrics) Redraw(d time.Duration) {
	if m == nil {
		return
	}
	m.Redraws.Inc()
	m.RedrawDuration.Observe(d.Seconds())
}

func (m *Metrics) LifecycleEvent(eventType string) {
	if m != nil {
		m.LifecycleEvents.WithLabelValues(eventType).Inc()
	}
}

func (m *Metrics) Dropped(n int) {
	if m != nil && n > 0 {
		m.DroppedRecords.Add(float64(n))
	}
}

func (m *Metrics) Click(target string) {
	if m != nil {
		m.Clicks.WithLabelValues(target).Inc()
	}
}

func (m *Metrics) WindowOp(op string, err error) {
	if m != nil {
		m.WindowOps.WithLabelValues(op, result(err)).Inc()
	}
}

func (m *Metrics) Launch(err error) {
	if m != nil {
		m.Launches.WithLabelValues(result(err)).Inc()
	}
}

func (m *Metrics) SetWindows(n int) {
	if m != nil {
		m.Windows.Set(float64(n))
	}
}

func (m *Metrics) BridgeEvent(eventType string, err error) {
	if m != nil {
		m.BridgeEvents.WithLabelValues(eventType, result(err)).Inc()
	}
}

func (m *Metrics) BridgeRequest(op string, err error) {
	if m != nil {
		m.BridgeRequests.WithLabelValues(op, result(err)).Inc()
	}
}

// Package metrics собирает счетчики бота для Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты поиска ученика
const (
	LookupFound       = "found"
	LookupNotFound    = "not_found"
	LookupUnavailable = "backend_unavailable"
)

type Metrics struct {
	registry *prometheus.Registry

	lookups        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	updates        *prometheus.CounterVec
	sendFailures   prometheus.Counter
	sessions       prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "student_lookups_total",
			Help: "Student lookups by phone number, partitioned by result.",
		}, []string{"result"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "student_lookup_duration_seconds",
			Help:    "Time spent reading the spreadsheet and scanning for a phone number.",
			Buckets: prometheus.DefBuckets,
		}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Inbound Telegram messages, partitioned by event kind.",
		}, []string{"event"}),
		sendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bot_send_failures_total",
			Help: "Replies that could not be delivered to Telegram.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bot_sessions_active",
			Help: "Sessions currently held in memory.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.lookups,
		m.lookupDuration,
		m.updates,
		m.sendFailures,
		m.sessions,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveLookup(result string, took time.Duration) {
	m.lookups.WithLabelValues(result).Inc()
	m.lookupDuration.Observe(took.Seconds())
}

func (m *Metrics) IncUpdate(event string) {
	m.updates.WithLabelValues(event).Inc()
}

func (m *Metrics) IncSendFailure() {
	m.sendFailures.Inc()
}

func (m *Metrics) SetSessions(active int) {
	m.sessions.Set(float64(active))
}

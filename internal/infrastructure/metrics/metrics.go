// Package metrics exposes the bot's Prometheus collectors: admission
// occupancy, per-kind request outcomes, fetch durations, delivered file sizes,
// inbound commands and sweep results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

const namespace = "fetchbot"

type Metrics struct {
	active          prometheus.Gauge
	capacity        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
	fileSizeBytes   *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
	sweepsTotal     *prometheus.CounterVec
	sweptFilesTotal prometheus.Counter
}

// New creates the collectors and registers them on reg. It panics on
// duplicate registration, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "downloads_active",
			Help:      "Admission slots currently held by running downloads.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "downloads_capacity",
			Help:      "Maximum number of concurrent downloads.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Download requests by media kind and terminal state.",
		}, []string{"kind", "state"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Wall time of fetch-tool runs.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"kind"}),
		fileSizeBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_size_bytes",
			Help:      "Size of downloaded files handed to delivery.",
			Buckets: []float64{
				102400,     // 100KB
				1048576,    // 1MB
				10485760,   // 10MB
				52428800,   // 50MB
				104857600,  // 100MB
				524288000,  // 500MB
				2147483648, // 2GB
			},
		}, []string{"kind"}),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Inbound chat commands by name.",
		}, []string{"command"}),
		sweepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Download directory purges by status.",
		}, []string{"status"}),
		sweptFilesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_files_total",
			Help:      "Files removed by download directory purges.",
		}),
	}

	reg.MustRegister(
		m.active,
		m.capacity,
		m.requestsTotal,
		m.jobDuration,
		m.fileSizeBytes,
		m.commandsTotal,
		m.sweepsTotal,
		m.sweptFilesTotal,
	)

	return m
}

func (m *Metrics) SetActive(n int) {
	m.active.Set(float64(n))
}

func (m *Metrics) SetCapacity(n int) {
	m.capacity.Set(float64(n))
}

func (m *Metrics) RecordOutcome(kind domain.MediaKind, state domain.State) {
	m.requestsTotal.WithLabelValues(string(kind), string(state)).Inc()
}

func (m *Metrics) RecordJobDuration(kind domain.MediaKind, d time.Duration) {
	m.jobDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

func (m *Metrics) RecordFileSize(kind domain.MediaKind, bytes int64) {
	m.fileSizeBytes.WithLabelValues(string(kind)).Observe(float64(bytes))
}

func (m *Metrics) RecordCommand(command string) {
	m.commandsTotal.WithLabelValues(command).Inc()
}

func (m *Metrics) RecordSweep(removed int, err error) {
	if err != nil {
		m.sweepsTotal.WithLabelValues("error").Inc()
	} else {
		m.sweepsTotal.WithLabelValues("success").Inc()
	}
	m.sweptFilesTotal.Add(float64(removed))
}

var _ port.Metrics = (*Metrics)(nil)

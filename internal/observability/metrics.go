package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for one run.
type Metrics struct {
	FilesDiscovered     prometheus.Counter
	FilesSkipped        prometheus.Counter
	RecordsLoaded       prometheus.Counter
	Observations        prometheus.Counter
	MissingTemperatures prometheus.Counter
	ReportsWritten      prometheus.Counter

	RunDuration        prometheus.Histogram
	LastSuccessSeconds prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates all pipeline metrics and registers them with a fresh
// registry owned by the returned Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "files_discovered_total",
			Help:      "Input files matched by the discovery pattern.",
		}),
		FilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "files_skipped_total",
			Help:      "Input files skipped because they could not be read or parsed.",
		}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "records_loaded_total",
			Help:      "Station rows loaded from input files.",
		}),
		Observations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "observations_total",
			Help:      "Monthly observations produced by the reshaper.",
		}),
		MissingTemperatures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "missing_temperatures_total",
			Help:      "Monthly cells that were empty or not numeric.",
		}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_temps",
			Name:      "reports_written_total",
			Help:      "Report files written.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "station_temps",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete discover-load-aggregate-write run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		LastSuccessSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "station_temps",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that wrote all reports.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.FilesDiscovered,
		m.FilesSkipped,
		m.RecordsLoaded,
		m.Observations,
		m.MissingTemperatures,
		m.ReportsWritten,
		m.RunDuration,
		m.LastSuccessSeconds,
	)

	return m
}

// Gatherer exposes the registry holding the run metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in the text exposition format to path,
// for pickup by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

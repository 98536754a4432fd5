package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the outcome of the last run for a node_exporter textfile
// collector. Every run starts from a fresh registry.
type Metrics struct {
	registry         *prometheus.Registry
	filesDeleted     *prometheus.GaugeVec
	bytesDeleted     *prometheus.GaugeVec
	dryRunFiles      *prometheus.GaugeVec
	emptyDirsDeleted prometheus.Gauge
	failures         *prometheus.GaugeVec
	rootsSkipped     prometheus.Gauge
	duration         prometheus.Gauge
	lastRun          prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		filesDeleted: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "files_deleted",
				Help:      "Files deleted by the last run",
			},
			[]string{"root"},
		),
		bytesDeleted: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "bytes_deleted",
				Help:      "Bytes freed by the last run",
			},
			[]string{"root"},
		),
		dryRunFiles: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dry_run_files",
				Help:      "Files the last dry run would have deleted",
			},
			[]string{"root"},
		),
		emptyDirsDeleted: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "empty_dirs_deleted",
				Help:      "Empty directories removed by the last run",
			},
		),
		failures: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "failures",
				Help:      "Per-item failures in the last run",
			},
			[]string{"kind"},
		),
		rootsSkipped: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "roots_skipped",
				Help:      "Roots that were missing or not directories",
			},
		),
		duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_duration_seconds",
				Help:      "Duration of the last run",
			},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time the last run finished",
			},
		),
	}

	m.registry.MustRegister(
		m.filesDeleted,
		m.bytesDeleted,
		m.dryRunFiles,
		m.emptyDirsDeleted,
		m.failures,
		m.rootsSkipped,
		m.duration,
		m.lastRun,
	)

	return m
}

// Observe records stats of a run that finished at finished.
func (m *Metrics) Observe(s Stats, finished time.Time) {
	for _, f := range s.Folders {
		if f.Skipped {
			continue
		}
		m.filesDeleted.WithLabelValues(f.Root).Set(float64(f.FilesDeleted))
		m.bytesDeleted.WithLabelValues(f.Root).Set(float64(f.BytesDeleted))
		m.dryRunFiles.WithLabelValues(f.Root).Set(float64(f.FilesMatched))
	}
	m.emptyDirsDeleted.Set(float64(s.EmptyDirsDeleted))
	m.failures.WithLabelValues("delete").Set(float64(s.DeleteFailures))
	m.failures.WithLabelValues("scan").Set(float64(s.ScanErrors))
	m.rootsSkipped.Set(float64(s.RootsSkipped))
	m.duration.Set(s.Duration.Seconds())
	m.lastRun.Set(float64(finished.Unix()))
}

// WriteTextfile atomically writes the registry in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

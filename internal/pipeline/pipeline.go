package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/station-temps-etl/internal/domain"
	"github.com/couchcryptid/station-temps-etl/internal/observability"
)

// Discoverer lists the input files for a run.
type Discoverer interface {
	Discover(ctx context.Context) ([]string, error)
}

// TableLoader parses input files into a single table.
type TableLoader interface {
	Load(ctx context.Context, paths []string) (domain.Table, error)
}

// ReportWriter persists rendered reports.
type ReportWriter interface {
	WriteReports(ctx context.Context, reports []domain.Report) error
}

// Pipeline runs discover -> load -> reshape -> aggregate -> write once.
type Pipeline struct {
	discoverer Discoverer
	loader     TableLoader
	writer     ReportWriter
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
	ddof       int
}

// Summary describes a completed run.
type Summary struct {
	Files        int
	Records      int
	Observations int
	Missing      int
	Reports      []domain.Report
	Duration     time.Duration
}

// New creates a Pipeline with the given stages and observability. ddof is the
// delta degrees of freedom used for station standard deviations.
func New(d Discoverer, l TableLoader, w ReportWriter, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock, ddof int) *Pipeline {
	return &Pipeline{
		discoverer: d,
		loader:     l,
		writer:     w,
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
		ddof:       ddof,
	}
}

// Run executes one batch. Zero input files is not an error: the reports are
// still written with their "no data" content.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := p.clock.Now()

	files, err := p.discoverer.Discover(ctx)
	if err != nil {
		return Summary{}, err
	}
	p.metrics.FilesDiscovered.Add(float64(len(files)))
	if len(files) == 0 {
		p.logger.Warn("no input files found")
	} else {
		p.logger.Debug("discovered input files", "count", len(files))
	}

	table, err := p.loader.Load(ctx, files)
	if err != nil {
		return Summary{}, fmt.Errorf("load: %w", err)
	}

	obs := domain.Reshape(table.Records)
	missing := domain.CountMissing(obs)
	p.metrics.Observations.Add(float64(len(obs)))
	p.metrics.MissingTemperatures.Add(float64(missing))

	reports := domain.BuildReports(obs, p.ddof)
	if err := p.writer.WriteReports(ctx, reports); err != nil {
		return Summary{}, fmt.Errorf("write reports: %w", err)
	}
	p.metrics.ReportsWritten.Add(float64(len(reports)))

	summary := Summary{
		Files:        len(files),
		Records:      len(table.Records),
		Observations: len(obs),
		Missing:      missing,
		Reports:      reports,
		Duration:     p.clock.Since(start),
	}
	p.metrics.RunDuration.Observe(summary.Duration.Seconds())
	p.metrics.LastSuccessSeconds.Set(float64(p.clock.Now().Unix()))

	p.logger.Info("pipeline finished",
		"files", summary.Files,
		"records", summary.Records,
		"observations", summary.Observations,
		"missing_temperatures", summary.Missing,
		"duration", summary.Duration,
	)
	return summary, nil
}

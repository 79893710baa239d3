package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/station-temps-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/station-temps-etl/internal/adapter/textfile"
	"github.com/couchcryptid/station-temps-etl/internal/config"
	"github.com/couchcryptid/station-temps-etl/internal/observability"
	"github.com/couchcryptid/station-temps-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	p := pipeline.New(
		csvfile.NewDiscoverer(cfg.InputDir, cfg.InputPattern),
		csvfile.NewLoader(logger, metrics),
		textfile.NewWriter(cfg.OutputDir, logger),
		logger,
		metrics,
		clockwork.NewRealClock(),
		cfg.StdDevDDOF,
	)

	_, runErr := p.Run(context.Background())
	if runErr != nil {
		logger.Error("pipeline failed", "error", runErr)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics export failed", "error", err)
			os.Exit(1)
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}

package textfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/station-temps-etl/internal/domain"
)

// Writer overwrites report files in an output directory.
// It implements pipeline.ReportWriter.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// WriteReports writes each report to <dir>/<report name>, replacing any
// previous content. The directory is created if needed.
func (w *Writer) WriteReports(ctx context.Context, reports []domain.Report) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, r := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(w.dir, r.Name)
		if err := os.WriteFile(path, r.Bytes(), 0o644); err != nil { //nolint:gosec // reports are meant to be world-readable
			return fmt.Errorf("write report %s: %w", r.Name, err)
		}
		w.logger.Debug("report written", "path", path, "lines", len(r.Lines))
	}
	return nil
}

package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/station-temps-etl/internal/domain"
	"github.com/couchcryptid/station-temps-etl/internal/observability"
)

// yearRe matches the first run of four digits in a filename,
// e.g. "stations_group_1986.csv" -> 1986.
var yearRe = regexp.MustCompile(`\d{4}`)

// MissingColumnsError reports a parseable file that lacks month columns.
// It aborts the whole load.
type MissingColumnsError struct {
	File    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("file %s is missing month columns: %s", e.File, strings.Join(e.Columns, ", "))
}

// Loader parses station CSV files into a domain.Table.
// It implements pipeline.TableLoader.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader that reports skipped files to logger and metrics.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// Load parses each path in order and concatenates the results. Files that
// cannot be opened or parsed are skipped with a warning. A file whose header
// lacks any month column fails the load with a *MissingColumnsError. A file
// with a header and no rows contributes its columns and no records.
func (l *Loader) Load(ctx context.Context, paths []string) (domain.Table, error) {
	var table domain.Table
	seen := make(map[string]bool)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return domain.Table{}, err
		}

		rows, err := readRows(path)
		if err != nil {
			l.logger.Warn("could not read file, skipping", "file", path, "error", err)
			l.metrics.FilesSkipped.Inc()
			continue
		}

		header := rows[0]
		if missing := missingMonths(header); len(missing) > 0 {
			return domain.Table{}, &MissingColumnsError{File: path, Columns: missing}
		}

		var records []domain.StationRecord
		if len(rows) > 1 {
			df := dataframe.LoadRecords(rows,
				dataframe.HasHeader(true),
				dataframe.DetectTypes(false),
				dataframe.DefaultType(series.String),
			)
			if df.Err != nil {
				l.logger.Warn("could not read file, skipping", "file", path, "error", df.Err)
				l.metrics.FilesSkipped.Inc()
				continue
			}
			header = df.Names()
			records = frameRecords(df, filepath.Base(path))
		}

		for _, n := range header {
			if !seen[n] {
				seen[n] = true
				table.Columns = append(table.Columns, n)
			}
		}

		table.Records = append(table.Records, records...)
		l.metrics.RecordsLoaded.Add(float64(len(records)))
		l.logger.Debug("loaded file", "file", path, "rows", len(records))
	}

	if len(table.Columns) > 0 {
		table.Columns = append(table.Columns, domain.ColumnSourceFile, domain.ColumnSourceYear)
	}
	return table, nil
}

// readRows reads one CSV file as string rows, header first. Rows shorter than
// the header are padded with empty cells; rows longer than the header make the
// file unparsable. The file is closed before returning.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("parse csv: no header row")
	}

	width := len(rows[0])
	for i, row := range rows[1:] {
		switch {
		case len(row) > width:
			return nil, fmt.Errorf("parse csv: line %d: expected %d fields, saw %d", i+2, width, len(row))
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			rows[i+1] = padded
		}
	}
	return rows, nil
}

func missingMonths(names []string) []string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	var missing []string
	for _, m := range domain.Months {
		if !have[m.String()] {
			missing = append(missing, m.String())
		}
	}
	return missing
}

// frameRecords converts every row of df into a StationRecord tagged with
// its source file and year.
func frameRecords(df dataframe.DataFrame, base string) []domain.StationRecord {
	names := df.Names()
	cols := make(map[string][]string, len(names))
	for _, n := range names {
		cols[n] = df.Col(n).Records()
	}

	year := sourceYear(base)
	yearCell := domain.MissingMarker
	if year != nil {
		yearCell = strconv.Itoa(*year)
	}

	nrow := df.Nrow()
	records := make([]domain.StationRecord, 0, nrow)
	for i := 0; i < nrow; i++ {
		cells := make(map[string]string, len(names)+2)
		for _, n := range names {
			cells[n] = cols[n][i]
		}
		cells[domain.ColumnSourceFile] = base
		cells[domain.ColumnSourceYear] = yearCell

		rec := domain.StationRecord{
			StationName: cells[domain.ColumnStationName],
			StationID:   domain.ParseStationID(cells[domain.ColumnStationID]),
			Latitude:    domain.ParseCoordinate(cells[domain.ColumnLatitude]),
			Longitude:   domain.ParseCoordinate(cells[domain.ColumnLongitude]),
			SourceFile:  base,
			SourceYear:  year,
			Columns:     cells,
		}
		for _, m := range domain.Months {
			rec.MonthCells[m-1] = cells[m.String()]
		}
		records = append(records, rec)
	}
	return records
}

// sourceYear extracts the first four-digit run from a filename.
func sourceYear(base string) *int {
	match := yearRe.FindString(base)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

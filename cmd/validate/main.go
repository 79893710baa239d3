// Command validate checks a directory of station CSV files without writing
// any reports. It discovers and loads the inputs with the same adapters as
// the pipeline, then runs integrity phases over the loaded rows: station
// identity, coordinate bounds, and temperature plausibility.
//
// Configuration is read from the same environment variables as stationtemps:
//
//	TEMPERATURES_DIR=temperatures INPUT_PATTERN='stations_group_*.csv' go run ./cmd/validate
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/couchcryptid/station-temps-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/station-temps-etl/internal/config"
	"github.com/couchcryptid/station-temps-etl/internal/domain"
	"github.com/couchcryptid/station-temps-etl/internal/observability"
)

// Plausible surface air temperature bounds in °C, a little wider than the
// recorded world extremes.
const (
	minPlausibleTemp = -90.0
	maxPlausibleTemp = 60.0
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	os.Exit(run(context.Background(), cfg, os.Stdout))
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) int {
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fmt.Fprintln(out, "=== Station Temperature Input Validation ===")
	fmt.Fprintln(out)

	files, err := csvfile.NewDiscoverer(cfg.InputDir, cfg.InputPattern).Discover(ctx)
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	table, err := csvfile.NewLoader(logger, metrics).Load(ctx, files)
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	discovery := &phase{name: "Input discovery"}
	if len(files) == 0 {
		discovery.errorf("no files match %q in %s", cfg.InputPattern, cfg.InputDir)
	}

	phases := []*phase{
		discovery,
		validateIdentity(table.Records),
		validateCoordinates(table.Records),
		validateTemperatures(domain.Reshape(table.Records), logger),
	}

	printFileSummary(out, table)

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// printFileSummary lists row counts per source file in load order, followed
// by the column union across all files.
func printFileSummary(out io.Writer, table domain.Table) {
	type fileStats struct {
		name string
		year *int
		rows int
	}
	var order []string
	stats := make(map[string]*fileStats)
	for _, r := range table.Records {
		s, ok := stats[r.SourceFile]
		if !ok {
			s = &fileStats{name: r.SourceFile, year: r.SourceYear}
			stats[r.SourceFile] = s
			order = append(order, r.SourceFile)
		}
		s.rows++
	}

	for _, name := range order {
		s := stats[name]
		year := domain.MissingMarker
		if s.year != nil {
			year = fmt.Sprint(*s.year)
		}
		fmt.Fprintf(out, "  %-42s year %-6s %d rows\n", s.name, year, s.rows)
	}
	if table.Empty() {
		fmt.Fprintln(out, "  No records loaded")
	}
	fmt.Fprintf(out, "\nRecords: %d from %d files\n", len(table.Records), len(order))
	if len(table.Columns) > 0 {
		fmt.Fprintf(out, "Columns: %s\n", strings.Join(table.Columns, ", "))
	}
	fmt.Fprintln(out)
}

// validateIdentity checks every row carries a station name and id, and that
// no (name, id) pair appears twice within one file.
func validateIdentity(records []domain.StationRecord) *phase {
	p := &phase{name: "Station identity"}
	type fileKey struct {
		file string
		key  domain.StationKey
	}
	seen := make(map[fileKey]bool)

	for i, r := range records {
		if r.StationName == "" || r.StationName == domain.MissingMarker {
			p.errorf("%s row %d: missing %s", r.SourceFile, i+1, domain.ColumnStationName)
		}
		if r.StationID == nil {
			p.errorf("%s row %d (%s): missing or invalid %s %q",
				r.SourceFile, i+1, r.StationName, domain.ColumnStationID, r.Columns[domain.ColumnStationID])
		}
		k := fileKey{file: r.SourceFile, key: r.Key()}
		if seen[k] {
			p.errorf("%s: duplicate station %s", r.SourceFile, r.Key())
		}
		seen[k] = true
	}
	return p
}

// validateCoordinates checks latitude and longitude are present and in range.
func validateCoordinates(records []domain.StationRecord) *phase {
	p := &phase{name: "Coordinate bounds"}
	for _, r := range records {
		switch {
		case r.Latitude == nil || r.Longitude == nil:
			p.errorf("%s: %s has no coordinates", r.SourceFile, r.Key())
		case *r.Latitude < -90 || *r.Latitude > 90:
			p.errorf("%s: %s latitude %.2f out of range", r.SourceFile, r.Key(), *r.Latitude)
		case *r.Longitude < -180 || *r.Longitude > 180:
			p.errorf("%s: %s longitude %.2f out of range", r.SourceFile, r.Key(), *r.Longitude)
		}
	}
	return p
}

// validateTemperatures flags implausible readings. Missing readings are
// reported per file as a note, not a failure.
func validateTemperatures(obs []domain.LongObservation, logger *slog.Logger) *phase {
	p := &phase{name: "Temperature plausibility"}
	missing := make(map[string]int)
	for _, o := range obs {
		if o.Temperature == nil {
			missing[o.SourceFile]++
			continue
		}
		if t := *o.Temperature; t < minPlausibleTemp || t > maxPlausibleTemp {
			p.errorf("%s: %s %s reading %.1f°C outside [%.0f, %.0f]",
				o.SourceFile, o.Key(), o.Month, t, minPlausibleTemp, maxPlausibleTemp)
		}
	}

	files := make([]string, 0, len(missing))
	for f := range missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		logger.Info("missing temperature readings", "file", f, "count", missing[f])
	}
	return p
}

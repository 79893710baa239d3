package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/station-temps-etl/internal/config"
)

const testHeader = "STATION_NAME,STN_ID,LAT,LON,January,February,March,April,May,June,July,August,September,October,November,December\n"

func testConfig(dir string) *config.Config {
	return &config.Config{
		InputDir:     dir,
		InputPattern: "*.csv",
		LogLevel:     "error",
		LogFormat:    "text",
	}
}

func TestRun_ValidInputs(t *testing.T) {
	dir := t.TempDir()
	content := testHeader + "DARWIN-AIRPORT,14015,-12.42,130.89,31.8,31.4,31.9,32.7,32.0,30.6,30.5,31.3,32.6,33.3,33.4,32.7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations_group_1986.csv"), []byte(content), 0o600))

	var out bytes.Buffer
	code := run(context.Background(), testConfig(dir), &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "stations_group_1986.csv")
	assert.Contains(t, out.String(), "year 1986")
	assert.Contains(t, out.String(), "Records: 1 from 1 files")
	assert.Contains(t, out.String(), "Columns: STATION_NAME, STN_ID, LAT, LON, January,")
	assert.Contains(t, out.String(), "December, SOURCE_FILE, SOURCE_YEAR")
	assert.Contains(t, out.String(), "All validations passed.")
}

func TestRun_FlagsBadRows(t *testing.T) {
	dir := t.TempDir()
	content := testHeader +
		"DARWIN-AIRPORT,14015,-12.42,130.89,31.8,31.4,31.9,32.7,32.0,30.6,30.5,31.3,32.6,33.3,33.4,32.7\n" +
		"DARWIN-AIRPORT,14015,-12.42,130.89,31.8,31.4,31.9,32.7,32.0,30.6,30.5,31.3,32.6,33.3,33.4,32.7\n" +
		",,-95,130.89,310,31.4,31.9,32.7,32.0,30.6,30.5,31.3,32.6,33.3,33.4,32.7\n" +
		"KATHERINE,14932.5,-14.47,132.26,29.6,29.3,29.4,29.8,27.6,25.1,24.9,27.0,30.3,32.1,32.1,30.9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations_group_1987.csv"), []byte(content), 0o600))

	var out bytes.Buffer
	code := run(context.Background(), testConfig(dir), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "duplicate station DARWIN-AIRPORT (ID 14015)")
	assert.Contains(t, out.String(), "missing STATION_NAME")
	assert.Contains(t, out.String(), `(KATHERINE): missing or invalid STN_ID "14932.5"`)
	assert.Contains(t, out.String(), "latitude -95.00 out of range")
	assert.Contains(t, out.String(), "reading 310.0°C")
	assert.Contains(t, out.String(), "Validation FAILED.")
}

func TestRun_NoFiles(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), testConfig(t.TempDir()), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "no files match")
}

func TestRun_HeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations_group_1989.csv"), []byte(testHeader), 0o600))

	var out bytes.Buffer
	code := run(context.Background(), testConfig(dir), &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "No records loaded")
	assert.Contains(t, out.String(), "Records: 0 from 0 files")
	assert.Contains(t, out.String(), "Columns: STATION_NAME,")
}

func TestRun_MissingMonthColumnsIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations_group_1988.csv"),
		[]byte("STATION_NAME,STN_ID,January\nA,1,20\n"), 0o600))

	var out bytes.Buffer
	code := run(context.Background(), testConfig(dir), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "FATAL")
	assert.Contains(t, out.String(), "missing month columns")
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		name     string
		in       *float64
		expected string
	}{
		{"rounds to one decimal", floatPtr(28.38), "28.4"},
		{"whole number", floatPtr(20), "20.0"},
		{"negative", floatPtr(-3.26), "-3.3"},
		{"missing", nil, MissingMarker},
		{"nan", floatPtr(math.NaN()), MissingMarker},
		{"infinite", floatPtr(math.Inf(1)), MissingMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTemperature(tt.in))
		})
	}
}

func TestRangeReport(t *testing.T) {
	report := RangeReport([]StationRange{
		{Station: NewStationKey("WITTENOOM", intPtr(5026)), Range: 25.04, Max: 41.35, Min: 16.31},
		{Station: NewStationKey("WOOMERA", nil), Range: 25.04, Max: 33.69, Min: 8.65},
	})

	assert.Equal(t, RangeReportFile, report.Name)
	assert.Equal(t, []string{
		"WITTENOOM (ID 5026): Range 25.0°C (Max: 41.4°C, Min: 16.3°C)",
		"WOOMERA (ID NaN): Range 25.0°C (Max: 33.7°C, Min: 8.7°C)",
	}, report.Lines)
}

func TestReportBytes(t *testing.T) {
	r := Report{Name: "x.txt", Lines: []string{"a", "b"}}
	assert.Equal(t, "a\nb\n", string(r.Bytes()))
}

func TestBuildReports_NoObservations(t *testing.T) {
	reports := BuildReports(nil, 0)
	require.Len(t, reports, 4)

	assert.Equal(t, SeasonalReportFile, reports[0].Name)
	assert.Equal(t, []string{
		"Summer: NaN°C",
		"Autumn: NaN°C",
		"Winter: NaN°C",
		"Spring: NaN°C",
	}, reports[0].Lines)

	for _, r := range reports[1:] {
		assert.Equal(t, []string{NoDataLine}, r.Lines, r.Name)
	}
}

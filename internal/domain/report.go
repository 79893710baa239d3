package domain

import (
	"math"
	"strconv"
	"strings"
)

// MissingMarker is rendered in place of an absent value.
const MissingMarker = "NaN"

// NoDataLine is the whole content of a station report with nothing to report.
const NoDataLine = "No data available"

// Report file names.
const (
	SeasonalReportFile  = "average_temp.txt"
	RangeReportFile     = "largest_temp_range_station.txt"
	StabilityReportFile = "temperature_stability_stations.txt"
	YearlyReportFile    = "yearly_extremes.txt"
)

// Report is one rendered text output.
type Report struct {
	Name  string
	Lines []string
}

// Bytes returns the report as newline-terminated UTF-8 text.
func (r Report) Bytes() []byte {
	var b strings.Builder
	for _, l := range r.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// FormatTemperature renders v with one decimal place, or MissingMarker when
// v is nil or not finite.
func FormatTemperature(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return MissingMarker
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatValue(v float64) string {
	return FormatTemperature(&v)
}

// SeasonalReport renders one "<Season>: <value>°C" line per season.
func SeasonalReport(avgs []SeasonAverage) Report {
	lines := make([]string, 0, len(avgs))
	for _, a := range avgs {
		lines = append(lines, a.Season.String()+": "+FormatTemperature(a.Mean)+"°C")
	}
	return Report{Name: SeasonalReportFile, Lines: lines}
}

// RangeReport renders one line per tied station, or NoDataLine.
func RangeReport(ranges []StationRange) Report {
	if len(ranges) == 0 {
		return Report{Name: RangeReportFile, Lines: []string{NoDataLine}}
	}
	lines := make([]string, 0, len(ranges))
	for _, r := range ranges {
		lines = append(lines, r.Station.String()+
			": Range "+formatValue(r.Range)+
			"°C (Max: "+formatValue(r.Max)+
			"°C, Min: "+formatValue(r.Min)+"°C)")
	}
	return Report{Name: RangeReportFile, Lines: lines}
}

// StabilityReport renders the most stable stations followed by the most
// variable ones, or NoDataLine.
func StabilityReport(s Stability) Report {
	if len(s.MostStable) == 0 && len(s.MostVariable) == 0 {
		return Report{Name: StabilityReportFile, Lines: []string{NoDataLine}}
	}
	lines := make([]string, 0, len(s.MostStable)+len(s.MostVariable))
	for _, sp := range s.MostStable {
		lines = append(lines, "Most Stable: "+sp.Station.String()+": StdDev "+formatValue(sp.StdDev)+"°C")
	}
	for _, sp := range s.MostVariable {
		lines = append(lines, "Most Variable: "+sp.Station.String()+": StdDev "+formatValue(sp.StdDev)+"°C")
	}
	return Report{Name: StabilityReportFile, Lines: lines}
}

// YearlyReport renders the highest and lowest reading of each year.
func YearlyReport(years []YearExtremes) Report {
	if len(years) == 0 {
		return Report{Name: YearlyReportFile, Lines: []string{NoDataLine}}
	}
	var lines []string
	for i, y := range years {
		if i > 0 {
			lines = append(lines, "")
		}
		label := "unknown"
		if y.Year != nil {
			label = strconv.Itoa(*y.Year)
		}
		lines = append(lines,
			"Year "+label+":",
			"  - Highest: "+formatValue(y.Highest)+"°C at "+joinNames(y.HighestStations),
			"  - Lowest:  "+formatValue(y.Lowest)+"°C at "+joinNames(y.LowestStations),
		)
	}
	return Report{Name: YearlyReportFile, Lines: lines}
}

func joinNames(keys []StationKey) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Name)
	}
	return strings.Join(names, ", ")
}

// BuildReports runs every analysis over obs and renders the reports.
func BuildReports(obs []LongObservation, ddof int) []Report {
	return []Report{
		SeasonalReport(SeasonalAverages(obs)),
		RangeReport(LargestRange(obs)),
		StabilityReport(StationStability(obs, ddof)),
		YearlyReport(YearlyExtremes(obs)),
	}
}

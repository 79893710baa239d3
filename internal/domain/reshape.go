package domain

import (
	"math"
	"strconv"
	"strings"
)

// Reshape unpivots each wide record into twelve long observations, one per
// month in calendar order. Cells that do not parse as finite numbers become
// missing temperatures.
func Reshape(records []StationRecord) []LongObservation {
	out := make([]LongObservation, 0, len(records)*len(Months))
	for _, rec := range records {
		for _, m := range Months {
			out = append(out, LongObservation{
				StationName: rec.StationName,
				StationID:   rec.StationID,
				Latitude:    rec.Latitude,
				Longitude:   rec.Longitude,
				Month:       m,
				Temperature: ParseTemperature(rec.Cell(m)),
				SourceFile:  rec.SourceFile,
				SourceYear:  rec.SourceYear,
			})
		}
	}
	return out
}

// ParseTemperature coerces a raw cell to a temperature. Returns nil for
// empty, non-numeric, NaN and infinite values.
func ParseTemperature(s string) *float64 {
	return parseFiniteFloat(s)
}

const maxExactFloatInt = 1 << 53

// ParseStationID parses an id cell. Integral floats such as "23090.0" are
// accepted because some exports write ids as floats. A float id is only
// accepted up to 2^53 in magnitude, the range where every integer is exactly
// representable; larger float cells yield nil. Plain integer cells are not
// bounded beyond what int holds.
func ParseStationID(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f := parseFiniteFloat(s)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > maxExactFloatInt {
		return nil
	}
	n := int(*f)
	return &n
}

// ParseCoordinate parses a latitude or longitude cell.
func ParseCoordinate(s string) *float64 {
	return parseFiniteFloat(s)
}

func parseFiniteFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// CountMissing returns the number of observations without a temperature.
func CountMissing(obs []LongObservation) int {
	n := 0
	for _, o := range obs {
		if o.Temperature == nil {
			n++
		}
	}
	return n
}

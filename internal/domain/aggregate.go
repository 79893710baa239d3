package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeasonAverage is the mean temperature of one season. Mean is nil when the
// season has no non-missing observations.
type SeasonAverage struct {
	Season Season
	Mean   *float64
	Count  int
}

// StationRange is the spread between a station's warmest and coldest month.
type StationRange struct {
	Station StationKey
	Range   float64
	Max     float64
	Min     float64
}

// StationSpread is a station's temperature standard deviation.
type StationSpread struct {
	Station StationKey
	StdDev  float64
	Count   int
}

// Stability holds every station tied at the lowest and highest std-dev.
// Both slices are empty when no station has a defined std-dev.
type Stability struct {
	MostStable   []StationSpread
	MostVariable []StationSpread
}

// YearExtremes holds the hottest and coldest readings of one source year.
// Year is nil for files whose name carried no year.
type YearExtremes struct {
	Year            *int
	Highest         float64
	HighestStations []StationKey
	Lowest          float64
	LowestStations  []StationKey
}

// SeasonalAverages computes the mean of non-missing temperatures per season,
// in report order. Every season is present in the result.
func SeasonalAverages(obs []LongObservation) []SeasonAverage {
	var values [len(Seasons)][]float64
	for _, o := range obs {
		if o.Temperature == nil {
			continue
		}
		s := SeasonOf(o.Month)
		values[s] = append(values[s], *o.Temperature)
	}

	out := make([]SeasonAverage, 0, len(Seasons))
	for _, s := range Seasons {
		avg := SeasonAverage{Season: s, Count: len(values[s])}
		if avg.Count > 0 {
			mean := stat.Mean(values[s], nil)
			avg.Mean = &mean
		}
		out = append(out, avg)
	}
	return out
}

// LargestRange returns every station whose max-min range equals the largest
// range in the data set, ordered by station key. Returns nil when no station
// has a valid temperature.
func LargestRange(obs []LongObservation) []StationRange {
	groups := groupByStation(obs)

	var winners []StationRange
	best := math.Inf(-1)
	for _, g := range groups {
		hi, lo := floats.Max(g.values), floats.Min(g.values)
		r := StationRange{Station: g.key, Range: hi - lo, Max: hi, Min: lo}
		switch {
		case r.Range > best:
			best = r.Range
			winners = append(winners[:0], r)
		case r.Range == best:
			winners = append(winners, r)
		}
	}
	return winners
}

// StationStability computes each station's standard deviation with ddof
// delta degrees of freedom and returns the stations tied at the minimum and
// maximum. Stations with no more than ddof valid readings are skipped.
func StationStability(obs []LongObservation, ddof int) Stability {
	var result Stability
	lowest, highest := math.Inf(1), math.Inf(-1)

	for _, g := range groupByStation(obs) {
		sd, ok := stdDev(g.values, ddof)
		if !ok {
			continue
		}
		spread := StationSpread{Station: g.key, StdDev: sd, Count: len(g.values)}

		switch {
		case sd < lowest:
			lowest = sd
			result.MostStable = append(result.MostStable[:0], spread)
		case sd == lowest:
			result.MostStable = append(result.MostStable, spread)
		}

		switch {
		case sd > highest:
			highest = sd
			result.MostVariable = append(result.MostVariable[:0], spread)
		case sd == highest:
			result.MostVariable = append(result.MostVariable, spread)
		}
	}
	return result
}

// YearlyExtremes returns the hottest and coldest temperature of each source
// year with every station that recorded it. Dated years come first in
// ascending order, followed by the undated group if any.
func YearlyExtremes(obs []LongObservation) []YearExtremes {
	type yearKey struct {
		year    int
		hasYear bool
	}
	byYear := make(map[yearKey]*YearExtremes)
	var keys []yearKey

	for _, o := range obs {
		if o.Temperature == nil {
			continue
		}
		k := yearKey{}
		if o.SourceYear != nil {
			k = yearKey{year: *o.SourceYear, hasYear: true}
		}
		e, ok := byYear[k]
		if !ok {
			e = &YearExtremes{Year: o.SourceYear, Highest: math.Inf(-1), Lowest: math.Inf(1)}
			byYear[k] = e
			keys = append(keys, k)
		}
		t := *o.Temperature
		station := o.Key()

		switch {
		case t > e.Highest:
			e.Highest = t
			e.HighestStations = []StationKey{station}
		case t == e.Highest:
			e.HighestStations = appendUnique(e.HighestStations, station)
		}
		switch {
		case t < e.Lowest:
			e.Lowest = t
			e.LowestStations = []StationKey{station}
		case t == e.Lowest:
			e.LowestStations = appendUnique(e.LowestStations, station)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].hasYear != keys[j].hasYear {
			return keys[i].hasYear
		}
		return keys[i].year < keys[j].year
	})

	out := make([]YearExtremes, 0, len(keys))
	for _, k := range keys {
		e := byYear[k]
		sortKeys(e.HighestStations)
		sortKeys(e.LowestStations)
		out = append(out, *e)
	}
	return out
}

type stationValues struct {
	key    StationKey
	values []float64
}

// groupByStation collects non-missing temperatures per station, ordered by
// station key. Stations with no valid temperature are omitted.
func groupByStation(obs []LongObservation) []stationValues {
	idx := make(map[StationKey]int)
	var groups []stationValues
	for _, o := range obs {
		if o.Temperature == nil {
			continue
		}
		k := o.Key()
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, stationValues{key: k})
		}
		groups[i].values = append(groups[i].values, *o.Temperature)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].key.Less(groups[j].key) })
	return groups
}

// stdDev returns sqrt(sum((x-mean)^2) / (n-ddof)). The second result is false
// when n-ddof is not positive.
func stdDev(values []float64, ddof int) (float64, bool) {
	n := len(values) - ddof
	if len(values) == 0 || n <= 0 {
		return 0, false
	}
	mean := stat.Mean(values, nil)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n)), true
}

func appendUnique(keys []StationKey, k StationKey) []StationKey {
	for _, existing := range keys {
		if existing == k {
			return keys
		}
	}
	return append(keys, k)
}

func sortKeys(keys []StationKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

package domain

import (
	"strconv"
	"time"
)

// Column names expected in station CSV files.
const (
	ColumnStationName = "STATION_NAME"
	ColumnStationID   = "STN_ID"
	ColumnLatitude    = "LAT"
	ColumnLongitude   = "LON"

	// Attached by the loader to every row.
	ColumnSourceFile = "SOURCE_FILE"
	ColumnSourceYear = "SOURCE_YEAR"
)

// Months lists the twelve month columns in calendar order. The column name is
// the English month name, i.e. time.Month.String().
var Months = [12]time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
	time.July, time.August, time.September, time.October, time.November, time.December,
}

// StationRecord is one wide row: a single station in a single source file.
type StationRecord struct {
	StationName string
	StationID   *int
	Latitude    *float64
	Longitude   *float64

	// MonthCells holds the raw month cells indexed by time.Month-1. They are
	// coerced to temperatures by Reshape.
	MonthCells [12]string

	SourceFile string
	SourceYear *int

	// Columns holds every original cell of the row keyed by column name.
	Columns map[string]string
}

// Cell returns the raw value for month m.
func (r StationRecord) Cell(m time.Month) string {
	return r.MonthCells[m-1]
}

// Key returns the grouping identity of the record's station.
func (r StationRecord) Key() StationKey {
	return NewStationKey(r.StationName, r.StationID)
}

// Table is the concatenated output of the loader.
type Table struct {
	// Columns is the ordered union of column names across all loaded files,
	// followed by SOURCE_FILE and SOURCE_YEAR. Nil when nothing was loaded.
	Columns []string
	Records []StationRecord
}

// Empty reports whether the table holds no records.
func (t Table) Empty() bool {
	return len(t.Records) == 0
}

// LongObservation is a single (station, month, temperature) fact.
type LongObservation struct {
	StationName string
	StationID   *int
	Latitude    *float64
	Longitude   *float64
	Month       time.Month
	Temperature *float64 // nil when missing; never NaN or infinite
	SourceFile  string
	SourceYear  *int
}

// Key returns the grouping identity of the observation's station.
func (o LongObservation) Key() StationKey {
	return NewStationKey(o.StationName, o.StationID)
}

// StationKey identifies a station across files. It is comparable so it can
// be used as a map key.
type StationKey struct {
	Name  string
	ID    int
	HasID bool
}

// NewStationKey builds a key from a name and an optional id.
func NewStationKey(name string, id *int) StationKey {
	if id == nil {
		return StationKey{Name: name}
	}
	return StationKey{Name: name, ID: *id, HasID: true}
}

// Less orders keys by name, then id, with an absent id last.
func (k StationKey) Less(other StationKey) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	if k.HasID != other.HasID {
		return k.HasID
	}
	return k.ID < other.ID
}

// String renders the key as "<name> (ID <id>)".
func (k StationKey) String() string {
	id := MissingMarker
	if k.HasID {
		id = strconv.Itoa(k.ID)
	}
	return k.Name + " (ID " + id + ")"
}

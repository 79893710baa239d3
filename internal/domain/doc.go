// Package domain models monthly station temperature data and the analyses
// run over it.
//
// # Data Source
//
// Input files are Bureau of Meteorology style station groups, one CSV per
// year, e.g. "stations_group_1986.csv". Each row is one station:
//
//	STATION_NAME,STN_ID,LAT,LON,January,February,...,December
//	ADELAIDE-KENT-TOWN,23090,-34.92,138.62,28.9,29.1,...,28.38
//
// The year is not a column; it is recovered from the first run of four
// digits in the filename and attached to every row as SOURCE_YEAR.
//
// # Missing Values
//
// Temperature cells that are empty, non-numeric, NaN or infinite are treated
// as missing. Missing values are modelled as nil pointers and are skipped by
// every aggregate; they never reach arithmetic as a sentinel float. Reports
// render a missing value as "NaN".
//
// # Seasons
//
// Seasons follow the Southern Hemisphere convention:
//
//	Summer: December, January, February
//	Autumn: March, April, May
//	Winter: June, July, August
//	Spring: September, October, November
//
// # Station Identity
//
// A station is identified by its (name, id) pair so that two stations sharing
// a name are never merged. A row without a parseable id forms its own group
// for that name.
//
// # Ties
//
// Extremal analyses (largest range, most/least stable, yearly extremes)
// report every station sharing the extremal value rather than picking one.
package domain

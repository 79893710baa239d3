package domain

import (
	"strconv"
	"time"
)

// Season is a Southern Hemisphere meteorological season.
type Season int

const (
	Summer Season = iota
	Autumn
	Winter
	Spring
)

// Seasons lists every season in report order.
var Seasons = [4]Season{Summer, Autumn, Winter, Spring}

var seasonNames = [4]string{"Summer", "Autumn", "Winter", "Spring"}

// monthSeasons maps time.Month-1 to its season.
var monthSeasons = [12]Season{
	Summer, Summer, // January, February
	Autumn, Autumn, Autumn,
	Winter, Winter, Winter,
	Spring, Spring, Spring,
	Summer, // December
}

// SeasonOf returns the season containing month m.
func SeasonOf(m time.Month) Season {
	return monthSeasons[m-1]
}

func (s Season) String() string {
	if s < Summer || s > Spring {
		return "Season(" + strconv.Itoa(int(s)) + ")"
	}
	return seasonNames[s]
}

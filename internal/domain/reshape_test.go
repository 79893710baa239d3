package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }

func makeRecord(name string, id *int, year *int, cells ...string) StationRecord {
	rec := StationRecord{
		StationName: name,
		StationID:   id,
		SourceFile:  "stations_group_test.csv",
		SourceYear:  year,
	}
	copy(rec.MonthCells[:], cells)
	return rec
}

func TestReshape(t *testing.T) {
	rec := makeRecord("ADELAIDE-KENT-TOWN", intPtr(23090), intPtr(1986),
		"28.9", "29.1", "n/a", "", "NaN", "12.5", "-1.25", "Inf", "16", "19.5", "24.2", "26.0")
	rec.Latitude = floatPtr(-34.92)
	rec.Longitude = floatPtr(138.62)

	obs := Reshape([]StationRecord{rec})
	require.Len(t, obs, 12)

	for i, o := range obs {
		assert.Equal(t, Months[i], o.Month)
		assert.Equal(t, "ADELAIDE-KENT-TOWN", o.StationName)
		assert.Equal(t, 23090, *o.StationID)
		assert.Equal(t, -34.92, *o.Latitude)
		assert.Equal(t, 138.62, *o.Longitude)
		assert.Equal(t, "stations_group_test.csv", o.SourceFile)
		assert.Equal(t, 1986, *o.SourceYear)
	}

	assert.Equal(t, 28.9, *obs[0].Temperature)
	assert.Nil(t, obs[2].Temperature, "non-numeric cell")
	assert.Nil(t, obs[3].Temperature, "empty cell")
	assert.Nil(t, obs[4].Temperature, "NaN cell")
	assert.Equal(t, -1.25, *obs[6].Temperature)
	assert.Nil(t, obs[7].Temperature, "infinite cell")
	assert.Equal(t, 16.0, *obs[8].Temperature)
	assert.Equal(t, 4, CountMissing(obs))
}

func TestReshape_MissingIdentifyingColumns(t *testing.T) {
	rec := StationRecord{}
	rec.MonthCells[time.March-1] = "20"

	obs := Reshape([]StationRecord{rec})
	require.Len(t, obs, 12)
	assert.Empty(t, obs[0].StationName)
	assert.Nil(t, obs[0].StationID)
	assert.Nil(t, obs[0].Latitude)
	assert.Nil(t, obs[0].SourceYear)
	assert.Equal(t, 20.0, *obs[2].Temperature)
}

func TestReshape_Empty(t *testing.T) {
	assert.Empty(t, Reshape(nil))
}

func TestParseStationID(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *int
	}{
		{"integer", "23090", intPtr(23090)},
		{"padded", " 9741 ", intPtr(9741)},
		{"integral float", "15590.0", intPtr(15590)},
		{"fractional float", "15590.5", nil},
		{"empty", "", nil},
		{"text", "abc", nil},
		{"nan", "NaN", nil},
		{"above int32", "3000000000", intPtr(3000000000)},
		{"above int32 as float", "3000000000.0", intPtr(3000000000)},
		{"float beyond exact range", "1e300", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStationID(tt.in))
		})
	}
}

func TestSeasonOf(t *testing.T) {
	expected := map[time.Month]Season{
		time.December: Summer, time.January: Summer, time.February: Summer,
		time.March: Autumn, time.April: Autumn, time.May: Autumn,
		time.June: Winter, time.July: Winter, time.August: Winter,
		time.September: Spring, time.October: Spring, time.November: Spring,
	}
	for m, s := range expected {
		assert.Equal(t, s, SeasonOf(m), m.String())
	}
	assert.Equal(t, "Autumn", Autumn.String())
	assert.Equal(t, "Season(7)", Season(7).String())
}

func TestStationKey(t *testing.T) {
	withID := NewStationKey("ALBANY", intPtr(9741))
	noID := NewStationKey("ALBANY", nil)

	assert.Equal(t, "ALBANY (ID 9741)", withID.String())
	assert.Equal(t, "ALBANY (ID NaN)", noID.String())
	assert.NotEqual(t, withID, noID)
	assert.True(t, withID.Less(noID), "absent id sorts last")
	assert.True(t, NewStationKey("ALBANY", intPtr(1)).Less(withID))
	assert.True(t, noID.Less(NewStationKey("BROOME", intPtr(1))))
}

package scheddb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `origin,destination,departure,duration,service,monday,tuesday,wednesday,thursday,friday,saturday,sunday,season
نابل,تونس,480,60,رفاهة,X,X,X,X,X,,,صيفية
نابل,قربة,08:30,30,,x,x,x,x,x,x,x,
قربة,تونس,530,40,,1,1,1,1,1,true,,شتوية
`

func TestParseTimetableCSV(t *testing.T) {
	trips, skipped, err := parseTimetableCSV([]byte(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, trips, 3)

	first := trips[0]
	assert.Equal(t, "نابل", first.Origin)
	assert.Equal(t, "تونس", first.Destination)
	assert.Equal(t, int64(480), first.Departure)
	assert.Equal(t, int64(60), first.Duration)
	assert.Equal(t, "رفاهة", first.Service)
	assert.Equal(t, [7]int64{1, 1, 1, 1, 1, 0, 0}, first.DayFlags())
	assert.Equal(t, "صيفية", first.Season)

	// Clock-style departures convert to minutes since midnight.
	assert.Equal(t, int64(510), trips[1].Departure)
	assert.Equal(t, [7]int64{1, 1, 1, 1, 1, 1, 1}, trips[1].DayFlags())
	assert.Equal(t, "", trips[1].Season)

	assert.Equal(t, [7]int64{1, 1, 1, 1, 1, 1, 0}, trips[2].DayFlags())
}

func TestParseTimetableCSVSkipsBadRows(t *testing.T) {
	csv := `origin,destination,departure,duration,service,monday,tuesday,wednesday,thursday,friday,saturday,sunday,season
نابل,تونس,480,60,,X,,,,,,,
,تونس,480,60,,X,,,,,,,
نابل,,480,60,,X,,,,,,,
نابل,تونس,abc,60,,X,,,,,,,
نابل,تونس,480,0,,X,,,,,,,
نابل,تونس,480,-5,,X,,,,,,,
`
	trips, skipped, err := parseTimetableCSV([]byte(csv))
	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Equal(t, 5, skipped)
}

func TestParseTimetableCSVToleratesShortRecords(t *testing.T) {
	csv := `origin,destination,departure,duration,service,monday,tuesday,wednesday,thursday,friday,saturday,sunday,season
نابل,تونس,480,60
`
	trips, skipped, err := parseTimetableCSV([]byte(csv))
	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, [7]int64{0, 0, 0, 0, 0, 0, 0}, trips[0].DayFlags())
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"90", 90, true},
		{"0", 0, true},
		{"08:30", 510, true},
		{" 7:05 ", 425, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"08:75", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseMinutes(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

func TestDayFlag(t *testing.T) {
	assert.Equal(t, int64(1), dayFlag("X"))
	assert.Equal(t, int64(1), dayFlag("x"))
	assert.Equal(t, int64(1), dayFlag(" 1 "))
	assert.Equal(t, int64(1), dayFlag("true"))
	assert.Equal(t, int64(0), dayFlag(""))
	assert.Equal(t, int64(0), dayFlag("0"))
	assert.Equal(t, int64(0), dayFlag("no"))
}

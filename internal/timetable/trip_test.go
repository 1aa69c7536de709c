package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"08:30", 510, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 7:05 ", 425, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:00", 0, false},
		{"0830", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, ok := ParseHHMM(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, minutes)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "08:05", FormatMinutes(485))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}

func TestServiceClassFromRaw(t *testing.T) {
	assert.Equal(t, ServicePremium, ServiceClassFromRaw("رفاهة"))
	assert.Equal(t, ServicePremium, ServiceClassFromRaw(" Luxe "))
	assert.Equal(t, ServicePremium, ServiceClassFromRaw("premium"))
	assert.Equal(t, ServiceStandard, ServiceClassFromRaw("عادية"))
	assert.Equal(t, ServiceStandard, ServiceClassFromRaw(""))
}

func TestServiceClassDisplayName(t *testing.T) {
	assert.Equal(t, "Luxe", ServicePremium.DisplayName())
	assert.Equal(t, "Standard", ServiceStandard.DisplayName())
}

func TestSeasonFromTag(t *testing.T) {
	assert.Equal(t, SeasonSummer, SeasonFromTag("summer"))
	assert.Equal(t, SeasonWinter, SeasonFromTag("winter"))
	assert.Equal(t, SeasonRamadan, SeasonFromTag("ramadan"))
	assert.Equal(t, SeasonUnknown, SeasonFromTag(""))
	assert.Equal(t, SeasonUnknown, SeasonFromTag("spring"))
}

func TestTripOperatesOn(t *testing.T) {
	trip := Trip{Operates: [7]bool{true, false, false, false, false, false, true}}

	assert.True(t, trip.OperatesOn(Monday))
	assert.False(t, trip.OperatesOn(Tuesday))
	assert.True(t, trip.OperatesOn(Sunday))
	assert.False(t, trip.OperatesOn(Weekday(9)))
}

func TestTripDeparture(t *testing.T) {
	trip := Trip{Departure: 505, Duration: 60}

	assert.Equal(t, "08:25", trip.DepartureHHMM())
	assert.Equal(t, 8, trip.Hour())
}

func TestWeekdayFrenchName(t *testing.T) {
	assert.Equal(t, "Lundi", Monday.FrenchName())
	assert.Equal(t, "Dimanche", Sunday.FrenchName())
	assert.Equal(t, "", Weekday(7).FrenchName())
}

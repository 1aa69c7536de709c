package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horaires.srtgn.tn/internal/translate"
)

func testTranslator() *translate.Translator {
	return translate.NewTranslator(translate.Dictionary{
		Stations: map[string]string{
			"نابل": "Nabeul",
			"تونس": "Tunis",
			"قربة": "Korba",
		},
	})
}

func testSnapshot() *Snapshot {
	trips := []Trip{
		{Origin: "نابل", Destination: "تونس", Departure: 480, Duration: 60, Season: SeasonSummer},
		{Origin: "نابل", Destination: "قربة", Departure: 480, Duration: 30},
		{Origin: "قربة", Destination: "تونس", Departure: 530, Duration: 40, Season: SeasonWinter},
	}
	return NewSnapshot(trips, testTranslator())
}

func TestSnapshotTripsBetween(t *testing.T) {
	s := testSnapshot()

	trips := s.TripsBetween("نابل", "تونس")
	require.Len(t, trips, 1)
	assert.Equal(t, 480, trips[0].Departure)

	assert.Empty(t, s.TripsBetween("تونس", "نابل"))
}

func TestSnapshotAdjacency(t *testing.T) {
	s := testSnapshot()

	assert.Equal(t, []string{"تونس", "قربة"}, s.DestinationsFrom("نابل"))
	assert.Equal(t, []string{"قربة", "نابل"}, s.OriginsTo("تونس"))
	assert.Empty(t, s.DestinationsFrom("تونس"))
}

func TestSnapshotLookupCanonical(t *testing.T) {
	s := testSnapshot()

	canonical, ok := s.LookupCanonical(translate.Normalize("نابل"), RoleOrigin)
	assert.True(t, ok)
	assert.Equal(t, "نابل", canonical)

	// Tunis never appears in the origin column
	_, ok = s.LookupCanonical(translate.Normalize("تونس"), RoleOrigin)
	assert.False(t, ok)

	canonical, ok = s.LookupCanonical(translate.Normalize("تونس"), RoleDestination)
	assert.True(t, ok)
	assert.Equal(t, "تونس", canonical)
}

func TestSnapshotLookupDisplay(t *testing.T) {
	s := testSnapshot()

	canonical, ok := s.LookupDisplay("nabeul", RoleOrigin)
	assert.True(t, ok)
	assert.Equal(t, "نابل", canonical)

	canonical, ok = s.LookupDisplay("tunis", RoleDestination)
	assert.True(t, ok)
	assert.Equal(t, "تونس", canonical)

	_, ok = s.LookupDisplay("tunis", RoleOrigin)
	assert.False(t, ok)
}

func TestSnapshotLookupSubstring(t *testing.T) {
	s := testSnapshot()

	// Input contained in a display name
	canonical, ok := s.LookupSubstring("nab", RoleOrigin)
	assert.True(t, ok)
	assert.Equal(t, "نابل", canonical)

	// Display name contained in the input
	canonical, ok = s.LookupSubstring("tunis centre ville", RoleDestination)
	assert.True(t, ok)
	assert.Equal(t, "تونس", canonical)

	_, ok = s.LookupSubstring("", RoleOrigin)
	assert.False(t, ok)

	_, ok = s.LookupSubstring("zzz", RoleOrigin)
	assert.False(t, ok)
}

func TestSnapshotSubstringPrefersShortestAlias(t *testing.T) {
	trips := []Trip{
		{Origin: "نابل", Destination: "تونس", Departure: 480, Duration: 60},
		{Origin: "نابل الورشة", Destination: "تونس", Departure: 500, Duration: 70},
	}
	s := NewSnapshot(trips, translate.NewTranslator(translate.Dictionary{
		Stations: map[string]string{
			"نابل":        "Nabeul",
			"نابل الورشة": "Nabeul Atelier",
			"تونس":        "Tunis",
		},
	}))

	// Both aliases contain "nabeul"; the shorter one wins deterministically.
	canonical, ok := s.LookupSubstring("nabeul", RoleOrigin)
	assert.True(t, ok)
	assert.Equal(t, "نابل", canonical)
}

func TestSnapshotStationsAndSeasons(t *testing.T) {
	s := testSnapshot()

	assert.Equal(t, []string{"Korba", "Nabeul", "Tunis"}, s.Stations())
	assert.Equal(t, []string{"Summer", "Winter"}, s.Seasons())
	assert.Equal(t, 3, s.TripCount())
}

func TestSnapshotDisplayName(t *testing.T) {
	s := testSnapshot()

	assert.Equal(t, "Nabeul", s.DisplayName("نابل"))
	assert.Equal(t, "مجهول", s.DisplayName("مجهول"))
}

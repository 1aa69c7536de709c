// Package timetable owns the in-memory Schedule Table: an immutable snapshot
// of SRTGN trip records built from the normalized timetable export, plus the
// Manager that loads it and republishes it atomically on reload.
package timetable

import (
	"fmt"
	"strings"
)

// ServiceClass is the comfort class of a scheduled trip.
type ServiceClass int

const (
	ServiceStandard ServiceClass = iota
	ServicePremium
)

// DisplayName returns the French service descriptor used in API responses.
func (s ServiceClass) DisplayName() string {
	if s == ServicePremium {
		return "Luxe"
	}
	return "Standard"
}

func (s ServiceClass) String() string {
	if s == ServicePremium {
		return "premium"
	}
	return "standard"
}

// ServiceClassFromRaw maps a raw timetable service value to a ServiceClass.
// The export writes رفاهة for the premium class; anything else is standard.
func ServiceClassFromRaw(raw string) ServiceClass {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "رفاهة", "luxe", "premium":
		return ServicePremium
	default:
		return ServiceStandard
	}
}

// Season tags a trip with the part of the year it runs in.
type Season int

const (
	SeasonUnknown Season = iota
	SeasonSummer
	SeasonWinter
	SeasonRamadan
)

// SeasonFromTag maps a canonical translate tag ("summer", "winter",
// "ramadan") to a Season. Unrecognized tags are SeasonUnknown.
func SeasonFromTag(tag string) Season {
	switch tag {
	case "summer":
		return SeasonSummer
	case "winter":
		return SeasonWinter
	case "ramadan":
		return SeasonRamadan
	default:
		return SeasonUnknown
	}
}

func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "Summer"
	case SeasonWinter:
		return "Winter"
	case SeasonRamadan:
		return "Ramadan"
	default:
		return "Unknown"
	}
}

// Weekday indexes a day of the week, Monday=0 through Sunday=6, matching the
// column order of the timetable export.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var frenchDayNames = [7]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// FrenchName returns the French display name of the weekday.
func (d Weekday) FrenchName() string {
	if d < Monday || d > Sunday {
		return ""
	}
	return frenchDayNames[d]
}

// Trip is one scheduled departure between two stations. Trips are loaded
// once per snapshot and never mutated afterwards.
type Trip struct {
	// Origin and Destination are canonical station ids: the trimmed
	// source-language names from the timetable export.
	Origin      string
	Destination string
	// Departure is minutes since midnight, 0-1439.
	Departure int
	// Duration is the trip length in minutes, always > 0.
	Duration int
	Service  ServiceClass
	// Operates holds one flag per weekday, Monday first.
	Operates [7]bool
	Season   Season
}

// DepartureHHMM formats the departure offset as zero-padded HH:MM.
func (t *Trip) DepartureHHMM() string {
	return FormatMinutes(t.Departure)
}

// Hour returns the departure hour, 0-23.
func (t *Trip) Hour() int {
	return t.Departure / 60
}

// OperatesOn reports whether the trip runs on the given weekday.
func (t *Trip) OperatesOn(day Weekday) bool {
	if day < Monday || day > Sunday {
		return false
	}
	return t.Operates[day]
}

// FormatMinutes renders an offset in minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseHHMM converts an "HH:MM" string to minutes since midnight. It returns
// false for anything that does not parse to a valid time of day; callers
// treat that as "absent" rather than an error.
func ParseHHMM(value string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d", &h); err != nil {
		return 0, false
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

// Package translate provides the bidirectional name dictionary used to map
// between the raw Arabic station/day/season names found in the SRTGN
// timetable export and the French display names exposed by the API.
//
// The dictionary is an immutable value passed to consumers at construction
// time, so tests can run against a small table without touching the shipped
// data.
package translate

import "strings"

// Dictionary holds the raw translation tables. Keys are source-language
// names exactly as they appear in the timetable; values are display names.
type Dictionary struct {
	// Stations maps an Arabic station name to its French display name.
	Stations map[string]string
	// Days maps a day name (Arabic or French) to its index, Monday=0.
	Days map[string]int
	// Seasons maps a season name (Arabic or French) to a canonical tag:
	// "summer", "winter" or "ramadan".
	Seasons map[string]string
}

// Translator performs lookups against a Dictionary. Reverse maps are built
// once at construction; all methods are pure and safe for concurrent use.
type Translator struct {
	toDisplay   map[string]string // normalized source -> display
	toCanonical map[string]string // normalized display -> source
	days        map[string]int
	seasons     map[string]string
}

// NewTranslator compiles a Dictionary into a Translator.
func NewTranslator(d Dictionary) *Translator {
	t := &Translator{
		toDisplay:   make(map[string]string, len(d.Stations)),
		toCanonical: make(map[string]string, len(d.Stations)),
		days:        make(map[string]int, len(d.Days)),
		seasons:     make(map[string]string, len(d.Seasons)),
	}

	for source, display := range d.Stations {
		t.toDisplay[Normalize(source)] = display
		// First writer wins so that alias spellings of the same display
		// name do not clobber the primary source spelling.
		key := Normalize(display)
		if _, exists := t.toCanonical[key]; !exists {
			t.toCanonical[key] = strings.TrimSpace(source)
		}
	}

	for name, index := range d.Days {
		t.days[Normalize(name)] = index
	}

	for name, tag := range d.Seasons {
		t.seasons[Normalize(name)] = tag
	}

	return t
}

// Normalize lowercases a name, trims it, and collapses internal whitespace
// runs to single spaces. The timetable export carries stray double spaces
// and trailing blanks, so every lookup goes through this.
func Normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// StationToDisplay returns the French display name for a source station
// name, or the input unchanged when no translation exists.
func (t *Translator) StationToDisplay(source string) string {
	if display, ok := t.toDisplay[Normalize(source)]; ok {
		return display
	}
	return strings.TrimSpace(source)
}

// StationToCanonical returns the source-language station name for a display
// name, or the input unchanged when no translation exists.
func (t *Translator) StationToCanonical(display string) string {
	if source, ok := t.toCanonical[Normalize(display)]; ok {
		return source
	}
	return strings.TrimSpace(display)
}

// DayIndex resolves a day name in either language to its index, Monday=0.
func (t *Translator) DayIndex(name string) (int, bool) {
	index, ok := t.days[Normalize(name)]
	return index, ok
}

// SeasonTag resolves a season name in either language to its canonical tag.
func (t *Translator) SeasonTag(name string) (string, bool) {
	tag, ok := t.seasons[Normalize(name)]
	return tag, ok
}

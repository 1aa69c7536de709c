package engine

import (
	"horaires.srtgn.tn/internal/timetable"
	"horaires.srtgn.tn/internal/translate"
)

// resolveStation maps a user-supplied station name to a canonical station
// id in the relevant timetable column. Strategies are tried in order, first
// match wins:
//
//  1. exact canonical match after translating through the alias table
//  2. case-insensitive match against display names
//  3. whitespace-insensitive match against the raw column values
//  4. substring match in either direction, shortest alias first
//
// Resolution is a pure lookup against the snapshot's precomputed indexes.
func resolveStation(snapshot *timetable.Snapshot, translator *translate.Translator, name string, role timetable.Role) (string, error) {
	translated := translator.StationToCanonical(name)
	normTranslated := translate.Normalize(translated)
	normRaw := translate.Normalize(name)

	if canonical, ok := snapshot.LookupCanonical(normTranslated, role); ok {
		return canonical, nil
	}
	if canonical, ok := snapshot.LookupDisplay(normRaw, role); ok {
		return canonical, nil
	}
	if canonical, ok := snapshot.LookupCanonical(normRaw, role); ok {
		return canonical, nil
	}
	if canonical, ok := snapshot.LookupSubstring(normRaw, role); ok {
		return canonical, nil
	}
	if normTranslated != normRaw {
		if canonical, ok := snapshot.LookupSubstring(normTranslated, role); ok {
			return canonical, nil
		}
	}

	return "", &StationNotFoundError{Role: role, Name: name}
}

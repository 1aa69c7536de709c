package engine

import "horaires.srtgn.tn/internal/timetable"

// findDirect returns the trips between two resolved stations. When a
// preferred time is given the result is restricted to departures at or
// after it; if that restriction would empty the set, the unrestricted set
// is returned instead and the scoring stage applies its own widening.
func findDirect(snapshot *timetable.Snapshot, originID, destID string, preferredTime *int) []*timetable.Trip {
	trips := snapshot.TripsBetween(originID, destID)
	if len(trips) == 0 || preferredTime == nil {
		return trips
	}

	after := make([]*timetable.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.Departure >= *preferredTime {
			after = append(after, trip)
		}
	}
	if len(after) == 0 {
		return trips
	}
	return after
}

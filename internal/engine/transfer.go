package engine

import (
	"sort"

	"horaires.srtgn.tn/internal/timetable"
)

// transferCandidate is one single-transfer itinerary: the best leg pair
// through one intermediate station.
type transferCandidate struct {
	station   string
	firstLeg  *timetable.Trip
	secondLeg *timetable.Trip

	// waitTime is how long past the minimum dwell the second leg departs.
	waitTime int
	// totalDuration spans first departure to second arrival.
	totalDuration int
}

// findTransfer searches single-transfer itineraries between two resolved
// stations. Candidate transfer stations are the intersection of stations
// reachable from the origin and stations with service to the destination;
// each contributes at most one itinerary, built from its minimum-duration
// legs. Day and season preferences filter both legs; a station whose legs
// are all filtered out is skipped rather than widened. Results are ordered
// by ascending total duration.
func findTransfer(snapshot *timetable.Snapshot, originID, destID string, criteria Criteria) []transferCandidate {
	reachable := snapshot.DestinationsFrom(originID)
	reaching := make(map[string]bool)
	for _, station := range snapshot.OriginsTo(destID) {
		reaching[station] = true
	}

	var candidates []transferCandidate
	for _, station := range reachable {
		if !reaching[station] || station == originID || station == destID {
			continue
		}

		firstLeg := bestLeg(snapshot.TripsBetween(originID, station), criteria, criteria.PreferredTime)
		if firstLeg == nil {
			continue
		}

		threshold := firstLeg.Departure + firstLeg.Duration + transferDwell
		secondLeg := bestLeg(snapshot.TripsBetween(station, destID), criteria, &threshold)
		if secondLeg == nil {
			continue
		}

		candidates = append(candidates, transferCandidate{
			station:       station,
			firstLeg:      firstLeg,
			secondLeg:     secondLeg,
			waitTime:      secondLeg.Departure - threshold,
			totalDuration: secondLeg.Departure + secondLeg.Duration - firstLeg.Departure,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].totalDuration < candidates[j].totalDuration
	})
	return candidates
}

// bestLeg picks the minimum-duration trip among those departing at or after
// earliest (when given) and passing the day/season preferences. Duration
// ties go to the earlier departure.
func bestLeg(trips []*timetable.Trip, criteria Criteria, earliest *int) *timetable.Trip {
	var best *timetable.Trip
	for _, trip := range trips {
		if earliest != nil && trip.Departure < *earliest {
			continue
		}
		if criteria.PreferredDay != nil && !trip.OperatesOn(*criteria.PreferredDay) {
			continue
		}
		if criteria.PreferredSeason != nil && trip.Season != timetable.SeasonUnknown && trip.Season != *criteria.PreferredSeason {
			continue
		}

		if best == nil ||
			trip.Duration < best.Duration ||
			(trip.Duration == best.Duration && trip.Departure < best.Departure) {
			best = trip
		}
	}
	return best
}

package engine

import (
	"sort"

	"horaires.srtgn.tn/internal/timetable"
)

// fallbackWindow is how far past the preferred time departures are still
// considered "close", in minutes.
const fallbackWindow = 240

// fallbackCap bounds how many later departures survive when nothing falls
// inside the preferred window.
const fallbackCap = 10

// scoredTrip pairs a direct candidate with its computed scores.
type scoredTrip struct {
	trip *timetable.Trip

	// timeDiff is departure minus preferred time. Only meaningful when the
	// request carried a preferred time.
	timeDiff  int
	composite float64
}

// peakHours are the morning and evening rush departure hours.
var peakHours = map[int]bool{7: true, 8: true, 9: true, 17: true, 18: true, 19: true}

// shoulderHours sit next to the peaks and score between peak and off-peak
// when no preferred time was given.
var shoulderHours = map[int]bool{6: true, 10: true, 16: true, 20: true}

// scoreDirect filters, scores, deduplicates and ranks direct candidates,
// returning at most maxResults of them in descending composite score.
func scoreDirect(trips []*timetable.Trip, criteria Criteria) []scoredTrip {
	trips = applyDayFilter(trips, criteria.PreferredDay)
	trips = applySeasonFilter(trips, criteria.PreferredSeason)
	trips = applyTimeWindow(trips, criteria.PreferredTime)
	if len(trips) == 0 {
		return nil
	}

	minDur, maxDur := durationRange(trips)

	scored := make([]scoredTrip, 0, len(trips))
	for _, trip := range trips {
		s := scoredTrip{trip: trip}
		if criteria.PreferredTime != nil {
			s.timeDiff = trip.Departure - *criteria.PreferredTime
		}
		s.composite = compositeScore(trip, criteria, s.timeDiff, minDur, maxDur)
		scored = append(scored, s)
	}

	scored = dedupe(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.composite != b.composite {
			return a.composite > b.composite
		}
		if a.trip.Departure != b.trip.Departure {
			return a.trip.Departure < b.trip.Departure
		}
		return a.trip.Duration < b.trip.Duration
	})

	if max := criteria.EffectiveMaxResults(); len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// applyDayFilter keeps trips operating on the preferred day. The preference
// is advisory: if nothing survives, the input set is returned unchanged.
func applyDayFilter(trips []*timetable.Trip, day *timetable.Weekday) []*timetable.Trip {
	if day == nil {
		return trips
	}
	kept := make([]*timetable.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.OperatesOn(*day) {
			kept = append(kept, trip)
		}
	}
	if len(kept) == 0 {
		return trips
	}
	return kept
}

// applySeasonFilter keeps trips matching the preferred season. Untagged
// trips run year-round and always pass. Advisory like the day filter.
func applySeasonFilter(trips []*timetable.Trip, season *timetable.Season) []*timetable.Trip {
	if season == nil {
		return trips
	}
	kept := make([]*timetable.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.Season == timetable.SeasonUnknown || trip.Season == *season {
			kept = append(kept, trip)
		}
	}
	if len(kept) == 0 {
		return trips
	}
	return kept
}

// applyTimeWindow narrows trips around the preferred time: first to the
// four-hour window after it, then to the ten earliest later departures,
// and finally, if nothing departs at or after the preferred time, to the
// whole input set.
func applyTimeWindow(trips []*timetable.Trip, preferred *int) []*timetable.Trip {
	if preferred == nil {
		return trips
	}

	var inWindow, after []*timetable.Trip
	for _, trip := range trips {
		if trip.Departure >= *preferred {
			after = append(after, trip)
			if trip.Departure <= *preferred+fallbackWindow {
				inWindow = append(inWindow, trip)
			}
		}
	}

	if len(inWindow) > 0 {
		return inWindow
	}
	if len(after) > 0 {
		sort.SliceStable(after, func(i, j int) bool {
			return after[i].Departure < after[j].Departure
		})
		if len(after) > fallbackCap {
			after = after[:fallbackCap]
		}
		return after
	}
	return trips
}

func durationRange(trips []*timetable.Trip) (int, int) {
	minDur, maxDur := trips[0].Duration, trips[0].Duration
	for _, trip := range trips[1:] {
		if trip.Duration < minDur {
			minDur = trip.Duration
		}
		if trip.Duration > maxDur {
			maxDur = trip.Duration
		}
	}
	return minDur, maxDur
}

func serviceScore(trip *timetable.Trip) float64 {
	if trip.Service == timetable.ServicePremium {
		return 3
	}
	return 1
}

// durationScore rates the shortest candidate 3 and the longest 1, linearly
// in between. A uniform set scores 3 across the board.
func durationScore(trip *timetable.Trip, minDur, maxDur int) float64 {
	if minDur == maxDur {
		return 3
	}
	return 3 - 2*float64(trip.Duration-minDur)/float64(maxDur-minDur)
}

// timeProximityScore maps the gap between departure and preferred time to
// [0.1, 3.0]. Departures before the preferred time bottom out at 0.1; the
// score decays piecewise the further past it the departure falls.
func timeProximityScore(diff int) float64 {
	d := float64(diff)
	switch {
	case diff < 0:
		return 0.1
	case diff == 0:
		return 3.0
	case diff <= 30:
		return 3.0 - (d/30)*0.5
	case diff <= 60:
		return 2.5 - ((d-30)/30)*1.0
	case diff <= 120:
		return 1.5 - ((d-60)/60)*1.0
	default:
		penalty := (d - 120) / 480
		if penalty > 0.4 {
			penalty = 0.4
		}
		return 0.5 - penalty
	}
}

func compositeScore(trip *timetable.Trip, criteria Criteria, timeDiff int, minDur, maxDur int) float64 {
	hour := trip.Hour()

	var isPeak, luxuryPeak, efficiency float64
	if peakHours[hour] {
		isPeak = 1
		if trip.Service == timetable.ServicePremium {
			luxuryPeak = 0.5
		}
	}
	if trip.Duration <= 60 && hour >= 8 && hour <= 18 {
		efficiency = 0.3
	}

	if criteria.PreferredTime != nil {
		return 0.7*timeProximityScore(timeDiff) +
			0.15*serviceScore(trip) +
			0.1*durationScore(trip, minDur, maxDur) +
			0.03*isPeak +
			0.01*luxuryPeak +
			0.01*efficiency
	}

	timeScore := 1.0
	if peakHours[hour] {
		timeScore = 3.0
	} else if shoulderHours[hour] {
		timeScore = 2.0
	}

	return 0.35*serviceScore(trip) +
		0.25*timeScore +
		0.2*durationScore(trip, minDur, maxDur) +
		0.1*isPeak +
		0.05*luxuryPeak +
		0.05*efficiency
}

// dedupe keeps the highest-scoring trip per (departure, service, duration)
// triple, preserving input order otherwise.
func dedupe(scored []scoredTrip) []scoredTrip {
	type tripKey struct {
		departure int
		service   timetable.ServiceClass
		duration  int
	}

	bestIndex := make(map[tripKey]int)
	kept := make([]scoredTrip, 0, len(scored))
	for _, s := range scored {
		key := tripKey{s.trip.Departure, s.trip.Service, s.trip.Duration}
		if i, seen := bestIndex[key]; seen {
			if s.composite > kept[i].composite {
				kept[i] = s
			}
			continue
		}
		bestIndex[key] = len(kept)
		kept = append(kept, s)
	}
	return kept
}

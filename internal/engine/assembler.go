package engine

import (
	"fmt"

	"horaires.srtgn.tn/internal/models"
	"horaires.srtgn.tn/internal/timetable"
)

// transferScore is the fixed quality assigned to transfer itineraries;
// they are ranked by total duration, not by the direct-trip score model.
const transferScore = 2.0

// timeDifferenceInfo renders the gap between a departure and the preferred
// time for display. Early departures carry no annotation.
func timeDifferenceInfo(diff int) string {
	switch {
	case diff < 0:
		return ""
	case diff == 0:
		return "Exact match!"
	case diff <= 30:
		return fmt.Sprintf("+%dmin from preferred", diff)
	case diff >= 60:
		return fmt.Sprintf("+%dh%02dm from preferred", diff/60, diff%60)
	default:
		return fmt.Sprintf("+%dmin from preferred", diff)
	}
}

// assembleDirect shapes one scored direct trip into the output record.
func assembleDirect(s scoredTrip, snapshot *timetable.Snapshot, criteria Criteria) models.Recommendation {
	trip := s.trip
	rec := models.Recommendation{
		Type:          models.RecommendationDirect,
		DepartureTime: trip.DepartureHHMM(),
		Duration:      trip.Duration,
		ServiceType:   trip.Service.DisplayName(),
		QualityScore:  s.composite,
		RouteDetails: fmt.Sprintf("%s → %s",
			snapshot.DisplayName(trip.Origin), snapshot.DisplayName(trip.Destination)),
		TotalDuration: trip.Duration,
		Transfers:     0,
	}
	if criteria.PreferredTime != nil {
		rec.TimeDifferenceInfo = timeDifferenceInfo(s.timeDiff)
	}
	return rec
}

// assembleTransfer shapes one transfer candidate into the output record,
// including the nested leg details.
func assembleTransfer(c transferCandidate, snapshot *timetable.Snapshot) models.Recommendation {
	first, second := c.firstLeg, c.secondLeg
	return models.Recommendation{
		Type:          models.RecommendationTransfer,
		DepartureTime: first.DepartureHHMM(),
		Duration:      c.totalDuration,
		ServiceType:   "Mixed",
		QualityScore:  transferScore,
		RouteDetails: fmt.Sprintf("%s → %s → %s",
			snapshot.DisplayName(first.Origin),
			snapshot.DisplayName(c.station),
			snapshot.DisplayName(second.Destination)),
		TotalDuration: c.totalDuration,
		Transfers:     1,
		TransferDetails: &models.TransferDetails{
			TransferStation:    snapshot.DisplayName(c.station),
			FirstLegDeparture:  first.DepartureHHMM(),
			FirstLegDuration:   first.Duration,
			FirstLegService:    first.Service.DisplayName(),
			SecondLegDeparture: second.DepartureHHMM(),
			SecondLegDuration:  second.Duration,
			SecondLegService:   second.Service.DisplayName(),
			WaitingTime:        c.waitTime,
		},
	}
}

// Package engine implements the route recommendation core: station
// resolution, direct and single-transfer search, quality scoring, and
// ranking over a timetable snapshot.
package engine

import "horaires.srtgn.tn/internal/timetable"

const (
	defaultMaxResults = 5
	maxResultsCeiling = 20

	// transferDwell is the minimum gap in minutes between arriving at a
	// transfer station and boarding the second leg.
	transferDwell = 15
)

// Criteria describes one recommendation request. Optional fields are nil
// when the caller expressed no preference. A Criteria value fully
// determines the output for a given snapshot.
type Criteria struct {
	Origin      string
	Destination string

	// PreferredTime is minutes since midnight.
	PreferredTime   *int
	PreferredDay    *timetable.Weekday
	PreferredSeason *timetable.Season

	MaxResults int
}

// EffectiveMaxResults clamps MaxResults into the supported range, with a
// default when the caller left it unset.
func (c Criteria) EffectiveMaxResults() int {
	if c.MaxResults <= 0 {
		return defaultMaxResults
	}
	if c.MaxResults > maxResultsCeiling {
		return maxResultsCeiling
	}
	return c.MaxResults
}

package restapi

import (
	"net/http"
	"time"

	"horaires.srtgn.tn/internal/models"
	"horaires.srtgn.tn/internal/timetable"
)

// currentInfoHandler reports the server's current date, weekday and
// estimated season, so clients can prefill search filters.
func (api *RestAPI) currentInfoHandler(w http.ResponseWriter, r *http.Request) {
	now := api.Clock.Now()

	entry := map[string]interface{}{
		"date":   now.Format("2006-01-02"),
		"day":    currentWeekday(now).FrenchName(),
		"season": currentSeason(now).String(),
	}

	api.sendResponse(w, r, models.NewEntryResponseWithClock(entry, api.Clock))
}

// currentWeekday converts time.Weekday (Sunday=0) to the timetable's
// Monday-first indexing.
func currentWeekday(now time.Time) timetable.Weekday {
	return timetable.Weekday((int(now.Weekday()) + 6) % 7)
}

// currentSeason approximates the running season from the month. June
// through September is the summer service period; Ramadan schedules are
// announced out of band and never inferred here.
func currentSeason(now time.Time) timetable.Season {
	if now.Month() >= time.June && now.Month() <= time.September {
		return timetable.SeasonSummer
	}
	return timetable.SeasonWinter
}

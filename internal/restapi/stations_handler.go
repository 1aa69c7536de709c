package restapi

import (
	"net/http"

	"horaires.srtgn.tn/internal/models"
)

// stationsHandler lists the distinct station display names present in the
// current timetable snapshot.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations := api.Snapshot().Stations()

	response := models.NewListResponseWithClock(stations, api.Clock)
	api.sendResponse(w, r, response)
}

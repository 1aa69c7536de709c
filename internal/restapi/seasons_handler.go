package restapi

import (
	"net/http"

	"horaires.srtgn.tn/internal/models"
)

// seasonsHandler lists the season names present in the current timetable
// snapshot.
func (api *RestAPI) seasonsHandler(w http.ResponseWriter, r *http.Request) {
	seasons := api.Snapshot().Seasons()

	response := models.NewListResponseWithClock(seasons, api.Clock)
	api.sendResponse(w, r, response)
}

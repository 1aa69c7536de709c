package restapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// healthHandler reports service liveness and whether a timetable snapshot
// has been published. Unauthenticated.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Snapshot()

	status := map[string]interface{}{
		"status":     "UP",
		"dataLoaded": snapshot != nil && snapshot.TripCount() > 0,
	}
	if snapshot != nil {
		status["trips"] = snapshot.TripCount()
		status["loadedAt"] = snapshot.LoadedAt().UTC().Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		api.Logger.Error("failed to encode health response", "error", err)
	}
}

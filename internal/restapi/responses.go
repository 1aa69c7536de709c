package restapi

import (
	"encoding/json"
	"net/http"

	"horaires.srtgn.tn/internal/models"
)

// sendResponse writes a response envelope as JSON. Encoding failures are
// logged, not surfaced; headers have already been written by then.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

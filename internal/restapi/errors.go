package restapi

import (
	"encoding/json"
	"net/http"

	"horaires.srtgn.tn/internal/models"
)

type errorEnvelope struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) sendErrorEnvelope(w http.ResponseWriter, code int, text string) {
	response := errorEnvelope{
		Code:        code,
		CurrentTime: models.ResponseCurrentTimeWithClock(api.Clock),
		Text:        text,
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required
// format for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendErrorEnvelope(w, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.sendErrorEnvelope(w, http.StatusInternalServerError, "internal server error")
}

// stationNotFoundResponse sends a 404 with the unresolvable endpoint named.
func (api *RestAPI) stationNotFoundResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendErrorEnvelope(w, http.StatusNotFound, text)
}

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

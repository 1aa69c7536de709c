package restapi

import (
	"net/http"
)

// rateLimitAndValidateAPIKey combines API key validation, rate limiting and
// compression around a final handler.
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	compressedHandler := CompressionMiddleware(finalHandler)

	var rateLimitedHandler http.Handler
	if api.rateLimiter != nil {
		rateLimitedHandler = api.rateLimiter(compressedHandler)
	} else {
		// Fallback for tests that don't use NewRestAPI constructor
		rateLimitedHandler = compressedHandler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		rateLimitedHandler.ServeHTTP(w, r)
	})
}

// withCaching layers cache headers over the standard auth/limit/compress
// chain, for endpoints whose payload only changes on timetable reload.
func withCaching(api *RestAPI, seconds int, finalHandler http.HandlerFunc) http.Handler {
	return CacheControlMiddleware(seconds, rateLimitAndValidateAPIKey(api, finalHandler))
}

// SetRoutes registers all API endpoints
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	// Health check endpoint - no authentication required
	mux.HandleFunc("GET /healthz", api.healthHandler)

	if api.Metrics != nil {
		mux.Handle("GET /metrics", api.Metrics.Handler())
	}

	mux.Handle("GET /api/v1/recommendations", rateLimitAndValidateAPIKey(api, api.recommendationsHandler))
	mux.Handle("POST /api/v1/recommendations", rateLimitAndValidateAPIKey(api, api.recommendationsPostHandler))

	mux.Handle("GET /api/v1/stations", withCaching(api, 3600, api.stationsHandler))
	mux.Handle("GET /api/v1/seasons", withCaching(api, 3600, api.seasonsHandler))
	mux.Handle("GET /api/v1/current-info", rateLimitAndValidateAPIKey(api, api.currentInfoHandler))
}

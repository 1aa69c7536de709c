package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"horaires.srtgn.tn/internal/engine"
	"horaires.srtgn.tn/internal/models"
	"horaires.srtgn.tn/internal/timetable"
	"horaires.srtgn.tn/internal/utils"
)

// recommendationRequest is the POST body for a recommendation search.
type recommendationRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	PreferredTime   string `json:"preferredTime"`
	PreferredDay    string `json:"preferredDay"`
	PreferredSeason string `json:"preferredSeason"`
	MaxResults      int    `json:"maxResults"`
}

// recommendationsHandler answers GET searches with query parameters.
func (api *RestAPI) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := recommendationRequest{
		Origin:          utils.TrimmedParam(params, "origin"),
		Destination:     utils.TrimmedParam(params, "destination"),
		PreferredTime:   utils.TrimmedParam(params, "preferredTime"),
		PreferredDay:    utils.TrimmedParam(params, "preferredDay"),
		PreferredSeason: utils.TrimmedParam(params, "preferredSeason"),
	}

	fieldErrors := make(map[string][]string)
	req.MaxResults, fieldErrors = parseMaxResults(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.handleRecommendation(w, r, req)
}

// recommendationsPostHandler answers POST searches with a JSON body.
func (api *RestAPI) recommendationsPostHandler(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be valid JSON"},
		})
		return
	}

	if req.MaxResults < 0 || req.MaxResults > 20 {
		api.validationErrorResponse(w, r, map[string][]string{
			"maxResults": {"must be between 1 and 20"},
		})
		return
	}

	api.handleRecommendation(w, r, req)
}

func parseMaxResults(params url.Values, fieldErrors map[string][]string) (int, map[string][]string) {
	maxResults, fieldErrors := utils.ParseIntParam(params, "maxResults", fieldErrors)
	if len(fieldErrors) > 0 {
		return 0, fieldErrors
	}
	if maxResults < 0 || maxResults > 20 {
		fieldErrors["maxResults"] = append(fieldErrors["maxResults"], "must be between 1 and 20")
	}
	return maxResults, fieldErrors
}

func (api *RestAPI) handleRecommendation(w http.ResponseWriter, r *http.Request, req recommendationRequest) {
	fieldErrors := make(map[string][]string)
	if req.Origin == "" {
		fieldErrors["origin"] = []string{"origin is required"}
	}
	if req.Destination == "" {
		fieldErrors["destination"] = []string{"destination is required"}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	criteria := api.buildCriteria(req)
	snapshot := api.Snapshot()

	recommendations, err := api.Engine.Recommend(snapshot, criteria)
	if err != nil {
		var notFound *engine.StationNotFoundError
		if errors.As(err, &notFound) {
			if api.Metrics != nil {
				api.Metrics.ObserveSearch("not_found")
			}
			api.stationNotFoundResponse(w, r, notFound.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	if api.Metrics != nil {
		api.Metrics.ObserveSearch(searchOutcome(recommendations))
	}

	message := "No routes found for the specified criteria"
	if len(recommendations) > 0 {
		message = "Found route recommendations"
	}

	entry := map[string]interface{}{
		"message":         message,
		"recommendations": recommendations,
		"totalFound":      len(recommendations),
		"searchCriteria": map[string]interface{}{
			"origin":          req.Origin,
			"destination":     req.Destination,
			"preferredTime":   orNil(req.PreferredTime),
			"preferredDay":    orNil(req.PreferredDay),
			"preferredSeason": orNil(req.PreferredSeason),
			"maxResults":      criteria.EffectiveMaxResults(),
		},
		"metadata": searchMetadata(recommendations, api.Clock.Now().UnixMilli()),
	}

	api.sendResponse(w, r, models.NewEntryResponseWithClock(entry, api.Clock))
}

// buildCriteria maps request fields onto engine criteria. Optional fields
// that fail to parse are dropped rather than rejected.
func (api *RestAPI) buildCriteria(req recommendationRequest) engine.Criteria {
	criteria := engine.Criteria{
		Origin:      req.Origin,
		Destination: req.Destination,
		MaxResults:  req.MaxResults,
	}

	if minutes, ok := timetable.ParseHHMM(req.PreferredTime); ok {
		criteria.PreferredTime = &minutes
	}
	if req.PreferredDay != "" {
		if index, ok := api.Translator.DayIndex(req.PreferredDay); ok {
			day := timetable.Weekday(index)
			criteria.PreferredDay = &day
		}
	}
	if req.PreferredSeason != "" {
		if tag, ok := api.Translator.SeasonTag(req.PreferredSeason); ok {
			if season := timetable.SeasonFromTag(tag); season != timetable.SeasonUnknown {
				criteria.PreferredSeason = &season
			}
		}
	}

	return criteria
}

func searchOutcome(recommendations []models.Recommendation) string {
	if len(recommendations) == 0 {
		return "empty"
	}
	if recommendations[0].Type == models.RecommendationTransfer {
		return "transfer"
	}
	return "direct"
}

func searchMetadata(recommendations []models.Recommendation, timestamp int64) map[string]interface{} {
	var direct, transfer int
	var scoreSum float64
	for _, rec := range recommendations {
		if rec.Type == models.RecommendationTransfer {
			transfer++
		} else {
			direct++
		}
		scoreSum += rec.QualityScore
	}

	var average float64
	if len(recommendations) > 0 {
		average = scoreSum / float64(len(recommendations))
	}

	return map[string]interface{}{
		"searchTimestamp":     timestamp,
		"directRoutesFound":   direct,
		"transferRoutesFound": transfer,
		"averageQualityScore": average,
	}
}

func orNil(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horaires.srtgn.tn/internal/models"
)

func postRecommendation(t *testing.T, api *RestAPI, body interface{}) (*http.Response, []byte) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/v1/recommendations?key=TEST", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestRecommendationsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=invalid&origin=Nabeul&destination=Tunis")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, 1, model.Version)
}

func TestRecommendationsHandlerRequiresOriginAndDestination(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/recommendations?key=TEST&origin=Nabeul")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.FieldErrors, "destination")
	assert.NotContains(t, body.FieldErrors, "origin")
}

func TestRecommendationsHandlerMaxResultsValidation(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Nabeul&destination=Tunis&maxResults=300")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecommendationsHandlerUnknownStation(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Atlantis&destination=Tunis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Contains(t, model.Text, "Atlantis")
}

func TestRecommendationsHandlerDirect(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Nabeul&destination=Tunis")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, 2, model.Version)

	entry := entryFromModel(t, model)
	assert.Equal(t, "Found route recommendations", entry["message"])
	assert.Equal(t, float64(2), entry["totalFound"])

	list, ok := entry["recommendations"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.RecommendationDirect, first["type"])
	assert.Equal(t, "Nabeul → Tunis", first["routeDetails"])
	assert.Equal(t, float64(0), first["transfers"])

	metadata, ok := entry["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), metadata["directRoutesFound"])
	assert.Equal(t, float64(0), metadata["transferRoutesFound"])
	assert.Equal(t, float64(testInstant.UnixMilli()), metadata["searchTimestamp"])
}

func TestRecommendationsHandlerPreferredTimeAnnotation(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Nabeul&destination=Tunis&preferredTime=08:00")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	list, ok := entry["recommendations"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, list)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "08:00", first["departureTime"])
	assert.Equal(t, "Exact match!", first["timeDifferenceInfo"])

	criteria, ok := entry["searchCriteria"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "08:00", criteria["preferredTime"])
}

func TestRecommendationsHandlerTransfer(t *testing.T) {
	// Beni Khiar only reaches Tunis through Korba.
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Beni+Khiar&destination=Tunis")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	list, ok := entry["recommendations"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	rec, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.RecommendationTransfer, rec["type"])
	assert.Equal(t, "Beni Khiar → Korba → Tunis", rec["routeDetails"])
	assert.Equal(t, float64(90), rec["totalDuration"])

	details, ok := rec["transferDetails"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Korba", details["transferStation"])
	assert.Equal(t, float64(15), details["waitingTime"])
}

func TestRecommendationsHandlerArabicNames(t *testing.T) {
	query := url.Values{
		"key":         {"TEST"},
		"origin":      {"نابل"},
		"destination": {"تونس"},
	}
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?"+query.Encode())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, float64(2), entry["totalFound"])
}

func TestRecommendationsHandlerDropsUnparseableOptionalFields(t *testing.T) {
	// A junk preferredTime is ignored, not rejected.
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/recommendations?key=TEST&origin=Nabeul&destination=Tunis&preferredTime=garbage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, float64(2), entry["totalFound"])
}

func TestRecommendationsPostHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := postRecommendation(t, api, map[string]interface{}{
		"origin":        "Nabeul",
		"destination":   "Tunis",
		"preferredTime": "08:00",
		"maxResults":    1,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &model))

	entry := entryFromModel(t, model)
	assert.Equal(t, float64(1), entry["totalFound"])
}

func TestRecommendationsPostHandlerRejectsMalformedBody(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/v1/recommendations?key=TEST", "application/json",
		bytes.NewReader([]byte(`{"origin": `)))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecommendationsPostHandlerMaxResultsValidation(t *testing.T) {
	api := createTestApi(t)

	resp, _ := postRecommendation(t, api, map[string]interface{}{
		"origin":      "Nabeul",
		"destination": "Tunis",
		"maxResults":  21,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

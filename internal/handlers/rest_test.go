package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kalmeshteli17/heart-simulation/internal/middleware"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(intervals []models.PhaseInterval) *RESTAPIServer {
	jwtService := service.NewJWTService("test-secret")
	return NewRESTAPIServer(
		NewSessionManager(nil, nil),
		NewWSHub(),
		service.NewAuthService(jwtService, ""),
		middleware.NewJWTMiddleware(jwtService),
		intervals,
	)
}

func testIntervals() []models.PhaseInterval {
	return []models.PhaseInterval{
		{Phase: "QRS", Entry: 0.0, Duration: 0.09},
		{Phase: "QRS", Entry: 0.8, Duration: 0.09},
		{Phase: "QRS", Entry: 1.6, Duration: 0.09},
	}
}

func doRequest(t *testing.T, api *RESTAPIServer, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := api.SetupRoutes()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestGetWaveform(t *testing.T) {
	api := newTestServer(testIntervals())
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/waveform?samples=100&rate=300")

	require.Equal(t, http.StatusOK, w.Code)

	var resp WaveformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Count)
	assert.Len(t, resp.Samples, 100)
	assert.Equal(t, 75, resp.HeartRate)
	assert.Equal(t, BPMSourceEstimated, resp.BPMSource)
}

func TestGetWaveform_ExplicitBPM(t *testing.T) {
	api := newTestServer(nil)
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/waveform?samples=50&bpm=90")

	require.Equal(t, http.StatusOK, w.Code)

	var resp WaveformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90, resp.HeartRate)
	assert.Equal(t, "requested", resp.BPMSource)
}

func TestGetWaveform_BadParams(t *testing.T) {
	api := newTestServer(nil)

	tests := []string{
		"/api/v1/ecg/waveform?samples=0",
		"/api/v1/ecg/waveform?samples=999999",
		"/api/v1/ecg/waveform?samples=abc",
		"/api/v1/ecg/waveform?rate=-1",
		"/api/v1/ecg/waveform?bpm=-5",
	}

	for _, path := range tests {
		w := doRequest(t, api, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetPhaseWaveform(t *testing.T) {
	api := newTestServer(testIntervals())
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/waveform/phases?samples=200")

	require.Equal(t, http.StatusOK, w.Code)

	var resp WaveformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Samples, 200)
}

func TestGetPhaseWaveform_NoResource(t *testing.T) {
	api := newTestServer(nil)
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/waveform/phases")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetBPM(t *testing.T) {
	api := newTestServer(testIntervals())
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/bpm")

	require.Equal(t, http.StatusOK, w.Code)

	var resp BPMResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 75, resp.BPM)
	assert.Equal(t, BPMSourceEstimated, resp.Source)
}

func TestGetBPM_Fallback(t *testing.T) {
	api := newTestServer(nil)
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/bpm")

	require.Equal(t, http.StatusOK, w.Code)

	var resp BPMResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 72, resp.BPM)
	assert.Equal(t, BPMSourceFallback, resp.Source)
}

func TestGetIntervals(t *testing.T) {
	api := newTestServer(testIntervals())
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/intervals")

	require.Equal(t, http.StatusOK, w.Code)

	var resp IntervalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
}

func TestGetIntervals_NoResource(t *testing.T) {
	api := newTestServer(nil)
	w := doRequest(t, api, http.MethodGet, "/api/v1/ecg/intervals")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheck(t *testing.T) {
	api := newTestServer(nil)
	w := doRequest(t, api, http.MethodGet, "/api/v1/monitoring/health")

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Zero(t, resp.ActiveSessions)
}

func TestProtectedEndpointsRequireAuth(t *testing.T) {
	api := newTestServer(nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/sessions/start"},
		{http.MethodPost, "/api/v1/sessions/stop/550e8400-e29b-41d4-a716-446655440001"},
		{http.MethodPost, "/api/v1/monitoring/cleanup"},
	}

	for _, p := range paths {
		w := doRequest(t, api, p.method, p.path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
	}
}

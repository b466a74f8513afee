package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/pkg/logger"
)

type stubArtifacts struct{ loaded bool }

func (s stubArtifacts) Loaded() bool { return s.loaded }

type stubCatalog struct{ warm bool }

func (s stubCatalog) Warm() bool { return s.warm }

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) HealthStatus {
	t.Helper()
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	return status
}

func TestHandler_HandleLiveness(t *testing.T) {
	handler := New(logger.Get(), stubArtifacts{}, stubCatalog{}, "fintrack", "1.0.0")

	rec := httptest.NewRecorder()
	handler.HandleLiveness(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

func TestHandler_HandleReadiness(t *testing.T) {
	t.Run("ready when artifacts are loaded", func(t *testing.T) {
		handler := New(logger.Get(), stubArtifacts{loaded: true}, stubCatalog{warm: true}, "fintrack", "1.0.0")

		rec := httptest.NewRecorder()
		handler.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		status := decodeStatus(t, rec)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "fintrack", status.Service)
	})

	t.Run("not ready without model artifacts", func(t *testing.T) {
		handler := New(logger.Get(), stubArtifacts{loaded: false}, stubCatalog{warm: true}, "fintrack", "1.0.0")

		rec := httptest.NewRecorder()
		handler.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		status := decodeStatus(t, rec)
		assert.Equal(t, "unhealthy", status.Status)
	})

	t.Run("cold catalog does not block readiness", func(t *testing.T) {
		handler := New(logger.Get(), stubArtifacts{loaded: true}, stubCatalog{warm: false}, "fintrack", "1.0.0")

		rec := httptest.NewRecorder()
		handler.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_HandleHealth(t *testing.T) {
	t.Run("degraded while the catalog is cold", func(t *testing.T) {
		handler := New(logger.Get(), stubArtifacts{loaded: true}, stubCatalog{warm: false}, "fintrack", "1.0.0")

		rec := httptest.NewRecorder()
		handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		status := decodeStatus(t, rec)
		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, "cold", status.Checks["fund_catalog"].Status)
	})

	t.Run("healthy when everything is warm", func(t *testing.T) {
		handler := New(logger.Get(), stubArtifacts{loaded: true}, stubCatalog{warm: true}, "fintrack", "1.0.0")

		rec := httptest.NewRecorder()
		handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		status := decodeStatus(t, rec)
		assert.Equal(t, "healthy", status.Status)
	})
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/api/health"
	"fintrack/internal/api/recommend"
	"fintrack/pkg/logger"
)

func newTestServer(serviceName string) *Server {
	log := logger.Get()
	return NewServer(ServerConfig{
		Port:         8080,
		ServiceName:  serviceName,
		Version:      "1.2.3",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	},
		recommend.NewHandler(nil, log),
		health.New(log, nil, nil, serviceName, "1.2.3"),
		log,
	)
}

func TestServer_RootBanner(t *testing.T) {
	t.Run("serves valid JSON even with special characters in config", func(t *testing.T) {
		server := newTestServer(`fintrack "staging"`)

		rec := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var banner map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banner))
		assert.Equal(t, `fintrack "staging"`, banner["service"])
		assert.Equal(t, "1.2.3", banner["version"])
		assert.Equal(t, "running", banner["status"])
	})

	t.Run("unknown path is a 404", func(t *testing.T) {
		server := newTestServer("fintrack")

		rec := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

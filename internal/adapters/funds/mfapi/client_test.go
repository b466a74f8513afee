package mfapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, 5*time.Second, 600, logger.Get())
}

func TestClient_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes entries in directory order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/mf", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"schemeCode": 100027, "schemeName": "Grindlays Super Saver Income Fund"},
				{"schemeCode": 100028, "schemeName": "Axis Bluechip Fund - Growth"}
			]`))
		})

		entries, err := client.Catalog(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 100027, entries[0].SchemeCode)
		assert.Equal(t, "Axis Bluechip Fund - Growth", entries[1].SchemeName)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		})

		_, err := client.Catalog(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClient_LatestNAV(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the most recent NAV", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/mf/100028", r.URL.Path)
			w.Write([]byte(`{
				"meta": {"scheme_name": "Axis Bluechip Fund - Growth"},
				"data": [
					{"date": "29-08-2026", "nav": "54.3100"},
					{"date": "28-08-2026", "nav": "54.0500"}
				]
			}`))
		})

		nav, err := client.LatestNAV(ctx, 100028)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("54.31").Equal(nav))
	})

	t.Run("empty NAV history is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meta": {"scheme_name": "Wound Up Scheme"}, "data": []}`))
		})

		_, err := client.LatestNAV(ctx, 999999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no NAV history")
	})

	t.Run("unparsable NAV string is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meta": {}, "data": [{"date": "29-08-2026", "nav": "N.A."}]}`))
		})

		_, err := client.LatestNAV(ctx, 100028)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse NAV")
	})
}

// Package mfapi implements the fund directory source against api.mfapi.in.
// Free API, no authentication required. The full catalog endpoint returns
// tens of thousands of schemes, so per-scheme detail fetches are rate
// limited to stay a polite consumer.
package mfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"fintrack/internal/domain/catalog"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// Client fetches the fund directory and per-scheme NAV details
type Client struct {
	baseURL       string
	catalogClient *http.Client
	detailClient  *http.Client
	limiter       *rate.Limiter
	log           *logger.Logger
}

// NewClient creates a new mfapi.in client. requestsPerMinute bounds the
// per-scheme NAV detail calls; the catalog call is not limited because it
// happens at most once per process lifetime.
func NewClient(baseURL string, catalogTimeout, detailTimeout time.Duration, requestsPerMinute int, log *logger.Logger) *Client {
	rps := float64(requestsPerMinute) / 60.0
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:       baseURL,
		catalogClient: &http.Client{Timeout: catalogTimeout},
		detailClient:  &http.Client{Timeout: detailTimeout},
		limiter:       rate.NewLimiter(rate.Limit(rps), burst),
		log:           log.With("provider", "mfapi"),
	}
}

// Catalog returns the full list of schemes in the directory's natural order
func (c *Client) Catalog(ctx context.Context) ([]catalog.FundEntry, error) {
	endpoint := c.baseURL + "/mf"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create catalog request")
	}
	req.Header.Set("User-Agent", "FinTrack Recommendation Service/1.0")

	resp, err := c.catalogClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("catalog API returned status %d: %s", resp.StatusCode, string(body))
	}

	var entries []catalog.FundEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode catalog response")
	}

	return entries, nil
}

// mfapi scheme detail response structure; data is ordered latest first
type schemeDetailResponse struct {
	Meta struct {
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// LatestNAV returns the most recent NAV for a scheme, rate limited
func (c *Client) LatestNAV(ctx context.Context, schemeCode int) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, errors.Wrap(err, "nav rate limiter")
	}

	endpoint := fmt.Sprintf("%s/mf/%d", c.baseURL, schemeCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "create detail request")
	}
	req.Header.Set("User-Agent", "FinTrack Recommendation Service/1.0")

	resp, err := c.detailClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "detail request for scheme %d failed", schemeCode)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, errors.Newf("detail API returned status %d for scheme %d", resp.StatusCode, schemeCode)
	}

	var detail schemeDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return decimal.Zero, errors.Wrap(err, "decode detail response")
	}

	if len(detail.Data) == 0 {
		return decimal.Zero, errors.Newf("no NAV history for scheme %d", schemeCode)
	}

	nav, err := decimal.NewFromString(detail.Data[0].NAV)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse NAV %q for scheme %d", detail.Data[0].NAV, schemeCode)
	}

	return nav, nil
}

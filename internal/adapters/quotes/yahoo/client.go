// Package yahoo implements the quote history provider against the Yahoo
// Finance v8 chart API. Free endpoint, no authentication required.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// Client fetches daily close history for a ticker
type Client struct {
	baseURL    string
	windowDays int
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a new Yahoo chart API client. windowDays is the
// trailing calendar window requested per ticker; a few days of slack
// tolerates weekends and market holidays.
func NewClient(baseURL string, windowDays int, timeout time.Duration, log *logger.Logger) *Client {
	if windowDays <= 0 {
		windowDays = 5
	}
	return &Client{
		baseURL:    baseURL,
		windowDays: windowDays,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("provider", "yahoo"),
	}
}

// Yahoo chart API response structure
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// RecentCloses returns the daily closing prices for the trailing window in
// chronological order. Null closes (non-trading days) are dropped.
func (c *Client) RecentCloses(ctx context.Context, ticker string) ([]decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%dd&interval=1d",
		c.baseURL, url.PathEscape(ticker), c.windowDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create chart request")
	}
	req.Header.Set("User-Agent", "FinTrack Recommendation Service/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "chart request for %s failed", ticker)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("chart API returned status %d for %s: %s", resp.StatusCode, ticker, string(body))
	}

	var apiResp chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.Wrap(err, "decode chart response")
	}

	if apiResp.Chart.Error != nil {
		return nil, errors.Newf("chart API error for %s: %s", ticker, apiResp.Chart.Error.Description)
	}

	if len(apiResp.Chart.Result) == 0 || len(apiResp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	raw := apiResp.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]decimal.Decimal, 0, len(raw))
	for _, close := range raw {
		if close == nil {
			continue
		}
		closes = append(closes, decimal.NewFromFloat(*close))
	}

	c.log.Debugw("Fetched close history", "ticker", ticker, "closes", len(closes))

	return closes, nil
}

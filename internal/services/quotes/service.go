// Package quotes implements the market price lookup: the latest available
// closing price for a ticker, best effort.
package quotes

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain/quote"
	"fintrack/internal/metrics"
	"fintrack/pkg/logger"
)

// Service resolves the most recent closing price per ticker
type Service struct {
	provider quote.HistoryProvider
	log      *logger.Logger
}

// NewService creates a new quote lookup service
func NewService(provider quote.HistoryProvider, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With("service", "quotes"),
	}
}

// LatestClose returns the most recent closing price for a ticker, rounded
// to 2 decimal places. The second return value is false when the provider
// has no data for the window or the request fails; this is a best-effort
// enrichment, never an error.
func (s *Service) LatestClose(ctx context.Context, ticker string) (decimal.Decimal, bool) {
	start := time.Now()
	closes, err := s.provider.RecentCloses(ctx, ticker)
	metrics.ProviderLatency.WithLabelValues("quotes", "history").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderCalls.WithLabelValues("quotes", "history", "error").Inc()
		s.log.Warnw("Price lookup failed", "ticker", ticker, "error", err)
		return decimal.Zero, false
	}
	metrics.ProviderCalls.WithLabelValues("quotes", "history", "success").Inc()

	if len(closes) == 0 {
		s.log.Debugw("No close history in window", "ticker", ticker)
		return decimal.Zero, false
	}

	return closes[len(closes)-1].Round(2), true
}

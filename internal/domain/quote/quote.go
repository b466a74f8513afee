package quote

import (
	"context"

	"github.com/shopspring/decimal"
)

// HistoryProvider fetches a short trailing window of daily closes for a
// ticker from an external quote source. The window tolerates non-trading
// days, so only the most recent close is usually consumed.
type HistoryProvider interface {
	// RecentCloses returns daily closing prices in chronological order.
	// An empty slice means the source has no data for the window.
	RecentCloses(ctx context.Context, ticker string) ([]decimal.Decimal, error)
}

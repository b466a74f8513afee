package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// FundEntry is one scheme in the external mutual fund directory
type FundEntry struct {
	SchemeCode int    `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// Source provides the external fund directory and per-scheme NAV details
type Source interface {
	// Catalog returns the full list of schemes in the directory's
	// natural order
	Catalog(ctx context.Context) ([]FundEntry, error)

	// LatestNAV returns the most recent NAV for a scheme. An error is
	// returned when the detail record is unavailable or its NAV cannot
	// be parsed as a number.
	LatestNAV(ctx context.Context, schemeCode int) (decimal.Decimal, error)
}

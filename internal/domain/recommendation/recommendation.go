package recommendation

import (
	"github.com/shopspring/decimal"
)

// Result is the combined recommendation payload for one request.
// Stocks and Funds are best-effort enrichments: failed price lookups are
// omitted and the fund map may be empty when the catalog is unreachable.
type Result struct {
	StockCategory string                     `json:"predicted_stock_category"`
	FundCategory  string                     `json:"predicted_mf_category"`
	Stocks        map[string]decimal.Decimal `json:"recommended_stocks"`
	Funds         map[string]decimal.Decimal `json:"recommended_mutual_funds"`
}

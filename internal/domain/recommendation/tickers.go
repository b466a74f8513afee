package recommendation

// categoryTickers maps each predicted stock category to its fixed list of
// NSE ticker symbols. The lists mirror the universe the classifiers were
// trained against and are deliberately static.
var categoryTickers = map[string][]string{
	"Small-Cap": {"IRCTC.NS", "JIOFIN.NS", "POLICYBZR.NS", "NAUKRI.NS", "AUBANK.NS"},
	"Growth":    {"RELIANCE.NS", "TCS.NS", "INFY.NS", "DMART.NS", "HDFCBANK.NS"},
	"Index":     {"NIFTYBEES.NS", "BANKBEES.NS", "ICICIB22.NS", "MOM100.NS", "GOLDBEES.NS"},
	"Value":     {"HINDALCO.NS", "TATASTEEL.NS", "COALINDIA.NS", "NTPC.NS", "POWERGRID.NS"},
	"Dividend":  {"SBIN.NS", "AXISBANK.NS", "BPCL.NS", "VEDL.NS", "GAIL.NS"},
	"Blend":     {"ITC.NS", "NESTLEIND.NS", "BRITANNIA.NS", "CIPLA.NS", "HDFC.NS"},
}

// TickersFor returns the fixed ticker list for a stock category. Categories
// without a table entry yield an empty list, not an error.
func TickersFor(category string) []string {
	tickers, ok := categoryTickers[category]
	if !ok {
		return nil
	}
	out := make([]string, len(tickers))
	copy(out, tickers)
	return out
}

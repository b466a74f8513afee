package fundmatch

import (
	"regexp"
	"strings"
)

// keywordPatterns maps a fund category to the name pattern that selects
// it from the directory. Matching is case-insensitive against the raw
// scheme name.
var keywordPatterns = map[string]*regexp.Regexp{
	"ELSS":   regexp.MustCompile(`(?i)(tax.?saver|elss|long.?term.?equity|tax.?plan)`),
	"Debt":   regexp.MustCompile(`(?i)(debt|income|gilt|bond|savings|credit.?risk|short.?term|corporate.?debt|liquid|money.?market|fixed.?maturity)`),
	"Equity": regexp.MustCompile(`(?i)(equity|flexi.?cap|flexicap|large.?cap|mid.?cap|small.?cap|multi.?cap|focused.?fund|blue.?chip)`),
	"Hybrid": regexp.MustCompile(`(?i)(hybrid|balanced|advantage|aggressive|conservative|arbitrage|asset.?allocator|dynamic.?asset)`),
	"Index":  regexp.MustCompile(`(?i)(index|nifty|sensex|passive|bees|exchange.?traded|etf)`),
}

// variantMarkers flag income-distribution share classes (dividend/IDCW
// payouts) and fixed maturity plans. They are near-duplicates of the
// growth variant and are excluded from recommendations.
var variantMarkers = []string{"dividend", "idcw", "bonus", "fmp"}

// patternFor resolves a category to its keyword pattern. Categories with
// no table entry match on the category string itself, taken literally.
func patternFor(category string) *regexp.Regexp {
	if pattern, ok := keywordPatterns[category]; ok {
		return pattern
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(category))
}

// isDistributionVariant reports whether a raw scheme name carries any
// variant marker, case-insensitive
func isDistributionVariant(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range variantMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

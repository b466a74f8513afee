package profile

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"fintrack/pkg/errors"
)

// Required profile field names, as they appear on the wire
const (
	FieldRisk             = "risk"
	FieldHorizon          = "horizon"
	FieldInvestmentAmount = "investment_amount"
)

// UserProfile describes an investor's risk appetite, time horizon and
// amount to invest. InvestmentAmount is a pointer so an omitted field can
// be distinguished from an explicit zero.
type UserProfile struct {
	Risk             string
	Horizon          string
	InvestmentAmount *float64
}

// Validate checks that all three fields are present and the amount is a
// finite non-negative number. It never touches the network.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Risk) == "" {
		return errors.NewMissingFieldError(FieldRisk)
	}
	if strings.TrimSpace(p.Horizon) == "" {
		return errors.NewMissingFieldError(FieldHorizon)
	}
	if p.InvestmentAmount == nil {
		return errors.NewMissingFieldError(FieldInvestmentAmount)
	}

	amount := *p.InvestmentAmount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return &errors.InvalidAmountError{Value: amount}
	}

	return nil
}

// Normalized returns a copy with risk and horizon trimmed and capitalized,
// so that " aggressive " matches the trained label "Aggressive".
func (p UserProfile) Normalized() UserProfile {
	out := p
	out.Risk = Capitalize(p.Risk)
	out.Horizon = Capitalize(p.Horizon)
	return out
}

// Amount returns the investment amount, or zero if absent
func (p UserProfile) Amount() float64 {
	if p.InvestmentAmount == nil {
		return 0
	}
	return *p.InvestmentAmount
}

// Capitalize trims surrounding whitespace, upper-cases the first rune and
// lower-cases the rest ("LONG-TERM" becomes "Long-term"), matching the
// label casing the classifiers were trained on.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

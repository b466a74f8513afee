// Package recommendation orchestrates the full pipeline: validate the
// profile, predict the two categories, then enrich them with live prices
// and fund NAVs.
package recommendation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain/profile"
	domain "fintrack/internal/domain/recommendation"
	"fintrack/internal/labels"
	"fintrack/internal/metrics"
	"fintrack/internal/ml/classifier"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// Classifier predicts category codes from an encoded profile
type Classifier interface {
	PredictStockCategory(f classifier.Features) (int, error)
	PredictFundCategory(f classifier.Features) (int, error)
}

// QuoteLookup resolves the latest closing price for a ticker, best effort
type QuoteLookup interface {
	LatestClose(ctx context.Context, ticker string) (decimal.Decimal, bool)
}

// FundMatcher finds top fund matches for a predicted category
type FundMatcher interface {
	FindTopMatches(ctx context.Context, category string) map[string]decimal.Decimal
}

// Service drives the recommendation pipeline
type Service struct {
	encoder    *labels.Encoder
	classifier Classifier
	quotes     QuoteLookup
	funds      FundMatcher
	log        *logger.Logger
}

// NewService creates a new recommendation orchestrator
func NewService(
	encoder *labels.Encoder,
	clf Classifier,
	quotes QuoteLookup,
	funds FundMatcher,
	log *logger.Logger,
) *Service {
	return &Service{
		encoder:    encoder,
		classifier: clf,
		quotes:     quotes,
		funds:      funds,
		log:        log.With("service", "recommendation"),
	}
}

// Recommend validates the profile, predicts the stock and fund categories
// and assembles the enriched result.
//
// Only input-validation and prediction faults are fatal. Enrichment
// failures (missing prices, empty fund matches) degrade the corresponding
// result field instead of failing the request.
func (s *Service) Recommend(ctx context.Context, p profile.UserProfile) (*domain.Result, error) {
	start := time.Now()

	// Presence and amount checks happen before any network call
	if err := p.Validate(); err != nil {
		metrics.RecommendationRequests.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	normalized := p.Normalized()

	riskCode, err := s.encoder.Encode(labels.FieldRisk, normalized.Risk)
	if err != nil {
		return nil, s.invalidProfile(err)
	}
	horizonCode, err := s.encoder.Encode(labels.FieldHorizon, normalized.Horizon)
	if err != nil {
		return nil, s.invalidProfile(err)
	}

	features := classifier.Features{
		RiskCode:         riskCode,
		HorizonCode:      horizonCode,
		InvestmentAmount: normalized.Amount(),
	}

	stockCode, err := s.classifier.PredictStockCategory(features)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	fundCode, err := s.classifier.PredictFundCategory(features)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	stockCategory, err := s.encoder.Decode(labels.FieldStock, stockCode)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, "decode stock category")
	}
	fundCategory, err := s.encoder.Decode(labels.FieldFund, fundCode)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, "decode mf category")
	}

	s.log.Infow("Profile classified",
		"risk", normalized.Risk,
		"horizon", normalized.Horizon,
		"stock_category", stockCategory,
		"mf_category", fundCategory,
	)

	// Sequential best-effort lookups; a failure for one ticker must not
	// abort the others
	stocks := make(map[string]decimal.Decimal)
	for _, ticker := range domain.TickersFor(stockCategory) {
		if price, ok := s.quotes.LatestClose(ctx, ticker); ok {
			stocks[ticker] = price
		}
	}

	funds := s.funds.FindTopMatches(ctx, fundCategory)

	metrics.RecommendationRequests.WithLabelValues("success").Inc()
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())

	return &domain.Result{
		StockCategory: stockCategory,
		FundCategory:  fundCategory,
		Stocks:        stocks,
		Funds:         funds,
	}, nil
}

// invalidProfile converts an unknown-label fault into an
// InvalidProfileError carrying both valid-label lists
func (s *Service) invalidProfile(err error) error {
	metrics.RecommendationRequests.WithLabelValues("invalid_input").Inc()

	var unknown *errors.UnknownLabelError
	if errors.As(err, &unknown) {
		return &errors.InvalidProfileError{
			ValidRisks:    s.encoder.Classes(labels.FieldRisk),
			ValidHorizons: s.encoder.Classes(labels.FieldHorizon),
		}
	}
	return err
}

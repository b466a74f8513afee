// Package fundmatch implements the fund catalog matcher: keyword-based
// selection of mutual fund schemes for a predicted category, enriched
// with live NAVs.
package fundmatch

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain/catalog"
	"fintrack/internal/metrics"
	"fintrack/pkg/logger"
)

// DefaultLimit is the maximum number of fund matches per request
const DefaultLimit = 3

// Service matches catalog entries against a fund category
type Service struct {
	source catalog.Source
	cache  *CatalogCache
	limit  int
	log    *logger.Logger
}

// NewService creates a new fund catalog matcher. The cache is owned by the
// composition root so it can be shared and inspected (health checks).
func NewService(source catalog.Source, cache *CatalogCache, limit int, log *logger.Logger) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		source: source,
		cache:  cache,
		limit:  limit,
		log:    log.With("service", "fundmatch"),
	}
}

// FindTopMatches returns up to limit funds whose names match the
// category's keyword pattern, keyed by normalized display name with their
// latest NAV rounded to 2 decimal places.
//
// This is a "first N good matches in catalog order" policy: iteration
// stops as soon as the result set is full, and catalog order is the
// tie-break. Matching is always best effort: a failed catalog fetch
// yields an empty result, and entries whose NAV cannot be resolved are
// skipped.
func (s *Service) FindTopMatches(ctx context.Context, category string) map[string]decimal.Decimal {
	results := make(map[string]decimal.Decimal)

	entries, err := s.cache.Entries(ctx)
	if err != nil {
		s.log.Warnw("Fund catalog unavailable", "category", category, "error", err)
		return results
	}

	pattern := patternFor(category)

	for _, entry := range entries {
		if !pattern.MatchString(entry.SchemeName) {
			continue
		}

		if isDistributionVariant(entry.SchemeName) {
			metrics.FundEntriesSkipped.WithLabelValues("variant").Inc()
			continue
		}

		nav, ok := s.latestNAV(ctx, entry)
		if !ok {
			continue
		}

		displayName := CleanSchemeName(entry.SchemeName)
		if _, seen := results[displayName]; seen {
			// First NAV found wins on duplicate display names
			metrics.FundEntriesSkipped.WithLabelValues("duplicate").Inc()
			continue
		}

		results[displayName] = nav.Round(2)

		if len(results) >= s.limit {
			break
		}
	}

	s.log.Debugw("Fund matching complete", "category", category, "matches", len(results))

	return results
}

// latestNAV resolves a scheme's most recent NAV, skipping entries whose
// NAV cannot be fetched or is not a positive number
func (s *Service) latestNAV(ctx context.Context, entry catalog.FundEntry) (decimal.Decimal, bool) {
	start := time.Now()
	nav, err := s.source.LatestNAV(ctx, entry.SchemeCode)
	metrics.ProviderLatency.WithLabelValues("funds", "detail").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderCalls.WithLabelValues("funds", "detail", "error").Inc()
		metrics.FundEntriesSkipped.WithLabelValues("nav_fetch").Inc()
		s.log.Debugw("NAV fetch failed", "scheme", entry.SchemeCode, "error", err)
		return decimal.Zero, false
	}
	metrics.ProviderCalls.WithLabelValues("funds", "detail", "success").Inc()

	if !nav.IsPositive() {
		metrics.FundEntriesSkipped.WithLabelValues("nav_invalid").Inc()
		return decimal.Zero, false
	}

	return nav, true
}

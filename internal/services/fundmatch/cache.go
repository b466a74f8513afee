package fundmatch

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"fintrack/internal/domain/catalog"
	"fintrack/internal/metrics"
	"fintrack/pkg/logger"
)

// CatalogCache holds the fund directory snapshot for the process lifetime.
// The first caller triggers the fetch; later callers reuse the snapshot.
// A failed fetch is not cached, so the next request retries. There is no
// TTL: the cache is invalidated only by a process restart.
type CatalogCache struct {
	source catalog.Source
	log    *logger.Logger

	mu      sync.Mutex
	entries []catalog.FundEntry
	loaded  bool
}

// NewCatalogCache creates an empty cache over a fund directory source
func NewCatalogCache(source catalog.Source, log *logger.Logger) *CatalogCache {
	return &CatalogCache{
		source: source,
		log:    log.With("component", "catalog_cache"),
	}
}

// Entries returns the cached catalog, fetching it on first use. The
// returned slice is shared and must be treated as read-only.
func (c *CatalogCache) Entries(ctx context.Context) ([]catalog.FundEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.entries, nil
	}

	c.log.Info("Fetching mutual fund catalog...")
	start := time.Now()

	entries, err := c.source.Catalog(ctx)
	metrics.ProviderLatency.WithLabelValues("funds", "catalog").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCalls.WithLabelValues("funds", "catalog", "error").Inc()
		return nil, err
	}
	metrics.ProviderCalls.WithLabelValues("funds", "catalog", "success").Inc()
	metrics.CatalogSize.Set(float64(len(entries)))

	c.entries = entries
	c.loaded = true

	c.log.Infow("Mutual fund catalog cached",
		"schemes", humanize.Comma(int64(len(entries))),
		"took", time.Since(start).Round(time.Millisecond),
	)

	return c.entries, nil
}

// Warm reports whether the snapshot has been fetched
func (c *CatalogCache) Warm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

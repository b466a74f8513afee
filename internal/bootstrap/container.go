// Package bootstrap wires the application together: artifacts, provider
// clients, services and the HTTP server.
package bootstrap

import (
	"context"

	"fintrack/internal/adapters/config"
	"fintrack/internal/adapters/funds/mfapi"
	"fintrack/internal/adapters/quotes/yahoo"
	"fintrack/internal/api"
	"fintrack/internal/api/health"
	"fintrack/internal/api/recommend"
	"fintrack/internal/labels"
	"fintrack/internal/metrics"
	"fintrack/internal/ml/classifier"
	fundmatchsvc "fintrack/internal/services/fundmatch"
	quotessvc "fintrack/internal/services/quotes"
	recommendationsvc "fintrack/internal/services/recommendation"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// Container holds all application dependencies and their lifecycle.
// Components are organized in initialization order.
type Container struct {
	// Core configuration & logging
	Config       *config.Config
	Log          *logger.Logger
	ErrorTracker errors.Tracker

	// Trained artifacts (read-only after load)
	Encoder    *labels.Encoder
	Classifier *classifier.Pair

	// External provider clients
	QuoteClient *yahoo.Client
	FundClient  *mfapi.Client

	// Process-wide fund catalog snapshot, populated via guarded lazy-init
	CatalogCache *fundmatchsvc.CatalogCache

	// Services
	Quotes         *quotessvc.Service
	FundMatch      *fundmatchsvc.Service
	Recommendation *recommendationsvc.Service

	// Application layer
	Server *api.Server
}

// New builds the full dependency graph. Artifact loading happens here and
// fails fast: a missing or corrupt model means the process must not serve
// requests.
func New(cfg *config.Config, log *logger.Logger, tracker errors.Tracker) (*Container, error) {
	c := &Container{
		Config:       cfg,
		Log:          log,
		ErrorTracker: tracker,
	}

	metrics.Init()

	// Load artifacts first; everything downstream depends on them
	encoder, err := labels.Load(cfg.Models.EncodersPath())
	if err != nil {
		return nil, err
	}
	c.Encoder = encoder
	log.Infow("Label encoders loaded",
		"risks", encoder.NumClasses(labels.FieldRisk),
		"horizons", encoder.NumClasses(labels.FieldHorizon),
		"stock_categories", encoder.NumClasses(labels.FieldStock),
		"mf_categories", encoder.NumClasses(labels.FieldFund),
	)

	pair, err := classifier.Load(cfg.Models.StockModelPath(), cfg.Models.FundModelPath(), encoder)
	if err != nil {
		return nil, err
	}
	c.Classifier = pair
	log.Info("Classifier pair loaded")

	// Provider clients
	c.QuoteClient = yahoo.NewClient(cfg.Quotes.BaseURL, cfg.Quotes.WindowDays, cfg.Quotes.Timeout, log)
	c.FundClient = mfapi.NewClient(
		cfg.Funds.BaseURL,
		cfg.Funds.CatalogTimeout,
		cfg.Funds.DetailTimeout,
		cfg.Funds.RequestsPerMinute,
		log,
	)

	// Services
	c.CatalogCache = fundmatchsvc.NewCatalogCache(c.FundClient, log)
	c.Quotes = quotessvc.NewService(c.QuoteClient, log)
	c.FundMatch = fundmatchsvc.NewService(c.FundClient, c.CatalogCache, cfg.Funds.MatchLimit, log)
	c.Recommendation = recommendationsvc.NewService(c.Encoder, c.Classifier, c.Quotes, c.FundMatch, log)

	// HTTP layer
	recommendHandler := recommend.NewHandler(c.Recommendation, log)
	healthHandler := health.New(log, c.Classifier, c.CatalogCache, cfg.App.Name, cfg.App.Version)

	c.Server = api.NewServer(api.ServerConfig{
		Port:         cfg.Server.Port,
		ServiceName:  cfg.App.Name,
		Version:      cfg.App.Version,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, recommendHandler, healthHandler, log)

	return c, nil
}

// Close releases held resources in reverse initialization order
func (c *Container) Close(ctx context.Context) {
	if c.Server != nil {
		if err := c.Server.Shutdown(ctx); err != nil {
			c.Log.Warnw("HTTP server shutdown failed", "error", err)
		}
	}
	if c.Classifier != nil {
		c.Classifier.Close()
	}
	if c.ErrorTracker != nil {
		_ = c.ErrorTracker.Flush(ctx)
	}
}

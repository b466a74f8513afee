package config

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"fintrack/pkg/errors"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Models        ModelsConfig
	Quotes        QuotesConfig
	Funds         FundsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"fintrack"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"APP_VERSION" default:"dev"`
}

type ServerConfig struct {
	Port         int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

// ModelsConfig locates the trained artifacts produced by the offline
// training script (scripts/ml/train_models.py)
type ModelsConfig struct {
	Dir       string `envconfig:"MODELS_DIR" default:"models"`
	StockFile string `envconfig:"STOCK_MODEL_FILE" default:"stock_model.onnx"`
	FundFile  string `envconfig:"MF_MODEL_FILE" default:"mf_model.onnx"`
	Encoders  string `envconfig:"ENCODERS_FILE" default:"encoders.json"`
}

// StockModelPath returns the full path to the stock classifier artifact
func (c ModelsConfig) StockModelPath() string {
	return filepath.Join(c.Dir, c.StockFile)
}

// FundModelPath returns the full path to the mutual fund classifier artifact
func (c ModelsConfig) FundModelPath() string {
	return filepath.Join(c.Dir, c.FundFile)
}

// EncodersPath returns the full path to the label encoders artifact
func (c ModelsConfig) EncodersPath() string {
	return filepath.Join(c.Dir, c.Encoders)
}

type QuotesConfig struct {
	BaseURL    string        `envconfig:"QUOTES_BASE_URL" default:"https://query1.finance.yahoo.com"`
	Timeout    time.Duration `envconfig:"QUOTES_TIMEOUT" default:"10s"`
	WindowDays int           `envconfig:"QUOTES_WINDOW_DAYS" default:"5"`
}

type FundsConfig struct {
	BaseURL           string        `envconfig:"FUNDS_BASE_URL" default:"https://api.mfapi.in"`
	CatalogTimeout    time.Duration `envconfig:"FUNDS_CATALOG_TIMEOUT" default:"15s"`
	DetailTimeout     time.Duration `envconfig:"FUNDS_DETAIL_TIMEOUT" default:"10s"`
	RequestsPerMinute int           `envconfig:"FUNDS_REQUESTS_PER_MINUTE" default:"120"`
	MatchLimit        int           `envconfig:"FUNDS_MATCH_LIMIT" default:"3"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}

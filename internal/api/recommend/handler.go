// Package recommend exposes the recommendation pipeline over HTTP,
// mirroring the request/response contract the UI consumes.
package recommend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"fintrack/internal/domain/profile"
	"fintrack/internal/domain/recommendation"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// Recommender is the orchestration entrypoint the handler drives
type Recommender interface {
	Recommend(ctx context.Context, p profile.UserProfile) (*recommendation.Result, error)
}

// Handler serves POST /recommend
type Handler struct {
	service Recommender
	log     *logger.Logger
}

// NewHandler creates a new recommend handler
func NewHandler(service Recommender, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With("handler", "recommend"),
	}
}

// request is the caller-facing input contract
type request struct {
	Risk             string   `json:"risk"`
	Horizon          string   `json:"horizon"`
	InvestmentAmount *float64 `json:"investment_amount"`
}

// envelope is the caller-facing response contract
type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ServeHTTP handles POST /recommend
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)
	log := h.log.With("request_id", requestID)

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := profile.UserProfile{
		Risk:             req.Risk,
		Horizon:          req.Horizon,
		InvestmentAmount: req.InvestmentAmount,
	}

	result, err := h.service.Recommend(r.Context(), p)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Errorw("Recommendation failed", "error", err)
		} else {
			log.Infow("Recommendation rejected", "error", err)
		}
		h.writeError(w, status, err.Error())
		return
	}

	log.Infow("Recommendation served",
		"stock_category", result.StockCategory,
		"mf_category", result.FundCategory,
		"stocks", len(result.Stocks),
		"funds", len(result.Funds),
	)

	h.writeJSON(w, http.StatusOK, envelope{Status: "success", Data: result})
}

// statusFor maps the error taxonomy onto HTTP status codes. Validation
// faults are the caller's to fix; everything else is ours.
func statusFor(err error) int {
	var (
		missing *errors.MissingFieldError
		invalid *errors.InvalidProfileError
		amount  *errors.InvalidAmountError
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid), errors.As(err, &amount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Status: "error", Message: message})
}

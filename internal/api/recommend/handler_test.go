package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/profile"
	"fintrack/internal/domain/recommendation"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// MockRecommender is a mock implementation of Recommender
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(ctx context.Context, p profile.UserProfile) (*recommendation.Result, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recommendation.Result), args.Error(1)
}

func doRequest(handler *Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ServeHTTP(t *testing.T) {
	t.Run("success envelope wraps the result", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		amount := 10000.0
		wantProfile := profile.UserProfile{
			Risk:             "Aggressive",
			Horizon:          "Long-term",
			InvestmentAmount: &amount,
		}
		svc.On("Recommend", mock.Anything, wantProfile).Return(&recommendation.Result{
			StockCategory: "Growth",
			FundCategory:  "Equity",
			Stocks: map[string]decimal.Decimal{
				"TATAMOTORS.NS": decimal.RequireFromString("975.40"),
			},
			Funds: map[string]decimal.Decimal{
				"Axis Bluechip Fund": decimal.RequireFromString("54.31"),
			},
		}, nil)

		rec := doRequest(handler, http.MethodPost,
			`{"risk": "Aggressive", "horizon": "Long-term", "investment_amount": 10000}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

		var resp struct {
			Status string `json:"status"`
			Data   struct {
				StockCategory string             `json:"predicted_stock_category"`
				FundCategory  string             `json:"predicted_mf_category"`
				Stocks        map[string]string `json:"recommended_stocks"`
				Funds         map[string]string `json:"recommended_mutual_funds"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Growth", resp.Data.StockCategory)
		assert.Equal(t, "Equity", resp.Data.FundCategory)
		assert.Contains(t, resp.Data.Stocks, "TATAMOTORS.NS")
		assert.Contains(t, resp.Data.Funds, "Axis Bluechip Fund")

		svc.AssertExpectations(t)
	})

	t.Run("validation fault maps to 400 with error envelope", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		svc.On("Recommend", mock.Anything, mock.Anything).
			Return(nil, &errors.MissingFieldError{Field: "investment_amount"})

		rec := doRequest(handler, http.MethodPost, `{"risk": "Aggressive", "horizon": "Long-term"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Contains(t, resp.Message, "investment_amount")
	})

	t.Run("invalid profile fault maps to 400", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		svc.On("Recommend", mock.Anything, mock.Anything).Return(nil, &errors.InvalidProfileError{
			ValidRisks:    []string{"Aggressive", "Conservative", "Moderate"},
			ValidHorizons: []string{"Long-term", "Medium-term", "Short-term"},
		})

		rec := doRequest(handler, http.MethodPost,
			`{"risk": "Reckless", "horizon": "Long-term", "investment_amount": 500}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Moderate")
	})

	t.Run("internal fault maps to 500", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		svc.On("Recommend", mock.Anything, mock.Anything).
			Return(nil, &errors.PredictionError{Model: "stock", Err: errors.New("session closed")})

		rec := doRequest(handler, http.MethodPost,
			`{"risk": "Moderate", "horizon": "Short-term", "investment_amount": 500}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"error"`)
	})

	t.Run("rejects non-POST methods", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		rec := doRequest(handler, http.MethodGet, "")

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		svc.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed JSON without calling the service", func(t *testing.T) {
		svc := new(MockRecommender)
		handler := NewHandler(svc, logger.Get())

		rec := doRequest(handler, http.MethodPost, `{"risk": `)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
		svc.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
	})
}

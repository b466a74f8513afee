package quotes

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

// MockProvider is a mock implementation of quote.HistoryProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) RecentCloses(ctx context.Context, ticker string) ([]decimal.Decimal, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestService_LatestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the most recent close rounded to 2 places", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("RecentCloses", ctx, "TCS.NS").Return([]decimal.Decimal{
			d("3500.10"), d("3512.456"), d("3498.999"),
		}, nil)

		svc := NewService(provider, logger.Get())
		price, ok := svc.LatestClose(ctx, "TCS.NS")

		require.True(t, ok)
		assert.True(t, d("3499.00").Equal(price), "got %s", price)
	})

	t.Run("absent when the window is empty", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("RecentCloses", ctx, "GHOST.NS").Return([]decimal.Decimal{}, nil)

		svc := NewService(provider, logger.Get())
		_, ok := svc.LatestClose(ctx, "GHOST.NS")
		assert.False(t, ok)
	})

	t.Run("absent, not an error, when the provider fails", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("RecentCloses", ctx, "DOWN.NS").Return(nil, errors.New("connection reset"))

		svc := NewService(provider, logger.Get())
		_, ok := svc.LatestClose(ctx, "DOWN.NS")
		assert.False(t, ok)
	})
}

package spendlens

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-go/internal/transport"
)

func TestAnalyticsService_AverageSpend(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `[
		{"categoryId": "c1", "categoryName": "Food", "totalAmount": 300, "expenseCount": 6, "averageAmount": 50}
	]`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			// Start boundary at UTC midnight, end boundary at end of day:
			// a same-day range must cover the whole calendar day
			return req.Method == http.MethodGet &&
				req.Path == "/api/analytics/average-spend" &&
				req.Query.Get("startDate") == "2024-01-01T00:00:00.000Z" &&
				req.Query.Get("endDate") == "2024-01-31T23:59:59.999Z"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	summaries, err := client.Analytics.AverageSpend(ctx, "2024-01-01", "2024-01-31")

	// Assert: rows come through verbatim
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Food", summaries[0].CategoryName)
	assert.Equal(t, 300.0, summaries[0].TotalAmount)
	assert.Equal(t, 6, summaries[0].ExpenseCount)
	assert.Equal(t, 50.0, summaries[0].AverageAmount)

	mockTransport.AssertExpectations(t)
}

func TestAnalyticsService_AverageSpend_SameDay(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Query.Get("startDate") == "2024-06-15T00:00:00.000Z" &&
				req.Query.Get("endDate") == "2024-06-15T23:59:59.999Z"
		}),
		mock.Anything,
	).Return(`[]`, nil)

	// Execute
	ctx := context.Background()
	summaries, err := client.Analytics.AverageSpend(ctx, "2024-06-15", "2024-06-15")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, summaries)

	mockTransport.AssertExpectations(t)
}

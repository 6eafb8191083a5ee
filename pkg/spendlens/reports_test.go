package spendlens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-go/internal/transport"
	internalTypes "github.com/spendlens/spendlens-go/internal/types"
)

func matchPath(path string) interface{} {
	return mock.MatchedBy(func(req *transport.Request) bool {
		return req.Path == path
	})
}

func TestReportService_SpendingBreakdown(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	categoriesJSON := `[
		{"id": "c1", "name": "Food", "isExpense": true},
		{"id": "c2", "name": "Travel", "isExpense": true}
	]`
	expensesJSON := `[
		{"id": "e1", "categoryId": "c1", "amount": 100, "type": "Need", "timestamp": "2024-01-01T10:00:00Z"},
		{"id": "e2", "categoryId": "c2", "amount": 250, "type": "Want", "timestamp": "2024-01-02T10:00:00Z"},
		{"id": "e3", "categoryId": "c1", "amount": 40, "type": "Income", "timestamp": "2024-01-02T12:00:00Z"}
	]`

	mockTransport.On("Do", mock.Anything, matchPath("/api/categories"), mock.Anything).
		Return(categoriesJSON, nil).Once()
	mockTransport.On("Do", mock.Anything, matchPath("/api/expenses"), mock.Anything).
		Return(expensesJSON, nil).Once()

	// Execute
	ctx := context.Background()
	breakdown, err := client.Reports.SpendingBreakdown(ctx, "2024-01-01", "2024-01-31")

	// Assert
	require.NoError(t, err)
	assert.False(t, breakdown.Incomplete)
	assert.Equal(t, 350.0, breakdown.TotalSpend)

	require.Len(t, breakdown.Categories, 2)
	assert.Equal(t, "Travel", breakdown.Categories[0].Name)
	assert.Equal(t, "Food", breakdown.Categories[1].Name)

	require.Len(t, breakdown.Trend, 2)
	assert.Equal(t, "2024-01-01", breakdown.Trend[0].Date)
	assert.Equal(t, 100.0, breakdown.Trend[0].TotalAmount)
	assert.Equal(t, "2024-01-02", breakdown.Trend[1].Date)
	assert.Equal(t, 250.0, breakdown.Trend[1].TotalAmount)

	mockTransport.AssertExpectations(t)
}

func TestReportService_SpendingBreakdown_PartialRange(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, matchPath("/api/categories"), mock.Anything).
		Return(`[{"id": "cat-1", "name": "Food", "isExpense": true}]`, nil).Once()

	// First expense page is full, the next one fails: the report is built
	// from what was accumulated and flagged incomplete
	mockTransport.On("Do", mock.Anything, matchSkip("0"), mock.Anything).
		Return(expensePage(t, 0, DefaultPageSize), nil).Once()
	mockTransport.On("Do", mock.Anything, matchSkip("500"), mock.Anything).
		Return(nil, internalTypes.ErrServerError).Once()

	// Execute
	ctx := context.Background()
	breakdown, err := client.Reports.SpendingBreakdown(ctx, "2024-01-01", "2024-12-31")

	// Assert
	require.NoError(t, err)
	assert.True(t, breakdown.Incomplete)
	assert.Equal(t, float64(DefaultPageSize)*10, breakdown.TotalSpend)

	mockTransport.AssertExpectations(t)
}

func TestReportService_SpendingBreakdown_CategoryFetchFails(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, matchPath("/api/categories"), mock.Anything).
		Return(nil, internalTypes.ErrServerError)
	mockTransport.On("Do", mock.Anything, matchPath("/api/expenses"), mock.Anything).
		Return(`[]`, nil).Maybe()

	// Execute
	ctx := context.Background()
	breakdown, err := client.Reports.SpendingBreakdown(ctx, "2024-01-01", "2024-01-31")

	// Assert
	require.Error(t, err)
	assert.Nil(t, breakdown)
}

func TestReportService_AverageSpend(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	categoriesJSON := `[
		{"id": "c1", "name": "Food", "isExpense": true},
		{"id": "c2", "name": "Salary", "isExpense": false}
	]`
	summariesJSON := `[
		{"categoryId": "c1", "categoryName": "Food", "totalAmount": 300, "expenseCount": 6, "averageAmount": 50},
		{"categoryId": "c2", "categoryName": "Salary", "totalAmount": 5000, "expenseCount": 2, "averageAmount": 2500}
	]`

	mockTransport.On("Do", mock.Anything, matchPath("/api/categories"), mock.Anything).
		Return(categoriesJSON, nil).Once()
	mockTransport.On("Do", mock.Anything, matchPath("/api/analytics/average-spend"), mock.Anything).
		Return(summariesJSON, nil).Once()

	// Execute
	ctx := context.Background()
	report, err := client.Reports.AverageSpend(ctx, "2024-01-01", "2024-01-31")

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Expense, 1)
	require.Len(t, report.Income, 1)
	assert.Equal(t, "Food", report.Expense[0].CategoryName)
	assert.Equal(t, "Salary", report.Income[0].CategoryName)

	mockTransport.AssertExpectations(t)
}

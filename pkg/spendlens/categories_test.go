package spendlens

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-go/internal/transport"
	internalTypes "github.com/spendlens/spendlens-go/internal/types"
)

// MockTransport is a testify mock for the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, req *transport.Request, result interface{}) error {
	args := m.Called(ctx, req, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetSession(session *internalTypes.Session) {
	m.Called(session)
}

func (m *MockTransport) Session() *internalTypes.Session {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*internalTypes.Session)
}

func newTestClient(mockTransport *MockTransport) *Client {
	c := &Client{
		transport: mockTransport,
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
	}
	c.initServices()
	return c
}

func TestCategoryService_List_BareArray(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// Mock response: bare array shape
	mockResponse := `[
		{"id": "cat-1", "name": "Food", "isExpense": true},
		{"id": "cat-2", "name": "Salary", "isExpense": false}
	]`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodGet && req.Path == "/api/categories"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	categories, err := client.Categories.List(ctx, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.True(t, categories[0].IsExpense)
	assert.False(t, categories[1].IsExpense)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_List_Envelope(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// Mock response: {items, total} shape
	mockResponse := `{
		"items": [{"id": "cat-1", "name": "Food", "isExpense": true}],
		"total": 42
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	categories, err := client.Categories.List(ctx, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "cat-1", categories[0].ID)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_List_Filters(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Query.Get("skip") == "0" && req.Query.Get("limit") == "20"
		}),
		mock.Anything,
	).Return(`[]`, nil)

	// Execute: zero skip must still be transmitted when set
	ctx := context.Background()
	skip, limit := 0, 20
	categories, err := client.Categories.List(ctx, &ListFilters{Skip: &skip, Limit: &limit})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, categories)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Create(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{"id": "cat-9", "name": "Transport", "isExpense": true}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			params, ok := req.Body.(*CreateCategoryParams)
			return req.Method == http.MethodPost &&
				req.Path == "/api/categories" &&
				ok && params.Name == "Transport" && params.IsExpense
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	category, err := client.Categories.Create(ctx, &CreateCategoryParams{
		Name:      "Transport",
		IsExpense: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "cat-9", category.ID)
	assert.Equal(t, "Transport", category.Name)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Update_PartialPayload(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{"id": "cat-1", "name": "Groceries", "isExpense": true}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			params, ok := req.Body.(*UpdateCategoryParams)
			if !ok {
				return false
			}
			// Only the name is set; the isExpense flag must stay omitted
			return req.Method == http.MethodPatch &&
				req.Path == "/api/categories/cat-1" &&
				params.Name != nil && *params.Name == "Groceries" &&
				params.IsExpense == nil
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	name := "Groceries"
	category, err := client.Categories.Update(ctx, "cat-1", &UpdateCategoryParams{Name: &name})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Delete(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodDelete && req.Path == "/api/categories/cat-1"
		}),
		mock.Anything,
	).Return(`{"success": true}`, nil)

	// Execute
	ctx := context.Background()
	err := client.Categories.Delete(ctx, "cat-1")

	// Assert
	require.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Delete_NotDeleted(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(`{"success": false}`, nil)

	// Execute
	ctx := context.Background()
	err := client.Categories.Delete(ctx, "cat-1")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not deleted")

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Delete_Conflict(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	conflictErr := &internalTypes.Error{
		Code:       "CONFLICT",
		Message:    "category is referenced by existing expenses",
		StatusCode: http.StatusConflict,
		Err:        internalTypes.ErrConflict,
	}

	mockTransport.On("Do",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(nil, conflictErr)

	// Execute
	ctx := context.Background()
	err := client.Categories.Delete(ctx, "cat-1")

	// Assert: the conflict kind survives the operation wrapping
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Contains(t, apiErr.Message, "referenced by existing expenses")

	mockTransport.AssertExpectations(t)
}

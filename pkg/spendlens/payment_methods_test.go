package spendlens

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-go/internal/transport"
	internalTypes "github.com/spendlens/spendlens-go/internal/types"
)

func TestPaymentMethodService_List(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"items": [
			{"id": "pm-1", "name": "Debit Card", "isExpense": true},
			{"id": "pm-2", "name": "Cash", "isExpense": true}
		],
		"total": 2
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodGet && req.Path == "/api/payment_methods"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	methods, err := client.PaymentMethods.List(ctx, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "Debit Card", methods[0].Name)

	mockTransport.AssertExpectations(t)
}

func TestPaymentMethodService_Create(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			params, ok := req.Body.(*CreatePaymentMethodParams)
			return req.Method == http.MethodPost &&
				req.Path == "/api/payment_methods" &&
				ok && params.Name == "Credit Card"
		}),
		mock.Anything,
	).Return(`{"id": "pm-3", "name": "Credit Card", "isExpense": true}`, nil)

	// Execute
	ctx := context.Background()
	method, err := client.PaymentMethods.Create(ctx, &CreatePaymentMethodParams{
		Name:      "Credit Card",
		IsExpense: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pm-3", method.ID)

	mockTransport.AssertExpectations(t)
}

func TestPaymentMethodService_Delete_Conflict(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	conflictErr := &internalTypes.Error{
		Code:       "CONFLICT",
		Message:    "payment method is referenced by existing expenses",
		StatusCode: http.StatusConflict,
		Err:        internalTypes.ErrConflict,
	}

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodDelete && req.Path == "/api/payment_methods/pm-1"
		}),
		mock.Anything,
	).Return(nil, conflictErr)

	// Execute
	ctx := context.Background()
	err := client.PaymentMethods.Delete(ctx, "pm-1")

	// Assert
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	mockTransport.AssertExpectations(t)
}

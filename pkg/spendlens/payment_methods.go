package spendlens

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/transport"
)

const paymentMethodsPath = "/api/payment_methods"

// paymentMethodService implements the PaymentMethodService interface
type paymentMethodService struct {
	client *Client
}

// List retrieves payment methods
func (s *paymentMethodService) List(ctx context.Context, filters *ListFilters) ([]*PaymentMethod, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   paymentMethodsPath,
		Query:  filters.Values(),
	}

	var page Page[*PaymentMethod]
	if err := s.client.do(ctx, "payment_methods.list", req, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return page.Items, nil
}

// Get retrieves a single payment method
func (s *paymentMethodService) Get(ctx context.Context, paymentMethodID string) (*PaymentMethod, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   paymentMethodsPath + "/" + paymentMethodID,
	}

	var method PaymentMethod
	if err := s.client.do(ctx, "payment_methods.get", req, &method); err != nil {
		return nil, errors.Wrap(err, "failed to get payment method")
	}

	return &method, nil
}

// Create creates a new payment method
func (s *paymentMethodService) Create(ctx context.Context, params *CreatePaymentMethodParams) (*PaymentMethod, error) {
	req := &transport.Request{
		Method: http.MethodPost,
		Path:   paymentMethodsPath,
		Body:   params,
	}

	var method PaymentMethod
	if err := s.client.do(ctx, "payment_methods.create", req, &method); err != nil {
		return nil, errors.Wrap(err, "failed to create payment method")
	}

	return &method, nil
}

// Update applies a partial update to a payment method
func (s *paymentMethodService) Update(ctx context.Context, paymentMethodID string, params *UpdatePaymentMethodParams) (*PaymentMethod, error) {
	req := &transport.Request{
		Method: http.MethodPatch,
		Path:   paymentMethodsPath + "/" + paymentMethodID,
		Body:   params,
	}

	var method PaymentMethod
	if err := s.client.do(ctx, "payment_methods.update", req, &method); err != nil {
		return nil, errors.Wrap(err, "failed to update payment method")
	}

	return &method, nil
}

// Delete deletes a payment method. A 409 from the server means the method
// is used by existing expenses and surfaces as ErrConflict.
func (s *paymentMethodService) Delete(ctx context.Context, paymentMethodID string) error {
	req := &transport.Request{
		Method: http.MethodDelete,
		Path:   paymentMethodsPath + "/" + paymentMethodID,
	}

	var result deleteResponse
	if err := s.client.do(ctx, "payment_methods.delete", req, &result); err != nil {
		return errors.Wrap(err, "failed to delete payment method")
	}

	if !result.Success {
		return errors.New("payment method was not deleted")
	}

	return nil
}

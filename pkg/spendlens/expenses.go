package spendlens

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/transport"
)

const expensesPath = "/api/expenses"

// expenseService implements the ExpenseService interface
type expenseService struct {
	client *Client
}

// List retrieves a single page of expenses matching the filters
func (s *expenseService) List(ctx context.Context, filters *ExpenseFilters) ([]*Expense, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   expensesPath,
		Query:  filters.Values(),
	}

	var page Page[*Expense]
	if err := s.client.do(ctx, "expenses.list", req, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return page.Items, nil
}

// Get retrieves a single expense
func (s *expenseService) Get(ctx context.Context, expenseID string) (*Expense, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   expensesPath + "/" + expenseID,
	}

	var expense Expense
	if err := s.client.do(ctx, "expenses.get", req, &expense); err != nil {
		return nil, errors.Wrap(err, "failed to get expense")
	}

	return &expense, nil
}

// Create creates a new expense
func (s *expenseService) Create(ctx context.Context, params *CreateExpenseParams) (*Expense, error) {
	req := &transport.Request{
		Method: http.MethodPost,
		Path:   expensesPath,
		Body:   params,
	}

	var expense Expense
	if err := s.client.do(ctx, "expenses.create", req, &expense); err != nil {
		return nil, errors.Wrap(err, "failed to create expense")
	}

	return &expense, nil
}

// Update applies a partial update to an expense
func (s *expenseService) Update(ctx context.Context, expenseID string, params *UpdateExpenseParams) (*Expense, error) {
	req := &transport.Request{
		Method: http.MethodPatch,
		Path:   expensesPath + "/" + expenseID,
		Body:   params,
	}

	var expense Expense
	if err := s.client.do(ctx, "expenses.update", req, &expense); err != nil {
		return nil, errors.Wrap(err, "failed to update expense")
	}

	return &expense, nil
}

// Delete deletes an expense
func (s *expenseService) Delete(ctx context.Context, expenseID string) error {
	req := &transport.Request{
		Method: http.MethodDelete,
		Path:   expensesPath + "/" + expenseID,
	}

	var result deleteResponse
	if err := s.client.do(ctx, "expenses.delete", req, &result); err != nil {
		return errors.Wrap(err, "failed to delete expense")
	}

	if !result.Success {
		return errors.New("expense was not deleted")
	}

	return nil
}

// FetchAll retrieves every expense in the date range. This is not display
// pagination: pages are requested sequentially with a growing skip until a
// page shorter than pageSize signals the end of data, and the server's page
// order is preserved across the concatenation. Each page request starts only
// after the previous page arrived, because termination depends on its length.
//
// A failure on the first page returns no data. A failure on a later page
// returns the accumulated expenses together with ErrIncompleteRange: partial
// availability is preferred over discarding everything for read-only
// reporting.
func (s *expenseService) FetchAll(ctx context.Context, startDate, endDate string, pageSize int) ([]*Expense, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []*Expense
	skip := 0

	for {
		// Cooperative cancellation between pages
		if err := ctx.Err(); err != nil {
			if skip == 0 {
				return nil, err
			}
			return all, &Error{
				Code:    "INCOMPLETE_RANGE",
				Message: fmt.Sprintf("range fetch aborted at offset %d: %v", skip, err),
				Err:     ErrIncompleteRange,
			}
		}

		offset := skip
		limit := pageSize
		page, err := s.List(ctx, &ExpenseFilters{
			StartDate: startDate,
			EndDate:   endDate,
			Skip:      &offset,
			Limit:     &limit,
		})
		if err != nil {
			if skip == 0 {
				return nil, errors.Wrap(err, "failed to fetch expense range")
			}
			if logger := s.client.options.Logger; logger != nil {
				logger.Warn("expense range fetch incomplete", "offset", skip, "error", err)
			}
			return all, &Error{
				Code:    "INCOMPLETE_RANGE",
				Message: fmt.Sprintf("range fetch failed at offset %d: %v", skip, err),
				Err:     ErrIncompleteRange,
			}
		}

		all = append(all, page...)

		// A short page ends the data; an over-long page is malformed.
		// Either way there is nothing sane to fetch past it.
		if len(page) != pageSize {
			break
		}

		skip += pageSize
	}

	return all, nil
}

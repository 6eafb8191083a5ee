package spendlens

import (
	"context"
)

// CategoryService handles category operations
type CategoryService interface {
	// List retrieves categories
	List(ctx context.Context, filters *ListFilters) ([]*Category, error)

	// Get retrieves a single category by ID
	Get(ctx context.Context, categoryID string) (*Category, error)

	// Create creates a new category
	Create(ctx context.Context, params *CreateCategoryParams) (*Category, error)

	// Update applies a partial update to a category
	Update(ctx context.Context, categoryID string, params *UpdateCategoryParams) (*Category, error)

	// Delete deletes a category. A category referenced by existing
	// expenses yields ErrConflict.
	Delete(ctx context.Context, categoryID string) error
}

// PaymentMethodService handles payment method operations
type PaymentMethodService interface {
	// List retrieves payment methods
	List(ctx context.Context, filters *ListFilters) ([]*PaymentMethod, error)

	// Get retrieves a single payment method by ID
	Get(ctx context.Context, paymentMethodID string) (*PaymentMethod, error)

	// Create creates a new payment method
	Create(ctx context.Context, params *CreatePaymentMethodParams) (*PaymentMethod, error)

	// Update applies a partial update to a payment method
	Update(ctx context.Context, paymentMethodID string, params *UpdatePaymentMethodParams) (*PaymentMethod, error)

	// Delete deletes a payment method. A method referenced by existing
	// expenses yields ErrConflict.
	Delete(ctx context.Context, paymentMethodID string) error
}

// ExpenseService handles expense operations
type ExpenseService interface {
	// List retrieves a single page of expenses matching the filters
	List(ctx context.Context, filters *ExpenseFilters) ([]*Expense, error)

	// Get retrieves a single expense by ID
	Get(ctx context.Context, expenseID string) (*Expense, error)

	// Create creates a new expense
	Create(ctx context.Context, params *CreateExpenseParams) (*Expense, error)

	// Update applies a partial update to an expense
	Update(ctx context.Context, expenseID string, params *UpdateExpenseParams) (*Expense, error)

	// Delete deletes an expense
	Delete(ctx context.Context, expenseID string) error

	// FetchAll retrieves every expense in the date range, paging until a
	// short page signals the end of data. A failure after the first page
	// returns the accumulated expenses together with ErrIncompleteRange.
	FetchAll(ctx context.Context, startDate, endDate string, pageSize int) ([]*Expense, error)
}

// AnalyticsService handles server-computed aggregates
type AnalyticsService interface {
	// AverageSpend retrieves per-category average-spend summaries for an
	// inclusive calendar-date range.
	AverageSpend(ctx context.Context, startDate, endDate string) ([]*CategorySpendSummary, error)
}

// ReportService composes fetching and aggregation for dashboard views
type ReportService interface {
	// SpendingBreakdown builds per-category totals and the daily trend for
	// a date range. Incomplete is set when a later page of the range fetch
	// failed and the report covers only the accumulated part.
	SpendingBreakdown(ctx context.Context, startDate, endDate string) (*SpendingBreakdown, error)

	// AverageSpend retrieves the server-side summaries partitioned into
	// expense and income groups.
	AverageSpend(ctx context.Context, startDate, endDate string) (*AverageSpendReport, error)
}

// AuthService handles the session lifecycle
type AuthService interface {
	// Login establishes a session with existing credentials
	Login(ctx context.Context, email, password string) error

	// Signup creates an account and establishes a session
	Signup(ctx context.Context, email, password string) error

	// Logout ends the session and clears the stored CSRF token
	Logout(ctx context.Context) error

	// Session returns the current session
	Session() (*Session, error)
}

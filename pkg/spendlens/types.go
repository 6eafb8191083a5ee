package spendlens

import (
	"net/url"
	"strconv"
	"time"
)

// ExpenseType classifies a transaction's polarity. Income is an inflow;
// Need, Want and Investment are outflows, but only Need and Want count as
// spending in the category and trend aggregates.
type ExpenseType string

const (
	TypeNeed       ExpenseType = "Need"
	TypeWant       ExpenseType = "Want"
	TypeInvestment ExpenseType = "Investment"
	TypeIncome     ExpenseType = "Income"
)

// SpendEligible reports whether the type counts toward spending aggregates.
func (t ExpenseType) SpendEligible() bool {
	return t == TypeNeed || t == TypeWant
}

// Category represents an expense or income category
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsExpense bool   `json:"isExpense"`
}

// PaymentMethod represents a payment method. Same shape and lifecycle as
// Category, independent namespace.
type PaymentMethod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsExpense bool   `json:"isExpense"`
}

// Expense represents a dated transaction
type Expense struct {
	ID              string      `json:"id"`
	CategoryID      string      `json:"categoryId"`
	PaymentMethodID string      `json:"paymentMethodId"`
	Amount          float64     `json:"amount"`
	Type            ExpenseType `json:"type"`
	Description     string      `json:"description"`
	Timestamp       time.Time   `json:"timestamp"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CategorySpendSummary is a server-computed per-category aggregate for a
// date range. IsExpense is decorated client-side from the category list for
// grouping; the numeric fields are consumed verbatim.
type CategorySpendSummary struct {
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	TotalAmount   float64 `json:"totalAmount"`
	ExpenseCount  int     `json:"expenseCount"`
	AverageAmount float64 `json:"averageAmount"`
	IsExpense     bool    `json:"isExpense,omitempty"`
}

// Session represents an authenticated session
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	CSRFToken string `json:"csrfToken"`
}

// ListFilters narrows category and payment method listings
type ListFilters struct {
	Skip  *int
	Limit *int
}

// Values builds the query string from set fields only
func (f *ListFilters) Values() url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}
	if f.Skip != nil {
		values.Set("skip", strconv.Itoa(*f.Skip))
	}
	if f.Limit != nil {
		values.Set("limit", strconv.Itoa(*f.Limit))
	}
	return values
}

// ExpenseFilters narrows expense listings. StartDate and EndDate accept
// calendar dates (YYYY-MM-DD) and are normalized to UTC instants before
// transmission; fields left unset are not sent.
type ExpenseFilters struct {
	StartDate       string
	EndDate         string
	CategoryID      string
	PaymentMethodID string
	Type            ExpenseType
	Skip            *int
	Limit           *int
}

// Values builds the query string from set fields only, converting calendar
// dates to UTC-midnight instants.
func (f *ExpenseFilters) Values() url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}
	if f.StartDate != "" {
		values.Set("startDate", normalizeFilterDate(f.StartDate))
	}
	if f.EndDate != "" {
		values.Set("endDate", normalizeFilterDate(f.EndDate))
	}
	if f.CategoryID != "" {
		values.Set("categoryId", f.CategoryID)
	}
	if f.PaymentMethodID != "" {
		values.Set("paymentMethodId", f.PaymentMethodID)
	}
	if f.Type != "" {
		values.Set("type", string(f.Type))
	}
	if f.Skip != nil {
		values.Set("skip", strconv.Itoa(*f.Skip))
	}
	if f.Limit != nil {
		values.Set("limit", strconv.Itoa(*f.Limit))
	}
	return values
}

// Parameter structures

// CreateCategoryParams for creating categories
type CreateCategoryParams struct {
	Name      string `json:"name"`
	IsExpense bool   `json:"isExpense"`
}

// UpdateCategoryParams for partial category updates
type UpdateCategoryParams struct {
	Name      *string `json:"name,omitempty"`
	IsExpense *bool   `json:"isExpense,omitempty"`
}

// CreatePaymentMethodParams for creating payment methods
type CreatePaymentMethodParams struct {
	Name      string `json:"name"`
	IsExpense bool   `json:"isExpense"`
}

// UpdatePaymentMethodParams for partial payment method updates
type UpdatePaymentMethodParams struct {
	Name      *string `json:"name,omitempty"`
	IsExpense *bool   `json:"isExpense,omitempty"`
}

// CreateExpenseParams for creating expenses
type CreateExpenseParams struct {
	CategoryID      string      `json:"categoryId"`
	PaymentMethodID string      `json:"paymentMethodId"`
	Amount          float64     `json:"amount"`
	Type            ExpenseType `json:"type"`
	Description     string      `json:"description,omitempty"`
	Timestamp       time.Time   `json:"timestamp"`
}

// UpdateExpenseParams for partial expense updates
type UpdateExpenseParams struct {
	CategoryID      *string      `json:"categoryId,omitempty"`
	PaymentMethodID *string      `json:"paymentMethodId,omitempty"`
	Amount          *float64     `json:"amount,omitempty"`
	Type            *ExpenseType `json:"type,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Timestamp       *time.Time   `json:"timestamp,omitempty"`
}

// deleteResponse is the common mutation acknowledgement
type deleteResponse struct {
	Success bool `json:"success"`
}

package spendlens

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SpendingBreakdown is the client-side aggregation of a date range:
// per-category totals for charting and the chronological daily trend.
// Incomplete marks a best-effort result assembled from a partially fetched
// range.
type SpendingBreakdown struct {
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Categories []CategorySpend `json:"categories"`
	TotalSpend float64         `json:"totalSpend"`
	Trend      []DailySpend    `json:"trend"`
	Incomplete bool            `json:"incomplete,omitempty"`
}

// AverageSpendReport groups the server-computed summaries for display
type AverageSpendReport struct {
	StartDate string                  `json:"startDate"`
	EndDate   string                  `json:"endDate"`
	Expense   []*CategorySpendSummary `json:"expense"`
	Income    []*CategorySpendSummary `json:"income"`
}

// reportService implements the ReportService interface
type reportService struct {
	client *Client
}

// SpendingBreakdown fetches the category list and the full expense range
// concurrently, then runs the pure aggregations. The two fetches write to
// disjoint state and are joined before aggregation. When a later page of
// the range fetch fails, the accumulated expenses are still aggregated and
// the report is marked Incomplete.
func (s *reportService) SpendingBreakdown(ctx context.Context, startDate, endDate string) (*SpendingBreakdown, error) {
	var (
		categories []*Category
		expenses   []*Expense
		incomplete bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		categories, err = s.client.Categories.List(gctx, nil)
		return err
	})

	g.Go(func() error {
		var err error
		expenses, err = s.client.Expenses.FetchAll(gctx, startDate, endDate, DefaultPageSize)
		if err != nil && IsIncomplete(err) {
			incomplete = true
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	spend := AggregateCategorySpend(expenses, categories)

	return &SpendingBreakdown{
		StartDate:  startDate,
		EndDate:    endDate,
		Categories: spend.Entries,
		TotalSpend: spend.TotalSpend,
		Trend:      DailySpendingTrend(expenses),
		Incomplete: incomplete,
	}, nil
}

// AverageSpend fetches the category list and the server summaries
// concurrently and partitions the rows into expense and income groups.
func (s *reportService) AverageSpend(ctx context.Context, startDate, endDate string) (*AverageSpendReport, error) {
	var (
		categories []*Category
		summaries  []*CategorySpendSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		categories, err = s.client.Categories.List(gctx, nil)
		return err
	})

	g.Go(func() error {
		var err error
		summaries, err = s.client.Analytics.AverageSpend(gctx, startDate, endDate)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	expense, income := PartitionSummaries(summaries, categories)

	return &AverageSpendReport{
		StartDate: startDate,
		EndDate:   endDate,
		Expense:   expense,
		Income:    income,
	}, nil
}

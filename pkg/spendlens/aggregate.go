package spendlens

import (
	"sort"
	"time"
)

// MinTrendPoints is the smallest number of distinct dated buckets a trend
// chart needs to be meaningful. A shorter trend is a valid result, not an
// error; presentation decides between a chart and a placeholder.
const MinTrendPoints = 2

// CategorySpend is a per-category spending total for charting
type CategorySpend struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// CategorySpendReport holds the charted per-category totals. TotalSpend is
// the sum of the emitted entries, so it matches exactly what is charted.
type CategorySpendReport struct {
	Entries    []CategorySpend `json:"entries"`
	TotalSpend float64         `json:"totalSpend"`
}

// DailySpend is one chronological bucket of the spending trend
type DailySpend struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"totalAmount"`
}

// AggregateCategorySpend computes per-category spending totals from a
// transaction set. Only expenses with a positive amount, a known category
// and a spend-eligible type (Need or Want) are counted; Investment and
// Income are excluded from spending aggregates. Expenses whose category id
// is unknown are dropped rather than attributed to a synthetic bucket.
// Categories with zero spend are filtered from the result. Entries are
// sorted descending by total; ties keep category input order.
//
// The function is pure: identical inputs always produce identical output.
func AggregateCategorySpend(expenses []*Expense, categories []*Category) *CategorySpendReport {
	type bucket struct {
		name  string
		total float64
	}

	// Seed every known category so zero-spend categories are representable
	totals := make(map[string]*bucket, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == nil || c.ID == "" {
			continue
		}
		if _, ok := totals[c.ID]; ok {
			continue
		}
		totals[c.ID] = &bucket{name: c.Name}
		order = append(order, c.ID)
	}

	for _, e := range expenses {
		if e == nil || e.CategoryID == "" {
			continue
		}
		if !(e.Amount > 0) {
			continue
		}
		if !e.Type.SpendEligible() {
			continue
		}
		b, ok := totals[e.CategoryID]
		if !ok {
			// Unknown category: the amount is dropped from this aggregate
			continue
		}
		b.total += e.Amount
	}

	report := &CategorySpendReport{}
	for _, id := range order {
		b := totals[id]
		if b.total > 0 {
			report.Entries = append(report.Entries, CategorySpend{Name: b.name, Total: b.total})
			report.TotalSpend += b.total
		}
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].Total > report.Entries[j].Total
	})

	return report
}

// DailySpendingTrend buckets spending by calendar date (UTC) and returns the
// buckets in chronological order. The same eligibility rules as
// AggregateCategorySpend apply, except the category does not have to be
// known; expenses without a timestamp are skipped.
func DailySpendingTrend(expenses []*Expense) []DailySpend {
	totals := make(map[string]float64)

	for _, e := range expenses {
		if e == nil || e.Timestamp.IsZero() {
			continue
		}
		if !(e.Amount > 0) {
			continue
		}
		if !e.Type.SpendEligible() {
			continue
		}
		day := e.Timestamp.UTC().Format(calendarDateLayout)
		totals[day] += e.Amount
	}

	trend := make([]DailySpend, 0, len(totals))
	for day, total := range totals {
		trend = append(trend, DailySpend{Date: day, TotalAmount: total})
	}

	// Bucket keys parse back into comparable dates for the sort
	sort.Slice(trend, func(i, j int) bool {
		ti, _ := time.Parse(calendarDateLayout, trend[i].Date)
		tj, _ := time.Parse(calendarDateLayout, trend[j].Date)
		return ti.Before(tj)
	})

	return trend
}

// PartitionSummaries decorates server-computed summaries with each
// category's IsExpense flag and splits them into expense and income groups.
// No numeric recomputation happens here. Summaries whose category is not in
// the list keep their zero-value flag and land in the income group.
func PartitionSummaries(summaries []*CategorySpendSummary, categories []*Category) (expense, income []*CategorySpendSummary) {
	flags := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c != nil {
			flags[c.ID] = c.IsExpense
		}
	}

	for _, s := range summaries {
		if s == nil {
			continue
		}
		s.IsExpense = flags[s.CategoryID]
		if s.IsExpense {
			expense = append(expense, s)
		} else {
			income = append(income, s)
		}
	}

	return expense, income
}

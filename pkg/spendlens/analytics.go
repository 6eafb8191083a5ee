package spendlens

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/transport"
)

const averageSpendPath = "/api/analytics/average-spend"

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	client *Client
}

// AverageSpend retrieves per-category average-spend summaries for an
// inclusive calendar-date range. The start boundary is sent as UTC midnight
// and the end boundary as 23:59:59.999 UTC of its calendar day, so a
// same-day range still covers the whole day.
func (s *analyticsService) AverageSpend(ctx context.Context, startDate, endDate string) ([]*CategorySpendSummary, error) {
	query := url.Values{}
	query.Set("startDate", DayStartUTC(startDate))
	query.Set("endDate", DayEndUTC(endDate))

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   averageSpendPath,
		Query:  query,
	}

	var page Page[*CategorySpendSummary]
	if err := s.client.do(ctx, "analytics.average_spend", req, &page); err != nil {
		return nil, errors.Wrap(err, "failed to get average spend")
	}

	return page.Items, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// SalesReport fetches the aggregated sales report, optionally bounded by an
// inclusive date range. A nil range means all time.
func (c *Client) SalesReport(ctx context.Context, dr *domain.DateRange) (models.SalesReport, error) {
	params := url.Values{}
	if dr != nil {
		params.Set("startDate", dr.Start)
		params.Set("endDate", dr.End)
	}
	var data models.SalesReport
	err := c.request(ctx, http.MethodGet, "/api/admin/reports/sales", params, nil, &data)
	return data, err
}

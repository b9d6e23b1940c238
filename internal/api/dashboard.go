package api

import (
	"context"
	"net/http"

	"backoffice/internal/domain/models"
)

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var data models.DashboardStats
	err := c.request(ctx, http.MethodGet, "/api/admin/dashboard", nil, nil, &data)
	return data, err
}

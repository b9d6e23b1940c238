package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ListOrders fetches one admin order page. Filters: status; plus search and
// date range.
func (c *Client) ListOrders(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Order], error) {
	return fetchList[models.Order](ctx, c, "/api/orders/admin/all", "orders", q)
}

func (c *Client) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	var data struct {
		Order models.Order `json:"order"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &data)
	return data.Order, err
}

// ProcessOrder performs one of the manual order actions: activate, decline
// or wrong_serial. The server returns the updated order.
func (c *Client) ProcessOrder(ctx context.Context, id int64, action, notes string) (models.Order, error) {
	body := map[string]string{
		"action": action,
		"notes":  notes,
	}
	var data struct {
		Order models.Order `json:"order"`
	}
	err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/process", id), nil, body, &data)
	return data.Order, err
}

func (c *Client) OrderStats(ctx context.Context) (models.OrderStats, error) {
	var data models.OrderStats
	err := c.request(ctx, http.MethodGet, "/api/orders/admin/stats", nil, nil, &data)
	return data, err
}

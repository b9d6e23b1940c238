package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func (c *Client) ListCustomers(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Customer], error) {
	return fetchList[models.Customer](ctx, c, "/api/admin/customers", "customers", q)
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	var data struct {
		Customer models.Customer `json:"customer"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/admin/customers/%d", id), nil, nil, &data)
	return data.Customer, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, input models.CustomerUpdate) (models.Customer, error) {
	var data struct {
		Customer models.Customer `json:"customer"`
	}
	err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/admin/customers/%d", id), nil, input, &data)
	return data.Customer, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/customers/%d", id), nil, nil, nil)
}

func (c *Client) CustomerStats(ctx context.Context) (models.CustomerStats, error) {
	var data models.CustomerStats
	err := c.request(ctx, http.MethodGet, "/api/admin/customers/stats", nil, nil, &data)
	return data, err
}

// PendingRegistrations lists signups awaiting manual review. The queue is
// short by nature and not paginated.
func (c *Client) PendingRegistrations(ctx context.Context) ([]models.Registration, error) {
	var data struct {
		Registrations []models.Registration `json:"registrations"`
	}
	err := c.request(ctx, http.MethodGet, "/api/admin/customers/registrations/pending", nil, nil, &data)
	return data.Registrations, err
}

func (c *Client) ApproveRegistration(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPost, fmt.Sprintf("/api/admin/customers/%d/approve", id), nil, nil, nil)
}

func (c *Client) RejectRegistration(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodPost, fmt.Sprintf("/api/admin/customers/%d/reject", id), nil, nil, nil)
}

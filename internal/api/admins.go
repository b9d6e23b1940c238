package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func (c *Client) ListAdmins(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Admin], error) {
	return fetchList[models.Admin](ctx, c, "/api/admin/admins", "admins", q)
}

func (c *Client) GetAdmin(ctx context.Context, id int64) (models.Admin, error) {
	var data struct {
		Admin models.Admin `json:"admin"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/admin/admins/%d", id), nil, nil, &data)
	return data.Admin, err
}

func (c *Client) CreateAdmin(ctx context.Context, input models.AdminInput) (models.Admin, error) {
	var data struct {
		Admin models.Admin `json:"admin"`
	}
	err := c.request(ctx, http.MethodPost, "/api/admin/admins", nil, input, &data)
	return data.Admin, err
}

func (c *Client) UpdateAdmin(ctx context.Context, id int64, input models.AdminInput) (models.Admin, error) {
	var data struct {
		Admin models.Admin `json:"admin"`
	}
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/admin/admins/%d", id), nil, input, &data)
	return data.Admin, err
}

func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/admins/%d", id), nil, nil, nil)
}

// Roles lists the assignable admin roles.
func (c *Client) Roles(ctx context.Context) ([]string, error) {
	var data struct {
		Roles []string `json:"roles"`
	}
	err := c.request(ctx, http.MethodGet, "/api/admin/roles", nil, nil, &data)
	return data.Roles, err
}

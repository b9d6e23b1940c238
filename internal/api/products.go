package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func (c *Client) ListProducts(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Product], error) {
	return fetchList[models.Product](ctx, c, "/api/products", "products", q)
}

func (c *Client) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var data struct {
		Product models.Product `json:"product"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil, &data)
	return data.Product, err
}

func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var data struct {
		Product models.Product `json:"product"`
	}
	err := c.request(ctx, http.MethodPost, "/api/products", nil, input, &data)
	return data.Product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input models.ProductInput) (models.Product, error) {
	var data struct {
		Product models.Product `json:"product"`
	}
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), nil, input, &data)
	return data.Product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil, nil)
}

func (c *Client) UpdateStock(ctx context.Context, id int64, stock int) (models.Product, error) {
	body := map[string]int{"stock": stock}
	var data struct {
		Product models.Product `json:"product"`
	}
	err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d/stock", id), nil, body, &data)
	return data.Product, err
}

func (c *Client) ProductStats(ctx context.Context) (models.ProductStats, error) {
	var data models.ProductStats
	err := c.request(ctx, http.MethodGet, "/api/products/meta/stats", nil, nil, &data)
	return data, err
}

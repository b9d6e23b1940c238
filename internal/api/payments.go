package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func (c *Client) ListPayments(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Payment], error) {
	return fetchList[models.Payment](ctx, c, "/api/payments/admin/all", "payments", q)
}

func (c *Client) GetPayment(ctx context.Context, id int64) (models.Payment, error) {
	var data struct {
		Payment models.Payment `json:"payment"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/payments/%d", id), nil, nil, &data)
	return data.Payment, err
}

// ConfirmPaid marks a pending payment as settled, which moves the attached
// order to paid.
func (c *Client) ConfirmPaid(ctx context.Context, id int64, notes string) (models.Payment, error) {
	body := map[string]string{"notes": notes}
	var data struct {
		Payment models.Payment `json:"payment"`
	}
	err := c.request(ctx, http.MethodPost, fmt.Sprintf("/api/payments/admin/%d/confirm-paid", id), nil, body, &data)
	return data.Payment, err
}

// RefundPayment reverses a completed payment. Reason is required by the
// backend and surfaced back to the customer.
func (c *Client) RefundPayment(ctx context.Context, id int64, reason string) (models.Payment, error) {
	body := map[string]string{"reason": reason}
	var data struct {
		Payment models.Payment `json:"payment"`
	}
	err := c.request(ctx, http.MethodPost, fmt.Sprintf("/api/payments/admin/%d/refund", id), nil, body, &data)
	return data.Payment, err
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status string) (models.Payment, error) {
	body := map[string]string{"status": status}
	var data struct {
		Payment models.Payment `json:"payment"`
	}
	err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/payments/admin/%d/status", id), nil, body, &data)
	return data.Payment, err
}

func (c *Client) PaymentStats(ctx context.Context) (models.PaymentStats, error) {
	var data models.PaymentStats
	err := c.request(ctx, http.MethodGet, "/api/payments/admin/stats", nil, nil, &data)
	return data, err
}

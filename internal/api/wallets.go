package api

import (
	"context"
	"fmt"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func (c *Client) ListWallets(ctx context.Context, q domain.ListQuery) (domain.ListResult[models.Wallet], error) {
	return fetchList[models.Wallet](ctx, c, "/api/wallets/admin/all", "wallets", q)
}

func (c *Client) GetWallet(ctx context.Context, customerID int64) (models.Wallet, error) {
	var data struct {
		Wallet models.Wallet `json:"wallet"`
	}
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/wallets/admin/%d", customerID), nil, nil, &data)
	return data.Wallet, err
}

func (c *Client) AddFunds(ctx context.Context, customerID int64, amount float64, notes string) (models.Wallet, error) {
	return c.walletMutation(ctx, customerID, "add-funds", amount, notes)
}

// DeductFunds removes balance; the server rejects amounts exceeding the
// current balance with a business-rule error.
func (c *Client) DeductFunds(ctx context.Context, customerID int64, amount float64, notes string) (models.Wallet, error) {
	return c.walletMutation(ctx, customerID, "deduct-funds", amount, notes)
}

func (c *Client) walletMutation(ctx context.Context, customerID int64, op string, amount float64, notes string) (models.Wallet, error) {
	body := map[string]any{
		"amount": amount,
		"notes":  notes,
	}
	var data struct {
		Wallet models.Wallet `json:"wallet"`
	}
	err := c.request(ctx, http.MethodPost, fmt.Sprintf("/api/wallets/admin/%d/%s", customerID, op), nil, body, &data)
	return data.Wallet, err
}

func (c *Client) FreezeWallet(ctx context.Context, customerID int64, frozen bool, notes string) (models.Wallet, error) {
	body := map[string]any{
		"frozen": frozen,
		"notes":  notes,
	}
	var data struct {
		Wallet models.Wallet `json:"wallet"`
	}
	err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/wallets/admin/%d/freeze", customerID), nil, body, &data)
	return data.Wallet, err
}

func (c *Client) WalletStats(ctx context.Context) (models.WalletStats, error) {
	var data models.WalletStats
	err := c.request(ctx, http.MethodGet, "/api/wallets/admin/stats", nil, nil, &data)
	return data, err
}

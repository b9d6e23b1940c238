package api

import (
	"context"
	"net/http"

	"backoffice/internal/domain/models"
)

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginData is the successful login response body.
type LoginData struct {
	Tokens struct {
		AccessToken string `json:"accessToken"`
	} `json:"tokens"`
	Admin models.AdminIdentity `json:"admin"`
}

// Login exchanges credentials for a token and identity.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginData, error) {
	var data LoginData
	err := c.request(ctx, http.MethodPost, "/api/admin/login", nil, creds, &data)
	return data, err
}

// Profile returns the authenticated admin's account. Also used by the
// session store to verify a restored token.
func (c *Client) Profile(ctx context.Context) (models.Admin, error) {
	var data struct {
		Admin models.Admin `json:"admin"`
	}
	err := c.request(ctx, http.MethodGet, "/api/admin/profile", nil, nil, &data)
	return data.Admin, err
}

// ProfileInput is the editable subset of the caller's own account.
type ProfileInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (models.Admin, error) {
	var data struct {
		Admin models.Admin `json:"admin"`
	}
	err := c.request(ctx, http.MethodPut, "/api/admin/profile", nil, input, &data)
	return data.Admin, err
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	return c.request(ctx, http.MethodPost, "/api/admin/change-password", nil, body, nil)
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/domain/models"
)

// ListSettings returns all configuration entries. Settings are a small
// keyed collection, not a paginated resource.
func (c *Client) ListSettings(ctx context.Context) ([]models.Setting, error) {
	var data struct {
		Settings []models.Setting `json:"settings"`
	}
	err := c.request(ctx, http.MethodGet, "/api/settings", nil, nil, &data)
	return data.Settings, err
}

func (c *Client) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	var data struct {
		Setting models.Setting `json:"setting"`
	}
	err := c.request(ctx, http.MethodGet, "/api/settings/"+url.PathEscape(key), nil, nil, &data)
	return data.Setting, err
}

func (c *Client) CreateSetting(ctx context.Context, input models.Setting) (models.Setting, error) {
	var data struct {
		Setting models.Setting `json:"setting"`
	}
	err := c.request(ctx, http.MethodPost, "/api/settings", nil, input, &data)
	return data.Setting, err
}

func (c *Client) UpdateSetting(ctx context.Context, key, value, description string) (models.Setting, error) {
	body := map[string]string{
		"value":       value,
		"description": description,
	}
	var data struct {
		Setting models.Setting `json:"setting"`
	}
	err := c.request(ctx, http.MethodPut, "/api/settings/"+url.PathEscape(key), nil, body, &data)
	return data.Setting, err
}

func (c *Client) DeleteSetting(ctx context.Context, key string) error {
	return c.request(ctx, http.MethodDelete, "/api/settings/"+url.PathEscape(key), nil, nil, nil)
}

func (c *Client) PaynowConfig(ctx context.Context) (models.PaynowConfig, error) {
	var data struct {
		Config models.PaynowConfig `json:"config"`
	}
	err := c.request(ctx, http.MethodGet, "/api/settings/paynow", nil, nil, &data)
	return data.Config, err
}

func (c *Client) UpdatePaynowConfig(ctx context.Context, cfg models.PaynowConfig) (models.PaynowConfig, error) {
	var data struct {
		Config models.PaynowConfig `json:"config"`
	}
	err := c.request(ctx, http.MethodPut, "/api/settings/paynow/config", nil, cfg, &data)
	return data.Config, err
}

// TestPaynow asks the backend to verify gateway connectivity with the
// stored credentials.
func (c *Client) TestPaynow(ctx context.Context) (models.PaynowTestResult, error) {
	var data models.PaynowTestResult
	err := c.request(ctx, http.MethodPost, "/api/settings/paynow/test", nil, nil, &data)
	return data, err
}

package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"backoffice/internal/domain"
)

// FetchDocument retrieves an uploaded document (e.g. a payment proof image)
// by its server-provided relative path. The response is raw bytes, not the
// JSON envelope.
func (c *Client) FetchDocument(ctx context.Context, relPath string) ([]byte, error) {
	if !strings.HasPrefix(relPath, "/") {
		relPath = "/" + relPath
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+relPath, nil)
	if err != nil {
		return nil, err
	}
	if tok := c.currentToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return nil, domain.UnauthorizedError{}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.APIError{Status: resp.StatusCode, Message: "document fetch failed"}
	}
	return io.ReadAll(resp.Body)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/utils"

	"github.com/google/uuid"
)

// Client is the single outbound HTTP adapter. It attaches the bearer token,
// normalizes the {success, data, message} envelope and reports 401 responses
// through the unauthorized hook so the session store can tear itself down
// from anywhere in the app.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu             sync.RWMutex
	tokenSource    func() string
	onUnauthorized func()
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SetTokenSource registers the session store's token reader. The adapter
// reads the session but never mutates it directly.
func (c *Client) SetTokenSource(fn func() string) {
	c.mu.Lock()
	c.tokenSource = fn
	c.mu.Unlock()
}

// SetUnauthorizedHook registers the session invalidation callback. The hook
// must not issue requests of its own.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request issues one API call and decodes the envelope's data into out.
// Error mapping: transport -> NetworkError, 401 -> UnauthorizedError (after
// invalidation), other non-2xx -> APIError with the server message verbatim.
func (c *Client) request(ctx context.Context, method, path string, params url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if tok := c.currentToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		utils.LogEvent(reqID, "api", "transport_error", method+" "+path)
		return domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return domain.UnauthorizedError{Msg: serverMessage(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.APIError{Status: resp.StatusCode, Message: "malformed server response"}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request rejected"
		}
		return domain.APIError{Status: resp.StatusCode, Message: msg}
	}
	if out != nil {
		if len(env.Data) == 0 {
			return domain.APIError{Status: resp.StatusCode, Message: "malformed server response: missing data"}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return domain.APIError{Status: resp.StatusCode, Message: "malformed server response: " + err.Error()}
		}
	}
	return nil
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	fn := c.tokenSource
	c.mu.RUnlock()
	if fn == nil {
		return ""
	}
	return strings.TrimSpace(fn())
}

// invalidate fires the unauthorized hook once per live session. A 401 seen
// after the token was already cleared is swallowed so one teardown cannot
// cascade into another.
func (c *Client) invalidate() {
	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()
	if hook == nil {
		return
	}
	if c.currentToken() == "" {
		return
	}
	hook()
}

// serverMessage pulls the error message out of a failure payload, falling
// back to a generic line when the body is not the expected shape.
func serverMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	var loose struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &loose); err == nil && loose.Error != "" {
		return loose.Error
	}
	return "request failed"
}

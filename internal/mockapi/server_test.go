package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/config"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := config.Env{MockJWTKey: "test-signing-key", GinMode: gin.TestMode}
	srv := httptest.NewServer(NewServer(env).Router(env))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func loginAs(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	status, env := call(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": username, "password": password,
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("login %s: status=%d message=%s", username, status, env.Message)
	}
	var data struct {
		Tokens struct {
			AccessToken string `json:"accessToken"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	return data.Tokens.AccessToken
}

func TestLoginAndProtectedAccess(t *testing.T) {
	srv := newTestServer(t)

	status, env := call(t, srv, http.MethodGet, "/api/orders/admin/all", "", nil)
	if status != http.StatusUnauthorized || env.Success {
		t.Fatalf("unauthenticated list: status=%d success=%t", status, env.Success)
	}

	token := loginAs(t, srv, "superadmin", "superadmin123")
	status, env = call(t, srv, http.MethodGet, "/api/orders/admin/all", token, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("authenticated list: status=%d message=%s", status, env.Message)
	}
}

func TestOrderListFilterAndPagination(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "superadmin", "superadmin123")

	_, env := call(t, srv, http.MethodGet, "/api/orders/admin/all?status=paid&page=1&limit=1", token, nil)
	var data struct {
		Orders []struct {
			Status string `json:"status"`
		} `json:"orders"`
		Pagination struct {
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Orders) != 1 || data.Orders[0].Status != "paid" {
		t.Fatalf("filtered page: %+v", data.Orders)
	}
	if data.Pagination.Total != 2 || data.Pagination.Pages != 2 {
		t.Fatalf("pagination: %+v", data.Pagination)
	}
}

func TestProcessOrderRules(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "superadmin", "superadmin123")

	status, env := call(t, srv, http.MethodPatch, "/api/orders/1/process", token, map[string]string{
		"action": "activate",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("activate paid order: status=%d message=%s", status, env.Message)
	}

	// Already activated: processing again is a business rejection.
	status, env = call(t, srv, http.MethodPatch, "/api/orders/1/process", token, map[string]string{
		"action": "activate",
	})
	if status != http.StatusBadRequest || env.Success {
		t.Fatalf("re-process: status=%d success=%t", status, env.Success)
	}
}

func TestDeductExceedingBalanceRejected(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "superadmin", "superadmin123")

	status, env := call(t, srv, http.MethodPost, "/api/wallets/admin/2/deduct-funds", token, map[string]any{
		"amount": 10_000.0,
	})
	if status != http.StatusBadRequest || env.Success {
		t.Fatalf("overdraft deduct: status=%d success=%t", status, env.Success)
	}
	if env.Message != "Amount exceeds wallet balance" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestAdminManagementRequiresSuperAdmin(t *testing.T) {
	srv := newTestServer(t)

	plain := loginAs(t, srv, "admin", "admin12345")
	status, _ := call(t, srv, http.MethodGet, "/api/admin/admins", plain, nil)
	if status != http.StatusForbidden {
		t.Fatalf("plain admin listed admins: status=%d", status)
	}

	super := loginAs(t, srv, "superadmin", "superadmin123")
	status, env := call(t, srv, http.MethodGet, "/api/admin/admins", super, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("super admin denied: status=%d message=%s", status, env.Message)
	}
}

func TestApproveRegistrationCreatesCustomerAndWallet(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "superadmin", "superadmin123")

	status, env := call(t, srv, http.MethodPost, "/api/admin/customers/1/approve", token, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("approve: status=%d message=%s", status, env.Message)
	}

	// The new customer gets a wallet keyed by its id.
	status, env = call(t, srv, http.MethodGet, "/api/wallets/admin/5", token, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("wallet for approved customer: status=%d message=%s", status, env.Message)
	}

	// Re-reviewing is rejected.
	status, _ = call(t, srv, http.MethodPost, "/api/admin/customers/1/approve", token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("double review: status=%d", status)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "superadmin", "superadmin123")

	status, env := call(t, srv, http.MethodPost, "/api/settings", token, map[string]string{
		"key": "welcome_message", "value": "hello", "description": "bot greeting",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("create: status=%d message=%s", status, env.Message)
	}

	status, env = call(t, srv, http.MethodPut, "/api/settings/welcome_message", token, map[string]string{
		"value": "hi there",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("update: status=%d message=%s", status, env.Message)
	}

	status, env = call(t, srv, http.MethodDelete, "/api/settings/welcome_message", token, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("delete: status=%d message=%s", status, env.Message)
	}

	status, _ = call(t, srv, http.MethodGet, "/api/settings/welcome_message", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("deleted setting still readable: status=%d", status)
	}
}

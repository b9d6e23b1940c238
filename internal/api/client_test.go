package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"backoffice/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL}), srv
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]any{"success": success, "message": message}
	if data != nil {
		payload["data"] = data
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func TestRequestAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, 200, true, "", map[string]any{"ok": true})
	}))
	c.SetTokenSource(func() string { return "tok-123" })

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.request(context.Background(), http.MethodGet, "/api/ping", nil, nil, &out); err != nil {
		t.Fatalf("request: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("X-Request-ID not set")
	}
	if !out.OK {
		t.Fatal("data not decoded")
	}
}

func TestRequestWithoutTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, 200, true, "", map[string]any{})
	}))

	if err := c.request(context.Background(), http.MethodGet, "/api/ping", nil, nil, nil); err != nil {
		t.Fatalf("request: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestEnvelopeFailureBecomesAPIErrorVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, false, "Amount exceeds wallet balance", nil)
	}))

	err := c.request(context.Background(), http.MethodPost, "/api/x", nil, nil, nil)
	var apiErr domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "Amount exceeds wallet balance" {
		t.Fatalf("message = %q, want server text verbatim", apiErr.Message)
	}
}

func TestNon2xxBecomesAPIErrorWithStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, "Refund reason is required", nil)
	}))

	err := c.request(context.Background(), http.MethodPost, "/api/x", nil, nil, nil)
	var apiErr domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Refund reason is required" {
		t.Fatalf("got %d %q", apiErr.Status, apiErr.Message)
	}
	if !domain.IsBusinessRejection(err) {
		t.Fatal("400 not classified as business rejection")
	}
}

func TestUnauthorizedFiresHookOncePerSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Session expired, please log in again", nil)
	}))

	token := atomic.Value{}
	token.Store("tok")
	var hookCalls atomic.Int32
	c.SetTokenSource(func() string { return token.Load().(string) })
	c.SetUnauthorizedHook(func() {
		hookCalls.Add(1)
		token.Store("") // the session store clears the token on teardown
	})

	err := c.request(context.Background(), http.MethodGet, "/api/x", nil, nil, nil)
	if !domain.IsUnauthorized(err) {
		t.Fatalf("err = %v, want UnauthorizedError", err)
	}
	if hookCalls.Load() != 1 {
		t.Fatalf("hook calls = %d, want 1", hookCalls.Load())
	}

	// A second 401 with the token already cleared must not re-fire the hook.
	_ = c.request(context.Background(), http.MethodGet, "/api/x", nil, nil, nil)
	if hookCalls.Load() != 1 {
		t.Fatalf("hook calls = %d after second 401, want still 1", hookCalls.Load())
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore
	c := New(Config{BaseURL: srv.URL})

	err := c.request(context.Background(), http.MethodGet, "/api/x", nil, nil, nil)
	if !domain.IsNetwork(err) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
	if got := domain.ErrorMessage(err); got != "connection error, please try again" {
		t.Fatalf("message = %q", got)
	}
}

func TestFetchListEncodesQueryAndDerivesPages(t *testing.T) {
	var gotQuery map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		writeEnvelope(w, 200, true, "", map[string]any{
			"orders":     []map[string]any{{"id": 1}, {"id": 2}},
			"pagination": map[string]any{"total": 45, "pages": 3},
		})
	}))

	q := domain.DefaultQuery(20)
	q.Page = 2
	q.Filters["status"] = "paid"
	q.Search = "tendai"
	q.DateRange = &domain.DateRange{Start: "2026-01-01", End: "2026-01-31"}

	type order struct {
		ID int64 `json:"id"`
	}
	res, err := fetchList[order](context.Background(), c, "/api/orders/admin/all", "orders", q)
	if err != nil {
		t.Fatalf("fetchList: %v", err)
	}

	want := map[string]string{
		"page": "2", "limit": "20", "status": "paid", "search": "tendai",
		"startDate": "2026-01-01", "endDate": "2026-01-31",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if len(res.Items) != 2 || res.Total != 45 {
		t.Fatalf("items=%d total=%d", len(res.Items), res.Total)
	}
	if res.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want ceil(45/20)=3", res.TotalPages)
	}
}

func TestFetchListEmptyCollection(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, true, "", map[string]any{
			"orders":     []any{},
			"pagination": map[string]any{"total": 0, "pages": 0},
		})
	}))

	type order struct {
		ID int64 `json:"id"`
	}
	res, err := fetchList[order](context.Background(), c, "/api/orders/admin/all", "orders", domain.DefaultQuery(20))
	if err != nil {
		t.Fatalf("fetchList: %v", err)
	}
	if res.Total != 0 || res.TotalPages != 0 || len(res.Items) != 0 {
		t.Fatalf("empty collection: %+v", res)
	}
}

func TestFetchListMalformedShapeFailsFast(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, true, "", map[string]any{"unexpected": []any{}})
	}))

	type order struct{}
	_, err := fetchList[order](context.Background(), c, "/api/orders/admin/all", "orders", domain.DefaultQuery(20))
	var apiErr domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError for malformed list shape", err)
	}
}

func TestFetchDocumentReturnsRawBytes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploads/docs/reg-1.jpg" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-9" {
			t.Fatalf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	c.SetTokenSource(func() string { return "tok-9" })

	raw, err := c.FetchDocument(context.Background(), "uploads/docs/reg-1.jpg")
	if err != nil {
		t.Fatalf("FetchDocument: %v", err)
	}
	if len(raw) != 3 || raw[0] != 0xFF {
		t.Fatalf("bytes = %v", raw)
	}
}

func TestFetchDocumentUnauthorizedTearsDown(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	c.SetTokenSource(func() string { return "stale" })

	var hooks atomic.Int32
	c.SetUnauthorizedHook(func() { hooks.Add(1) })

	_, err := c.FetchDocument(context.Background(), "/uploads/docs/reg-1.jpg")
	var ue domain.UnauthorizedError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v", err)
	}
	if hooks.Load() != 1 {
		t.Fatalf("hook fired %d times", hooks.Load())
	}
}

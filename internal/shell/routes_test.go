package shell

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/config"
	"backoffice/internal/mockapi"
	"backoffice/internal/session"

	"github.com/gin-gonic/gin"
)

func newShell(t *testing.T) (*Router, *session.Store, *api.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := config.Env{MockJWTKey: "test-signing-key", GinMode: gin.TestMode}
	backend := httptest.NewServer(mockapi.NewServer(env).Router(env))
	t.Cleanup(backend.Close)

	client := api.New(api.Config{BaseURL: backend.URL, Timeout: 5 * time.Second})
	sessions := session.NewStore(client, t.TempDir())
	return NewRouter(sessions), sessions, client
}

func TestGuardSendsAnonymousVisitorsToLogin(t *testing.T) {
	r, _, _ := newShell(t)

	for _, to := range []Route{RouteDashboard, RouteOrders, RouteSettings, RouteAdmins} {
		if got := r.Navigate(to); got != RouteLogin {
			t.Fatalf("Navigate(%s) without a session = %s", to, got)
		}
	}
	if r.Navigate(RouteLogin) != RouteLogin {
		t.Fatal("login route blocked")
	}
}

func TestAdminsRouteRequiresSuperAdmin(t *testing.T) {
	r, sessions, _ := newShell(t)

	if res := sessions.Login(context.Background(), "admin", "admin12345"); !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}
	if got := r.Navigate(RouteAdmins); got != RouteDashboard {
		t.Fatalf("plain admin landed on %s, want dashboard", got)
	}

	sessions.Logout()
	if res := sessions.Login(context.Background(), "superadmin", "superadmin123"); !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}
	if got := r.Navigate(RouteAdmins); got != RouteAdmins {
		t.Fatalf("super admin landed on %s", got)
	}
}

func TestInvalidatedSessionSnapsBackToLogin(t *testing.T) {
	r, sessions, _ := newShell(t)

	if res := sessions.Login(context.Background(), "admin", "admin12345"); !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}
	if got := r.Navigate(RouteOrders); got != RouteOrders {
		t.Fatalf("Navigate(orders) = %s", got)
	}

	sessions.Invalidate()
	if got := r.Current(); got != RouteLogin {
		t.Fatalf("Current() after invalidation = %s", got)
	}
}

func TestCurrentReappliesGuard(t *testing.T) {
	r, sessions, _ := newShell(t)

	if res := sessions.Login(context.Background(), "admin", "admin12345"); !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}
	r.Navigate(RoutePayments)

	// Logout without navigating; Current must not keep showing payments.
	sessions.Logout()
	if got := r.Current(); got != RouteLogin {
		t.Fatalf("Current() after logout = %s", got)
	}
}

func TestNavHidesSuperAdminEntries(t *testing.T) {
	for _, item := range Nav("admin") {
		if item.Route == RouteAdmins {
			t.Fatal("Admin Accounts shown to a plain admin")
		}
	}

	var found bool
	for _, item := range Nav("super_admin") {
		if item.Route == RouteAdmins {
			found = true
		}
	}
	if !found {
		t.Fatal("Admin Accounts hidden from super admin")
	}
}

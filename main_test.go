package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/config"
	"backoffice/internal/controller"
	"backoffice/internal/domain/models"
	"backoffice/internal/mockapi"
	"backoffice/internal/session"
	"backoffice/internal/shell"

	"github.com/gin-gonic/gin"
)

func newTestApp(t *testing.T) *app {
	return newTestAppWith(t, nil)
}

// newTestAppWith builds the full shell wiring against a mock backend, signed
// in as the super admin. wrap, when set, intercepts backend traffic.
func newTestAppWith(t *testing.T, wrap func(http.Handler) http.Handler) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := config.Env{
		MockJWTKey:   "test-signing-key",
		GinMode:      gin.TestMode,
		StateDir:     t.TempDir(),
		HTTPTimeout:  5 * time.Second,
		BadgePeriod:  time.Hour,
		DefaultLimit: 20,
	}

	var handler http.Handler = mockapi.NewServer(env).Router(env)
	if wrap != nil {
		handler = wrap(handler)
	}
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	env.APIBaseURL = backend.URL

	client := api.New(api.Config{BaseURL: backend.URL, Timeout: env.HTTPTimeout})
	sessions := session.NewStore(client, env.StateDir)
	a := &app{
		env:      env,
		client:   client,
		sessions: sessions,
		router:   shell.NewRouter(sessions),
		alerts:   controller.NewAlertCenter(),
	}
	a.buildControllers()

	if res := sessions.Login(context.Background(), "superadmin", "superadmin123"); !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}
	return a
}

func TestDeclineWithoutNotesNeverReachesBackend(t *testing.T) {
	var processCalls atomic.Int32
	a := newTestAppWith(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/process") {
				processCalls.Add(1)
			}
			next.ServeHTTP(w, r)
		})
	})
	ctx := context.Background()

	a.cmdProcessOrder(ctx, "decline", []string{"2"})
	a.cmdProcessOrder(ctx, "wrong-serial", []string{"2"})

	if processCalls.Load() != 0 {
		t.Fatalf("process endpoint hit %d times for noteless decline", processCalls.Load())
	}
	o, err := a.client.GetOrder(ctx, 2)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if o.Status != models.OrderPaid {
		t.Fatalf("order 2 status = %s, want still paid", o.Status)
	}
}

func TestActivateThroughFormPatchesListRow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.orders.Load(ctx)
	a.orders.Settle()

	a.cmdProcessOrder(ctx, "activate", []string{"1"})

	var found bool
	for _, o := range a.orders.Snapshot().Items {
		if o.ID == 1 {
			found = true
			if o.Status != models.OrderActivated {
				t.Fatalf("row status = %s, want activated", o.Status)
			}
		}
	}
	if !found {
		t.Fatal("order 1 missing from the loaded page")
	}
}

func TestRefundWithoutReasonStaysLocal(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdPaymentAction(ctx, "refund", []string{"1"})

	p, err := a.client.GetPayment(ctx, 1)
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if p.Status != models.PaymentCompleted {
		t.Fatalf("payment 1 status = %s, want still completed", p.Status)
	}
}

func TestRefundThroughFormPatchesListRow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.payments.Load(ctx)
	a.payments.Settle()

	a.cmdPaymentAction(ctx, "refund", []string{"2", "duplicate", "charge"})

	for _, p := range a.payments.Snapshot().Items {
		if p.ID == 2 {
			if p.Status != models.PaymentRefunded {
				t.Fatalf("row status = %s, want refunded", p.Status)
			}
			return
		}
	}
	t.Fatal("payment 2 missing from the loaded page")
}

func TestWalletDeductRejectsNonPositiveAmountLocally(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdWalletAction(ctx, "deduct", []string{"1", "0"})

	w, err := a.client.GetWallet(ctx, 1)
	if err != nil {
		t.Fatalf("GetWallet: %v", err)
	}
	if w.Balance != 42.75 {
		t.Fatalf("balance = %v, want untouched 42.75", w.Balance)
	}
}

func TestWalletOverdraftLeavesBalance(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdWalletAction(ctx, "deduct", []string{"2", "10"})

	w, err := a.client.GetWallet(ctx, 2)
	if err != nil {
		t.Fatalf("GetWallet: %v", err)
	}
	if w.Balance != 5.00 {
		t.Fatalf("balance = %v, want untouched 5.00", w.Balance)
	}
}

func TestAddFundsThroughFormPatchesListRow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.wallets.Load(ctx)
	a.wallets.Settle()

	a.cmdWalletAction(ctx, "addfunds", []string{"1", "7.25"})

	for _, w := range a.wallets.Snapshot().Items {
		if w.CustomerID == 1 {
			if w.Balance != 50.00 {
				t.Fatalf("row balance = %v, want 50.00", w.Balance)
			}
			return
		}
	}
	t.Fatal("wallet for customer 1 missing from the loaded page")
}

func TestStockCommandUpdatesProduct(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdStock(ctx, []string{"1", "9"})

	p, err := a.client.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p.Stock != 9 {
		t.Fatalf("stock = %d, want 9", p.Stock)
	}
}

func TestPaymentStatusCommand(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdPaymentStatus(ctx, []string{"4", models.PaymentCompleted})

	p, err := a.client.GetPayment(ctx, 4)
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if p.Status != models.PaymentCompleted {
		t.Fatalf("status = %s, want completed", p.Status)
	}
}

func TestNewProductCommandCreates(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdProductForm(ctx, "newproduct", []string{
		"name=Starter", "description=Starter_bundle", "category=bundles",
		"base=5", "selling=9.50", "stock=3", "active=true",
	})

	p, err := a.client.GetProduct(ctx, 5)
	if err != nil {
		t.Fatalf("created product not found: %v", err)
	}
	if p.Name != "Starter" || p.SellingPrice != 9.50 || p.Stock != 3 {
		t.Fatalf("created product = %+v", p)
	}
}

func TestEditProductCommandPreservesUnnamedFields(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	before, err := a.client.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}

	a.cmdProductForm(ctx, "editproduct", []string{"1", "selling=99"})

	after, err := a.client.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if after.SellingPrice != 99 {
		t.Fatalf("selling = %v, want 99", after.SellingPrice)
	}
	if after.Name != before.Name || after.Category != before.Category || after.Stock != before.Stock {
		t.Fatalf("untouched fields changed: before=%+v after=%+v", before, after)
	}
}

func TestEditCustomerCommandPreservesUnnamedFields(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	before, err := a.client.GetCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}

	a.cmdCustomerForm(ctx, []string{"1", "verified=true"})

	after, err := a.client.GetCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if !after.IsVerified {
		t.Fatal("customer 1 not verified after edit")
	}
	if after.Name != before.Name || after.Email != before.Email || after.Surname != before.Surname {
		t.Fatalf("untouched fields changed: before=%+v after=%+v", before, after)
	}
}

func TestSetCommandCreatesAndUpdates(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdSet(ctx, []string{"welcome_text", "hello", "there"})
	s, err := a.client.GetSetting(ctx, "welcome_text")
	if err != nil {
		t.Fatalf("created setting not found: %v", err)
	}
	if s.Value != "hello there" {
		t.Fatalf("value = %q", s.Value)
	}

	a.cmdSet(ctx, []string{"welcome_text", "hi"})
	s, err = a.client.GetSetting(ctx, "welcome_text")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if s.Value != "hi" {
		t.Fatalf("value after update = %q", s.Value)
	}
}

func TestPaynowCommandUpdatesConfig(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdPaynow(ctx, []string{"enabled=true", "merchant=M-100"})

	cfg, err := a.client.PaynowConfig(ctx)
	if err != nil {
		t.Fatalf("PaynowConfig: %v", err)
	}
	if !cfg.Enabled || cfg.MerchantID != "M-100" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestPasswdMismatchNeverReachesBackend(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.cmdPasswd(ctx, []string{"superadmin123", "brandnewpass", "different"})

	a.sessions.Logout()
	if res := a.sessions.Login(ctx, "superadmin", "superadmin123"); !res.Success {
		t.Fatalf("old password rejected after local-only mismatch: %s", res.Message)
	}
}

func TestDeleteWaitsForConfirmation(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.router.Navigate(shell.RouteProducts)
	a.products.Load(ctx)
	a.products.Settle()

	a.cmdDelete(ctx, []string{"4"})
	if !a.confirm.Active() {
		t.Fatal("delete did not open a confirmation")
	}
	if _, err := a.client.GetProduct(ctx, 4); err != nil {
		t.Fatalf("product deleted before confirmation: %v", err)
	}

	a.confirm.Accept()
	if _, err := a.client.GetProduct(ctx, 4); err == nil {
		t.Fatal("product still present after confirmation")
	}
}

func TestDeleteCancelRunsNothing(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.router.Navigate(shell.RouteProducts)
	a.cmdDelete(ctx, []string{"4"})
	a.confirm.Cancel()
	a.confirm.Accept() // a cancelled dialog must not fire late

	if _, err := a.client.GetProduct(ctx, 4); err != nil {
		t.Fatalf("product deleted after cancel: %v", err)
	}
}

func TestBadgeCountsWithSingleRowPage(t *testing.T) {
	var gotLimit, gotPage, gotStatus atomic.Value
	a := newTestAppWith(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/orders/admin/all" && r.URL.Query().Get("status") == models.OrderPaid {
				gotLimit.Store(r.URL.Query().Get("limit"))
				gotPage.Store(r.URL.Query().Get("page"))
				gotStatus.Store(r.URL.Query().Get("status"))
			}
			next.ServeHTTP(w, r)
		})
	})

	n, err := a.pendingOrderCount(context.Background())
	if err != nil {
		t.Fatalf("pendingOrderCount: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2 paid orders", n)
	}
	if gotLimit.Load() != "1" || gotPage.Load() != "1" {
		t.Fatalf("query limit=%v page=%v, want a single-row first page", gotLimit.Load(), gotPage.Load())
	}
	if gotStatus.Load() != models.OrderPaid {
		t.Fatalf("status filter = %v", gotStatus.Load())
	}
}

func TestReviewConfirmationSpellsOutAction(t *testing.T) {
	if got := reviewConfirmation("approve"); got != "Registration approved." {
		t.Fatalf("approve message = %q", got)
	}
	if got := reviewConfirmation("reject"); got != "Registration rejected." {
		t.Fatalf("reject message = %q", got)
	}
}

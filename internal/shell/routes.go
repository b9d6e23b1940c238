package shell

import (
	"sync"

	"backoffice/internal/domain/models"
	"backoffice/internal/session"
)

// Route names the screens the console shell can show.
type Route string

const (
	RouteLogin         Route = "login"
	RouteDashboard     Route = "dashboard"
	RouteOrders        Route = "orders"
	RouteCustomers     Route = "customers"
	RouteRegistrations Route = "registrations"
	RoutePayments      Route = "payments"
	RouteWallets       Route = "wallets"
	RouteProducts      Route = "products"
	RouteAdmins        Route = "admins"
	RouteSettings      Route = "settings"
	RouteReports       Route = "reports"
	RouteProfile       Route = "profile"
)

// NavItem is one entry in the sidebar. SuperAdminOnly entries are hidden from
// lesser roles but the server still enforces access.
type NavItem struct {
	Route          Route
	Label          string
	SuperAdminOnly bool
}

var navItems = []NavItem{
	{Route: RouteDashboard, Label: "Dashboard"},
	{Route: RouteOrders, Label: "Orders"},
	{Route: RouteCustomers, Label: "Customers"},
	{Route: RouteRegistrations, Label: "Registrations"},
	{Route: RoutePayments, Label: "Payments"},
	{Route: RouteWallets, Label: "Wallets"},
	{Route: RouteProducts, Label: "Products"},
	{Route: RouteAdmins, Label: "Admin Accounts", SuperAdminOnly: true},
	{Route: RouteSettings, Label: "Settings"},
	{Route: RouteReports, Label: "Reports"},
	{Route: RouteProfile, Label: "My Profile"},
}

// Nav returns the sidebar entries visible to the given role.
func Nav(role string) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if item.SuperAdminOnly && role != models.RoleSuperAdmin {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Router decides which route is actually shown. Every route except login is
// guarded: without an authenticated session the guard answers login, and a
// session invalidation snaps the current route back to login until the next
// successful sign-in.
type Router struct {
	sessions *session.Store

	mu      sync.Mutex
	current Route
}

func NewRouter(sessions *session.Store) *Router {
	r := &Router{sessions: sessions, current: RouteLogin}
	sessions.OnInvalidate(func() {
		r.mu.Lock()
		r.current = RouteLogin
		r.mu.Unlock()
	})
	return r
}

// Navigate requests a route change and returns the route that was actually
// applied after the guard.
func (r *Router) Navigate(to Route) Route {
	applied := r.Guard(to)
	r.mu.Lock()
	r.current = applied
	r.mu.Unlock()
	return applied
}

// Guard maps a requested route to the one an unauthenticated visitor is
// allowed to see.
func (r *Router) Guard(to Route) Route {
	if to == RouteLogin {
		return RouteLogin
	}
	if !r.sessions.IsAuthenticated() {
		return RouteLogin
	}
	if to == RouteAdmins {
		sess := r.sessions.Current()
		if sess.Admin.Role != models.RoleSuperAdmin {
			return RouteDashboard
		}
	}
	return to
}

// Current re-applies the guard so a session that died since the last
// Navigate still lands on login.
func (r *Router) Current() Route {
	r.mu.Lock()
	cur := r.current
	r.mu.Unlock()
	return r.Guard(cur)
}

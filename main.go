package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/config"
	"backoffice/internal/controller"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/forms"
	"backoffice/internal/services/reportexport"
	"backoffice/internal/session"
	"backoffice/internal/shell"
	"backoffice/internal/utils"
)

// listOps is the type-erased surface shared by every list controller, so
// paging and filtering commands work on whichever screen is active.
type listOps interface {
	Load(ctx context.Context)
	Refresh(ctx context.Context)
	SetPage(ctx context.Context, page int)
	SetPageSize(ctx context.Context, size int)
	SetFilter(ctx context.Context, key, value string)
	SetSearch(ctx context.Context, term string)
	ClearSearch(ctx context.Context)
	SetDateRange(ctx context.Context, dr domain.DateRange) error
	ClearDateRange(ctx context.Context)
	Settle()
}

type pane struct {
	ops    listOps
	render func()
}

type app struct {
	env      config.Env
	client   *api.Client
	sessions *session.Store
	router   *shell.Router
	alerts   *controller.AlertCenter
	badge    *controller.Badge

	orders    *controller.List[models.Order]
	customers *controller.List[models.Customer]
	payments  *controller.List[models.Payment]
	wallets   *controller.List[models.Wallet]
	products  *controller.List[models.Product]
	admins    *controller.List[models.Admin]

	orderForm    *forms.OrderProcessForm
	refundForm   *forms.RefundForm
	walletForm   *forms.WalletFundsForm
	productForm  *forms.ProductForm
	customerForm *forms.CustomerForm
	adminForm    *forms.AdminForm
	settingForm  *forms.SettingForm
	profileForm  *forms.ProfileForm
	passwordForm *forms.ChangePasswordForm
	confirm      forms.ConfirmDialog

	panes map[shell.Route]pane
}

func main() {
	env := config.LoadEnv()

	client := api.New(api.Config{BaseURL: env.APIBaseURL, Timeout: env.HTTPTimeout})
	sessions := session.NewStore(client, env.StateDir)

	a := &app{
		env:      env,
		client:   client,
		sessions: sessions,
		router:   shell.NewRouter(sessions),
		alerts:   controller.NewAlertCenter(),
	}
	a.buildControllers()

	ctx := context.Background()

	fmt.Println("Loading session...")
	sessions.Restore(ctx)
	if sessions.IsAuthenticated() {
		sess := sessions.Current()
		fmt.Printf("Signed in as %s (%s)\n", sess.Admin.Username, sess.Admin.Role)
		a.router.Navigate(shell.RouteDashboard)
		a.badge.Start(ctx)
	} else {
		fmt.Println("Not signed in. Use: login <username> <password>")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s]> ", a.router.Current())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		a.dispatch(ctx, line)
		a.printAlerts()
	}

	a.badge.Stop()
}

func (a *app) buildControllers() {
	size := a.env.DefaultLimit

	a.orders = controller.NewList(a.client.ListOrders, a.alerts, size)
	a.customers = controller.NewList(a.client.ListCustomers, a.alerts, size)
	a.payments = controller.NewList(a.client.ListPayments, a.alerts, size)
	a.wallets = controller.NewList(a.client.ListWallets, a.alerts, size)
	a.products = controller.NewList(a.client.ListProducts, a.alerts, size)
	a.admins = controller.NewList(a.client.ListAdmins, a.alerts, size)

	a.orderForm = forms.NewOrderProcessForm(a.client)
	a.refundForm = forms.NewRefundForm(a.client)
	a.walletForm = forms.NewWalletFundsForm(a.client)
	a.productForm = forms.NewProductForm(a.client)
	a.customerForm = forms.NewCustomerForm(a.client)
	a.adminForm = forms.NewAdminForm(a.client)
	a.settingForm = forms.NewSettingForm(a.client)
	a.profileForm = forms.NewProfileForm(a.client)
	a.passwordForm = forms.NewChangePasswordForm(a.client)

	a.badge = controller.NewBadge(a.pendingOrderCount, a.env.BadgePeriod)

	a.panes = map[shell.Route]pane{
		shell.RouteOrders:    {ops: a.orders, render: func() { renderOrders(a.orders.Snapshot()) }},
		shell.RouteCustomers: {ops: a.customers, render: func() { renderCustomers(a.customers.Snapshot()) }},
		shell.RoutePayments:  {ops: a.payments, render: func() { renderPayments(a.payments.Snapshot()) }},
		shell.RouteWallets:   {ops: a.wallets, render: func() { renderWallets(a.wallets.Snapshot()) }},
		shell.RouteProducts:  {ops: a.products, render: func() { renderProducts(a.products.Snapshot()) }},
		shell.RouteAdmins:    {ops: a.admins, render: func() { renderAdmins(a.admins.Snapshot()) }},
	}
}

// pendingOrderCount asks for the paid-order total only. A single-row page
// keeps the poll cheap; only the pagination total is read.
func (a *app) pendingOrderCount(ctx context.Context) (int, error) {
	q := domain.ListQuery{
		Page:     1,
		PageSize: 1,
		Filters:  map[string]string{"status": models.OrderPaid},
	}
	res, err := a.client.ListOrders(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

func (a *app) activePane() (pane, bool) {
	p, ok := a.panes[a.router.Current()]
	return p, ok
}

func (a *app) dispatch(ctx context.Context, line string) {
	args := strings.Fields(line)
	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "help":
		printHelp()
	case "login":
		a.cmdLogin(ctx, rest)
	case "logout":
		a.badge.Stop()
		a.sessions.Logout()
		a.router.Navigate(shell.RouteLogin)
		fmt.Println("Signed out.")
	case "whoami":
		a.cmdWhoami()
	case "profile":
		a.cmdProfile(ctx, rest)
	case "passwd":
		a.cmdPasswd(ctx, rest)
	case "nav":
		a.cmdNav()
	case "go":
		a.cmdGo(ctx, rest)
	case "list", "show":
		a.cmdShow(ctx)
	case "view":
		a.cmdView(ctx, rest)
	case "stats":
		a.cmdStats(ctx)
	case "page", "size", "filter", "search", "clearsearch", "range", "clearrange", "refresh":
		a.cmdListOp(ctx, cmd, rest)
	case "activate", "decline", "wrong-serial":
		a.cmdProcessOrder(ctx, cmd, rest)
	case "confirm-paid", "refund":
		a.cmdPaymentAction(ctx, cmd, rest)
	case "payment-status":
		a.cmdPaymentStatus(ctx, rest)
	case "addfunds", "deduct", "freeze", "unfreeze":
		a.cmdWalletAction(ctx, cmd, rest)
	case "approve", "reject":
		a.cmdReviewRegistration(ctx, cmd, rest)
	case "newproduct", "editproduct":
		a.cmdProductForm(ctx, cmd, rest)
	case "stock":
		a.cmdStock(ctx, rest)
	case "editcustomer":
		a.cmdCustomerForm(ctx, rest)
	case "newadmin", "editadmin":
		a.cmdAdminForm(ctx, cmd, rest)
	case "set":
		a.cmdSet(ctx, rest)
	case "paynow":
		a.cmdPaynow(ctx, rest)
	case "delete":
		a.cmdDelete(ctx, rest)
	case "confirm":
		if !a.confirm.Active() {
			fmt.Println("Nothing to confirm.")
			return
		}
		a.confirm.Accept()
	case "cancel":
		a.confirm.Cancel()
		fmt.Println("Cancelled.")
	case "registrations":
		a.cmdRegistrations(ctx)
	case "settings":
		a.cmdSettings(ctx)
	case "dashboard":
		a.cmdDashboard(ctx)
	case "export":
		a.cmdExport(ctx, rest)
	case "doc":
		a.cmdDoc(ctx, rest)
	case "badge":
		fmt.Printf("Orders awaiting activation: %d\n", a.badge.Count())
	default:
		fmt.Println("Unknown command. Try: help")
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: login <username> <password>")
		return
	}
	res := a.sessions.Login(ctx, args[0], args[1])
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	sess := a.sessions.Current()
	fmt.Printf("Welcome, %s (%s)\n", sess.Admin.DisplayName, sess.Admin.Role)
	a.router.Navigate(shell.RouteDashboard)
	a.badge.Start(ctx)
}

func (a *app) cmdWhoami() {
	if !a.sessions.IsAuthenticated() {
		fmt.Println("Not signed in.")
		return
	}
	sess := a.sessions.Current()
	fmt.Printf("%s <%s> role=%s\n", sess.Admin.Username, sess.Admin.DisplayName, sess.Admin.Role)
}

func (a *app) cmdProfile(ctx context.Context, args []string) {
	current, err := a.client.Profile(ctx)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	if len(args) == 0 {
		fmt.Printf("  %s <%s> role=%s email=%s\n",
			current.Username, current.DisplayName, current.Role, current.Email)
		return
	}

	pairs, ok := kvPairs(args)
	if !ok {
		fmt.Println("Usage: profile [email=<addr>] [name=<display name>]")
		return
	}
	f := a.profileForm
	f.OpenFor(current, nil)
	for key, val := range pairs {
		switch key {
		case "email":
			f.Email = val
		case "name":
			f.DisplayName = val
		default:
			fmt.Printf("Unknown field %s.\n", key)
			f.Cancel()
			return
		}
	}
	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Profile updated.")
}

func (a *app) cmdPasswd(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: passwd <current> <new> <confirm>")
		return
	}
	f := a.passwordForm
	f.Open(nil)
	f.Current, f.New, f.Confirm = args[0], args[1], args[2]
	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Password changed.")
}

func (a *app) cmdNav() {
	role := a.sessions.Current().Admin.Role
	for _, item := range shell.Nav(role) {
		fmt.Printf("  %-14s %s\n", item.Route, item.Label)
	}
}

func (a *app) cmdGo(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: go <route>")
		return
	}
	applied := a.router.Navigate(shell.Route(args[0]))
	if applied != shell.Route(args[0]) {
		fmt.Printf("Redirected to %s\n", applied)
	}
	if p, ok := a.panes[applied]; ok {
		p.ops.Load(ctx)
		p.ops.Settle()
		p.render()
	}
}

func (a *app) cmdShow(ctx context.Context) {
	switch a.router.Current() {
	case shell.RouteDashboard:
		a.cmdDashboard(ctx)
	case shell.RouteRegistrations:
		a.cmdRegistrations(ctx)
	case shell.RouteSettings:
		a.cmdSettings(ctx)
	default:
		p, ok := a.activePane()
		if !ok {
			fmt.Println("Nothing to list here.")
			return
		}
		p.ops.Load(ctx)
		p.ops.Settle()
		p.render()
	}
}

func (a *app) cmdView(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: view <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}

	switch a.router.Current() {
	case shell.RouteOrders:
		o, err := a.client.GetOrder(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  order #%d  %s / %s\n  %s via %s, status %s\n",
			o.ID, o.CustomerName, o.ProductName,
			utils.FormatCurrency(o.Amount), o.PaymentMethod, o.Status)
		if o.SerialNumber != "" {
			fmt.Printf("  serial %s\n", o.SerialNumber)
		}
		if o.Notes != "" {
			fmt.Printf("  notes: %s\n", o.Notes)
		}
	case shell.RoutePayments:
		p, err := a.client.GetPayment(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  payment #%d  order=%d %s\n  %s via %s, status %s, ref %s\n",
			p.ID, p.OrderID, p.CustomerName,
			utils.FormatCurrency(p.Amount), p.Method, p.Status, p.Reference)
		if p.ProofPath != "" {
			fmt.Printf("  proof %s\n", p.ProofPath)
		}
		if p.RefundReason != "" {
			fmt.Printf("  refund reason: %s\n", p.RefundReason)
		}
	case shell.RouteWallets:
		w, err := a.client.GetWallet(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  wallet cust=%d %s  balance %s frozen=%t\n",
			w.CustomerID, w.CustomerName, utils.FormatCurrency(w.Balance), w.Frozen)
	case shell.RouteProducts:
		p, err := a.client.GetProduct(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		margin, pct := utils.Profit(p.SellingPrice, p.BasePrice)
		fmt.Printf("  product #%d %s (%s)\n  %s\n  base %s selling %s margin %s (%.1f%%) stock=%d active=%t\n",
			p.ID, p.Name, p.Category, p.Description,
			utils.FormatCurrency(p.BasePrice), utils.FormatCurrency(p.SellingPrice),
			utils.FormatCurrency(margin), pct, p.Stock, p.IsActive)
	case shell.RouteCustomers:
		c, err := a.client.GetCustomer(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  customer #%d %s %s <%s>\n  id-number=%s telegram=%s whatsapp=%s active=%t verified=%t\n",
			c.ID, c.Name, c.Surname, c.Email,
			c.IDNumber, c.TelegramID, c.WhatsappID, c.IsActive, c.IsVerified)
	case shell.RouteAdmins:
		ad, err := a.client.GetAdmin(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  admin #%d %s <%s> role=%s active=%t\n",
			ad.ID, ad.Username, ad.Email, ad.Role, ad.IsActive)
	default:
		fmt.Println("Nothing to view here.")
	}
}

func (a *app) cmdStats(ctx context.Context) {
	switch a.router.Current() {
	case shell.RouteOrders:
		s, err := a.client.OrderStats(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  total=%d pending=%d paid=%d activated=%d declined=%d\n",
			s.Total, s.Pending, s.Paid, s.Activated, s.Declined)
	case shell.RouteCustomers:
		s, err := a.client.CustomerStats(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  total=%d active=%d verified=%d\n", s.Total, s.Active, s.Verified)
	case shell.RoutePayments:
		s, err := a.client.PaymentStats(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  total=%d completed=%d refunded=%d volume=%s\n",
			s.Total, s.Completed, s.Refunded, utils.FormatCurrency(s.Volume))
	case shell.RouteWallets:
		s, err := a.client.WalletStats(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  total=%d frozen=%d balance=%s\n",
			s.Total, s.Frozen, utils.FormatCurrency(s.TotalBalance))
	case shell.RouteProducts:
		s, err := a.client.ProductStats(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  total=%d active=%d out-of-stock=%d\n", s.Total, s.Active, s.OutOfStock)
	default:
		fmt.Println("No stats for this screen.")
	}
}

func (a *app) cmdListOp(ctx context.Context, cmd string, args []string) {
	p, ok := a.activePane()
	if !ok {
		fmt.Println("No list on this screen.")
		return
	}

	switch cmd {
	case "page":
		n, err := strconv.Atoi(argOr(args, 0, ""))
		if err != nil {
			fmt.Println("Usage: page <n>")
			return
		}
		p.ops.SetPage(ctx, n)
	case "size":
		n, err := strconv.Atoi(argOr(args, 0, ""))
		if err != nil {
			fmt.Println("Usage: size <n>")
			return
		}
		p.ops.SetPageSize(ctx, n)
	case "filter":
		if len(args) < 1 {
			fmt.Println("Usage: filter <key> [value]")
			return
		}
		p.ops.SetFilter(ctx, args[0], argOr(args, 1, ""))
	case "search":
		p.ops.SetSearch(ctx, strings.Join(args, " "))
	case "clearsearch":
		p.ops.ClearSearch(ctx)
	case "range":
		if len(args) != 2 {
			fmt.Println("Usage: range <start> <end>  (YYYY-MM-DD)")
			return
		}
		if err := p.ops.SetDateRange(ctx, domain.DateRange{Start: args[0], End: args[1]}); err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
	case "clearrange":
		p.ops.ClearDateRange(ctx)
	case "refresh":
		p.ops.Refresh(ctx)
	}
	p.ops.Settle()
	p.render()
}

func (a *app) cmdProcessOrder(ctx context.Context, cmd string, args []string) {
	id, notes, ok := idAndText(args)
	if !ok {
		fmt.Printf("Usage: %s <id> [notes]\n", cmd)
		return
	}
	action := map[string]string{
		"activate":     models.OrderActionActivate,
		"decline":      models.OrderActionDecline,
		"wrong-serial": models.OrderActionWrongSerial,
	}[cmd]

	f := a.orderForm
	f.OpenFor(models.Order{ID: id}, func(saved models.Order) {
		a.orders.Patch(saved.ID, saved)
	})
	f.Action = action
	f.Notes = notes
	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Order processed.")
}

func (a *app) cmdPaymentAction(ctx context.Context, cmd string, args []string) {
	id, text, ok := idAndText(args)
	if !ok {
		fmt.Printf("Usage: %s <id> [text]\n", cmd)
		return
	}

	if cmd == "refund" {
		f := a.refundForm
		f.OpenFor(models.Payment{ID: id}, func(saved models.Payment) {
			a.payments.Patch(saved.ID, saved)
		})
		f.Reason = text
		if !f.Submit(ctx) {
			printFormIssues(f.FieldErrors(), f.SubmitError())
			f.Cancel()
			return
		}
		fmt.Println("Payment refunded.")
		return
	}

	started := a.payments.RunAction(ctx, id, "Payment confirmed", func(ctx context.Context) (models.Payment, error) {
		return a.client.ConfirmPaid(ctx, id, text)
	})
	if !started {
		fmt.Println("That payment already has an action in flight.")
		return
	}
	a.payments.Settle()
}

func (a *app) cmdPaymentStatus(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: payment-status <id> <status>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid payment id.")
		return
	}
	status := args[1]

	started := a.payments.RunAction(ctx, id, "Payment updated", func(ctx context.Context) (models.Payment, error) {
		return a.client.UpdatePaymentStatus(ctx, id, status)
	})
	if !started {
		fmt.Println("That payment already has an action in flight.")
		return
	}
	a.payments.Settle()
}

func (a *app) cmdWalletAction(ctx context.Context, cmd string, args []string) {
	if len(args) < 1 {
		fmt.Printf("Usage: %s <customer-id> [amount]\n", cmd)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid customer id.")
		return
	}

	if cmd == "freeze" || cmd == "unfreeze" {
		started := a.wallets.RunAction(ctx, id, "Wallet updated", func(ctx context.Context) (models.Wallet, error) {
			return a.client.FreezeWallet(ctx, id, cmd == "freeze", "")
		})
		if !started {
			fmt.Println("That wallet already has an action in flight.")
			return
		}
		a.wallets.Settle()
		return
	}

	amount, err := utils.ParseAmount(argOr(args, 1, ""))
	if err != nil {
		fmt.Println("Amount must be a number.")
		return
	}
	wallet, err := a.client.GetWallet(ctx, id)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}

	op := forms.WalletAdd
	if cmd == "deduct" {
		op = forms.WalletDeduct
	}
	f := a.walletForm
	f.OpenFor(wallet, op, func(saved models.Wallet) {
		a.wallets.Patch(saved.EntityID(), saved)
	})
	f.Amount = amount
	fmt.Printf("  %s: %s -> %s\n", wallet.CustomerName,
		utils.FormatCurrency(wallet.Balance), utils.FormatCurrency(f.ProjectedBalance()))
	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Balance updated.")
}

func (a *app) cmdReviewRegistration(ctx context.Context, cmd string, args []string) {
	if len(args) != 1 {
		fmt.Printf("Usage: %s <registration-id>\n", cmd)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid registration id.")
		return
	}
	if cmd == "approve" {
		err = a.client.ApproveRegistration(ctx, id)
	} else {
		err = a.client.RejectRegistration(ctx, id)
	}
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	fmt.Println(reviewConfirmation(cmd))
}

func reviewConfirmation(cmd string) string {
	if cmd == "approve" {
		return "Registration approved."
	}
	return "Registration rejected."
}

func (a *app) cmdProductForm(ctx context.Context, cmd string, args []string) {
	f := a.productForm
	var created bool

	if cmd == "editproduct" {
		if len(args) < 2 {
			fmt.Println("Usage: editproduct <id> <field>=<value>...")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Println("Invalid product id.")
			return
		}
		target, err := a.client.GetProduct(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		f.OpenFor(&target, func(saved models.Product) {
			a.products.Patch(saved.ID, saved)
		})
		args = args[1:]
	} else {
		created = true
		f.OpenFor(nil, nil)
	}

	pairs, ok := kvPairs(args)
	if !ok || len(pairs) == 0 {
		fmt.Println("Fields: name= description= category= base= selling= stock= active=")
		f.Cancel()
		return
	}
	for key, val := range pairs {
		var err error
		switch key {
		case "name":
			f.Name = val
		case "description", "desc":
			f.Description = val
		case "category":
			f.Category = val
		case "base":
			f.BasePrice, err = strconv.ParseFloat(val, 64)
		case "selling":
			f.SellingPrice, err = strconv.ParseFloat(val, 64)
		case "stock":
			f.Stock, err = strconv.Atoi(val)
		case "active":
			f.IsActive, err = strconv.ParseBool(val)
		default:
			fmt.Printf("Unknown field %s.\n", key)
			f.Cancel()
			return
		}
		if err != nil {
			fmt.Printf("Invalid value for %s.\n", key)
			f.Cancel()
			return
		}
	}

	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Product saved.")
	if created {
		a.products.Refresh(ctx)
		a.products.Settle()
	}
}

func (a *app) cmdStock(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: stock <product-id> <quantity>")
		return
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	n, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || n < 0 {
		fmt.Println("Stock must be a non-negative number.")
		return
	}

	started := a.products.RunAction(ctx, id, "Stock updated", func(ctx context.Context) (models.Product, error) {
		return a.client.UpdateStock(ctx, id, n)
	})
	if !started {
		fmt.Println("That product already has an action in flight.")
		return
	}
	a.products.Settle()
}

func (a *app) cmdCustomerForm(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: editcustomer <id> <field>=<value>...")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid customer id.")
		return
	}
	target, err := a.client.GetCustomer(ctx, id)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}

	pairs, ok := kvPairs(args[1:])
	if !ok || len(pairs) == 0 {
		fmt.Println("Fields: name= surname= email= idnumber= telegram= whatsapp= active= verified=")
		return
	}
	f := a.customerForm
	f.OpenFor(target, func(saved models.Customer) {
		a.customers.Patch(saved.ID, saved)
	})
	for key, val := range pairs {
		var err error
		switch key {
		case "name":
			f.Name = val
		case "surname":
			f.Surname = val
		case "email":
			f.Email = val
		case "idnumber":
			f.IDNumber = val
		case "telegram":
			f.TelegramID = val
		case "whatsapp":
			f.WhatsappID = val
		case "active":
			f.IsActive, err = strconv.ParseBool(val)
		case "verified":
			f.IsVerified, err = strconv.ParseBool(val)
		default:
			fmt.Printf("Unknown field %s.\n", key)
			f.Cancel()
			return
		}
		if err != nil {
			fmt.Printf("Invalid value for %s.\n", key)
			f.Cancel()
			return
		}
	}

	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Customer saved.")
}

func (a *app) cmdAdminForm(ctx context.Context, cmd string, args []string) {
	f := a.adminForm
	var created bool

	if cmd == "editadmin" {
		if len(args) < 2 {
			fmt.Println("Usage: editadmin <id> <field>=<value>...")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Println("Invalid admin id.")
			return
		}
		target, err := a.client.GetAdmin(ctx, id)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		f.OpenFor(&target, func(saved models.Admin) {
			a.admins.Patch(saved.ID, saved)
		})
		args = args[1:]
	} else {
		created = true
		f.OpenFor(nil, nil)
	}

	pairs, ok := kvPairs(args)
	if !ok || len(pairs) == 0 {
		fmt.Println("Fields: username= password= email= name= role= active=")
		f.Cancel()
		return
	}
	for key, val := range pairs {
		var err error
		switch key {
		case "username":
			f.Username = val
		case "password":
			f.Password = val
		case "email":
			f.Email = val
		case "name":
			f.DisplayName = val
		case "role":
			f.Role = val
		case "active":
			f.IsActive, err = strconv.ParseBool(val)
		default:
			fmt.Printf("Unknown field %s.\n", key)
			f.Cancel()
			return
		}
		if err != nil {
			fmt.Printf("Invalid value for %s.\n", key)
			f.Cancel()
			return
		}
	}

	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Println("Admin saved.")
	if created {
		a.admins.Refresh(ctx)
		a.admins.Settle()
	}
}

func (a *app) cmdSet(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: set <key> <value...>")
		return
	}
	key := args[0]
	value := strings.Join(args[1:], " ")

	f := a.settingForm
	if existing, err := a.client.GetSetting(ctx, key); err == nil {
		f.OpenFor(&existing, nil)
	} else {
		f.OpenFor(nil, nil)
		f.Key = key
	}
	f.Value = value

	if !f.Submit(ctx) {
		printFormIssues(f.FieldErrors(), f.SubmitError())
		f.Cancel()
		return
	}
	fmt.Printf("Setting %s saved.\n", key)
}

func (a *app) cmdPaynow(ctx context.Context, args []string) {
	if len(args) == 1 && args[0] == "test" {
		res, err := a.client.TestPaynow(ctx)
		if err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
		fmt.Printf("  ok=%t %s\n", res.OK, res.Message)
		return
	}

	pairs, ok := kvPairs(args)
	if !ok || len(pairs) == 0 {
		fmt.Println("Usage: paynow test | paynow enabled=<bool> merchant=<id> key=<key> callback=<url>")
		return
	}
	cfg, err := a.client.PaynowConfig(ctx)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	for key, val := range pairs {
		var err error
		switch key {
		case "enabled":
			cfg.Enabled, err = strconv.ParseBool(val)
		case "merchant":
			cfg.MerchantID = val
		case "key":
			cfg.APIKey = val
		case "callback":
			cfg.CallbackURL = val
		default:
			fmt.Printf("Unknown field %s.\n", key)
			return
		}
		if err != nil {
			fmt.Printf("Invalid value for %s.\n", key)
			return
		}
	}

	saved, err := a.client.UpdatePaynowConfig(ctx, cfg)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	fmt.Printf("  paynow: enabled=%t merchant=%s key=%s\n", saved.Enabled, saved.MerchantID, saved.APIKey)
}

func (a *app) cmdDelete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: delete <id|key>")
		return
	}

	route := a.router.Current()
	target := args[0]
	var noun string
	var run func()

	switch route {
	case shell.RouteSettings:
		noun = "setting"
		run = func() {
			if err := a.client.DeleteSetting(ctx, target); err != nil {
				fmt.Println(domain.ErrorMessage(err))
				return
			}
			fmt.Println("Setting deleted.")
		}
	case shell.RouteCustomers, shell.RouteProducts, shell.RouteAdmins:
		id, err := strconv.ParseInt(target, 10, 64)
		if err != nil {
			fmt.Println("Invalid id.")
			return
		}
		noun = map[shell.Route]string{
			shell.RouteCustomers: "customer",
			shell.RouteProducts:  "product",
			shell.RouteAdmins:    "admin",
		}[route]
		run = func() { a.runRowDelete(ctx, route, id) }
	default:
		fmt.Println("Nothing deletable on this screen.")
		return
	}

	a.confirm.Open(fmt.Sprintf("Delete %s %s? Type 'confirm' to proceed, 'cancel' to abort.", noun, target), run)
	fmt.Println(a.confirm.Message())
}

func (a *app) runRowDelete(ctx context.Context, route shell.Route, id int64) {
	var started bool
	switch route {
	case shell.RouteCustomers:
		started = a.customers.RunDelete(ctx, id, "Customer deleted", func(ctx context.Context) error {
			return a.client.DeleteCustomer(ctx, id)
		})
	case shell.RouteProducts:
		started = a.products.RunDelete(ctx, id, "Product deleted", func(ctx context.Context) error {
			return a.client.DeleteProduct(ctx, id)
		})
	case shell.RouteAdmins:
		started = a.admins.RunDelete(ctx, id, "Admin deleted", func(ctx context.Context) error {
			return a.client.DeleteAdmin(ctx, id)
		})
	}
	if !started {
		fmt.Println("That row already has an action in flight.")
		return
	}
	if p, ok := a.panes[route]; ok {
		p.ops.Settle()
		p.render()
	}
}

func (a *app) cmdRegistrations(ctx context.Context) {
	regs, err := a.client.PendingRegistrations(ctx)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	if len(regs) == 0 {
		fmt.Println("No pending registrations.")
		return
	}
	for _, r := range regs {
		fmt.Printf("  #%d %s %s <%s> via %s doc=%s\n",
			r.ID, r.Name, r.Surname, r.Email, r.Platform, r.DocumentPath)
	}
}

func (a *app) cmdSettings(ctx context.Context) {
	settings, err := a.client.ListSettings(ctx)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	for _, s := range settings {
		fmt.Printf("  %-28s = %-24s %s\n", s.Key, s.Value, s.Description)
	}
	cfg, err := a.client.PaynowConfig(ctx)
	if err == nil {
		fmt.Printf("  paynow: enabled=%t merchant=%s key=%s\n", cfg.Enabled, cfg.MerchantID, cfg.APIKey)
	}
}

func (a *app) cmdDashboard(ctx context.Context) {
	stats, err := a.client.DashboardStats(ctx)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	fmt.Printf("Orders: %d  Revenue: %s  Pending: %d  Customers: %d\n",
		stats.TotalOrders, utils.FormatCurrency(stats.TotalRevenue),
		stats.PendingOrders, stats.TotalCustomers)
	for _, o := range stats.RecentOrders {
		fmt.Printf("  #%d %-18s %-18s %10s  %s\n",
			o.ID, o.CustomerName, o.ProductName, utils.FormatCurrency(o.Amount), o.Status)
	}
}

func (a *app) cmdExport(ctx context.Context, args []string) {
	var dr *domain.DateRange
	if len(args) == 2 {
		dr = &domain.DateRange{Start: args[0], End: args[1]}
		if err := dr.Validate(); err != nil {
			fmt.Println(domain.ErrorMessage(err))
			return
		}
	}
	report, err := a.client.SalesReport(ctx, dr)
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	pdf, filename, err := reportexport.SalesPDF("", report)
	if err != nil {
		fmt.Println("Failed to build PDF:", err)
		return
	}
	path := filepath.Join(".", filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		log.Printf("write %s: %v", path, err)
		return
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(pdf))
}

func (a *app) cmdDoc(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: doc <path>   (as shown in the registrations list)")
		return
	}
	raw, err := a.client.FetchDocument(ctx, args[0])
	if err != nil {
		fmt.Println(domain.ErrorMessage(err))
		return
	}
	name := filepath.Base(args[0])
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		log.Printf("write %s: %v", name, err)
		return
	}
	fmt.Printf("Wrote %s (%d bytes)\n", name, len(raw))
}

func (a *app) printAlerts() {
	for _, alert := range a.alerts.Active() {
		fmt.Printf("  [%s] %s\n", alert.Level, alert.Message)
		a.alerts.Dismiss(alert.ID)
	}
}

func renderOrders(v controller.View[models.Order]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, o := range v.Items {
		fmt.Printf("  #%-4d %-18s %-18s %10s  %-10s %s\n",
			o.ID, o.CustomerName, o.ProductName,
			utils.FormatCurrency(o.Amount), o.Status, utils.FormatDate(o.CreatedAt))
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderCustomers(v controller.View[models.Customer]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, c := range v.Items {
		fmt.Printf("  #%-4d %-24s %-28s active=%-5t verified=%t\n",
			c.ID, c.Name+" "+c.Surname, c.Email, c.IsActive, c.IsVerified)
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderPayments(v controller.View[models.Payment]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, p := range v.Items {
		fmt.Printf("  #%-4d order=%-4d %-18s %10s %-8s %-10s %s\n",
			p.ID, p.OrderID, p.CustomerName,
			utils.FormatCurrency(p.Amount), p.Method, p.Status, p.Reference)
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderWallets(v controller.View[models.Wallet]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, w := range v.Items {
		fmt.Printf("  cust=%-4d %-24s %12s frozen=%t\n",
			w.CustomerID, w.CustomerName, utils.FormatCurrency(w.Balance), w.Frozen)
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderProducts(v controller.View[models.Product]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, p := range v.Items {
		margin, pct := utils.Profit(p.SellingPrice, p.BasePrice)
		fmt.Printf("  #%-4d %-22s %-10s %10s stock=%-4d margin=%s (%.1f%%) active=%t\n",
			p.ID, p.Name, p.Category, utils.FormatCurrency(p.SellingPrice),
			p.Stock, utils.FormatCurrency(margin), pct, p.IsActive)
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderAdmins(v controller.View[models.Admin]) {
	renderHeader(v.Phase, v.ErrorMessage)
	for _, ad := range v.Items {
		fmt.Printf("  #%-4d %-16s %-28s %-12s active=%t\n",
			ad.ID, ad.Username, ad.Email, ad.Role, ad.IsActive)
	}
	renderFooter(v.Query.Page, v.TotalPages, v.Total)
}

func renderHeader(phase controller.Phase, errMsg string) {
	if phase == controller.PhaseFailed {
		fmt.Println("  (stale results) " + errMsg)
	}
}

func renderFooter(page, totalPages, total int) {
	fmt.Printf("  page %d/%d, %d total\n", page, totalPages, total)
}

func printFormIssues(fieldErrs map[string]string, submitErr string) {
	keys := make([]string, 0, len(fieldErrs))
	for k := range fieldErrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %s\n", k, fieldErrs[k])
	}
	if submitErr != "" {
		fmt.Println("  " + submitErr)
	}
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func idAndText(args []string) (int64, string, bool) {
	if len(args) < 1 {
		return 0, "", false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return id, strings.Join(args[1:], " "), true
}

// kvPairs parses field=value arguments. Values cannot contain spaces; that
// is a limit of the line shell, not the forms.
func kvPairs(args []string) (map[string]string, bool) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, false
		}
		out[key] = val
	}
	return out, true
}

func printHelp() {
	fmt.Print(`Commands:
  login <user> <pass> | logout | whoami
  profile [email=... name=...] | passwd <current> <new> <confirm>
  nav | go <route> | list | refresh | view <id> | stats
  page <n> | size <n> | filter <key> [value] | search <term> | clearsearch
  range <start> <end> | clearrange
  activate <id> [notes] | decline <id> <notes> | wrong-serial <id> <notes>
  confirm-paid <id> [notes] | refund <id> <reason> | payment-status <id> <status>
  addfunds <cust> <amount> | deduct <cust> <amount> | freeze <cust> | unfreeze <cust>
  newproduct <field>=<value>... | editproduct <id> <field>=<value>... | stock <id> <n>
  newadmin <field>=<value>... | editadmin <id> <field>=<value>... | editcustomer <id> <field>=<value>...
  set <key> <value...> | paynow test | paynow <field>=<value>...
  delete <id|key> | confirm | cancel
  approve <reg-id> | reject <reg-id>
  registrations | settings | dashboard | export [start end] | doc <path> | badge
  quit
`)
}

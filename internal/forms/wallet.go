package forms

import (
	"context"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// WalletOp selects which balance mutation the funds dialog performs.
type WalletOp int

const (
	WalletAdd WalletOp = iota
	WalletDeduct
)

// WalletFundsForm backs the add/deduct funds dialog for one customer's
// wallet. Exceeding the balance on deduct is the server's call; its
// rejection message is shown inline.
type WalletFundsForm struct {
	state
	client *api.Client

	op      WalletOp
	wallet  models.Wallet
	onSaved func(models.Wallet)

	Amount float64
	Notes  string
}

func NewWalletFundsForm(client *api.Client) *WalletFundsForm {
	return &WalletFundsForm{client: client}
}

func (f *WalletFundsForm) OpenFor(wallet models.Wallet, op WalletOp, onSaved func(models.Wallet)) {
	f.wallet = wallet
	f.op = op
	f.onSaved = onSaved
	f.Amount = 0
	f.Notes = ""
	f.open()
}

// ProjectedBalance previews the balance after the pending amount.
func (f *WalletFundsForm) ProjectedBalance() float64 {
	if f.op == WalletDeduct {
		return f.wallet.Balance - f.Amount
	}
	return f.wallet.Balance + f.Amount
}

func (f *WalletFundsForm) Validate() bool {
	c := newCheck()
	c.positive("amount", f.Amount, "amount")
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *WalletFundsForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	notes := f.Notes
	if notes == "" {
		if f.op == WalletDeduct {
			notes = "Manual balance deduction by admin"
		} else {
			notes = "Manual balance addition by admin"
		}
	}

	var saved models.Wallet
	var err error
	if f.op == WalletDeduct {
		saved, err = f.client.DeductFunds(ctx, f.wallet.CustomerID, f.Amount, notes)
	} else {
		saved, err = f.client.AddFunds(ctx, f.wallet.CustomerID, f.Amount, notes)
	}
	if err != nil {
		f.failSubmit(domain.ErrorMessage(err))
		return false
	}
	if f.onSaved != nil {
		f.onSaved(saved)
	}
	f.completeSubmit()
	return true
}

package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// RefundForm backs the refund section of the payment details dialog.
// A trimmed, non-empty reason is required before the call goes out.
type RefundForm struct {
	state
	client *api.Client

	payment models.Payment
	onSaved func(models.Payment)

	Reason string
}

func NewRefundForm(client *api.Client) *RefundForm {
	return &RefundForm{client: client}
}

func (f *RefundForm) OpenFor(payment models.Payment, onSaved func(models.Payment)) {
	f.payment = payment
	f.onSaved = onSaved
	f.Reason = ""
	f.open()
}

func (f *RefundForm) Validate() bool {
	c := newCheck()
	c.required("reason", f.Reason, "refund reason")
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *RefundForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	saved, err := f.client.RefundPayment(ctx, f.payment.ID, strings.TrimSpace(f.Reason))
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

// OrderProcessForm backs the order details dialog's action section:
// activate, decline or wrong_serial. Decline and wrong_serial require an
// explanation for the customer.
type OrderProcessForm struct {
	state
	client *api.Client

	order   models.Order
	onSaved func(models.Order)

	Action string
	Notes  string
}

func NewOrderProcessForm(client *api.Client) *OrderProcessForm {
	return &OrderProcessForm{client: client}
}

func (f *OrderProcessForm) OpenFor(order models.Order, onSaved func(models.Order)) {
	f.order = order
	f.onSaved = onSaved
	f.Action = models.OrderActionActivate
	f.Notes = ""
	f.open()
}

func (f *OrderProcessForm) Validate() bool {
	c := newCheck()
	switch f.Action {
	case models.OrderActionActivate, models.OrderActionDecline, models.OrderActionWrongSerial:
	default:
		c.add("action", "unknown order action")
	}
	if f.Action == models.OrderActionDecline || f.Action == models.OrderActionWrongSerial {
		c.required("notes", f.Notes, "notes")
	}
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *OrderProcessForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	saved, err := f.client.ProcessOrder(ctx, f.order.ID, f.Action, strings.TrimSpace(f.Notes))
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

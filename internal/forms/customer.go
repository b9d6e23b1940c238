package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// CustomerForm backs the edit-customer dialog. Customers are created by the
// bot, so there is no create variant.
type CustomerForm struct {
	state
	client *api.Client

	target  models.Customer
	onSaved func(models.Customer)

	Name       string
	Surname    string
	Email      string
	IDNumber   string
	TelegramID string
	WhatsappID string
	IsActive   bool
	IsVerified bool
}

func NewCustomerForm(client *api.Client) *CustomerForm {
	return &CustomerForm{client: client}
}

func (f *CustomerForm) OpenFor(target models.Customer, onSaved func(models.Customer)) {
	f.target = target
	f.onSaved = onSaved
	f.Name = target.Name
	f.Surname = target.Surname
	f.Email = target.Email
	f.IDNumber = target.IDNumber
	f.TelegramID = target.TelegramID
	f.WhatsappID = target.WhatsappID
	f.IsActive = target.IsActive
	f.IsVerified = target.IsVerified
	f.open()
}

func (f *CustomerForm) Validate() bool {
	c := newCheck()
	c.required("name", f.Name, "name")
	if strings.TrimSpace(f.Email) != "" {
		c.email("email", f.Email)
	}
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *CustomerForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	input := models.CustomerUpdate{
		Name:       strings.TrimSpace(f.Name),
		Surname:    strings.TrimSpace(f.Surname),
		Email:      strings.TrimSpace(f.Email),
		IDNumber:   strings.TrimSpace(f.IDNumber),
		TelegramID: strings.TrimSpace(f.TelegramID),
		WhatsappID: strings.TrimSpace(f.WhatsappID),
		IsActive:   f.IsActive,
		IsVerified: f.IsVerified,
	}

	saved, err := f.client.UpdateCustomer(ctx, f.target.ID, input)
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

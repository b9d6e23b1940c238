package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ChangePasswordForm backs the change-password dialog on the profile page.
type ChangePasswordForm struct {
	state
	client *api.Client

	onSaved func()

	Current string
	New     string
	Confirm string
}

func NewChangePasswordForm(client *api.Client) *ChangePasswordForm {
	return &ChangePasswordForm{client: client}
}

func (f *ChangePasswordForm) Open(onSaved func()) {
	f.onSaved = onSaved
	f.Current = ""
	f.New = ""
	f.Confirm = ""
	f.open()
}

func (f *ChangePasswordForm) Validate() bool {
	c := newCheck()
	c.required("current", f.Current, "current password")
	c.required("new", f.New, "new password")
	c.minLen("new", f.New, 8, "new password")
	if c.errs["new"] == "" && f.Confirm != f.New {
		c.add("confirm", "passwords do not match")
	}
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *ChangePasswordForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	if err := f.client.ChangePassword(ctx, f.Current, f.New); err != nil {
		f.failSubmit(domain.ErrorMessage(err))
		return false
	}
	if f.onSaved != nil {
		f.onSaved()
	}
	f.completeSubmit()
	return true
}

// ProfileForm backs the edit-profile dialog for the signed-in admin.
type ProfileForm struct {
	state
	client *api.Client

	onSaved func(models.Admin)

	Email       string
	DisplayName string
}

func NewProfileForm(client *api.Client) *ProfileForm {
	return &ProfileForm{client: client}
}

func (f *ProfileForm) OpenFor(current models.Admin, onSaved func(models.Admin)) {
	f.onSaved = onSaved
	f.Email = current.Email
	f.DisplayName = current.DisplayName
	f.open()
}

func (f *ProfileForm) Validate() bool {
	c := newCheck()
	c.required("email", f.Email, "email")
	c.email("email", f.Email)
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *ProfileForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	input := api.ProfileInput{
		Email:       strings.TrimSpace(f.Email),
		DisplayName: strings.TrimSpace(f.DisplayName),
	}
	saved, err := f.client.UpdateProfile(ctx, input)
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

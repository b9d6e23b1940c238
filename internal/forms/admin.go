package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// AdminForm backs the admin account create/edit dialog. Password is only
// required when creating.
type AdminForm struct {
	state
	client *api.Client

	target  *models.Admin
	onSaved func(models.Admin)

	Username    string
	Password    string
	Email       string
	DisplayName string
	Role        string
	IsActive    bool
}

func NewAdminForm(client *api.Client) *AdminForm {
	return &AdminForm{client: client}
}

func (f *AdminForm) OpenFor(target *models.Admin, onSaved func(models.Admin)) {
	f.target = target
	f.onSaved = onSaved
	f.Password = ""
	if target != nil {
		f.Username = target.Username
		f.Email = target.Email
		f.DisplayName = target.DisplayName
		f.Role = target.Role
		f.IsActive = target.IsActive
	} else {
		f.Username = ""
		f.Email = ""
		f.DisplayName = ""
		f.Role = models.RoleAdmin
		f.IsActive = true
	}
	f.open()
}

func (f *AdminForm) Validate() bool {
	c := newCheck()
	c.required("username", f.Username, "username")
	c.minLen("username", f.Username, 3, "username")
	if f.target == nil {
		c.required("password", f.Password, "password")
		c.minLen("password", f.Password, 8, "password")
	} else if strings.TrimSpace(f.Password) != "" {
		c.minLen("password", f.Password, 8, "password")
	}
	c.required("email", f.Email, "email")
	c.email("email", f.Email)
	c.required("role", f.Role, "role")
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *AdminForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	input := models.AdminInput{
		Username:    strings.TrimSpace(f.Username),
		Password:    f.Password,
		Email:       strings.TrimSpace(f.Email),
		DisplayName: strings.TrimSpace(f.DisplayName),
		Role:        f.Role,
		IsActive:    f.IsActive,
	}

	var saved models.Admin
	var err error
	if f.target != nil {
		saved, err = f.client.UpdateAdmin(ctx, f.target.ID, input)
	} else {
		saved, err = f.client.CreateAdmin(ctx, input)
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

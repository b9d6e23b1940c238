package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// SettingForm backs the create/edit dialog on the settings page. The key is
// fixed once a setting exists.
type SettingForm struct {
	state
	client *api.Client

	target  *models.Setting
	onSaved func(models.Setting)

	Key         string
	Value       string
	Description string
}

func NewSettingForm(client *api.Client) *SettingForm {
	return &SettingForm{client: client}
}

func (f *SettingForm) OpenFor(target *models.Setting, onSaved func(models.Setting)) {
	f.target = target
	f.onSaved = onSaved
	if target != nil {
		f.Key = target.Key
		f.Value = target.Value
		f.Description = target.Description
	} else {
		f.Key = ""
		f.Value = ""
		f.Description = ""
	}
	f.open()
}

// Editing locks the key so updates always address the original setting.
func (f *SettingForm) KeyLocked() bool { return f.target != nil }

func (f *SettingForm) Validate() bool {
	c := newCheck()
	c.required("key", f.Key, "key")
	c.required("value", f.Value, "value")
	f.setFieldErrs(c.errs)
	return c.ok()
}

func (f *SettingForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	var saved models.Setting
	var err error
	if f.target != nil {
		saved, err = f.client.UpdateSetting(ctx, f.target.Key, f.Value, strings.TrimSpace(f.Description))
	} else {
		saved, err = f.client.CreateSetting(ctx, models.Setting{
			Key:         strings.TrimSpace(f.Key),
			Value:       f.Value,
			Description: strings.TrimSpace(f.Description),
		})
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

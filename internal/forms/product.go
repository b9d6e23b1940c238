package forms

import (
	"context"
	"strings"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ProductForm backs both "new product" and "edit product" dialogs.
type ProductForm struct {
	state
	client *api.Client

	target  *models.Product
	onSaved func(models.Product)

	Name         string
	Description  string
	Category     string
	BasePrice    float64
	SellingPrice float64
	Stock        int
	IsActive     bool
}

func NewProductForm(client *api.Client) *ProductForm {
	return &ProductForm{client: client}
}

// OpenFor seeds the form from an existing product, or defaults when target
// is nil (create).
func (f *ProductForm) OpenFor(target *models.Product, onSaved func(models.Product)) {
	f.target = target
	f.onSaved = onSaved
	if target != nil {
		f.Name = target.Name
		f.Description = target.Description
		f.Category = target.Category
		f.BasePrice = target.BasePrice
		f.SellingPrice = target.SellingPrice
		f.Stock = target.Stock
		f.IsActive = target.IsActive
	} else {
		f.Name = ""
		f.Description = ""
		f.Category = ""
		f.BasePrice = 0
		f.SellingPrice = 0
		f.Stock = 0
		f.IsActive = true
	}
	f.open()
}

// Validate runs the client-side checks; failures never reach the adapter.
func (f *ProductForm) Validate() bool {
	c := newCheck()
	c.required("name", f.Name, "name")
	c.required("description", f.Description, "description")
	c.required("category", f.Category, "category")
	c.positive("basePrice", f.BasePrice, "base price")
	c.positive("sellingPrice", f.SellingPrice, "selling price")
	if c.errs["sellingPrice"] == "" && f.SellingPrice < f.BasePrice {
		c.add("sellingPrice", "selling price must not be below base price")
	}
	c.nonNegative("stock", float64(f.Stock), "stock")
	f.setFieldErrs(c.errs)
	return c.ok()
}

// Submit calls exactly one mutation endpoint. On success the saved product
// goes to the callback and the form closes; on failure the form stays open
// with the error inline.
func (f *ProductForm) Submit(ctx context.Context) bool {
	if !f.Validate() {
		return false
	}
	if !f.beginSubmit() {
		return false
	}

	input := models.ProductInput{
		Name:         strings.TrimSpace(f.Name),
		Description:  strings.TrimSpace(f.Description),
		Category:     strings.TrimSpace(f.Category),
		BasePrice:    f.BasePrice,
		SellingPrice: f.SellingPrice,
		Stock:        f.Stock,
		IsActive:     f.IsActive,
	}

	var saved models.Product
	var err error
	if f.target != nil {
		saved, err = f.client.UpdateProduct(ctx, f.target.ID, input)
	} else {
		saved, err = f.client.CreateProduct(ctx, input)
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

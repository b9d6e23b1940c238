package models

// Product is a catalog item sold through the bot.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	BasePrice    float64 `json:"basePrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Stock        int     `json:"stock"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func (p Product) EntityID() int64 { return p.ID }

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	BasePrice    float64 `json:"basePrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Stock        int     `json:"stock"`
	IsActive     bool    `json:"isActive"`
}

// ProductStats summarizes the catalog.
type ProductStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	OutOfStock int `json:"outOfStock"`
}

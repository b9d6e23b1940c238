package mockapi

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/products
func (s *Server) listProducts(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Product, 0, len(s.st.products))
	for _, pr := range s.st.products {
		switch p.Status {
		case "active":
			if !pr.IsActive {
				continue
			}
		case "inactive":
			if pr.IsActive {
				continue
			}
		}
		if p.Category != "" && pr.Category != p.Category {
			continue
		}
		if !matchSearch(p.Search, pr.Name, pr.Description, pr.Category) {
			continue
		}
		filtered = append(filtered, pr)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"products": page, "pagination": pagination})
}

// GET /api/products/:id
func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, pr := range s.st.products {
		if pr.ID == id {
			respondOK(c, "", gin.H{"product": pr})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Product not found")
}

func validProductInput(in models.ProductInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "Name is required"
	case in.BasePrice <= 0:
		return "Base price must be greater than zero"
	case in.SellingPrice <= 0:
		return "Selling price must be greater than zero"
	case in.SellingPrice < in.BasePrice:
		return "Selling price must not be below base price"
	case in.Stock < 0:
		return "Stock must not be negative"
	}
	return ""
}

// POST /api/products
func (s *Server) createProduct(c *gin.Context) {
	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validProductInput(req); msg != "" {
		respondErr(c, http.StatusBadRequest, msg)
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	ts := nowStamp()
	pr := models.Product{
		ID:           s.st.allocID("product"),
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Category:     strings.TrimSpace(req.Category),
		BasePrice:    req.BasePrice,
		SellingPrice: req.SellingPrice,
		Stock:        req.Stock,
		IsActive:     req.IsActive,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	s.st.products = append(s.st.products, pr)
	respondOK(c, "Product created", gin.H{"product": pr})
}

// PUT /api/products/:id
func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validProductInput(req); msg != "" {
		respondErr(c, http.StatusBadRequest, msg)
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.products {
		pr := &s.st.products[i]
		if pr.ID != id {
			continue
		}
		pr.Name = strings.TrimSpace(req.Name)
		pr.Description = strings.TrimSpace(req.Description)
		pr.Category = strings.TrimSpace(req.Category)
		pr.BasePrice = req.BasePrice
		pr.SellingPrice = req.SellingPrice
		pr.Stock = req.Stock
		pr.IsActive = req.IsActive
		pr.UpdatedAt = nowStamp()
		respondOK(c, "Product updated", gin.H{"product": *pr})
		return
	}
	respondErr(c, http.StatusNotFound, "Product not found")
}

// DELETE /api/products/:id
func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i, pr := range s.st.products {
		if pr.ID == id {
			s.st.products = append(s.st.products[:i], s.st.products[i+1:]...)
			respondOK(c, "Product deleted", nil)
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Product not found")
}

// PATCH /api/products/:id/stock
func (s *Server) updateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock < 0 {
		respondErr(c, http.StatusBadRequest, "Stock must not be negative")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.products {
		pr := &s.st.products[i]
		if pr.ID != id {
			continue
		}
		pr.Stock = req.Stock
		pr.UpdatedAt = nowStamp()
		respondOK(c, "Stock updated", gin.H{"product": *pr})
		return
	}
	respondErr(c, http.StatusNotFound, "Product not found")
}

// GET /api/products/meta/stats
func (s *Server) productStats(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var active, outOfStock int
	for _, pr := range s.st.products {
		if pr.IsActive {
			active++
		}
		if pr.Stock == 0 {
			outOfStock++
		}
	}
	respondOK(c, "", gin.H{
		"total": len(s.st.products), "active": active, "outOfStock": outOfStock,
	})
}

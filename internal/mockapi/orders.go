package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/orders/admin/all
func (s *Server) listOrders(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Order, 0, len(s.st.orders))
	for _, o := range s.st.orders {
		if p.Status != "" && o.Status != p.Status {
			continue
		}
		if !matchSearch(p.Search, o.CustomerName, o.ProductName, o.SerialNumber, strconv.FormatInt(o.ID, 10)) {
			continue
		}
		if !inDateRange(o.CreatedAt, p.StartDate, p.EndDate) {
			continue
		}
		filtered = append(filtered, o)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"orders": page, "pagination": pagination})
}

// GET /api/orders/:id
func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, o := range s.st.orders {
		if o.ID == id {
			respondOK(c, "", gin.H{"order": o})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Order not found")
}

type processOrderRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// PATCH /api/orders/:id/process
func (s *Server) processOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req processOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.orders {
		o := &s.st.orders[i]
		if o.ID != id {
			continue
		}
		if o.Status != models.OrderPaid {
			respondErr(c, http.StatusBadRequest, "Only paid orders can be processed")
			return
		}
		switch req.Action {
		case models.OrderActionActivate:
			o.Status = models.OrderActivated
		case models.OrderActionDecline:
			o.Status = models.OrderDeclined
		case models.OrderActionWrongSerial:
			o.Status = models.OrderDeclined
			if strings.TrimSpace(req.Notes) == "" {
				req.Notes = "Wrong serial number"
			}
		default:
			respondErr(c, http.StatusBadRequest, "Unknown action")
			return
		}
		if strings.TrimSpace(req.Notes) != "" {
			o.Notes = strings.TrimSpace(req.Notes)
		}
		o.UpdatedAt = nowStamp()
		respondOK(c, "Order processed", gin.H{"order": *o})
		return
	}
	respondErr(c, http.StatusNotFound, "Order not found")
}

// GET /api/orders/admin/stats
func (s *Server) orderStats(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var stats models.OrderStats
	stats.Total = len(s.st.orders)
	for _, o := range s.st.orders {
		switch o.Status {
		case models.OrderPending:
			stats.Pending++
		case models.OrderPaid:
			stats.Paid++
		case models.OrderActivated:
			stats.Activated++
		case models.OrderDeclined:
			stats.Declined++
		}
	}
	respondOK(c, "", gin.H{
		"total": stats.Total, "pending": stats.Pending, "paid": stats.Paid,
		"activated": stats.Activated, "declined": stats.Declined,
	})
}

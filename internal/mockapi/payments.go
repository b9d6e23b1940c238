package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/payments/admin/all
func (s *Server) listPayments(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Payment, 0, len(s.st.payments))
	for _, pay := range s.st.payments {
		if p.Status != "" && pay.Status != p.Status {
			continue
		}
		if method := strings.TrimSpace(c.Query("method")); method != "" && pay.Method != method {
			continue
		}
		if !matchSearch(p.Search, pay.CustomerName, pay.Reference, strconv.FormatInt(pay.OrderID, 10)) {
			continue
		}
		if !inDateRange(pay.CreatedAt, p.StartDate, p.EndDate) {
			continue
		}
		filtered = append(filtered, pay)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"payments": page, "pagination": pagination})
}

// GET /api/payments/:id
func (s *Server) getPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid payment id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, pay := range s.st.payments {
		if pay.ID == id {
			respondOK(c, "", gin.H{"payment": pay})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Payment not found")
}

// POST /api/payments/admin/:id/confirm-paid
func (s *Server) confirmPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&req)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.payments {
		pay := &s.st.payments[i]
		if pay.ID != id {
			continue
		}
		if pay.Status != models.PaymentPending {
			respondErr(c, http.StatusBadRequest, "Only pending payments can be confirmed")
			return
		}
		pay.Status = models.PaymentCompleted
		pay.Notes = strings.TrimSpace(req.Notes)
		pay.UpdatedAt = nowStamp()
		for j := range s.st.orders {
			if s.st.orders[j].ID == pay.OrderID && s.st.orders[j].Status == models.OrderPending {
				s.st.orders[j].Status = models.OrderPaid
				s.st.orders[j].UpdatedAt = pay.UpdatedAt
			}
		}
		respondOK(c, "Payment confirmed", gin.H{"payment": *pay})
		return
	}
	respondErr(c, http.StatusNotFound, "Payment not found")
}

// POST /api/payments/admin/:id/refund
func (s *Server) refundPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		respondErr(c, http.StatusBadRequest, "Refund reason is required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.payments {
		pay := &s.st.payments[i]
		if pay.ID != id {
			continue
		}
		if pay.Status != models.PaymentCompleted {
			respondErr(c, http.StatusBadRequest, "Only completed payments can be refunded")
			return
		}
		pay.Status = models.PaymentRefunded
		pay.RefundReason = strings.TrimSpace(req.Reason)
		pay.UpdatedAt = nowStamp()
		if pay.Method == models.MethodWallet {
			for j := range s.st.wallets {
				if s.st.wallets[j].CustomerID == pay.CustomerID {
					s.st.wallets[j].Balance += pay.Amount
					s.st.wallets[j].UpdatedAt = pay.UpdatedAt
				}
			}
		}
		respondOK(c, "Payment refunded", gin.H{"payment": *pay})
		return
	}
	respondErr(c, http.StatusNotFound, "Payment not found")
}

// PATCH /api/payments/admin/:id/status
func (s *Server) updatePaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch req.Status {
	case models.PaymentPending, models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded:
	default:
		respondErr(c, http.StatusBadRequest, "Unknown payment status")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.payments {
		pay := &s.st.payments[i]
		if pay.ID != id {
			continue
		}
		pay.Status = req.Status
		pay.UpdatedAt = nowStamp()
		respondOK(c, "Payment updated", gin.H{"payment": *pay})
		return
	}
	respondErr(c, http.StatusNotFound, "Payment not found")
}

// GET /api/payments/admin/stats
func (s *Server) paymentStats(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var completed, refunded int
	var volume float64
	for _, pay := range s.st.payments {
		switch pay.Status {
		case models.PaymentCompleted:
			completed++
			volume += pay.Amount
		case models.PaymentRefunded:
			refunded++
		}
	}
	respondOK(c, "", gin.H{
		"total": len(s.st.payments), "completed": completed,
		"refunded": refunded, "volume": volume,
	})
}

package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/customers
func (s *Server) listCustomers(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Customer, 0, len(s.st.customers))
	for _, cu := range s.st.customers {
		switch p.Status {
		case "active":
			if !cu.IsActive {
				continue
			}
		case "inactive":
			if cu.IsActive {
				continue
			}
		}
		if !matchSearch(p.Search, cu.Name, cu.Surname, cu.Email, cu.IDNumber, strconv.FormatInt(cu.ID, 10)) {
			continue
		}
		if !inDateRange(cu.CreatedAt, p.StartDate, p.EndDate) {
			continue
		}
		filtered = append(filtered, cu)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"customers": page, "pagination": pagination})
}

// GET /api/admin/customers/:id
func (s *Server) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, cu := range s.st.customers {
		if cu.ID == id {
			respondOK(c, "", gin.H{"customer": cu})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Customer not found")
}

// PATCH /api/admin/customers/:id
func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req models.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondErr(c, http.StatusBadRequest, "Name is required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.customers {
		cu := &s.st.customers[i]
		if cu.ID != id {
			continue
		}
		cu.Name = strings.TrimSpace(req.Name)
		cu.Surname = strings.TrimSpace(req.Surname)
		cu.Email = strings.TrimSpace(req.Email)
		cu.IDNumber = strings.TrimSpace(req.IDNumber)
		cu.TelegramID = strings.TrimSpace(req.TelegramID)
		cu.WhatsappID = strings.TrimSpace(req.WhatsappID)
		cu.IsActive = req.IsActive
		cu.IsVerified = req.IsVerified
		cu.UpdatedAt = nowStamp()
		respondOK(c, "Customer updated", gin.H{"customer": *cu})
		return
	}
	respondErr(c, http.StatusNotFound, "Customer not found")
}

// DELETE /api/admin/customers/:id
func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i, cu := range s.st.customers {
		if cu.ID == id {
			s.st.customers = append(s.st.customers[:i], s.st.customers[i+1:]...)
			respondOK(c, "Customer deleted", nil)
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Customer not found")
}

// GET /api/admin/customers/stats
func (s *Server) customerStats(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var active, verified int
	for _, cu := range s.st.customers {
		if cu.IsActive {
			active++
		}
		if cu.IsVerified {
			verified++
		}
	}
	respondOK(c, "", gin.H{
		"total": len(s.st.customers), "active": active, "verified": verified,
	})
}

// GET /api/admin/customers/registrations/pending
func (s *Server) pendingRegistrations(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	pending := make([]models.Registration, 0, len(s.st.registrations))
	for _, r := range s.st.registrations {
		if r.Status == "pending" {
			pending = append(pending, r)
		}
	}
	respondOK(c, "", gin.H{"registrations": pending})
}

// POST /api/admin/customers/:id/approve
func (s *Server) approveRegistration(c *gin.Context) {
	s.reviewRegistration(c, true)
}

// POST /api/admin/customers/:id/reject
func (s *Server) rejectRegistration(c *gin.Context) {
	s.reviewRegistration(c, false)
}

func (s *Server) reviewRegistration(c *gin.Context, approve bool) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid registration id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.registrations {
		r := &s.st.registrations[i]
		if r.ID != id {
			continue
		}
		if r.Status != "pending" {
			respondErr(c, http.StatusBadRequest, "Registration already reviewed")
			return
		}
		if approve {
			r.Status = "approved"
			ts := nowStamp()
			cu := models.Customer{
				ID: s.st.allocID("customer"), Name: r.Name, Surname: r.Surname,
				Email: r.Email, IsActive: true, IsVerified: true,
				CreatedAt: ts, UpdatedAt: ts,
			}
			s.st.customers = append(s.st.customers, cu)
			s.st.wallets = append(s.st.wallets, models.Wallet{
				CustomerID: cu.ID, CustomerName: cu.Name + " " + cu.Surname, UpdatedAt: ts,
			})
			respondOK(c, "Registration approved", nil)
			return
		}
		r.Status = "rejected"
		respondOK(c, "Registration rejected", nil)
		return
	}
	respondErr(c, http.StatusNotFound, "Registration not found")
}

package mockapi

import (
	"net/http"
	"strconv"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/wallets/admin/all
func (s *Server) listWallets(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Wallet, 0, len(s.st.wallets))
	for _, w := range s.st.wallets {
		switch p.Status {
		case "frozen":
			if !w.Frozen {
				continue
			}
		case "active":
			if w.Frozen {
				continue
			}
		}
		if !matchSearch(p.Search, w.CustomerName, strconv.FormatInt(w.CustomerID, 10)) {
			continue
		}
		filtered = append(filtered, w)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"wallets": page, "pagination": pagination})
}

// GET /api/wallets/admin/:id
func (s *Server) getWallet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, w := range s.st.wallets {
		if w.CustomerID == id {
			respondOK(c, "", gin.H{"wallet": w})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Wallet not found")
}

type walletFundsRequest struct {
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// POST /api/wallets/admin/:id/add-funds
func (s *Server) addFunds(c *gin.Context) {
	s.mutateBalance(c, false)
}

// POST /api/wallets/admin/:id/deduct-funds
func (s *Server) deductFunds(c *gin.Context) {
	s.mutateBalance(c, true)
}

func (s *Server) mutateBalance(c *gin.Context, deduct bool) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req walletFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		respondErr(c, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.wallets {
		w := &s.st.wallets[i]
		if w.CustomerID != id {
			continue
		}
		if w.Frozen {
			respondErr(c, http.StatusBadRequest, "Wallet is frozen")
			return
		}
		if deduct {
			if req.Amount > w.Balance {
				respondErr(c, http.StatusBadRequest, "Amount exceeds wallet balance")
				return
			}
			w.Balance -= req.Amount
		} else {
			w.Balance += req.Amount
		}
		w.UpdatedAt = nowStamp()
		respondOK(c, "Balance updated", gin.H{"wallet": *w})
		return
	}
	respondErr(c, http.StatusNotFound, "Wallet not found")
}

// PATCH /api/wallets/admin/:id/freeze
func (s *Server) freezeWallet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req struct {
		Frozen bool   `json:"frozen"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.wallets {
		w := &s.st.wallets[i]
		if w.CustomerID != id {
			continue
		}
		w.Frozen = req.Frozen
		w.UpdatedAt = nowStamp()
		respondOK(c, "Wallet updated", gin.H{"wallet": *w})
		return
	}
	respondErr(c, http.StatusNotFound, "Wallet not found")
}

// GET /api/wallets/admin/stats
func (s *Server) walletStats(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var frozen int
	var balance float64
	for _, w := range s.st.wallets {
		if w.Frozen {
			frozen++
		}
		balance += w.Balance
	}
	respondOK(c, "", gin.H{
		"total": len(s.st.wallets), "frozen": frozen, "totalBalance": balance,
	})
}

package mockapi

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/settings
func (s *Server) listSettings(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	respondOK(c, "", gin.H{"settings": s.st.settingsSorted()})
}

// GET /api/settings/:key
func (s *Server) getSetting(c *gin.Context) {
	key := c.Param("key")

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, st := range s.st.settings {
		if st.Key == key {
			respondOK(c, "", gin.H{"setting": st})
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Setting not found")
}

// POST /api/settings
func (s *Server) createSetting(c *gin.Context) {
	var req models.Setting
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Key = strings.TrimSpace(req.Key)
	if req.Key == "" || strings.TrimSpace(req.Value) == "" {
		respondErr(c, http.StatusBadRequest, "Key and value are required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for _, st := range s.st.settings {
		if st.Key == req.Key {
			respondErr(c, http.StatusBadRequest, "Setting already exists")
			return
		}
	}
	req.UpdatedAt = nowStamp()
	s.st.settings = append(s.st.settings, req)
	respondOK(c, "Setting created", gin.H{"setting": req})
}

// PUT /api/settings/:key
func (s *Server) updateSetting(c *gin.Context) {
	key := c.Param("key")
	var req struct {
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Value) == "" {
		respondErr(c, http.StatusBadRequest, "Value is required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i := range s.st.settings {
		st := &s.st.settings[i]
		if st.Key != key {
			continue
		}
		st.Value = req.Value
		st.Description = strings.TrimSpace(req.Description)
		st.UpdatedAt = nowStamp()
		respondOK(c, "Setting updated", gin.H{"setting": *st})
		return
	}
	respondErr(c, http.StatusNotFound, "Setting not found")
}

// DELETE /api/settings/:key
func (s *Server) deleteSetting(c *gin.Context) {
	key := c.Param("key")

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for i, st := range s.st.settings {
		if st.Key == key {
			s.st.settings = append(s.st.settings[:i], s.st.settings[i+1:]...)
			respondOK(c, "Setting deleted", nil)
			return
		}
	}
	respondErr(c, http.StatusNotFound, "Setting not found")
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// GET /api/settings/paynow
func (s *Server) paynowConfig(c *gin.Context) {
	s.st.mu.Lock()
	cfg := s.st.paynow
	s.st.mu.Unlock()

	cfg.APIKey = maskKey(cfg.APIKey)
	respondOK(c, "", gin.H{"config": cfg})
}

// PUT /api/settings/paynow/config
func (s *Server) updatePaynowConfig(c *gin.Context) {
	var req models.PaynowConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Enabled && strings.TrimSpace(req.MerchantID) == "" {
		respondErr(c, http.StatusBadRequest, "Merchant ID is required when enabled")
		return
	}

	s.st.mu.Lock()
	// a masked key means the caller left it unchanged
	if strings.Contains(req.APIKey, "*") || strings.TrimSpace(req.APIKey) == "" {
		req.APIKey = s.st.paynow.APIKey
	}
	s.st.paynow = req
	cfg := s.st.paynow
	s.st.mu.Unlock()

	cfg.APIKey = maskKey(cfg.APIKey)
	respondOK(c, "Gateway configuration updated", gin.H{"config": cfg})
}

// POST /api/settings/paynow/test
func (s *Server) testPaynow(c *gin.Context) {
	s.st.mu.Lock()
	enabled := s.st.paynow.Enabled && s.st.paynow.MerchantID != ""
	s.st.mu.Unlock()

	if !enabled {
		respondOK(c, "", gin.H{"ok": false, "message": "Gateway is disabled or missing merchant ID"})
		return
	}
	respondOK(c, "", gin.H{"ok": true, "message": "Gateway connection OK"})
}

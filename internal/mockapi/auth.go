package mockapi

import (
	"net/http"
	"strings"
	"time"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.st.mu.Lock()
	acct, found := s.st.findAdminByUsername(req.Username)
	s.st.mu.Unlock()

	if !found || !acct.IsActive {
		respondErr(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(req.Password)); err != nil {
		respondErr(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": acct.ID,
		"role":     acct.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	s.st.mu.Lock()
	if i, ok := s.st.findAdmin(acct.ID); ok {
		s.st.admins[i].LastLoginAt = nowStamp()
	}
	s.st.mu.Unlock()

	respondOK(c, "Login successful", gin.H{
		"tokens": gin.H{"accessToken": signed},
		"admin": models.AdminIdentity{
			ID:          acct.ID,
			Username:    acct.Username,
			Role:        acct.Role,
			DisplayName: acct.DisplayName,
		},
	})
}

// GET /api/admin/profile
func (s *Server) profile(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	i, ok := s.st.findAdmin(currentAdminID(c))
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Account no longer exists")
		return
	}
	respondOK(c, "", gin.H{"admin": s.st.admins[i].Admin})
}

type profileRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// PUT /api/admin/profile
func (s *Server) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondErr(c, http.StatusBadRequest, "Email is required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	i, ok := s.st.findAdmin(currentAdminID(c))
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Account no longer exists")
		return
	}
	s.st.admins[i].Email = strings.TrimSpace(req.Email)
	s.st.admins[i].DisplayName = strings.TrimSpace(req.DisplayName)
	respondOK(c, "Profile updated", gin.H{"admin": s.st.admins[i].Admin})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// POST /api/admin/change-password
func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 8 {
		respondErr(c, http.StatusBadRequest, "New password must be at least 8 characters")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	i, ok := s.st.findAdmin(currentAdminID(c))
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Account no longer exists")
		return
	}
	if err := bcrypt.CompareHashAndPassword(s.st.admins[i].PasswordHash, []byte(req.CurrentPassword)); err != nil {
		respondErr(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	s.st.admins[i].PasswordHash = mustHash(req.NewPassword)
	respondOK(c, "Password changed", nil)
}

package mockapi

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// requireSuperAdmin gates the admin-management endpoints.
func (s *Server) requireSuperAdmin(c *gin.Context) {
	s.st.mu.Lock()
	i, ok := s.st.findAdmin(currentAdminID(c))
	var role string
	if ok {
		role = s.st.admins[i].Role
	}
	s.st.mu.Unlock()

	if !ok || role != models.RoleSuperAdmin {
		respondErr(c, http.StatusForbidden, "Super admin access required")
		c.Abort()
		return
	}
	c.Next()
}

// GET /api/admin/admins
func (s *Server) listAdmins(c *gin.Context) {
	p := parseListParams(c)

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	filtered := make([]models.Admin, 0, len(s.st.admins))
	for _, a := range s.st.admins {
		if p.Status == "active" && !a.IsActive {
			continue
		}
		if p.Status == "inactive" && a.IsActive {
			continue
		}
		if !matchSearch(p.Search, a.Username, a.Email, a.DisplayName) {
			continue
		}
		filtered = append(filtered, a.Admin)
	}

	page, pagination := window(filtered, p)
	respondOK(c, "", gin.H{"admins": page, "pagination": pagination})
}

// GET /api/admin/admins/:id
func (s *Server) getAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid admin id")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	if i, ok := s.st.findAdmin(id); ok {
		respondOK(c, "", gin.H{"admin": s.st.admins[i].Admin})
		return
	}
	respondErr(c, http.StatusNotFound, "Admin not found")
}

func validRole(role string) bool {
	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin, models.RoleSupport:
		return true
	}
	return false
}

// POST /api/admin/admins
func (s *Server) createAdmin(c *gin.Context) {
	var req models.AdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 8 || !validRole(req.Role) {
		respondErr(c, http.StatusBadRequest, "Username, password (min 8 chars) and role are required")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	if _, exists := s.st.findAdminByUsername(req.Username); exists {
		respondErr(c, http.StatusBadRequest, "Username already taken")
		return
	}

	acct := adminAccount{
		Admin: models.Admin{
			ID:          s.st.allocID("admin"),
			Username:    req.Username,
			Email:       strings.TrimSpace(req.Email),
			DisplayName: strings.TrimSpace(req.DisplayName),
			Role:        req.Role,
			IsActive:    req.IsActive,
			CreatedAt:   nowStamp(),
		},
		PasswordHash: mustHash(req.Password),
	}
	s.st.admins = append(s.st.admins, acct)
	respondOK(c, "Admin created", gin.H{"admin": acct.Admin})
}

// PUT /api/admin/admins/:id
func (s *Server) updateAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid admin id")
		return
	}
	var req models.AdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validRole(req.Role) {
		respondErr(c, http.StatusBadRequest, "Unknown role")
		return
	}
	if req.Password != "" && len(req.Password) < 8 {
		respondErr(c, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	i, found := s.st.findAdmin(id)
	if !found {
		respondErr(c, http.StatusNotFound, "Admin not found")
		return
	}
	a := &s.st.admins[i]
	a.Email = strings.TrimSpace(req.Email)
	a.DisplayName = strings.TrimSpace(req.DisplayName)
	a.Role = req.Role
	a.IsActive = req.IsActive
	if req.Password != "" {
		a.PasswordHash = mustHash(req.Password)
	}
	respondOK(c, "Admin updated", gin.H{"admin": a.Admin})
}

// DELETE /api/admin/admins/:id
func (s *Server) deleteAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondErr(c, http.StatusBadRequest, "Invalid admin id")
		return
	}
	if id == currentAdminID(c) {
		respondErr(c, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	if i, found := s.st.findAdmin(id); found {
		s.st.admins = append(s.st.admins[:i], s.st.admins[i+1:]...)
		respondOK(c, "Admin deleted", nil)
		return
	}
	respondErr(c, http.StatusNotFound, "Admin not found")
}

// GET /api/admin/roles
func (s *Server) roles(c *gin.Context) {
	respondOK(c, "", gin.H{"roles": []string{
		models.RoleSuperAdmin, models.RoleAdmin, models.RoleSupport,
	}})
}

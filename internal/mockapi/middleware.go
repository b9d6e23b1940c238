package mockapi

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	requestIDKey = "request_id"
	adminIDKey   = "admin_id"
)

// requestID ensures every request has an ID for tracing and logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func getRequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// requestLogger prints a minimal line per request including request_id.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			getRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}

// requireAuth validates the bearer token and stores the admin id on the
// context. Failures answer with the standard envelope so clients tear the
// session down the same way the real backend triggers it.
func requireAuth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			respondErr(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtKey, nil
		})
		if err != nil || !tok.Valid {
			respondErr(c, http.StatusUnauthorized, "Session expired, please log in again")
			c.Abort()
			return
		}

		sub, ok := claims["admin_id"].(float64)
		if !ok {
			respondErr(c, http.StatusUnauthorized, "Session expired, please log in again")
			c.Abort()
			return
		}
		c.Set(adminIDKey, int64(sub))
		c.Next()
	}
}

func currentAdminID(c *gin.Context) int64 {
	if v, ok := c.Get(adminIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

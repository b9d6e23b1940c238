package mockapi

import (
	"github.com/gin-gonic/gin"
)

// The mock API speaks the same envelope as the production backend:
// {success, message, data}.
func respondOK(c *gin.Context, message string, data gin.H) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondErr(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards the admin endpoints. ADMIN_KEY_HASH holds a bcrypt hash of
// the shared key; callers present the plain key in X-Admin-Key. With no hash
// configured the endpoints are disabled rather than open.
func AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := os.Getenv("ADMIN_KEY_HASH")
		if hash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin endpoints disabled"})
			c.Abort()
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
			c.Abort()
			return
		}

		c.Next()
	}
}

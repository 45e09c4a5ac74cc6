package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const pinHeader = "X-Desk-PIN"

// DeskPIN guards sensitive routes (withdrawals, deletions, restore) behind the
// front desk PIN.
func DeskPIN(pin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(pinHeader)

		if len(given) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing PIN"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(given), []byte(pin)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid PIN"})
			c.Abort()
			return
		}
	}
}

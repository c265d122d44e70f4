package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop-service/utils"
)

// AuthMiddleware requires a valid bearer token and stores the user id on the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required.",
			})
			return
		}

		userID, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token.",
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"aircargo-admin-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer access token and stashes the caller's
// identity on the context. User ids are snowflakes, carried in claims as
// strings because they exceed the float64-safe integer range.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.LoadConfig()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)

		if tokenType, _ := claims["token_type"].(string); tokenType != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
			c.Abort()
			return
		}

		var userID uint64
		switch v := claims["user_id"].(type) {
		case string:
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
				c.Abort()
				return
			}
			userID = n
		case float64:
			userID = uint64(v)
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
			c.Abort()
			return
		}

		permissions := []string{}
		if raw, ok := claims["permissions"].([]interface{}); ok {
			for _, v := range raw {
				if s, ok := v.(string); ok && s != "" {
					permissions = append(permissions, s)
				}
			}
		}

		c.Set("userID", userID)
		c.Set("permissions", permissions)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Get("permissions")
		permissions, _ := raw.([]string)
		for _, p := range permissions {
			if p == "admin" {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "admin permission required"})
		c.Abort()
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	intconfig "ridebook/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth guards privileged routes. It accepts either a session JWT issued
// by the login handler or the static shared admin token, compared in constant
// time. The check runs before any handler touches the store.
func AdminAuth(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		if env.AdminToken != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(env.AdminToken)) == 1 {
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(env.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Next()
	}
}

// MetadataAuth guards the metadata surface with the x-admin-token header.
// A wrong presented token is forbidden rather than unauthorized.
func MetadataAuth(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("x-admin-token"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		if env.MetadataToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(env.MetadataToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

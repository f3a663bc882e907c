package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Roles a bearer token can carry. A partner token satisfies a plain user
// requirement; the reverse does not hold.
const (
	RoleUser    = "user"
	RolePartner = "partner"
)

const userIDContextKey = "booksnap.userID"

// IdentityClaims are the claims BookSnap reads from a bearer token. The
// subject is the user ID assigned by the external identity provider.
type IdentityClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// RequireRole returns a middleware enforcing a bearer JWT with at least the
// given role. One parameterized check replaces per-role middleware variants.
func RequireRole(secret []byte, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing bearer token",
				"code":  "UNAUTHENTICATED",
			})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &IdentityClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("[AUTH] Token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"code":  "UNAUTHENTICATED",
			})
			return
		}

		if !roleSatisfies(claims.Role, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
				"code":  "FORBIDDEN",
			})
			return
		}

		c.Set(userIDContextKey, claims.Subject)
		c.Next()
	}
}

// roleSatisfies reports whether a token role meets the required role.
func roleSatisfies(tokenRole, required string) bool {
	switch required {
	case RolePartner:
		return tokenRole == RolePartner
	default:
		// Any authenticated identity satisfies the plain user requirement.
		return true
	}
}

// UserID returns the authenticated user's ID set by RequireRole, or an empty
// string on unauthenticated routes.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/01moynul/shopfront-api/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keys under which the middleware stores request values in the gin context.
const (
	ContextUserID    = "userID"
	ContextEmail     = "email"
	ContextClaims    = "claims"
	ContextRequestID = "requestID"
)

// Auth requires a valid bearer token and stores the caller in the context.
func Auth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token format (must be Bearer)"})
			return
		}

		// 2. --- Validate Token ---
		claims, err := issuer.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 3. --- Subject must be a positive user id ---
		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}

		// 4. --- Success ---
		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireCatalogAdmin must run after Auth.
func RequireCatalogAdmin(policy *auth.CatalogPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := c.Get(ContextClaims)
		typed, _ := claims.(*auth.Claims)
		if typed == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !policy.CanManageCatalog(typed) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: catalog administrator required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

package middleware

import (
	"net/http"
	"strings"

	"food-ordering-api/auth"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// credential reads the token from the ?token= query parameter or, failing
// that, from an Authorization: Bearer header.
func credential(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// AuthRequired validates the JWT and injects the caller into context
func AuthRequired(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := credential(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(callerKey, service.Caller{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// Authorize enforces that the caller's role may perform op. It must run
// after AuthRequired.
func Authorize(op service.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if err := service.Authorize(caller, op); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

// GetCaller extracts the authenticated caller from context
func GetCaller(c *gin.Context) (service.Caller, bool) {
	val, ok := c.Get(callerKey)
	if !ok {
		return service.Caller{}, false
	}
	caller, ok := val.(service.Caller)
	return caller, ok
}

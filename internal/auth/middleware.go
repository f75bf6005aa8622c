package auth

import (
	"net/http"
	"strings"

	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the authenticated principal
const PrincipalKey = "principal"

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
	policy  *policy.Policy
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, policy *policy.Policy) *Middleware {
	return &Middleware{service: service, policy: policy}
}

// RequireAuth validates the bearer token and sets the principal context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(PrincipalKey, policy.Principal{
			ID:           claims.UserID,
			Role:         claims.Role,
			DepartmentID: claims.DepartmentID,
		})
		c.Set("username", claims.Username)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole allows only the listed roles past
func (m *Middleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this action"})
		c.Abort()
	}
}

// RequireTrayEditor allows only roles that may edit trays directly,
// bypassing the change request workflow
func (m *Middleware) RequireTrayEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !m.policy.CanEditTray(principal) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role may not edit trays directly"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal from the gin context
func GetPrincipal(c *gin.Context) (policy.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return policy.Principal{}, false
	}
	principal, ok := value.(policy.Principal)
	return principal, ok
}

// GetClaims extracts the raw JWT claims from the gin context
func GetClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// TokenValidator parses access tokens into claims.
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWT protects routes by requiring a valid access token.
func JWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !attachClaims(c, validator, header) {
			return
		}
		c.Next()
	}
}

// OptionalJWT attaches claims when a bearer token is presented. Requests
// without one pass through; a presented but invalid token is rejected.
func OptionalJWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		if !attachClaims(c, validator, header) {
			return
		}
		c.Next()
	}
}

// Auth picks JWT or OptionalJWT.
func Auth(validator TokenValidator, required bool) gin.HandlerFunc {
	if required {
		return JWT(validator)
	}
	return OptionalJWT(validator)
}

// CurrentClaims returns the claims attached by JWT or OptionalJWT.
func CurrentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok && claims != nil
}

func attachClaims(c *gin.Context, validator TokenValidator, header string) bool {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
		c.Abort()
		return false
	}

	claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		response.Error(c, err)
		c.Abort()
		return false
	}

	c.Set(ContextUserKey, claims)
	return true
}

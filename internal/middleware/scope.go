package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/service"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

// StudentIDParam is the query parameter every portal read is keyed by.
const StudentIDParam = "name_contactid"

// StudentScope rejects requests whose student identifier differs from the
// token subject, comparing the identifier the services will actually query.
// Anonymous requests pass; pair it with JWT to require a token.
func StudentScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.Next()
			return
		}
		requested := strings.TrimSpace(c.Query(StudentIDParam))
		if cleaned, err := service.CleanStudentID(requested); err == nil {
			requested = cleaned
		}
		if requested != "" && requested != claims.Subject {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "token does not belong to this student"))
			c.Abort()
			return
		}
		c.Next()
	}
}

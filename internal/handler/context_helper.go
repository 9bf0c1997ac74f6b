package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/dto"
	"github.com/itech-net/student-portal-api/internal/middleware"
	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return nil
	}
	return claims
}

// bindStudent reads name_contactid and writes the error response when it cannot.
func bindStudent(c *gin.Context) (string, bool) {
	var q dto.StudentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return "", false
	}
	return q.StudentID, true
}

func countMeta(n int) map[string]interface{} {
	return map[string]interface{}{"count": n}
}

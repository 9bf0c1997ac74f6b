package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/dto"
	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type attendanceService interface {
	List(ctx context.Context, q models.AttendanceQuery) ([]models.AttendanceEntry, error)
}

// AttendanceHandler serves the attendance log.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// List godoc
// @Summary Attendance of one subject batch
// @Tags Attendance
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Param batchtime query string true "Batch time"
// @Param Subject query string true "Subject name"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	var q dto.AttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}
	entries, err := h.service.List(c.Request.Context(), models.AttendanceQuery{
		StudentID: q.StudentID,
		BatchTime: q.BatchTime,
		Subject:   q.Subject,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil, countMeta(len(entries)))
}

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

type subjectStatusService interface {
	ListSubjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectView, *models.Pagination, error)
}

// StatusHandler serves the batch-status view.
type StatusHandler struct {
	service subjectStatusService
}

// NewStatusHandler constructs the handler.
func NewStatusHandler(svc subjectStatusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// GetBatch godoc
// @Summary List a student's subjects by status
// @Description Pending subjects come from the course catalog; Ongoing and Completed from enrollment records.
// @Tags Enrollment
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Param status query string true "Pending, Ongoing or Completed"
// @Param course query string false "Restrict to one course"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /get-batch [get]
func (h *StatusHandler) GetBatch(c *gin.Context) {
	var q dto.BatchStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	views, pagination, err := h.service.ListSubjects(c.Request.Context(), models.SubjectQuery{
		StudentID: q.StudentID,
		Status:    models.StatusClass(q.Status),
		Course:    q.Course,
		Page:      q.Page,
		PageSize:  q.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := countMeta(len(views))
	meta["status"] = q.Status
	if q.Page <= 0 && q.Limit <= 0 {
		pagination = nil
	}
	response.JSON(c, http.StatusOK, views, pagination, meta)
}

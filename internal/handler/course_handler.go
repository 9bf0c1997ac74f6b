package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/models"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type courseService interface {
	Overview(ctx context.Context, studentID string) ([]models.CourseSubject, error)
	Marks(ctx context.Context, studentID string) (*models.MarksOverview, error)
}

// CourseHandler serves course overview and marks.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Overview godoc
// @Summary Catalog subjects of a student's courses with status
// @Tags Courses
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /course-details [get]
func (h *CourseHandler) Overview(c *gin.Context) {
	studentID, ok := bindStudent(c)
	if !ok {
		return
	}
	subjects, err := h.service.Overview(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil, countMeta(len(subjects)))
}

// Marks godoc
// @Summary Exam marks of a student
// @Tags Courses
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /marks [get]
func (h *CourseHandler) Marks(c *gin.Context) {
	studentID, ok := bindStudent(c)
	if !ok {
		return
	}
	overview, err := h.service.Marks(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

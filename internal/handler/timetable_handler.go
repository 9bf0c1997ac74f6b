package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/models"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type timetableService interface {
	Timetable(ctx context.Context, studentID string) ([]models.TimetableEntry, error)
	BatchTimings(ctx context.Context, studentID string) ([]string, error)
}

// TimetableHandler serves batch schedules.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc timetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Timetable godoc
// @Summary Batch timetable of a student
// @Tags Timetable
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /batch-timetable [get]
func (h *TimetableHandler) Timetable(c *gin.Context) {
	studentID, ok := bindStudent(c)
	if !ok {
		return
	}
	entries, err := h.service.Timetable(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil, countMeta(len(entries)))
}

// BatchTimings godoc
// @Summary Batch times a student has attendance in
// @Tags Timetable
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /batch-timings [get]
func (h *TimetableHandler) BatchTimings(c *gin.Context) {
	studentID, ok := bindStudent(c)
	if !ok {
		return
	}
	batches, err := h.service.BatchTimings(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, batches, nil, countMeta(len(batches)))
}

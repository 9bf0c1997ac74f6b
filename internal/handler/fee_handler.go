package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/dto"
	"github.com/itech-net/student-portal-api/internal/models"
	"github.com/itech-net/student-portal-api/internal/service"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type feeService interface {
	List(ctx context.Context, studentID string) ([]models.FeeRecord, error)
	Export(ctx context.Context, studentID string, format models.ExportFormat) (*service.FeeStatement, error)
}

// FeeHandler serves the fee ledger.
type FeeHandler struct {
	service feeService
}

// NewFeeHandler constructs the handler.
func NewFeeHandler(svc feeService) *FeeHandler {
	return &FeeHandler{service: svc}
}

// List godoc
// @Summary Fee payment history of a student
// @Tags Fees
// @Produce json
// @Param name_contactid query string true "Student identifier"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /fee-details [get]
func (h *FeeHandler) List(c *gin.Context) {
	studentID, ok := bindStudent(c)
	if !ok {
		return
	}
	records, err := h.service.List(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil, countMeta(len(records)))
}

// Export godoc
// @Summary Download a fee statement
// @Tags Fees
// @Produce text/csv
// @Produce application/pdf
// @Param name_contactid query string true "Student identifier"
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /fee-details/export [get]
func (h *FeeHandler) Export(c *gin.Context) {
	var q dto.FeeExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}
	statement, err := h.service.Export(c.Request.Context(), q.StudentID, models.ExportFormat(q.Format))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, statement.Filename, statement.ContentType, statement.Body)
}

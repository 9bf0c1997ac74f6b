package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type profileService interface {
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error
}

// ProfileHandler serves profile updates.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Update godoc
// @Summary Update a student's profile
// @Description Only non-empty fields are written.
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body models.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /update-profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	if claims := claimsFromContext(c); claims != nil && strings.TrimSpace(string(req.ID)) != claims.StudentID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "token does not belong to this student"))
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.ProfileUpdateResponse{Message: "Profile updated successfully"}, nil)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) *models.LogoutResponse
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate a student
// @Description Verify username and password and issue an access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Username and password are required."))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}

// Logout godoc
// @Summary Logout
// @Description Stateless; the client discards its token
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Logout(c.Request.Context()), nil)
}

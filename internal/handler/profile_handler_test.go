package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itech-net/student-portal-api/internal/middleware"
	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type profileServiceMock struct {
	calls int
	got   models.ProfileUpdateRequest
	err   error
}

func (m *profileServiceMock) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	m.calls++
	m.got = req
	return m.err
}

func TestProfileHandlerUpdateNumericID(t *testing.T) {
	svc := &profileServiceMock{}
	h := NewProfileHandler(svc)
	c, w := newTestContext(http.MethodPut, "/update-profile", strings.NewReader(`{"id":42,"name":"Asha"}`))

	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StudentRef("42"), svc.got.ID)
	assert.Equal(t, "Asha", svc.got.Name)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Profile updated successfully", data["message"])
}

func TestProfileHandlerRejectsOtherStudent(t *testing.T) {
	svc := &profileServiceMock{}
	h := NewProfileHandler(svc)
	c, w := newTestContext(http.MethodPut, "/update-profile", strings.NewReader(`{"id":"7","name":"Mallory"}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{StudentID: "42"})

	h.Update(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestProfileHandlerOwnProfileWithToken(t *testing.T) {
	svc := &profileServiceMock{}
	h := NewProfileHandler(svc)
	c, w := newTestContext(http.MethodPut, "/update-profile", strings.NewReader(`{"id":"42","contact":"9876"}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{StudentID: "42"})

	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestProfileHandlerInvalidBody(t *testing.T) {
	h := NewProfileHandler(&profileServiceMock{})
	c, w := newTestContext(http.MethodPut, "/update-profile", strings.NewReader(`{"id":true}`))

	h.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandlerNotFound(t *testing.T) {
	h := NewProfileHandler(&profileServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")})
	c, w := newTestContext(http.MethodPut, "/update-profile", strings.NewReader(`{"id":"9","name":"x"}`))

	h.Update(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

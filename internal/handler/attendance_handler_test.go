package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type attendanceServiceMock struct {
	got     models.AttendanceQuery
	entries []models.AttendanceEntry
	err     error
}

func (m *attendanceServiceMock) List(ctx context.Context, q models.AttendanceQuery) ([]models.AttendanceEntry, error) {
	m.got = q
	return m.entries, m.err
}

func TestAttendanceHandlerLegacyParams(t *testing.T) {
	svc := &attendanceServiceMock{entries: []models.AttendanceEntry{{SubjectName: "Maths", BatchTime: "10:00"}}}
	h := NewAttendanceHandler(svc)
	c, w := newTestContext(http.MethodGet, "/attendance?name_contactid=x&batchtime=10:00&Subject=Maths", nil)

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10:00", svc.got.BatchTime)
	assert.Equal(t, "Maths", svc.got.Subject)
	assert.Equal(t, "x", svc.got.StudentID)
}

func TestAttendanceHandlerNoRecords(t *testing.T) {
	h := NewAttendanceHandler(&attendanceServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "No attendance records found.")})
	c, w := newTestContext(http.MethodGet, "/attendance?name_contactid=x&batchtime=10:00&Subject=Maths", nil)

	h.List(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type timetableServiceMock struct {
	entries []models.TimetableEntry
	batches []string
	err     error
}

func (m *timetableServiceMock) Timetable(ctx context.Context, studentID string) ([]models.TimetableEntry, error) {
	return m.entries, m.err
}

func (m *timetableServiceMock) BatchTimings(ctx context.Context, studentID string) ([]string, error) {
	return m.batches, m.err
}

func TestTimetableHandlerEmptyIsArray(t *testing.T) {
	h := NewTimetableHandler(&timetableServiceMock{entries: []models.TimetableEntry{}})
	c, w := newTestContext(http.MethodGet, "/batch-timetable?name_contactid=x", nil)

	h.Timetable(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestTimetableHandlerBatchTimings(t *testing.T) {
	h := NewTimetableHandler(&timetableServiceMock{batches: []string{"09:00", "11:00"}})
	c, w := newTestContext(http.MethodGet, "/batch-timings?name_contactid=x", nil)

	h.BatchTimings(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"09:00", "11:00"}, decodeBody(t, w)["data"])
}

func TestTimetableHandlerStorageError(t *testing.T) {
	h := NewTimetableHandler(&timetableServiceMock{err: appErrors.Storage(errors.New("gone"), "Database error")})
	c, w := newTestContext(http.MethodGet, "/batch-timetable?name_contactid=x", nil)

	h.Timetable(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "STORAGE_ERROR", errorCode(t, w))
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type fakeTimetableRepo struct {
	entries []models.TimetableEntry
	batches []string
	err     error
}

func (f *fakeTimetableRepo) Timetable(context.Context, string) ([]models.TimetableEntry, error) {
	return f.entries, f.err
}

func (f *fakeTimetableRepo) ListBatchTimes(context.Context, string) ([]string, error) {
	return f.batches, f.err
}

func TestTimetableServiceTimetable(t *testing.T) {
	faculty := "Ravi"
	repo := &fakeTimetableRepo{entries: []models.TimetableEntry{{BatchTime: "10:00-11:00", Faculty: &faculty}}}
	svc := NewTimetableService(repo, repo, nil, nil)

	entries, err := svc.Timetable(context.Background(), "asha-9876")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "10:00-11:00", entries[0].BatchTime)

	_, err = svc.Timetable(context.Background(), "")
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestTimetableServiceEmptyIsNotAnError(t *testing.T) {
	svc := NewTimetableService(&fakeTimetableRepo{}, &fakeTimetableRepo{}, nil, nil)

	entries, err := svc.Timetable(context.Background(), "asha-9876")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	batches, err := svc.BatchTimings(context.Background(), "asha-9876")
	require.NoError(t, err)
	assert.Equal(t, []string{}, batches)
}

func TestTimetableServiceBatchTimings(t *testing.T) {
	repo := &fakeTimetableRepo{batches: []string{"10:00-11:00", "14:00-15:00"}}
	svc := NewTimetableService(repo, repo, nil, nil)

	batches, err := svc.BatchTimings(context.Background(), "asha-9876")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-11:00", "14:00-15:00"}, batches)

	repo.err = errors.New("lost connection")
	_, err = svc.BatchTimings(context.Background(), "asha-9876")
	assert.True(t, appErrors.Is(err, appErrors.ErrStorage))
	_, err = svc.Timetable(context.Background(), "asha-9876")
	assert.True(t, appErrors.Is(err, appErrors.ErrStorage))
}

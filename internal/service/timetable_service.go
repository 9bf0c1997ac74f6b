package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type timetableRepository interface {
	Timetable(ctx context.Context, studentID string) ([]models.TimetableEntry, error)
}

type batchTimeRepository interface {
	ListBatchTimes(ctx context.Context, studentID string) ([]string, error)
}

// TimetableService lists the batches a student attends.
type TimetableService struct {
	enrollments timetableRepository
	attendance  batchTimeRepository
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewTimetableService constructs the timetable service.
func NewTimetableService(enrollments timetableRepository, attendance batchTimeRepository, metrics *MetricsService, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{enrollments: enrollments, attendance: attendance, metrics: metrics, logger: logger}
}

// Timetable returns the distinct scheduled batches of a student.
func (s *TimetableService) Timetable(ctx context.Context, studentID string) ([]models.TimetableEntry, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	}
	start := time.Now()
	entries, err := s.enrollments.Timetable(ctx, studentID)
	s.metrics.ObserveDBQuery("timetable_by_student", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	return entries, nil
}

// BatchTimings returns the distinct batch times a student has attendance in.
func (s *TimetableService) BatchTimings(ctx context.Context, studentID string) ([]string, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	}
	start := time.Now()
	batches, err := s.attendance.ListBatchTimes(ctx, studentID)
	s.metrics.ObserveDBQuery("batch_times_by_student", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	if batches == nil {
		batches = []string{}
	}
	return batches, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type attendanceRepository interface {
	ListByBatch(ctx context.Context, q models.AttendanceQuery) ([]models.AttendanceEntry, error)
}

// AttendanceService reads a student's attendance log.
type AttendanceService struct {
	repo      attendanceRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewAttendanceService creates the attendance service.
func NewAttendanceService(repo attendanceRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns attendance rows of one subject batch, enriched with the batch's faculty and dates.
func (s *AttendanceService) List(ctx context.Context, q models.AttendanceQuery) ([]models.AttendanceEntry, error) {
	q.StudentID = strings.TrimSpace(q.StudentID)
	q.BatchTime = strings.TrimSpace(q.BatchTime)
	q.Subject = strings.TrimSpace(q.Subject)
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing batchtime, subject, or user info.")
	}

	start := time.Now()
	entries, err := s.repo.ListByBatch(ctx, q)
	s.metrics.ObserveDBQuery("attendance_by_batch", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	if len(entries) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No attendance records found.")
	}
	return entries, nil
}

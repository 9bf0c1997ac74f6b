package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type courseOverviewRepository interface {
	CourseOverview(ctx context.Context, studentID string) ([]models.CourseSubjectRow, error)
}

type studentLookup interface {
	ExistsByNameContactID(ctx context.Context, nameContactID string) (bool, error)
}

type marksRepository interface {
	ListCourses(ctx context.Context, studentID string) ([]string, error)
	Marks(ctx context.Context, studentID string) ([]models.MarkRow, error)
}

// CourseService builds the course overview and marks views of a student.
type CourseService struct {
	subjects courseOverviewRepository
	students studentLookup
	marks    marksRepository
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(subjects courseOverviewRepository, students studentLookup, marks marksRepository, metrics *MetricsService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{subjects: subjects, students: students, marks: marks, metrics: metrics, logger: logger}
}

// CleanStudentID undoes the form encodings legacy clients leave in the
// identifier and rejects the literal placeholders they send when logged out.
func CleanStudentID(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "+", " ")
	cleaned = strings.ReplaceAll(cleaned, "%20", " ")
	cleaned = strings.ReplaceAll(cleaned, "%2B", "+")
	cleaned = strings.TrimSpace(cleaned)
	switch cleaned {
	case "":
		return "", appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	case "null", "undefined":
		return "", appErrors.Clone(appErrors.ErrValidation, "Invalid name_contactid format")
	}
	return cleaned, nil
}

// Overview lists every catalog subject of the student's courses with the
// student's status for it. Subjects without an enrollment are Pending.
func (s *CourseService) Overview(ctx context.Context, rawStudentID string) ([]models.CourseSubject, error) {
	studentID, err := CleanStudentID(rawStudentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.students.ExistsByNameContactID(ctx, studentID)
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found")
	}

	start := time.Now()
	rows, err := s.subjects.CourseOverview(ctx, studentID)
	s.metrics.ObserveDBQuery("course_overview", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}

	subjects := make([]models.CourseSubject, 0, len(rows))
	seen := make(map[models.CourseSubject]struct{}, len(rows))
	for _, row := range rows {
		subject := models.CourseSubject{
			SubjectName: strings.TrimSpace(row.SubjectName),
			Course:      strings.TrimSpace(row.Course),
			Status:      s.overviewStatus(studentID, row.Status),
		}
		if _, ok := seen[subject]; ok {
			continue
		}
		seen[subject] = struct{}{}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// overviewStatus maps a raw enrollment status onto its display label. Unknown
// spellings pass through unchanged and are reported.
func (s *CourseService) overviewStatus(studentID string, raw *string) string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return string(models.StatusPending)
	}
	status, ok := models.ParseEnrollmentStatus(*raw)
	if !ok {
		s.logger.Warn("unrecognized enrollment status", zap.String("student_id", studentID), zap.String("status", *raw))
		s.metrics.RecordUnrecognizedStatus("course_overview")
		return strings.TrimSpace(*raw)
	}
	return string(status.Class())
}

// Marks lists the student's courses and the exam marks of each enrolled subject.
func (s *CourseService) Marks(ctx context.Context, studentID string) (*models.MarksOverview, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	}

	start := time.Now()
	courses, err := s.marks.ListCourses(ctx, studentID)
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	rows, err := s.marks.Marks(ctx, studentID)
	s.metrics.ObserveDBQuery("marks_by_student", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}

	overview := &models.MarksOverview{
		Courses:  make([]string, 0, len(courses)),
		Subjects: make([]models.SubjectMark, 0, len(rows)),
	}
	for _, course := range courses {
		overview.Courses = append(overview.Courses, strings.TrimSpace(course))
	}
	for _, row := range rows {
		mark := models.SubjectMark{
			SubjectName:   row.SubjectName,
			Course:        row.Course,
			Status:        models.StatusPending,
			MarksObtained: nonEmpty(row.MarksObtained),
			MarksOutOf:    nonEmpty(row.MarksOutOf),
		}
		if row.MarkedSubject != nil && strings.TrimSpace(*row.MarkedSubject) != "" {
			mark.Status = models.StatusCompleted
		}
		if row.ExamDate != nil {
			formatted := row.ExamDate.Format("02-01-2006")
			mark.ExamDate = &formatted
		}
		overview.Subjects = append(overview.Subjects, mark)
	}
	return overview, nil
}

func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

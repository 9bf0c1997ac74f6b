package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

const notAvailable = "N/A"

const (
	defaultSubjectPageSize = 20
	maxSubjectPageSize     = 100
)

type enrollmentLister interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error)
}

type catalogProvider interface {
	SubjectsForCourses(ctx context.Context, courses []string) ([]models.CatalogEntry, error)
}

// StatusServiceOption configures the status service.
type StatusServiceOption func(*StatusService)

// WithStatusClock overrides the wall clock used to decide whether a batch has ended.
func WithStatusClock(now func() time.Time) StatusServiceOption {
	return func(s *StatusService) {
		if now != nil {
			s.now = now
		}
	}
}

// StatusService classifies a student's subjects as pending, ongoing or completed.
type StatusService struct {
	enrollments enrollmentLister
	catalog     catalogProvider
	metrics     *MetricsService
	logger      *zap.Logger
	now         func() time.Time
}

// NewStatusService constructs the status service.
func NewStatusService(enrollments enrollmentLister, catalog catalogProvider, metrics *MetricsService, logger *zap.Logger, opts ...StatusServiceOption) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &StatusService{
		enrollments: enrollments,
		catalog:     catalog,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// ResolveSubjects returns the student's subjects in the requested class.
func (s *StatusService) ResolveSubjects(ctx context.Context, studentID string, class models.StatusClass) ([]models.SubjectView, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	}
	if !class.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, invalidStatusMessage(class))
	}

	today := models.DateOf(s.now())

	start := time.Now()
	records, err := s.enrollments.ListByStudent(ctx, studentID)
	s.metrics.ObserveDBQuery("enrollments_by_student", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "failed to load enrollments")
	}

	classified := s.classify(studentID, records)

	switch class {
	case models.StatusOngoing:
		return listRecords(classified, models.EnrollmentStatusOngoing, func(r models.EnrollmentRecord) bool {
			return r.OngoingOn(today)
		}), nil
	case models.StatusCompleted:
		return listRecords(classified, models.EnrollmentStatusCompleted, func(r models.EnrollmentRecord) bool {
			return r.CompletedOn(today)
		}), nil
	default:
		return s.pending(ctx, records, classified)
	}
}

// ListSubjects narrows ResolveSubjects to one course and pages the result.
func (s *StatusService) ListSubjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectView, *models.Pagination, error) {
	views, err := s.ResolveSubjects(ctx, q.StudentID, q.Status)
	if err != nil {
		return nil, nil, err
	}

	if course := models.NormalizeText(q.Course); course != "" {
		filtered := make([]models.SubjectView, 0, len(views))
		for _, view := range views {
			if models.NormalizeText(view.Course) == course {
				filtered = append(filtered, view)
			}
		}
		views = filtered
	}

	if q.Page <= 0 && q.PageSize <= 0 {
		return views, &models.Pagination{Page: 1, PageSize: len(views), TotalCount: len(views)}, nil
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = defaultSubjectPageSize
	}
	if size > maxSubjectPageSize {
		size = maxSubjectPageSize
	}

	total := len(views)
	if page-1 > total/size {
		return []models.SubjectView{}, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
	}
	from := (page - 1) * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}
	return views[from:to], &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

type classifiedRecord struct {
	record models.EnrollmentRecord
	status models.EnrollmentStatus
}

// classify parses every record status once. Records with a blank or unknown
// status are left out of every class; unknown spellings are reported.
func (s *StatusService) classify(studentID string, records []models.EnrollmentRecord) []classifiedRecord {
	result := make([]classifiedRecord, 0, len(records))
	for _, record := range records {
		status, ok := models.ParseEnrollmentStatus(record.Status)
		if !ok {
			if strings.TrimSpace(record.Status) != "" {
				s.logger.Warn("unrecognized enrollment status",
					zap.String("student_id", studentID),
					zap.String("status", record.Status),
					zap.String("course", record.Course),
					zap.String("subject", record.Subject),
				)
				s.metrics.RecordUnrecognizedStatus("reconciler")
			}
			continue
		}
		result = append(result, classifiedRecord{record: record, status: status})
	}
	return result
}

func listRecords(records []classifiedRecord, status models.EnrollmentStatus, inRange func(models.EnrollmentRecord) bool) []models.SubjectView {
	matched := make([]models.EnrollmentRecord, 0, len(records))
	for _, item := range records {
		if item.status != status || !item.record.HasListableNames() || !inRange(item.record) {
			continue
		}
		matched = append(matched, item.record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return recordKey(matched[i]).less(recordKey(matched[j]))
	})

	views := make([]models.SubjectView, 0, len(matched))
	seen := make(map[subjectKey]struct{}, len(matched))
	for _, record := range matched {
		key := recordKey(record)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		views = append(views, models.SubjectView{
			SubjectName: strings.TrimSpace(record.Subject),
			Course:      strings.TrimSpace(record.Course),
			Status:      status.Class(),
			BatchTime:   strings.TrimSpace(record.BatchTime),
			Faculty:     orNotAvailable(record.Faculty),
			StartDate:   record.StartDate,
			EndDate:     record.EndDate,
		})
	}
	return views
}

func (s *StatusService) pending(ctx context.Context, records []models.EnrollmentRecord, classified []classifiedRecord) ([]models.SubjectView, error) {
	courses := enrolledCourses(records)
	if len(courses) == 0 {
		return []models.SubjectView{}, nil
	}

	excluded := make(map[string]struct{}, len(classified))
	for _, item := range classified {
		if subject := models.NormalizeText(item.record.Subject); subject != "" {
			excluded[subject] = struct{}{}
		}
	}

	catalog, err := s.catalog.SubjectsForCourses(ctx, courses)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to load subject catalog")
	}

	candidates := make([]models.CatalogEntry, 0, len(catalog))
	for _, entry := range catalog {
		course := models.NormalizeText(entry.Course)
		subject := models.NormalizeText(entry.SubjectName)
		if course == "" || subject == "" {
			continue
		}
		if _, ok := excluded[subject]; ok {
			continue
		}
		candidates = append(candidates, entry)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return catalogKey(candidates[i]).less(catalogKey(candidates[j]))
	})

	views := make([]models.SubjectView, 0, len(candidates))
	seen := make(map[subjectKey]struct{}, len(candidates))
	for _, entry := range candidates {
		key := catalogKey(entry)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		views = append(views, models.SubjectView{
			SubjectName: strings.TrimSpace(entry.SubjectName),
			Course:      strings.TrimSpace(entry.Course),
			Status:      models.StatusPending,
			BatchTime:   notAvailable,
			Faculty:     notAvailable,
		})
	}
	return views, nil
}

// enrolledCourses lists the course of every record, whatever its subject or status.
func enrolledCourses(records []models.EnrollmentRecord) []string {
	seen := make(map[string]struct{}, len(records))
	courses := make([]string, 0)
	for _, record := range records {
		if !record.HasCourse() {
			continue
		}
		key := models.NormalizeText(record.Course)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		courses = append(courses, strings.TrimSpace(record.Course))
	}
	return courses
}

type subjectKey struct {
	course    string
	subject   string
	batchTime string
}

func (k subjectKey) less(other subjectKey) bool {
	if k.course != other.course {
		return k.course < other.course
	}
	if k.subject != other.subject {
		return k.subject < other.subject
	}
	return k.batchTime < other.batchTime
}

func recordKey(r models.EnrollmentRecord) subjectKey {
	return subjectKey{
		course:    models.NormalizeText(r.Course),
		subject:   models.NormalizeText(r.Subject),
		batchTime: models.NormalizeText(r.BatchTime),
	}
}

func catalogKey(e models.CatalogEntry) subjectKey {
	return subjectKey{course: models.NormalizeText(e.Course), subject: models.NormalizeText(e.SubjectName)}
}

func orNotAvailable(value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return notAvailable
}

func invalidStatusMessage(class models.StatusClass) string {
	valid := make([]string, 0, 3)
	for _, c := range models.StatusClasses() {
		valid = append(valid, string(c))
	}
	return fmt.Sprintf("invalid status %q: must be one of %s", string(class), strings.Join(valid, ", "))
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itech-net/student-portal-api/internal/models"
)

const (
	enrollmentsByStudentQuery = `SELECT COALESCE(course, '') AS course, COALESCE(subject, '') AS subject, COALESCE(status, '') AS status,
        COALESCE(batch_time, '') AS batch_time, COALESCE(faculty, '') AS faculty, startdate, endate
        FROM faculty_student
        WHERE TRIM(nameid) = ?
        ORDER BY course, subject, batch_time, startdate`

	coursesByStudentQuery = `SELECT DISTINCT course FROM faculty_student
        WHERE nameid = ? AND course IS NOT NULL AND course <> ''
        ORDER BY course`

	timetableByStudentQuery = `SELECT DISTINCT COALESCE(batch_time, '') AS batch_time, faculty, course, subject, startdate, endate
        FROM faculty_student
        WHERE nameid = ?
        ORDER BY course, subject, batch_time`

	marksByStudentQuery = `SELECT COALESCE(fs.subject, '') AS subjectname, COALESCE(fs.course, '') AS course, sm.subject AS sm_subject,
        sm.marks_outoff, sm.exam_date, sm.marks_obtain
        FROM faculty_student fs
        LEFT JOIN student_marks sm ON sm.subject = fs.subject AND sm.nameid = ?
        WHERE fs.nameid = ?
        ORDER BY fs.course, fs.subject`
)

// EnrollmentRepository reads faculty_student enrollment records.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListByStudent returns every enrollment record of a student, nulls flattened to empty strings.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error) {
	var records []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(enrollmentsByStudentQuery), studentID); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return records, nil
}

// ListCourses returns the distinct non-empty courses a student is enrolled in.
func (r *EnrollmentRepository) ListCourses(ctx context.Context, studentID string) ([]string, error) {
	var courses []string
	if err := r.db.SelectContext(ctx, &courses, r.db.Rebind(coursesByStudentQuery), studentID); err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	return courses, nil
}

// Timetable returns the distinct batches a student is scheduled in.
func (r *EnrollmentRepository) Timetable(ctx context.Context, studentID string) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(timetableByStudentQuery), studentID); err != nil {
		return nil, fmt.Errorf("list batch timetable: %w", err)
	}
	return entries, nil
}

// Marks returns enrolled subjects joined with any recorded exam marks.
func (r *EnrollmentRepository) Marks(ctx context.Context, studentID string) ([]models.MarkRow, error) {
	var rows []models.MarkRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(marksByStudentQuery), studentID, studentID); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	return rows, nil
}

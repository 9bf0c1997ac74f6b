package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itech-net/student-portal-api/internal/models"
)

const (
	catalogByCoursesQuery = `SELECT DISTINCT subjectname, coursename AS course FROM subject
        WHERE coursename IN (?) AND subjectname IS NOT NULL AND subjectname <> ''
        ORDER BY coursename, subjectname`

	courseOverviewQuery = `SELECT DISTINCT s.subjectname, s.coursename AS course, fs2.status
        FROM subject s
        JOIN faculty_student fs ON fs.course = s.coursename AND fs.nameid = ?
        LEFT JOIN faculty_student fs2 ON fs2.subject = s.subjectname AND fs2.nameid = ?
        WHERE s.coursename IS NOT NULL AND s.coursename <> ''
        ORDER BY s.coursename, s.subjectname`
)

// SubjectRepository reads the subject catalog.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs the repository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// ListByCourses returns the catalog entries of the given courses.
func (r *SubjectRepository) ListByCourses(ctx context.Context, courses []string) ([]models.CatalogEntry, error) {
	if len(courses) == 0 {
		return []models.CatalogEntry{}, nil
	}
	query, args, err := sqlx.In(catalogByCoursesQuery, courses)
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return entries, nil
}

// CourseOverview returns every catalog subject of the student's courses with
// the raw status of any matching enrollment.
func (r *SubjectRepository) CourseOverview(ctx context.Context, studentID string) ([]models.CourseSubjectRow, error) {
	var rows []models.CourseSubjectRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(courseOverviewQuery), studentID, studentID); err != nil {
		return nil, fmt.Errorf("course overview: %w", err)
	}
	return rows, nil
}

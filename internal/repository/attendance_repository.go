package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itech-net/student-portal-api/internal/models"
)

const (
	attendanceByBatchQuery = `SELECT DISTINCT a.date, a.topic, a.attendence, a.subject AS subject_name, a.batchtime,
        fs.faculty, fs.startdate, fs.endate
        FROM attendence a
        JOIN faculty_student fs ON fs.batch_time = a.batchtime AND fs.subject = a.subject
        WHERE a.batchtime = ? AND a.name = ? AND a.subject = ?
        ORDER BY a.date`

	batchTimesByStudentQuery = `SELECT DISTINCT batchtime FROM attendence
        WHERE name = ? AND batchtime IS NOT NULL AND batchtime <> ''
        ORDER BY batchtime`
)

// AttendanceRepository reads the attendence log.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// ListByBatch returns a student's attendance for one subject batch.
func (r *AttendanceRepository) ListByBatch(ctx context.Context, q models.AttendanceQuery) ([]models.AttendanceEntry, error) {
	var entries []models.AttendanceEntry
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(attendanceByBatchQuery), q.BatchTime, q.StudentID, q.Subject); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return entries, nil
}

// ListBatchTimes returns the distinct batch times a student has attendance in.
func (r *AttendanceRepository) ListBatchTimes(ctx context.Context, studentID string) ([]string, error) {
	var batches []string
	if err := r.db.SelectContext(ctx, &batches, r.db.Rebind(batchTimesByStudentQuery), studentID); err != nil {
		return nil, fmt.Errorf("list batch timings: %w", err)
	}
	return batches, nil
}

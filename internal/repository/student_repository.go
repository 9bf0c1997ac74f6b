package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/itech-net/student-portal-api/internal/models"
)

const (
	studentByUsernameQuery = `SELECT id, username, name, contact, branch, course, EmailId AS email,
        COALESCE(name_contactid, '') AS name_contactid, COALESCE(password, '') AS password
        FROM student WHERE username = ? LIMIT 1`

	studentExistsQuery = `SELECT id FROM student WHERE name_contactid = ? LIMIT 1`
)

// Columns the profile updater may write.
var profileColumns = map[string]struct{}{
	"name":     {},
	"contact":  {},
	"username": {},
	"course":   {},
	"address":  {},
	"branch":   {},
	"password": {},
	"status":   {},
	"EmailId":  {},
}

// StudentRepository provides database access for student rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByUsername returns a student by login name. sql.ErrNoRows is returned unwrapped.
func (r *StudentRepository) FindByUsername(ctx context.Context, username string) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, r.db.Rebind(studentByUsernameQuery), username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find student by username: %w", err)
	}
	return &student, nil
}

// ExistsByNameContactID reports whether a student row carries the identifier.
func (r *StudentRepository) ExistsByNameContactID(ctx context.Context, nameContactID string) (bool, error) {
	var id string
	if err := r.db.GetContext(ctx, &id, r.db.Rebind(studentExistsQuery), nameContactID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}

// UpdateProfile writes the given columns in a single statement and returns the affected row count.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id string, fields []models.ProfileField) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("update profile: no fields")
	}
	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for _, field := range fields {
		if _, ok := profileColumns[field.Column]; !ok {
			return 0, fmt.Errorf("update profile: column %q is not writable", field.Column)
		}
		sets = append(sets, field.Column+" = ?")
		args = append(args, field.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE student SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update profile rows: %w", err)
	}
	return affected, nil
}

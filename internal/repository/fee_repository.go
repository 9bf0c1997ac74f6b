package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itech-net/student-portal-api/internal/models"
)

const feesByStudentQuery = `SELECT DISTINCT Receipt AS receipt, name, course, Recieve AS recieve, Dates AS dates,
        ModeOfPayement AS mode_of_payment, courseFees AS course_fees, Paid AS paid, Balance AS balance,
        status, totalfees AS total_fees
        FROM payement WHERE name_contactid = ?`

// FeeRepository reads the payement ledger.
type FeeRepository struct {
	db *sqlx.DB
}

// NewFeeRepository constructs the repository.
func NewFeeRepository(db *sqlx.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// ListByStudent returns the fee records of a student.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.FeeRecord, error) {
	var records []models.FeeRecord
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(feesByStudentQuery), studentID); err != nil {
		return nil, fmt.Errorf("list fee details: %w", err)
	}
	return records, nil
}

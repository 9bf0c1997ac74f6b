package models

import "time"

// AttendanceEntry is one attendance log line enriched with its batch details.
type AttendanceEntry struct {
	Date        *string    `db:"date" json:"date"`
	Topic       *string    `db:"topic" json:"topic"`
	Attendance  *string    `db:"attendence" json:"attendence"`
	SubjectName string     `db:"subject_name" json:"subject_name"`
	BatchTime   string     `db:"batchtime" json:"batchtime"`
	Faculty     *string    `db:"faculty" json:"faculty"`
	StartDate   *time.Time `db:"startdate" json:"startdate"`
	EndDate     *time.Time `db:"endate" json:"endate"`
}

// AttendanceQuery identifies one batch of one subject for a student.
type AttendanceQuery struct {
	StudentID string `validate:"required"`
	BatchTime string `validate:"required"`
	Subject   string `validate:"required"`
}

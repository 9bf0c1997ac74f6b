package models

import (
	"strings"
	"time"
)

// EnrollmentStatus is the canonical form of the free-text status staff record
// on faculty_student rows.
type EnrollmentStatus string

const (
	EnrollmentStatusOngoing   EnrollmentStatus = "ONGOING"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
)

// Spellings seen in the legacy data, keyed by their trimmed lower-case form.
var enrollmentStatusSpellings = map[string]EnrollmentStatus{
	"persuing":  EnrollmentStatusOngoing,
	"pursuing":  EnrollmentStatusOngoing,
	"ongoing":   EnrollmentStatusOngoing,
	"completed": EnrollmentStatusCompleted,
}

// ParseEnrollmentStatus maps a recorded status onto the closed enum. The
// second return value is false for spellings outside the known set.
func ParseEnrollmentStatus(raw string) (EnrollmentStatus, bool) {
	status, ok := enrollmentStatusSpellings[NormalizeText(raw)]
	return status, ok
}

// Class returns the derived status class for a recorded status.
func (s EnrollmentStatus) Class() StatusClass {
	if s == EnrollmentStatusCompleted {
		return StatusCompleted
	}
	return StatusOngoing
}

// StatusClass is the derived, non-persisted classification of a subject for a student.
type StatusClass string

const (
	StatusPending   StatusClass = "Pending"
	StatusOngoing   StatusClass = "Ongoing"
	StatusCompleted StatusClass = "Completed"
)

// StatusClasses lists the recognized classes in display order.
func StatusClasses() []StatusClass {
	return []StatusClass{StatusPending, StatusOngoing, StatusCompleted}
}

// Valid reports whether s is one of the recognized literals. The match is case-sensitive.
func (s StatusClass) Valid() bool {
	switch s {
	case StatusPending, StatusOngoing, StatusCompleted:
		return true
	default:
		return false
	}
}

// Header rows imported from the enrollment spreadsheets.
const (
	courseHeaderSentinel  = "course"
	subjectHeaderSentinel = "subjects"
)

// NormalizeText trims and case-folds text for comparisons and ordering.
func NormalizeText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// EnrollmentRecord is one faculty_student row: a student attending a subject
// of a course in a batch.
type EnrollmentRecord struct {
	Course    string     `db:"course" json:"course"`
	Subject   string     `db:"subject" json:"subject"`
	Status    string     `db:"status" json:"status"`
	BatchTime string     `db:"batch_time" json:"batch_time"`
	Faculty   string     `db:"faculty" json:"faculty"`
	StartDate *time.Time `db:"startdate" json:"startdate"`
	EndDate   *time.Time `db:"endate" json:"endate"`
}

// HasListableNames reports whether course and subject are present and not header sentinels.
func (r EnrollmentRecord) HasListableNames() bool {
	course := NormalizeText(r.Course)
	subject := NormalizeText(r.Subject)
	return course != "" && subject != "" && course != courseHeaderSentinel && subject != subjectHeaderSentinel
}

// HasCourse reports whether the record names a course other than the header sentinel.
func (r EnrollmentRecord) HasCourse() bool {
	course := NormalizeText(r.Course)
	return course != "" && course != courseHeaderSentinel
}

// OngoingOn reports whether the record is still running on day (a date at midnight).
func (r EnrollmentRecord) OngoingOn(day time.Time) bool {
	return r.EndDate == nil || !DateOf(*r.EndDate).Before(day)
}

// CompletedOn reports whether the record has an end date on or before day.
func (r EnrollmentRecord) CompletedOn(day time.Time) bool {
	return r.EndDate != nil && !DateOf(*r.EndDate).After(day)
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SubjectView is one reconciled subject returned by the batch-status endpoint.
type SubjectView struct {
	SubjectName string      `json:"subjectname"`
	Course      string      `json:"course"`
	Status      StatusClass `json:"status"`
	BatchTime   string      `json:"batch_time"`
	Faculty     string      `json:"faculty"`
	StartDate   *time.Time  `json:"startdate"`
	EndDate     *time.Time  `json:"endate"`
}

// SubjectQuery scopes a batch-status lookup.
type SubjectQuery struct {
	StudentID string
	Status    StatusClass
	Course    string
	Page      int
	PageSize  int
}

// TimetableEntry is one distinct batch a student is scheduled in.
type TimetableEntry struct {
	BatchTime string     `db:"batch_time" json:"batch_time"`
	Faculty   *string    `db:"faculty" json:"faculty"`
	Course    *string    `db:"course" json:"course"`
	Subject   *string    `db:"subject" json:"subject"`
	StartDate *time.Time `db:"startdate" json:"startdate"`
	EndDate   *time.Time `db:"endate" json:"endate"`
}

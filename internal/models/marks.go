package models

import "time"

// MarkRow joins an enrollment subject with an optional marks row.
type MarkRow struct {
	SubjectName   string     `db:"subjectname"`
	Course        string     `db:"course"`
	MarkedSubject *string    `db:"sm_subject"`
	MarksOutOf    *string    `db:"marks_outoff"`
	ExamDate      *time.Time `db:"exam_date"`
	MarksObtained *string    `db:"marks_obtain"`
}

// SubjectMark is the marks view of one enrolled subject.
type SubjectMark struct {
	SubjectName   string      `json:"subjectname"`
	Course        string      `json:"course"`
	Status        StatusClass `json:"status"`
	ExamDate      *string     `json:"exam_date"`
	MarksObtained *string     `json:"marks_obtain"`
	MarksOutOf    *string     `json:"marks_outoff"`
}

// MarksOverview lists a student's courses and per-subject marks.
type MarksOverview struct {
	Courses  []string      `json:"courses"`
	Subjects []SubjectMark `json:"subjects"`
}

package models

// CatalogEntry is one (course, subject) pair of the curriculum.
type CatalogEntry struct {
	Course      string `db:"course" json:"course"`
	SubjectName string `db:"subjectname" json:"subjectname"`
}

// CourseSubject is a catalog subject annotated with the student's status.
type CourseSubject struct {
	SubjectName string `db:"subjectname" json:"subjectname"`
	Course      string `db:"course" json:"course"`
	Status      string `db:"status" json:"status"`
}

// CourseSubjectRow is the raw overview row before status normalization.
type CourseSubjectRow struct {
	SubjectName string  `db:"subjectname"`
	Course      string  `db:"course"`
	Status      *string `db:"status"`
}

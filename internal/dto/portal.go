package dto

// StudentQuery identifies the student a portal read is for.
type StudentQuery struct {
	StudentID string `form:"name_contactid" json:"name_contactid"`
}

// BatchStatusQuery captures /get-batch parameters.
type BatchStatusQuery struct {
	StudentID string `form:"name_contactid" json:"name_contactid"`
	Status    string `form:"status" json:"status"`
	Course    string `form:"course" json:"course"`
	Page      int    `form:"page" json:"page"`
	Limit     int    `form:"limit" json:"limit"`
}

// AttendanceQuery captures /attendance parameters under their legacy names.
type AttendanceQuery struct {
	StudentID string `form:"name_contactid" json:"name_contactid"`
	BatchTime string `form:"batchtime" json:"batchtime"`
	Subject   string `form:"Subject" json:"Subject"`
}

// FeeExportQuery captures /fee-details/export parameters.
type FeeExportQuery struct {
	StudentID string `form:"name_contactid" json:"name_contactid"`
	Format    string `form:"format" json:"format"`
}

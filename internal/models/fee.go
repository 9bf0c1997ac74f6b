package models

// FeeRecord is a read-only projection of a payement ledger row.
type FeeRecord struct {
	Receipt       *string `db:"receipt" json:"Receipt"`
	Name          *string `db:"name" json:"name"`
	Course        *string `db:"course" json:"course"`
	Received      *string `db:"recieve" json:"Recieve"`
	Dates         *string `db:"dates" json:"Dates"`
	ModeOfPayment *string `db:"mode_of_payment" json:"ModeOfPayement"`
	CourseFees    *string `db:"course_fees" json:"courseFees"`
	Paid          *string `db:"paid" json:"Paid"`
	Balance       *string `db:"balance" json:"Balance"`
	Status        *string `db:"status" json:"status"`
	TotalFees     *string `db:"total_fees" json:"totalfees"`
}

// ExportFormat selects the rendering of a fee statement.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

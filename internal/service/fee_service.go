package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/export"
)

type feeRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.FeeRecord, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

var feeHeaders = []string{"Receipt", "Date", "Course", "Received", "Mode", "Course Fees", "Paid", "Balance", "Status", "Total Fees"}

// FeeStatement is a rendered fee export ready to stream.
type FeeStatement struct {
	Filename    string
	ContentType string
	Body        []byte
}

// FeeService reads the fee ledger and renders statements.
type FeeService struct {
	repo    feeRepository
	csv     datasetRenderer
	pdf     datasetRenderer
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewFeeService constructs the fee service. Nil renderers fall back to the pkg/export defaults.
func NewFeeService(repo feeRepository, csv, pdf datasetRenderer, metrics *MetricsService, logger *zap.Logger) *FeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &FeeService{repo: repo, csv: csv, pdf: pdf, metrics: metrics, logger: logger, now: time.Now}
}

// List returns every fee record of a student.
func (s *FeeService) List(ctx context.Context, studentID string) ([]models.FeeRecord, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name_contactid is required")
	}
	start := time.Now()
	records, err := s.repo.ListByStudent(ctx, studentID)
	s.metrics.ObserveDBQuery("fees_by_student", time.Since(start))
	if err != nil {
		return nil, appErrors.Storage(err, "Database error")
	}
	if records == nil {
		records = []models.FeeRecord{}
	}
	return records, nil
}

// Export renders the student's fee statement as CSV or PDF.
func (s *FeeService) Export(ctx context.Context, studentID string, format models.ExportFormat) (*FeeStatement, error) {
	format = models.ExportFormat(strings.ToLower(strings.TrimSpace(string(format))))
	var (
		renderer    datasetRenderer
		contentType string
	)
	switch format {
	case models.ExportFormatCSV:
		renderer, contentType = s.csv, "text/csv"
	case models.ExportFormatPDF:
		renderer, contentType = s.pdf, "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	records, err := s.List(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no fee records found")
	}

	body, err := renderer.Render(s.feeDataset(strings.TrimSpace(studentID), records))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render fee statement")
	}
	s.logger.Info("fee statement exported", zap.String("student_id", studentID), zap.String("format", string(format)), zap.Int("rows", len(records)))

	return &FeeStatement{
		Filename:    fmt.Sprintf("fee-statement-%s.%s", s.now().Format("20060102"), format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (s *FeeService) feeDataset(studentID string, records []models.FeeRecord) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	var paid float64
	for _, record := range records {
		rows = append(rows, map[string]string{
			"Receipt":     deref(record.Receipt),
			"Date":        deref(record.Dates),
			"Course":      deref(record.Course),
			"Received":    deref(record.Received),
			"Mode":        deref(record.ModeOfPayment),
			"Course Fees": deref(record.CourseFees),
			"Paid":        deref(record.Paid),
			"Balance":     deref(record.Balance),
			"Status":      deref(record.Status),
			"Total Fees":  deref(record.TotalFees),
		})
		if amount, err := strconv.ParseFloat(strings.TrimSpace(deref(record.Paid)), 64); err == nil {
			paid += amount
		}
	}

	subtitle := []string{"Student: " + studentID}
	if name := deref(records[0].Name); name != "" {
		subtitle = append([]string{"Name: " + name}, subtitle...)
	}
	subtitle = append(subtitle, "Generated: "+s.now().Format("02-01-2006"))

	return export.Dataset{
		Title:    "Fee Statement",
		Subtitle: subtitle,
		Headers:  feeHeaders,
		Rows:     rows,
		Footer: map[string]string{
			"Receipt": "Total paid",
			"Paid":    strconv.FormatFloat(paid, 'f', -1, 64),
			"Balance": deref(records[len(records)-1].Balance),
		},
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

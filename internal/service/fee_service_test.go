package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
	"github.com/itech-net/student-portal-api/pkg/export"
)

type fakeFeeRepo struct {
	records []models.FeeRecord
	err     error
}

func (f *fakeFeeRepo) ListByStudent(context.Context, string) ([]models.FeeRecord, error) {
	return f.records, f.err
}

type capturingRenderer struct {
	dataset export.Dataset
	err     error
}

func (c *capturingRenderer) Render(data export.Dataset) ([]byte, error) {
	c.dataset = data
	if c.err != nil {
		return nil, c.err
	}
	return []byte("rendered"), nil
}

func str(value string) *string { return &value }

func sampleFees() []models.FeeRecord {
	return []models.FeeRecord{
		{Receipt: str("R-1"), Name: str("Asha Rao"), Course: str("BCA"), Paid: str("5000"), Balance: str("25000"), ModeOfPayment: str("UPI")},
		{Receipt: str("R-2"), Name: str("Asha Rao"), Course: str("BCA"), Paid: str("2500.50"), Balance: str("22499.50")},
	}
}

func TestFeeServiceList(t *testing.T) {
	svc := NewFeeService(&fakeFeeRepo{records: sampleFees()}, nil, nil, nil, nil)

	records, err := svc.List(context.Background(), "asha-9876")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	empty := NewFeeService(&fakeFeeRepo{}, nil, nil, nil, nil)
	records, err = empty.List(context.Background(), "asha-9876")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, err = svc.List(context.Background(), " ")
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestFeeServiceExportCSV(t *testing.T) {
	svc := NewFeeService(&fakeFeeRepo{records: sampleFees()}, nil, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC) }

	statement, err := svc.Export(context.Background(), "asha-9876", "CSV")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", statement.ContentType)
	assert.Equal(t, "fee-statement-20240915.csv", statement.Filename)

	lines := strings.Split(strings.TrimSpace(string(statement.Body)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Receipt,Date,Course"))
	assert.Contains(t, lines[1], "R-1")
	assert.Contains(t, lines[3], "Total paid")
	assert.Contains(t, lines[3], "7500.5")
}

func TestFeeServiceExportPDFUsesRenderer(t *testing.T) {
	pdf := &capturingRenderer{}
	svc := NewFeeService(&fakeFeeRepo{records: sampleFees()}, nil, pdf, nil, nil)

	statement, err := svc.Export(context.Background(), "asha-9876", models.ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", statement.ContentType)
	assert.Equal(t, []byte("rendered"), statement.Body)
	assert.Equal(t, "Fee Statement", pdf.dataset.Title)
	assert.Equal(t, "Name: Asha Rao", pdf.dataset.Subtitle[0])
	assert.Equal(t, "22499.50", pdf.dataset.Footer["Balance"])
	assert.Len(t, pdf.dataset.Rows, 2)
}

func TestFeeServiceExportErrors(t *testing.T) {
	svc := NewFeeService(&fakeFeeRepo{records: sampleFees()}, nil, &capturingRenderer{err: errors.New("font missing")}, nil, nil)

	_, err := svc.Export(context.Background(), "asha-9876", "xlsx")
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Export(context.Background(), "asha-9876", models.ExportFormatPDF)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))

	empty := NewFeeService(&fakeFeeRepo{}, nil, nil, nil, nil)
	_, err = empty.Export(context.Background(), "asha-9876", models.ExportFormatCSV)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	broken := NewFeeService(&fakeFeeRepo{err: errors.New("gone")}, nil, nil, nil, nil)
	_, err = broken.Export(context.Background(), "asha-9876", models.ExportFormatCSV)
	assert.True(t, appErrors.Is(err, appErrors.ErrStorage))
}

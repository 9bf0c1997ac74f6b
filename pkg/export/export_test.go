package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeDataset() Dataset {
	return Dataset{
		Title:    "Fee statement",
		Subtitle: []string{"Student: Asha Rao"},
		Headers:  []string{"Receipt", "Date", "Paid"},
		Rows: []map[string]string{
			{"Receipt": "R-101", "Date": "2024-06-01", "Paid": "5000"},
			{"Receipt": "R-102", "Date": "2024-07-01", "Paid": "2500"},
		},
		Footer: map[string]string{"Receipt": "Total", "Paid": "7500"},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(feeDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Receipt,Date,Paid", lines[0])
	assert.Equal(t, "R-101,2024-06-01,5000", lines[1])
	assert.Equal(t, "Total,,7500", lines[3])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(feeDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

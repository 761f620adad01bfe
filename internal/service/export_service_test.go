package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"billed-fe-svc/internal/models/response"
)

func TestExportBillsToExcel(t *testing.T) {
	log, _ := newTestLogger()
	svc := &exportService{
		logger: log,
		now:    func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) },
	}

	bills := billsFixture()
	SortBillsByDateDesc(bills)
	views := make([]response.BillView, 0, len(bills))
	for _, b := range bills {
		views = append(views, response.BillView{Bill: b, StatusLabel: "label-" + b.ID})
	}

	content, filename, err := svc.ExportBillsToExcel(views)
	require.NoError(t, err)
	assert.Equal(t, "notes-de-frais-20240309.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, exportSheetName, f.GetSheetName(f.GetActiveSheetIndex()))

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "2004-04-04", rows[1][0])
	assert.Equal(t, "encore", rows[1][2])
	assert.Equal(t, "400", rows[1][3])
	assert.Equal(t, "2001-01-01", rows[4][0])
}

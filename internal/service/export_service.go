package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"billed-fe-svc/internal/models/response"
	"billed-fe-svc/pkg/logger"
)

// ExportService turns a bill list into a spreadsheet
type ExportService interface {
	ExportBillsToExcel(bills []response.BillView) ([]byte, string, error)
}

type exportService struct {
	logger *logger.Logger
	now    func() time.Time
}

// NewExportService creates a new instance of ExportService
func NewExportService(logger *logger.Logger) ExportService {
	return &exportService{
		logger: logger,
		now:    time.Now,
	}
}

const exportSheetName = "Notes de frais"

var exportHeaders = []string{"Date", "Type", "Nom", "Montant", "TVA", "%", "Statut", "Commentaire", "Justificatif"}

// ExportBillsToExcel writes the bills in the given order and returns the
// file content with its download name
func (s *exportService) ExportBillsToExcel(bills []response.BillView) ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
		_ = f.SetCellStyle(exportSheetName, "A1", lastCol+"1", headerStyle)
	}

	for i, bill := range bills {
		row := i + 2
		amount, _ := bill.Amount.Float64()
		values := []interface{}{
			bill.Date,
			bill.Type,
			bill.Name,
			amount,
			bill.VAT,
			bill.Pct,
			bill.StatusLabel,
			bill.Commentary,
			bill.FileURL,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	for i := 1; i <= len(exportHeaders); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		_ = f.SetColWidth(exportSheetName, col, col, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("notes-de-frais-%s.xlsx", s.now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

package service

import (
	"bytes"
	"fmt"
	"time"

	"instrument-tray-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportService renders tray composition sheets as Excel workbooks for the
// sterile processing floor. The buffer is returned to the handler, which
// sets the download headers.
type ExportService struct {
	trayRepo repository.TrayRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(trayRepo repository.TrayRepositoryInterface) *ExportService {
	return &ExportService{trayRepo: trayRepo}
}

// ExportTray renders one tray with its items as an xlsx workbook and
// returns the content plus a suggested filename.
func (s *ExportService) ExportTray(trayID uuid.UUID) (*bytes.Buffer, string, error) {
	tray, err := s.trayRepo.GetWithDetails(trayID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tray"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "C", 18)
	f.SetColWidth(sheet, "D", "D", 24)
	f.SetColWidth(sheet, "E", "E", 10)
	f.SetColWidth(sheet, "F", "F", 30)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(sheet, "A1", tray.Name)
	f.SetCellValue(sheet, "A2", "Classification")
	f.SetCellValue(sheet, "B2", string(tray.Classification))
	f.SetCellValue(sheet, "A3", "Status")
	f.SetCellValue(sheet, "B3", string(tray.Status))
	f.SetCellValue(sheet, "A4", "Version")
	f.SetCellValue(sheet, "B4", tray.Version)
	if tray.Department != nil {
		f.SetCellValue(sheet, "A5", "Department")
		f.SetCellValue(sheet, "B5", tray.Department.Name)
	}

	const headerRow = 7
	headers := []string{"Position", "Designation", "Article No.", "Manufacturer", "Quantity", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A7", "F7", headerStyle)

	for i := range tray.Items {
		item := &tray.Items[i]
		row := headerRow + 1 + i
		designation := item.InstrumentID.String()
		articleNumber := ""
		manufacturer := ""
		if item.Instrument != nil {
			designation = item.Instrument.Designation
			articleNumber = item.Instrument.ArticleNumber
			if item.Instrument.Manufacturer != nil {
				manufacturer = item.Instrument.Manufacturer.Name
			}
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Position)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), designation)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), articleNumber)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), manufacturer)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Note)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"tray_id": tray.ID,
		"items":   len(tray.Items),
	}).Info("Exported tray composition sheet")

	filename := fmt.Sprintf("tray-%s-v%d-%s.xlsx",
		sanitizeFilename(tray.Name), tray.Version, time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// sanitizeFilename keeps letters, digits and dashes so the suggested
// download name is safe in Content-Disposition
func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "tray"
	}
	return string(out)
}

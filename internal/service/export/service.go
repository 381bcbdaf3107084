package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
)

var exportHeader = []string{"User", "Date", "Sign In", "Sign Out", "Notes"}

// ExportService renders the full attendance history as a downloadable
// document. Each method returns the file content and a suggested filename.
type ExportService interface {
	CSV(ctx context.Context) (*bytes.Buffer, string, error)
	Excel(ctx context.Context) (*bytes.Buffer, string, error)
	PDF(ctx context.Context) (*bytes.Buffer, string, error)
}

type ExportServiceImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewExportService(attendanceService attendance.AttendanceService) ExportService {
	return &ExportServiceImpl{
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

func (s *ExportServiceImpl) filename(ext string) string {
	return fmt.Sprintf("attendance_report_%s.%s", s.now().Format("2006-01-02"), ext)
}

// CSV implements ExportService.
func (s *ExportServiceImpl) CSV(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.attendanceService.ExportRows(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.User, row.Date, row.SignIn, row.SignOut, row.Notes}); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return &buf, s.filename("csv"), nil
}

// Excel implements ExportService.
func (s *ExportServiceImpl) Excel(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.attendanceService.ExportRows(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rows {
		values := []string{row.User, row.Date, row.SignIn, row.SignOut, row.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate excel file: %w", err)
	}
	return buf, s.filename("xlsx"), nil
}

// PDF implements ExportService.
func (s *ExportServiceImpl) PDF(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.attendanceService.ExportRows(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(12)

	colWidths := []float64{60, 35, 35, 35, 100}

	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range exportHeader {
		pdf.CellFormat(colWidths[i], 8, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		values := []string{row.User, row.Date, row.SignIn, row.SignOut, row.Notes}
		for i, v := range values {
			pdf.CellFormat(colWidths[i], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to generate pdf: %w", err)
	}
	return &buf, s.filename("pdf"), nil
}

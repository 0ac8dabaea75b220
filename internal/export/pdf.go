package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
)

// MonthlyPDF renders the monthly summary on a landscape A4 page.
func MonthlyPDF(company models.CompanyInfo, rows []report.MonthlyRow, title, path string) error {
	records := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		records = append(records, monthlyRecord(r))
	}
	records = append(records, totalsRecord(rows))
	return writePDF(path, company, title, monthlyHeader, records, nil)
}

// AnnualPDF renders the year totals followed by the leave ranges of each
// employee.
func AnnualPDF(company models.CompanyInfo, stats []report.AnnualStats, title, path string) error {
	var notes []string
	for _, a := range stats {
		if len(a.FerieRanges) > 0 {
			notes = append(notes, fmt.Sprintf("%s - ferie: %s", a.EmployeeName, FormatRanges(a.FerieRanges)))
		}
		if len(a.MalattiaRanges) > 0 {
			notes = append(notes, fmt.Sprintf("%s - malattia: %s", a.EmployeeName, FormatRanges(a.MalattiaRanges)))
		}
	}
	return writePDF(path, company, title, annualHeader, annualRecords(stats), notes)
}

// DetailPDF renders the day-by-day table of one employee.
func DetailPDF(company models.CompanyInfo, rows []report.DayRow, title, path string) error {
	records := make([][]string, 0, len(rows))
	for _, d := range rows {
		records = append(records, detailRecord(d))
	}
	return writePDF(path, company, title, detailHeader, records, nil)
}

func writePDF(path string, company models.CompanyInfo, title string, header []string, records [][]string, notes []string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(company.Name), "", 1, "L", false, 0, "")
	if company.Address != "" || company.VATID != "" {
		pdf.SetFont("Helvetica", "", 9)
		line := company.Address
		if company.VATID != "" {
			line += "  P.IVA " + company.VATID
		}
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(header))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range header {
		pdf.CellFormat(colWidth, 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, rec := range records {
		for i, v := range rec {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(colWidth, 6, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(notes) > 0 {
		pdf.Ln(4)
		for _, n := range notes {
			pdf.MultiCell(0, 5, tr(n), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

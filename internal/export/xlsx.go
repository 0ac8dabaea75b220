package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"timesheet-bot/internal/report"
)

const (
	monthlySheet = "Riepilogo"
	annualSheet  = "Annuale"
	detailSheet  = "Dettaglio"
)

// MonthlyXLSX writes the monthly summary as a workbook with a title row.
func MonthlyXLSX(rows []report.MonthlyRow, title, path string) error {
	records := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		records = append(records, monthlyRecord(r))
	}
	records = append(records, totalsRecord(rows))
	return writeWorkbook(path, monthlySheet, title, monthlyHeader, records)
}

// AnnualXLSX writes the year totals, one row per employee, and a second
// sheet with the month-by-month worked hours.
func AnnualXLSX(stats []report.AnnualStats, title, path string) error {
	f, err := newWorkbook(annualSheet, title, annualHeader, annualRecords(stats))
	if err != nil {
		return err
	}
	defer f.Close()

	const sheet = "Mesi"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	header := []string{"Dipendente"}
	for m := 1; m <= 12; m++ {
		header = append(header, monthNames[m-1])
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, a := range stats {
		row := []interface{}{a.EmployeeName}
		for _, m := range a.Months {
			row = append(row, m.Worked)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// DetailXLSX writes the day-by-day table of one employee.
func DetailXLSX(rows []report.DayRow, title, path string) error {
	records := make([][]string, 0, len(rows))
	for _, d := range rows {
		records = append(records, detailRecord(d))
	}
	return writeWorkbook(path, detailSheet, title, detailHeader, records)
}

func annualRecords(stats []report.AnnualStats) [][]string {
	records := make([][]string, 0, len(stats))
	for _, a := range stats {
		records = append(records, annualRecord(a))
	}
	return records
}

func writeWorkbook(path, sheet, title string, header []string, records [][]string) error {
	f, err := newWorkbook(sheet, title, header, records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// newWorkbook lays out a titled table: title on row 1, header on row 3 and
// the records below it.
func newWorkbook(sheet, title string, header []string, records [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	last, _ := excelize.CoordinatesToCellName(len(header), 3)
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellStyle(sheet, "A3", last, headerStyle)

	for i, rec := range records {
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = cellValue(v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	f.SetColWidth(sheet, "A", lastCol, 16)

	return f, nil
}

// cellValue stores whole numbers as numbers so they can be summed in the
// sheet. Other values keep their display text.
func cellValue(v string) interface{} {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"timesheet-bot/internal/report"
)

// MonthlyCSV writes one line per employee plus a totals line.
func MonthlyCSV(rows []report.MonthlyRow, path string) error {
	records := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		records = append(records, monthlyRecord(r))
	}
	records = append(records, totalsRecord(rows))
	return writeCSV(path, monthlyHeader, records)
}

// AnnualCSV writes one line per employee with the year totals and the
// merged Ferie and Malattia ranges.
func AnnualCSV(stats []report.AnnualStats, path string) error {
	header := append(append([]string(nil), annualHeader...), "Periodi ferie", "Periodi malattia")
	records := make([][]string, 0, len(stats))
	for _, a := range stats {
		rec := annualRecord(a)
		rec = append(rec, FormatRanges(a.FerieRanges), FormatRanges(a.MalattiaRanges))
		records = append(records, rec)
	}
	return writeCSV(path, header, records)
}

// DetailCSV writes the day-by-day table of one employee.
func DetailCSV(rows []report.DayRow, path string) error {
	records := make([][]string, 0, len(rows))
	for _, d := range rows {
		records = append(records, detailRecord(d))
	}
	return writeCSV(path, detailHeader, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}

	return w.Error()
}

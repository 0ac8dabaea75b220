package export

import (
	"fmt"
	"time"

	"timesheet-bot/internal/report"
	"timesheet-bot/pkg/hours"
)

var monthNames = [...]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

var weekdayNames = [...]string{"Dom", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab"}

// MonthName returns the Italian name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// WeekdayName returns the short Italian weekday label.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// Period renders "Settembre 2025".
func Period(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// Hours renders h in display format, "0" for an empty value.
func Hours(h float64) string {
	if s := hours.FormatDisplay(h); s != "" {
		return s
	}
	return "0"
}

var monthlyHeader = []string{
	"Dipendente", "Ruolo", "Ore lavorate", "Ore previste", "Straordinari",
	"Ore mancanti", "Ore permesso", "Giorni ferie", "Giorni malattia",
}

func monthlyRecord(r report.MonthlyRow) []string {
	return []string{
		r.EmployeeName,
		r.Role,
		Hours(r.Worked),
		Hours(r.Expected),
		Hours(r.Overtime),
		Hours(r.Deficit),
		Hours(r.PermitHours),
		fmt.Sprintf("%d", r.FerieDays),
		fmt.Sprintf("%d", r.MalattiaDays),
	}
}

func totalsRecord(rows []report.MonthlyRow) []string {
	rec := monthlyRecord(report.MonthlyTotals(rows))
	rec[0] = "Totale"
	return rec
}

var annualHeader = []string{
	"Dipendente", "Ruolo", "Anno", "Ore previste", "Ore lavorate",
	"Straordinari", "Ore permesso", "Giorni ferie", "Giorni malattia",
}

func annualRecord(a report.AnnualStats) []string {
	return []string{
		a.EmployeeName,
		a.Role,
		fmt.Sprintf("%d", a.Year),
		Hours(a.TotalExpected),
		Hours(a.TotalWorked),
		Hours(a.TotalOvertime),
		Hours(a.TotalPermitHours),
		fmt.Sprintf("%d", a.TotalFerieDays),
		fmt.Sprintf("%d", a.TotalMalattiaDays),
	}
}

var detailHeader = []string{"Data", "Giorno", "Stato", "Previste", "Lavorate", "Assenza"}

func detailRecord(d report.DayRow) []string {
	return []string{
		d.Date,
		WeekdayName(d.Weekday),
		string(d.Status),
		Hours(d.Scheduled),
		Hours(d.Worked),
		Hours(d.LeaveHours),
	}
}

// FormatRanges renders merged leave ranges as "2025-08-04/2025-08-08 (5)".
func FormatRanges(ranges []report.DateRange) string {
	out := ""
	for i, r := range ranges {
		if i > 0 {
			out += ", "
		}
		if r.Start == r.End {
			out += fmt.Sprintf("%s (%d)", r.Start, r.Days)
			continue
		}
		out += fmt.Sprintf("%s/%s (%d)", r.Start, r.End, r.Days)
	}
	return out
}

package report

import (
	"sort"
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

type OvertimeEvent struct {
	Month time.Month
	Hours float64
}

type PermitEvent struct {
	Date  string
	Hours float64
}

// DateRange is an inclusive run of consecutive calendar days.
type DateRange struct {
	Start string
	End   string
	Days  int
}

// AnnualStats aggregates a year for one employee. TotalOvertime is the sum
// of each month's own overtime, so a deficit month never offsets a surplus one.
type AnnualStats struct {
	EmployeeID        uint
	EmployeeName      string
	Role              string
	Year              int
	Months            [12]MonthlyRow
	TotalExpected     float64
	TotalWorked       float64
	TotalOvertime     float64
	TotalPermitHours  float64
	TotalFerieDays    int
	TotalMalattiaDays int
	OvertimeEvents    []OvertimeEvent
	PermitEvents      []PermitEvent
	FerieRanges       []DateRange
	MalattiaRanges    []DateRange
}

// BuildAnnual folds the monthly computation over the twelve months of year.
func BuildAnnual(d *Dataset, emp *models.Employee, year int) AnnualStats {
	stats := AnnualStats{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Role:         emp.Role,
		Year:         year,
	}

	var ferieDates, malattiaDates []string
	for m := time.January; m <= time.December; m++ {
		row := MonthlyRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Role:         emp.Role,
			Month:        m,
			Year:         year,
		}
		for _, date := range calendar.DaysInMonth(m, year) {
			day := d.Day(emp, date)
			row.add(day)

			switch day.LeaveType {
			case models.LeaveFerie:
				ferieDates = append(ferieDates, day.Date)
			case models.LeaveMalattia:
				malattiaDates = append(malattiaDates, day.Date)
			case models.LeavePermesso:
				if day.Leave > 0 {
					stats.PermitEvents = append(stats.PermitEvents, PermitEvent{Date: day.Date, Hours: day.Leave})
				}
			}
		}
		row.CalculateStats()
		stats.Months[m-1] = row

		stats.TotalExpected += row.Expected
		stats.TotalWorked += row.Worked
		stats.TotalOvertime += row.Overtime
		stats.TotalPermitHours += row.PermitHours
		stats.TotalFerieDays += row.FerieDays
		stats.TotalMalattiaDays += row.MalattiaDays
		if row.Overtime > 0 {
			stats.OvertimeEvents = append(stats.OvertimeEvents, OvertimeEvent{Month: m, Hours: row.Overtime})
		}
	}

	stats.FerieRanges = MergeRanges(ferieDates)
	stats.MalattiaRanges = MergeRanges(malattiaDates)
	return stats
}

// BuildAnnualAll returns the annual stats of every employee, in dataset order.
func BuildAnnualAll(d *Dataset, year int) []AnnualStats {
	out := make([]AnnualStats, 0, len(d.Employees))
	for i := range d.Employees {
		out = append(out, BuildAnnual(d, &d.Employees[i], year))
	}
	return out
}

// MergeRanges sorts ISO dates and merges runs of consecutive days into
// inclusive ranges. Duplicates and unparsable dates are dropped.
func MergeRanges(dates []string) []DateRange {
	parsed := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		t, err := calendar.ParseDateISO(s)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return nil
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	var ranges []DateRange
	cur := DateRange{Start: calendar.FormatDateISO(parsed[0]), End: calendar.FormatDateISO(parsed[0]), Days: 1}
	prev := parsed[0]
	for _, t := range parsed[1:] {
		iso := calendar.FormatDateISO(t)
		if iso == cur.End {
			continue
		}
		// Compare calendar fields rather than durations so DST days still count as one.
		if calendar.FormatDateISO(prev.AddDate(0, 0, 1)) == iso {
			cur.End = iso
			cur.Days++
		} else {
			ranges = append(ranges, cur)
			cur = DateRange{Start: iso, End: iso, Days: 1}
		}
		prev = t
	}
	return append(ranges, cur)
}

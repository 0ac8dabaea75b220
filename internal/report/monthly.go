package report

import (
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

// MonthlyRow holds the month totals of one employee. Overtime and deficit are
// derived from the period totals, so at most one of them is non-zero.
type MonthlyRow struct {
	EmployeeID   uint
	EmployeeName string
	Role         string
	Month        time.Month
	Year         int
	Worked       float64
	Expected     float64
	LeaveHours   float64
	PermitHours  float64
	FerieDays    int
	MalattiaDays int
	Overtime     float64
	Deficit      float64
}

// CalculateStats fills Overtime and Deficit from Worked and Expected.
func (r *MonthlyRow) CalculateStats() {
	r.Overtime = maxZero(r.Worked - r.Expected)
	r.Deficit = maxZero(r.Expected - r.Worked)
}

func (r *MonthlyRow) add(day DayResult) {
	r.Worked += day.Worked
	r.Expected += day.Scheduled
	r.LeaveHours += day.Leave
	switch day.LeaveType {
	case models.LeavePermesso:
		r.PermitHours += day.Leave
	case models.LeaveFerie:
		r.FerieDays++
	case models.LeaveMalattia:
		r.MalattiaDays++
	}
}

// BuildMonthly returns one row per employee, in dataset order.
func BuildMonthly(d *Dataset, month time.Month, year int) []MonthlyRow {
	days := calendar.DaysInMonth(month, year)
	rows := make([]MonthlyRow, 0, len(d.Employees))
	for i := range d.Employees {
		rows = append(rows, monthlyRow(d, &d.Employees[i], days, month, year))
	}
	return rows
}

// BuildMonthlyFor returns the month row of a single employee.
func BuildMonthlyFor(d *Dataset, emp *models.Employee, month time.Month, year int) MonthlyRow {
	return monthlyRow(d, emp, calendar.DaysInMonth(month, year), month, year)
}

func monthlyRow(d *Dataset, emp *models.Employee, days []time.Time, month time.Month, year int) MonthlyRow {
	row := MonthlyRow{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Role:         emp.Role,
		Month:        month,
		Year:         year,
	}
	for _, date := range days {
		row.add(d.Day(emp, date))
	}
	row.CalculateStats()
	return row
}

// MonthlyTotals sums a set of rows. Overtime and deficit are summed as
// reported per employee, not recomputed on the grand total.
func MonthlyTotals(rows []MonthlyRow) MonthlyRow {
	var t MonthlyRow
	for _, r := range rows {
		t.Month, t.Year = r.Month, r.Year
		t.Worked += r.Worked
		t.Expected += r.Expected
		t.LeaveHours += r.LeaveHours
		t.PermitHours += r.PermitHours
		t.FerieDays += r.FerieDays
		t.MalattiaDays += r.MalattiaDays
		t.Overtime += r.Overtime
		t.Deficit += r.Deficit
	}
	return t
}

// DayRow is one line of the per-employee day-by-day table.
type DayRow struct {
	Date       string
	Weekday    time.Weekday
	Status     DayStatus
	Scheduled  float64
	Worked     float64
	LeaveHours float64
}

// BuildDayDetail returns the day-by-day table of an employee for the month.
// Unknown employees yield no rows.
func BuildDayDetail(d *Dataset, employeeID uint, month time.Month, year int) []DayRow {
	emp := d.Employee(employeeID)
	if emp == nil {
		return nil
	}
	days := calendar.DaysInMonth(month, year)
	rows := make([]DayRow, 0, len(days))
	for _, date := range days {
		day := d.Day(emp, date)
		rows = append(rows, DayRow{
			Date:       day.Date,
			Weekday:    day.Weekday,
			Status:     day.Status,
			Scheduled:  day.Scheduled,
			Worked:     day.Worked,
			LeaveHours: day.Leave,
		})
	}
	return rows
}

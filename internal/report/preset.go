package report

import (
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

// PresetEntries plans the bulk fill of a month with the employee's default
// schedule. Holidays and days under a full-day leave are skipped; days under a
// permit are filled like ordinary days. Zero-hour entries are returned too so
// the caller can clear those days.
func PresetEntries(cal calendar.Calendar, emp *models.Employee, leaves []models.LeaveRequest, month time.Month, year int) []models.TimeEntry {
	var out []models.TimeEntry
	for _, date := range calendar.DaysInMonth(month, year) {
		if cal.IsHoliday(date) {
			continue
		}
		if leave := FindApprovedLeave(date, emp.ID, leaves); leave != nil && leave.Type != models.LeavePermesso {
			continue
		}
		out = append(out, models.TimeEntry{
			EmployeeID: emp.ID,
			Date:       calendar.FormatDateISO(date),
			Hours:      emp.ScheduledHours(date),
		})
	}
	return out
}

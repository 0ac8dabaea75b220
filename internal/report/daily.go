package report

import (
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

type DayStatus string

const (
	DayHoliday  DayStatus = "Festivo"
	DayFerie    DayStatus = "Ferie"
	DayMalattia DayStatus = "Malattia"
	DayPermesso DayStatus = "Permesso"
	DayWorked   DayStatus = "Lavorato"
	DayAbsent   DayStatus = "Assente"
	DayRest     DayStatus = "Riposo"
)

// DayResult is the classification of one employee-day.
type DayResult struct {
	Date      string
	Weekday   time.Weekday
	Holiday   bool
	Scheduled float64
	Worked    float64
	Leave     float64
	LeaveType models.LeaveType
	Status    DayStatus
}

// ComputeDay classifies a single day. Worked hours always count toward the
// worked total, even on a full-day leave.
func ComputeDay(cal calendar.Calendar, emp *models.Employee, date time.Time, worked float64, leave *models.LeaveRequest) DayResult {
	res := DayResult{
		Date:    calendar.FormatDateISO(date),
		Weekday: date.Weekday(),
		Holiday: cal.IsHoliday(date),
		Worked:  worked,
	}
	if !res.Holiday {
		res.Scheduled = emp.ScheduledHours(date)
	}

	if leave != nil {
		res.LeaveType = leave.Type
		switch leave.Type {
		case models.LeaveFerie:
			res.Leave = res.Scheduled
			res.Status = DayFerie
		case models.LeaveMalattia:
			res.Leave = res.Scheduled
			res.Status = DayMalattia
		case models.LeavePermesso:
			res.Leave = maxZero(res.Scheduled - worked)
			res.Status = DayPermesso
		}
		return res
	}

	switch {
	case res.Holiday:
		res.Status = DayHoliday
	case worked > 0:
		res.Status = DayWorked
	case res.Scheduled > 0:
		res.Status = DayAbsent
	default:
		res.Status = DayRest
	}
	return res
}

// Day computes the classification of emp on date from the dataset.
func (d *Dataset) Day(emp *models.Employee, date time.Time) DayResult {
	worked := d.Hours(emp.ID, calendar.FormatDateISO(date))
	leave := FindApprovedLeave(date, emp.ID, d.Leaves)
	return ComputeDay(d.Calendar, emp, date, worked, leave)
}

// WorkedFromPermit back-solves the worked hours from a permit-hours input.
func WorkedFromPermit(scheduled, permit float64) float64 {
	return maxZero(scheduled - permit)
}

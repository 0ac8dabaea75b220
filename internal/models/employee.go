package models

import (
	"time"
)

// WeeklySchedule holds the expected hours per weekday, indexed 0=Sunday..6=Saturday.
type WeeklySchedule [7]float64

// For returns the scheduled hours for weekday.
func (s WeeklySchedule) For(weekday time.Weekday) float64 {
	return s[int(weekday)]
}

// Total returns the scheduled hours of a full week.
func (s WeeklySchedule) Total() float64 {
	var total float64
	for _, h := range s {
		total += h
	}
	return total
}

// IsValid reports whether every weekday has non-negative hours.
func (s WeeklySchedule) IsValid() bool {
	for _, h := range s {
		if h < 0 || h > 24 {
			return false
		}
	}
	return true
}

// ScheduleFromContract spreads the weekly contract hours evenly over the
// company working days.
func ScheduleFromContract(weeklyHours float64, workingDays []int) WeeklySchedule {
	var s WeeklySchedule
	if len(workingDays) == 0 || weeklyHours <= 0 {
		return s
	}
	perDay := weeklyHours / float64(len(workingDays))
	for _, d := range workingDays {
		if d >= 0 && d <= 6 {
			s[d] = perDay
		}
	}
	return s
}

type Employee struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"not null" json:"name"`
	Role                string         `json:"role"`
	ContractHoursWeekly float64        `gorm:"not null;default:0" json:"contract_hours_weekly"`
	DefaultSchedule     WeeklySchedule `gorm:"type:text;serializer:json;not null" json:"default_schedule"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// ScheduledHours returns the hours expected on date, ignoring holidays.
func (e *Employee) ScheduledHours(date time.Time) float64 {
	return e.DefaultSchedule.For(date.Weekday())
}

// IsValid checks the name, contract hours and schedule.
func (e *Employee) IsValid() bool {
	if e.Name == "" {
		return false
	}
	if e.ContractHoursWeekly < 0 {
		return false
	}
	return e.DefaultSchedule.IsValid()
}

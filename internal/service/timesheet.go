package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/store"
	"timesheet-bot/pkg/calendar"
)

type TimesheetService struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewTimesheetService(st *store.Store, logger *logrus.Logger) *TimesheetService {
	return &TimesheetService{store: st, logger: logger}
}

// LogHours records the worked hours typed by the user. Zero clears the day.
func (s *TimesheetService) LogHours(employeeID uint, date time.Time, input string) (float64, error) {
	h, err := ParseHours(input)
	if err != nil {
		return 0, err
	}
	if err := s.store.SetHours(employeeID, calendar.FormatDateISO(date), h); err != nil {
		return 0, err
	}
	return h, nil
}

// LogPermit records permit hours; the stored worked hours are returned.
func (s *TimesheetService) LogPermit(employeeID uint, date time.Time, input string) (float64, error) {
	permit, err := ParsePermit(input)
	if err != nil {
		return 0, err
	}
	return s.store.SetPermitHours(employeeID, calendar.FormatDateISO(date), permit)
}

// ParsePermit reads permit hours typed by the user, between 0 and 24.
func ParsePermit(input string) (float64, error) {
	permit, err := ParseHours(input)
	if err != nil {
		return 0, err
	}
	if permit < 0 || permit > 24 {
		return 0, store.ErrInvalidHours
	}
	return permit, nil
}

func (s *TimesheetService) ApplyPreset(employeeID uint, month time.Month, year int) (int, error) {
	return s.store.ApplyPreset(employeeID, month, year)
}

// Day returns the classification of a single employee-day.
func (s *TimesheetService) Day(employeeID uint, date time.Time) (report.DayResult, error) {
	ds := s.store.Snapshot()
	emp := ds.Employee(employeeID)
	if emp == nil {
		return report.DayResult{}, store.ErrEmployeeNotFound
	}
	return ds.Day(emp, date), nil
}

// Entries returns the recorded days of an employee in a month.
func (s *TimesheetService) Entries(employeeID uint, month time.Month, year int) []models.TimeEntry {
	from, to := calendar.MonthBounds(month, year)
	return s.store.Entries(employeeID, from, to)
}

func FormatDay(emp *models.Employee, d report.DayResult) string {
	text := fmt.Sprintf("%s %s: %s\nPreviste %s, lavorate %s",
		emp.Name, d.Date, d.Status, displayHours(d.Scheduled), displayHours(d.Worked))
	if d.Leave > 0 {
		text += fmt.Sprintf(", %s %s", d.LeaveType, displayHours(d.Leave))
	}
	return text
}

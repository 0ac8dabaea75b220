// Package report derives worked, expected, leave and overtime hours from the
// employee, time entry and leave request collections. Every function here is
// a pure computation over a Dataset; nothing is persisted or mutated.
package report

import (
	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

// Dataset is a consistent read-only view of the timesheet collections.
type Dataset struct {
	Calendar  calendar.Calendar
	Company   models.CompanyInfo
	Employees []models.Employee
	Entries   map[models.EntryKey]float64
	Leaves    []models.LeaveRequest
}

// Hours returns the worked hours of an employee on an ISO date, 0 when absent.
func (d *Dataset) Hours(employeeID uint, isoDate string) float64 {
	if d.Entries == nil {
		return 0
	}
	return d.Entries[models.EntryKey{EmployeeID: employeeID, Date: isoDate}]
}

// Employee returns the employee with id, or nil.
func (d *Dataset) Employee(id uint) *models.Employee {
	for i := range d.Employees {
		if d.Employees[i].ID == id {
			return &d.Employees[i]
		}
	}
	return nil
}

func maxZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

package report

import (
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

// FindApprovedLeave returns the first approved request of employeeID that
// covers date, in slice order. Overlaps are rejected on write, so for data
// written by this tool at most one request can match.
func FindApprovedLeave(date time.Time, employeeID uint, requests []models.LeaveRequest) *models.LeaveRequest {
	iso := calendar.FormatDateISO(date)
	for i := range requests {
		r := &requests[i]
		if r.EmployeeID == employeeID && r.IsApproved() && r.Covers(iso) {
			return r
		}
	}
	return nil
}

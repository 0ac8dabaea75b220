package repository

import (
	"fmt"

	"timesheet-bot/internal/models"
)

// AuditReport lists the rows a consistent database should not contain.
// Both kinds can be left behind by older versions of the bot.
type AuditReport struct {
	// OverlappingLeaves holds active requests sharing a day with another
	// active request of the same employee.
	OverlappingLeaves []models.LeaveRequest
	OrphanEntries     []models.TimeEntry
	OrphanLeaves      []models.LeaveRequest
}

func (a AuditReport) Clean() bool {
	return len(a.OverlappingLeaves) == 0 && len(a.OrphanEntries) == 0 && len(a.OrphanLeaves) == 0
}

// Audit scans the tables for overlapping leave requests and for rows whose
// employee no longer exists.
func (p *Persister) Audit() (AuditReport, error) {
	var report AuditReport

	known := make(map[uint]bool)
	exists := func(id uint) (bool, error) {
		if ok, seen := known[id]; seen {
			return ok, nil
		}
		e, err := p.Employees.GetByID(id)
		if err != nil {
			return false, fmt.Errorf("get employee %d: %w", id, err)
		}
		known[id] = e != nil
		return e != nil, nil
	}

	leaves, err := p.Leaves.GetAll()
	if err != nil {
		return report, fmt.Errorf("load leave requests: %w", err)
	}
	for _, l := range leaves {
		ok, err := exists(l.EmployeeID)
		if err != nil {
			return report, err
		}
		if !ok {
			report.OrphanLeaves = append(report.OrphanLeaves, l)
			continue
		}
		if l.Status == models.StatusRejected {
			continue
		}
		conflict, err := p.Leaves.CheckPeriodConflict(l.EmployeeID, l.ID, l.StartDate, l.EndDate)
		if err != nil {
			return report, fmt.Errorf("check leave %d: %w", l.ID, err)
		}
		if conflict {
			report.OverlappingLeaves = append(report.OverlappingLeaves, l)
		}
	}

	entries, err := p.Entries.GetAll()
	if err != nil {
		return report, fmt.Errorf("load time entries: %w", err)
	}
	for _, e := range entries {
		ok, err := exists(e.EmployeeID)
		if err != nil {
			return report, err
		}
		if !ok {
			report.OrphanEntries = append(report.OrphanEntries, e)
		}
	}

	return report, nil
}

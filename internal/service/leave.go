package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/store"
	"timesheet-bot/pkg/calendar"
)

type LeaveService struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewLeaveService(st *store.Store, logger *logrus.Logger) *LeaveService {
	return &LeaveService{store: st, logger: logger}
}

// ParseLeaveType accepts the Italian names, case-insensitive.
func ParseLeaveType(s string) (models.LeaveType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ferie", "vacanza":
		return models.LeaveFerie, nil
	case "permesso", "rol":
		return models.LeavePermesso, nil
	case "malattia":
		return models.LeaveMalattia, nil
	}
	return "", ErrInvalidLeaveType
}

// Add stores an approved leave request for the inclusive range.
func (s *LeaveService) Add(employeeID uint, leaveType models.LeaveType, start, end time.Time) (*models.LeaveRequest, error) {
	if !leaveType.IsValid() {
		return nil, ErrInvalidLeaveType
	}
	startISO, endISO := calendar.FormatDateISO(start), calendar.FormatDateISO(end)
	if endISO < startISO {
		return nil, ErrInvalidRange
	}

	l, err := s.store.AddLeave(models.LeaveRequest{
		EmployeeID: employeeID,
		StartDate:  startISO,
		EndDate:    endISO,
		Type:       leaveType,
		Status:     models.StatusApproved,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"employee_id": employeeID,
			"start":       startISO,
			"end":         endISO,
		}).Warn("Leave request rejected")
		return nil, err
	}
	return &l, nil
}

// List returns the requests of an employee, all employees for zero.
func (s *LeaveService) List(employeeID uint) []models.LeaveRequest {
	return s.store.Leaves(employeeID)
}

func (s *LeaveService) Delete(id uint) error {
	return s.store.DeleteLeave(id)
}

func (s *LeaveService) Approve(id uint) (*models.LeaveRequest, error) {
	return s.setStatus(id, models.StatusApproved)
}

func (s *LeaveService) Reject(id uint) (*models.LeaveRequest, error) {
	return s.setStatus(id, models.StatusRejected)
}

func (s *LeaveService) setStatus(id uint, status models.LeaveStatus) (*models.LeaveRequest, error) {
	l, err := s.store.SetLeaveStatus(id, status)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CalendarDays counts the days of a request, Sundays and holidays included.
func CalendarDays(l *models.LeaveRequest) int {
	start, err := calendar.ParseDateISO(l.StartDate)
	if err != nil {
		return 0
	}
	end, err := calendar.ParseDateISO(l.EndDate)
	if err != nil {
		return 0
	}
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

var statusLabels = map[models.LeaveStatus]string{
	models.StatusApproved: "approvata",
	models.StatusPending:  "in attesa",
	models.StatusRejected: "rifiutata",
}

// FormatLeaves lists requests with the employee name resolved from names.
func FormatLeaves(leaves []models.LeaveRequest, names map[uint]string) string {
	if len(leaves) == 0 {
		return "Nessuna assenza registrata."
	}
	var b strings.Builder
	b.WriteString("🏖️ Assenze:\n")
	for i := range leaves {
		l := &leaves[i]
		name := names[l.EmployeeID]
		if name == "" {
			name = fmt.Sprintf("dipendente #%d", l.EmployeeID)
		}
		period := l.StartDate
		if l.EndDate != l.StartDate {
			period += " → " + l.EndDate
		}
		fmt.Fprintf(&b, "\n#%d %s: %s %s (%d gg, %s)", l.ID, name, l.Type, period, CalendarDays(l), statusLabels[l.Status])
	}
	return b.String()
}

// LeaveOn returns the approved request covering date, if any.
func (s *LeaveService) LeaveOn(employeeID uint, date time.Time) *models.LeaveRequest {
	return report.FindApprovedLeave(date, employeeID, s.store.Leaves(employeeID))
}

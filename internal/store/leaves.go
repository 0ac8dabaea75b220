package store

import (
	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/pkg/calendar"
)

// Leaves returns the requests of an employee in storage order. Zero returns all.
func (s *Store) Leaves(employeeID uint) []models.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.LeaveRequest
	for _, l := range s.leaves {
		if employeeID == 0 || l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out
}

// AddLeave stores a leave request. Requests created here are approved unless
// a status is given. A range overlapping another non-rejected request of the
// same employee is refused with ErrLeaveOverlap.
func (s *Store) AddLeave(l models.LeaveRequest) (models.LeaveRequest, error) {
	if l.Status == "" {
		l.Status = models.StatusApproved
	}
	if !l.IsValid() {
		return models.LeaveRequest{}, ErrInvalidLeave
	}
	if _, err := calendar.ParseDateISO(l.StartDate); err != nil {
		return models.LeaveRequest{}, ErrInvalidDate
	}
	if _, err := calendar.ParseDateISO(l.EndDate); err != nil {
		return models.LeaveRequest{}, ErrInvalidDate
	}

	s.mu.Lock()
	if s.employeeIndex(l.EmployeeID) < 0 {
		s.mu.Unlock()
		return models.LeaveRequest{}, ErrEmployeeNotFound
	}
	if l.Status != models.StatusRejected {
		for _, other := range s.leaves {
			if other.EmployeeID == l.EmployeeID && other.Status != models.StatusRejected && other.Overlaps(l.StartDate, l.EndDate) {
				s.mu.Unlock()
				return models.LeaveRequest{}, ErrLeaveOverlap
			}
		}
	}

	l.ID = s.nextLeaveID
	s.nextLeaveID++
	s.leaves = append(s.leaves, l)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"id":          l.ID,
		"employee_id": l.EmployeeID,
		"type":        l.Type,
		"start":       l.StartDate,
		"end":         l.EndDate,
	}).Info("Leave request added")

	return l, s.persist("leave", s.persister.SaveLeave(&l))
}

// DeleteLeave removes a leave request.
func (s *Store) DeleteLeave(id uint) error {
	s.mu.Lock()
	idx := -1
	for i := range s.leaves {
		if s.leaves[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrLeaveNotFound
	}
	s.leaves = append(s.leaves[:idx], s.leaves[idx+1:]...)
	s.mu.Unlock()

	s.logger.WithField("id", id).Info("Leave request deleted")
	return s.persist("delete leave", s.persister.DeleteLeave(id))
}

// SetLeaveStatus changes the status of a request. Reviving a rejected request
// is refused when it would overlap another active one.
func (s *Store) SetLeaveStatus(id uint, status models.LeaveStatus) (models.LeaveRequest, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.leaves {
		if s.leaves[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.LeaveRequest{}, ErrLeaveNotFound
	}

	l := s.leaves[idx]
	l.Status = status
	if !l.IsValid() {
		s.mu.Unlock()
		return models.LeaveRequest{}, ErrInvalidLeave
	}
	if status != models.StatusRejected {
		for _, other := range s.leaves {
			if other.ID != id && other.EmployeeID == l.EmployeeID && other.Status != models.StatusRejected && other.Overlaps(l.StartDate, l.EndDate) {
				s.mu.Unlock()
				return models.LeaveRequest{}, ErrLeaveOverlap
			}
		}
	}
	s.leaves[idx] = l
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"status": status,
	}).Info("Leave request status changed")

	return l, s.persist("leave", s.persister.SaveLeave(&l))
}

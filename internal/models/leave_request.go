package models

import (
	"time"
)

type LeaveType string

const (
	LeaveFerie    LeaveType = "Ferie"    // vacation
	LeavePermesso LeaveType = "Permesso" // permit, partial day
	LeaveMalattia LeaveType = "Malattia" // sick leave
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveFerie, LeavePermesso, LeaveMalattia:
		return true
	}
	return false
}

// ConsumesFullDay reports whether the leave covers the whole scheduled day.
func (t LeaveType) ConsumesFullDay() bool {
	return t == LeaveFerie || t == LeaveMalattia
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusRejected LeaveStatus = "Rejected"
)

// LeaveRequest covers the inclusive ISO date range [StartDate, EndDate].
type LeaveRequest struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	EmployeeID uint        `gorm:"not null;index" json:"employee_id"`
	StartDate  string      `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate    string      `gorm:"type:varchar(10);not null" json:"end_date"`
	Type       LeaveType   `gorm:"type:varchar(20);not null" json:"type"`
	Status     LeaveStatus `gorm:"type:varchar(20);not null;default:'Approved'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Covers reports whether the ISO date falls inside the request range.
// ISO dates sort lexicographically in chronological order.
func (l *LeaveRequest) Covers(isoDate string) bool {
	return l.StartDate <= isoDate && isoDate <= l.EndDate
}

// Overlaps reports whether the two ranges share at least one day.
func (l *LeaveRequest) Overlaps(startDate, endDate string) bool {
	return l.StartDate <= endDate && startDate <= l.EndDate
}

func (l *LeaveRequest) IsApproved() bool {
	return l.Status == StatusApproved
}

// IsValid checks type, status and range ordering.
func (l *LeaveRequest) IsValid() bool {
	if l.EmployeeID == 0 || !l.Type.IsValid() {
		return false
	}
	switch l.Status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return false
	}
	return len(l.StartDate) == 10 && len(l.EndDate) == 10 && l.StartDate <= l.EndDate
}

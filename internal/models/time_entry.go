package models

import (
	"time"
)

// TimeEntry records the hours worked by an employee on one day.
// (EmployeeID, Date) is unique; a zero-hour entry is the same as no entry.
type TimeEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_entry_employee_date" json:"employee_id"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_entry_employee_date" json:"date"`
	Hours      float64   `gorm:"not null;default:0" json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// EntryKey is the composite identity of a time entry.
type EntryKey struct {
	EmployeeID uint
	Date       string
}

func (e *TimeEntry) Key() EntryKey {
	return EntryKey{EmployeeID: e.EmployeeID, Date: e.Date}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleFromContract(t *testing.T) {
	s := ScheduleFromContract(40, []int{1, 2, 3, 4, 5})
	assert.Equal(t, WeeklySchedule{0, 8, 8, 8, 8, 8, 0}, s)
	assert.Equal(t, 40.0, s.Total())

	assert.Equal(t, WeeklySchedule{}, ScheduleFromContract(40, nil))
	assert.Equal(t, WeeklySchedule{}, ScheduleFromContract(0, []int{1}))
}

func TestEmployeeScheduledHours(t *testing.T) {
	e := Employee{Name: "Mario", DefaultSchedule: WeeklySchedule{0, 8, 8, 8, 8, 6, 4}}
	sat := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 4.0, e.ScheduledHours(sat))
	assert.True(t, e.IsValid())

	e.DefaultSchedule[0] = -1
	assert.False(t, e.IsValid())
}

func TestLeaveRequestRange(t *testing.T) {
	l := LeaveRequest{EmployeeID: 1, StartDate: "2025-07-07", EndDate: "2025-07-11", Type: LeaveFerie, Status: StatusApproved}
	assert.True(t, l.IsValid())
	assert.True(t, l.Covers("2025-07-07"))
	assert.True(t, l.Covers("2025-07-11"))
	assert.False(t, l.Covers("2025-07-12"))
	assert.True(t, l.Overlaps("2025-07-11", "2025-07-20"))
	assert.False(t, l.Overlaps("2025-07-12", "2025-07-20"))

	l.EndDate = "2025-07-01"
	assert.False(t, l.IsValid())

	assert.True(t, LeaveMalattia.ConsumesFullDay())
	assert.False(t, LeavePermesso.ConsumesFullDay())
	assert.False(t, LeaveType("Vacanza").IsValid())
}

func TestCompanyInfo(t *testing.T) {
	c := DefaultCompany()
	assert.True(t, c.IsWorkingDay(time.Monday))
	assert.False(t, c.IsWorkingDay(time.Sunday))
	assert.True(t, c.IsValid())

	c.Emails = []string{" a@example.com ", "", "b@example.com"}
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, c.Recipients())

	c.WorkingDays = []int{1, 1}
	assert.False(t, c.IsValid())
}

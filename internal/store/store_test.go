package store

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-bot/internal/models"
)

type recorder struct {
	ops     []string
	entries map[models.EntryKey]float64
	fail    error
}

func newRecorder() *recorder {
	return &recorder{entries: map[models.EntryKey]float64{}}
}

func (r *recorder) SaveCompany(*models.CompanyInfo) error {
	r.ops = append(r.ops, "company")
	return r.fail
}

func (r *recorder) SaveEmployee(*models.Employee) error {
	r.ops = append(r.ops, "employee")
	return r.fail
}

func (r *recorder) DeleteEmployee(uint) error {
	r.ops = append(r.ops, "delete employee")
	return r.fail
}

func (r *recorder) SaveEntry(e *models.TimeEntry) error {
	r.ops = append(r.ops, "entry")
	r.entries[e.Key()] = e.Hours
	return r.fail
}

func (r *recorder) DeleteEntry(k models.EntryKey) error {
	r.ops = append(r.ops, "delete entry")
	delete(r.entries, k)
	return r.fail
}

func (r *recorder) SaveLeave(*models.LeaveRequest) error {
	r.ops = append(r.ops, "leave")
	return r.fail
}

func (r *recorder) DeleteLeave(uint) error {
	r.ops = append(r.ops, "delete leave")
	return r.fail
}

func (r *recorder) ReplaceClosures([]models.NonWorkingDay) error {
	r.ops = append(r.ops, "closures")
	return r.fail
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestStore(t *testing.T) (*Store, *recorder, models.Employee) {
	t.Helper()
	rec := newRecorder()
	s := New(rec, quietLogger())
	emp, err := s.AddEmployee(models.Employee{
		Name:            "Mario Rossi",
		Role:            "Cuoco",
		DefaultSchedule: models.WeeklySchedule{0, 8, 8, 8, 8, 8, 0},
	})
	require.NoError(t, err)
	return s, rec, emp
}

func TestAddEmployee(t *testing.T) {
	s, rec, emp := newTestStore(t)
	assert.Equal(t, uint(1), emp.ID)
	assert.Equal(t, []string{"employee"}, rec.ops)

	second, err := s.AddEmployee(models.Employee{Name: "Anna", ContractHoursWeekly: 20})
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, models.WeeklySchedule{0, 4, 4, 4, 4, 4, 0}, second.DefaultSchedule, "derived from company working days")

	_, err = s.AddEmployee(models.Employee{Name: "Bad", DefaultSchedule: models.WeeklySchedule{-1}})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = s.AddEmployee(models.Employee{})
	assert.ErrorIs(t, err, ErrInvalidEmployee)

	found, err := s.FindEmployee("anna")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestUpdateEmployeeReplacesSchedule(t *testing.T) {
	s, _, emp := newTestStore(t)
	emp.DefaultSchedule = models.WeeklySchedule{0, 4, 4, 4, 4, 4, 4}
	require.NoError(t, s.UpdateEmployee(emp))

	got, err := s.Employee(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.DefaultSchedule[6])

	assert.ErrorIs(t, s.UpdateEmployee(models.Employee{ID: 99, Name: "x"}), ErrEmployeeNotFound)
}

func TestDeleteEmployeeKeepsOrphans(t *testing.T) {
	s, _, emp := newTestStore(t)
	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 8))
	_, err := s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveFerie, StartDate: "2025-03-10", EndDate: "2025-03-11"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEmployee(emp.ID))
	assert.Empty(t, s.Employees())
	assert.Equal(t, 8.0, s.Hours(emp.ID, "2025-03-03"))
	assert.Len(t, s.Leaves(emp.ID), 1)

	snap := s.Snapshot()
	assert.Empty(t, snap.Employees)
	assert.ErrorIs(t, s.DeleteEmployee(emp.ID), ErrEmployeeNotFound)
}

func TestSetHoursUpsertsByDay(t *testing.T) {
	s, rec, emp := newTestStore(t)

	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 8))
	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 6.5))
	entries := s.Entries(emp.ID, "2025-03-01", "2025-03-31")
	require.Len(t, entries, 1, "one entry per employee and day")
	assert.Equal(t, 6.5, entries[0].Hours)
	assert.Equal(t, 6.5, rec.entries[models.EntryKey{EmployeeID: emp.ID, Date: "2025-03-03"}])

	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 0))
	assert.Empty(t, s.Entries(emp.ID, "2025-03-01", "2025-03-31"))
	assert.Empty(t, rec.entries)

	assert.ErrorIs(t, s.SetHours(emp.ID, "03/03/2025", 8), ErrInvalidDate)
	assert.ErrorIs(t, s.SetHours(emp.ID, "2025-03-03", 25), ErrInvalidHours)
	assert.ErrorIs(t, s.SetHours(42, "2025-03-03", 8), ErrEmployeeNotFound)
}

func TestSetPermitHours(t *testing.T) {
	s, _, emp := newTestStore(t)

	worked, err := s.SetPermitHours(emp.ID, "2025-03-03", 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, worked)
	assert.Equal(t, 5.0, s.Hours(emp.ID, "2025-03-03"))

	worked, err = s.SetPermitHours(emp.ID, "2025-03-03", 8)
	require.NoError(t, err)
	assert.Equal(t, 0.0, worked)
	assert.Equal(t, 0.0, s.Hours(emp.ID, "2025-03-03"))
}

func TestAddLeaveRejectsOverlap(t *testing.T) {
	s, _, emp := newTestStore(t)

	first, err := s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveFerie, StartDate: "2025-07-07", EndDate: "2025-07-11"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, first.Status)

	_, err = s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeavePermesso, StartDate: "2025-07-11", EndDate: "2025-07-11"})
	assert.ErrorIs(t, err, ErrLeaveOverlap)

	_, err = s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveFerie, StartDate: "2025-07-12", EndDate: "2025-07-10"})
	assert.ErrorIs(t, err, ErrInvalidLeave)

	_, err = s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: "Vacanza", StartDate: "2025-08-01", EndDate: "2025-08-01"})
	assert.ErrorIs(t, err, ErrInvalidLeave)

	_, err = s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveMalattia, StartDate: "2025-07-12", EndDate: "2025-07-13"})
	assert.NoError(t, err)

	require.NoError(t, s.DeleteLeave(first.ID))
	assert.Len(t, s.Leaves(emp.ID), 1)
	assert.ErrorIs(t, s.DeleteLeave(first.ID), ErrLeaveNotFound)
}

func TestApplyPreset(t *testing.T) {
	s, _, emp := newTestStore(t)
	require.NoError(t, s.SetHours(emp.ID, "2025-04-01", 3))
	require.NoError(t, s.SetHours(emp.ID, "2025-04-07", 2)) // kept: ferie day
	_, err := s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveFerie, StartDate: "2025-04-07", EndDate: "2025-04-08"})
	require.NoError(t, err)

	n, err := s.ApplyPreset(emp.ID, time.April, 2025)
	require.NoError(t, err)
	// 22 weekdays - Apr 25 - 2 ferie days
	assert.Equal(t, 19, n)

	assert.Equal(t, 8.0, s.Hours(emp.ID, "2025-04-01"), "overwritten")
	assert.Equal(t, 2.0, s.Hours(emp.ID, "2025-04-07"), "ferie day untouched")
	assert.Equal(t, 0.0, s.Hours(emp.ID, "2025-04-25"), "holiday untouched")
	assert.Equal(t, 0.0, s.Hours(emp.ID, "2025-04-05"), "saturday has no scheduled hours")

	entries := s.Entries(emp.ID, "2025-04-01", "2025-04-30")
	assert.Len(t, entries, 20)

	_, err = s.ApplyPreset(99, time.April, 2025)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestClosuresAffectCalendar(t *testing.T) {
	s, rec, emp := newTestStore(t)
	require.NoError(t, s.SetClosures([]models.NonWorkingDay{{Date: "2025-04-01", Year: 2025, Month: 4, Day: 1}}))
	assert.Contains(t, rec.ops, "closures")

	n, err := s.ApplyPreset(emp.ID, time.April, 2025)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, 0.0, s.Hours(emp.ID, "2025-04-01"))
}

func TestClosuresSortedByDate(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.NoError(t, s.SetClosures([]models.NonWorkingDay{
		{Date: "2025-08-14", Year: 2025, Month: 8, Day: 14},
		{Date: "2025-08-11", Year: 2025, Month: 8, Day: 11},
	}))

	days := s.Closures()
	require.Len(t, days, 2)
	assert.Equal(t, "2025-08-11", days[0].Date)
	assert.Equal(t, 2, s.Calendar().Closures())
}

func TestSetClosuresKeepsCalendarWhenPersistFails(t *testing.T) {
	s, rec, _ := newTestStore(t)
	require.NoError(t, s.SetClosures([]models.NonWorkingDay{{Date: "2025-08-11", Year: 2025, Month: 8, Day: 11}}))

	rec.fail = errors.New("disk full")
	err := s.SetClosures([]models.NonWorkingDay{{Date: "2025-12-24", Year: 2025, Month: 12, Day: 24}})
	assert.ErrorIs(t, err, rec.fail)

	days := s.Closures()
	require.Len(t, days, 1)
	assert.Equal(t, "2025-08-11", days[0].Date)
	assert.False(t, s.Calendar().IsClosure(time.Date(2025, time.December, 24, 0, 0, 0, 0, time.Local)))
}

func TestSnapshotIsIsolated(t *testing.T) {
	s, _, emp := newTestStore(t)
	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 8))

	snap := s.Snapshot()
	require.NoError(t, s.SetHours(emp.ID, "2025-03-03", 4))
	assert.Equal(t, 8.0, snap.Hours(emp.ID, "2025-03-03"))
}

func TestPersistErrorIsReported(t *testing.T) {
	s, rec, emp := newTestStore(t)
	rec.fail = errors.New("disk full")

	err := s.SetHours(emp.ID, "2025-03-03", 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 8.0, s.Hours(emp.ID, "2025-03-03"), "memory stays authoritative")
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	s := New(nil, quietLogger())
	s.Load(State{
		Company:   &models.CompanyInfo{Name: "Bar Sport"},
		Employees: []models.Employee{{ID: 5, Name: "Luca"}},
		Entries: []models.TimeEntry{
			{ID: 3, EmployeeID: 5, Date: "2025-03-03", Hours: 8},
			{ID: 4, EmployeeID: 5, Date: "2025-03-04", Hours: 0},
		},
		Leaves: []models.LeaveRequest{{ID: 9, EmployeeID: 5, Type: models.LeaveFerie, StartDate: "2025-03-10", EndDate: "2025-03-10"}},
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Company().WorkingDays)
	assert.Equal(t, models.StatusApproved, s.Leaves(5)[0].Status)
	assert.Len(t, s.Entries(5, "2025-03-01", "2025-03-31"), 1)

	emp, err := s.AddEmployee(models.Employee{Name: "Nuovo"})
	require.NoError(t, err)
	assert.Equal(t, uint(6), emp.ID)

	l, err := s.AddLeave(models.LeaveRequest{EmployeeID: 5, Type: models.LeaveMalattia, StartDate: "2025-03-12", EndDate: "2025-03-12"})
	require.NoError(t, err)
	assert.Equal(t, uint(10), l.ID)
}

func TestSetCompany(t *testing.T) {
	s, rec, _ := newTestStore(t)
	require.NoError(t, s.SetCompany(models.CompanyInfo{Name: "Bar Sport", WorkingDays: []int{1, 2, 3, 4, 5, 6}}))
	assert.Equal(t, "Bar Sport", s.Company().Name)
	assert.Contains(t, rec.ops, "company")

	assert.ErrorIs(t, s.SetCompany(models.CompanyInfo{WorkingDays: []int{7}}), ErrInvalidCompany)
}

func TestSetLeaveStatus(t *testing.T) {
	s, _, emp := newTestStore(t)

	first, err := s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveFerie, StartDate: "2025-08-04", EndDate: "2025-08-08"})
	require.NoError(t, err)

	rejected, err := s.SetLeaveStatus(first.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	_, err = s.AddLeave(models.LeaveRequest{EmployeeID: emp.ID, Type: models.LeaveMalattia, StartDate: "2025-08-06", EndDate: "2025-08-06"})
	require.NoError(t, err)

	_, err = s.SetLeaveStatus(first.ID, models.StatusApproved)
	assert.ErrorIs(t, err, ErrLeaveOverlap)

	_, err = s.SetLeaveStatus(first.ID, "Maybe")
	assert.ErrorIs(t, err, ErrInvalidLeave)

	_, err = s.SetLeaveStatus(999, models.StatusApproved)
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}

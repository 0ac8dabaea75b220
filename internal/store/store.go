// Package store keeps the timesheet collections in memory and mirrors every
// mutation to an injected Persister. Reports read a Snapshot, never the live
// collections.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
	"timesheet-bot/pkg/calendar"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidEmployee  = errors.New("invalid employee data")
	ErrInvalidSchedule  = errors.New("schedule must have 7 entries between 0 and 24 hours")
	ErrInvalidCompany   = errors.New("invalid company settings")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidHours     = errors.New("hours must be between 0 and 24")
	ErrInvalidLeave     = errors.New("invalid leave request")
	ErrLeaveOverlap     = errors.New("leave request overlaps an existing one")
)

// Persister receives every mutation after it has been applied in memory.
type Persister interface {
	SaveCompany(c *models.CompanyInfo) error
	SaveEmployee(e *models.Employee) error
	DeleteEmployee(id uint) error
	SaveEntry(e *models.TimeEntry) error
	DeleteEntry(key models.EntryKey) error
	SaveLeave(l *models.LeaveRequest) error
	DeleteLeave(id uint) error
	ReplaceClosures(days []models.NonWorkingDay) error
}

// State is the full persisted content used to seed a Store.
type State struct {
	Company   *models.CompanyInfo
	Employees []models.Employee
	Entries   []models.TimeEntry
	Leaves    []models.LeaveRequest
	Closures  []models.NonWorkingDay
}

type Store struct {
	mu        sync.RWMutex
	company   models.CompanyInfo
	employees []models.Employee
	entries   map[models.EntryKey]models.TimeEntry
	leaves    []models.LeaveRequest
	closures  []models.NonWorkingDay
	cal       calendar.Calendar

	nextEmployeeID uint
	nextEntryID    uint
	nextLeaveID    uint

	persister Persister
	logger    *logrus.Logger
}

// New creates an empty store. A nil persister keeps everything in memory.
func New(persister Persister, logger *logrus.Logger) *Store {
	if persister == nil {
		persister = nopPersister{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		company:        models.DefaultCompany(),
		entries:        make(map[models.EntryKey]models.TimeEntry),
		persister:      persister,
		logger:         logger,
		nextEmployeeID: 1,
		nextEntryID:    1,
		nextLeaveID:    1,
	}
}

// Load replaces the in-memory content with state without persisting it.
// Missing fields of older records are defaulted.
func (s *Store) Load(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.company = models.DefaultCompany()
	if state.Company != nil {
		s.company = *state.Company
		if s.company.WorkingDays == nil {
			s.company.WorkingDays = models.DefaultCompany().WorkingDays
		}
	}

	s.employees = append([]models.Employee(nil), state.Employees...)
	sort.SliceStable(s.employees, func(i, j int) bool { return s.employees[i].ID < s.employees[j].ID })
	for _, e := range s.employees {
		if e.ID >= s.nextEmployeeID {
			s.nextEmployeeID = e.ID + 1
		}
	}

	s.entries = make(map[models.EntryKey]models.TimeEntry, len(state.Entries))
	for _, e := range state.Entries {
		if e.Hours == 0 {
			continue
		}
		// later rows win if an older store holds duplicates for one day
		s.entries[e.Key()] = e
		if e.ID >= s.nextEntryID {
			s.nextEntryID = e.ID + 1
		}
	}

	s.leaves = append([]models.LeaveRequest(nil), state.Leaves...)
	sort.SliceStable(s.leaves, func(i, j int) bool { return s.leaves[i].ID < s.leaves[j].ID })
	for i, l := range s.leaves {
		if l.Status == "" {
			s.leaves[i].Status = models.StatusApproved
		}
		if l.ID >= s.nextLeaveID {
			s.nextLeaveID = l.ID + 1
		}
	}

	s.setClosuresLocked(state.Closures)

	s.logger.WithFields(logrus.Fields{
		"employees": len(s.employees),
		"entries":   len(s.entries),
		"leaves":    len(s.leaves),
		"closures":  len(s.closures),
	}).Info("Store loaded")
}

func (s *Store) setClosuresLocked(days []models.NonWorkingDay) {
	s.closures = append([]models.NonWorkingDay(nil), days...)
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
	}
	s.cal = calendar.New(dates)
}

// Snapshot returns a deep copy of the collections for report computation.
func (s *Store) Snapshot() *report.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds := &report.Dataset{
		Calendar:  s.cal,
		Company:   s.company,
		Employees: append([]models.Employee(nil), s.employees...),
		Entries:   make(map[models.EntryKey]float64, len(s.entries)),
		Leaves:    append([]models.LeaveRequest(nil), s.leaves...),
	}
	ds.Company.Emails = append([]string(nil), s.company.Emails...)
	ds.Company.WorkingDays = append([]int(nil), s.company.WorkingDays...)
	for k, e := range s.entries {
		ds.Entries[k] = e.Hours
	}
	return ds
}

// Calendar returns the holiday calendar including closure days.
func (s *Store) Calendar() calendar.Calendar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cal
}

// Closures returns the company closure days ordered by date.
func (s *Store) Closures() []models.NonWorkingDay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.NonWorkingDay(nil), s.closures...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SetClosures replaces the company closure days. The calendar only changes
// once the new days are persisted.
func (s *Store) SetClosures(days []models.NonWorkingDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist("replace closures", s.persister.ReplaceClosures(days)); err != nil {
		return err
	}
	s.setClosuresLocked(days)
	return nil
}

func (s *Store) persist(op string, err error) error {
	if err == nil {
		return nil
	}
	s.logger.WithError(err).WithField("op", op).Error("Failed to persist change")
	return fmt.Errorf("persist %s: %w", op, err)
}

type nopPersister struct{}

func (nopPersister) SaveCompany(*models.CompanyInfo) error { return nil }
func (nopPersister) SaveEmployee(*models.Employee) error { return nil }
func (nopPersister) DeleteEmployee(uint) error { return nil }
func (nopPersister) SaveEntry(*models.TimeEntry) error { return nil }
func (nopPersister) DeleteEntry(models.EntryKey) error { return nil }
func (nopPersister) SaveLeave(*models.LeaveRequest) error { return nil }
func (nopPersister) DeleteLeave(uint) error { return nil }
func (nopPersister) ReplaceClosures([]models.NonWorkingDay) error { return nil }

package store

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
	"timesheet-bot/pkg/calendar"
)

// Hours returns the worked hours of an employee on an ISO date.
func (s *Store) Hours(employeeID uint, date string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[models.EntryKey{EmployeeID: employeeID, Date: date}].Hours
}

// Entries returns the entries of an employee between two ISO dates
// (inclusive), ordered by date.
func (s *Store) Entries(employeeID uint, from, to string) []models.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TimeEntry
	for k, e := range s.entries {
		if k.EmployeeID == employeeID && from <= k.Date && k.Date <= to {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SetHours upserts the entry for (employeeID, date). Zero hours remove it.
func (s *Store) SetHours(employeeID uint, date string, h float64) error {
	if _, err := calendar.ParseDateISO(date); err != nil {
		return ErrInvalidDate
	}
	if h < 0 || h > 24 {
		return ErrInvalidHours
	}

	s.mu.Lock()
	if s.employeeIndex(employeeID) < 0 {
		s.mu.Unlock()
		return ErrEmployeeNotFound
	}
	entry, removed := s.setHoursLocked(employeeID, date, h)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        date,
		"hours":       h,
	}).Debug("Time entry written")

	if removed {
		return s.persist("delete entry", s.persister.DeleteEntry(models.EntryKey{EmployeeID: employeeID, Date: date}))
	}
	if entry == nil {
		return nil
	}
	return s.persist("entry", s.persister.SaveEntry(entry))
}

// setHoursLocked applies the write and reports what must be persisted: the
// saved entry, or removed=true when an existing entry was cleared.
func (s *Store) setHoursLocked(employeeID uint, date string, h float64) (*models.TimeEntry, bool) {
	key := models.EntryKey{EmployeeID: employeeID, Date: date}
	existing, ok := s.entries[key]

	if h == 0 {
		if !ok {
			return nil, false
		}
		delete(s.entries, key)
		return nil, true
	}

	if !ok {
		existing = models.TimeEntry{ID: s.nextEntryID, EmployeeID: employeeID, Date: date}
		s.nextEntryID++
	}
	existing.Hours = h
	s.entries[key] = existing
	return &existing, false
}

// SetPermitHours records a permit by back-solving the worked hours from the
// permit hours typed by the user. It returns the stored worked hours.
func (s *Store) SetPermitHours(employeeID uint, date string, permit float64) (float64, error) {
	t, err := calendar.ParseDateISO(date)
	if err != nil {
		return 0, ErrInvalidDate
	}
	emp, err := s.Employee(employeeID)
	if err != nil {
		return 0, err
	}

	var scheduled float64
	if !s.Calendar().IsHoliday(t) {
		scheduled = emp.ScheduledHours(t)
	}
	worked := report.WorkedFromPermit(scheduled, permit)
	return worked, s.SetHours(employeeID, date, worked)
}

// ApplyPreset fills the month with the employee's default schedule, leaving
// holidays and full-day leave days untouched. It returns the number of days
// filled with scheduled hours.
func (s *Store) ApplyPreset(employeeID uint, month time.Month, year int) (int, error) {
	s.mu.Lock()
	i := s.employeeIndex(employeeID)
	if i < 0 {
		s.mu.Unlock()
		return 0, ErrEmployeeNotFound
	}
	emp := s.employees[i]
	plan := report.PresetEntries(s.cal, &emp, s.leaves, month, year)

	var saved []models.TimeEntry
	var removed []models.EntryKey
	filled := 0
	for _, p := range plan {
		if p.Hours > 0 {
			filled++
		}
		entry, cleared := s.setHoursLocked(p.EmployeeID, p.Date, p.Hours)
		switch {
		case cleared:
			removed = append(removed, p.Key())
		case entry != nil:
			saved = append(saved, *entry)
		}
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"month":       int(month),
		"year":        year,
		"days":        filled,
	}).Info("Preset schedule applied")

	for i := range saved {
		if err := s.persist("entry", s.persister.SaveEntry(&saved[i])); err != nil {
			return filled, err
		}
	}
	for _, k := range removed {
		if err := s.persist("delete entry", s.persister.DeleteEntry(k)); err != nil {
			return filled, err
		}
	}
	return filled, nil
}

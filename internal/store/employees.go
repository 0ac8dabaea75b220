package store

import (
	"strings"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
)

// Company returns a copy of the company settings.
func (s *Store) Company() models.CompanyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.company
	c.Emails = append([]string(nil), s.company.Emails...)
	c.WorkingDays = append([]int(nil), s.company.WorkingDays...)
	return c
}

// SetCompany replaces the company settings.
func (s *Store) SetCompany(c models.CompanyInfo) error {
	if !c.IsValid() {
		return ErrInvalidCompany
	}

	s.mu.Lock()
	c.ID = 1
	s.company = c
	s.mu.Unlock()

	s.logger.WithField("name", c.Name).Info("Company settings updated")
	return s.persist("company", s.persister.SaveCompany(&c))
}

// Employees returns all employees ordered by ID.
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...)
}

// Employee returns the employee with id.
func (s *Store) Employee(id uint) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.employeeIndex(id); i >= 0 {
		return s.employees[i], nil
	}
	return models.Employee{}, ErrEmployeeNotFound
}

// FindEmployee looks an employee up by case-insensitive name.
func (s *Store) FindEmployee(name string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return models.Employee{}, ErrEmployeeNotFound
}

func (s *Store) employeeIndex(id uint) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

// AddEmployee registers a new employee. An all-zero schedule is derived from
// the weekly contract hours and the company working days.
func (s *Store) AddEmployee(e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	if e.DefaultSchedule.Total() == 0 && e.ContractHoursWeekly > 0 {
		e.DefaultSchedule = models.ScheduleFromContract(e.ContractHoursWeekly, s.company.WorkingDays)
	}
	if !e.DefaultSchedule.IsValid() {
		s.mu.Unlock()
		return models.Employee{}, ErrInvalidSchedule
	}
	if !e.IsValid() {
		s.mu.Unlock()
		return models.Employee{}, ErrInvalidEmployee
	}

	e.ID = s.nextEmployeeID
	s.nextEmployeeID++
	s.employees = append(s.employees, e)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"id":   e.ID,
		"name": e.Name,
	}).Info("Employee added")

	return e, s.persist("employee", s.persister.SaveEmployee(&e))
}

// UpdateEmployee replaces name, role, contract hours and the whole schedule.
func (s *Store) UpdateEmployee(e models.Employee) error {
	if !e.DefaultSchedule.IsValid() {
		return ErrInvalidSchedule
	}
	if !e.IsValid() {
		return ErrInvalidEmployee
	}

	s.mu.Lock()
	i := s.employeeIndex(e.ID)
	if i < 0 {
		s.mu.Unlock()
		return ErrEmployeeNotFound
	}
	e.CreatedAt = s.employees[i].CreatedAt
	s.employees[i] = e
	s.mu.Unlock()

	s.logger.WithField("id", e.ID).Info("Employee updated")
	return s.persist("employee", s.persister.SaveEmployee(&e))
}

// DeleteEmployee removes the employee. Time entries and leave requests are
// kept as orphans and ignored by reports.
func (s *Store) DeleteEmployee(id uint) error {
	s.mu.Lock()
	i := s.employeeIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrEmployeeNotFound
	}
	s.employees = append(s.employees[:i], s.employees[i+1:]...)
	s.mu.Unlock()

	s.logger.WithField("id", id).Info("Employee deleted")
	return s.persist("delete employee", s.persister.DeleteEmployee(id))
}

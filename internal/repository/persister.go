package repository

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/store"
)

// Persister mirrors store mutations into the sqlite tables.
type Persister struct {
	Company   *GormCompanyRepository
	Employees *GormEmployeeRepository
	Entries   *GormTimeEntryRepository
	Leaves    *GormLeaveRequestRepository
	Closures  *GormNonWorkingDayRepository
}

var _ store.Persister = (*Persister)(nil)

// NewPersister migrates every table and wires the repositories.
func NewPersister(db *gorm.DB, log *logrus.Logger) (*Persister, error) {
	company, err := NewGormCompanyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("company repository: %w", err)
	}
	employees, err := NewGormEmployeeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("employee repository: %w", err)
	}
	entries, err := NewGormTimeEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("time entry repository: %w", err)
	}
	leaves, err := NewGormLeaveRequestRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("leave request repository: %w", err)
	}
	closures, err := NewGormNonWorkingDayRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("non working day repository: %w", err)
	}

	return &Persister{
		Company:   company,
		Employees: employees,
		Entries:   entries,
		Leaves:    leaves,
		Closures:  closures,
	}, nil
}

// LoadState reads every collection to seed a store.
func (p *Persister) LoadState() (store.State, error) {
	var state store.State
	var err error

	if state.Company, err = p.Company.Get(); err != nil {
		return state, fmt.Errorf("load company: %w", err)
	}
	if state.Employees, err = p.Employees.GetAll(); err != nil {
		return state, fmt.Errorf("load employees: %w", err)
	}
	if state.Entries, err = p.Entries.GetAll(); err != nil {
		return state, fmt.Errorf("load time entries: %w", err)
	}
	if state.Leaves, err = p.Leaves.GetAll(); err != nil {
		return state, fmt.Errorf("load leave requests: %w", err)
	}
	if state.Closures, err = p.Closures.GetAll(); err != nil {
		return state, fmt.Errorf("load closures: %w", err)
	}
	return state, nil
}

func (p *Persister) SaveCompany(c *models.CompanyInfo) error {
	return p.Company.Save(c)
}

func (p *Persister) SaveEmployee(e *models.Employee) error {
	return p.Employees.Save(e)
}

func (p *Persister) DeleteEmployee(id uint) error {
	return p.Employees.Delete(id)
}

func (p *Persister) SaveEntry(e *models.TimeEntry) error {
	return p.Entries.Upsert(e)
}

func (p *Persister) DeleteEntry(key models.EntryKey) error {
	return p.Entries.DeleteByKey(key)
}

func (p *Persister) SaveLeave(l *models.LeaveRequest) error {
	return p.Leaves.Save(l)
}

func (p *Persister) DeleteLeave(id uint) error {
	return p.Leaves.Delete(id)
}

func (p *Persister) ReplaceClosures(days []models.NonWorkingDay) error {
	return p.Closures.Replace(days)
}

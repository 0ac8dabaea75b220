package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/store"
	"timesheet-bot/pkg/hours"
)

type EmployeeService struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewEmployeeService(st *store.Store, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{store: st, logger: logger}
}

func (s *EmployeeService) GetAll() []models.Employee {
	return s.store.Employees()
}

func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	emp, err := s.store.Employee(id)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Resolve finds an employee by numeric ID or by name.
func (s *EmployeeService) Resolve(ref string) (*models.Employee, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return s.Get(uint(id))
	}
	emp, err := s.store.FindEmployee(ref)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Create adds an employee whose schedule is derived from the weekly
// contract hours and the company working days.
func (s *EmployeeService) Create(name, role string, weeklyHours float64) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, store.ErrInvalidEmployee
	}
	if _, err := s.store.FindEmployee(name); err == nil {
		return nil, fmt.Errorf("dipendente %q già presente", name)
	}

	emp, err := s.store.AddEmployee(models.Employee{
		Name:                name,
		Role:                strings.TrimSpace(role),
		ContractHoursWeekly: weeklyHours,
	})
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateSchedule replaces the default weekly schedule. The contract hours
// follow the new weekly total.
func (s *EmployeeService) UpdateSchedule(id uint, schedule models.WeeklySchedule) (*models.Employee, error) {
	emp, err := s.store.Employee(id)
	if err != nil {
		return nil, err
	}
	emp.DefaultSchedule = schedule
	emp.ContractHoursWeekly = schedule.Total()
	if err := s.store.UpdateEmployee(emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *EmployeeService) Delete(id uint) error {
	return s.store.DeleteEmployee(id)
}

// scheduleOrder lists weekdays Monday first, the order used for input and
// display.
var scheduleOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseSchedule reads seven hour values, Monday to Sunday.
func ParseSchedule(fields []string) (models.WeeklySchedule, error) {
	var s models.WeeklySchedule
	if len(fields) != 7 {
		return s, store.ErrInvalidSchedule
	}
	for i, f := range fields {
		h, err := ParseHours(f)
		if err != nil {
			return s, err
		}
		s[scheduleOrder[i]] = h
	}
	if !s.IsValid() {
		return s, store.ErrInvalidSchedule
	}
	return s, nil
}

// ParseHours wraps hours.ParseInput and rejects input that is not a number.
func ParseHours(input string) (float64, error) {
	h := hours.ParseInput(input)
	if h == 0 && strings.Trim(strings.TrimSpace(input), "+-0.,") != "" {
		return 0, ErrInvalidInput
	}
	return h, nil
}

func FormatSchedule(s models.WeeklySchedule) string {
	labels := []string{"Lun", "Mar", "Mer", "Gio", "Ven", "Sab", "Dom"}
	parts := make([]string, 0, 7)
	for i, d := range scheduleOrder {
		h := hours.FormatDisplay(s.For(d))
		if h == "" {
			h = "-"
		}
		parts = append(parts, labels[i]+" "+h)
	}
	return strings.Join(parts, " | ")
}

func FormatEmployee(e *models.Employee) string {
	role := e.Role
	if role == "" {
		role = "-"
	}
	return fmt.Sprintf("#%d %s (%s)\nContratto: %s h/sett.\nOrario: %s",
		e.ID, e.Name, role, displayHours(e.ContractHoursWeekly), FormatSchedule(e.DefaultSchedule))
}

func FormatEmployeeList(employees []models.Employee) string {
	if len(employees) == 0 {
		return "Nessun dipendente registrato."
	}
	var b strings.Builder
	b.WriteString("👥 Dipendenti:\n\n")
	for i := range employees {
		b.WriteString(FormatEmployee(&employees[i]))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func displayHours(h float64) string {
	if s := hours.FormatDisplay(h); s != "" {
		return s
	}
	return "0"
}

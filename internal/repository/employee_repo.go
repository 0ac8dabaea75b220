package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timesheet-bot/internal/models"
)

type EmployeeRepository interface {
	Save(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	Delete(id uint) error
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB, log *logrus.Logger) (*GormEmployeeRepository, error) {
	logger := newRepoLogger(log)
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}
	return &GormEmployeeRepository{db: db, logger: logger}, nil
}

// Save inserts the employee or replaces every column of an existing row.
func (r *GormEmployeeRepository) Save(employee *models.Employee) error {
	if !employee.IsValid() {
		r.logger.WithField("id", employee.ID).Warn("Invalid employee data")
		return errors.New("invalid employee data")
	}

	result := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save employee")
		return result.Error
	}
	return nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("id").Find(&employees).Error
	return employees, err
}

// Delete removes only the employee row; entries and leaves stay in place.
func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("employee not found")
	}
	return nil
}

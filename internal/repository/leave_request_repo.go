package repository

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timesheet-bot/internal/models"
)

type LeaveRequestRepository interface {
	Save(request *models.LeaveRequest) error
	CheckPeriodConflict(employeeID, excludeID uint, startDate, endDate string) (bool, error)
	GetAll() ([]models.LeaveRequest, error)
	Delete(id uint) error
}

type GormLeaveRequestRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormLeaveRequestRepository(db *gorm.DB, log *logrus.Logger) (*GormLeaveRequestRepository, error) {
	logger := newRepoLogger(log)
	if err := db.AutoMigrate(&models.LeaveRequest{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate leave_requests table")
		return nil, err
	}
	return &GormLeaveRequestRepository{db: db, logger: logger}, nil
}

func (r *GormLeaveRequestRepository) Save(request *models.LeaveRequest) error {
	result := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(request)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save leave request")
		return result.Error
	}
	return nil
}

// CheckPeriodConflict reports whether a non-rejected request of the employee,
// other than excludeID, shares at least one day with [startDate, endDate].
func (r *GormLeaveRequestRepository) CheckPeriodConflict(employeeID, excludeID uint, startDate, endDate string) (bool, error) {
	var count int64
	err := r.db.Model(&models.LeaveRequest{}).
		Where("employee_id = ? AND id <> ? AND status <> ? AND start_date <= ? AND end_date >= ?",
			employeeID, excludeID, models.StatusRejected, endDate, startDate).
		Count(&count).Error
	return count > 0, err
}

func (r *GormLeaveRequestRepository) GetAll() ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	err := r.db.Order("id").Find(&requests).Error
	return requests, err
}

func (r *GormLeaveRequestRepository) Delete(id uint) error {
	return r.db.Delete(&models.LeaveRequest{}, id).Error
}

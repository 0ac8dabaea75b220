package repository

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"timesheet-bot/internal/models"
)

type NonWorkingDayRepository interface {
	GetAll() ([]models.NonWorkingDay, error)
	Replace(days []models.NonWorkingDay) error
}

type GormNonWorkingDayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormNonWorkingDayRepository(db *gorm.DB, log *logrus.Logger) (*GormNonWorkingDayRepository, error) {
	logger := newRepoLogger(log)
	if err := db.AutoMigrate(&models.NonWorkingDay{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate non_working_days table")
		return nil, err
	}
	return &GormNonWorkingDayRepository{db: db, logger: logger}, nil
}

// Replace swaps the whole closure calendar in one transaction.
func (r *GormNonWorkingDayRepository) Replace(days []models.NonWorkingDay) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM non_working_days").Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		rows := make([]models.NonWorkingDay, len(days))
		copy(rows, days)
		for i := range rows {
			rows[i].ID = 0
		}
		return tx.Create(&rows).Error
	})
}

func (r *GormNonWorkingDayRepository) GetAll() ([]models.NonWorkingDay, error) {
	var days []models.NonWorkingDay
	err := r.db.Order("date").Find(&days).Error
	return days, err
}

package repository

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timesheet-bot/internal/models"
)

type TimeEntryRepository interface {
	Upsert(entry *models.TimeEntry) error
	DeleteByKey(key models.EntryKey) error
	GetAll() ([]models.TimeEntry, error)
}

type GormTimeEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTimeEntryRepository(db *gorm.DB, log *logrus.Logger) (*GormTimeEntryRepository, error) {
	logger := newRepoLogger(log)
	if err := db.AutoMigrate(&models.TimeEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate time_entries table")
		return nil, err
	}
	return &GormTimeEntryRepository{db: db, logger: logger}, nil
}

// Upsert writes the entry keyed by (employee_id, date).
func (r *GormTimeEntryRepository) Upsert(entry *models.TimeEntry) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours", "updated_at"}),
	}).Create(entry)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithFields(logrus.Fields{
			"employee_id": entry.EmployeeID,
			"date":        entry.Date,
		}).Error("Failed to upsert time entry")
		return result.Error
	}
	return nil
}

func (r *GormTimeEntryRepository) DeleteByKey(key models.EntryKey) error {
	return r.db.Where("employee_id = ? AND date = ?", key.EmployeeID, key.Date).
		Delete(&models.TimeEntry{}).Error
}

func (r *GormTimeEntryRepository) GetAll() ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Order("id").Find(&entries).Error
	return entries, err
}

package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timesheet-bot/internal/models"
)

type CompanyRepository interface {
	Get() (*models.CompanyInfo, error)
	Save(company *models.CompanyInfo) error
}

type GormCompanyRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormCompanyRepository(db *gorm.DB, log *logrus.Logger) (*GormCompanyRepository, error) {
	logger := newRepoLogger(log)
	if err := db.AutoMigrate(&models.CompanyInfo{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate company_info table")
		return nil, err
	}
	return &GormCompanyRepository{db: db, logger: logger}, nil
}

// Get returns the single settings record, or nil when none was saved yet.
func (r *GormCompanyRepository) Get() (*models.CompanyInfo, error) {
	var company models.CompanyInfo
	err := r.db.Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormCompanyRepository) Save(company *models.CompanyInfo) error {
	if company.ID == 0 {
		company.ID = 1
	}
	result := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(company)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save company info")
		return result.Error
	}
	return nil
}

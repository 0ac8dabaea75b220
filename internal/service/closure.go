package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/store"
	"timesheet-bot/pkg/calendar"
)

type ClosureService struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewClosureService(st *store.Store, logger *logrus.Logger) *ClosureService {
	return &ClosureService{store: st, logger: logger}
}

// LoadFromJSON replaces the closure days with the content of a JSON file.
func (s *ClosureService) LoadFromJSON(filePath string) (int, error) {
	days, err := calendar.ParseClosuresFile(filePath)
	if err != nil {
		return 0, err
	}
	return s.replace(days)
}

// Load replaces the closure days with raw JSON content.
func (s *ClosureService) Load(data []byte) (int, error) {
	days, err := calendar.ParseClosures(data)
	if err != nil {
		return 0, err
	}
	return s.replace(days)
}

func (s *ClosureService) replace(days []calendar.ClosureDay) (int, error) {
	nonWorkingDays := make([]models.NonWorkingDay, 0, len(days))
	for _, d := range days {
		nonWorkingDays = append(nonWorkingDays, models.NonWorkingDay{
			Date:  d.Date,
			Year:  d.Year,
			Month: d.Month,
			Day:   d.Day,
		})
	}

	if err := s.store.SetClosures(nonWorkingDays); err != nil {
		return 0, err
	}

	s.logger.WithField("days", len(nonWorkingDays)).Info("Closure days loaded")
	return len(nonWorkingDays), nil
}

// ForMonth returns the closure days of a month.
func (s *ClosureService) ForMonth(month time.Month, year int) []models.NonWorkingDay {
	var out []models.NonWorkingDay
	for _, d := range s.store.Closures() {
		if d.Year == year && d.Month == int(month) {
			out = append(out, d)
		}
	}
	return out
}

func (s *ClosureService) IsClosure(date time.Time) bool {
	return s.store.Calendar().IsClosure(date)
}

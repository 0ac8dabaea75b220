package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/store"
)

type CompanyService struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewCompanyService(st *store.Store, logger *logrus.Logger) *CompanyService {
	return &CompanyService{store: st, logger: logger}
}

func (s *CompanyService) Get() models.CompanyInfo {
	return s.store.Company()
}

// SetField updates a single company setting. Known fields: nome, indirizzo,
// piva, email, testo, giorni.
func (s *CompanyService) SetField(field, value string) (models.CompanyInfo, error) {
	c := s.store.Company()
	value = strings.TrimSpace(value)

	switch strings.ToLower(field) {
	case "nome", "name":
		c.Name = value
	case "indirizzo", "address":
		c.Address = value
	case "piva", "vat":
		c.VATID = value
	case "email", "emails":
		c.Emails = splitList(value)
	case "testo", "text":
		c.ReportText = value
	case "giorni", "days":
		days, err := ParseWorkingDays(value)
		if err != nil {
			return c, err
		}
		c.WorkingDays = days
	default:
		return c, fmt.Errorf("campo sconosciuto %q", field)
	}

	if err := s.store.SetCompany(c); err != nil {
		s.logger.WithError(err).WithField("field", field).Warn("Company update rejected")
		return c, err
	}
	return c, nil
}

var weekdayAliases = map[string]int{
	"dom": 0, "lun": 1, "mar": 2, "mer": 3, "gio": 4, "ven": 5, "sab": 6,
}

// ParseWorkingDays accepts weekday numbers (0=Sunday) or Italian
// abbreviations, comma separated.
func ParseWorkingDays(value string) ([]int, error) {
	var days []int
	for _, item := range splitList(value) {
		item = strings.ToLower(item)
		if d, ok := weekdayAliases[item]; ok {
			days = append(days, d)
			continue
		}
		if len(item) > 3 {
			if d, ok := weekdayAliases[item[:3]]; ok {
				days = append(days, d)
				continue
			}
		}
		d, err := strconv.Atoi(item)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("giorno non valido %q", item)
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, store.ErrInvalidCompany
	}
	return days, nil
}

func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func FormatCompany(c models.CompanyInfo) string {
	labels := []string{"Dom", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab"}
	days := make([]string, 0, len(c.WorkingDays))
	for _, d := range c.WorkingDays {
		if d >= 0 && d < len(labels) {
			days = append(days, labels[d])
		}
	}
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("🏢 %s\nIndirizzo: %s\nP.IVA: %s\nE-mail report: %s\nGiorni lavorativi: %s\nTesto report: %s",
		orDash(c.Name), orDash(c.Address), orDash(c.VATID),
		orDash(strings.Join(c.Recipients(), ", ")), orDash(strings.Join(days, ", ")), orDash(c.ReportText))
}

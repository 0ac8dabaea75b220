package models

import (
	"strings"
	"time"
)

// CompanyInfo holds the single settings record of an install.
type CompanyInfo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	VATID       string    `gorm:"column:vat_id" json:"vat_id"`
	Emails      []string  `gorm:"type:text;serializer:json" json:"emails"`
	ReportText  string    `json:"report_text"`
	WorkingDays []int     `gorm:"type:text;serializer:json" json:"working_days"` // 0=Sunday..6=Saturday
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CompanyInfo) TableName() string {
	return "company_info"
}

// DefaultCompany is used until the owner saves the settings.
func DefaultCompany() CompanyInfo {
	return CompanyInfo{
		WorkingDays: []int{1, 2, 3, 4, 5},
	}
}

// IsWorkingDay reports whether weekday is part of the operating schedule.
func (c *CompanyInfo) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// Recipients returns the non-empty report e-mail addresses.
func (c *CompanyInfo) Recipients() []string {
	out := make([]string, 0, len(c.Emails))
	for _, e := range c.Emails {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// IsValid checks the working-day indices.
func (c *CompanyInfo) IsValid() bool {
	seen := map[int]bool{}
	for _, d := range c.WorkingDays {
		if d < 0 || d > 6 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

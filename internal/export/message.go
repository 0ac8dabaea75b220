package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/report"
)

const defaultReportText = "in allegato il riepilogo delle ore lavorate del mese."

// EmailSubject returns the subject of the monthly report mail.
func EmailSubject(company models.CompanyInfo, month time.Month, year int) string {
	subject := "Riepilogo ore " + Period(month, year)
	if company.Name != "" {
		subject += " - " + company.Name
	}
	return subject
}

// EmailBody composes the plain-text body of the monthly report mail. The
// company report text replaces the default introduction when set.
func EmailBody(company models.CompanyInfo, rows []report.MonthlyRow, month time.Month, year int) string {
	var b strings.Builder

	intro := strings.TrimSpace(company.ReportText)
	if intro == "" {
		intro = defaultReportText
	}
	b.WriteString("Buongiorno,\n\n")
	b.WriteString(intro)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Riepilogo %s\n\n", Period(month, year))
	for _, r := range rows {
		b.WriteString(summaryLine(r))
		b.WriteString("\n")
	}
	if len(rows) > 1 {
		t := report.MonthlyTotals(rows)
		t.EmployeeName = "Totale"
		b.WriteString("\n")
		b.WriteString(summaryLine(t))
		b.WriteString("\n")
	}

	b.WriteString("\nCordiali saluti")
	if company.Name != "" {
		b.WriteString(",\n")
		b.WriteString(company.Name)
	}
	b.WriteString("\n")

	return b.String()
}

func summaryLine(r report.MonthlyRow) string {
	name := r.EmployeeName
	if r.Role != "" {
		name += " (" + r.Role + ")"
	}
	line := fmt.Sprintf("%s: lavorate %s, previste %s", name, Hours(r.Worked), Hours(r.Expected))
	if r.Overtime > 0 {
		line += ", straordinari " + Hours(r.Overtime)
	}
	if r.Deficit > 0 {
		line += ", mancanti " + Hours(r.Deficit)
	}
	if r.PermitHours > 0 {
		line += ", permessi " + Hours(r.PermitHours)
	}
	if r.FerieDays > 0 {
		line += fmt.Sprintf(", ferie %d gg", r.FerieDays)
	}
	if r.MalattiaDays > 0 {
		line += fmt.Sprintf(", malattia %d gg", r.MalattiaDays)
	}
	return line
}

// WhatsAppText composes a short message with WhatsApp bold markup.
func WhatsAppText(company models.CompanyInfo, rows []report.MonthlyRow, month time.Month, year int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Riepilogo ore %s*\n", Period(month, year))
	if company.Name != "" {
		b.WriteString(company.Name)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s: %s h", r.EmployeeName, Hours(r.Worked))
		var extra []string
		if r.Overtime > 0 {
			extra = append(extra, "straord. "+Hours(r.Overtime))
		}
		if r.PermitHours > 0 {
			extra = append(extra, "perm. "+Hours(r.PermitHours))
		}
		if r.FerieDays > 0 {
			extra = append(extra, fmt.Sprintf("ferie %d gg", r.FerieDays))
		}
		if r.MalattiaDays > 0 {
			extra = append(extra, fmt.Sprintf("mal. %d gg", r.MalattiaDays))
		}
		if len(extra) > 0 {
			b.WriteString(" (" + strings.Join(extra, ", ") + ")")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// WhatsAppLink builds a wa.me share link. An empty phone lets the user pick
// the recipient.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + digits.String() + "?text=" + escaped
}

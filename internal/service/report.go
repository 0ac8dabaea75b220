package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/export"
	"timesheet-bot/internal/models"
	"timesheet-bot/internal/notify"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/store"
)

// MailSender delivers a composed mail. *notify.Mailer satisfies it.
type MailSender interface {
	Send(to []string, subject, body string, attachments ...string) error
}

type ReportKind string

const (
	ReportMonthly ReportKind = "mese"
	ReportAnnual  ReportKind = "anno"
	ReportDetail  ReportKind = "dettaglio"
)

func ParseReportKind(s string) (ReportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mese", "mensile", "monthly":
		return ReportMonthly, nil
	case "anno", "annuale", "annual":
		return ReportAnnual, nil
	case "dettaglio", "detail":
		return ReportDetail, nil
	}
	return "", ErrUnknownReport
}

// ExportRequest describes a report file to render. EmployeeID selects one
// employee for annual and detail reports; zero means everyone.
type ExportRequest struct {
	Kind       ReportKind
	Format     string
	Month      time.Month
	Year       int
	EmployeeID uint
	Dir        string
}

type ReportService struct {
	store  *store.Store
	mailer MailSender
	logger *logrus.Logger
}

func NewReportService(st *store.Store, mailer MailSender, logger *logrus.Logger) *ReportService {
	return &ReportService{store: st, mailer: mailer, logger: logger}
}

func (s *ReportService) Monthly(month time.Month, year int) []report.MonthlyRow {
	return report.BuildMonthly(s.store.Snapshot(), month, year)
}

// Annual returns the year of one employee, or of everyone for zero.
func (s *ReportService) Annual(employeeID uint, year int) ([]report.AnnualStats, error) {
	ds := s.store.Snapshot()
	if employeeID == 0 {
		return report.BuildAnnualAll(ds, year), nil
	}
	emp := ds.Employee(employeeID)
	if emp == nil {
		return nil, store.ErrEmployeeNotFound
	}
	return []report.AnnualStats{report.BuildAnnual(ds, emp, year)}, nil
}

func (s *ReportService) Detail(employeeID uint, month time.Month, year int) (*models.Employee, []report.DayRow, error) {
	ds := s.store.Snapshot()
	emp := ds.Employee(employeeID)
	if emp == nil {
		return nil, nil, store.ErrEmployeeNotFound
	}
	return emp, report.BuildDayDetail(ds, employeeID, month, year), nil
}

// Export renders the requested report into req.Dir and returns the file path.
func (s *ReportService) Export(req ExportRequest) (string, error) {
	format := strings.ToLower(req.Format)
	if format != "csv" && format != "xlsx" && format != "pdf" {
		return "", ErrUnknownFormat
	}
	company := s.store.Company()

	var name, title string
	var err error
	switch req.Kind {
	case ReportMonthly:
		rows := s.Monthly(req.Month, req.Year)
		name = fmt.Sprintf("riepilogo_%d_%02d.%s", req.Year, req.Month, format)
		title = "Riepilogo ore " + export.Period(req.Month, req.Year)
		path := filepath.Join(req.Dir, name)
		switch format {
		case "csv":
			err = export.MonthlyCSV(rows, path)
		case "xlsx":
			err = export.MonthlyXLSX(rows, title, path)
		case "pdf":
			err = export.MonthlyPDF(company, rows, title, path)
		}
	case ReportAnnual:
		var stats []report.AnnualStats
		if stats, err = s.Annual(req.EmployeeID, req.Year); err != nil {
			return "", err
		}
		name = fmt.Sprintf("annuale_%d.%s", req.Year, format)
		if req.EmployeeID != 0 {
			name = fmt.Sprintf("annuale_%d_%d.%s", req.EmployeeID, req.Year, format)
		}
		title = fmt.Sprintf("Riepilogo annuale %d", req.Year)
		path := filepath.Join(req.Dir, name)
		switch format {
		case "csv":
			err = export.AnnualCSV(stats, path)
		case "xlsx":
			err = export.AnnualXLSX(stats, title, path)
		case "pdf":
			err = export.AnnualPDF(company, stats, title, path)
		}
	case ReportDetail:
		emp, rows, derr := s.Detail(req.EmployeeID, req.Month, req.Year)
		if derr != nil {
			return "", derr
		}
		name = fmt.Sprintf("dettaglio_%d_%d_%02d.%s", emp.ID, req.Year, req.Month, format)
		title = fmt.Sprintf("%s - %s", emp.Name, export.Period(req.Month, req.Year))
		path := filepath.Join(req.Dir, name)
		switch format {
		case "csv":
			err = export.DetailCSV(rows, path)
		case "xlsx":
			err = export.DetailXLSX(rows, title, path)
		case "pdf":
			err = export.DetailPDF(company, rows, title, path)
		}
	default:
		return "", ErrUnknownReport
	}

	path := filepath.Join(req.Dir, name)
	if err != nil {
		s.logger.WithError(err).WithField("file", path).Error("Failed to export report")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"kind":   req.Kind,
		"format": format,
		"file":   path,
	}).Info("Report exported")
	return path, nil
}

// MailMonthly sends the monthly summary to the company addresses with the
// spreadsheet attached. It returns the recipients.
func (s *ReportService) MailMonthly(month time.Month, year int, dir string) ([]string, error) {
	if s.mailer == nil {
		return nil, notify.ErrMailDisabled
	}
	company := s.store.Company()
	to := company.Recipients()
	if len(to) == 0 {
		return nil, notify.ErrNoRecipients
	}

	attachment, err := s.Export(ExportRequest{Kind: ReportMonthly, Format: "xlsx", Month: month, Year: year, Dir: dir})
	if err != nil {
		return nil, err
	}

	rows := s.Monthly(month, year)
	subject := export.EmailSubject(company, month, year)
	body := export.EmailBody(company, rows, month, year)
	if err := s.mailer.Send(to, subject, body, attachment); err != nil {
		return nil, err
	}
	return to, nil
}

// WhatsApp returns the monthly message and its wa.me share link.
func (s *ReportService) WhatsApp(month time.Month, year int, phone string) (string, string) {
	text := export.WhatsAppText(s.store.Company(), s.Monthly(month, year), month, year)
	return text, export.WhatsAppLink(phone, text)
}

func FormatMonthly(rows []report.MonthlyRow, month time.Month, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Riepilogo %s\n", export.Period(month, year))
	if len(rows) == 0 {
		b.WriteString("\nNessun dipendente registrato.")
		return b.String()
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%s\n", r.EmployeeName)
		fmt.Fprintf(&b, "  Lavorate %s / previste %s\n", export.Hours(r.Worked), export.Hours(r.Expected))
		fmt.Fprintf(&b, "  Straordinari %s | Mancanti %s\n", export.Hours(r.Overtime), export.Hours(r.Deficit))
		fmt.Fprintf(&b, "  Permessi %s | Ferie %d gg | Malattia %d gg\n", export.Hours(r.PermitHours), r.FerieDays, r.MalattiaDays)
	}
	t := report.MonthlyTotals(rows)
	fmt.Fprintf(&b, "\nTotale lavorate %s / previste %s", export.Hours(t.Worked), export.Hours(t.Expected))
	return b.String()
}

func FormatAnnual(a report.AnnualStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s - anno %d\n\n", a.EmployeeName, a.Year)
	fmt.Fprintf(&b, "Previste %s, lavorate %s\n", export.Hours(a.TotalExpected), export.Hours(a.TotalWorked))
	fmt.Fprintf(&b, "Straordinari %s, permessi %s\n", export.Hours(a.TotalOvertime), export.Hours(a.TotalPermitHours))
	fmt.Fprintf(&b, "Ferie %d gg, malattia %d gg\n", a.TotalFerieDays, a.TotalMalattiaDays)

	if len(a.OvertimeEvents) > 0 {
		b.WriteString("\nStraordinari per mese:\n")
		for _, e := range a.OvertimeEvents {
			fmt.Fprintf(&b, "  %s: %s\n", export.MonthName(e.Month), export.Hours(e.Hours))
		}
	}
	if len(a.FerieRanges) > 0 {
		fmt.Fprintf(&b, "\nFerie: %s\n", export.FormatRanges(a.FerieRanges))
	}
	if len(a.MalattiaRanges) > 0 {
		fmt.Fprintf(&b, "Malattia: %s\n", export.FormatRanges(a.MalattiaRanges))
	}
	if len(a.PermitEvents) > 0 {
		b.WriteString("\nPermessi:\n")
		for _, e := range a.PermitEvents {
			fmt.Fprintf(&b, "  %s: %s\n", e.Date, export.Hours(e.Hours))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatDetail(emp *models.Employee, rows []report.DayRow) string {
	var b strings.Builder
	b.WriteString("🗓 " + emp.Name + "\n")
	for _, d := range rows {
		fmt.Fprintf(&b, "\n%s %s %s", d.Date[8:], export.WeekdayName(d.Weekday), d.Status)
		if d.Scheduled > 0 || d.Worked > 0 {
			fmt.Fprintf(&b, " %s/%s", export.Hours(d.Worked), export.Hours(d.Scheduled))
		}
		if d.LeaveHours > 0 {
			fmt.Fprintf(&b, " (-%s)", export.Hours(d.LeaveHours))
		}
	}
	return b.String()
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"timesheet-bot/internal/app"
	"timesheet-bot/internal/config"
	"timesheet-bot/internal/logging"
	"timesheet-bot/internal/service"
)

// openApp loads the configuration and opens the shared application state.
// Commands only log warnings so their stdout stays readable.
func openApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Log)
	if cfg.Log.File == "" {
		logger.SetOutput(os.Stderr)
	}
	if logger.GetLevel() == logrus.InfoLevel {
		logger.SetLevel(logrus.WarnLevel)
	}
	return app.Open(cfg, logger)
}

// parseMonth reads YYYY-MM; an empty value is the current month.
func parseMonth(s string, now time.Time) (time.Month, int, error) {
	if s == "" {
		return now.Month(), now.Year(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t.Month(), t.Year(), nil
}

func newReportCmd() *cobra.Command {
	var (
		monthStr   string
		year       int
		format     string
		outDir     string
		employeeID uint
	)

	cmd := &cobra.Command{
		Use:   "report [monthly|annual|detail]",
		Short: "Print a report or export it to csv, xlsx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := service.ParseReportKind(args[0])
			if err != nil {
				return err
			}
			month, y, err := parseMonth(monthStr, time.Now())
			if err != nil {
				return err
			}
			if year != 0 {
				y = year
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if format == "" {
				return printReport(cmd.OutOrStdout(), a, kind, month, y, employeeID)
			}

			path, err := a.Reports.Export(service.ExportRequest{
				Kind:       kind,
				Format:     format,
				Month:      month,
				Year:       y,
				EmployeeID: employeeID,
				Dir:        outDir,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().IntVar(&year, "year", 0, "Year for annual reports (default from --month)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: csv, xlsx or pdf (default print to stdout)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory for exported files")
	cmd.Flags().UintVarP(&employeeID, "employee", "e", 0, "Employee ID (required for detail)")

	return cmd
}

func printReport(w io.Writer, a *app.App, kind service.ReportKind, month time.Month, year int, employeeID uint) error {
	switch kind {
	case service.ReportMonthly:
		fmt.Fprintln(w, service.FormatMonthly(a.Reports.Monthly(month, year), month, year))
	case service.ReportAnnual:
		stats, err := a.Reports.Annual(employeeID, year)
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Fprintln(w, service.FormatAnnual(s))
			fmt.Fprintln(w)
		}
	case service.ReportDetail:
		emp, rows, err := a.Reports.Detail(employeeID, month, year)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, service.FormatDetail(emp, rows))
	}
	return nil
}

func newClosuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closures",
		Short: "Manage company closure days",
	}

	importCmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the closure days with the content of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Closures.LoadFromJSON(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d closure days\n", n)
			return nil
		},
	}

	var monthStr string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the closure days of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonth(monthStr, time.Now())
			if err != nil {
				return err
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			for _, d := range a.Closures.ForMonth(month, year) {
				fmt.Fprintln(cmd.OutOrStdout(), d.Date)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&monthStr, "month", "", "Month as YYYY-MM (default current month)")

	cmd.AddCommand(importCmd, listCmd)
	return cmd
}

func newMailCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Send the monthly summary to the company e-mail addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonth(monthStr, time.Now())
			if err != nil {
				return err
			}
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			dir, err := os.MkdirTemp("", "timesheet-mail-")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			to, err := a.Reports.MailMonthly(month, year, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent to %s\n", strings.Join(to, ", "))
			return nil
		},
	}
	cmd.Flags().StringVar(&monthStr, "month", "", "Month as YYYY-MM (default current month)")

	return cmd
}

func newEmployeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List employees and their schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.OutOrStdout(), service.FormatEmployeeList(a.Employees.GetAll()))
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report overlapping leave requests and rows of deleted employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.Persister.Audit()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if report.Clean() {
				fmt.Fprintln(w, "no problems found")
				return nil
			}
			for _, l := range report.OverlappingLeaves {
				fmt.Fprintf(w, "overlapping leave #%d employee %d %s %s..%s\n", l.ID, l.EmployeeID, l.Type, l.StartDate, l.EndDate)
			}
			for _, l := range report.OrphanLeaves {
				fmt.Fprintf(w, "orphan leave #%d employee %d\n", l.ID, l.EmployeeID)
			}
			for _, e := range report.OrphanEntries {
				fmt.Fprintf(w, "orphan entry employee %d %s %sh\n", e.EmployeeID, e.Date, strconv.FormatFloat(e.Hours, 'f', -1, 64))
			}
			return nil
		},
	}
}

// Package app wires the database, the store and the services shared by the
// bot and the command line tool.
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"timesheet-bot/internal/config"
	"timesheet-bot/internal/notify"
	"timesheet-bot/internal/repository"
	"timesheet-bot/internal/service"
	"timesheet-bot/internal/store"
)

type App struct {
	DB        *gorm.DB
	Persister *repository.Persister
	Store     *store.Store
	Mailer    *notify.Mailer
	Logger    *logrus.Logger

	Employees *service.EmployeeService
	Company   *service.CompanyService
	Timesheet *service.TimesheetService
	Leaves    *service.LeaveService
	Closures  *service.ClosureService
	Reports   *service.ReportService
}

// Open connects to the database, loads the persisted state into a store and
// builds the services on top of it.
func Open(cfg *config.BotConfig, logger *logrus.Logger) (*App, error) {
	db, err := repository.Open(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	persister, err := repository.NewPersister(db, logger)
	if err != nil {
		repository.Close(db)
		return nil, fmt.Errorf("create persister: %w", err)
	}
	state, err := persister.LoadState()
	if err != nil {
		repository.Close(db)
		return nil, fmt.Errorf("load state: %w", err)
	}

	st := store.New(persister, logger)
	st.Load(state)

	a := &App{
		DB:        db,
		Persister: persister,
		Store:     st,
		Mailer:    notify.NewMailer(cfg.SMTP, logger),
		Logger:    logger,
		Employees: service.NewEmployeeService(st, logger),
		Company:   service.NewCompanyService(st, logger),
		Timesheet: service.NewTimesheetService(st, logger),
		Leaves:    service.NewLeaveService(st, logger),
		Closures:  service.NewClosureService(st, logger),
	}
	if a.Mailer != nil {
		a.Reports = service.NewReportService(st, a.Mailer, logger)
	} else {
		a.Reports = service.NewReportService(st, nil, logger)
	}

	if cfg.ClosuresFile != "" {
		n, err := a.Closures.LoadFromJSON(cfg.ClosuresFile)
		if err != nil {
			logger.WithError(err).WithField("file", cfg.ClosuresFile).Warn("Failed to load closure days")
		} else {
			logger.Infof("Loaded %d closure days from %s", n, cfg.ClosuresFile)
		}
	}

	return a, nil
}

func (a *App) Close() error {
	return repository.Close(a.DB)
}

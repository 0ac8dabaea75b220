package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-bot/internal/config"
	"timesheet-bot/internal/models"
)

func TestOpenPersistsAcrossRestarts(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	dir := t.TempDir()
	closures := filepath.Join(dir, "closures.json")
	require.NoError(t, os.WriteFile(closures, []byte(`{"year":2025,"months":[{"month":9,"days":"1"}]}`), 0o644))

	cfg := &config.BotConfig{DatabaseURL: filepath.Join(dir, "timesheet.db"), ClosuresFile: closures}

	a, err := Open(cfg, logger)
	require.NoError(t, err)
	assert.Nil(t, a.Mailer)

	emp, err := a.Employees.Create("Mario Rossi", "Cuoco", 40)
	require.NoError(t, err)
	_, err = a.Timesheet.LogHours(emp.ID, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.Local), "8")
	require.NoError(t, err)
	_, err = a.Leaves.Add(emp.ID, models.LeaveFerie, time.Date(2025, time.September, 8, 0, 0, 0, 0, time.Local), time.Date(2025, time.September, 9, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := Open(cfg, logger)
	require.NoError(t, err)
	defer b.Close()

	rows := b.Reports.Monthly(time.September, 2025)
	require.Len(t, rows, 1)
	assert.Equal(t, 8.0, rows[0].Worked)
	// 22 weekdays minus the closure on the 1st
	assert.Equal(t, 168.0, rows[0].Expected)
	assert.Equal(t, 2, rows[0].FerieDays)
}

func TestDuplicateClosureDaysMatchDatabase(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.BotConfig{DatabaseURL: filepath.Join(t.TempDir(), "timesheet.db")}
	a, err := Open(cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	n, err := a.Closures.Load([]byte(`{"year":2025,"months":[{"month":8,"days":"11,12,11"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	persisted, err := a.Persister.Closures.GetAll()
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
	assert.Len(t, a.Store.Closures(), 2)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	now := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.Local)

	m, y, err := parseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, time.September, m)
	assert.Equal(t, 2025, y)

	m, y, err = parseMonth("2024-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, m)
	assert.Equal(t, 2024, y)

	_, _, err = parseMonth("02.2024", now)
	assert.Error(t, err)
}

func TestClosuresImportAndReport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "cli.db"))
	t.Setenv("CLOSURES_FILE", "")
	t.Setenv("LOG_FILE", "")

	file := filepath.Join(dir, "closures.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"year":2025,"months":[{"month":8,"days":"11,12"}]}`), 0o644))

	var out bytes.Buffer
	cmd := newClosuresCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"import", file})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "imported 2 closure days\n", out.String())

	out.Reset()
	cmd = newClosuresCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--month", "2025-08"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2025-08-11\n2025-08-12\n", out.String())

	out.Reset()
	report := newReportCmd()
	report.SetOut(&out)
	report.SetArgs([]string{"monthly", "--month", "2025-08", "--format", "csv", "--out", dir})
	require.NoError(t, report.Execute())
	path := strings.TrimSpace(out.String())
	assert.Equal(t, filepath.Join(dir, "riepilogo_2025_08.csv"), path)
	assert.FileExists(t, path)
}

func TestCheckEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "check.db"))
	t.Setenv("CLOSURES_FILE", "")
	t.Setenv("LOG_FILE", "")

	var out bytes.Buffer
	cmd := newCheckCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "no problems found\n", out.String())
}

package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LEDGER_DRIVER", "sqlite")
	t.Setenv("SQLITE_DB_PATH", filepath.Join(dir, "ledger.db"))
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	root := newRootCommand(&app{
		log: logger,
		now: func() time.Time { return time.Date(2024, 3, 9, 18, 30, 0, 0, time.Local) },
	})

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	output, err := run(t, "", args...)
	require.NoError(t, err, output)
	return output
}

func TestAddAndList(t *testing.T) {
	setupSQLiteEnv(t)

	output := mustRun(t, "add", "--date", "2024-01-01", "--description", "Salary", "--amount", "5000", "--category", "Income")
	assert.Equal(t, "Added transaction 1\n", output)
	mustRun(t, "add", "--date", "2024-01-05", "--description", "Rent", "--amount", "1200")

	output = mustRun(t, "list")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "DESCRIPTION")
	assert.Contains(t, lines[1], "Rent")
	assert.Contains(t, lines[1], "Expense")
	assert.Contains(t, lines[1], "$1,200.00")
	assert.Contains(t, lines[2], "Salary")
	assert.Contains(t, lines[2], "$5,000.00")
}

func TestAdd_DefaultsDateToToday(t *testing.T) {
	setupSQLiteEnv(t)

	mustRun(t, "add", "--description", "Coffee", "--amount", "3.5")

	output := mustRun(t, "list")
	assert.Contains(t, output, "2024-03-09")
	assert.Contains(t, output, "$3.50")
}

func TestAdd_ValidationError(t *testing.T) {
	setupSQLiteEnv(t)

	output, err := run(t, "", "add", "--description", "Rent", "--amount", "-20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount not positive")
	assert.Contains(t, output, "amount not positive")

	_, err = run(t, "", "add", "--description", "Rent", "--amount", "20", "--category", "expense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category must be Income or Expense")

	assert.Contains(t, mustRun(t, "list"), "No transactions recorded.")
}

func TestDelete_Confirmation(t *testing.T) {
	setupSQLiteEnv(t)
	mustRun(t, "add", "--date", "2024-01-01", "--description", "Salary", "--amount", "5000", "--category", "Income")

	output, err := run(t, "n\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Deletion cancelled")
	assert.Contains(t, mustRun(t, "list"), "Salary")

	output, err = run(t, "y\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted 1 transaction(s)")
	assert.Contains(t, mustRun(t, "list"), "No transactions recorded.")
}

func TestDelete_YesAndUnknownIDs(t *testing.T) {
	setupSQLiteEnv(t)
	mustRun(t, "add", "--date", "2024-01-01", "--description", "Salary", "--amount", "5000", "--category", "Income")

	output := mustRun(t, "delete", "--yes", "1", "77", "78")
	assert.Equal(t, "Deleted 1 transaction(s)\n", output)

	output = mustRun(t, "delete", "--yes", "1")
	assert.Equal(t, "Deleted 0 transaction(s)\n", output)

	assert.Contains(t, mustRun(t, "list"), "No transactions recorded.")
}

func TestDelete_InvalidID(t *testing.T) {
	setupSQLiteEnv(t)

	_, err := run(t, "", "delete", "--yes", "abc")
	assert.EqualError(t, err, `invalid transaction id "abc"`)
}

func TestSummary(t *testing.T) {
	setupSQLiteEnv(t)

	assert.Contains(t, mustRun(t, "summary"), "No data to chart yet.")

	mustRun(t, "add", "--date", "2024-01-01", "--description", "Salary", "--amount", "5000.00", "--category", "Income")
	mustRun(t, "add", "--date", "2024-01-02", "--description", "Rent", "--amount", "1200.00", "--category", "Expense")

	output := mustRun(t, "summary")
	assert.Contains(t, output, "Total Income:  $5,000.00")
	assert.Contains(t, output, "Total Expense: $1,200.00")
	assert.Contains(t, output, "Balance:       $3,800.00")
	assert.Contains(t, output, "80.6%")
	assert.Contains(t, output, "19.4%")
}

func TestDashboard(t *testing.T) {
	setupSQLiteEnv(t)
	mustRun(t, "add", "--date", "2024-01-01", "--description", "Groceries", "--amount", "80", "--category", "Expense")

	output := mustRun(t, "dashboard")
	assert.Contains(t, output, "Groceries")
	assert.Contains(t, output, "Balance:       -$80.00")
}

func TestMigrate(t *testing.T) {
	setupSQLiteEnv(t)

	assert.Equal(t, "Schema version 0 -> 1\n", mustRun(t, "migrate"))
	assert.Equal(t, "Schema version 1 -> 1\n", mustRun(t, "migrate"))
}

func TestInvalidLogLevel(t *testing.T) {
	setupSQLiteEnv(t)

	_, err := run(t, "", "--log-level", "chatty", "list")
	assert.Error(t, err)
}

package sqlconfig

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionsTableFor(t *testing.T) {
	var exec bob.Executor

	table, err := NewTransactionsTableFor(DialectPostgres, exec)
	require.NoError(t, err)
	assert.IsType(t, &TransactionsTable{}, table)

	table, err = NewTransactionsTableFor(DialectMySQL, exec)
	require.NoError(t, err)
	assert.IsType(t, &MySQLTransactionsTable{}, table)

	table, err = NewTransactionsTableFor(DialectSQLite, exec)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteTransactionsTable{}, table)

	_, err = NewTransactionsTableFor("oracle", exec)
	assert.Error(t, err)
}

func TestInsertArgs(t *testing.T) {
	args := insertArgs(&TransactionCreate{
		TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Description:     "Rent",
		Amount:          decimal.RequireFromString("1200"),
		Category:        CategoryExpense,
	})

	assert.Equal(t, []any{"2024-01-02", "Rent", "1200.00", "Expense"}, args)
}

func TestRowToTransaction_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tx := rowToTransaction(&transactionRow{
		ID:          7,
		TransDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, loc),
		Description: "Salary",
		Amount:      decimal.RequireFromString("5000.00"),
		Category:    "Income",
	})

	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), tx.TransactionDate)
	assert.Equal(t, CategoryIncome, tx.Category)
}

func TestSQLiteRowToTransaction(t *testing.T) {
	tx, err := sqliteRowToTransaction(&sqliteTransactionRow{
		ID:          3,
		TransDate:   "2024-01-01",
		Description: "Salary",
		Amount:      "5000.00",
		Category:    "Income",
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, 2024, tx.TransactionDate.Year())

	_, err = sqliteRowToTransaction(&sqliteTransactionRow{ID: 4, TransDate: "01/01/2024", Amount: "1"})
	assert.Error(t, err)

	_, err = sqliteRowToTransaction(&sqliteTransactionRow{ID: 5, TransDate: "2024-01-01", Amount: "abc"})
	assert.Error(t, err)
}

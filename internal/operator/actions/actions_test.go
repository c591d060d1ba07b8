package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-ledger/internal/storage"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

func newTestWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockITransactionTable) {
	t.Helper()
	table := sqlconfig.NewMockITransactionTable(t)
	return storage.NewWriter(nil, table), table
}

func TestCreateTransaction_Perform(t *testing.T) {
	writer, table := newTestWriter(t)
	txDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("5000.00")

	table.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.TransactionDate.Equal(txDate) &&
			c.Description == "Salary" &&
			c.Amount.Equal(amount) &&
			c.Category == sqlconfig.CategoryIncome
	})).Return(int64(41), nil)

	action := &CreateTransaction{
		TransactionDate: txDate,
		Description:     "Salary",
		Amount:          amount,
		Category:        sqlconfig.CategoryIncome,
	}

	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, int64(41), action.CreatedID)
}

func TestCreateTransaction_InsertError(t *testing.T) {
	writer, table := newTestWriter(t)
	table.EXPECT().Insert(mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused"))

	action := &CreateTransaction{Description: "Salary"}

	assert.EqualError(t, action.Perform(context.Background(), writer), "connection refused")
	assert.Zero(t, action.CreatedID)
}

func TestDeleteTransactions_Perform(t *testing.T) {
	writer, table := newTestWriter(t)
	table.EXPECT().Delete(mock.Anything, int64(1)).Return(int64(1), nil)
	table.EXPECT().Delete(mock.Anything, int64(2)).Return(int64(0), nil)
	table.EXPECT().Delete(mock.Anything, int64(3)).Return(int64(1), nil)

	action := &DeleteTransactions{IDs: []int64{1, 2, 3}}

	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, int64(2), action.Deleted)
}

func TestDeleteTransactions_StopsOnError(t *testing.T) {
	writer, table := newTestWriter(t)
	table.EXPECT().Delete(mock.Anything, int64(1)).Return(int64(1), nil)
	table.EXPECT().Delete(mock.Anything, int64(2)).Return(int64(0), errors.New("lost connection"))

	action := &DeleteTransactions{IDs: []int64{1, 2, 3}}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "delete transaction 2: lost connection")
	table.AssertNotCalled(t, "Delete", mock.Anything, int64(3))
}

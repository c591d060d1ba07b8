package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-ledger/internal/service"
)

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return([]service.Transaction{
		{
			ID:          2,
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "Rent",
			Amount:      decimal.RequireFromString("1200"),
			Category:    service.CategoryExpense,
		},
		{
			ID:          1,
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: "Salary",
			Amount:      decimal.RequireFromString("5000.5"),
			Category:    service.CategoryIncome,
		},
	}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", map[string]any{})

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, Transaction{ID: 2, Date: "2024-01-05", Description: "Rent", Amount: "1200.00", Category: "Expense"}, body.Transactions[0])
	assert.Equal(t, Transaction{ID: 1, Date: "2024-01-01", Description: "Salary", Amount: "5000.50", Category: "Income"}, body.Transactions[1])
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return(nil, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", map[string]any{})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"transactions":[]`)
}

func TestHTTP_ListTransactions_StorageError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).
		Return(nil, &service.StorageError{Op: service.OpList, Err: errors.New("database unavailable")})

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", map[string]any{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to list transactions")
}

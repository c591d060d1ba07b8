package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-ledger/internal/service"
)

// mockTransactionService is a testify mock covering every interface the transaction handlers use.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) AddTransaction(ctx context.Context, input service.TransactionInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) DeleteTransactions(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handler := NewCreateTransactionHandler(svc)
	handler.now = func() time.Time { return time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC) }
	handler.Register(api)
	return api
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, service.TransactionInput{
		Date:        "2024-01-01",
		Description: "Salary",
		Amount:      "5000.00",
		Category:    "Income",
	}).Return(int64(17), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:        "2024-01-01",
		Description: "Salary",
		Amount:      "5000.00",
		Category:    "Income",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(17), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_DefaultsDateToToday(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.MatchedBy(func(input service.TransactionInput) bool {
		return input.Date == "2024-03-09"
	})).Return(int64(1), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Description: "Coffee",
		Amount:      "3.50",
		Category:    "Expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"date": "2024-01-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).
		Return(int64(0), &service.ValidationError{Field: service.FieldAmount, Reason: "amount not positive"})

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:        "2024-01-01",
		Description: "Rent",
		Amount:      "-1200",
		Category:    "Expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "amount not positive")
}

func TestHTTP_CreateTransaction_StorageError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).
		Return(int64(0), &service.StorageError{Op: service.OpAdd, Err: errors.New("connection refused")})

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:        "2024-01-01",
		Description: "Rent",
		Amount:      "1200",
		Category:    "Expense",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to create transaction")
}

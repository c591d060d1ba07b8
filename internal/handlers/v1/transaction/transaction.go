package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction ID"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Description string `json:"description" doc:"What the money was for"`
	Amount      string `json:"amount" doc:"Positive decimal amount with two places"`
	Category    string `json:"category" enum:"Income,Expense" doc:"Income or Expense"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Category:    string(tx.Category),
	}
}

// toHumaError maps service errors onto HTTP statuses. Server-side failures
// are also recorded on the request's LogData so the completion line carries the cause.
func toHumaError(ctx context.Context, err error, message string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return huma.NewError(http.StatusBadRequest, validationErr.Reason, err)
	}

	logging.AddError(ctx, err)
	return huma.NewError(http.StatusInternalServerError, message, err)
}

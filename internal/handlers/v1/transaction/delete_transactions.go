package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-ledger/internal/logging"
)

// DeleteTransactionsBody is the request body for deleting transactions.
type DeleteTransactionsBody struct {
	IDs []int64 `json:"ids" required:"true" doc:"IDs to delete; unknown IDs are ignored"`
}

// DeleteTransactionsInput is the Huma input for deleting transactions.
type DeleteTransactionsInput struct {
	Body DeleteTransactionsBody
}

type DeleteTransactionsOutput struct{}

type transactionDeleter interface {
	DeleteTransactions(ctx context.Context, ids []int64) (int64, error)
}

// DeleteTransactionsHandler handles POST /v1/transaction/delete.
type DeleteTransactionsHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionsHandler(svc transactionDeleter) *DeleteTransactionsHandler {
	return &DeleteTransactionsHandler{TransactionService: svc}
}

func (h *DeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/delete",
		Summary:       "Delete transactions",
		Description:   "Removes the given transactions in a single database transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionsHandler) handle(ctx context.Context, input *DeleteTransactionsInput) (*DeleteTransactionsOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("requestedIDs", len(input.Body.IDs))
	}

	if _, err := h.TransactionService.DeleteTransactions(ctx, input.Body.IDs); err != nil {
		return nil, toHumaError(ctx, err, "failed to delete transactions")
	}
	return &DeleteTransactionsOutput{}, nil
}

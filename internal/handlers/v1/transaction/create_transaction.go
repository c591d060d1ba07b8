package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Date        string `json:"date,omitempty" doc:"YYYY-MM-DD transaction date, defaults to today"`
	Description string `json:"description" required:"true" doc:"What the money was for"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Category    string `json:"category" required:"true" doc:"Income or Expense"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body carrying the new ID.
type CreateTransactionResponse struct {
	ID int64 `json:"id" doc:"ID assigned to the new transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for adding transactions.
type transactionCreator interface {
	AddTransaction(ctx context.Context, input service.TransactionInput) (int64, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	now                func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, now: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Validates and records a new income or expense.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	date := input.Body.Date
	if date == "" {
		date = h.now().Format("2006-01-02")
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("addTransactionMs")
	}
	id, err := h.TransactionService.AddTransaction(ctx, service.TransactionInput{
		Date:        date,
		Description: input.Body.Description,
		Amount:      input.Body.Amount,
		Category:    input.Body.Category,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(ctx, err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id},
	}, nil
}

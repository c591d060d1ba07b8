package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/storage"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        sqlconfig.Category

	// CreatedID is set once Perform has inserted the row.
	CreatedID int64
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &sqlconfig.TransactionCreate{
		TransactionDate: t.TransactionDate,
		Description:     t.Description,
		Amount:          t.Amount,
		Category:        t.Category,
	}
	id, err := writer.Transaction.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}

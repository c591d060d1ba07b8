package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-ledger/internal/storage"
)

// DeleteTransactions removes every listed ID inside the writer's transaction.
// IDs that no longer exist are skipped.
type DeleteTransactions struct {
	IDs []int64

	// Deleted counts the rows actually removed.
	Deleted int64
	IAction
}

func (d *DeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	d.Deleted = 0
	for _, id := range d.IDs {
		affected, err := writer.Transaction.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete transaction %d: %w", id, err)
		}
		d.Deleted += affected
	}
	return nil
}

package storage

import (
	"context"

	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

// committer is the part of bob.Tx the Writer needs.
type committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx          committer
	Transaction sqlconfig.ITransactionTable
}

func NewWriter(tx committer, transactions sqlconfig.ITransactionTable) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transactions,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

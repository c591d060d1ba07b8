package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
	"github.com/carson-networks/finance-ledger/internal/storage"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpList   = "list"
)

// writeProcessor runs an action inside its own database transaction and
// returns once it has been committed or rolled back.
type writeProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService is the ledger: validated writes through the operator,
// reads straight from storage.
type TransactionService struct {
	storage  *storage.Storage
	operator writeProcessor
	log      *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, operator writeProcessor, log *logrus.Logger) *TransactionService {
	return &TransactionService{
		storage:  store,
		operator: operator,
		log:      log,
	}
}

// Initialize verifies the store is reachable and its schema is current.
func (s *TransactionService) Initialize(ctx context.Context) error {
	status, err := s.storage.Initialize(ctx)
	if err != nil {
		s.log.WithError(err).Error("TransactionService.Initialize.Error")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.log.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("TransactionService.Initialize.Complete")
	return nil
}

// AddTransaction validates input, persists it and returns the assigned ID.
func (s *TransactionService) AddTransaction(ctx context.Context, input TransactionInput) (int64, error) {
	valid, err := ValidateTransactionInput(input)
	if err != nil {
		return 0, err
	}

	action := &actions.CreateTransaction{
		TransactionDate: valid.Date,
		Description:     valid.Description,
		Amount:          valid.Amount,
		Category:        sqlconfig.Category(valid.Category),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, s.storageError(OpAdd, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", action.CreatedID)
	}
	return action.CreatedID, nil
}

// DeleteTransactions removes every listed transaction in one database
// transaction and reports how many rows went away. IDs that do not exist are ignored.
func (s *TransactionService) DeleteTransactions(ctx context.Context, ids []int64) (int64, error) {
	unique := slices.Clone(ids)
	slices.Sort(unique)
	unique = slices.Compact(unique)
	if len(unique) == 0 {
		return 0, nil
	}

	action := &actions.DeleteTransactions{IDs: unique}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, s.storageError(OpDelete, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deleted", action.Deleted)
	}
	return action.Deleted, nil
}

// ListTransactions returns the whole ledger, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, s.storageError(OpList, err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = Transaction{
			ID:          row.ID,
			Date:        row.TransactionDate,
			Description: row.Description,
			Amount:      row.Amount,
			Category:    Category(row.Category),
		}
	}
	return transactions, nil
}

// Summary lists the ledger and reduces it.
func (s *TransactionService) Summary(ctx context.Context) (Summary, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(transactions), nil
}

func (s *TransactionService) storageError(op string, err error) error {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	s.log.WithError(err).WithField("op", op).Error("TransactionService.Storage.Error")
	return &StorageError{Op: op, Err: err}
}

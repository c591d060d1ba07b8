package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage and write operator.
func NewService(store *storage.Storage, operator writeProcessor, log *logrus.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, operator, log),
	}
}

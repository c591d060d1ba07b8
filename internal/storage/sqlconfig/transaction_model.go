package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionsTableName = "transactions"

	columnID          = "id"
	columnTransDate   = "trans_date"
	columnDescription = "description"
	columnAmount      = "amount"
	columnCategory    = "category"
)

// dateLayout is how trans_date values are bound and, for sqlite, stored.
const dateLayout = time.DateOnly

// Category is the stored Income/Expense label.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              int64
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        Category
}

// TransactionCreate is the input for creating a new transaction.
// Values are expected to be validated already.
type TransactionCreate struct {
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        Category
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob dialect) without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	// Insert creates a new transaction and returns its generated ID.
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	// Delete removes the transaction with the given ID and reports how many rows went away.
	Delete(ctx context.Context, id int64) (int64, error)
	// List returns every transaction, newest trans_date first, ties by ID descending.
	List(ctx context.Context) ([]*Transaction, error)
}

type transactionRow struct {
	ID          int64           `db:"id"`
	TransDate   time.Time       `db:"trans_date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
}

func rowToTransaction(row *transactionRow) *Transaction {
	y, m, d := row.TransDate.Date()
	return &Transaction{
		ID:              row.ID,
		TransactionDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Description:     row.Description,
		Amount:          row.Amount,
		Category:        Category(row.Category),
	}
}

func insertArgs(create *TransactionCreate) []any {
	return []any{
		create.TransactionDate.Format(dateLayout),
		create.Description,
		create.Amount.StringFixed(2),
		string(create.Category),
	}
}

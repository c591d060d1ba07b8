package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a transaction as money in or money out.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    Category
}

// TransactionInput carries the raw field values as a user typed them.
type TransactionInput struct {
	Date        string
	Description string
	Amount      string
	Category    string
}

// SeriesPoint is one slice of the income/expense distribution.
// Share is the percentage of the combined total, rounded to one decimal place.
type SeriesPoint struct {
	Category Category
	Total    decimal.Decimal
	Share    decimal.Decimal
}

type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	// Series is nil when NoData is set.
	Series []SeriesPoint
	NoData bool
}

// InDeficit reports whether expenses exceed income.
func (s Summary) InDeficit() bool {
	return s.Balance.IsNegative()
}

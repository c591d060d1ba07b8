package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxDescriptionLength = 255
	amountPlaces         = 2
	// DECIMAL(10,2) leaves eight digits before the point
	maxIntegerDigits = 8
	// longer input cannot be a usable amount and is refused before parsing
	maxAmountInputLength = 32
)

// amounts are stored as DECIMAL(10,2)
var maxAmount = decimal.New(1, 8)

const dateLayout = time.DateOnly

// ValidTransaction holds input that passed ValidateTransactionInput.
type ValidTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    Category
}

// ValidateTransactionInput checks the raw fields in a fixed order and reports
// the first failure. On success the returned values are ready to persist.
func ValidateTransactionInput(input TransactionInput) (ValidTransaction, error) {
	var valid ValidTransaction

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return valid, newValidationError(FieldDescription, "description is required")
	}
	if !utf8.ValidString(description) {
		return valid, newValidationError(FieldDescription, "description not valid UTF-8")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return valid, newValidationError(FieldDescription, "description too long")
	}

	rawAmount := strings.TrimSpace(input.Amount)
	if len(rawAmount) > maxAmountInputLength {
		return valid, newValidationError(FieldAmount, "amount out of range")
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return valid, newValidationError(FieldAmount, "amount not numeric")
	}
	if err := checkAmountScale(amount); err != nil {
		return valid, err
	}
	amount = amount.Round(amountPlaces)
	if !amount.IsPositive() {
		return valid, newValidationError(FieldAmount, "amount not positive")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return valid, newValidationError(FieldAmount, "amount out of range")
	}

	category := Category(input.Category)
	if category != CategoryIncome && category != CategoryExpense {
		return valid, newValidationError(FieldCategory, "category must be Income or Expense")
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(input.Date), time.UTC)
	if err != nil {
		return valid, newValidationError(FieldDate, "date not well-formed")
	}

	valid.Date = date
	valid.Description = description
	valid.Amount = amount
	valid.Category = category
	return valid, nil
}

// checkAmountScale settles amounts whose magnitude is far outside DECIMAL(10,2)
// from the exponent alone. Rounding or comparing them would rescale through
// powers of ten as large as the exponent.
func checkAmountScale(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return newValidationError(FieldAmount, "amount not positive")
	}

	integerDigits := amount.NumDigits() + int(amount.Exponent())
	if integerDigits > maxIntegerDigits {
		return newValidationError(FieldAmount, "amount out of range")
	}
	// below 0.001, which rounds to zero cents
	if integerDigits < -amountPlaces {
		return newValidationError(FieldAmount, "amount not positive")
	}
	return nil
}

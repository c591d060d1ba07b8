package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summarize reduces a snapshot of the ledger into totals and the chart series.
// Records with an unrecognised category count towards neither total.
func Summarize(transactions []Transaction) Summary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, tx := range transactions {
		switch tx.Category {
		case CategoryIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case CategoryExpense:
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	summary := Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}

	combined := totalIncome.Add(totalExpense)
	if combined.IsZero() {
		summary.NoData = true
		return summary
	}

	summary.Series = []SeriesPoint{
		{Category: CategoryIncome, Total: totalIncome, Share: share(totalIncome, combined)},
		{Category: CategoryExpense, Total: totalExpense, Share: share(totalExpense, combined)},
	}
	return summary
}

func share(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).Div(whole).Round(1)
}

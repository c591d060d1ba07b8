package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-ledger/internal/service"
)

const chartWidth = 40

var (
	incomeColor  = lipgloss.Color("#2ecc71")
	expenseColor = lipgloss.Color("#e74c3c")
)

// styles are bound to the output so colour is dropped when it is not a terminal.
type styles struct {
	income  lipgloss.Style
	expense lipgloss.Style
	danger  lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		income:  r.NewStyle().Foreground(incomeColor),
		expense: r.NewStyle().Foreground(expenseColor),
		danger:  r.NewStyle().Foreground(expenseColor).Bold(true),
		header:  r.NewStyle().Bold(true),
		muted:   r.NewStyle().Faint(true),
	}
}

func (s styles) category(category service.Category) lipgloss.Style {
	if category == service.CategoryIncome {
		return s.income
	}
	return s.expense
}

// formatMoney renders an amount as $1,234.56 with a leading minus when negative.
func formatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount.Abs().Round(2).InexactFloat64())
}

func renderTransactions(w io.Writer, transactions []service.Transaction) error {
	if len(transactions) == 0 {
		fmt.Fprintln(w, newStyles(w).muted.Render("No transactions recorded."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, tx := range transactions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			tx.ID,
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.Category,
			formatMoney(tx.Amount),
		)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, summary service.Summary) {
	st := newStyles(w)
	balanceStyle := st.header
	if summary.InDeficit() {
		balanceStyle = st.danger
	}

	fmt.Fprintln(w, "Total Income:  "+st.income.Render(formatMoney(summary.TotalIncome)))
	fmt.Fprintln(w, "Total Expense: "+st.expense.Render(formatMoney(summary.TotalExpense)))
	fmt.Fprintln(w, "Balance:       "+balanceStyle.Render(formatMoney(summary.Balance)))
	fmt.Fprintln(w)

	if summary.NoData {
		fmt.Fprintln(w, st.muted.Render("No data to chart yet."))
		return
	}
	for _, point := range summary.Series {
		fmt.Fprintf(w, "%-8s %s %s%%\n",
			point.Category,
			st.category(point.Category).Render(bar(point.Share)),
			point.Share.StringFixed(1),
		)
	}
}

// bar draws share (0-100) as a proportional run of blocks.
func bar(share decimal.Decimal) string {
	width := int(share.Mul(decimal.NewFromInt(chartWidth)).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	if width < 0 {
		width = 0
	}
	return strings.Repeat("█", width) + strings.Repeat("░", chartWidth-width)
}

package sqlconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*SQLiteTransactionsTable)(nil)

// SQLiteTransactionsTable provides access to the sqlite transactions table.
// trans_date and amount are stored as TEXT ('2006-01-02', fixed two decimals)
// so ordering is lexicographic on the date and amounts stay exact.
type SQLiteTransactionsTable struct {
	exec bob.Executor
}

type sqliteTransactionRow struct {
	ID          int64  `db:"id"`
	TransDate   string `db:"trans_date"`
	Description string `db:"description"`
	Amount      string `db:"amount"`
	Category    string `db:"category"`
}

func (t *SQLiteTransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := sqlite.Insert(
		im.Into(TransactionsTableName, columnTransDate, columnDescription, columnAmount, columnCategory),
		im.Values(sqlite.Arg(insertArgs(create)...)),
		im.Returning(columnID),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

func (t *SQLiteTransactionsTable) Delete(ctx context.Context, id int64) (int64, error) {
	q := sqlite.Delete(
		dm.From(TransactionsTableName),
		dm.Where(sqlite.Quote(columnID).EQ(sqlite.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *SQLiteTransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := sqlite.Select(
		sm.Columns(columnID, columnTransDate, columnDescription, columnAmount, columnCategory),
		sm.From(TransactionsTableName),
		sm.OrderBy(columnTransDate).Desc(),
		sm.OrderBy(columnID).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*sqliteTransactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		converted, err := sqliteRowToTransaction(row)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

func sqliteRowToTransaction(row *sqliteTransactionRow) (*Transaction, error) {
	date, err := time.Parse(dateLayout, row.TransDate)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: parse trans_date: %w", row.ID, err)
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: parse amount: %w", row.ID, err)
	}
	return &Transaction{
		ID:              row.ID,
		TransactionDate: date,
		Description:     row.Description,
		Amount:          amount,
		Category:        Category(row.Category),
	}, nil
}

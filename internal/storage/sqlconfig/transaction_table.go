package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the postgres transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := psql.Insert(
		im.Into(TransactionsTableName, columnTransDate, columnDescription, columnAmount, columnCategory),
		im.Values(psql.Arg(insertArgs(create)...)),
		im.Returning(columnID),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Delete removes a transaction by primary key. A missing row is not an error.
func (t *TransactionsTable) Delete(ctx context.Context, id int64) (int64, error) {
	q := psql.Delete(
		dm.From(TransactionsTableName),
		dm.Where(psql.Quote(columnID).EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns all transactions ordered by trans_date then id, both descending.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(columnID, columnTransDate, columnDescription, columnAmount, columnCategory),
		sm.From(TransactionsTableName),
		sm.OrderBy(columnTransDate).Desc(),
		sm.OrderBy(columnID).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}
